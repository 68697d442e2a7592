package models

import "testing"

func TestSchema_HasUniqueNamesAndKeys(t *testing.T) {
	if len(Schema) != 22 {
		t.Fatalf("len(Schema) = %d, want 22", len(Schema))
	}

	names := map[string]bool{}
	keys := map[string]bool{}
	for _, f := range Schema {
		if names[f.Name] {
			t.Errorf("duplicate field name %q", f.Name)
		}
		if keys[f.Key] {
			t.Errorf("duplicate field key %q", f.Key)
		}
		if f.Question == "" {
			t.Errorf("field %q has no question", f.Name)
		}
		names[f.Name] = true
		keys[f.Key] = true
	}

	if Schema[0].Name != FieldName || Schema[len(Schema)-1].Name != FieldInterestedCountry {
		t.Errorf("schema order changed: first %q, last %q", Schema[0].Name, Schema[len(Schema)-1].Name)
	}
}

func TestProfile_ValueMissingIsEmpty(t *testing.T) {
	p := NewProfile()
	p.Set(FieldName, "Asha")

	if got := p.Value(FieldName); got != "Asha" {
		t.Errorf("Value(Name) = %q, want %q", got, "Asha")
	}
	if got := p.Value(FieldBudget); got != "" {
		t.Errorf("Value(Budget) = %q, want empty", got)
	}
}

func TestProfileFromKeys(t *testing.T) {
	p := ProfileFromKeys(map[string]string{
		"name":          "Asha",
		"cgpa":          "8.4",
		"not_a_field":   "ignored",
		"family_abroad": "yes",
	})

	if len(p) != 3 {
		t.Errorf("len(profile) = %d, want 3", len(p))
	}
	if p.Value(FieldCGPA) != "8.4" {
		t.Errorf("CGPA = %q, want %q", p.Value(FieldCGPA), "8.4")
	}
	if p.Value(FieldFamilyAbroad) != "yes" {
		t.Errorf("Family abroad = %q, want %q", p.Value(FieldFamilyAbroad), "yes")
	}
}

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey("extracurriculars_or_research")
	if !ok || f.Name != FieldResearchPreference || !f.YesNo {
		t.Errorf("FieldByKey = %+v, %v", f, ok)
	}
	if _, ok := FieldByKey("Name"); ok {
		t.Error("FieldByKey matched a field name instead of a key")
	}
}
