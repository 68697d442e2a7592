package models

// Field describes one entry of the student profile.
type Field struct {
	Name     string `json:"name"`     // label used in the compiled prompt
	Key      string `json:"key"`      // form, JSON and YAML key
	Question string `json:"question"` // console prompt
	YesNo    bool   `json:"yes_no"`   // rendered as a yes/no choice on the form
}

const (
	FieldName                = "Name"
	FieldCurrentCity         = "Current city"
	FieldDOB                 = "DOB"
	FieldXIICompletionYear   = "XII completion year"
	FieldXIIPercentage       = "XII percentage"
	FieldUndergradStatus     = "Undergrad status"
	FieldStream              = "Stream"
	FieldUndergradCompletion = "Undergrad completion year"
	FieldCGPA                = "CGPA"
	FieldBacklogs            = "Backlogs"
	FieldGapYears            = "Gap years"
	FieldWorkExperience      = "Work experience"
	FieldCareerGoals         = "Career goals"
	FieldFinancialConcern    = "Financial concern"
	FieldPostGradStay        = "Post grad stay"
	FieldRelevantExperience  = "Relevant experience"
	FieldFamilyAbroad        = "Family abroad"
	FieldSwitchCourses       = "Switch courses"
	FieldResearchPreference  = "Extracurriculars or research"
	FieldCulturalFamiliarity = "Cultural familiarity"
	FieldBudget              = "Budget"
	FieldInterestedCountry   = "Interested country"
)

// Schema is the canonical field order. Compiled prompts always list every
// field in this order, so identical profiles produce identical prompts.
var Schema = []Field{
	{Name: FieldName, Key: "name", Question: "Name: "},
	{Name: FieldCurrentCity, Key: "current_city", Question: "Current city: "},
	{Name: FieldDOB, Key: "dob", Question: "Date of Birth (YYYY-MM-DD): "},
	{Name: FieldXIICompletionYear, Key: "xii_completion_year", Question: "Year of XIIth grade completion: "},
	{Name: FieldXIIPercentage, Key: "xii_percentage", Question: "XII percentage: "},
	{Name: FieldUndergradStatus, Key: "undergrad_status", Question: "Status of undergrad (completed/ongoing): "},
	{Name: FieldStream, Key: "stream", Question: "Stream pursuing/pursued: "},
	{Name: FieldUndergradCompletion, Key: "undergrad_completion_year", Question: "Year of undergrad completion (or expected): "},
	{Name: FieldCGPA, Key: "cgpa", Question: "CGPA or final GPA: "},
	{Name: FieldBacklogs, Key: "backlogs", Question: "Any backlogs or KTs? (yes/no): ", YesNo: true},
	{Name: FieldGapYears, Key: "gap_years", Question: "Gap years, if any: "},
	{Name: FieldWorkExperience, Key: "work_experience", Question: "Number of years of work experience: "},
	{Name: FieldCareerGoals, Key: "career_goals", Question: "Specific career goals: "},
	{Name: FieldFinancialConcern, Key: "financial_concern", Question: "Are finances a concern? (yes/no): ", YesNo: true},
	{Name: FieldPostGradStay, Key: "post_grad_stay", Question: "Do you plan to stay in the country post graduation? (yes/no): ", YesNo: true},
	{Name: FieldRelevantExperience, Key: "relevant_experience", Question: "Do you have relevant work experience in your chosen field? (yes/no): ", YesNo: true},
	{Name: FieldFamilyAbroad, Key: "family_abroad", Question: "Do you have family abroad? (yes/no): ", YesNo: true},
	{Name: FieldSwitchCourses, Key: "switch_courses", Question: "Would you consider switching courses? (yes/no): ", YesNo: true},
	{Name: FieldResearchPreference, Key: "extracurriculars_or_research", Question: "Do you prefer universities with strong extracurricular or research opportunities? (yes/no): ", YesNo: true},
	{Name: FieldCulturalFamiliarity, Key: "cultural_familiarity", Question: "How familiar are you with the country's culture and academic environment? "},
	{Name: FieldBudget, Key: "budget", Question: "Budget (in USD/year): "},
	{Name: FieldInterestedCountry, Key: "interested_country", Question: "Country you're interested in: "},
}

// FieldByKey looks up a schema field by its form key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Schema {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Profile maps schema field names to free-text values. Values are display
// strings only; nothing is validated.
type Profile map[string]string

func NewProfile() Profile {
	return make(Profile, len(Schema))
}

// Value returns the value for a field, or "" when it was never set.
func (p Profile) Value(name string) string {
	return p[name]
}

func (p Profile) Set(name, value string) {
	p[name] = value
}

// ProfileFromKeys builds a profile from form-keyed values. Unknown keys are
// dropped.
func ProfileFromKeys(values map[string]string) Profile {
	profile := NewProfile()
	for key, value := range values {
		if f, ok := FieldByKey(key); ok {
			profile.Set(f.Name, value)
		}
	}
	return profile
}
