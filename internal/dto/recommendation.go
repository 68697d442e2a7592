package dto

import "uni-advisor/internal/models"

// RecommendationRequest is the form submission. Yes/no fields take "yes" or
// "no"; nothing else is validated.
type RecommendationRequest struct {
	Variant string `json:"variant" form:"variant" example:"standard"`

	Name                       string `json:"name" form:"name" example:"Asha"`
	CurrentCity                string `json:"current_city" form:"current_city"`
	DOB                        string `json:"dob" form:"dob" example:"2001-04-12"`
	XIICompletionYear          string `json:"xii_completion_year" form:"xii_completion_year"`
	XIIPercentage              string `json:"xii_percentage" form:"xii_percentage"`
	UndergradStatus            string `json:"undergrad_status" form:"undergrad_status" example:"completed"`
	Stream                     string `json:"stream" form:"stream"`
	UndergradCompletionYear    string `json:"undergrad_completion_year" form:"undergrad_completion_year"`
	CGPA                       string `json:"cgpa" form:"cgpa"`
	Backlogs                   string `json:"backlogs" form:"backlogs" enums:"yes,no"`
	GapYears                   string `json:"gap_years" form:"gap_years"`
	WorkExperience             string `json:"work_experience" form:"work_experience"`
	CareerGoals                string `json:"career_goals" form:"career_goals"`
	FinancialConcern           string `json:"financial_concern" form:"financial_concern" enums:"yes,no"`
	PostGradStay               string `json:"post_grad_stay" form:"post_grad_stay" enums:"yes,no"`
	RelevantExperience         string `json:"relevant_experience" form:"relevant_experience" enums:"yes,no"`
	FamilyAbroad               string `json:"family_abroad" form:"family_abroad" enums:"yes,no"`
	SwitchCourses              string `json:"switch_courses" form:"switch_courses" enums:"yes,no"`
	ExtracurricularsOrResearch string `json:"extracurriculars_or_research" form:"extracurriculars_or_research" enums:"yes,no"`
	CulturalFamiliarity        string `json:"cultural_familiarity" form:"cultural_familiarity"`
	Budget                     string `json:"budget" form:"budget"`
	InterestedCountry          string `json:"interested_country" form:"interested_country"`
}

func (r *RecommendationRequest) ToProfile() models.Profile {
	p := models.NewProfile()
	p.Set(models.FieldName, r.Name)
	p.Set(models.FieldCurrentCity, r.CurrentCity)
	p.Set(models.FieldDOB, r.DOB)
	p.Set(models.FieldXIICompletionYear, r.XIICompletionYear)
	p.Set(models.FieldXIIPercentage, r.XIIPercentage)
	p.Set(models.FieldUndergradStatus, r.UndergradStatus)
	p.Set(models.FieldStream, r.Stream)
	p.Set(models.FieldUndergradCompletion, r.UndergradCompletionYear)
	p.Set(models.FieldCGPA, r.CGPA)
	p.Set(models.FieldBacklogs, r.Backlogs)
	p.Set(models.FieldGapYears, r.GapYears)
	p.Set(models.FieldWorkExperience, r.WorkExperience)
	p.Set(models.FieldCareerGoals, r.CareerGoals)
	p.Set(models.FieldFinancialConcern, r.FinancialConcern)
	p.Set(models.FieldPostGradStay, r.PostGradStay)
	p.Set(models.FieldRelevantExperience, r.RelevantExperience)
	p.Set(models.FieldFamilyAbroad, r.FamilyAbroad)
	p.Set(models.FieldSwitchCourses, r.SwitchCourses)
	p.Set(models.FieldResearchPreference, r.ExtracurricularsOrResearch)
	p.Set(models.FieldCulturalFamiliarity, r.CulturalFamiliarity)
	p.Set(models.FieldBudget, r.Budget)
	p.Set(models.FieldInterestedCountry, r.InterestedCountry)
	return p
}

type UsageResponse struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type RecommendationResponse struct {
	RequestID       string        `json:"request_id"`
	Variant         string        `json:"variant"`
	Model           string        `json:"model"`
	Recommendations string        `json:"recommendations"`
	Usage           UsageResponse `json:"usage"`
	TokenSummary    string        `json:"token_summary" example:"1200 / 300 / 1500"`
	EstimatedCost   float64       `json:"estimated_cost_usd"`
	CostDisplay     string        `json:"estimated_cost_display" example:"$0.0540"`
	ExportFileName  string        `json:"export_filename" example:"Asha_recommendations.txt"`
}

// ExportRequest carries previously returned text back for download.
type ExportRequest struct {
	Name            string `json:"name" form:"name"`
	Recommendations string `json:"recommendations" form:"recommendations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
