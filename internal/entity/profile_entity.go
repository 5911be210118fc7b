package entity

import "encoding/json"

// ProfileDocument is the typed form of the profile JSON. Every section is
// optional; a missing section simply produces no chunks. Validation happens
// once at the decode boundary, not in the chunk builder.
type ProfileDocument struct {
	PersonalInfo            *PersonalInfo          `json:"personal_info,omitempty"`
	CareerObjectives        *CareerObjectives      `json:"career_objectives,omitempty"`
	WorkExperience          []WorkExperience       `json:"work_experience,omitempty"`
	TechnicalSkills         *TechnicalSkills       `json:"technical_skills,omitempty"`
	Projects                []Project              `json:"projects,omitempty"`
	Education               []Education            `json:"education,omitempty"`
	BehavioralCompetencies  map[string][]Competency `json:"behavioral_competencies,omitempty"`
	InterviewPreparation    *InterviewPreparation  `json:"interview_preparation,omitempty"`
	UniqueValuePropositions []string               `json:"unique_value_propositions,omitempty"`
}

type PersonalInfo struct {
	Name          string        `json:"name" validate:"required"`
	Profession    string        `json:"profession"`
	Location      Location      `json:"location"`
	ElevatorPitch string        `json:"elevator_pitch"`
	VisaStatus    string        `json:"visa_status"`
	Availability  Availability  `json:"availability"`
}

type Location struct {
	Current string `json:"current"`
}

type Availability struct {
	Current        string `json:"current"`
	PostGraduation string `json:"post_graduation"`
	GraduationDate string `json:"graduation_date"`
}

type CareerObjectives struct {
	ShortTerm        string   `json:"short_term"`
	MediumTerm       string   `json:"medium_term"`
	LongTerm         string   `json:"long_term"`
	TargetIndustries []string `json:"target_industries"`
}

type WorkExperience struct {
	Position            string      `json:"position"`
	Company             string      `json:"company"`
	Duration            string      `json:"duration"`
	KeyResponsibilities []string    `json:"key_responsibilities"`
	Achievements        []string    `json:"achievements"`
	Technologies        []string    `json:"technologies"`
	StarStories         []StarStory `json:"star_stories"`
}

type StarStory struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

type LanguageSkill struct {
	Proficiency string `json:"proficiency"`
	Experience  string `json:"experience"`
	Details     string `json:"details"`
}

// TechnicalSkills holds the structured programming_languages map plus any
// number of free-form list-valued categories (frameworks, databases, ...).
// The source JSON mixes both shapes in one object, so decoding is custom.
type TechnicalSkills struct {
	ProgrammingLanguages map[string]LanguageSkill
	Categories           map[string][]string
}

func (t *TechnicalSkills) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Categories = make(map[string][]string)
	for key, value := range raw {
		if key == "programming_languages" {
			if err := json.Unmarshal(value, &t.ProgrammingLanguages); err != nil {
				return err
			}
			continue
		}
		var list []string
		if err := json.Unmarshal(value, &list); err != nil {
			// Non-list categories are skipped, matching the loader's
			// skip-the-field-not-the-section policy for malformed data.
			continue
		}
		t.Categories[key] = list
	}
	return nil
}

type Project struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Duration     string   `json:"duration"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	KeyFeatures  []string `json:"key_features"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Degree             string      `json:"degree"`
	Institution        string      `json:"institution"`
	Duration           string      `json:"duration"`
	Status             string      `json:"status"`
	FocusAreas         []string    `json:"focus_areas"`
	RelevantCoursework []string    `json:"relevant_coursework"`
	Achievements       []string    `json:"achievements"`
	StarStories        []StarStory `json:"star_stories"`
}

type Competency struct {
	Competency         string   `json:"competency"`
	Example            string   `json:"example"`
	SkillsDemonstrated []string `json:"skills_demonstrated"`
}

type InterviewPreparation struct {
	AdditionalStarStories map[string]StarStory `json:"additional_star_stories"`
	StrengthStories       []PreparedStory      `json:"strength_stories"`
	ChallengeStories      []PreparedStory      `json:"challenge_stories"`
	GrowthStories         []PreparedStory      `json:"growth_stories"`
}

type PreparedStory struct {
	Strength   string   `json:"strength"`
	Challenge  string   `json:"challenge"`
	GrowthArea string   `json:"growth_area"`
	Story      string   `json:"story"`
	KeyPoints  []string `json:"key_points"`
}

// Topic returns whichever of the three mutually exclusive headline fields
// is populated for this story.
func (s *PreparedStory) Topic() string {
	if s.Strength != "" {
		return s.Strength
	}
	if s.Challenge != "" {
		return s.Challenge
	}
	return s.GrowthArea
}

// FoodItem is one record of the unrelated food demo domain. Field names in
// source files vary, so the loader normalizes aliases before building chunks.
type FoodItem struct {
	Name          string   `json:"name"`
	FoodName      string   `json:"food_name"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Ingredients   []string `json:"ingredients"`
	Nutrition     string   `json:"nutrition"`
	Calories      *float64 `json:"calories"`
	Country       string   `json:"country"`
	Origin        string   `json:"origin"`
	Cuisine       string   `json:"cuisine"`
	Category      string   `json:"category"`
	Type          string   `json:"type"`
	Preparation   string   `json:"preparation"`
	CookingMethod string   `json:"cooking_method"`
	Allergens     []string `json:"allergens"`
	DietaryInfo   string   `json:"dietary_info"`
	Taste         string   `json:"taste"`
	Texture       string   `json:"texture"`
	Color         string   `json:"color"`
	Season        string   `json:"season"`
	Benefits      string   `json:"benefits"`
}

// DisplayName resolves the name alias fields in priority order.
func (f *FoodItem) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	if f.FoodName != "" {
		return f.FoodName
	}
	return f.Title
}
