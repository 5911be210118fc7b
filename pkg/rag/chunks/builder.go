package chunks

import (
	"fmt"
	"sort"
	"strings"

	"digitaltwin-rag-be/internal/entity"
)

// Builder converts a structured profile document into retrievable content
// chunks. Ids embed a running counter and are stable for a given document,
// so re-running a build upserts the same ids instead of duplicating.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// BuildProfileChunks flattens every populated profile section into chunks.
// Missing sections are skipped without affecting the ids of later sections
// beyond the shared counter.
func (b *Builder) BuildProfileChunks(profile *entity.ProfileDocument) []entity.ContentChunk {
	var chunkList []entity.ContentChunk
	chunkId := 1

	appendChunk := func(c entity.ContentChunk) {
		c.Namespace = entity.NamespaceDigitalTwin
		chunkList = append(chunkList, c)
		chunkId++
	}

	// Personal Information
	if personal := profile.PersonalInfo; personal != nil {
		appendChunk(entity.ContentChunk{
			Id:    fmt.Sprintf("personal_%d", chunkId),
			Title: "Professional Overview",
			Content: fmt.Sprintf("%s is a %s based in %s. %s",
				personal.Name, personal.Profession, personal.Location.Current, personal.ElevatorPitch),
			Type:     entity.ChunkTypePersonalInfo,
			Category: "overview",
			Tags:     []string{"professional", "overview", "introduction"},
		})

		appendChunk(entity.ContentChunk{
			Id:    fmt.Sprintf("availability_%d", chunkId),
			Title: "Availability and Work Rights",
			Content: fmt.Sprintf("Visa Status: %s. Current Availability: %s. Post-graduation: %s. Graduation: %s",
				personal.VisaStatus, personal.Availability.Current, personal.Availability.PostGraduation, personal.Availability.GraduationDate),
			Type:     entity.ChunkTypeAvailability,
			Category: "logistics",
			Tags:     []string{"visa", "availability", "work_rights", "graduation"},
		})
	}

	// Career Objectives
	if career := profile.CareerObjectives; career != nil {
		content := fmt.Sprintf("Short-term: %s. Medium-term: %s. Long-term: %s.",
			career.ShortTerm, career.MediumTerm, career.LongTerm)
		if len(career.TargetIndustries) > 0 {
			content += fmt.Sprintf(" Target industries: %s.", strings.Join(career.TargetIndustries, ", "))
		}

		appendChunk(entity.ContentChunk{
			Id:       fmt.Sprintf("career_%d", chunkId),
			Title:    "Career Objectives and Goals",
			Content:  content,
			Type:     entity.ChunkTypeCareerObjectives,
			Category: "goals",
			Tags:     []string{"career", "goals", "objectives", "industries"},
		})
	}

	// Work Experience, each with its STAR stories
	for i, experience := range profile.WorkExperience {
		content := fmt.Sprintf("Position: %s at %s (%s). ", experience.Position, experience.Company, experience.Duration)
		content += fmt.Sprintf("Key responsibilities: %s. ", strings.Join(experience.KeyResponsibilities, ". "))
		content += fmt.Sprintf("Achievements: %s. ", strings.Join(experience.Achievements, ". "))
		content += fmt.Sprintf("Technologies: %s.", strings.Join(experience.Technologies, ", "))

		appendChunk(entity.ContentChunk{
			Id:       fmt.Sprintf("experience_%d_%d", i+1, chunkId),
			Title:    fmt.Sprintf("%s at %s", experience.Position, experience.Company),
			Content:  content,
			Type:     entity.ChunkTypeWorkExperience,
			Category: "experience",
			Tags:     append([]string{"experience", "work", slugify(experience.Company)}, experience.Technologies...),
		})

		for j, story := range experience.StarStories {
			appendChunk(entity.ContentChunk{
				Id:       fmt.Sprintf("star_%d_%d_%d", i+1, j+1, chunkId),
				Title:    fmt.Sprintf("STAR Story - %s #%d", experience.Position, j+1),
				Content:  starContent(story),
				Type:     entity.ChunkTypeStarStory,
				Category: "behavioral",
				Tags:     []string{"star", "behavioral", "interview", slugify(experience.Company)},
			})
		}
	}

	// Technical Skills
	if tech := profile.TechnicalSkills; tech != nil {
		if len(tech.ProgrammingLanguages) > 0 {
			langs := sortedKeys(tech.ProgrammingLanguages)
			content := "Programming Languages: "
			for _, lang := range langs {
				details := tech.ProgrammingLanguages[lang]
				content += fmt.Sprintf("%s (%s - %s): %s. ",
					strings.ReplaceAll(lang, "_", "/"), details.Proficiency, details.Experience, details.Details)
			}

			appendChunk(entity.ContentChunk{
				Id:       fmt.Sprintf("programming_%d", chunkId),
				Title:    "Programming Languages",
				Content:  content,
				Type:     entity.ChunkTypeTechnicalSkills,
				Category: "programming",
				Tags:     append([]string{"programming", "languages", "technical"}, langs...),
			})
		}

		for _, category := range sortedKeys(tech.Categories) {
			skills := tech.Categories[category]
			label := titleCase(strings.ReplaceAll(category, "_", " "))
			appendChunk(entity.ContentChunk{
				Id:       fmt.Sprintf("tech_%s_%d", category, chunkId),
				Title:    label,
				Content:  fmt.Sprintf("%s: %s", label, strings.Join(skills, ", ")),
				Type:     entity.ChunkTypeTechnicalSkills,
				Category: "technology",
				Tags:     append([]string{"technical", category}, skills...),
			})
		}
	}

	// Projects
	for i, project := range profile.Projects {
		content := fmt.Sprintf("Project: %s (%s). Duration: %s. Status: %s. ",
			project.Name, project.Type, project.Duration, project.Status)
		content += fmt.Sprintf("Description: %s. ", project.Description)
		content += fmt.Sprintf("Technologies: %s. ", strings.Join(project.Technologies, ", "))
		content += fmt.Sprintf("Key features: %s. ", strings.Join(project.KeyFeatures, ". "))
		content += fmt.Sprintf("Achievements: %s.", strings.Join(project.Achievements, ". "))

		appendChunk(entity.ContentChunk{
			Id:       fmt.Sprintf("project_%d_%d", i+1, chunkId),
			Title:    project.Name,
			Content:  content,
			Type:     entity.ChunkTypeProject,
			Category: "projects",
			Tags:     append([]string{"project", slugify(project.Type)}, project.Technologies...),
		})
	}

	// Education, each with its STAR stories
	for i, education := range profile.Education {
		content := fmt.Sprintf("Degree: %s from %s (%s). ", education.Degree, education.Institution, education.Duration)
		content += fmt.Sprintf("Status: %s. Focus areas: %s. ", education.Status, strings.Join(education.FocusAreas, ", "))
		content += fmt.Sprintf("Relevant coursework: %s. ", strings.Join(education.RelevantCoursework, ", "))
		if len(education.Achievements) > 0 {
			content += fmt.Sprintf("Achievements: %s.", strings.Join(education.Achievements, ". "))
		}

		appendChunk(entity.ContentChunk{
			Id:       fmt.Sprintf("education_%d_%d", i+1, chunkId),
			Title:    fmt.Sprintf("%s - %s", education.Degree, education.Institution),
			Content:  content,
			Type:     entity.ChunkTypeEducation,
			Category: "education",
			Tags:     []string{"education", "university", slugify(education.Institution)},
		})

		for j, story := range education.StarStories {
			appendChunk(entity.ContentChunk{
				Id:       fmt.Sprintf("edu_star_%d_%d_%d", i+1, j+1, chunkId),
				Title:    fmt.Sprintf("Education STAR Story - %s #%d", education.Institution, j+1),
				Content:  starContent(story),
				Type:     entity.ChunkTypeEducationStarStory,
				Category: "behavioral",
				Tags:     []string{"star", "behavioral", "education", "university"},
			})
		}
	}

	// Behavioral Competencies
	for _, area := range sortedKeys(profile.BehavioralCompetencies) {
		for i, comp := range profile.BehavioralCompetencies[area] {
			appendChunk(entity.ContentChunk{
				Id:    fmt.Sprintf("behavioral_%s_%d_%d", area, i+1, chunkId),
				Title: fmt.Sprintf("Behavioral Competency - %s", comp.Competency),
				Content: fmt.Sprintf("Competency: %s. Example: %s. Skills demonstrated: %s.",
					comp.Competency, comp.Example, strings.Join(comp.SkillsDemonstrated, ", ")),
				Type:     entity.ChunkTypeBehavioralCompetency,
				Category: "behavioral",
				Tags:     append([]string{"behavioral", "competency", area}, comp.SkillsDemonstrated...),
			})
		}
	}

	// Interview Preparation
	if prep := profile.InterviewPreparation; prep != nil {
		for _, category := range sortedKeys(prep.AdditionalStarStories) {
			story := prep.AdditionalStarStories[category]
			appendChunk(entity.ContentChunk{
				Id:       fmt.Sprintf("interview_star_%s_%d", category, chunkId),
				Title:    fmt.Sprintf("Interview STAR - %s", titleCase(strings.ReplaceAll(category, "_", " "))),
				Content:  starContent(story),
				Type:     entity.ChunkTypeInterviewStarStory,
				Category: "behavioral",
				Tags:     []string{"star", "behavioral", "interview", category},
			})
		}

		storyGroups := []struct {
			name    string
			stories []entity.PreparedStory
		}{
			{"strength_stories", prep.StrengthStories},
			{"challenge_stories", prep.ChallengeStories},
			{"growth_stories", prep.GrowthStories},
		}
		for _, group := range storyGroups {
			label := titleCase(strings.ReplaceAll(group.name, "_", " "))
			for i, story := range group.stories {
				content := fmt.Sprintf("%s: %s. ", label, story.Topic())
				content += fmt.Sprintf("Story: %s. Key points: %s.", story.Story, strings.Join(story.KeyPoints, ", "))

				appendChunk(entity.ContentChunk{
					Id:       fmt.Sprintf("interview_%s_%d_%d", group.name, i+1, chunkId),
					Title:    fmt.Sprintf("Interview %s #%d", label, i+1),
					Content:  content,
					Type:     fmt.Sprintf("interview_%s", group.name),
					Category: "interview_prep",
					Tags:     append([]string{"interview", group.name}, story.KeyPoints...),
				})
			}
		}
	}

	// Unique Value Propositions
	if len(profile.UniqueValuePropositions) > 0 {
		appendChunk(entity.ContentChunk{
			Id:       fmt.Sprintf("uvp_%d", chunkId),
			Title:    "Unique Value Propositions",
			Content:  "Unique Value Propositions: " + strings.Join(profile.UniqueValuePropositions, ". "),
			Type:     entity.ChunkTypeValueProposition,
			Category: "strengths",
			Tags:     []string{"value", "strengths", "unique", "competitive_advantage"},
		})
	}

	return chunkList
}

// BuildFoodChunks converts food records into chunks for the food namespace.
func (b *Builder) BuildFoodChunks(foods []entity.FoodItem) []entity.ContentChunk {
	chunkList := make([]entity.ContentChunk, 0, len(foods))

	for i, food := range foods {
		name := food.DisplayName()
		if name == "" {
			name = fmt.Sprintf("Food Item %d", i+1)
		}

		contentParts := []string{fmt.Sprintf("Food: %s", name)}
		for _, attr := range foodAttributes(&food) {
			if attr.value != "" {
				contentParts = append(contentParts, fmt.Sprintf("%s: %s", attr.label, attr.value))
			}
		}

		tags := []string{"food"}
		for _, tag := range []string{food.Country, food.Cuisine, food.Category, food.Type} {
			if tag != "" {
				tags = append(tags, strings.ToLower(tag))
			}
		}

		chunkList = append(chunkList, entity.ContentChunk{
			Id:        fmt.Sprintf("food_%d", i+1),
			Title:     name,
			Content:   strings.Join(contentParts, ". "),
			Type:      entity.ChunkTypeFoodItem,
			Category:  "nutrition",
			Tags:      tags,
			Namespace: entity.NamespaceFood,
		})
	}

	return chunkList
}

type foodAttribute struct {
	label string
	value string
}

// foodAttributes lists the describable fields in a fixed narrative order.
func foodAttributes(food *entity.FoodItem) []foodAttribute {
	calories := ""
	if food.Calories != nil {
		calories = fmt.Sprintf("%g", *food.Calories)
	}
	return []foodAttribute{
		{"Description", food.Description},
		{"Ingredients", strings.Join(food.Ingredients, ", ")},
		{"Nutrition", food.Nutrition},
		{"Calories", calories},
		{"Country", food.Country},
		{"Origin", food.Origin},
		{"Cuisine", food.Cuisine},
		{"Category", food.Category},
		{"Type", food.Type},
		{"Preparation", food.Preparation},
		{"Cooking Method", food.CookingMethod},
		{"Allergens", strings.Join(food.Allergens, ", ")},
		{"Dietary Info", food.DietaryInfo},
		{"Taste", food.Taste},
		{"Texture", food.Texture},
		{"Color", food.Color},
		{"Season", food.Season},
		{"Benefits", food.Benefits},
	}
}

func starContent(story entity.StarStory) string {
	return fmt.Sprintf("Situation: %s Task: %s Action: %s Result: %s",
		story.Situation, story.Task, story.Action, story.Result)
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys[M map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
