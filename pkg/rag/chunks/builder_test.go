package chunks

import (
	"strings"
	"testing"

	"digitaltwin-rag-be/internal/entity"
)

func sampleProfile() *entity.ProfileDocument {
	return &entity.ProfileDocument{
		PersonalInfo: &entity.PersonalInfo{
			Name:          "Jashandeep Singh",
			Profession:    "Full Stack Developer",
			Location:      entity.Location{Current: "Sydney, Australia"},
			ElevatorPitch: "Builds AI-assisted web applications.",
			VisaStatus:    "Student visa with full work rights",
			Availability: entity.Availability{
				Current:        "Part-time",
				PostGraduation: "Full-time",
				GraduationDate: "November 2025",
			},
		},
		CareerObjectives: &entity.CareerObjectives{
			ShortTerm:        "Land a graduate role",
			MediumTerm:       "Lead a product team",
			LongTerm:         "Found a startup",
			TargetIndustries: []string{"FinTech", "SaaS"},
		},
		WorkExperience: []entity.WorkExperience{
			{
				Position:            "AI Developer Intern",
				Company:             "ausbiz Consulting",
				Duration:            "10 weeks",
				KeyResponsibilities: []string{"Built a RAG pipeline"},
				Achievements:        []string{"Shipped to production"},
				Technologies:        []string{"Python", "Next.js"},
				StarStories: []entity.StarStory{
					{Situation: "Legacy search was slow.", Task: "Speed it up.", Action: "Added vector retrieval.", Result: "Latency halved."},
				},
			},
		},
		TechnicalSkills: &entity.TechnicalSkills{
			ProgrammingLanguages: map[string]entity.LanguageSkill{
				"python":                {Proficiency: "Advanced", Experience: "3 years", Details: "Data and backend work"},
				"javascript_typescript": {Proficiency: "Advanced", Experience: "2 years", Details: "Frontend work"},
			},
			Categories: map[string][]string{
				"web_frameworks": {"React", "Next.js"},
				"databases":      {"PostgreSQL"},
			},
		},
		UniqueValuePropositions: []string{"Ships fast", "Learns faster"},
	}
}

func TestBuildProfileChunks(t *testing.T) {
	b := NewBuilder()

	chunkList := b.BuildProfileChunks(sampleProfile())

	// personal, availability, career, experience, star,
	// programming, 2 tech categories, uvp
	if len(chunkList) != 9 {
		t.Fatalf("BuildProfileChunks() returned %d chunks, want 9", len(chunkList))
	}

	first := chunkList[0]
	if first.Id != "personal_1" {
		t.Errorf("first chunk id = %q, want %q", first.Id, "personal_1")
	}
	wantContent := "Jashandeep Singh is a Full Stack Developer based in Sydney, Australia. Builds AI-assisted web applications."
	if first.Content != wantContent {
		t.Errorf("first chunk content = %q, want %q", first.Content, wantContent)
	}

	availability := chunkList[1]
	if availability.Id != "availability_2" {
		t.Errorf("availability chunk id = %q, want %q", availability.Id, "availability_2")
	}
	if !strings.HasPrefix(availability.Content, "Visa Status: Student visa with full work rights.") {
		t.Errorf("availability content = %q, want visa status prefix", availability.Content)
	}

	career := chunkList[2]
	if !strings.Contains(career.Content, "Target industries: FinTech, SaaS.") {
		t.Errorf("career content missing target industries: %q", career.Content)
	}

	experience := chunkList[3]
	if experience.Id != "experience_1_4" {
		t.Errorf("experience chunk id = %q, want %q", experience.Id, "experience_1_4")
	}
	if experience.Title != "AI Developer Intern at ausbiz Consulting" {
		t.Errorf("experience title = %q", experience.Title)
	}

	star := chunkList[4]
	if star.Id != "star_1_1_5" {
		t.Errorf("star chunk id = %q, want %q", star.Id, "star_1_1_5")
	}
	wantStar := "Situation: Legacy search was slow. Task: Speed it up. Action: Added vector retrieval. Result: Latency halved."
	if star.Content != wantStar {
		t.Errorf("star content = %q, want %q", star.Content, wantStar)
	}

	for _, chunk := range chunkList {
		if chunk.Namespace != entity.NamespaceDigitalTwin {
			t.Errorf("chunk %s namespace = %q, want %q", chunk.Id, chunk.Namespace, entity.NamespaceDigitalTwin)
		}
	}
}

func TestBuildProfileChunksDeterministicOrder(t *testing.T) {
	b := NewBuilder()

	first := b.BuildProfileChunks(sampleProfile())
	second := b.BuildProfileChunks(sampleProfile())

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Id != second[i].Id {
			t.Errorf("chunk[%d] id differs across builds: %q vs %q", i, first[i].Id, second[i].Id)
		}
	}

	// Map-backed sections come out sorted by key.
	programming := first[5]
	if programming.Id != "programming_6" {
		t.Fatalf("programming chunk id = %q, want %q", programming.Id, "programming_6")
	}
	jsIdx := strings.Index(programming.Content, "javascript/typescript")
	pyIdx := strings.Index(programming.Content, "python")
	if jsIdx == -1 || pyIdx == -1 || jsIdx > pyIdx {
		t.Errorf("programming languages not in sorted key order: %q", programming.Content)
	}

	if first[6].Id != "tech_databases_7" {
		t.Errorf("tech chunk id = %q, want %q", first[6].Id, "tech_databases_7")
	}
	if first[7].Id != "tech_web_frameworks_8" {
		t.Errorf("tech chunk id = %q, want %q", first[7].Id, "tech_web_frameworks_8")
	}
	if first[7].Title != "Web Frameworks" {
		t.Errorf("tech chunk title = %q, want %q", first[7].Title, "Web Frameworks")
	}
}

func TestBuildProfileChunksSkipsMissingSections(t *testing.T) {
	b := NewBuilder()

	chunkList := b.BuildProfileChunks(&entity.ProfileDocument{
		CareerObjectives: &entity.CareerObjectives{ShortTerm: "a", MediumTerm: "b", LongTerm: "c"},
	})

	if len(chunkList) != 1 {
		t.Fatalf("BuildProfileChunks() returned %d chunks, want 1", len(chunkList))
	}
	if chunkList[0].Id != "career_1" {
		t.Errorf("chunk id = %q, want %q", chunkList[0].Id, "career_1")
	}
	if strings.Contains(chunkList[0].Content, "Target industries") {
		t.Errorf("content should omit empty target industries: %q", chunkList[0].Content)
	}
}

func TestBuildFoodChunks(t *testing.T) {
	b := NewBuilder()

	calories := 95.0
	foods := []entity.FoodItem{
		{
			Name:        "Apple",
			Description: "Fresh red apple",
			Country:     "Australia",
			Calories:    &calories,
			Nutrition:   "High in fiber and vitamin C",
		},
		{
			FoodName: "Butter Chicken",
			Cuisine:  "Indian",
			Category: "Main Course",
		},
	}

	chunkList := b.BuildFoodChunks(foods)
	if len(chunkList) != 2 {
		t.Fatalf("BuildFoodChunks() returned %d chunks, want 2", len(chunkList))
	}

	apple := chunkList[0]
	if apple.Id != "food_1" {
		t.Errorf("apple id = %q, want %q", apple.Id, "food_1")
	}
	wantContent := "Food: Apple. Description: Fresh red apple. Nutrition: High in fiber and vitamin C. Calories: 95. Country: Australia"
	if apple.Content != wantContent {
		t.Errorf("apple content = %q, want %q", apple.Content, wantContent)
	}
	if apple.Namespace != entity.NamespaceFood {
		t.Errorf("apple namespace = %q, want %q", apple.Namespace, entity.NamespaceFood)
	}

	butterChicken := chunkList[1]
	if butterChicken.Title != "Butter Chicken" {
		t.Errorf("title = %q, want food_name fallback", butterChicken.Title)
	}
	wantTags := []string{"food", "indian", "main course"}
	if len(butterChicken.Tags) != len(wantTags) {
		t.Fatalf("tags = %v, want %v", butterChicken.Tags, wantTags)
	}
	for i, tag := range wantTags {
		if butterChicken.Tags[i] != tag {
			t.Errorf("tag[%d] = %q, want %q", i, butterChicken.Tags[i], tag)
		}
	}
}
