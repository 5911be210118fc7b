package response

import (
	"strings"
	"testing"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/rag/intent"
)

func TestGenerateBehavioralRouting(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name     string
		question string
		wantPart string
	}{
		{
			name:     "challenging routes to project story",
			question: "Describe a challenging project you worked on",
			wantPart: "Food RAG Explorer",
		},
		{
			name:     "learning routes to internship story",
			question: "Tell me about a time you had to learn something quickly",
			wantPart: "ausbiz Consulting",
		},
		{
			name:     "balance routes to time management",
			question: "How do you balance multiple responsibilities?",
			wantPart: "Royal Albert Hotel",
		},
		{
			name:     "mentoring routes to tutoring story",
			question: "Tell me about a time you mentored someone",
			wantPart: "LMS system",
		},
		{
			name:     "background routes to introduction",
			question: "Walk me through your background",
			wantPart: "Victoria University Brisbane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Generate(tt.question, intent.IntentBehavioral, nil)
			if !strings.Contains(got, tt.wantPart) {
				t.Errorf("Generate(%q) missing %q:\n%s", tt.question, tt.wantPart, got)
			}
		})
	}
}

func TestGenerateBehavioralFallsBackToContext(t *testing.T) {
	g := NewGenerator()

	context := []entity.ContentChunk{
		{Type: entity.ChunkTypeEducation, Content: "education content"},
		{Type: entity.ChunkTypeStarStory, Content: "star story content"},
	}

	got := g.Generate("Describe a situation where you led", intent.IntentBehavioral, context)
	want := "Let me share an example from my experience...\n\nstar story content"
	if got != want {
		t.Errorf("Generate() = %q, want %q", got, want)
	}

	got = g.Generate("Describe a situation where you led", intent.IntentBehavioral, nil)
	if got != "I'd be happy to share an example from my experience..." {
		t.Errorf("Generate() with no context = %q", got)
	}
}

func TestGenerateTechnicalRouting(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name     string
		question string
		wantPart string
	}{
		{
			name:     "rag keyword",
			question: "Explain your rag experience",
			wantPart: "Retrieval-Augmented Generation",
		},
		{
			name:     "full stack keyword",
			question: "What is your full stack experience?",
			wantPart: "modern JavaScript technologies",
		},
		{
			name:     "deployment keyword",
			question: "How do you deploy your applications?",
			wantPart: "Vercel",
		},
		{
			name:     "loose ai substring fires inside maintain",
			question: "How do you maintain code quality?",
			wantPart: "AI/ML integration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Generate(tt.question, intent.IntentTechnical, nil)
			if !strings.Contains(got, tt.wantPart) {
				t.Errorf("Generate(%q) missing %q:\n%s", tt.question, tt.wantPart, got)
			}
		})
	}
}

func TestGenerateTechnicalFallsBackToSkills(t *testing.T) {
	g := NewGenerator()

	context := []entity.ContentChunk{
		{Type: entity.ChunkTypeProject, Content: "project content"},
		{Type: entity.ChunkTypeTechnicalSkills, Content: "skills content"},
	}

	got := g.Generate("What databases have you used?", intent.IntentTechnical, context)
	if got != "Based on my experience, skills content" {
		t.Errorf("Generate() = %q", got)
	}
}

func TestGenerateScriptedIntents(t *testing.T) {
	g := NewGenerator()

	salary := g.Generate("What are your salary expectations?", intent.IntentSalaryLocation, nil)
	if !strings.Contains(salary, "$65,000 to $75,000") {
		t.Errorf("salary template missing range:\n%s", salary)
	}

	availability := g.Generate("When can you start?", intent.IntentAvailability, nil)
	if !strings.Contains(availability, "graduating in June 2026") {
		t.Errorf("availability template missing graduation:\n%s", availability)
	}

	company := g.Generate("Why us?", intent.IntentCompanySpecific, nil)
	if !strings.Contains(company, "research your specific company") {
		t.Errorf("company template unexpected:\n%s", company)
	}
}

func TestGenerateDefaultIntent(t *testing.T) {
	g := NewGenerator()

	got := g.Generate("anything", intent.IntentGeneral, []entity.ContentChunk{{Content: "first chunk"}})
	if got != "first chunk" {
		t.Errorf("Generate() = %q, want first chunk content", got)
	}

	got = g.Generate("anything", intent.IntentGeneral, nil)
	if got != "I'd be happy to discuss that with you." {
		t.Errorf("Generate() = %q", got)
	}
}
