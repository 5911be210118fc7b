package validate

import (
	"strings"
	"testing"

	"digitaltwin-rag-be/pkg/rag/intent"
)

func containsIssue(issues []string, want string) bool {
	for _, issue := range issues {
		if issue == want {
			return true
		}
	}
	return false
}

func TestValidateFirstPersonPerspective(t *testing.T) {
	v := NewValidator()

	result := v.Validate("The candidate worked on projects.", intent.IntentGeneral)
	if !containsIssue(result.Issues, "Response lacks first-person perspective") {
		t.Errorf("expected first-person issue, got %v", result.Issues)
	}

	result = v.Validate("I built a project with React during 2024.", intent.IntentGeneral)
	if containsIssue(result.Issues, "Response lacks first-person perspective") {
		t.Errorf("unexpected first-person issue, got %v", result.Issues)
	}
}

func TestValidateFirstPersonIsCaseSensitive(t *testing.T) {
	v := NewValidator()

	// Lower-case "i " does not count; the indicator list is matched
	// against the raw text.
	result := v.Validate("yes i agree it went well overall with React", intent.IntentGeneral)
	if !containsIssue(result.Issues, "Response lacks first-person perspective") {
		t.Errorf("expected first-person issue for lower-case pronoun, got %v", result.Issues)
	}
}

func TestValidateSpecificDetails(t *testing.T) {
	v := NewValidator()

	result := v.Validate("I enjoy working on things with people.", intent.IntentGeneral)
	if !containsIssue(result.Issues, "Response lacks specific details") {
		t.Errorf("expected specifics issue, got %v", result.Issues)
	}

	result = v.Validate("I shipped the feature in 3 weeks using Next.js.", intent.IntentGeneral)
	if containsIssue(result.Issues, "Response lacks specific details") {
		t.Errorf("unexpected specifics issue, got %v", result.Issues)
	}
}

func TestValidateLengthBands(t *testing.T) {
	v := NewValidator()

	short := "I built something with React quickly."
	long := "I built something with React. " + strings.Repeat("word ", 260)

	tests := []struct {
		name     string
		response string
		intent   intent.QueryIntent
		want     string
	}{
		{"behavioral too short", short, intent.IntentBehavioral, "Behavioral response too short (should be 120-200 words)"},
		{"behavioral too long", long, intent.IntentBehavioral, "Behavioral response too long (should be 120-200 words)"},
		{"technical too short", short, intent.IntentTechnical, "Technical response too short (should be 80-150 words)"},
		{"technical too long", long, intent.IntentTechnical, "Technical response too long (should be 80-150 words)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.response, tt.intent)
			if !containsIssue(result.Issues, tt.want) {
				t.Errorf("expected %q in %v", tt.want, result.Issues)
			}
		})
	}

	// General intent has no length band at all.
	result := v.Validate(short, intent.IntentGeneral)
	for _, issue := range result.Issues {
		if strings.Contains(issue, "too short") || strings.Contains(issue, "too long") {
			t.Errorf("unexpected length issue for general intent: %q", issue)
		}
	}
}

func TestValidateStarStructure(t *testing.T) {
	v := NewValidator()

	pad := strings.Repeat("detail ", 80)

	t.Run("explicit markers satisfy", func(t *testing.T) {
		response := "I faced a tough situation at work. My task was clear and I acted on it with React. " + pad
		result := v.Validate(response, intent.IntentBehavioral)
		if containsIssue(result.Issues, "Behavioral response missing STAR structure") {
			t.Errorf("unexpected STAR issue, got %v", result.Issues)
		}
	})

	t.Run("implicit story flow satisfies", func(t *testing.T) {
		response := "When I joined, during my internship with React, I had to fix search. I implemented a new index and the outcome was great. " + pad
		result := v.Validate(response, intent.IntentBehavioral)
		if containsIssue(result.Issues, "Behavioral response missing STAR structure") {
			t.Errorf("unexpected STAR issue, got %v", result.Issues)
		}
	})

	t.Run("unstructured behavioral flagged", func(t *testing.T) {
		response := "I like React and working on my projects a lot. " + pad
		result := v.Validate(response, intent.IntentBehavioral)
		if !containsIssue(result.Issues, "Behavioral response missing STAR structure") {
			t.Errorf("expected STAR issue, got %v", result.Issues)
		}
	})
}

func TestValidateHallucinations(t *testing.T) {
	v := NewValidator()

	t.Run("big tech without real employer flagged", func(t *testing.T) {
		result := v.Validate("I worked at Google on search.", intent.IntentGeneral)
		if !containsIssue(result.Issues, "Potential hallucination: Unknown company mentioned") {
			t.Errorf("expected hallucination issue, got %v", result.Issues)
		}
		// Hallucination findings carry no paired suggestion.
		if len(result.Suggestions) >= len(result.Issues) {
			t.Errorf("suggestions should be fewer than issues: %d vs %d", len(result.Suggestions), len(result.Issues))
		}
	})

	t.Run("big tech alongside real employer allowed", func(t *testing.T) {
		result := v.Validate("At ausbiz Consulting I integrated a Google API.", intent.IntentGeneral)
		if containsIssue(result.Issues, "Potential hallucination: Unknown company mentioned") {
			t.Errorf("unexpected hallucination issue, got %v", result.Issues)
		}
	})

	t.Run("experience years claim flagged for review", func(t *testing.T) {
		result := v.Validate("I have 10 years of experience with React.", intent.IntentGeneral)
		if !containsIssue(result.Issues, "Check experience timeframe accuracy") {
			t.Errorf("expected timeframe issue, got %v", result.Issues)
		}
	})
}

func TestAuthenticityScore(t *testing.T) {
	v := NewValidator()

	t.Run("rich personal response scores high", func(t *testing.T) {
		response := "In my experience, when I worked at ausbiz, I built and I learned a lot. It was challenging and difficult but I improved. I'd do it again, really."
		result := v.Validate(response, intent.IntentGeneral)
		if result.AuthenticityScore != 1.0 {
			t.Errorf("AuthenticityScore = %v, want capped 1.0", result.AuthenticityScore)
		}
	})

	t.Run("empty response scores zero", func(t *testing.T) {
		result := v.Validate("", intent.IntentGeneral)
		if result.AuthenticityScore != 0.0 {
			t.Errorf("AuthenticityScore = %v, want 0", result.AuthenticityScore)
		}
	})
}

func TestValidateIsValidOnlyWithoutIssues(t *testing.T) {
	v := NewValidator()

	good := "I built the Food RAG Explorer with React and Next.js in 10 weeks at ausbiz."
	result := v.Validate(good, intent.IntentGeneral)
	if !result.IsValid {
		t.Errorf("IsValid = false, issues: %v", result.Issues)
	}

	result = v.Validate("Things happened.", intent.IntentGeneral)
	if result.IsValid {
		t.Error("IsValid = true for response with issues")
	}
}
