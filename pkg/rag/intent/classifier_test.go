package intent

import (
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		question string
		want     QueryIntent
	}{
		{
			name:     "tell me about a time",
			question: "Tell me about a time you had to learn something quickly",
			want:     IntentBehavioral,
		},
		{
			name:     "tell me about yourself",
			question: "Tell me about yourself",
			want:     IntentBehavioral,
		},
		{
			name:     "describe a situation",
			question: "Describe a situation where you led a team",
			want:     IntentBehavioral,
		},
		{
			name:     "how do you approach routes behavioral",
			question: "How do you approach full-stack development?",
			want:     IntentBehavioral,
		},
		{
			name:     "frontend backend question",
			question: "Do you prefer frontend or backend work?",
			want:     IntentTechnical,
		},
		{
			name:     "rag lowercase never fires uppercase alternation",
			question: "Explain your rag pipeline",
			want:     IntentGeneral,
		},
		{
			name:     "project question",
			question: "Can you share your portfolio or github?",
			want:     IntentProjectSpecific,
		},
		{
			name:     "company question",
			question: "Why do you want to work at our company?",
			want:     IntentCompanySpecific,
		},
		{
			name:     "salary question",
			question: "What are your salary expectations?",
			want:     IntentSalaryLocation,
		},
		{
			name:     "availability question",
			question: "When can you start?",
			want:     IntentAvailability,
		},
		{
			name:     "unmatched falls through to general",
			question: "Coffee or tea?",
			want:     IntentGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.question)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	c := NewClassifier()

	// Behavioral wins over technical when both rule groups could match.
	got := c.Classify("Tell me about a time you deployed a backend service")
	if got != IntentBehavioral {
		t.Errorf("Classify() = %q, want %q", got, IntentBehavioral)
	}
}
