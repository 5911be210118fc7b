package response

import (
	"fmt"
	"strings"

	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/rag/intent"
)

// Generator produces template-based answers. Routing inside an intent is a
// second keyword check against the question, independent of the classifier's
// patterns: the classifier decides the intent, the generator decides which
// scripted story best fits it.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(question string, queryIntent intent.QueryIntent, context []entity.ContentChunk) string {
	switch queryIntent {
	case intent.IntentBehavioral:
		return g.generateBehavioral(question, context)
	case intent.IntentTechnical:
		return g.generateTechnical(question, context)
	case intent.IntentSalaryLocation:
		return salaryLocationTemplate
	case intent.IntentAvailability:
		return availabilityTemplate
	case intent.IntentCompanySpecific:
		return companyInterestTemplate
	default:
		if len(context) > 0 {
			return context[0].Content
		}
		return "I'd be happy to discuss that with you."
	}
}

func (g *Generator) generateBehavioral(question string, context []entity.ContentChunk) string {
	lower := strings.ToLower(question)

	switch {
	case containsAny(lower, "challenging", "difficult", "problem"):
		return challengingProjectTemplate
	case containsAny(lower, "learn", "technology", "quickly"):
		return learningTemplate
	case containsAny(lower, "balance", "multiple", "responsibilities"):
		return timeManagementTemplate
	case containsAny(lower, "mentor", "help", "explain"):
		return mentoringTemplate
	case containsAny(lower, "tell me about yourself", "background"):
		return introductionTemplate
	}

	for _, chunk := range context {
		if chunk.Type == entity.ChunkTypeWorkExperience || chunk.Type == entity.ChunkTypeStarStory {
			return fmt.Sprintf("Let me share an example from my experience...\n\n%s", chunk.Content)
		}
	}
	return "I'd be happy to share an example from my experience..."
}

func (g *Generator) generateTechnical(question string, context []entity.ContentChunk) string {
	lower := strings.ToLower(question)

	switch {
	case strings.Contains(lower, "rag"):
		return ragExplanationTemplate
	case containsAny(lower, "full stack", "full-stack"):
		return fullstackExplanationTemplate
	case containsAny(lower, "deploy", "cloud", "vercel"):
		return deploymentExplanationTemplate
	case containsAny(lower, "ai", "ml", "artificial intelligence"):
		return aiMlExplanationTemplate
	}

	for _, chunk := range context {
		if chunk.Type == entity.ChunkTypeTechnicalSkills {
			return fmt.Sprintf("Based on my experience, %s", chunk.Content)
		}
	}
	return "I'd be happy to discuss my technical experience..."
}

// containsAny checks substring presence, not word boundaries: "ai" fires
// inside "maintain" too. Routing parity depends on that looseness.
func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
