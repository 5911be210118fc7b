package response

import (
	"fmt"
	"strings"

	"digitaltwin-rag-be/internal/entity"
)

const digitalTwinSystemPrompt = `You are Jashandeep's AI Digital Twin. Answer questions about Jashandeep's professional background, skills, experience, and qualifications based on the provided context.

Be conversational and personal, as if you are Jashandeep speaking about yourself. Use "I" and "my" when referring to experiences and achievements. Provide specific examples and details from the context.

For interview questions, provide STAR format responses when appropriate (Situation, Task, Action, Result).`

const foodSystemPrompt = `You are a knowledgeable food and nutrition assistant. Answer questions about foods, nutrition, cooking, and dietary information based on the provided context.

Provide helpful, accurate information about food items, their nutritional benefits, preparation methods, and cultural significance. Be informative yet conversational.`

const genericSystemPrompt = "You are a helpful assistant. Answer questions based on the provided context."

// SystemPromptFor returns the persona prompt for LLM-backed generation in
// the given namespace.
func SystemPromptFor(ns entity.Namespace) string {
	switch ns {
	case entity.NamespaceDigitalTwin:
		return digitalTwinSystemPrompt
	case entity.NamespaceFood:
		return foodSystemPrompt
	default:
		return genericSystemPrompt
	}
}

// BuildUserPrompt renders retrieved chunks and the question into the user
// message sent alongside the system prompt.
func BuildUserPrompt(question string, results []entity.RetrievedResult) string {
	contextParts := make([]string, len(results))
	for i, r := range results {
		contextParts[i] = fmt.Sprintf("Title: %s\nType: %s\nContent: %s\n", r.Title(), r.ChunkType(), r.Content())
	}
	contextBlock := strings.Join(contextParts, "\n---\n")
	return fmt.Sprintf("Context:\n%s\n\nQuestion: %s\n\nAnswer:", contextBlock, question)
}
