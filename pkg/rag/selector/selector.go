package selector

import (
	"digitaltwin-rag-be/internal/entity"
	"digitaltwin-rag-be/pkg/rag/intent"
)

// maxContextChunks caps how many chunks feed a single response.
const maxContextChunks = 3

// allowedTypes maps each intent to the chunk types worth answering from.
// Intents without an entry use defaultTypes.
var allowedTypes = map[intent.QueryIntent][]string{
	intent.IntentBehavioral: {
		entity.ChunkTypeWorkExperience,
		entity.ChunkTypeStarStory,
		entity.ChunkTypeInterviewStarStory,
		entity.ChunkTypeBehavioralCompetency,
	},
	intent.IntentTechnical: {
		entity.ChunkTypeTechnicalSkills,
		entity.ChunkTypeProject,
		entity.ChunkTypeEducation,
	},
	intent.IntentProjectSpecific: {
		entity.ChunkTypeProject,
	},
	intent.IntentSalaryLocation: {
		entity.ChunkTypeAvailability,
	},
	intent.IntentAvailability: {
		entity.ChunkTypeAvailability,
	},
	intent.IntentCompanySpecific: {
		entity.ChunkTypeCareerObjectives,
		entity.ChunkTypeValueProposition,
	},
}

var defaultTypes = []string{
	entity.ChunkTypeWorkExperience,
	entity.ChunkTypeTechnicalSkills,
}

// Selector narrows a retrieved chunk pool to the few chunks a response is
// built from. It filters by type only and keeps input order: relevance
// ranking already happened upstream in the vector store.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

func (s *Selector) SelectContext(queryIntent intent.QueryIntent, chunkPool []entity.ContentChunk) []entity.ContentChunk {
	types, ok := allowedTypes[queryIntent]
	if !ok {
		types = defaultTypes
	}

	allowed := make(map[string]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}

	selected := make([]entity.ContentChunk, 0, maxContextChunks)
	for _, chunk := range chunkPool {
		if !allowed[chunk.Type] {
			continue
		}
		selected = append(selected, chunk)
		if len(selected) >= maxContextChunks {
			break
		}
	}
	return selected
}
