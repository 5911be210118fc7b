package entity

import "strings"

// Namespace is the logical partition a chunk belongs to. The backing vector
// store has no native partition support, so the namespace travels both as an
// id prefix and as a metadata field, and the two are never assumed to agree.
type Namespace string

const (
	NamespaceDigitalTwin Namespace = "dt"
	NamespaceFood        Namespace = "food"
	NamespaceUnknown     Namespace = "unknown"
)

// Historical long codes left behind by earlier upload scripts. They are
// accepted on read and normalized; the short codes are the only values
// ever written.
const (
	aliasDigitalTwin = "digitaltwin"
	aliasFood        = "foods"
)

// NormalizeNamespace maps a raw namespace string (canonical, historical
// alias, or garbage) to its canonical value. Empty input means the metadata
// carried no namespace at all and is reported as unknown.
func NormalizeNamespace(raw string) Namespace {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(NamespaceDigitalTwin), aliasDigitalTwin:
		return NamespaceDigitalTwin
	case string(NamespaceFood), aliasFood:
		return NamespaceFood
	case "":
		return NamespaceUnknown
	default:
		return Namespace(raw)
	}
}

// Prefix returns the id prefix for this namespace, e.g. "dt-".
func (n Namespace) Prefix() string {
	return string(n) + "-"
}

// NamespaceFromID infers the namespace from a vector id prefix. Used as a
// fallback when stored metadata predates the namespace field.
func NamespaceFromID(id string) Namespace {
	switch {
	case strings.HasPrefix(id, NamespaceDigitalTwin.Prefix()):
		return NamespaceDigitalTwin
	case strings.HasPrefix(id, NamespaceFood.Prefix()):
		return NamespaceFood
	default:
		return NamespaceUnknown
	}
}

// ContentChunk is the atomic retrievable unit built from a profile document.
// Id is stable across rebuilds so upserts overwrite rather than duplicate.
type ContentChunk struct {
	Id        string
	Title     string
	Content   string
	Type      string
	Category  string
	Tags      []string
	Namespace Namespace
}

// Chunk type vocabulary produced by the builder and consumed by the
// context selector.
const (
	ChunkTypePersonalInfo         = "personal_info"
	ChunkTypeAvailability         = "availability"
	ChunkTypeCareerObjectives     = "career_objectives"
	ChunkTypeWorkExperience       = "work_experience"
	ChunkTypeStarStory            = "star_story"
	ChunkTypeTechnicalSkills      = "technical_skills"
	ChunkTypeProject              = "project"
	ChunkTypeEducation            = "education"
	ChunkTypeEducationStarStory   = "education_star_story"
	ChunkTypeBehavioralCompetency = "behavioral_competency"
	ChunkTypeInterviewStarStory   = "interview_star_story"
	ChunkTypeValueProposition     = "value_proposition"
	ChunkTypeFoodItem             = "food_item"
)
