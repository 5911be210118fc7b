package entity

// RetrievedResult wraps one raw vector-store hit. Score semantics are
// store-defined; results are only ever compared by the store's ranking.
type RetrievedResult struct {
	Id        string
	Score     float64
	Metadata  map[string]any
	Namespace Namespace
}

// Title reads the stored title, falling back to a generic label the way the
// query path always has.
func (r *RetrievedResult) Title() string {
	if v, ok := r.Metadata["title"].(string); ok && v != "" {
		return v
	}
	return "Untitled"
}

// Content reads the stored chunk body. Missing content yields an empty
// string, never an error; callers decide how to degrade.
func (r *RetrievedResult) Content() string {
	v, _ := r.Metadata["content"].(string)
	return v
}

// ChunkType reads the stored chunk type, defaulting to "unknown".
func (r *RetrievedResult) ChunkType() string {
	if v, ok := r.Metadata["type"].(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// ToChunk reconstructs a ContentChunk view over the hit's metadata so the
// selector and generator can treat retrieved and freshly built chunks alike.
func (r *RetrievedResult) ToChunk() ContentChunk {
	category, _ := r.Metadata["category"].(string)
	var tags []string
	if raw, ok := r.Metadata["tags"].([]any); ok {
		for _, t := range raw {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
	}
	return ContentChunk{
		Id:        r.Id,
		Title:     r.Title(),
		Content:   r.Content(),
		Type:      r.ChunkType(),
		Category:  category,
		Tags:      tags,
		Namespace: r.Namespace,
	}
}
