package vectorstore

import "context"

// Hit is one ranked result from a similarity query. Metadata is whatever was
// stored at upsert time and may be nil for vectors written by older tooling.
type Hit struct {
	Id       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

// Record is one stored vector returned by Fetch.
type Record struct {
	Id       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
}

// Info describes the store's current state.
type Info struct {
	VectorCount int64 `json:"vectorCount"`
}

// Store is the contract for a text-in vector store: callers hand over raw
// text and metadata, embedding happens behind the interface. Query results
// are ordered by the store's own relevance ranking and carry no native
// namespace filter; partition filtering is the caller's job.
type Store interface {
	Upsert(ctx context.Context, id string, text string, metadata map[string]any) error
	Query(ctx context.Context, text string, topK int) ([]Hit, error)
	Fetch(ctx context.Context, ids []string) ([]Record, error)
	Delete(ctx context.Context, id string) error
	// Reset clears the entire store. Destructive and irreversible.
	Reset(ctx context.Context) error
	Info(ctx context.Context) (*Info, error)
}
