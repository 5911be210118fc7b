package contract

import (
	"context"

	"digitaltwin-rag-be/internal/model"
)

// ScoredChunkVector wraps ChunkVector with its similarity score
type ScoredChunkVector struct {
	Chunk      *model.ChunkVector
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type ChunkVectorRepository interface {
	Upsert(ctx context.Context, chunk *model.ChunkVector) error
	FindByIds(ctx context.Context, ids []string) ([]*model.ChunkVector, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilarWithScore ranks by pgvector cosine distance
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredChunkVector, error)
}
