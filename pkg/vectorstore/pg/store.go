package pg

import (
	"context"
	"encoding/json"
	"fmt"

	"digitaltwin-rag-be/internal/model"
	"digitaltwin-rag-be/internal/repository/contract"
	"digitaltwin-rag-be/pkg/embedding"
	"digitaltwin-rag-be/pkg/vectorstore"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// PgStore implements vectorstore.Store on top of Postgres with the pgvector
// extension. Unlike the hosted backend it has no server-side embeddings, so
// it runs every text through the configured embedding provider itself.
type PgStore struct {
	repo     contract.ChunkVectorRepository
	embedder embedding.EmbeddingProvider
}

var _ vectorstore.Store = &PgStore{}

func NewPgStore(repo contract.ChunkVectorRepository, embedder embedding.EmbeddingProvider) *PgStore {
	return &PgStore{
		repo:     repo,
		embedder: embedder,
	}
}

func (s *PgStore) Upsert(ctx context.Context, id string, text string, metadata map[string]any) error {
	resp, err := s.embedder.Generate(ctx, text, "retrieval_document")
	if err != nil {
		return fmt.Errorf("embed document %s: %w", id, err)
	}

	var metadataJSON datatypes.JSON
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata %s: %w", id, err)
		}
		metadataJSON = datatypes.JSON(raw)
	}

	namespace, _ := metadata["namespace"].(string)

	chunk := &model.ChunkVector{
		Id:        id,
		Namespace: namespace,
		Document:  text,
		Embedding: pgvector.NewVector(resp.Embedding.Values),
		Metadata:  metadataJSON,
	}
	return s.repo.Upsert(ctx, chunk)
}

func (s *PgStore) Query(ctx context.Context, text string, topK int) ([]vectorstore.Hit, error) {
	resp, err := s.embedder.Generate(ctx, text, "retrieval_query")
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := s.repo.SearchSimilarWithScore(ctx, resp.Embedding.Values, topK)
	if err != nil {
		return nil, err
	}

	hits := make([]vectorstore.Hit, len(scored))
	for i, sc := range scored {
		hits[i] = vectorstore.Hit{
			Id:       sc.Chunk.Id,
			Score:    sc.Similarity,
			Metadata: decodeMetadata(sc.Chunk.Metadata),
		}
	}
	return hits, nil
}

func (s *PgStore) Fetch(ctx context.Context, ids []string) ([]vectorstore.Record, error) {
	chunks, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	records := make([]vectorstore.Record, len(chunks))
	for i, c := range chunks {
		records[i] = vectorstore.Record{
			Id:       c.Id,
			Metadata: decodeMetadata(c.Metadata),
		}
	}
	return records, nil
}

func (s *PgStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PgStore) Reset(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *PgStore) Info(ctx context.Context) (*vectorstore.Info, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &vectorstore.Info{VectorCount: count}, nil
}

func decodeMetadata(raw datatypes.JSON) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var metadata map[string]any
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil
	}
	return metadata
}
