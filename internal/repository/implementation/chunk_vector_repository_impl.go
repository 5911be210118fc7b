package implementation

import (
	"context"

	"digitaltwin-rag-be/internal/model"
	"digitaltwin-rag-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChunkVectorRepositoryImpl struct {
	db *gorm.DB
}

func NewChunkVectorRepository(db *gorm.DB) contract.ChunkVectorRepository {
	return &ChunkVectorRepositoryImpl{
		db: db,
	}
}

func (r *ChunkVectorRepositoryImpl) Upsert(ctx context.Context, chunk *model.ChunkVector) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"namespace", "document", "embedding", "metadata", "updated_at"}),
		}).
		Create(chunk).Error
}

func (r *ChunkVectorRepositoryImpl) FindByIds(ctx context.Context, ids []string) ([]*model.ChunkVector, error) {
	var chunks []*model.ChunkVector
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&chunks).Error; err != nil {
		return nil, err
	}
	return chunks, nil
}

func (r *ChunkVectorRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ChunkVector{}, "id = ?", id).Error
}

func (r *ChunkVectorRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.ChunkVector{}).Error
}

func (r *ChunkVectorRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChunkVector{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunk vectors with similarity scores.
// Cosine distance in pgvector is: 1 - cosine_similarity
func (r *ChunkVectorRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredChunkVector, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.ChunkVector
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("chunk_vectors").
		Select("chunk_vectors.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredChunkVector, len(results))
	for i, res := range results {
		chunk := res.ChunkVector
		scored[i] = &contract.ScoredChunkVector{
			Chunk:      &chunk,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
