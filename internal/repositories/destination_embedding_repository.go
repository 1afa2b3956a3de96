package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type ScoredDestinationEmbedding struct {
	db_models.DestinationEmbedding
	Similarity float64 `gorm:"column:similarity"`
}

type DestinationEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.DestinationEmbedding) error
	NearestByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]ScoredDestinationEmbedding, error)
}

type destinationEmbeddingRepository struct {
	db *gorm.DB
}

func NewDestinationEmbeddingRepository(db *gorm.DB) DestinationEmbeddingRepository {
	return &destinationEmbeddingRepository{db: db}
}

func (r *destinationEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.DestinationEmbedding) error {
	return r.db.WithContext(ctx).
		Where("destination_id = ?", embedding.DestinationID).
		Assign(map[string]interface{}{
			"content":   embedding.Content,
			"embedding": embedding.Embedding,
		}).
		FirstOrCreate(embedding).Error
}

func (r *destinationEmbeddingRepository) NearestByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]ScoredDestinationEmbedding, error) {
	var results []ScoredDestinationEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM destination_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.5
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.WithContext(ctx).Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
