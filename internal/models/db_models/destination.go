package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Destination struct {
	BaseModel
	Name        string `gorm:"index"`
	Country     string
	City        string
	Category    string `gorm:"index"`
	Description string
	ImageURL    string
}

// DestinationEmbedding backs the recommendation lookup. Content is the text
// that was embedded (name, city, category and description concatenated).
type DestinationEmbedding struct {
	BaseModel
	DestinationID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Content       string
	Embedding     pgvector.Vector `gorm:"type:vector(1536)"`
}
