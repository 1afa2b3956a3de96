package utils

import (
	"context"
	"errors"
	"os"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyEmbedding = errors.New("embedding response carried no vectors")

// EmbeddingClientInterface abstracts the embedding backend so the
// recommendation flow can be tested without network access.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient() *OpenAIEmbeddingClient {
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  openai.SmallEmbedding3,
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, err
	}
	return firstEmbedding(resp)
}

func firstEmbedding(resp openai.EmbeddingResponse) (pgvector.Vector, error) {
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, ErrEmptyEmbedding
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
