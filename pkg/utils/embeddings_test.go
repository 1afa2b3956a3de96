package utils

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestFirstEmbeddingEmptyResponse(t *testing.T) {
	_, err := firstEmbedding(openai.EmbeddingResponse{})
	if !errors.Is(err, ErrEmptyEmbedding) {
		t.Fatalf("err = %v, want ErrEmptyEmbedding", err)
	}
}

func TestFirstEmbeddingReturnsVector(t *testing.T) {
	resp := openai.EmbeddingResponse{
		Data: []openai.Embedding{{Embedding: []float32{0.1, 0.2, 0.3}}},
	}

	vec, err := firstEmbedding(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := vec.Slice(); len(got) != 3 || got[0] != 0.1 {
		t.Errorf("vector = %v, want the response embedding", got)
	}
}
