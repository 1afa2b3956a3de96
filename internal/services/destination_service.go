package services

import (
	"context"
	"log"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const defaultRecommendationLimit = 10

type DestinationServiceInterface interface {
	CreateDestination(ctx context.Context, request request_models.SaveDestinationRequest) (*response_models.DestinationResponse, error)
	GetDestination(ctx context.Context, id string) (*response_models.DestinationResponse, error)
	ListDestinations(ctx context.Context, search, category string, page, pageSize int) ([]response_models.DestinationResponse, error)
	UpdateDestination(ctx context.Context, id string, request request_models.SaveDestinationRequest) (*response_models.DestinationResponse, error)
	DeleteDestination(ctx context.Context, id string) error
	Recommend(ctx context.Context, request request_models.RecommendDestinationsRequest) ([]response_models.RecommendedDestinationResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	embeddingRepo   repositories.DestinationEmbeddingRepository
	embeddingClient utils.EmbeddingClientInterface
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	embeddingRepo repositories.DestinationEmbeddingRepository,
	embeddingClient utils.EmbeddingClientInterface,
) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		embeddingRepo:   embeddingRepo,
		embeddingClient: embeddingClient,
	}
}

func (d *DestinationService) CreateDestination(ctx context.Context, request request_models.SaveDestinationRequest) (*response_models.DestinationResponse, error) {
	destination := &db_models.Destination{
		Name:        request.Name,
		Country:     request.Country,
		City:        request.City,
		Category:    request.Category,
		Description: request.Description,
		ImageURL:    request.ImageURL,
	}

	if err := d.destinationRepo.Insert(ctx, destination); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Embedding failures are logged, not fatal: the destination exists, it
	// just will not surface in recommendations until re-indexed.
	if err := d.indexDestination(ctx, destination); err != nil {
		log.Printf("indexing destination %s failed: %v", destination.ID, err)
	}

	resp := toDestinationResponse(destination)
	return &resp, nil
}

func (d *DestinationService) GetDestination(ctx context.Context, id string) (*response_models.DestinationResponse, error) {
	destination, err := d.destinationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}
	resp := toDestinationResponse(destination)
	return &resp, nil
}

func (d *DestinationService) ListDestinations(ctx context.Context, search, category string, page, pageSize int) ([]response_models.DestinationResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	destinations, err := d.destinationRepo.List(ctx, search, category, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		responses = append(responses, toDestinationResponse(&destinations[i]))
	}
	return responses, nil
}

func (d *DestinationService) UpdateDestination(ctx context.Context, id string, request request_models.SaveDestinationRequest) (*response_models.DestinationResponse, error) {
	destination, err := d.destinationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	destination.Name = request.Name
	destination.Country = request.Country
	destination.City = request.City
	destination.Category = request.Category
	destination.Description = request.Description
	destination.ImageURL = request.ImageURL

	if err := d.destinationRepo.Update(ctx, destination); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := d.indexDestination(ctx, destination); err != nil {
		log.Printf("reindexing destination %s failed: %v", destination.ID, err)
	}

	resp := toDestinationResponse(destination)
	return &resp, nil
}

func (d *DestinationService) DeleteDestination(ctx context.Context, id string) error {
	destination, err := d.destinationRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if destination == nil {
		return utils.ErrDestinationNotFound
	}
	return d.destinationRepo.Delete(ctx, id)
}

func (d *DestinationService) Recommend(ctx context.Context, request request_models.RecommendDestinationsRequest) ([]response_models.RecommendedDestinationResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 50 {
		limit = defaultRecommendationLimit
	}

	query := buildPreferenceQuery(request)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := d.embeddingClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("embedding preference query failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	scored, err := d.embeddingRepo.NearestByVector(ctx, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ids := make([]string, 0, len(scored))
	scoreByID := make(map[string]float64, len(scored))
	for _, s := range scored {
		id := s.DestinationID.String()
		ids = append(ids, id)
		scoreByID[id] = s.Similarity
	}

	destinations, err := d.destinationRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[string]*db_models.Destination, len(destinations))
	for i := range destinations {
		byID[destinations[i].ID.String()] = &destinations[i]
	}

	// Preserve the similarity ordering from the vector query; embeddings
	// whose destination row is gone are skipped.
	results := make([]response_models.RecommendedDestinationResponse, 0, len(ids))
	for _, id := range ids {
		destination, ok := byID[id]
		if !ok {
			log.Printf("embedding references missing destination %s, skipping", id)
			continue
		}
		results = append(results, response_models.RecommendedDestinationResponse{
			DestinationResponse: toDestinationResponse(destination),
			Score:               scoreByID[id],
		})
	}
	return results, nil
}

func (d *DestinationService) indexDestination(ctx context.Context, destination *db_models.Destination) error {
	content := strings.Join([]string{
		destination.Name,
		destination.City,
		destination.Country,
		destination.Category,
		destination.Description,
	}, " ")

	vector, err := d.embeddingClient.GetEmbedding(ctx, content)
	if err != nil {
		return err
	}

	return d.embeddingRepo.Upsert(ctx, &db_models.DestinationEmbedding{
		DestinationID: destination.ID,
		Content:       content,
		Embedding:     vector,
	})
}

// buildPreferenceQuery flattens the preference payload into the free-text
// query that gets embedded.
func buildPreferenceQuery(request request_models.RecommendDestinationsRequest) string {
	parts := make([]string, 0, 4)
	p := request.Preferences
	if p.TravelStyle != "" {
		parts = append(parts, "travel style: "+p.TravelStyle)
	}
	if p.BudgetLevel != "" {
		parts = append(parts, "budget: "+p.BudgetLevel)
	}
	if len(p.ActivityPreferences) > 0 {
		parts = append(parts, "activities: "+strings.Join(p.ActivityPreferences, ", "))
	}
	if p.FreeText != "" {
		parts = append(parts, p.FreeText)
	}
	return strings.Join(parts, ". ")
}

func toDestinationResponse(destination *db_models.Destination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:          destination.ID.String(),
		Name:        destination.Name,
		Country:     destination.Country,
		City:        destination.City,
		Category:    destination.Category,
		Description: destination.Description,
		ImageURL:    destination.ImageURL,
	}
}
