package destination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideDestinationService, provideDestinationRepo, provideEmbeddingRepo, provideEmbeddingClient)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.DestinationEmbeddingRepository {
	return repositories.NewDestinationEmbeddingRepository(db)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient()
}

func provideDestinationService(
	destinationRepo repositories.DestinationRepository,
	embeddingRepo repositories.DestinationEmbeddingRepository,
	embeddingClient utils.EmbeddingClientInterface,
) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, embeddingRepo, embeddingClient)
}
