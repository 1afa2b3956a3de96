package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/presence"
	"voyago/internal/repositories"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideItineraryService, provideGeneratorService, provideItineraryRepo)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	destinationRepo repositories.DestinationRepository,
	versionRepo repositories.VersionRepository,
	tokens mem.TokenStore,
	mailService services.MailServiceInterface,
	hub *presence.Hub,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, accountRepo, destinationRepo, versionRepo, tokens, mailService, hub)
}

func provideGeneratorService(itineraryService services.ItineraryServiceInterface) (services.GeneratorServiceInterface, error) {
	return services.NewGeneratorService(itineraryService)
}
