package version_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideVersionService, provideVersionRepo)

func provideVersionRepo(db *gorm.DB) repositories.VersionRepository {
	return repositories.NewVersionRepository(db)
}

func provideVersionService(
	versionRepo repositories.VersionRepository,
	itineraryRepo repositories.ItineraryRepository,
	itineraryService services.ItineraryServiceInterface,
) services.VersionServiceInterface {
	return services.NewVersionService(versionRepo, itineraryRepo, itineraryService)
}
