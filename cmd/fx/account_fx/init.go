package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	itineraryRepo repositories.ItineraryRepository,
	tokens mem.TokenStore,
	mailService services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, itineraryRepo, tokens, mailService)
}
