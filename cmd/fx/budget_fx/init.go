package budget_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideBudgetService, provideBudgetRepo)

func provideBudgetRepo(db *gorm.DB) repositories.BudgetRepository {
	return repositories.NewBudgetRepository(db)
}

func provideBudgetService(
	budgetRepo repositories.BudgetRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.BudgetServiceInterface {
	return services.NewBudgetService(budgetRepo, itineraryRepo)
}
