package controllers_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewBudgetController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewVersionController),
	fx.Provide(controllers.NewDashboardController))
