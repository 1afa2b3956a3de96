package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/budget_fx"
	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/dashboard_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/destination_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/mail_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/cmd/fx/presence_fx"
	"voyago/cmd/fx/version_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/presence"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		budget_fx.Module,
		destination_fx.Module,
		version_fx.Module,
		dashboard_fx.Module,
		presence_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	budgetController *controllers.BudgetController,
	destinationController *controllers.DestinationController,
	versionController *controllers.VersionController,
	dashboardController *controllers.DashboardController,
	hub *presence.Hub) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, itineraryController, budgetController,
		destinationController, versionController, dashboardController, hub)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	budgetController *controllers.BudgetController,
	destinationController *controllers.DestinationController,
	versionController *controllers.VersionController,
	dashboardController *controllers.DashboardController,
	hub *presence.Hub) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	me := r.Group("/accounts", middleware.JWTAuthMiddleware())
	me.GET("/me", accountController.GetProfile)
	me.PUT("/me", accountController.UpdateProfile)
	me.PUT("/me/preferences", accountController.UpdatePreferences)

	itineraries := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itineraries.POST("", itineraryController.CreateItinerary)
	itineraries.GET("/my", itineraryController.ListMyItineraries)
	itineraries.GET("/collaborative", itineraryController.ListSharedItineraries)
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.POST("/invites/accept", itineraryController.AcceptInvite)
	itineraries.POST("/versions/restore", versionController.RestoreVersion)
	itineraries.GET("/:id", itineraryController.GetItinerary)
	itineraries.PUT("/:id", itineraryController.UpdateItinerary)
	itineraries.DELETE("/:id", itineraryController.DeleteItinerary)
	itineraries.POST("/:id/collaborators", itineraryController.ManageCollaborators)
	itineraries.PUT("/:id/collaborators/:collaboratorId/permissions", itineraryController.UpdatePermissions)
	itineraries.GET("/:id/budget", budgetController.GetBudget)
	itineraries.PUT("/:id/budget", budgetController.SaveBudget)
	itineraries.POST("/:id/budget/expenses", budgetController.AddExpense)
	itineraries.DELETE("/:id/budget/expenses/:expenseId", budgetController.DeleteExpense)
	itineraries.GET("/:id/versions", versionController.ListVersions)
	itineraries.GET("/:id/versions/:number", versionController.GetVersionData)

	destinations := r.Group("/destinations")
	destinations.GET("", destinationController.ListDestinations)
	destinations.GET("/:id", destinationController.GetDestination)

	destinationsAuth := r.Group("/destinations", middleware.JWTAuthMiddleware())
	destinationsAuth.POST("", destinationController.CreateDestination)
	destinationsAuth.PUT("/:id", destinationController.UpdateDestination)
	destinationsAuth.DELETE("/:id", destinationController.DeleteDestination)
	destinationsAuth.POST("/recommend", destinationController.RecommendDestinations)

	r.GET("/dashboard", middleware.JWTAuthMiddleware(), dashboardController.GetDashboard)

	r.GET("/ws/itineraries/:id", middleware.JWTAuthMiddleware(), presence.Handler(hub))
}
