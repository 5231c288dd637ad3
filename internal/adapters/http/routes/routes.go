package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	"loandesk/internal/adapters/http/handlers"
	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/config"
	"loandesk/internal/core/services"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Initialize services
	eligibilityService := services.NewEligibilityService()
	authService := services.NewAuthService(userRepo, cfg)
	loanService := services.NewLoanService(loanRepo, eligibilityService)
	userService := services.NewUserService(userRepo)
	metricsService := services.NewMetricsService(userRepo, loanRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	loanHandler := handlers.NewLoanHandler(loanService)
	userHandler := handlers.NewUserHandler(userService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)

	// Health check & root routes (public)
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group. The principal is resolved exactly once here, before
	// any route-level policy check.
	apiV1 := app.Group("/api/v1", middleware.Authenticate(userRepo, cfg))

	// Auth routes (public)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Admin routes (ADMIN only)
	adminRoutes := apiV1.Group("/admin", middleware.AdminOnly())
	adminRoutes.Get("/metrics", metricsHandler.Metrics)
	adminRoutes.Get("/users", userHandler.List)
	adminRoutes.Put("/users/:id/role", userHandler.UpdateRole)
	adminRoutes.Put("/users/:id/active", userHandler.UpdateActive)

	// Loan routes (any authenticated principal; approve/reject gated
	// further to ANALYST or ADMIN)
	loanRoutes := apiV1.Group("/loans", middleware.RequireAuthenticated())
	loanRoutes.Post("/apply", loanHandler.Apply)
	loanRoutes.Get("/", loanHandler.List)
	loanRoutes.Get("/:id", loanHandler.Get)
	loanRoutes.Patch("/:id/approve", middleware.AnalystOrAdmin(), loanHandler.Approve)
	loanRoutes.Patch("/:id/reject", middleware.AnalystOrAdmin(), loanHandler.Reject)

	// Profile routes (any authenticated principal)
	userRoutes := apiV1.Group("/users", middleware.RequireAuthenticated())
	userRoutes.Get("/me", userHandler.GetProfile)
	userRoutes.Put("/me", userHandler.UpdateProfile)
}
