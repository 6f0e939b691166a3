package routes

import (
	"time"

	"github.com/fitmantra/fitmantra-backend/internal/config"
	"github.com/fitmantra/fitmantra-backend/internal/handlers"
	"github.com/fitmantra/fitmantra-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	coachHandler *handlers.CoachHandler,
	ordersHandler *handlers.OrdersHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Catalog — public
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/:slug", catalogHandler.GetProductBySlug)
	api.Get("/plans", catalogHandler.ListPlans)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Cart — protected; every mutation goes through the cart service
	cartGroup := api.Group("/cart", middleware.JWTProtected(cfg))
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:id", cartHandler.UpdateQuantity)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.Clear)

	// Checkout + orders — protected
	api.Post("/checkout", middleware.JWTProtected(cfg), checkoutHandler.PlaceOrder)
	api.Get("/orders", middleware.JWTProtected(cfg), ordersHandler.ListMine)

	// Subscription + entitlement — protected
	api.Get("/subscription", middleware.JWTProtected(cfg), subscriptionHandler.Status)
	api.Post("/subscription/checkout", middleware.JWTProtected(cfg), subscriptionHandler.Subscribe)
	api.Get("/features/:key", middleware.JWTProtected(cfg), subscriptionHandler.CheckFeature)

	// Coach flows — protected and entitlement-gated per feature key
	coachGroup := api.Group("/coach", middleware.JWTProtected(cfg))
	coachGroup.Post("/workout-plan", coachHandler.WorkoutPlan)
	coachGroup.Post("/nutrition-plan", coachHandler.NutritionPlan)
	coachGroup.Post("/chat", coachHandler.Chat)
	coachGroup.Post("/form-analysis", coachHandler.FormAnalysis)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/orders", ordersHandler.ListAll)
	admin.Get("/subscriptions", ordersHandler.ListSubscriptions)
}
