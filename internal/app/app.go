package app

import (
	"papertrade-backend/internal/auth"
	"papertrade-backend/internal/config"
	"papertrade-backend/internal/database"
	"papertrade-backend/internal/health"
	"papertrade-backend/internal/ledger"
	"papertrade-backend/internal/middleware"
	"papertrade-backend/internal/quotes"
	"papertrade-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. Returns the DB and Redis client for startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
	}))

	// Session (Redis); the same client backs the health marker and quote cache
	sessionCfg := middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		RedisURL:     cfg.RedisURL,
		IsProduction: cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	// Health (no auth)
	healthHandlers := &health.Handlers{Rdb: rdb, DB: db}
	app.Get("/health/json", healthHandlers.JSON)

	// Auth (no auth middleware): POST login, GET me, DELETE logout
	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{
		UserFinder: userFinder,
		Rdb:        rdb,
		Config:     sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	if db != nil {
		// Quote provider, wrapped in a short-TTL Redis cache
		var provider quotes.Provider = &quotes.HTTPProvider{
			BaseURL: cfg.QuoteAPIURL,
			APIKey:  cfg.QuoteAPIKey,
			Client:  quotes.NewHTTPClient(cfg.QuoteTimeout),
		}
		if cfg.QuoteCacheTTL > 0 {
			provider = &quotes.CachedProvider{Inner: provider, Rdb: rdb, TTL: cfg.QuoteCacheTTL}
		}

		// Users module (registration is public)
		userService := &users.Service{DB: db, StartingCash: cfg.StartingCash}
		userHandlers := &users.Handlers{Service: userService, Rdb: rdb, Config: sessionCfg}
		app.Post("/api/v1/users/register", userHandlers.Register)

		// Quotes module
		quoteHandlers := &quotes.Handlers{Provider: provider}
		quoteGroup := app.Group("/api/v1/quotes", middleware.RequireAuth())
		quoteGroup.Get("/lookup", quoteHandlers.Lookup)

		// Ledger module
		ledgerService := &ledger.Service{DB: db, Quotes: provider}
		ledgerHandlers := &ledger.Handlers{Service: ledgerService}
		ledgerGroup := app.Group("/api/v1/ledger", middleware.RequireAuth())
		ledgerGroup.Post("/buy", ledgerHandlers.Buy)
		ledgerGroup.Post("/sell", ledgerHandlers.Sell)
		ledgerGroup.Post("/deposit", ledgerHandlers.Deposit)
		ledgerGroup.Get("/portfolio", ledgerHandlers.Portfolio)
		ledgerGroup.Get("/history", ledgerHandlers.History)
	}

	return app, db, rdb, nil
}
