package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	redisclient "github.com/sliceinsights/picklematch-backend/internal/clients/redis"
	"github.com/sliceinsights/picklematch-backend/internal/db"
	"github.com/sliceinsights/picklematch-backend/internal/handlers"
	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/observability"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/server"
	"github.com/sliceinsights/picklematch-backend/internal/services"
	"github.com/sliceinsights/picklematch-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	apiPort := utils.GetEnv("API_PORT", "8000", log)
	corsOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)
	adminSecret := utils.GetEnv("ADMIN_SEED_SECRET", "", log)
	seedDataPath := utils.GetEnv("SEED_DATA_PATH", "data/seed.yaml", log)
	affiliateCfg := services.AffiliateConfig{
		AmazonTag:      utils.GetEnv("AFFILIATE_AMAZON_TAG", "", log),
		MercadoLivreID: utils.GetEnv("AFFILIATE_ML_ID", "", log),
	}
	otelEnabled := utils.GetEnvAsBool("OTEL_ENABLED", false, log)

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "picklematch-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
	})
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(ctx); err != nil {
			log.Warn("OTel shutdown failed", "error", err)
		}
	}()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Redis (optional, caching disabled when unavailable)
	cache, err := redisclient.NewCache(log)
	if err != nil {
		log.Warn("Redis init failed, caching disabled", "error", err)
		cache = nil
	}

	// Repos
	log.Info("Setting up Repos from main...")
	brandRepo := repos.NewBrandRepo(thePG, log)
	paddleRepo := repos.NewPaddleRepo(thePG, log)
	offerRepo := repos.NewMarketOfferRepo(thePG, log)
	alertRepo := repos.NewPriceAlertRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	affiliateService := services.NewAffiliateService(log, affiliateCfg)
	catalogService := services.NewCatalogService(thePG, log, brandRepo, paddleRepo, offerRepo, affiliateService, cache)
	searchService := services.NewSearchService(thePG, log, paddleRepo)
	alertService := services.NewAlertService(thePG, log, paddleRepo, alertRepo)
	seedService := services.NewSeedService(thePG, log, brandRepo, paddleRepo, offerRepo, seedDataPath)

	// Metrics
	metrics := observability.NewMetrics()

	// Handlers
	log.Info("Setting up Handlers from main...")
	healthHandler := handlers.NewHealthHandler(thePG, cache, log)
	brandHandler := handlers.NewBrandHandler(catalogService)
	paddleHandler := handlers.NewPaddleHandler(catalogService)
	recommendationHandler := handlers.NewRecommendationHandler(thePG, log, paddleRepo, metrics)
	searchHandler := handlers.NewSearchHandler(searchService, metrics)
	alertHandler := handlers.NewAlertHandler(alertService)
	adminHandler := handlers.NewAdminHandler(thePG, log, seedService, brandRepo, paddleRepo)

	// Router
	r := server.NewRouter(server.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		CORSAllowOrigins: corsOrigins,
		AdminSecret:      adminSecret,
		OtelEnabled:      otelEnabled,

		HealthHandler:         healthHandler,
		BrandHandler:          brandHandler,
		PaddleHandler:         paddleHandler,
		RecommendationHandler: recommendationHandler,
		SearchHandler:         searchHandler,
		AlertHandler:          alertHandler,
		AdminHandler:          adminHandler,
	})

	log.Info("Starting API server", "port", apiPort)
	if err := r.Run(":" + apiPort); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
