package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/sliceinsights/picklematch-backend/internal/handlers"
	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/middleware"
	"github.com/sliceinsights/picklematch-backend/internal/observability"
)

type RouterConfig struct {
	Log              *logger.Logger
	Metrics          *observability.Metrics
	CORSAllowOrigins string
	AdminSecret      string
	OtelEnabled      bool

	HealthHandler         *handlers.HealthHandler
	BrandHandler          *handlers.BrandHandler
	PaddleHandler         *handlers.PaddleHandler
	RecommendationHandler *handlers.RecommendationHandler
	SearchHandler         *handlers.SearchHandler
	AlertHandler          *handlers.AlertHandler
	AdminHandler          *handlers.AdminHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))
	if cfg.OtelEnabled {
		r.Use(otelgin.Middleware("picklematch-backend"))
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	recommendLimit := middleware.NewRateLimiter(cfg.Log, 30)
	searchLimit := middleware.NewRateLimiter(cfg.Log, 60)
	catalogLimit := middleware.NewRateLimiter(cfg.Log, 100)

	api := r.Group("/api/v1")
	{
		if cfg.HealthHandler != nil {
			api.GET("/health", cfg.HealthHandler.HealthCheck)
		}
		if cfg.BrandHandler != nil {
			api.GET("/brands", cfg.BrandHandler.ListBrands)
		}
		if cfg.PaddleHandler != nil {
			api.GET("/paddles", catalogLimit.Handler(), cfg.PaddleHandler.ListPaddles)
			api.GET("/paddles/:id", catalogLimit.Handler(), cfg.PaddleHandler.GetPaddle)
		}
		if cfg.RecommendationHandler != nil {
			api.POST("/recommendations", recommendLimit.Handler(), cfg.RecommendationHandler.GetRecommendations)
		}
		if cfg.SearchHandler != nil {
			api.GET("/search", searchLimit.Handler(), cfg.SearchHandler.Search)
		}
		if cfg.AlertHandler != nil {
			api.POST("/alerts", cfg.AlertHandler.CreateAlert)
		}
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.RequireAdminSecret(cfg.AdminSecret))
		if cfg.AdminHandler != nil {
			admin.POST("/seed", cfg.AdminHandler.Seed)
			admin.GET("/diag", cfg.AdminHandler.Diag)
		}
	}

	return r
}
