package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	redisclient "github.com/sliceinsights/picklematch-backend/internal/clients/redis"
	"github.com/sliceinsights/picklematch-backend/internal/logger"
)

type HealthHandler struct {
	db    *gorm.DB
	cache redisclient.Cache
	log   *logger.Logger
}

func NewHealthHandler(db *gorm.DB, cache redisclient.Cache, baseLog *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
		log:   baseLog.With("handler", "HealthHandler"),
	}
}

// GET /health
func (hh *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sqlDB, err := hh.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
	if hh.cache != nil {
		g.Go(func() error {
			return hh.cache.Ping(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		hh.log.Error("health check failed", "error", err)
		RespondError(c, http.StatusServiceUnavailable, "unhealthy", err)
		return
	}
	RespondOK(c, gin.H{"status": "ok", "cache_enabled": hh.cache != nil})
}
