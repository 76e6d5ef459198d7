package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/services"
)

type AdminHandler struct {
	db         *gorm.DB
	log        *logger.Logger
	seeder     services.SeedService
	brandRepo  repos.BrandRepo
	paddleRepo repos.PaddleRepo
}

func NewAdminHandler(
	db *gorm.DB,
	baseLog *logger.Logger,
	seeder services.SeedService,
	brandRepo repos.BrandRepo,
	paddleRepo repos.PaddleRepo,
) *AdminHandler {
	return &AdminHandler{
		db:         db,
		log:        baseLog.With("handler", "AdminHandler"),
		seeder:     seeder,
		brandRepo:  brandRepo,
		paddleRepo: paddleRepo,
	}
}

// POST /admin/seed?force=true
func (ah *AdminHandler) Seed(c *gin.Context) {
	force := false
	if raw := c.Query("force"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_force", err)
			return
		}
		force = v
	}

	summary, err := ah.seeder.Seed(c.Request.Context(), force)
	if err != nil {
		ah.log.Error("seed failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "seed_failed", err)
		return
	}
	RespondOK(c, gin.H{
		"status":        "seeded",
		"forced":        force,
		"brands_total":  summary.BrandsTotal,
		"paddles_total": summary.PaddlesTotal,
	})
}

// GET /admin/diag
func (ah *AdminHandler) Diag(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if sqlDB, err := ah.db.DB(); err != nil {
		dbStatus = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = err.Error()
	}

	brands, err := ah.brandRepo.Count(ctx, nil)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "diag_failed", err)
		return
	}
	paddles, err := ah.paddleRepo.Count(ctx, nil)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "diag_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"database":  dbStatus,
		"brands":    brands,
		"paddles":   paddles,
		"seed_file": ah.seeder.DataPath(),
	})
}
