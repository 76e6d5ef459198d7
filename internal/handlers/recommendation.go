package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/observability"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/services"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

const defaultRecommendationLimit = 3

// RecommendationHandler builds a fresh engine per request; the engine's memo
// cache only spans repeated profiles within a single request lifetime.
type RecommendationHandler struct {
	db         *gorm.DB
	log        *logger.Logger
	paddleRepo repos.PaddleRepo
	metrics    *observability.Metrics
}

func NewRecommendationHandler(
	db *gorm.DB,
	baseLog *logger.Logger,
	paddleRepo repos.PaddleRepo,
	metrics *observability.Metrics,
) *RecommendationHandler {
	return &RecommendationHandler{
		db:         db,
		log:        baseLog,
		paddleRepo: paddleRepo,
		metrics:    metrics,
	}
}

// POST /recommendations
func (rh *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req types.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultRecommendationLimit
	}

	engine := services.NewRecommendationService(rh.db, rh.log, rh.paddleRepo)
	result, err := engine.GetRecommendations(c.Request.Context(), req.Profile(), limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "recommendations_failed", err)
		return
	}
	if rh.metrics != nil {
		rh.metrics.ObserveRecommendation(result.TotalMatching)
	}
	RespondOK(c, result)
}
