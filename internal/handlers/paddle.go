package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/services"
)

type PaddleHandler struct {
	catalog services.CatalogService
}

func NewPaddleHandler(catalog services.CatalogService) *PaddleHandler {
	return &PaddleHandler{catalog: catalog}
}

const (
	defaultPaddleLimit = 20
	maxPaddleLimit     = 100
)

// GET /paddles
// query: brand_id, is_featured, available_in_brazil, min_price, max_price, limit, offset
func (ph *PaddleHandler) ListPaddles(c *gin.Context) {
	filter := repos.PaddleListFilter{Limit: defaultPaddleLimit}

	if raw := c.Query("brand_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_brand_id", err)
			return
		}
		filter.BrandID = &id
	}
	if raw := c.Query("is_featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_is_featured", err)
			return
		}
		filter.IsFeatured = &v
	}
	if raw := c.Query("available_in_brazil"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_available_in_brazil", err)
			return
		}
		filter.AvailableInBrazil = &v
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_min_price", err)
			return
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_max_price", err)
			return
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		if v < 1 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be >= 1"))
			return
		}
		if v > maxPaddleLimit {
			v = maxPaddleLimit
		}
		filter.Limit = v
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_offset", err)
			return
		}
		if v < 0 {
			RespondError(c, http.StatusBadRequest, "invalid_offset", errors.New("offset must be >= 0"))
			return
		}
		filter.Offset = v
	}

	paddles, err := ph.catalog.ListPaddles(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_paddles_failed", err)
		return
	}
	RespondOK(c, paddles)
}

// GET /paddles/:id
func (ph *PaddleHandler) GetPaddle(c *gin.Context) {
	paddleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_paddle_id", err)
		return
	}

	detail, err := ph.catalog.GetPaddle(c.Request.Context(), paddleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "paddle_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "get_paddle_failed", err)
		return
	}
	RespondOK(c, detail)
}
