package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sliceinsights/picklematch-backend/internal/observability"
	"github.com/sliceinsights/picklematch-backend/internal/services"
)

const (
	minSearchQueryLen  = 2
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type SearchHandler struct {
	search  services.SearchService
	metrics *observability.Metrics
}

func NewSearchHandler(search services.SearchService, metrics *observability.Metrics) *SearchHandler {
	return &SearchHandler{search: search, metrics: metrics}
}

// GET /search?q=&limit=
func (sh *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if len(query) < minSearchQueryLen {
		RespondError(c, http.StatusBadRequest, "query_too_short",
			errors.New("q must be at least 2 characters"))
		return
	}

	limit := defaultSearchLimit
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
		if v > maxSearchLimit {
			v = maxSearchLimit
		}
		limit = v
	}

	result, err := sh.search.Search(c.Request.Context(), query, limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "search_failed", err)
		return
	}
	if sh.metrics != nil {
		sh.metrics.ObserveSearch()
	}
	RespondOK(c, result)
}
