package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sliceinsights/picklematch-backend/internal/services"
)

type BrandHandler struct {
	catalog services.CatalogService
}

func NewBrandHandler(catalog services.CatalogService) *BrandHandler {
	return &BrandHandler{catalog: catalog}
}

// GET /brands
func (bh *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := bh.catalog.ListBrands(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_brands_failed", err)
		return
	}
	RespondOK(c, brands)
}
