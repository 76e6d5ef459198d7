package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/services"
)

type AlertHandler struct {
	alerts services.AlertService
}

func NewAlertHandler(alerts services.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

type createAlertRequest struct {
	PaddleID    uuid.UUID `json:"paddle_id" binding:"required"`
	UserEmail   string    `json:"user_email" binding:"required,email"`
	TargetPrice float64   `json:"target_price" binding:"required,gt=0"`
}

// POST /alerts
func (ah *AlertHandler) CreateAlert(c *gin.Context) {
	var req createAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	alert, err := ah.alerts.CreateAlert(c.Request.Context(), req.PaddleID, req.UserEmail, req.TargetPrice)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "paddle_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "create_alert_failed", err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}
