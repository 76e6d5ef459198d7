package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

// AlertService records price-drop subscriptions. Duplicate subscriptions are
// allowed so the history of targets is kept.
type AlertService interface {
	CreateAlert(ctx context.Context, paddleID uuid.UUID, userEmail string, targetPrice float64) (*types.PriceAlert, error)
}

type alertService struct {
	db         *gorm.DB
	log        *logger.Logger
	paddleRepo repos.PaddleRepo
	alertRepo  repos.PriceAlertRepo
}

func NewAlertService(db *gorm.DB, baseLog *logger.Logger, paddleRepo repos.PaddleRepo, alertRepo repos.PriceAlertRepo) AlertService {
	return &alertService{
		db:         db,
		log:        baseLog.With("service", "AlertService"),
		paddleRepo: paddleRepo,
		alertRepo:  alertRepo,
	}
}

func (as *alertService) CreateAlert(ctx context.Context, paddleID uuid.UUID, userEmail string, targetPrice float64) (*types.PriceAlert, error) {
	// The paddle must exist; gorm.ErrRecordNotFound maps to 404 upstream.
	if _, err := as.paddleRepo.GetByID(ctx, nil, paddleID); err != nil {
		return nil, err
	}

	alert := &types.PriceAlert{
		PaddleID:    paddleID,
		UserEmail:   userEmail,
		TargetPrice: targetPrice,
		IsActive:    true,
	}
	created, err := as.alertRepo.Create(ctx, nil, alert)
	if err != nil {
		return nil, err
	}

	as.log.Info("price alert created",
		"alert_id", created.ID,
		"paddle_id", created.PaddleID.String(),
		"target_price", created.TargetPrice,
	)
	return created, nil
}
