package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

type PriceAlertRepo interface {
	Create(ctx context.Context, tx *gorm.DB, alert *types.PriceAlert) (*types.PriceAlert, error)
}

type priceAlertRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPriceAlertRepo(db *gorm.DB, baseLog *logger.Logger) PriceAlertRepo {
	return &priceAlertRepo{db: db, log: baseLog.With("repo", "PriceAlertRepo")}
}

func (ar *priceAlertRepo) Create(ctx context.Context, tx *gorm.DB, alert *types.PriceAlert) (*types.PriceAlert, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if err := transaction.WithContext(ctx).Create(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}
