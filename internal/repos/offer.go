package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

type MarketOfferRepo interface {
	Create(ctx context.Context, tx *gorm.DB, offers []*types.MarketOffer) ([]*types.MarketOffer, error)
	ListActiveByPaddle(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID) ([]*types.MarketOffer, error)
	DeactivateByPaddle(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID) error
}

type marketOfferRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMarketOfferRepo(db *gorm.DB, baseLog *logger.Logger) MarketOfferRepo {
	return &marketOfferRepo{db: db, log: baseLog.With("repo", "MarketOfferRepo")}
}

func (or *marketOfferRepo) Create(ctx context.Context, tx *gorm.DB, offers []*types.MarketOffer) ([]*types.MarketOffer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if len(offers) == 0 {
		return []*types.MarketOffer{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (or *marketOfferRepo) ListActiveByPaddle(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID) ([]*types.MarketOffer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.MarketOffer
	if err := transaction.WithContext(ctx).
		Where("paddle_id = ? AND is_active = ?", paddleID, true).
		Order("price_brl").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *marketOfferRepo) DeactivateByPaddle(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	return transaction.WithContext(ctx).
		Model(&types.MarketOffer{}).
		Where("paddle_id = ?", paddleID).
		Update("is_active", false).Error
}
