package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

// PaddleListFilter carries the optional catalog listing filters.
type PaddleListFilter struct {
	BrandID           *int
	IsFeatured        *bool
	AvailableInBrazil *bool
	MinPrice          *float64
	MaxPrice          *float64
	Limit             int
	Offset            int
}

type PaddleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, paddles []*types.Paddle) ([]*types.Paddle, error)
	GetByID(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID) (*types.Paddle, error)
	List(ctx context.Context, tx *gorm.DB, filter PaddleListFilter) ([]types.CandidateEntry, int64, error)
	// ListCandidates runs the single aggregate query behind the
	// recommendation engine and the fuzzy search: paddles joined with brand
	// name and active-offer pricing, with the hard filters pushed into SQL.
	ListCandidates(ctx context.Context, tx *gorm.DB, filter types.CandidateFilter) ([]types.CandidateEntry, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type paddleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaddleRepo(db *gorm.DB, baseLog *logger.Logger) PaddleRepo {
	return &paddleRepo{db: db, log: baseLog.With("repo", "PaddleRepo")}
}

func (pr *paddleRepo) Create(ctx context.Context, tx *gorm.DB, paddles []*types.Paddle) ([]*types.Paddle, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(paddles) == 0 {
		return []*types.Paddle{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&paddles).Error; err != nil {
		return nil, err
	}
	return paddles, nil
}

func (pr *paddleRepo) GetByID(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID) (*types.Paddle, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var paddle types.Paddle
	if err := transaction.WithContext(ctx).
		Preload("Brand").
		Where("id = ?", paddleID).
		First(&paddle).Error; err != nil {
		return nil, err
	}
	return &paddle, nil
}

// activeOfferAggregate groups active offers per paddle into min price and
// offer count. It is joined (left, unless a price predicate makes it inner in
// effect) onto every catalog read so offerless paddles still appear.
func (pr *paddleRepo) activeOfferAggregate(ctx context.Context, transaction *gorm.DB) *gorm.DB {
	return transaction.WithContext(ctx).
		Model(&types.MarketOffer{}).
		Select("paddle_id, MIN(price_brl) AS min_price, COUNT(id) AS offers_count").
		Where("is_active = ?", true).
		Group("paddle_id")
}

func (pr *paddleRepo) candidateQuery(ctx context.Context, transaction *gorm.DB) *gorm.DB {
	sub := pr.activeOfferAggregate(ctx, transaction.Session(&gorm.Session{NewDB: true}))
	return transaction.WithContext(ctx).
		Model(&types.Paddle{}).
		Select("paddle_master.*, brands.name AS brand_name, offers.min_price AS min_price, COALESCE(offers.offers_count, 0) AS offers_count").
		Joins("JOIN brands ON brands.id = paddle_master.brand_id").
		Joins("LEFT JOIN (?) AS offers ON offers.paddle_id = paddle_master.id", sub)
}

func (pr *paddleRepo) ListCandidates(ctx context.Context, tx *gorm.DB, filter types.CandidateFilter) ([]types.CandidateEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	query := pr.candidateQuery(ctx, transaction)
	if filter.MinCoreThicknessMM != nil {
		// NULL thickness never satisfies >=, so unknown cores are excluded.
		query = query.Where("paddle_master.core_thickness_mm >= ?", *filter.MinCoreThicknessMM)
	}
	if filter.MaxPrice != nil {
		// Comparing against the aggregate drops offerless paddles: a NULL
		// min_price never satisfies <=.
		query = query.Where("offers.min_price <= ?", *filter.MaxPrice)
	}

	var entries []types.CandidateEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (pr *paddleRepo) List(ctx context.Context, tx *gorm.DB, filter PaddleListFilter) ([]types.CandidateEntry, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	query := pr.candidateQuery(ctx, transaction)
	if filter.BrandID != nil {
		query = query.Where("paddle_master.brand_id = ?", *filter.BrandID)
	}
	if filter.IsFeatured != nil {
		query = query.Where("paddle_master.is_featured = ?", *filter.IsFeatured)
	}
	if filter.AvailableInBrazil != nil {
		query = query.Where("paddle_master.available_in_brazil = ?", *filter.AvailableInBrazil)
	}
	if filter.MinPrice != nil {
		query = query.Where("offers.min_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("offers.min_price <= ?", *filter.MaxPrice)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var entries []types.CandidateEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, 0, err
	}

	countQuery := transaction.WithContext(ctx).Model(&types.Paddle{})
	if filter.BrandID != nil {
		countQuery = countQuery.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.IsFeatured != nil {
		countQuery = countQuery.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.AvailableInBrazil != nil {
		countQuery = countQuery.Where("available_in_brazil = ?", *filter.AvailableInBrazil)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (pr *paddleRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Paddle{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
