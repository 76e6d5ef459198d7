package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

type BrandRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Brand, error)
	FindOrCreate(ctx context.Context, tx *gorm.DB, name string, website *string) (*types.Brand, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type brandRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBrandRepo(db *gorm.DB, baseLog *logger.Logger) BrandRepo {
	return &brandRepo{db: db, log: baseLog.With("repo", "BrandRepo")}
}

func (br *brandRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Brand, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var results []*types.Brand
	if err := transaction.WithContext(ctx).
		Order("name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *brandRepo) FindOrCreate(ctx context.Context, tx *gorm.DB, name string, website *string) (*types.Brand, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	brand := &types.Brand{Name: name, Website: website}
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func (br *brandRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Brand{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
