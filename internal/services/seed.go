package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

// SeedService loads the YAML catalog fixture into the database. It backs the
// admin seed endpoint; scraping pipelines replace its data later.
type SeedService interface {
	Seed(ctx context.Context, force bool) (*SeedSummary, error)
	DataPath() string
}

type SeedSummary struct {
	BrandsTotal  int64 `json:"brands_created"`
	PaddlesTotal int64 `json:"paddles_created"`
}

type seedService struct {
	db         *gorm.DB
	log        *logger.Logger
	brandRepo  repos.BrandRepo
	paddleRepo repos.PaddleRepo
	offerRepo  repos.MarketOfferRepo
	dataPath   string
}

func NewSeedService(
	db *gorm.DB,
	baseLog *logger.Logger,
	brandRepo repos.BrandRepo,
	paddleRepo repos.PaddleRepo,
	offerRepo repos.MarketOfferRepo,
	dataPath string,
) SeedService {
	return &seedService{
		db:         db,
		log:        baseLog.With("service", "SeedService"),
		brandRepo:  brandRepo,
		paddleRepo: paddleRepo,
		offerRepo:  offerRepo,
		dataPath:   dataPath,
	}
}

type seedOffer struct {
	StoreName string  `yaml:"store_name"`
	PriceBRL  float64 `yaml:"price_brl"`
	URL       string  `yaml:"url"`
}

type seedPaddle struct {
	Brand             string      `yaml:"brand"`
	ModelName         string      `yaml:"model_name"`
	CoreThicknessMM   *float64    `yaml:"core_thickness_mm"`
	CoreMaterial      *string     `yaml:"core_material"`
	FaceMaterial      *string     `yaml:"face_material"`
	Shape             *string     `yaml:"shape"`
	SwingWeight       *int        `yaml:"swing_weight"`
	TwistWeight       *float64    `yaml:"twist_weight"`
	SpinRPM           *int        `yaml:"spin_rpm"`
	PowerRating       *int        `yaml:"power_rating"`
	SearchKeywords    []string    `yaml:"search_keywords"`
	AvailableInBrazil bool        `yaml:"available_in_brazil"`
	IsFeatured        bool        `yaml:"is_featured"`
	ImageURL          *string     `yaml:"image_url"`
	Offers            []seedOffer `yaml:"offers"`
}

type seedBrand struct {
	Name    string  `yaml:"name"`
	Website *string `yaml:"website"`
}

type seedFile struct {
	Brands  []seedBrand  `yaml:"brands"`
	Paddles []seedPaddle `yaml:"paddles"`
}

func (ss *seedService) DataPath() string { return ss.dataPath }

func (ss *seedService) createOffers(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID, seedOffers []seedOffer, now time.Time) error {
	offers := make([]*types.MarketOffer, 0, len(seedOffers))
	for _, so := range seedOffers {
		offers = append(offers, &types.MarketOffer{
			PaddleID:    paddleID,
			StoreName:   so.StoreName,
			PriceBRL:    so.PriceBRL,
			URL:         so.URL,
			IsActive:    true,
			LastUpdated: now,
		})
	}
	_, err := ss.offerRepo.Create(ctx, tx, offers)
	return err
}

func (ss *seedService) refreshOffers(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID, seedOffers []seedOffer, now time.Time) error {
	if len(seedOffers) == 0 {
		return nil
	}
	if err := ss.offerRepo.DeactivateByPaddle(ctx, tx, paddleID); err != nil {
		return err
	}
	return ss.createOffers(ctx, tx, paddleID, seedOffers, now)
}

func (ss *seedService) Seed(ctx context.Context, force bool) (*SeedSummary, error) {
	raw, err := os.ReadFile(ss.dataPath)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", ss.dataPath, err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if force {
			ss.log.Warn("force seed: clearing catalog tables")
			for _, model := range []any{&types.MarketOffer{}, &types.PriceAlert{}, &types.Paddle{}, &types.Brand{}} {
				if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
					return fmt.Errorf("clear table: %w", err)
				}
			}
		}

		brandsByName := make(map[string]*types.Brand, len(file.Brands))
		for _, sb := range file.Brands {
			brand, err := ss.brandRepo.FindOrCreate(ctx, tx, sb.Name, sb.Website)
			if err != nil {
				return fmt.Errorf("seed brand %s: %w", sb.Name, err)
			}
			brandsByName[sb.Name] = brand
		}

		now := time.Now().UTC()
		for _, sp := range file.Paddles {
			brand, ok := brandsByName[sp.Brand]
			if !ok {
				// Paddles may reference brands not in the brands block.
				created, err := ss.brandRepo.FindOrCreate(ctx, tx, sp.Brand, nil)
				if err != nil {
					return fmt.Errorf("seed brand %s: %w", sp.Brand, err)
				}
				brand = created
				brandsByName[sp.Brand] = brand
			}

			var existing types.Paddle
			err := tx.Where("brand_id = ? AND model_name = ?", brand.ID, sp.ModelName).
				First(&existing).Error
			if err == nil {
				// Known paddle: refresh its offers, keep its specs.
				if err := ss.refreshOffers(ctx, tx, existing.ID, sp.Offers, now); err != nil {
					return fmt.Errorf("refresh offers for %s: %w", sp.ModelName, err)
				}
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			paddle := &types.Paddle{
				BrandID:           brand.ID,
				ModelName:         sp.ModelName,
				CoreThicknessMM:   sp.CoreThicknessMM,
				CoreMaterial:      sp.CoreMaterial,
				SwingWeight:       sp.SwingWeight,
				TwistWeight:       sp.TwistWeight,
				SpinRPM:           sp.SpinRPM,
				PowerRating:       sp.PowerRating,
				SearchKeywords:    sp.SearchKeywords,
				AvailableInBrazil: sp.AvailableInBrazil,
				IsFeatured:        sp.IsFeatured,
				ImageURL:          sp.ImageURL,
				SpecsSource:       "seed",
				SpecsConfidence:   1.0,
			}
			if sp.FaceMaterial != nil {
				fm := types.FaceMaterial(*sp.FaceMaterial)
				paddle.FaceMaterial = &fm
			}
			if sp.Shape != nil {
				shape := types.PaddleShape(*sp.Shape)
				paddle.Shape = &shape
			}
			if _, err := ss.paddleRepo.Create(ctx, tx, []*types.Paddle{paddle}); err != nil {
				return fmt.Errorf("seed paddle %s: %w", sp.ModelName, err)
			}

			if err := ss.createOffers(ctx, tx, paddle.ID, sp.Offers, now); err != nil {
				return fmt.Errorf("seed offers for %s: %w", sp.ModelName, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &SeedSummary{}
	if summary.BrandsTotal, err = ss.brandRepo.Count(ctx, nil); err != nil {
		return nil, err
	}
	if summary.PaddlesTotal, err = ss.paddleRepo.Count(ctx, nil); err != nil {
		return nil, err
	}
	ss.log.Info("seed completed", "brands", summary.BrandsTotal, "paddles", summary.PaddlesTotal)
	return summary, nil
}
