package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/sliceinsights/picklematch-backend/internal/clients/redis"
	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/ratings"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

const (
	brandsCacheKey = "catalog:brands"
	brandsCacheTTL = 5 * time.Minute
)

// CatalogService serves the browse surface: brand list, filtered paddle list
// and paddle detail with affiliate-rewritten offers. Derived ratings are
// recomputed on every read so spec changes show up without a migration.
type CatalogService interface {
	ListBrands(ctx context.Context) (*types.BrandListResponse, error)
	ListPaddles(ctx context.Context, filter repos.PaddleListFilter) (*types.PaddleListResponse, error)
	GetPaddle(ctx context.Context, paddleID uuid.UUID) (*types.PaddleDetail, error)
}

type catalogService struct {
	db         *gorm.DB
	log        *logger.Logger
	brandRepo  repos.BrandRepo
	paddleRepo repos.PaddleRepo
	offerRepo  repos.MarketOfferRepo
	affiliate  AffiliateService
	cache      redisclient.Cache // nil disables response caching
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	brandRepo repos.BrandRepo,
	paddleRepo repos.PaddleRepo,
	offerRepo repos.MarketOfferRepo,
	affiliate AffiliateService,
	cache redisclient.Cache,
) CatalogService {
	return &catalogService{
		db:         db,
		log:        baseLog.With("service", "CatalogService"),
		brandRepo:  brandRepo,
		paddleRepo: paddleRepo,
		offerRepo:  offerRepo,
		affiliate:  affiliate,
		cache:      cache,
	}
}

func (cs *catalogService) ListBrands(ctx context.Context) (*types.BrandListResponse, error) {
	if cs.cache != nil {
		var cached types.BrandListResponse
		hit, err := cs.cache.GetJSON(ctx, brandsCacheKey, &cached)
		if err != nil {
			cs.log.Warn("brand cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	brands, err := cs.brandRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	response := &types.BrandListResponse{
		Data:  make([]types.BrandRead, 0, len(brands)),
		Total: len(brands),
	}
	for _, b := range brands {
		response.Data = append(response.Data, types.NewBrandRead(b))
	}

	if cs.cache != nil {
		if err := cs.cache.SetJSON(ctx, brandsCacheKey, response, brandsCacheTTL); err != nil {
			cs.log.Warn("brand cache write failed", "error", err)
		}
	}
	return response, nil
}

func (cs *catalogService) ListPaddles(ctx context.Context, filter repos.PaddleListFilter) (*types.PaddleListResponse, error) {
	entries, total, err := cs.paddleRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, err
	}

	data := make([]types.PaddleRead, 0, len(entries))
	for i := range entries {
		data = append(data, paddleRead(&entries[i]))
	}
	return &types.PaddleListResponse{
		Data:   data,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (cs *catalogService) GetPaddle(ctx context.Context, paddleID uuid.UUID) (*types.PaddleDetail, error) {
	paddle, err := cs.paddleRepo.GetByID(ctx, nil, paddleID)
	if err != nil {
		return nil, err
	}
	offers, err := cs.offerRepo.ListActiveByPaddle(ctx, nil, paddleID)
	if err != nil {
		return nil, err
	}

	var minPrice *float64
	if len(offers) > 0 {
		price := offers[0].PriceBRL
		minPrice = &price
	}

	brandName := ""
	brandID := paddle.BrandID
	if paddle.Brand != nil {
		brandName = paddle.Brand.Name
	}

	detail := &types.PaddleDetail{
		PaddleRead: types.PaddleRead{
			ID:                paddle.ID,
			BrandID:           brandID,
			BrandName:         brandName,
			ModelName:         paddle.ModelName,
			Specs:             types.SpecsOf(paddle),
			Ratings:           ratings.Compute(paddle),
			ImageURL:          paddle.ImageURL,
			IsFeatured:        paddle.IsFeatured,
			AvailableInBrazil: paddle.AvailableInBrazil,
			MinPriceBRL:       minPrice,
			OffersCount:       len(offers),
		},
		MarketOffers: make([]types.MarketOfferRead, 0, len(offers)),
	}

	for _, offer := range offers {
		read := types.MarketOfferRead{
			StoreName:   offer.StoreName,
			PriceBRL:    offer.PriceBRL,
			URL:         offer.URL,
			LastUpdated: offer.LastUpdated,
		}
		if cs.affiliate.Enabled() {
			affiliateURL := cs.affiliate.TransformURL(offer.URL, offer.StoreName)
			read.AffiliateURL = &affiliateURL
		}
		detail.MarketOffers = append(detail.MarketOffers, read)
	}
	return detail, nil
}

func paddleRead(entry *types.CandidateEntry) types.PaddleRead {
	p := &entry.Paddle
	return types.PaddleRead{
		ID:                p.ID,
		BrandID:           p.BrandID,
		BrandName:         entry.BrandName,
		ModelName:         p.ModelName,
		Specs:             types.SpecsOf(p),
		Ratings:           ratings.Compute(p),
		ImageURL:          p.ImageURL,
		IsFeatured:        p.IsFeatured,
		AvailableInBrazil: p.AvailableInBrazil,
		MinPriceBRL:       entry.MinPrice,
		OffersCount:       entry.OffersCount,
	}
}
