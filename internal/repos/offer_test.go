package repos

import (
	"context"
	"testing"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

func TestCreatePersistsInactiveOffers(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	ctx := context.Background()
	offerRepo := NewMarketOfferRepo(db, logger.NewNop())

	created, err := offerRepo.Create(ctx, nil, []*types.MarketOffer{
		{PaddleID: fx.offerless, StoreName: "StoreD", PriceBRL: 1200, URL: "https://d.example/1", IsActive: false},
	})
	if err != nil {
		t.Fatalf("create offer: %v", err)
	}

	var stored types.MarketOffer
	if err := db.First(&stored, "id = ?", created[0].ID).Error; err != nil {
		t.Fatalf("read offer back: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("IsActive=false was persisted as true")
	}

	active, err := offerRepo.ListActiveByPaddle(ctx, nil, fx.offerless)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("inactive offer leaked into active listing: %+v", active)
	}
}

func TestDeactivateByPaddleSticks(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	ctx := context.Background()
	offerRepo := NewMarketOfferRepo(db, logger.NewNop())

	if err := offerRepo.DeactivateByPaddle(ctx, nil, fx.thick); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	active, err := offerRepo.ListActiveByPaddle(ctx, nil, fx.thick)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active offers after deactivation, got %d", len(active))
	}
}
