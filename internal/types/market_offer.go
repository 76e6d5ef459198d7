package types

import (
	"time"

	"github.com/google/uuid"
)

// MarketOffer holds volatile store pricing. Only active offers participate in
// the min-price/offer-count aggregates consumed by the recommendation engine.
type MarketOffer struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PaddleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"paddle_id"`
	Paddle      *Paddle   `gorm:"constraint:OnDelete:CASCADE;foreignKey:PaddleID;references:ID" json:"paddle,omitempty"`
	StoreName   string    `gorm:"column:store_name;not null" json:"store_name"`
	PriceBRL    float64   `gorm:"column:price_brl;type:decimal(10,2);not null" json:"price_brl"`
	URL         string    `gorm:"column:url;not null" json:"url"`
	// No column default: a default:true tag would make gorm drop an explicit
	// false from the INSERT and the row would come back active.
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`
	LastUpdated time.Time `gorm:"column:last_updated;not null" json:"last_updated"`
}

func (MarketOffer) TableName() string { return "market_offers" }

type MarketOfferRead struct {
	StoreName    string    `json:"store_name"`
	PriceBRL     float64   `json:"price_brl"`
	URL          string    `json:"url"`
	AffiliateURL *string   `json:"affiliate_url,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
}
