package types

import "github.com/google/uuid"

// PaddleSpecs is the physical-spec slice of the paddle detail/list responses.
type PaddleSpecs struct {
	CoreThicknessMM   *float64      `json:"core_thickness_mm"`
	CoreMaterial      *string       `json:"core_material"`
	FaceMaterial      *FaceMaterial `json:"face_material"`
	Shape             *PaddleShape  `json:"shape"`
	SwingWeight       *int          `json:"swing_weight"`
	TwistWeight       *float64      `json:"twist_weight"`
	SpinRPM           *int          `json:"spin_rpm"`
	PowerOriginal     *float64      `json:"power_original"`
	HandleLength      *string       `json:"handle_length"`
	GripCircumference *string       `json:"grip_circumference"`
}

func SpecsOf(p *Paddle) PaddleSpecs {
	return PaddleSpecs{
		CoreThicknessMM:   p.CoreThicknessMM,
		CoreMaterial:      p.CoreMaterial,
		FaceMaterial:      p.FaceMaterial,
		Shape:             p.Shape,
		SwingWeight:       p.SwingWeight,
		TwistWeight:       p.TwistWeight,
		SpinRPM:           p.SpinRPM,
		PowerOriginal:     p.PowerOriginal,
		HandleLength:      p.HandleLength,
		GripCircumference: p.GripCircumference,
	}
}

// PaddleRead is the catalog list/detail response item.
type PaddleRead struct {
	ID                uuid.UUID    `json:"id"`
	BrandID           int          `json:"brand_id"`
	BrandName         string       `json:"brand_name"`
	ModelName         string       `json:"model_name"`
	Specs             PaddleSpecs  `json:"specs"`
	Ratings           RatingVector `json:"ratings"`
	ImageURL          *string      `json:"image_url,omitempty"`
	IsFeatured        bool         `json:"is_featured"`
	AvailableInBrazil bool         `json:"available_in_brazil"`
	MinPriceBRL       *float64     `json:"min_price_brl"`
	OffersCount       int          `json:"offers_count"`
}

type PaddleDetail struct {
	PaddleRead
	MarketOffers []MarketOfferRead `json:"market_offers"`
}

type BrandListResponse struct {
	Data  []BrandRead `json:"data"`
	Total int         `json:"total"`
}

type PaddleListResponse struct {
	Data   []PaddleRead `json:"data"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type SearchResult struct {
	ID          uuid.UUID `json:"id"`
	BrandName   string    `json:"brand_name"`
	ModelName   string    `json:"model_name"`
	MatchScore  int       `json:"match_score"`
	MinPriceBRL *float64  `json:"min_price_brl"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}
