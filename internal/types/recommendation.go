package types

import "github.com/google/uuid"

// RatingVector is the uniform 0-10 rating scale derived from raw measurements.
// Every field is always populated; missing inputs resolve to defined defaults
// so downstream filtering and ranking never branch on nulls.
type RatingVector struct {
	Power     int `json:"power"`
	Control   int `json:"control"`
	Spin      int `json:"spin"`
	SweetSpot int `json:"sweet_spot"`
}

// CandidateFilter carries the hard filters pushed into the catalog query.
type CandidateFilter struct {
	MinCoreThicknessMM *float64
	MaxPrice           *float64
}

// CandidateEntry is one row of the candidate aggregate query: a paddle joined
// with its brand name and active-offer pricing. MinPrice is nil when the
// paddle has no active offers.
type CandidateEntry struct {
	Paddle      Paddle   `gorm:"embedded"`
	BrandName   string   `gorm:"column:brand_name"`
	MinPrice    *float64 `gorm:"column:min_price"`
	OffersCount int      `gorm:"column:offers_count"`
}

type PaddleRecommendation struct {
	Rank         int          `json:"rank"`
	PaddleID     uuid.UUID    `json:"paddle_id"`
	BrandName    string       `json:"brand_name"`
	ModelName    string       `json:"model_name"`
	Ratings      RatingVector `json:"ratings"`
	MinPriceBRL  *float64     `json:"min_price_brl"`
	MatchReasons []string     `json:"match_reasons"`
	Tags         []string     `json:"tags"`
	ValueScore   *float64     `json:"value_score,omitempty"`
}

type RecommendationResult struct {
	UserProfile     UserProfile            `json:"user_profile"`
	Recommendations []PaddleRecommendation `json:"recommendations"`
	FiltersApplied  map[string]bool        `json:"filters_applied"`
	TotalMatching   int                    `json:"total_matching"`
	Returned        int                    `json:"returned"`
}
