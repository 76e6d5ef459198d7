package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/ratings"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

// Core thickness at or above which a paddle counts as vibration-dampening.
const minDampeningCoreMM = 16.0

// Offers below this are treated as corrupt/placeholder prices and excluded
// from the value score.
const valueScorePriceFloor = 100.0

// RecommendationService turns a user profile into a ranked, explainable
// paddle list: hard filters pushed into the catalog query, derived ratings per
// candidate, profile-weighted soft ranking, then reasons/tags/value scores.
//
// Instances are meant to be request-scoped. The memo cache is unbounded and
// unlocked; it exists to dedupe identical calls within one request, not to
// cache across requests. A shared instance would serve stale results after
// catalog writes.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, profile types.UserProfile, limit int) (*types.RecommendationResult, error)
}

type recommendationService struct {
	db         *gorm.DB
	log        *logger.Logger
	paddleRepo repos.PaddleRepo
	cache      map[string]*types.RecommendationResult
}

func NewRecommendationService(db *gorm.DB, baseLog *logger.Logger, paddleRepo repos.PaddleRepo) RecommendationService {
	return &recommendationService{
		db:         db,
		log:        baseLog.With("service", "RecommendationService"),
		paddleRepo: paddleRepo,
		cache:      map[string]*types.RecommendationResult{},
	}
}

type scoredCandidate struct {
	entry   *types.CandidateEntry
	ratings types.RatingVector
	score   float64
}

func (rs *recommendationService) GetRecommendations(ctx context.Context, profile types.UserProfile, limit int) (*types.RecommendationResult, error) {
	key := cacheKey(profile, limit)
	if cached, ok := rs.cache[key]; ok {
		return cached, nil
	}

	filter := types.CandidateFilter{}
	if profile.HasTennisElbow {
		floor := minDampeningCoreMM
		filter.MinCoreThicknessMM = &floor
	}
	if profile.BudgetMaxBRL != nil {
		filter.MaxPrice = profile.BudgetMaxBRL
	}

	entries, err := rs.paddleRepo.ListCandidates(ctx, nil, filter)
	if err != nil {
		// Fail fast: no retry, no partial result.
		return nil, err
	}

	scored := make([]scoredCandidate, len(entries))
	for i := range entries {
		vector := ratings.Compute(&entries[i].Paddle)
		scored[i] = scoredCandidate{
			entry:   &entries[i],
			ratings: vector,
			score:   styleScore(vector, profile),
		}
	}
	// Stable sort keeps the catalog query's relative order for ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	kept := scored
	if limit < len(kept) {
		kept = kept[:limit]
	}
	recommendations := make([]types.PaddleRecommendation, 0, len(kept))
	for i, sc := range kept {
		rank := i + 1
		recommendations = append(recommendations, types.PaddleRecommendation{
			Rank:         rank,
			PaddleID:     sc.entry.Paddle.ID,
			BrandName:    sc.entry.BrandName,
			ModelName:    sc.entry.Paddle.ModelName,
			Ratings:      sc.ratings,
			MinPriceBRL:  sc.entry.MinPrice,
			MatchReasons: matchReasons(&sc.entry.Paddle, sc.ratings, profile),
			Tags:         recommendationTags(sc.ratings, rank),
			ValueScore:   valueScore(sc.entry.MinPrice, sc.ratings),
		})
	}

	result := &types.RecommendationResult{
		UserProfile:     profile,
		Recommendations: recommendations,
		FiltersApplied: map[string]bool{
			"budget_filter":       profile.BudgetMaxBRL != nil,
			"tennis_elbow_filter": profile.HasTennisElbow,
		},
		TotalMatching: len(entries),
		Returned:      len(recommendations),
	}

	rs.cache[key] = result
	return result, nil
}

// styleScore weighs the derived power/control ratings by the profile's
// preference. The fine-grained slider always wins over the enum style.
func styleScore(v types.RatingVector, profile types.UserProfile) float64 {
	power := float64(v.Power)
	control := float64(v.Control)

	if profile.PowerPreferencePercent != nil {
		powerWeight := float64(*profile.PowerPreferencePercent) / 100.0
		return power*powerWeight + control*(1.0-powerWeight)
	}

	switch profile.PlayStyle {
	case types.StylePower:
		return power*0.8 + control*0.2
	case types.StyleControl:
		return control*0.8 + power*0.2
	default:
		return (power + control) / 2
	}
}

func matchReasons(p *types.Paddle, v types.RatingVector, profile types.UserProfile) []string {
	reasons := []string{}

	switch profile.PlayStyle {
	case types.StylePower:
		if v.Power >= 8 {
			reasons = append(reasons, fmt.Sprintf("Excepcional potência (%d/10)", v.Power))
		}
	case types.StyleControl:
		if v.Control >= 8 {
			reasons = append(reasons, fmt.Sprintf("Máxima estabilidade e controle (%d/10)", v.Control))
		}
	case types.StyleBalanced:
		avg := float64(v.Power+v.Control) / 2
		if avg >= 7.5 {
			reasons = append(reasons, fmt.Sprintf("Equilíbrio ideal entre ataque e defesa (Média %.1f)", avg))
		}
	}

	if profile.HasTennisElbow && p.CoreThicknessMM != nil && *p.CoreThicknessMM >= minDampeningCoreMM {
		reasons = append(reasons, "Núcleo de 16mm para absorção de vibração")
	}

	return reasons
}

func recommendationTags(v types.RatingVector, rank int) []string {
	tags := []string{}
	if rank == 1 {
		tags = append(tags, "Top Pick")
	}
	if v.Power >= 9 {
		tags = append(tags, "Power Pro")
	} else if v.Control >= 9 {
		tags = append(tags, "Elite Control")
	}
	if float64(v.Spin) >= 8.5 {
		tags = append(tags, "Spin Machine")
	}
	return tags
}

// valueScore is performance-per-price, informational only. A lower price for
// identical ratings always yields a strictly higher score.
func valueScore(minPrice *float64, v types.RatingVector) *float64 {
	if minPrice == nil || *minPrice < valueScorePriceFloor {
		return nil
	}
	performance := float64(v.Power+v.Control+v.Spin) / 3
	score := math.Round(performance / *minPrice * 1000 * 10) / 10
	return &score
}

// cacheKey fingerprints the profile and limit: every field in a fixed key
// order, hashed, so identical inputs always map to the same entry.
func cacheKey(profile types.UserProfile, limit int) string {
	var b strings.Builder
	b.WriteString("budget_max_brl=" + fmtFloatPtr(profile.BudgetMaxBRL))
	b.WriteString("|has_tennis_elbow=" + strconv.FormatBool(profile.HasTennisElbow))
	b.WriteString("|play_style=" + string(profile.PlayStyle))
	b.WriteString("|power_preference_percent=" + fmtIntPtr(profile.PowerPreferencePercent))
	b.WriteString("|skill_level=" + string(profile.SkillLevel))
	b.WriteString("|spin_preference=" + fmtStrPtr(profile.SpinPreference))
	b.WriteString("|weight_preference=" + fmtStrPtr(profile.WeightPreference))
	b.WriteString("|limit=" + strconv.Itoa(limit))

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func fmtFloatPtr(v *float64) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtIntPtr(v *int) string {
	if v == nil {
		return "null"
	}
	return strconv.Itoa(*v)
}

func fmtStrPtr(v *string) string {
	if v == nil {
		return "null"
	}
	return *v
}
