package services

import (
	"context"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

// Candidates scoring below this are dropped from search results.
const searchScoreThreshold = 50

// SearchService ranks the catalog against a free-text query with partial
// string similarity over model name, brand name and search keywords. The
// caller validates the query (min 2 chars) before it gets here.
type SearchService interface {
	Search(ctx context.Context, query string, limit int) (*types.SearchResponse, error)
}

type searchService struct {
	db         *gorm.DB
	log        *logger.Logger
	paddleRepo repos.PaddleRepo
}

func NewSearchService(db *gorm.DB, baseLog *logger.Logger, paddleRepo repos.PaddleRepo) SearchService {
	return &searchService{
		db:         db,
		log:        baseLog.With("service", "SearchService"),
		paddleRepo: paddleRepo,
	}
}

func (ss *searchService) Search(ctx context.Context, query string, limit int) (*types.SearchResponse, error) {
	entries, err := ss.paddleRepo.ListCandidates(ctx, nil, types.CandidateFilter{})
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	results := make([]types.SearchResult, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		score := scoreEntry(needle, entry)
		if score < searchScoreThreshold {
			continue
		}
		results = append(results, types.SearchResult{
			ID:          entry.Paddle.ID,
			BrandName:   entry.BrandName,
			ModelName:   entry.Paddle.ModelName,
			MatchScore:  score,
			MinPriceBRL: entry.MinPrice,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	total := len(results)
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	return &types.SearchResponse{Query: query, Results: results, Total: total}, nil
}

// scoreEntry takes the best partial-ratio match across model name, brand name
// and every search keyword.
func scoreEntry(needle string, entry *types.CandidateEntry) int {
	score := fuzzy.PartialRatio(needle, strings.ToLower(entry.Paddle.ModelName))
	if brandScore := fuzzy.PartialRatio(needle, strings.ToLower(entry.BrandName)); brandScore > score {
		score = brandScore
	}
	for _, kw := range entry.Paddle.SearchKeywords {
		if kwScore := fuzzy.PartialRatio(needle, strings.ToLower(kw)); kwScore > score {
			score = kwScore
		}
	}
	return score
}
