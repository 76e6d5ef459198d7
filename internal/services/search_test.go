package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

func searchEntry(model, brand string, keywords []string, price *float64) types.CandidateEntry {
	return types.CandidateEntry{
		Paddle: types.Paddle{
			ID:             uuid.New(),
			ModelName:      model,
			SearchKeywords: keywords,
		},
		BrandName: brand,
		MinPrice:  price,
	}
}

func newSearch(entries []types.CandidateEntry) SearchService {
	return NewSearchService(nil, logger.NewNop(), &fakePaddleRepo{entries: entries})
}

func TestSearchMatchesModelBrandAndKeywords(t *testing.T) {
	entries := []types.CandidateEntry{
		searchEntry("Magnus 3S Pro", "Six Zero", nil, fptr(1100)),
		searchEntry("Perseus Pro IV", "JOOLA", []string{"hyperion", "16mm"}, nil),
	}
	svc := newSearch(entries)

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{name: "model_substring", query: "magnus", want: "Magnus 3S Pro"},
		{name: "brand_name", query: "joola", want: "Perseus Pro IV"},
		{name: "keyword", query: "hyperion", want: "Perseus Pro IV"},
		{name: "case_insensitive", query: "MAGNUS", want: "Magnus 3S Pro"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Search(context.Background(), tc.query, 10)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(resp.Results) == 0 {
				t.Fatalf("no results for %q", tc.query)
			}
			if resp.Results[0].ModelName != tc.want {
				t.Fatalf("top result for %q = %s, want %s", tc.query, resp.Results[0].ModelName, tc.want)
			}
			if resp.Results[0].MatchScore != 100 {
				t.Fatalf("exact substring should score 100, got %d", resp.Results[0].MatchScore)
			}
			if resp.Query != tc.query {
				t.Fatalf("response must echo the query, got %q", resp.Query)
			}
		})
	}
}

func TestSearchThresholdDropsWeakMatches(t *testing.T) {
	svc := newSearch([]types.CandidateEntry{
		searchEntry("Magnus 3S Pro", "Six Zero", nil, nil),
	})

	// None of j/q/k/w occur in the fixture's model or brand, so every
	// partial-ratio alignment scores zero.
	resp, err := svc.Search(context.Background(), "jqkw", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Results) != 0 || resp.Total != 0 {
		t.Fatalf("weak matches must be dropped, got %+v", resp.Results)
	}
}

func TestSearchKeepsExactThresholdScore(t *testing.T) {
	// "ab" against the keyword "ax" shares one of two characters in the only
	// alignment, scoring exactly 50: the threshold is inclusive.
	svc := newSearch([]types.CandidateEntry{
		searchEntry("zzzz", "zzzz", []string{"ax"}, nil),
	})

	resp, err := svc.Search(context.Background(), "ab", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("score == 50 must be kept, got %+v", resp.Results)
	}
	if resp.Results[0].MatchScore != 50 {
		t.Fatalf("expected boundary score 50, got %d", resp.Results[0].MatchScore)
	}
}

func TestSearchOrdersByScoreAndTruncates(t *testing.T) {
	entries := []types.CandidateEntry{
		searchEntry("Magnum Drive", "Franklin", nil, nil), // close but not exact
		searchEntry("Magnus 3S Pro", "Six Zero", nil, nil),
		searchEntry("Magnus Air", "Six Zero", nil, nil),
	}
	svc := newSearch(entries)

	resp, err := svc.Search(context.Background(), "magnus", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Results))
	}
	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i].MatchScore > resp.Results[i-1].MatchScore {
			t.Fatalf("results not sorted descending: %+v", resp.Results)
		}
	}
	// Equal scores keep catalog order: both exact Magnus models precede the
	// approximate Magnum match, in their original relative order.
	if resp.Results[0].ModelName != "Magnus 3S Pro" || resp.Results[1].ModelName != "Magnus Air" {
		t.Fatalf("stable order violated: %+v", resp.Results)
	}

	limited, err := svc.Search(context.Background(), "magnus", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(limited.Results) != 2 {
		t.Fatalf("limit not applied, got %d results", len(limited.Results))
	}
	if limited.Total != 3 {
		t.Fatalf("total must count all matches before truncation, got %d", limited.Total)
	}
}

func TestSearchErrorPropagates(t *testing.T) {
	svc := NewSearchService(nil, logger.NewNop(), &fakePaddleRepo{err: context.DeadlineExceeded})
	if _, err := svc.Search(context.Background(), "magnus", 10); err == nil {
		t.Fatalf("catalog error must propagate")
	}
}
