package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
	"github.com/sliceinsights/picklematch-backend/internal/repos"
	"github.com/sliceinsights/picklematch-backend/internal/types"
)

type stubPaddleRepo struct {
	entries []types.CandidateEntry
}

func (s *stubPaddleRepo) Create(ctx context.Context, tx *gorm.DB, paddles []*types.Paddle) ([]*types.Paddle, error) {
	return paddles, nil
}

func (s *stubPaddleRepo) GetByID(ctx context.Context, tx *gorm.DB, paddleID uuid.UUID) (*types.Paddle, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPaddleRepo) List(ctx context.Context, tx *gorm.DB, filter repos.PaddleListFilter) ([]types.CandidateEntry, int64, error) {
	return s.entries, int64(len(s.entries)), nil
}

func (s *stubPaddleRepo) ListCandidates(ctx context.Context, tx *gorm.DB, filter types.CandidateFilter) ([]types.CandidateEntry, error) {
	return s.entries, nil
}

func (s *stubPaddleRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(s.entries)), nil
}

func recommendationRouter(repo repos.PaddleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRecommendationHandler(nil, logger.NewNop(), repo, nil)
	r.POST("/recommendations", h.GetRecommendations)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetRecommendationsRejectsInvalidProfile(t *testing.T) {
	r := recommendationRouter(&stubPaddleRepo{})

	cases := []struct {
		name string
		body string
	}{
		{"missing skill level", `{"play_style":"power"}`},
		{"unknown play style", `{"skill_level":"beginner","play_style":"aggressive"}`},
		{"zero budget", `{"skill_level":"beginner","play_style":"power","budget_max_brl":0}`},
		{"percent out of range", `{"skill_level":"beginner","play_style":"power","power_preference_percent":101}`},
		{"limit out of range", `{"skill_level":"beginner","play_style":"power","limit":11}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/recommendations", tc.body)
			if w.Code != 400 {
				t.Fatalf("got %d, want 400", w.Code)
			}
			var env ErrorEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("unmarshal error body: %v", err)
			}
			if env.Error.Code != "invalid_request" {
				t.Fatalf("got code %q, want invalid_request", env.Error.Code)
			}
		})
	}
}

func TestGetRecommendationsDefaultsLimit(t *testing.T) {
	entries := make([]types.CandidateEntry, 0, 5)
	for i := 0; i < 5; i++ {
		power := 5 + i
		entries = append(entries, types.CandidateEntry{
			Paddle:    types.Paddle{ID: uuid.New(), ModelName: "Paddle", PowerRating: &power},
			BrandName: "Brand",
		})
	}
	r := recommendationRouter(&stubPaddleRepo{entries: entries})

	w := postJSON(r, "/recommendations", `{"skill_level":"intermediate","play_style":"power"}`)
	if w.Code != 200 {
		t.Fatalf("got %d, want 200: %s", w.Code, w.Body.String())
	}
	var result types.RecommendationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if result.Returned != 3 {
		t.Fatalf("got %d recommendations, want default 3", result.Returned)
	}
	if result.TotalMatching != 5 {
		t.Fatalf("got total_matching %d, want 5", result.TotalMatching)
	}
}
