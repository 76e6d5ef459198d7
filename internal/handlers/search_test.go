package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sliceinsights/picklematch-backend/internal/types"
)

type stubSearchService struct {
	lastQuery string
	lastLimit int
	response  *types.SearchResponse
}

func (s *stubSearchService) Search(ctx context.Context, query string, limit int) (*types.SearchResponse, error) {
	s.lastQuery = query
	s.lastLimit = limit
	return s.response, nil
}

func searchRouter(svc *stubSearchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSearchHandler(svc, nil)
	r.GET("/search", h.Search)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestSearchRejectsShortQuery(t *testing.T) {
	r := searchRouter(&stubSearchService{})

	for _, path := range []string{"/search", "/search?q=a", "/search?q=%20%20x%20%20"} {
		if w := getPath(r, path); w.Code != 400 {
			t.Fatalf("%s: got %d, want 400", path, w.Code)
		}
	}
}

func TestSearchLimitDefaultsAndCaps(t *testing.T) {
	svc := &stubSearchService{response: &types.SearchResponse{Query: "joola", Results: []types.SearchResult{}}}
	r := searchRouter(svc)

	if w := getPath(r, "/search?q=joola"); w.Code != 200 {
		t.Fatalf("got %d, want 200", w.Code)
	}
	if svc.lastLimit != 10 {
		t.Fatalf("default limit: got %d, want 10", svc.lastLimit)
	}

	if w := getPath(r, "/search?q=joola&limit=500"); w.Code != 200 {
		t.Fatalf("got %d, want 200", w.Code)
	}
	if svc.lastLimit != 50 {
		t.Fatalf("capped limit: got %d, want 50", svc.lastLimit)
	}

	w := getPath(r, "/search?q=joola&limit=0")
	if w.Code != 400 {
		t.Fatalf("zero limit: got %d, want 400", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if env.Error.Message != "limit must be >= 1" {
		t.Fatalf("got message %q, want explicit limit message", env.Error.Message)
	}
}

func TestSearchTrimsQuery(t *testing.T) {
	svc := &stubSearchService{response: &types.SearchResponse{Query: "joola"}}
	r := searchRouter(svc)

	w := getPath(r, "/search?q=%20joola%20")
	if w.Code != 200 {
		t.Fatalf("got %d, want 200", w.Code)
	}
	if svc.lastQuery != "joola" {
		t.Fatalf("got query %q, want trimmed %q", svc.lastQuery, "joola")
	}
	var resp types.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
}
