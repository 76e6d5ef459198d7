package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sliceinsights/picklematch-backend/internal/logger"
)

func newLimitedRouter(perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := NewRateLimiter(logger.NewNop(), perMinute)
	r.GET("/limited", rl.Handler(), func(c *gin.Context) {
		c.Status(200)
	})
	return r
}

func doGet(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/limited", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterAllowsBurstThenRejects(t *testing.T) {
	r := newLimitedRouter(5)

	for i := 0; i < 5; i++ {
		if code := doGet(r, "10.0.0.1:1234"); code != 200 {
			t.Fatalf("request %d: got %d, want 200", i+1, code)
		}
	}
	if code := doGet(r, "10.0.0.1:1234"); code != 429 {
		t.Fatalf("over-limit request: got %d, want 429", code)
	}
}

func TestRateLimiterPrunesIdleClients(t *testing.T) {
	rl := NewRateLimiter(logger.NewNop(), 5)
	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")

	// Age one client past the idle cutoff and force the next lookup to prune.
	rl.mu.Lock()
	rl.clients["10.0.0.1"].lastSeen = time.Now().Add(-2 * clientMaxIdle)
	rl.lastPrune = time.Now().Add(-2 * pruneInterval)
	rl.mu.Unlock()

	rl.limiterFor("10.0.0.3")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.clients["10.0.0.1"]; ok {
		t.Fatalf("idle client bucket was not pruned")
	}
	if _, ok := rl.clients["10.0.0.2"]; !ok {
		t.Fatalf("fresh client bucket was pruned")
	}
	if _, ok := rl.clients["10.0.0.3"]; !ok {
		t.Fatalf("new client bucket missing")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	r := newLimitedRouter(2)

	doGet(r, "10.0.0.1:1234")
	doGet(r, "10.0.0.1:1234")
	if code := doGet(r, "10.0.0.1:1234"); code != 429 {
		t.Fatalf("first client over-limit: got %d, want 429", code)
	}
	if code := doGet(r, "10.0.0.2:1234"); code != 200 {
		t.Fatalf("second client first request: got %d, want 200", code)
	}
}
