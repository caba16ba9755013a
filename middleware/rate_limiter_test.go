package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func pingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doPing(r *gin.Engine, addr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_BlocksAfterBurst(t *testing.T) {
	r := pingRouter()

	var last int
	for i := 0; i < burstSize+1; i++ {
		last = doPing(r, "203.0.113.7:40000")
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after the burst, got %d", last)
	}

	// A different address keeps its own allowance.
	if code := doPing(r, "203.0.113.8:40000"); code != http.StatusOK {
		t.Fatalf("expected 200 for another address, got %d", code)
	}
}
