package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	GenerationRuns.Inc()
	GenerationFallbacks.Inc()
	PublishedPosts.Inc()
	IncCommandRun("generate")
	ObserveGenerationDuration(time.Now().Add(-1500 * time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"postcraft_generation_runs_total",
		"postcraft_generation_fallbacks_total",
		"postcraft_generation_duration_seconds",
		"postcraft_published_posts_total",
		"postcraft_command_runs_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
