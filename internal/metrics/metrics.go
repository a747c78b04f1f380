package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GenerationRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postcraft_generation_runs_total",
		Help: "Total content generation runs",
	})
	GenerationFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postcraft_generation_fallbacks_total",
		Help: "Total generations served by the template fallback path",
	})
	GenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "postcraft_generation_duration_seconds",
		Help:    "Content generation duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	PublishedPosts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postcraft_published_posts_total",
		Help: "Total scheduled posts marked published",
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postcraft_command_errors_total",
		Help: "Total CLI command errors",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(GenerationRuns, GenerationFallbacks, GenerationDuration, PublishedPosts, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveGenerationDuration records one generation run duration.
func ObserveGenerationDuration(start time.Time) {
	GenerationDuration.Observe(time.Since(start).Seconds())
}

// IncCommandRun increments the run counter for a CLI command.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError increments the error counter for a CLI command.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
