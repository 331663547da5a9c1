package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	startTime = time.Now()

	healthCheckTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loom_health_check_total",
			Help: "Total number of health check requests",
		},
		[]string{"endpoint", "status"},
	)

	healthCheckDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loom_health_check_duration_seconds",
			Help:    "Health check request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"endpoint"},
	)

	serviceHealthy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "loom_service_healthy",
			Help: "1 if service is healthy, 0 if unhealthy",
		},
		[]string{"service"},
	)
)

// NodeHealthChecker abstracts the node probes so the handlers can be
// exercised without a running CometBFT instance.
type NodeHealthChecker interface {
	CheckRPC() error
	CheckSync() (bool, int64, error)
	CheckConsensus() error
	GetPeerCount() (int, error)
	GetBlockHeight() (int64, error)
}

// HealthCheck serves the node-operator health endpoints on their own port,
// away from the API server, so probes keep answering while the app starts.
type HealthCheck struct {
	server      *http.Server
	nodeChecker NodeHealthChecker
	cache       *detailedCache
}

// detailedCache keeps the last detailed response so frequent probes do not
// hammer the RPC endpoint.
type detailedCache struct {
	mu          sync.RWMutex
	result      *DetailedHealthResponse
	lastChecked time.Time
	ttl         time.Duration
}

func newDetailedCache(ttl time.Duration) *detailedCache {
	return &detailedCache{ttl: ttl}
}

func (c *detailedCache) get() (*DetailedHealthResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.result == nil || time.Since(c.lastChecked) > c.ttl {
		return nil, false
	}
	return c.result, true
}

func (c *detailedCache) set(result *DetailedHealthResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.result = result
	c.lastChecked = time.Now()
}

// BasicHealthResponse is the response for /health
type BasicHealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReadinessResponse is the response for /health/ready
type ReadinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// DetailedHealthResponse is the response for /health/detailed
type DetailedHealthResponse struct {
	Status        string                  `json:"status"`
	UptimeSeconds int64                   `json:"uptime_seconds"`
	Version       string                  `json:"version"`
	Checks        map[string]CheckResult  `json:"checks"`
	Modules       map[string]ModuleHealth `json:"modules"`
	System        SystemHealth            `json:"system"`
}

// CheckResult is a single probe outcome.
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ModuleHealth carries per-module gauges for the detailed view.
type ModuleHealth struct {
	Status  string                 `json:"status"`
	Metrics map[string]interface{} `json:"metrics,omitempty"`
}

// SystemHealth carries process-level gauges.
type SystemHealth struct {
	MemoryMB    uint64 `json:"memory_mb"`
	Goroutines  int    `json:"goroutines"`
	Peers       int    `json:"peers"`
	BlockHeight int64  `json:"block_height"`
}

// StartHealthCheckServer starts the health check HTTP server
func StartHealthCheckServer(port int, nodeChecker NodeHealthChecker) *HealthCheck {
	hc := &HealthCheck{
		nodeChecker: nodeChecker,
		cache:       newDetailedCache(5 * time.Second),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", hc.instrumented("health", hc.handleBasicHealth))
	mux.HandleFunc("/health/ready", hc.instrumented("ready", hc.handleReadiness))
	mux.HandleFunc("/health/detailed", hc.instrumented("detailed", hc.handleDetailed))
	mux.HandleFunc("/health/startup", hc.instrumented("startup", hc.handleStartup))

	hc.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		if err := hc.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("health check server error: %v\n", err)
		}
	}()

	return hc
}

// instrumented records count and latency per endpoint, keeping probe
// traffic out of the regular request metrics.
func (hc *HealthCheck) instrumented(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		handler(rw, r)

		healthCheckTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", rw.statusCode)).Inc()
		healthCheckDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeHealthJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// handleBasicHealth answers GET /health. Alive means 200.
func (hc *HealthCheck) handleBasicHealth(w http.ResponseWriter, r *http.Request) {
	writeHealthJSON(w, http.StatusOK, BasicHealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// runNodeChecks probes RPC, sync and consensus, updating the service
// gauges as it goes. ready is false while any probe fails or the node is
// still catching up.
func (hc *HealthCheck) runNodeChecks() (checks map[string]CheckResult, ready bool) {
	checks = make(map[string]CheckResult)
	ready = true

	if hc.nodeChecker == nil {
		return checks, ready
	}

	if err := hc.nodeChecker.CheckRPC(); err != nil {
		checks["rpc"] = CheckResult{Status: "unhealthy", Message: err.Error()}
		serviceHealthy.WithLabelValues("rpc").Set(0)
		ready = false
	} else {
		checks["rpc"] = CheckResult{Status: "ok"}
		serviceHealthy.WithLabelValues("rpc").Set(1)
	}

	syncing, height, err := hc.nodeChecker.CheckSync()
	switch {
	case err != nil:
		checks["sync"] = CheckResult{Status: "unhealthy", Message: err.Error()}
		serviceHealthy.WithLabelValues("sync").Set(0)
		ready = false
	case syncing:
		checks["sync"] = CheckResult{Status: "syncing", Message: fmt.Sprintf("catching up at height %d", height)}
		serviceHealthy.WithLabelValues("sync").Set(0)
		ready = false
	default:
		checks["sync"] = CheckResult{Status: "ok"}
		serviceHealthy.WithLabelValues("sync").Set(1)
	}

	// Consensus trouble degrades but never blocks readiness: full nodes
	// serve queries fine without signing blocks.
	if err := hc.nodeChecker.CheckConsensus(); err != nil {
		checks["consensus"] = CheckResult{Status: "degraded", Message: err.Error()}
		serviceHealthy.WithLabelValues("consensus").Set(0.5)
	} else {
		checks["consensus"] = CheckResult{Status: "ok"}
		serviceHealthy.WithLabelValues("consensus").Set(1)
	}

	return checks, ready
}

// handleReadiness answers GET /health/ready for load balancers.
func (hc *HealthCheck) handleReadiness(w http.ResponseWriter, r *http.Request) {
	checks, ready := hc.runNodeChecks()

	status, statusCode := "ready", http.StatusOK
	if !ready {
		status, statusCode = "not_ready", http.StatusServiceUnavailable
	}

	writeHealthJSON(w, statusCode, ReadinessResponse{
		Status: status,
		Checks: checks,
	})
}

// handleDetailed answers GET /health/detailed with the full breakdown.
func (hc *HealthCheck) handleDetailed(w http.ResponseWriter, r *http.Request) {
	if cached, ok := hc.cache.get(); ok {
		w.Header().Set("X-Cache", "HIT")
		writeHealthJSON(w, http.StatusOK, cached)
		return
	}

	checks, _ := hc.runNodeChecks()

	// Module gauges are placeholders until the keepers export their counts
	// over a local query; the response shape is what operators script against.
	modules := map[string]ModuleHealth{
		"jobs": {
			Status: "ok",
			Metrics: map[string]interface{}{
				"open_jobs":      0,
				"escrow_balance": 0,
			},
		},
		"oracle": {
			Status: "ok",
			Metrics: map[string]interface{}{
				"active_validators": 0,
				"price_pairs":       0,
			},
		},
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	peers := 0
	blockHeight := int64(0)
	if hc.nodeChecker != nil {
		peers, _ = hc.nodeChecker.GetPeerCount()
		blockHeight, _ = hc.nodeChecker.GetBlockHeight()
	}

	status := "healthy"
	for _, check := range checks {
		if check.Status == "unhealthy" {
			status = "unhealthy"
			break
		}
		if check.Status == "degraded" || check.Status == "syncing" {
			status = "degraded"
		}
	}

	response := &DetailedHealthResponse{
		Status:        status,
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
		Version:       getVersion(),
		Checks:        checks,
		Modules:       modules,
		System: SystemHealth{
			MemoryMB:    m.Alloc / 1024 / 1024,
			Goroutines:  runtime.NumGoroutine(),
			Peers:       peers,
			BlockHeight: blockHeight,
		},
	}

	hc.cache.set(response)

	w.Header().Set("X-Cache", "MISS")
	writeHealthJSON(w, http.StatusOK, response)
}

// handleStartup answers GET /health/startup for Kubernetes startup probes.
func (hc *HealthCheck) handleStartup(w http.ResponseWriter, r *http.Request) {
	// 30 second grace period before the readiness rules apply.
	if time.Since(startTime) < 30*time.Second {
		writeHealthJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "starting",
			"message": "application is initializing",
		})
		return
	}

	hc.handleReadiness(w, r)
}

// Shutdown stops the health check server.
func (hc *HealthCheck) Shutdown(ctx context.Context) error {
	if hc.server != nil {
		return hc.server.Shutdown(ctx)
	}
	return nil
}

func getVersion() string {
	if version := os.Getenv("LOOM_VERSION"); version != "" {
		return version
	}
	return "dev"
}
