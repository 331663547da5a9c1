package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartPrometheusServer exposes /metrics on the given port. The jobs and
// oracle keepers register their collectors on the default registry, so
// this surfaces escrow and price feed gauges alongside the Go runtime ones.
// Separate from the SDK's built-in telemetry endpoint.
func StartPrometheusServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			// A taken port is not fatal, the node itself keeps running.
			fmt.Printf("prometheus server error: %v\n", err)
		}
	}()
}
