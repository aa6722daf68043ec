// Package monitoring provides Prometheus metrics for the numerics
// backend: HTTP request counters and latency histograms, per-tool call
// counters together with error counts, and process uptime.
//
// The metrics endpoint is exposed through promhttp:
//
//	import "github.com/prometheus/client_golang/prometheus/promhttp"
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// A small snapshot of aggregate values is kept alongside the registry
// so the health endpoint can report request totals without scraping.
package monitoring
