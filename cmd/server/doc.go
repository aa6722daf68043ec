// Package main is the entry point for the numerics backend server.
//
// The server exposes the numeric utilities library as a tool-based
// service: reductions, combinatorics, number theory, random sampling,
// sequence generation, and approximate comparison.
//
// The server provides:
//   - REST API for listing, discovering, and executing tools
//   - Prometheus metrics endpoint
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8000
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
