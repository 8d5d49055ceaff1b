// Package server implements the HTTP surface of the bridge
//
// This package provides the health check, the discovery endpoint, and
// the single-event SSE request endpoint
package server
