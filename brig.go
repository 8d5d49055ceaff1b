// Package brig is a protocol bridge between MCP-style RPC envelopes
// and the n8n workflow-automation REST API. Each request is translated
// into a single upstream call and answered with one terminal
// server-sent event.
package brig

const (
	// Name identifies the service in logs and the discovery document
	Name = "brig"

	// Version is the bridge release version
	Version = "1.0.0"
)
