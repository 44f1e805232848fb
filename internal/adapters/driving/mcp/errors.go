// Package mcp provides the MCP (Model Context Protocol) server adapter
// for ScholarScout. It exposes the recruiting tool surface to AI
// assistants over stdio or HTTP.
package mcp

import "errors"

// ErrMissingScholarService is returned when the scholar service is not provided.
var ErrMissingScholarService = errors.New("mcp: scholar service is required")

// ErrMissingRecruitingService is returned when the recruiting service is not provided.
var ErrMissingRecruitingService = errors.New("mcp: recruiting service is required")
