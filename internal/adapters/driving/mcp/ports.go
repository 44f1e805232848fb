package mcp

import (
	"github.com/scoutlab/scholarscout-cli/internal/core/services"
)

// Ports aggregates the services the MCP server drives. This provides a
// single injection point for dependency injection.
type Ports struct {
	// Scholar serves the direct academic-graph operations.
	Scholar *services.ScholarService

	// Recruiting serves the fused recruiting operations.
	Recruiting *services.RecruitingService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Scholar == nil {
		return ErrMissingScholarService
	}
	if p.Recruiting == nil {
		return ErrMissingRecruitingService
	}
	return nil
}
