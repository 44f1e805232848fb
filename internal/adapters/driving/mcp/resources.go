package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for ScholarScout resources.
const uriScheme = "scholarscout://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the venue shorthand table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "venues",
		Name:        "venues",
		Description: "Supported ML venue shortcuts grouped by research area",
		MIMEType:    "application/json",
	}, s.handleVenuesResource)
}

// handleVenuesResource returns the venue shorthand table as JSON.
func (s *Server) handleVenuesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type venueInfo struct {
		Shorthand string `json:"shorthand"`
		Canonical string `json:"canonical"`
	}
	type categoryInfo struct {
		Category string      `json:"category"`
		Venues   []venueInfo `json:"venues"`
	}

	categories := domain.VenueCategories()
	infos := make([]categoryInfo, len(categories))
	for i, cat := range categories {
		venues := make([]venueInfo, len(cat.Shorthand))
		for j, short := range cat.Shorthand {
			venues[j] = venueInfo{
				Shorthand: short,
				Canonical: domain.ResolveVenue(short),
			}
		}
		infos[i] = categoryInfo{Category: cat.Name, Venues: venues}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling venues: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
