package mcp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/services"
	"github.com/scoutlab/scholarscout-cli/internal/logger"
)

// ReportOutput is the shared output schema: every tool produces one
// formatted text report.
type ReportOutput struct {
	Report string `json:"report" jsonschema:"the formatted report text"`
}

// SearchPapersInput is the input schema for the search_papers tool.
type SearchPapersInput struct {
	Query          string `json:"query" jsonschema:"search query for papers"`
	Venue          string `json:"venue,omitempty" jsonschema:"venue shorthand or full name (e.g. 'neurips')"`
	YearFrom       int    `json:"year_from,omitempty" jsonschema:"only papers published on or after this year"`
	YearTo         int    `json:"year_to,omitempty" jsonschema:"only papers published on or before this year"`
	MinCitations   int    `json:"min_citations,omitempty" jsonschema:"minimum citation count"`
	FieldsOfStudy  string `json:"fields_of_study,omitempty" jsonschema:"comma-separated fields of study filter"`
	OpenAccessOnly bool   `json:"open_access_only,omitempty" jsonschema:"only papers with an open-access PDF"`
	Limit          int    `json:"limit,omitempty" jsonschema:"maximum results (default 20, max 100)"`
	Sort           string `json:"sort,omitempty" jsonschema:"sort expression (default citationCount:desc)"`
}

// PaperInput identifies one paper.
type PaperInput struct {
	PaperID string `json:"paper_id" jsonschema:"Semantic Scholar paper ID, 'DOI:...' or 'ARXIV:...'"`
}

// PaperCitationsInput is the input schema for get_paper_citations.
type PaperCitationsInput struct {
	PaperID string `json:"paper_id" jsonschema:"Semantic Scholar paper ID"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum citations to return (default 20, max 100)"`
}

// SearchAuthorsInput is the input schema for search_authors.
type SearchAuthorsInput struct {
	Name  string `json:"name" jsonschema:"author name to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum results (default 10, max 100)"`
}

// AuthorInput identifies one author.
type AuthorInput struct {
	AuthorID string `json:"author_id" jsonschema:"Semantic Scholar author ID"`
}

// AuthorPapersInput is the input schema for get_author_papers.
type AuthorPapersInput struct {
	AuthorID string `json:"author_id" jsonschema:"Semantic Scholar author ID"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum papers to return (default 20, max 100)"`
	YearFrom int    `json:"year_from,omitempty" jsonschema:"only papers published on or after this year"`
	SortBy   string `json:"sort_by,omitempty" jsonschema:"'citations' (default), 'influential' or 'year'"`
}

// VenueTopAuthorsInput is the input schema for find_venue_top_authors.
type VenueTopAuthorsInput struct {
	Venue     string `json:"venue" jsonschema:"venue shorthand or full name (e.g. 'neurips', 'icml')"`
	Query     string `json:"query,omitempty" jsonschema:"optional topic filter"`
	YearFrom  int    `json:"year_from,omitempty" jsonschema:"minimum publication year (default 2020)"`
	MinPapers int    `json:"min_papers,omitempty" jsonschema:"minimum papers at the venue (default 2)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum authors to return (default 20)"`
}

// RisingStarsInput is the input schema for find_rising_stars.
type RisingStarsInput struct {
	Topic        string `json:"topic" jsonschema:"research area (e.g. 'large language models')"`
	YearFrom     int    `json:"year_from,omitempty" jsonschema:"only papers from this year onwards (default 2022)"`
	MinCitations int    `json:"min_citations,omitempty" jsonschema:"minimum citations per qualifying paper (default 50)"`
	MaxHIndex    int    `json:"max_h_index,omitempty" jsonschema:"maximum h-index, filters out established researchers (default 30)"`
	Limit        int    `json:"limit,omitempty" jsonschema:"maximum results (default 15)"`
}

// ResearcherNameInput carries a researcher's name.
type ResearcherNameInput struct {
	Name string `json:"name" jsonschema:"researcher's name"`
}

// UsernameInput carries a code-host username.
type UsernameInput struct {
	Username string `json:"username" jsonschema:"GitHub username"`
}

// CombinedProfileInput is the input schema for combined_researcher_profile.
type CombinedProfileInput struct {
	AuthorName     string `json:"author_name" jsonschema:"researcher's name, used to search Semantic Scholar when no ID is given"`
	S2AuthorID     string `json:"s2_author_id,omitempty" jsonschema:"optional Semantic Scholar author ID"`
	GithubUsername string `json:"github_username,omitempty" jsonschema:"optional GitHub username"`
}

// EmptyInput is the input schema for tools without parameters.
type EmptyInput struct{}

// BatchLookupInput is the input schema for batch_author_lookup.
type BatchLookupInput struct {
	AuthorIDs string `json:"author_ids" jsonschema:"comma- or pipe-separated Semantic Scholar author IDs (up to 500)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_papers",
		Description: "Search academic papers with filters for venue, year, citations and field of study",
	}, s.handleSearchPapers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_paper_details",
		Description: "Get detailed information about a specific paper including abstract and all authors",
	}, s.handleGetPaperDetails)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_paper_citations",
		Description: "Get papers that cite a specific paper",
	}, s.handleGetPaperCitations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_authors",
		Description: "Search for authors by name",
	}, s.handleSearchAuthors)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_author_details",
		Description: "Get an author's profile with metrics and top papers",
	}, s.handleGetAuthorDetails)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_author_papers",
		Description: "Get papers by a specific author, filtered and sorted",
	}, s.handleGetAuthorPapers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_venue_top_authors",
		Description: "Find the most prolific authors publishing at a venue, ranked and enriched",
	}, s.handleFindVenueTopAuthors)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_rising_stars",
		Description: "Find researchers with high recent impact relative to their career stage",
	}, s.handleFindRisingStars)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_researcher_github",
		Description: "Search for a researcher's GitHub profile by name",
	}, s.handleSearchResearcherGithub)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "github_activity_score",
		Description: "Analyze a GitHub user's activity and compute a 0-100 recruitability score",
	}, s.handleGithubActivityScore)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "combined_researcher_profile",
		Description: "Get a combined academic and GitHub profile for a researcher",
	}, s.handleCombinedProfile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_ml_venues",
		Description: "List supported ML conference and journal shortcuts",
	}, s.handleListVenues)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "batch_author_lookup",
		Description: "Look up multiple authors at once (up to 500 IDs)",
	}, s.handleBatchAuthorLookup)
}

// report wraps a rendered text block into a tool result.
func report(text string) (*mcp.CallToolResult, ReportOutput, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, ReportOutput{Report: text}, nil
}

// failure converts an operation error into a textual tool result.
// Errors never cross the MCP boundary as protocol faults.
func failure(tool, trace string, err error) (*mcp.CallToolResult, ReportOutput, error) {
	logger.Warn("mcp: tool %s failed (trace %s): %v", tool, trace, err)

	text := "Error: " + err.Error()
	if errors.Is(err, domain.ErrNotConfigured) {
		text = "Error: GITHUB_TOKEN not configured. Add it to your MCP server environment."
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, ReportOutput{}, nil
}

// invocation logs a tool call and returns its trace id.
func invocation(tool string) string {
	trace := uuid.NewString()
	logger.Debug("mcp: tool %s invoked (trace %s)", tool, trace)
	return trace
}

func (s *Server) handleSearchPapers(
	ctx context.Context, _ *mcp.CallToolRequest, in SearchPapersInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("search_papers")

	batch, err := s.ports.Scholar.SearchPapers(ctx, domain.PaperQuery{
		Query:          in.Query,
		Venue:          in.Venue,
		YearFrom:       in.YearFrom,
		YearTo:         in.YearTo,
		MinCitations:   in.MinCitations,
		FieldsOfStudy:  in.FieldsOfStudy,
		OpenAccessOnly: in.OpenAccessOnly,
		Limit:          in.Limit,
		Sort:           in.Sort,
	})
	if err != nil {
		return failure("search_papers", trace, err)
	}
	return report(renderPaperList(in.Query, domain.ResolveVenue(in.Venue), batch))
}

func (s *Server) handleGetPaperDetails(
	ctx context.Context, _ *mcp.CallToolRequest, in PaperInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("get_paper_details")

	details, err := s.ports.Scholar.GetPaper(ctx, in.PaperID)
	if err != nil {
		return failure("get_paper_details", trace, err)
	}
	return report(renderPaperDetails(details))
}

func (s *Server) handleGetPaperCitations(
	ctx context.Context, _ *mcp.CallToolRequest, in PaperCitationsInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("get_paper_citations")

	papers, err := s.ports.Scholar.GetPaperCitations(ctx, in.PaperID, in.Limit)
	if err != nil {
		return failure("get_paper_citations", trace, err)
	}
	return report(renderPaperCitations(papers))
}

func (s *Server) handleSearchAuthors(
	ctx context.Context, _ *mcp.CallToolRequest, in SearchAuthorsInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("search_authors")

	batch, err := s.ports.Scholar.SearchAuthors(ctx, in.Name, in.Limit)
	if err != nil {
		return failure("search_authors", trace, err)
	}
	return report(renderAuthorSearch(in.Name, batch))
}

func (s *Server) handleGetAuthorDetails(
	ctx context.Context, _ *mcp.CallToolRequest, in AuthorInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("get_author_details")

	profile, err := s.ports.Scholar.GetAuthor(ctx, in.AuthorID)
	if err != nil {
		return failure("get_author_details", trace, err)
	}
	return report(renderAuthorDetails(profile))
}

func (s *Server) handleGetAuthorPapers(
	ctx context.Context, _ *mcp.CallToolRequest, in AuthorPapersInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("get_author_papers")

	papers, err := s.ports.Scholar.GetAuthorPapers(
		ctx, in.AuthorID, in.Limit, in.YearFrom, services.AuthorPaperSort(in.SortBy))
	if err != nil {
		return failure("get_author_papers", trace, err)
	}
	return report(renderAuthorPapers(in.AuthorID, papers))
}

func (s *Server) handleFindVenueTopAuthors(
	ctx context.Context, _ *mcp.CallToolRequest, in VenueTopAuthorsInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("find_venue_top_authors")

	yearFrom := in.YearFrom
	if yearFrom == 0 {
		yearFrom = 2020
	}
	minPapers := in.MinPapers
	if minPapers == 0 {
		minPapers = 2
	}

	res, err := s.ports.Recruiting.FindVenueTopAuthors(ctx, in.Venue, in.Query, yearFrom, minPapers, in.Limit)
	if err != nil {
		return failure("find_venue_top_authors", trace, err)
	}
	return report(renderVenueTopAuthors(res))
}

func (s *Server) handleFindRisingStars(
	ctx context.Context, _ *mcp.CallToolRequest, in RisingStarsInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("find_rising_stars")

	yearFrom := in.YearFrom
	if yearFrom == 0 {
		yearFrom = 2022
	}
	minCitations := in.MinCitations
	if minCitations == 0 {
		minCitations = 50
	}
	maxHIndex := in.MaxHIndex
	if maxHIndex == 0 {
		maxHIndex = 30
	}

	res, err := s.ports.Recruiting.FindRisingStars(ctx, in.Topic, yearFrom, minCitations, maxHIndex, in.Limit)
	if err != nil {
		return failure("find_rising_stars", trace, err)
	}
	return report(renderRisingStars(res))
}

func (s *Server) handleSearchResearcherGithub(
	ctx context.Context, _ *mcp.CallToolRequest, in ResearcherNameInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("search_researcher_github")

	profiles, err := s.ports.Recruiting.SearchResearcherCode(ctx, in.Name)
	if err != nil {
		return failure("search_researcher_github", trace, err)
	}
	return report(renderCodeSearch(in.Name, profiles))
}

func (s *Server) handleGithubActivityScore(
	ctx context.Context, _ *mcp.CallToolRequest, in UsernameInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("github_activity_score")

	reportData, err := s.ports.Recruiting.ActivityReportFor(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return report("Error: GitHub user '" + in.Username + "' not found")
		}
		return failure("github_activity_score", trace, err)
	}
	return report(renderActivityReport(in.Username, reportData))
}

func (s *Server) handleCombinedProfile(
	ctx context.Context, _ *mcp.CallToolRequest, in CombinedProfileInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("combined_researcher_profile")

	composite, err := s.ports.Recruiting.CombinedProfile(ctx, in.AuthorName, in.S2AuthorID, in.GithubUsername)
	if err != nil {
		return failure("combined_researcher_profile", trace, err)
	}
	return report(renderCompositeProfile(composite))
}

func (s *Server) handleListVenues(
	_ context.Context, _ *mcp.CallToolRequest, _ EmptyInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	invocation("list_ml_venues")
	return report(renderVenueList())
}

func (s *Server) handleBatchAuthorLookup(
	ctx context.Context, _ *mcp.CallToolRequest, in BatchLookupInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	trace := invocation("batch_author_lookup")

	profiles, err := s.ports.Scholar.BatchAuthorLookup(ctx, in.AuthorIDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return report("Error: No valid author IDs provided")
		}
		return failure("batch_author_lookup", trace, err)
	}
	return report(renderBatchLookup(profiles))
}
