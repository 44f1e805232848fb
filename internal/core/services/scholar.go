package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/ports/driven"
	"github.com/scoutlab/scholarscout-cli/internal/logger"
)

// Upstream-imposed limits. Out-of-range caller values are clamped, not
// rejected.
const (
	// MaxSearchLimit is the per-request record cap on search endpoints.
	MaxSearchLimit = 100

	// MaxBatchSize is the id cap on the bulk author lookup.
	MaxBatchSize = 500
)

// ScholarService exposes the direct academic-graph operations: paper
// and author search, single-record lookups, and the bulk author lookup.
type ScholarService struct {
	graph driven.AcademicGraph
}

// NewScholarService creates a new scholar service.
func NewScholarService(graph driven.AcademicGraph) *ScholarService {
	return &ScholarService{graph: graph}
}

// clampLimit clamps a caller-supplied limit into [1, MaxSearchLimit],
// using def when the caller left it unset.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

// SearchPapers resolves the venue shorthand and issues one filtered
// paper search. Zero results is a valid outcome.
func (s *ScholarService) SearchPapers(ctx context.Context, q domain.PaperQuery) (domain.PaperBatch, error) {
	q.Venue = resolveOptionalVenue(q.Venue)
	q.Limit = clampLimit(q.Limit, 20)
	if q.Sort == "" {
		q.Sort = "citationCount:desc"
	}

	logger.Debug("searching papers: query=%q venue=%q years=%q", q.Query, q.Venue, q.YearRange())
	return s.graph.SearchPapers(ctx, q)
}

// GetPaper fetches one paper with detail fields.
func (s *ScholarService) GetPaper(ctx context.Context, id string) (domain.PaperDetails, error) {
	return s.graph.GetPaper(ctx, id)
}

// GetPaperCitations lists papers citing the given paper.
func (s *ScholarService) GetPaperCitations(ctx context.Context, id string, limit int) ([]domain.PaperRecord, error) {
	return s.graph.GetPaperCitations(ctx, id, clampLimit(limit, 20))
}

// SearchAuthors searches authors by name.
func (s *ScholarService) SearchAuthors(ctx context.Context, name string, limit int) (domain.AuthorBatch, error) {
	return s.graph.SearchAuthors(ctx, name, clampLimit(limit, 10))
}

// GetAuthor fetches one author profile with their papers.
func (s *ScholarService) GetAuthor(ctx context.Context, id string) (domain.AuthorProfile, error) {
	return s.graph.GetAuthor(ctx, id)
}

// AuthorPaperSort selects the ordering of GetAuthorPapers results.
type AuthorPaperSort string

const (
	SortByCitations   AuthorPaperSort = "citations"
	SortByInfluential AuthorPaperSort = "influential"
	SortByYear        AuthorPaperSort = "year"
)

// GetAuthorPapers lists an author's papers, optionally filtered to
// those published on or after yearFrom, sorted client-side. The
// upstream does not sort this endpoint, so ordering happens here.
func (s *ScholarService) GetAuthorPapers(
	ctx context.Context, id string, limit, yearFrom int, sortBy AuthorPaperSort,
) ([]domain.PaperRecord, error) {
	limit = clampLimit(limit, 20)

	papers, err := s.graph.GetAuthorPapers(ctx, id, limit)
	if err != nil {
		return nil, err
	}

	if yearFrom > 0 {
		filtered := papers[:0]
		for _, p := range papers {
			if p.Year >= yearFrom {
				filtered = append(filtered, p)
			}
		}
		papers = filtered
	}

	switch sortBy {
	case SortByInfluential:
		sort.SliceStable(papers, func(i, j int) bool {
			return papers[i].InfluentialCitations > papers[j].InfluentialCitations
		})
	case SortByYear:
		sort.SliceStable(papers, func(i, j int) bool {
			return papers[i].Year > papers[j].Year
		})
	default: // citations
		sort.SliceStable(papers, func(i, j int) bool {
			return papers[i].CitationCount > papers[j].CitationCount
		})
	}

	if len(papers) > limit {
		papers = papers[:limit]
	}
	return papers, nil
}

// ParseAuthorIDs splits a comma- or pipe-separated id list, drops empty
// entries, and truncates at the batch cap.
func ParseAuthorIDs(raw string) []string {
	raw = strings.ReplaceAll(raw, "|", ",")
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ids = append(ids, p)
		if len(ids) == MaxBatchSize {
			break
		}
	}
	return ids
}

// BatchAuthorLookup resolves a raw id list via one bulk call. The
// returned profiles are ordered like the input ids; unresolved entries
// are nil so the caller can report them positionally.
func (s *ScholarService) BatchAuthorLookup(ctx context.Context, rawIDs string) ([]*domain.AuthorProfile, error) {
	ids := ParseAuthorIDs(rawIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no valid author IDs provided", domain.ErrInvalidInput)
	}

	profiles, err := s.graph.BatchAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	ordered := make([]*domain.AuthorProfile, len(ids))
	for i, id := range ids {
		if p, ok := profiles[id]; ok {
			cp := p
			ordered[i] = &cp
		}
	}
	return ordered, nil
}

// resolveOptionalVenue resolves a venue shorthand, leaving an empty
// filter untouched.
func resolveOptionalVenue(venue string) string {
	if venue == "" {
		return ""
	}
	return domain.ResolveVenue(venue)
}
