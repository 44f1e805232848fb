package services

import (
	"context"
	"sort"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/ports/driven"
	"github.com/scoutlab/scholarscout-cli/internal/logger"
)

// RecruitingService implements the recruiting-oriented operations that
// fuse aggregation, enrichment and scoring. All upstream calls within
// one operation are strictly sequential: the enrichment call always
// starts after the search/aggregation call has completed.
type RecruitingService struct {
	graph driven.AcademicGraph
	code  driven.CodeHost
}

// NewRecruitingService creates a new recruiting service.
func NewRecruitingService(graph driven.AcademicGraph, code driven.CodeHost) *RecruitingService {
	return &RecruitingService{graph: graph, code: code}
}

// VenueAuthor pairs a venue rollup with its enrichment profile.
// Profile is nil when the bulk lookup could not resolve the id.
type VenueAuthor struct {
	Rollup  domain.AuthorRollup
	Profile *domain.AuthorProfile
}

// VenueTopAuthorsResult is the outcome of a venue ranking.
type VenueTopAuthorsResult struct {
	Venue     string // canonical venue name
	Topic     string
	YearFrom  int
	MinPapers int
	Qualified int // authors meeting the paper minimum, before limit
	Authors   []VenueAuthor
}

// FindVenueTopAuthors ranks the most prolific authors at one venue:
// search up to 100 papers, fold them into rollups, keep authors with at
// least minPapers papers, rank by (papers, citations) descending, then
// enrich the top entries with one bulk lookup.
func (s *RecruitingService) FindVenueTopAuthors(
	ctx context.Context, venue, topic string, yearFrom, minPapers, limit int,
) (VenueTopAuthorsResult, error) {
	venueName := domain.ResolveVenue(venue)
	if minPapers < 1 {
		minPapers = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := topic
	if query == "" {
		query = "*"
	}

	result := VenueTopAuthorsResult{
		Venue:     venueName,
		Topic:     topic,
		YearFrom:  yearFrom,
		MinPapers: minPapers,
	}

	batch, err := s.graph.SearchPapers(ctx, domain.PaperQuery{
		Query:    query,
		Venue:    venueName,
		YearFrom: yearFrom,
		Limit:    MaxSearchLimit,
		Sort:     "citationCount:desc",
	})
	if err != nil {
		return VenueTopAuthorsResult{}, err
	}
	if len(batch.Papers) == 0 {
		return result, nil
	}

	acc := NewRollupAccumulator()
	acc.FoldAll(batch.Papers)

	qualified := acc.Qualified(minPapers)
	result.Qualified = len(qualified)
	if len(qualified) > limit {
		qualified = qualified[:limit]
	}

	ids := make([]string, len(qualified))
	for i, r := range qualified {
		ids[i] = r.ID
	}

	logger.Debug("venue %s: %d papers folded into %d authors, enriching top %d",
		venueName, len(batch.Papers), acc.Len(), len(ids))

	profiles, err := s.graph.BatchAuthors(ctx, ids)
	if err != nil {
		return VenueTopAuthorsResult{}, err
	}

	result.Authors = make([]VenueAuthor, len(qualified))
	for i, r := range qualified {
		va := VenueAuthor{Rollup: r}
		if p, ok := profiles[r.ID]; ok {
			cp := p
			va.Profile = &cp
		}
		result.Authors[i] = va
	}
	return result, nil
}

// RecentPaper is a compact entry for a rising star's qualifying paper.
type RecentPaper struct {
	Title     string
	Year      int
	Citations int
}

// RisingStar is one ranked entry in a rising-stars result.
type RisingStar struct {
	Profile         domain.AuthorProfile
	RecentPapers    []RecentPaper
	RecentCitations int
	Score           float64
}

// TopPaper returns the star's most-cited qualifying paper.
func (r RisingStar) TopPaper() (RecentPaper, bool) {
	if len(r.RecentPapers) == 0 {
		return RecentPaper{}, false
	}
	top := r.RecentPapers[0]
	for _, p := range r.RecentPapers[1:] {
		if p.Citations > top.Citations {
			top = p
		}
	}
	return top, true
}

// RisingStarsResult is the outcome of a rising-stars ranking.
type RisingStarsResult struct {
	Topic        string
	YearFrom     int
	MinCitations int
	MaxHIndex    int
	Stars        []RisingStar
}

// FindRisingStars finds authors with high recent impact relative to
// their career stage: collect highly-cited recent papers on a topic,
// enrich every contributing author, drop those whose h-index exceeds
// the ceiling, and rank by recent citations / (h-index + 1).
func (s *RecruitingService) FindRisingStars(
	ctx context.Context, topic string, yearFrom, minCitations, maxHIndex, limit int,
) (RisingStarsResult, error) {
	if limit < 1 {
		limit = 15
	}

	result := RisingStarsResult{
		Topic:        topic,
		YearFrom:     yearFrom,
		MinCitations: minCitations,
		MaxHIndex:    maxHIndex,
	}

	batch, err := s.graph.SearchPapers(ctx, domain.PaperQuery{
		Query:         topic,
		YearFrom:      yearFrom,
		MinCitations:  minCitations,
		FieldsOfStudy: "Computer Science",
		Limit:         MaxSearchLimit,
		Sort:          "citationCount:desc",
	})
	if err != nil {
		return RisingStarsResult{}, err
	}
	if len(batch.Papers) == 0 {
		return result, nil
	}

	// Collect each author's qualifying papers in first-occurrence order.
	recentByAuthor := make(map[string][]RecentPaper)
	var order []string
	for _, p := range batch.Papers {
		for _, ref := range p.Authors {
			if ref.ID == "" {
				continue
			}
			if _, seen := recentByAuthor[ref.ID]; !seen {
				order = append(order, ref.ID)
			}
			recentByAuthor[ref.ID] = append(recentByAuthor[ref.ID], RecentPaper{
				Title:     p.Title,
				Year:      p.Year,
				Citations: p.CitationCount,
			})
		}
	}
	if len(order) > MaxBatchSize {
		order = order[:MaxBatchSize]
	}

	profiles, err := s.graph.BatchAuthors(ctx, order)
	if err != nil {
		return RisingStarsResult{}, err
	}

	stars := make([]RisingStar, 0, len(order))
	for _, id := range order {
		profile, ok := profiles[id]
		if !ok {
			continue
		}
		// Established researchers are out of scope for this ranking.
		if profile.HIndexOrZero() > maxHIndex {
			continue
		}

		recent := recentByAuthor[id]
		recentCitations := 0
		for _, p := range recent {
			recentCitations += p.Citations
		}

		stars = append(stars, RisingStar{
			Profile:         profile,
			RecentPapers:    recent,
			RecentCitations: recentCitations,
			Score:           RisingStarScore(recentCitations, profile.HIndexOrZero()),
		})
	}

	sort.SliceStable(stars, func(i, j int) bool {
		return stars[i].Score > stars[j].Score
	})
	if len(stars) > limit {
		stars = stars[:limit]
	}
	result.Stars = stars
	return result, nil
}
