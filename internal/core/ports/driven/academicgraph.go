package driven

import (
	"context"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

// AcademicGraph is the driven port for the paper-search upstream.
// Implementations issue strictly sequential, rate-paced calls; a failed
// call is terminal (no retries) and is reported via the domain error
// sentinels or a typed connector error.
type AcademicGraph interface {
	// SearchPapers issues one filtered bulk search. Zero matches is a
	// valid result, not an error.
	SearchPapers(ctx context.Context, q domain.PaperQuery) (domain.PaperBatch, error)

	// GetPaper fetches one paper with its detail fields. The id may be
	// a native id, "DOI:..." or "ARXIV:...".
	GetPaper(ctx context.Context, id string) (domain.PaperDetails, error)

	// GetPaperCitations lists papers citing the given paper.
	GetPaperCitations(ctx context.Context, id string, limit int) ([]domain.PaperRecord, error)

	// SearchAuthors searches authors by name.
	SearchAuthors(ctx context.Context, query string, limit int) (domain.AuthorBatch, error)

	// GetAuthor fetches one author profile including their papers.
	GetAuthor(ctx context.Context, id string) (domain.AuthorProfile, error)

	// GetAuthorPapers lists an author's papers.
	GetAuthorPapers(ctx context.Context, id string, limit int) ([]domain.PaperRecord, error)

	// BatchAuthors performs one bulk lookup for up to 500 ids.
	// Identifiers the upstream cannot resolve are absent from the map.
	// An empty id list returns an empty map without a network call.
	BatchAuthors(ctx context.Context, ids []string) (map[string]domain.AuthorProfile, error)
}
