package driven

import (
	"context"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

// CodeHost is the driven port for the code-host upstream.
// All operations return domain.ErrNotConfigured when no credential is
// set; the connector never attempts an unauthenticated call.
type CodeHost interface {
	// Configured reports whether a credential is available.
	Configured() bool

	// SearchUsers searches user profiles by name and returns basic
	// profiles for the first matches (at most 10).
	SearchUsers(ctx context.Context, name string) ([]domain.CodeHostProfile, error)

	// GetUser fetches one user profile without repos or events.
	GetUser(ctx context.Context, login string) (domain.CodeHostProfile, error)

	// ListRepos lists the user's public repositories, most recently
	// updated first (at most 100).
	ListRepos(ctx context.Context, login string) ([]domain.RepoSummary, error)

	// ListEvents lists the user's recent public events (at most 100).
	ListEvents(ctx context.Context, login string) ([]domain.Event, error)
}
