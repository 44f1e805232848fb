package scholar

import (
	"errors"
	"fmt"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

// APIError represents a non-2xx upstream response that is neither a
// rate limit nor a not-found. It carries the status and body text so
// the failure can be surfaced verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scholar: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsRateLimited checks if the error indicates upstream rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, domain.ErrRateLimited)
}
