package codehost

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/ports/driven"
	"github.com/scoutlab/scholarscout-cli/internal/logger"
)

// Ensure Client implements the port.
var _ driven.CodeHost = (*Client)(nil)

const (
	// DefaultTimeout is the per-call HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxSearchResults caps how many profiles a user search resolves.
	maxSearchResults = 10

	// perPage is the page size for repo and event listings. Exactly one
	// page is fetched; recent activity does not need deep pagination.
	perPage = 100
)

// Config holds the client configuration.
type Config struct {
	// Token is the API credential. When empty the client reports itself
	// unconfigured and refuses every call.
	Token string

	// BaseURL overrides the API root (used by tests).
	BaseURL string

	// Timeout overrides the per-call HTTP timeout.
	Timeout time.Duration
}

// Client is the rate-limited GitHub client behind the code-host port.
type Client struct {
	gh          *gh.Client
	configured  bool
	rateLimiter *RateLimiter
}

// NewClient creates a client from the config. An empty token yields a
// client whose every call fails with domain.ErrNotConfigured.
func NewClient(cfg Config) *Client {
	c := &Client{
		configured:  cfg.Token != "",
		rateLimiter: NewRateLimiter(),
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	var ghc *gh.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		tc := oauth2.NewClient(context.Background(), ts)
		tc.Timeout = timeout
		ghc = gh.NewClient(tc)
	} else {
		ghc = gh.NewClient(nil)
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err == nil {
			ghc.BaseURL = base
		}
	}
	c.gh = ghc

	return c
}

// Configured reports whether a credential is available.
func (c *Client) Configured() bool {
	return c.configured
}

// GetUser fetches one user profile without repos or events.
func (c *Client) GetUser(ctx context.Context, login string) (domain.CodeHostProfile, error) {
	if err := c.guard(ctx); err != nil {
		return domain.CodeHostProfile{}, err
	}

	user, resp, err := c.gh.Users.Get(ctx, login)
	if err != nil {
		return domain.CodeHostProfile{}, c.wrapError(err, "get user")
	}
	c.updateRateLimitFromResponse(resp)

	return profileFrom(user), nil
}

// ListRepos lists the user's public repositories, most recently updated
// first.
func (c *Client) ListRepos(ctx context.Context, login string) ([]domain.RepoSummary, error) {
	if err := c.guard(ctx); err != nil {
		return nil, err
	}

	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	repos, resp, err := c.gh.Repositories.ListByUser(ctx, login, opts)
	if err != nil {
		return nil, c.wrapError(err, "list repos")
	}
	c.updateRateLimitFromResponse(resp)

	summaries := make([]domain.RepoSummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, domain.RepoSummary{
			Name:        r.GetName(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Language:    r.GetLanguage(),
			Description: r.GetDescription(),
		})
	}
	return summaries, nil
}

// ListEvents lists the user's recent public events.
func (c *Client) ListEvents(ctx context.Context, login string) ([]domain.Event, error) {
	if err := c.guard(ctx); err != nil {
		return nil, err
	}

	opts := &gh.ListOptions{PerPage: perPage}
	events, resp, err := c.gh.Activity.ListEventsPerformedByUser(ctx, login, true, opts)
	if err != nil {
		return nil, c.wrapError(err, "list events")
	}
	c.updateRateLimitFromResponse(resp)

	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		out = append(out, domain.Event{Kind: e.GetType()})
	}
	return out, nil
}

// SearchUsers searches user profiles by name. Each hit is re-fetched
// for its full profile; when that per-user fetch fails the search stub
// is kept so one flaky profile cannot sink the whole search.
func (c *Client) SearchUsers(ctx context.Context, name string) ([]domain.CodeHostProfile, error) {
	if err := c.guard(ctx); err != nil {
		return nil, err
	}

	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: maxSearchResults}}
	result, resp, err := c.gh.Search.Users(ctx, name, opts)
	if err != nil {
		return nil, c.wrapError(err, "search users")
	}
	c.updateRateLimitFromResponse(resp)

	profiles := make([]domain.CodeHostProfile, 0, len(result.Users))
	for _, stub := range result.Users {
		if len(profiles) >= maxSearchResults {
			break
		}
		login := stub.GetLogin()
		if login == "" {
			continue
		}

		profile, err := c.GetUser(ctx, login)
		if err != nil {
			logger.Warn("codehost: profile fetch for %q failed: %v", login, err)
			profile = profileFrom(stub)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// guard rejects calls on an unconfigured client and waits out the rate
// limiter otherwise.
func (c *Client) guard(ctx context.Context) error {
	if !c.configured {
		return fmt.Errorf("codehost: %w", domain.ErrNotConfigured)
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("codehost: rate limit wait: %w", err)
	}
	return nil
}

func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors onto the domain error model.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		limitErr := &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, limitErr)
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		switch apiErr.StatusCode {
		case 404:
			return fmt.Errorf("%w: %w", domain.ErrNotFound, apiErr)
		case 429:
			return fmt.Errorf("%w: %w", domain.ErrRateLimited, apiErr)
		}
		return apiErr
	}

	return fmt.Errorf("codehost: %s: %w", operation, err)
}

func profileFrom(u *gh.User) domain.CodeHostProfile {
	return domain.CodeHostProfile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		Company:     u.GetCompany(),
		Location:    u.GetLocation(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		PublicRepos: u.GetPublicRepos(),
		ProfileURL:  u.GetHTMLURL(),
	}
}
