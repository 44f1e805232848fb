package codehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{Token: "test-token", BaseURL: srv.URL})
}

func TestClient_Configured(t *testing.T) {
	assert.True(t, NewClient(Config{Token: "t"}).Configured())
	assert.False(t, NewClient(Config{}).Configured())
}

func TestClient_UnconfiguredRefusesCalls(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL})
	ctx := context.Background()

	_, err := client.GetUser(ctx, "octocat")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = client.ListRepos(ctx, "octocat")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = client.ListEvents(ctx, "octocat")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = client.SearchUsers(ctx, "octocat")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestClient_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("maps profile fields", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{
				"login": "octocat",
				"name": "The Octocat",
				"bio": "Builds things",
				"company": "@github",
				"location": "San Francisco",
				"followers": 4200,
				"following": 9,
				"public_repos": 8,
				"html_url": "https://github.com/octocat"
			}`)) //nolint:errcheck
		})

		client := newTestClient(t, mux)
		profile, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)

		assert.Equal(t, "octocat", profile.Login)
		assert.Equal(t, "The Octocat", profile.Name)
		assert.Equal(t, "Builds things", profile.Bio)
		assert.Equal(t, 4200, profile.Followers)
		assert.Equal(t, 8, profile.PublicRepos)
		assert.Equal(t, "https://github.com/octocat", profile.ProfileURL)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
		}))

		_, err := client.GetUser(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.True(t, IsNotFound(err))
	})
}

func TestClient_ListRepos(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[
			{"name": "spoon-knife", "stargazers_count": 11000, "forks_count": 140000, "language": "HTML", "description": "Fork me"},
			{"name": "hello-world", "stargazers_count": 2, "forks_count": 0}
		]`)) //nolint:errcheck
	})

	client := newTestClient(t, mux)
	repos, err := client.ListRepos(ctx, "octocat")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "spoon-knife", repos[0].Name)
	assert.Equal(t, 11000, repos[0].Stars)
	assert.Equal(t, "HTML", repos[0].Language)
	assert.Equal(t, "", repos[1].Language)
}

func TestClient_ListEvents(t *testing.T) {
	ctx := context.Background()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/events/public", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"type": "PushEvent"},
			{"type": "WatchEvent"},
			{"type": "PushEvent"}
		]`)) //nolint:errcheck
	})

	client := newTestClient(t, mux)
	events, err := client.ListEvents(ctx, "octocat")
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, "PushEvent", events[0].Kind)
	profile := domain.CodeHostProfile{Events: events}
	assert.Equal(t, 2, profile.PushEvents())
}

func TestClient_SearchUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves hits to full profiles", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/search/users", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "ada", r.URL.Query().Get("q"))
			w.Write([]byte(`{"total_count": 2, "items": [{"login": "ada"}, {"login": "adalite"}]}`)) //nolint:errcheck
		})
		mux.HandleFunc("/users/ada", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"login": "ada", "name": "Ada Lovelace", "followers": 99}`)) //nolint:errcheck
		})
		mux.HandleFunc("/users/adalite", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
		})

		client := newTestClient(t, mux)
		profiles, err := client.SearchUsers(ctx, "ada")
		require.NoError(t, err)

		// The failing detail fetch falls back to the search stub.
		require.Len(t, profiles, 2)
		assert.Equal(t, "Ada Lovelace", profiles[0].Name)
		assert.Equal(t, 99, profiles[0].Followers)
		assert.Equal(t, "adalite", profiles[1].Login)
		assert.Equal(t, 0, profiles[1].Followers)
	})

	t.Run("no matches is a valid outcome", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/search/users", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"total_count": 0, "items": []}`)) //nolint:errcheck
		})

		client := newTestClient(t, mux)
		profiles, err := client.SearchUsers(ctx, "nobody-at-all")
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("X-RateLimit-Remaining", "42")
	resp.Header.Set("X-RateLimit-Limit", "5000")
	resp.Header.Set("X-RateLimit-Reset", "1700000000")
	limiter.UpdateFromResponse(resp)

	assert.Equal(t, 42, limiter.Remaining())
	assert.Equal(t, 5000, limiter.Limit())
	assert.Equal(t, int64(1700000000), limiter.ResetTime().Unix())
}
