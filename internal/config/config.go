// Package config loads the immutable process configuration for
// ScholarScout: an optional TOML file plus environment overrides.
// The configuration is built once at startup and never reloaded.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables overriding the file values. Credentials are
// usually supplied this way (directly or via a .env file).
const (
	EnvScholarAPIKey  = "S2_API_KEY"
	EnvScholarBaseURL = "S2_BASE_URL"
	EnvGithubToken    = "GITHUB_TOKEN"
)

// Config is the resolved process configuration. All fields are
// optional: without a Semantic Scholar key the client paces slower, and
// without a GitHub token the code-host tools report themselves
// unconfigured.
type Config struct {
	// ScholarAPIKey is the Semantic Scholar API key.
	ScholarAPIKey string `toml:"s2_api_key"`

	// ScholarBaseURL overrides the Semantic Scholar API root.
	ScholarBaseURL string `toml:"s2_base_url"`

	// GithubToken is the GitHub API token.
	GithubToken string `toml:"github_token"`
}

// DefaultPath returns the default config file location,
// ~/.scholarscout/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scholarscout", "config.toml"), nil
}

// Load builds the configuration from the TOML file at path, then
// applies environment overrides. An empty path selects the default
// location; a missing file is not an error.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		defaultPath, err := DefaultPath()
		if err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvScholarAPIKey); v != "" {
		cfg.ScholarAPIKey = v
	}
	if v := os.Getenv(EnvScholarBaseURL); v != "" {
		cfg.ScholarBaseURL = v
	}
	if v := os.Getenv(EnvGithubToken); v != "" {
		cfg.GithubToken = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.ScholarBaseURL != "" {
		u, err := url.Parse(c.ScholarBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: invalid s2_base_url %q", c.ScholarBaseURL)
		}
	}
	return nil
}
