package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads toml values", func(t *testing.T) {
		path := writeConfig(t, `
s2_api_key = "key-from-file"
github_token = "token-from-file"
`)
		t.Setenv(EnvScholarAPIKey, "")
		t.Setenv(EnvGithubToken, "")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "key-from-file", cfg.ScholarAPIKey)
		assert.Equal(t, "token-from-file", cfg.GithubToken)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, `s2_api_key = "key-from-file"`)
		t.Setenv(EnvScholarAPIKey, "key-from-env")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "key-from-env", cfg.ScholarAPIKey)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		t.Setenv(EnvScholarAPIKey, "")
		t.Setenv(EnvScholarBaseURL, "")
		t.Setenv(EnvGithubToken, "")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("malformed toml fails", func(t *testing.T) {
		path := writeConfig(t, `s2_api_key = [broken`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid base url fails validation", func(t *testing.T) {
		path := writeConfig(t, `s2_base_url = "not a url"`)
		t.Setenv(EnvScholarBaseURL, "")

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{ScholarBaseURL: "https://example.test/graph/v1"}.Validate())
	assert.Error(t, Config{ScholarBaseURL: "::/bad"}.Validate())
}
