package config

import (
	"errors"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("GITHUB_EVENT_PATH", "/tmp/event.json")
	t.Setenv("MATE_LANG", "")
	t.Setenv("GEMINI_MODEL", "")
}

func TestFromEnv(t *testing.T) {
	t.Run("debería cargar la configuración completa con defaults", func(t *testing.T) {
		setFullEnv(t)

		config, err := FromEnv()

		require.NoError(t, err)
		assert.Equal(t, "gh-token", config.GithubToken)
		assert.Equal(t, "gemini-key", config.GeminiAPIKey)
		assert.Equal(t, "/tmp/event.json", config.EventPath)
		assert.Equal(t, "en", config.Language)
		assert.Equal(t, "gemini-2.0-flash", config.Model)
	})

	t.Run("debería respetar el idioma y el modelo del entorno", func(t *testing.T) {
		setFullEnv(t)
		t.Setenv("MATE_LANG", "es")
		t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")

		config, err := FromEnv()

		require.NoError(t, err)
		assert.Equal(t, "es", config.Language)
		assert.Equal(t, "gemini-1.5-pro", config.Model)
	})

	t.Run("debería fallar sin GITHUB_TOKEN", func(t *testing.T) {
		setFullEnv(t)
		t.Setenv("GITHUB_TOKEN", "")

		_, err := FromEnv()

		var configErr *domainErrors.ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "GITHUB_TOKEN", configErr.Field)
	})

	t.Run("debería fallar sin GEMINI_API_KEY", func(t *testing.T) {
		setFullEnv(t)
		t.Setenv("GEMINI_API_KEY", "")

		_, err := FromEnv()

		var configErr *domainErrors.ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "GEMINI_API_KEY", configErr.Field)
	})

	t.Run("debería fallar sin GITHUB_EVENT_PATH", func(t *testing.T) {
		setFullEnv(t)
		t.Setenv("GITHUB_EVENT_PATH", "")

		_, err := FromEnv()

		var configErr *domainErrors.ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "GITHUB_EVENT_PATH", configErr.Field)
	})
}
