package config

import (
	"os"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
)

// Config es la configuración completa de la action. Se construye una sola
// vez desde el entorno y se pasa explícitamente; no hay estado global.
type Config struct {
	GithubToken  string `json:"github_token"`
	GeminiAPIKey string `json:"gemini_api_key"`
	EventPath    string `json:"event_path"`
	Language     string `json:"language"`
	Model        string `json:"model"`
}

const (
	defaultLang  = "en"
	defaultModel = "gemini-2.0-flash"

	envGithubToken  = "GITHUB_TOKEN"
	envGeminiAPIKey = "GEMINI_API_KEY"
	envEventPath    = "GITHUB_EVENT_PATH"
	envLanguage     = "MATE_LANG"
	envModel        = "GEMINI_MODEL"
)

// FromEnv construye la configuración a partir de las variables de entorno
// que provee el runner de la action.
func FromEnv() (*Config, error) {
	config := &Config{
		GithubToken:  os.Getenv(envGithubToken),
		GeminiAPIKey: os.Getenv(envGeminiAPIKey),
		EventPath:    os.Getenv(envEventPath),
		Language:     os.Getenv(envLanguage),
		Model:        os.Getenv(envModel),
	}

	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.Model == "" {
		config.Model = defaultModel
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.GithubToken == "" {
		return domainErrors.NewConfigError(envGithubToken, "la variable de entorno no está definida", nil)
	}
	if config.GeminiAPIKey == "" {
		return domainErrors.NewConfigError(envGeminiAPIKey, "la variable de entorno no está definida", nil)
	}
	if config.EventPath == "" {
		return domainErrors.NewConfigError(envEventPath, "la variable de entorno no está definida", nil)
	}
	return nil
}
