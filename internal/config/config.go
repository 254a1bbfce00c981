package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	FrontendURL string

	LLMProvider     string
	LLMModel        string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OllamaURL       string

	SearchAPIKey      string
	SearchEngineID    string
	UnsplashAccessKey string

	RedisURL    string
	DatabaseURL string

	SearchTimeout     time.Duration
	ImageTimeout      time.Duration
	WeatherTimeout    time.Duration
	GenerationTimeout time.Duration
	WeatherCacheTTL   time.Duration
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("SEARCH_TIMEOUT", 8*time.Second)
	v.SetDefault("IMAGE_TIMEOUT", 5*time.Second)
	v.SetDefault("WEATHER_TIMEOUT", 5*time.Second)
	v.SetDefault("GENERATION_TIMEOUT", 10*time.Second)
	v.SetDefault("WEATHER_CACHE_TTL", time.Hour)

	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:        v.GetString("PORT"),
		FrontendURL: v.GetString("FRONTEND_URL"),

		LLMProvider:     strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		LLMModel:        v.GetString("LLM_MODEL"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		OpenAIAPIKey:    v.GetString("OPENAI_API_KEY"),
		AnthropicAPIKey: v.GetString("ANTHROPIC_API_KEY"),
		OllamaURL:       v.GetString("OLLAMA_URL"),

		SearchAPIKey:      v.GetString("SEARCH_API_KEY"),
		SearchEngineID:    v.GetString("SEARCH_ENGINE_ID"),
		UnsplashAccessKey: v.GetString("UNSPLASH_ACCESS_KEY"),

		RedisURL:    v.GetString("REDIS_URL"),
		DatabaseURL: v.GetString("DATABASE_URL"),

		SearchTimeout:     v.GetDuration("SEARCH_TIMEOUT"),
		ImageTimeout:      v.GetDuration("IMAGE_TIMEOUT"),
		WeatherTimeout:    v.GetDuration("WEATHER_TIMEOUT"),
		GenerationTimeout: v.GetDuration("GENERATION_TIMEOUT"),
		WeatherCacheTTL:   v.GetDuration("WEATHER_CACHE_TTL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// GenerationAPIKey returns the key of the selected provider. Ollama needs none.
func (c *Config) GenerationAPIKey() string {
	switch c.LLMProvider {
	case "openai":
		return c.OpenAIAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	case "ollama":
		return ""
	default:
		return c.GeminiAPIKey
	}
}

func (c *Config) validate() error {
	switch c.LLMProvider {
	case "gemini", "openai", "anthropic":
		if c.GenerationAPIKey() == "" {
			return fmt.Errorf("no API key set for provider %q", c.LLMProvider)
		}
	case "ollama":
		if c.OllamaURL == "" {
			return fmt.Errorf("OLLAMA_URL is required for provider ollama")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}

	for name, d := range map[string]time.Duration{
		"SEARCH_TIMEOUT":     c.SearchTimeout,
		"IMAGE_TIMEOUT":      c.ImageTimeout,
		"WEATHER_TIMEOUT":    c.WeatherTimeout,
		"GENERATION_TIMEOUT": c.GenerationTimeout,
		"WEATHER_CACHE_TTL":  c.WeatherCacheTTL,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
