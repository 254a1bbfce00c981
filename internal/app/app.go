package app

import (
	"claty/db"
	"claty/internal/config"
	"claty/internal/handler"
	"claty/internal/insight"
	"claty/internal/repository"
	"claty/pkg/image"
	"claty/pkg/llm"
	"claty/pkg/search"
	"claty/pkg/weather"
	"context"
	"fmt"
	"log/slog"
)

type App struct {
	Service      *insight.Service
	History      *repository.SearchRepository
	HealthChecks map[string]handler.HealthCheck
}

// New builds the insight pipeline from cfg. Redis and Postgres are optional:
// without Redis the weather cache lives in process, without Postgres no
// history is kept.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	generator, err := llm.New(ctx, llm.Options{
		Provider:  cfg.LLMProvider,
		APIKey:    cfg.GenerationAPIKey(),
		Model:     cfg.LLMModel,
		OllamaURL: cfg.OllamaURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init generator: %w", err)
	}
	slog.Info("generator ready", "provider", cfg.LLMProvider, "model", generator.Name())

	a := &App{HealthChecks: map[string]handler.HealthCheck{}}

	var cache weather.Cache = weather.NewMemoryCache(cfg.WeatherCacheTTL)
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
			slog.Warn("redis unavailable, caching weather in memory", "error", err)
		} else {
			cache = weather.NewRedisCache(db.Redis, cfg.WeatherCacheTTL)
			a.HealthChecks["redis"] = func(ctx context.Context) error {
				return db.Redis.Ping(ctx).Err()
			}
		}
	}

	searcher := search.NewClient(cfg.SearchAPIKey, cfg.SearchEngineID, cfg.SearchTimeout)
	if !searcher.Enabled() {
		slog.Info("web search disabled, SEARCH_API_KEY or SEARCH_ENGINE_ID not set")
	}
	images := image.NewClient(cfg.UnsplashAccessKey, cfg.ImageTimeout)
	if !images.Enabled() {
		slog.Info("background images disabled, UNSPLASH_ACCESS_KEY not set")
	}

	a.Service = insight.NewService(
		generator,
		searcher,
		images,
		weather.NewService(weather.NewClient(cfg.WeatherTimeout), cache),
		insight.Timeouts{
			Search:     cfg.SearchTimeout,
			Image:      cfg.ImageTimeout,
			Weather:    cfg.WeatherTimeout,
			Generation: cfg.GenerationTimeout,
		},
	)

	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			a.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.History = repository.NewSearchRepository(db.DB)
		if err := a.History.EnsureSchema(); err != nil {
			a.Close()
			return nil, fmt.Errorf("create search_history: %w", err)
		}
		a.Service.WithHistory(a.History)
		a.HealthChecks["database"] = db.DB.PingContext
	}

	return a, nil
}

func (a *App) Close() {
	db.Close()
	db.CloseRedis()
}
