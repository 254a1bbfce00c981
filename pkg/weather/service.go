package weather

import (
	"context"
	"log/slog"
)

type Fetcher interface {
	Fetch(ctx context.Context) (Weather, error)
}

// Service serves the current weather through a cache. Lookup failures yield
// a Weather without temperature and are not cached.
type Service struct {
	fetcher Fetcher
	cache   Cache
}

func NewService(fetcher Fetcher, cache Cache) *Service {
	return &Service{fetcher: fetcher, cache: cache}
}

func (s *Service) Current(ctx context.Context) (Weather, error) {
	w, ok, err := s.cache.Get(ctx)
	if err != nil {
		slog.Warn("weather cache read failed", "error", err)
	}
	if ok {
		return w, nil
	}

	w, err = s.fetcher.Fetch(ctx)
	if err != nil {
		return Weather{City: City}, err
	}

	if err := s.cache.Set(ctx, w); err != nil {
		slog.Warn("weather cache write failed", "error", err)
	}
	return w, nil
}
