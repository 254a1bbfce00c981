package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeFetcher struct {
	weather Weather
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(ctx context.Context) (Weather, error) {
	f.calls++
	return f.weather, f.err
}

func TestService_CachesSuccess(t *testing.T) {
	temp := 20
	fetcher := &fakeFetcher{weather: Weather{Temp: &temp, Condition: "맑음", City: City}}
	svc := NewService(fetcher, NewMemoryCache(time.Hour))

	first, err := svc.Current(context.Background())
	assert.Equal(t, nil, err)
	second, err := svc.Current(context.Background())
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, first.Info(), second.Info())
}

func TestService_DoesNotCacheFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("timeout")}
	svc := NewService(fetcher, NewMemoryCache(time.Hour))

	got, err := svc.Current(context.Background())
	assert.NotEqual(t, nil, err)
	assert.Equal(t, "", got.Info())
	assert.Equal(t, City, got.City)

	svc.Current(context.Background())
	assert.Equal(t, 2, fetcher.calls)
}
