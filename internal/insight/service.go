package insight

import (
	"claty/internal/extract"
	"claty/internal/metrics"
	"claty/internal/model"
	"claty/internal/prompt"
	"claty/pkg/image"
	"claty/pkg/llm"
	"claty/pkg/search"
	"claty/pkg/weather"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type Searcher interface {
	Context(ctx context.Context, query string) (string, error)
	Name() string
}

type ImageFinder interface {
	Background(ctx context.Context, term string) (string, error)
	Name() string
}

type WeatherSource interface {
	Current(ctx context.Context) (weather.Weather, error)
}

type HistoryStore interface {
	SaveSearch(record *model.SearchRecord) error
}

// Timeouts bound each external call. A zero value leaves the call bounded
// only by the request context.
type Timeouts struct {
	Search     time.Duration
	Image      time.Duration
	Weather    time.Duration
	Generation time.Duration
}

type Service struct {
	generator llm.Generator
	searcher  Searcher
	images    ImageFinder
	weather   WeatherSource
	history   HistoryStore
	timeouts  Timeouts
	now       func() time.Time
}

func NewService(generator llm.Generator, searcher Searcher, images ImageFinder, weatherSource WeatherSource, timeouts Timeouts) *Service {
	return &Service{
		generator: generator,
		searcher:  searcher,
		images:    images,
		weather:   weatherSource,
		timeouts:  timeouts,
		now:       time.Now,
	}
}

// WithHistory makes the service log every generated answer to store.
func (s *Service) WithHistory(store HistoryStore) *Service {
	s.history = store
	return s
}

// Search answers query in the voice of the persona named by personaTag.
// Only a failed generation call is reported as an error; search and image
// failures leave their part of the result empty.
func (s *Service) Search(ctx context.Context, query, personaTag string) (model.ParsedResult, error) {
	persona := prompt.ParsePersona(personaTag)

	if result, ok := easterEgg(query); ok {
		slog.Info("easter egg matched", "special", string(result.IsSpecial))
		metrics.SearchRequests.WithLabelValues(string(persona), string(result.IsSpecial)).Inc()
		return result, nil
	}

	webContext := s.searchContext(ctx, query)

	text, err := s.generate(ctx, prompt.Compose(prompt.Request{
		Persona: persona,
		Query:   query,
		Context: webContext,
		Date:    prompt.NewDateContext(s.now()),
	}))
	if err != nil {
		return model.ParsedResult{}, err
	}

	result := extract.Parse(text)
	result.IsSpecial = model.SpecialNone
	if term := imageTerm(result); term != "" {
		result.BackgroundImageURL = s.backgroundImage(ctx, term)
	}

	metrics.SearchRequests.WithLabelValues(string(persona), "none").Inc()
	s.record(query, persona, result)

	return result, nil
}

func imageTerm(result model.ParsedResult) string {
	if result.ImagePrompt != "" {
		return result.ImagePrompt
	}
	if len(result.Insights.Keywords) > 0 {
		return result.Insights.Keywords[0]
	}
	return ""
}

func (s *Service) searchContext(ctx context.Context, query string) string {
	ctx, cancel := withTimeout(ctx, s.timeouts.Search)
	defer cancel()

	start := time.Now()
	text, err := s.searcher.Context(ctx, query)
	metrics.ObserveCall(s.searcher.Name(), outcome(err), start)

	if err != nil {
		if !errors.Is(err, search.ErrDisabled) {
			slog.Warn("web search failed, continuing without context", "error", err)
		}
		return ""
	}
	return text
}

func (s *Service) backgroundImage(ctx context.Context, term string) *string {
	ctx, cancel := withTimeout(ctx, s.timeouts.Image)
	defer cancel()

	start := time.Now()
	url, err := s.images.Background(ctx, term)
	metrics.ObserveCall(s.images.Name(), outcome(err), start)

	if err != nil {
		if !errors.Is(err, image.ErrDisabled) {
			slog.Warn("background image lookup failed", "term", term, "error", err)
		}
		return nil
	}
	return &url
}

func (s *Service) generate(ctx context.Context, p string) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeouts.Generation)
	defer cancel()

	start := time.Now()
	text, err := s.generator.Generate(ctx, p)
	metrics.ObserveCall(s.generator.Name(), outcome(err), start)

	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return text, nil
}

func (s *Service) record(query string, persona prompt.Persona, result model.ParsedResult) {
	if s.history == nil {
		return
	}

	record := &model.SearchRecord{
		Query:    query,
		Persona:  string(persona),
		Summary:  result.Summary,
		Keywords: result.Insights.Keywords,
	}
	if result.BackgroundImageURL != nil {
		record.BackgroundImageURL = *result.BackgroundImageURL
	}

	if err := s.history.SaveSearch(record); err != nil {
		slog.Error("error saving search history", "error", err)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, search.ErrDisabled), errors.Is(err, image.ErrDisabled):
		return metrics.OutcomeDisabled
	case errors.Is(err, search.ErrNoResults), errors.Is(err, image.ErrNoResults):
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeError
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
