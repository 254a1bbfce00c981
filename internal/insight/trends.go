package insight

import (
	"claty/internal/metrics"
	"claty/internal/model"
	"claty/internal/prompt"
	"claty/pkg/llm"
	"claty/pkg/weather"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

const FallbackDiagnostic = "Fallback Data"

var trendSchema = gojsonschema.NewStringLoader(`{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["query", "display"],
		"properties": {
			"query": {"type": "string", "minLength": 1},
			"display": {"type": "string", "minLength": 1}
		}
	}
}`)

type TrendResult struct {
	Issues     []model.Trend `json:"issues"`
	Diagnostic *string       `json:"diagnostic"`
}

// Trends asks the model for what people in Korea are searching right now.
// Any failure yields the seasonal fallback list.
func (s *Service) Trends(ctx context.Context) TrendResult {
	date := prompt.NewDateContext(s.now())
	w := s.currentWeather(ctx)

	text, err := s.generate(ctx, prompt.Trends(date, w.Info()))
	if err != nil {
		slog.Error("trend generation failed", "error", err)
		return fallbackTrends(date.Season)
	}

	trends, err := parseTrends(text)
	if err != nil {
		slog.Error("trend response rejected", "error", err)
		return fallbackTrends(date.Season)
	}

	return TrendResult{Issues: trends}
}

func (s *Service) currentWeather(ctx context.Context) weather.Weather {
	ctx, cancel := withTimeout(ctx, s.timeouts.Weather)
	defer cancel()

	start := time.Now()
	w, err := s.weather.Current(ctx)
	metrics.ObserveCall("weather", outcome(err), start)

	if err != nil {
		slog.Warn("weather lookup failed", "error", err)
		return weather.Weather{City: weather.City}
	}
	return w
}

func parseTrends(text string) ([]model.Trend, error) {
	cleaned, ok := llm.CleanJSONArray(text)
	if !ok {
		return nil, errors.New("no JSON array in trend response")
	}

	result, err := gojsonschema.Validate(trendSchema, gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("trend JSON: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("trend JSON does not match schema: %s", strings.Join(msgs, "; "))
	}

	var trends []model.Trend
	if err := json.Unmarshal([]byte(cleaned), &trends); err != nil {
		return nil, fmt.Errorf("trend decode: %w", err)
	}

	if len(trends) > prompt.TrendCount {
		trends = trends[:prompt.TrendCount]
	}
	return trends, nil
}

func fallbackTrends(season string) TrendResult {
	metrics.TrendFallbacks.Inc()

	diagnostic := FallbackDiagnostic
	return TrendResult{
		Issues: []model.Trend{
			{Query: season + " 여행지 추천", Display: season + " 여행"},
			{Query: "최신 AI 기술 뉴스", Display: "AI 기술"},
			{Query: "건강 관리 방법", Display: "건강 정보"},
		},
		Diagnostic: &diagnostic,
	}
}
