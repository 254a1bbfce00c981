package insight

import (
	"claty/internal/model"
	"claty/pkg/weather"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestTrends(t *testing.T) {
	f := newFixture()
	f.gen.text = "```json\n[\n" +
		`{"query": "벚꽃 개화 시기", "display": "벚꽃"},` + "\n" +
		`{"query": "프로야구 개막", "display": "야구"},` + "\n" +
		`{"query": "새 스마트폰 출시", "display": "스마트폰"},` + "\n" +
		`{"query": "미세먼지 예보", "display": "미세먼지"}` +
		"\n]\n```"
	temp := 9
	f.weather.weather = weather.Weather{Temp: &temp, Condition: "맑음", City: weather.City}

	got := f.svc.Trends(context.Background())

	assert.Equal(t, true, got.Diagnostic == nil)
	assert.Equal(t, 3, len(got.Issues))
	assert.Equal(t, model.Trend{Query: "벚꽃 개화 시기", Display: "벚꽃"}, got.Issues[0])

	p := f.gen.prompts[0]
	assert.Equal(t, true, strings.Contains(p, "현재 서울 날씨: 9°C, 맑음"))
	assert.Equal(t, true, strings.Contains(p, "계절: 봄"))
	assert.Equal(t, true, strings.Contains(p, "2025년 3월 기준"))
}

func TestTrends_WeatherFailureOmitsLine(t *testing.T) {
	f := newFixture()
	f.gen.text = `[{"query": "a", "display": "b"}]`
	f.weather.err = errors.New("timeout")

	got := f.svc.Trends(context.Background())

	assert.Equal(t, 1, len(got.Issues))
	assert.Equal(t, false, strings.Contains(f.gen.prompts[0], "날씨"))
}

func TestTrends_Fallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "generation error", err: errors.New("boom")},
		{name: "no array", text: "죄송합니다, 알 수 없습니다."},
		{name: "invalid json", text: `[{"query": "a", "display": }]`},
		{name: "empty array", text: "[]"},
		{name: "missing display", text: `[{"query": "a"}]`},
		{name: "wrong type", text: `[{"query": 1, "display": "b"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.gen.text = tt.text
			f.gen.err = tt.err

			got := f.svc.Trends(context.Background())

			assert.Equal(t, FallbackDiagnostic, *got.Diagnostic)
			assert.Equal(t, []model.Trend{
				{Query: "봄 여행지 추천", Display: "봄 여행"},
				{Query: "최신 AI 기술 뉴스", Display: "AI 기술"},
				{Query: "건강 관리 방법", Display: "건강 정보"},
			}, got.Issues)
		})
	}
}
