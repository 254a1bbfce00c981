package extract

import (
	"claty/internal/model"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseInsights(t *testing.T) {
	text := "키워드: 사과, 바나나\n주요 인물: 없음\n관련 날짜: 2024년 3월, , 봄"

	got := ParseInsights(text)

	assert.Equal(t, []string{"사과", "바나나"}, got.Keywords)
	assert.Equal(t, []string{}, got.People)
	assert.Equal(t, []string{"2024년 3월", "봄"}, got.Dates)
}

func TestParseInsights_Sentinels(t *testing.T) {
	for _, sentinel := range []string{"없음", "None", "NONE", "없어요", "미발견", "불명", ""} {
		t.Run(sentinel, func(t *testing.T) {
			got := ParseInsights("인물: " + sentinel)
			assert.Equal(t, []string{}, got.People)
		})
	}
}

func TestParseInsights_LastLineWins(t *testing.T) {
	got := ParseInsights("키워드: 사과, 바나나\nKeywords: 포도")

	assert.Equal(t, []string{"포도"}, got.Keywords)
}

func TestParseInsights_SentinelDoesNotClearEarlierLine(t *testing.T) {
	got := ParseInsights("인물: 홍길동\n기관: 없음")

	assert.Equal(t, []string{"홍길동"}, got.People)
}

func TestParseInsights_LabelMatching(t *testing.T) {
	text := strings.Join([]string{
		"Key People: NASA, ESA",
		"Related Date: 1969",
		"no colon here",
		"기분: 좋음",
		"사건 키워드: 달",
	}, "\n")

	got := ParseInsights(text)

	assert.Equal(t, []string{"NASA", "ESA"}, got.People)
	assert.Equal(t, []string{"1969"}, got.Dates)
	// "사건 키워드" matches the keyword category first.
	assert.Equal(t, []string{"달"}, got.Keywords)
}

func TestParseInsights_ValueWithColon(t *testing.T) {
	got := ParseInsights("관련 날짜: 10:30 발사")

	assert.Equal(t, []string{"10:30 발사"}, got.Dates)
}

func TestParseInsights_Empty(t *testing.T) {
	got := ParseInsights("")

	assert.Equal(t, model.NewInsights(), got)
}

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "strips numbering and drops sentinel and short lines",
			input: "1. 왜 그래요?\n2. 없음\n짧음",
			want:  []string{"왜 그래요?"},
		},
		{
			name:  "keeps order and has no cap",
			input: "1. 첫 번째 질문\n2. 두 번째 질문\n3. 세 번째 질문\n4. 네 번째 질문",
			want:  []string{"첫 번째 질문", "두 번째 질문", "세 번째 질문", "네 번째 질문"},
		},
		{
			name:  "numbering without space",
			input: "12.What happens next?",
			want:  []string{"What happens next?"},
		},
		{
			name:  "english sentinel",
			input: "1. None\n2. none",
			want:  []string{},
		},
		{
			name:  "four runes kept",
			input: "왜요왜요",
			want:  []string{"왜요왜요"},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuestions(tt.input))
		})
	}
}

func TestParseLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.Link
	}{
		{
			name:  "sentinel",
			input: "없음",
			want:  []model.Link{},
		},
		{
			name:  "sentinel any case with whitespace",
			input: "  NONE \n",
			want:  []model.Link{},
		},
		{
			name:  "single link",
			input: "제목::http://x.com",
			want:  []model.Link{{Title: "제목", URL: "http://x.com"}},
		},
		{
			name:  "quoted title and spacing",
			input: `"위키백과" :: https://ko.wikipedia.org/wiki/Go`,
			want:  []model.Link{{Title: "위키백과", URL: "https://ko.wikipedia.org/wiki/Go"}},
		},
		{
			name:  "single colon dropped",
			input: "제목: http://x.com",
			want:  []model.Link{},
		},
		{
			name:  "three parts dropped",
			input: "a::b::http://x.com",
			want:  []model.Link{},
		},
		{
			name:  "non http url dropped",
			input: "제목::ftp://x.com\n다른 제목::https://y.com",
			want:  []model.Link{{Title: "다른 제목", URL: "https://y.com"}},
		},
		{
			name:  "persona sentinel without separator",
			input: "은폐됨",
			want:  []model.Link{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLinks(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	text := `SUMMARY_START
사과는 맛있다.
SUMMARY_END
DETAILS_START
사과는 빨갛다.
DETAILS_END
INSIGHTS_START
키워드: 사과, 과일
주요 인물: 없음
관련 날짜: 없음
INSIGHTS_END
QUESTIONS_START
1. 사과는 왜 빨갈까?
QUESTIONS_END
LINKS_START
사과::https://example.com/apple
LINKS_END
IMAGE_PROMPT_START
red apple
IMAGE_PROMPT_END`

	got := Parse(text)

	assert.Equal(t, "사과는 맛있다.", got.Summary)
	assert.Equal(t, "사과는 빨갛다.", got.Details)
	assert.Equal(t, []string{"사과", "과일"}, got.Insights.Keywords)
	assert.Equal(t, []string{}, got.Insights.People)
	assert.Equal(t, []string{"사과는 왜 빨갈까?"}, got.Questions)
	assert.Equal(t, []model.Link{{Title: "사과", URL: "https://example.com/apple"}}, got.Links)
	assert.Equal(t, "red apple", got.ImagePrompt)
	assert.Equal(t, model.SpecialNone, got.IsSpecial)
}

func TestParse_NoMarkers(t *testing.T) {
	got := Parse("the model ignored the format entirely")

	assert.Equal(t, SummaryFallback, got.Summary)
	assert.Equal(t, "", got.Details)
	assert.Equal(t, model.NewInsights(), got.Insights)
	assert.Equal(t, []string{}, got.Questions)
	assert.Equal(t, []model.Link{}, got.Links)
	assert.Equal(t, "", got.ImagePrompt)
}
