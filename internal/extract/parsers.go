package extract

import (
	"claty/internal/model"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const minQuestionRunes = 4

var (
	insightSentinels  = []string{"none", "없음", "없어요", "미발견", "불명"}
	questionSentinels = []string{"없음", "None", "none"}
	linkSentinels     = []string{"없음", "none"}

	keywordLabels = []string{"키워드", "keyword"}
	peopleLabels  = []string{"인물", "기관", "people", "person"}
	dateLabels    = []string{"날짜", "사건", "date", "event"}

	enumeratorRe = regexp.MustCompile(`^\d+\.\s*`)
)

// ParseInsights maps "label: a, b, c" lines onto keyword, people and date lists.
// A later line for the same category replaces the earlier one.
func ParseInsights(text string) model.Insights {
	insights := model.NewInsights()
	if text == "" {
		return insights
	}

	for _, line := range strings.Split(text, "\n") {
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		label = strings.ToLower(strings.TrimSpace(label))
		value = strings.TrimSpace(value)

		if value == "" || isInsightSentinel(value) {
			continue
		}

		items := splitItems(value)

		switch {
		case containsAny(label, keywordLabels):
			insights.Keywords = items
		case containsAny(label, peopleLabels):
			insights.People = items
		case containsAny(label, dateLabels):
			insights.Dates = items
		}
	}

	return insights
}

// ParseQuestions strips "1." style numbering and drops sentinel or very short lines.
func ParseQuestions(text string) []string {
	questions := []string{}
	if text == "" {
		return questions
	}

	for _, line := range strings.Split(text, "\n") {
		q := enumeratorRe.ReplaceAllString(strings.TrimSpace(line), "")
		if utf8.RuneCountInString(q) < minQuestionRunes || slices.Contains(questionSentinels, q) {
			continue
		}
		questions = append(questions, q)
	}

	return questions
}

// ParseLinks reads "title::url" lines. Lines that do not split into exactly
// two parts with an http(s) URL are ignored.
func ParseLinks(text string) []model.Link {
	links := []model.Link{}

	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" || slices.Contains(linkSentinels, trimmed) {
		return links
	}

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "::") {
			continue
		}
		parts := strings.Split(line, "::")
		if len(parts) != 2 {
			continue
		}
		url := strings.TrimSpace(parts[1])
		if !strings.HasPrefix(url, "http") {
			continue
		}
		links = append(links, model.Link{
			Title: stripQuotes(strings.TrimSpace(parts[0])),
			URL:   url,
		})
	}

	return links
}

func splitItems(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func isInsightSentinel(value string) bool {
	for _, s := range insightSentinels {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", "“", "", "”", "").Replace(s)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
