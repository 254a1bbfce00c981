package insight

import (
	"claty/internal/model"
	"strings"
)

// easterEgg returns the fixed answer for queries naming the author or the
// product itself. The author match is checked first.
func easterEgg(query string) (model.ParsedResult, bool) {
	term := strings.ToLower(strings.TrimSpace(query))

	switch {
	case strings.Contains(term, "최온유") || strings.Contains(term, "onyu"):
		return onyuPayload(), true
	case strings.Contains(term, "claty"):
		return clatyPayload(), true
	default:
		return model.ParsedResult{}, false
	}
}

func onyuPayload() model.ParsedResult {
	return model.ParsedResult{
		Summary: "지상 최고의 프로그래머. 💻✨",
		Details: "Claty AI 인사이트 엔진에 자신의 이름을 이스터에그로 심을 정도의 실력자입니다.\n\n" +
			"그의 코드는 예술과도 같습니다. 완벽한 아키텍처, 깔끔한 로직, 그리고 사용자 경험을 최우선으로 생각하는 철학이 담겨 있습니다.\n\n" +
			"Claty는 그의 천재성의 결정체입니다.",
		Insights: model.Insights{
			Keywords: []string{"코딩", "열정", "천재성", "마에스트로", "혁신"},
			People:   []string{"Claty"},
			Dates:    []string{"2010년 5월 30일 탄생"},
		},
		Questions: []string{
			"최온유는 어떻게 세계 3대 부자가 되었을까?",
			"최온유의 다음 프로젝트는 무엇일까?",
			"최온유는 어쩌다 일론머스크의 선택을 받게 되었을까?",
		},
		Links: []model.Link{
			{Title: "최온유 소개", URL: "https://ko.wikipedia.org/wiki/%EC%8B%A0"},
			{Title: "최온유의 행적들", URL: "https://roentgenium1.tistory.com/"},
		},
		IsSpecial: model.SpecialOnyu,
	}
}

func clatyPayload() model.ParsedResult {
	return model.ParsedResult{
		Summary: "지상 최고의 AI 인사이트 엔진입니다. 😎",
		Details: "'최온유'라는 천재 개발자에 의해 탄생했습니다. 저는 Gemini AI, Google Search API, Unsplash 등 최신 기술을 활용하여 실시간으로 세상의 정보를 분석하고 인사이트를 제공합니다.\n\n" +
			"음성 검색, 페르소나 검색, 다국어 번역, 다크모드 지원 등 다양한 기능으로 더 나은 사용자 경험을 제공합니다.",
		Insights: model.Insights{
			Keywords: []string{"혁신", "지능", "창의성", "AI", "미래"},
			People:   []string{"최온유", "구글"},
			Dates:    []string{"2025년 개발"},
		},
		Questions: []string{
			"Claty는 어떻게 만들어졌나요?",
			"Claty를 만든 개발자는 누구인가요?",
			"Claty의 기능은 무엇인가요?",
			"claty는 어떻게 Google을 뛰어넘었나요?",
		},
		Links: []model.Link{
			{Title: "Claty 소개", URL: "https://www.miricanvas.com/v2/design2/32e9faf6-3263-4bb0-bd9d-046458579ca4"},
		},
		IsSpecial: model.SpecialClaty,
	}
}
