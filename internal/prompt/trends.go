package prompt

import "fmt"

const TrendCount = 3

const trendTemplate = `당신은 대한민국의 실시간 뉴스와 트렌드를 정확히 파악하는 AI 트렌드 분석가입니다.

현재 시점: %[1]s
계절: %[2]s
%[3]s

절대 원칙:
- 반드시 %[4]d년 %[5]d월 기준의 실시간 최신 정보만 사용하세요
- 과거 정보나 일반적인 주제는 절대 선정하지 마세요
- 현재 진행형이거나 최근 화제가 된 이슈만 선택하세요

임무: 지금 이 순간 대한민국에서 실제로 검색되고 있는 주제 %[6]d가지를 선정하세요.

선정 기준 우선순위:
1. 실시간 속보 - 최근 발생한 긴급 뉴스
2. 화제의 인물 사건 - 지금 사람들이 관심 갖는 이슈
3. 현재 진행 이벤트 - 지금 열리고 있는 행사, 경기
4. 계절 트렌드 - %[2]s %[5]d월 특화 주제
5. 기술 과학 - 최근 발표된 신기술, 연구 결과

필수 조건:
- 검색어는 구체적이고 친근하게
- 너무 딱딱하거나 날짜만 강조하지 말고 자연스럽게
- 일반적 주제는 피하세요
- 다양한 카테고리 분산

출력 형식: 반드시 아래 JSON 형식만 출력하세요. 다른 설명이나 마크다운 없이 순수 JSON만 출력하세요.

[
  {"query": "자연스러운 검색어 1", "display": "짧은 표시명 1"},
  {"query": "자연스러운 검색어 2", "display": "짧은 표시명 2"},
  {"query": "자연스러운 검색어 3", "display": "짧은 표시명 3"}
]`

// Trends renders the trend-suggestion prompt. weatherInfo may be empty.
func Trends(date DateContext, weatherInfo string) string {
	return fmt.Sprintf(trendTemplate, date.DateStr, date.Season, weatherInfo, date.Year, date.Month, TrendCount)
}
