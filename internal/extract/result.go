package extract

import "claty/internal/model"

const SummaryFallback = "요약을 생성할 수 없습니다."

// Parse carves a generated reply into a ParsedResult. It never fails; missing
// sections become empty values and a missing summary becomes SummaryFallback.
func Parse(text string) model.ParsedResult {
	summary := Section(text, SummaryMarker)
	if summary == "" {
		summary = SummaryFallback
	}

	return model.ParsedResult{
		Summary:     summary,
		Details:     Section(text, DetailsMarker),
		Insights:    ParseInsights(Section(text, InsightsMarker)),
		Questions:   ParseQuestions(Section(text, QuestionsMarker)),
		Links:       ParseLinks(Section(text, LinksMarker)),
		ImagePrompt: Section(text, ImagePromptMarker),
	}
}
