package extract

import "strings"

type Marker struct {
	Start string
	End   string
}

var (
	SummaryMarker     = Marker{Start: "SUMMARY_START", End: "SUMMARY_END"}
	DetailsMarker     = Marker{Start: "DETAILS_START", End: "DETAILS_END"}
	InsightsMarker    = Marker{Start: "INSIGHTS_START", End: "INSIGHTS_END"}
	QuestionsMarker   = Marker{Start: "QUESTIONS_START", End: "QUESTIONS_END"}
	LinksMarker       = Marker{Start: "LINKS_START", End: "LINKS_END"}
	ImagePromptMarker = Marker{Start: "IMAGE_PROMPT_START", End: "IMAGE_PROMPT_END"}
)

// Section returns the trimmed text between the first start marker and the
// first end marker, or "" when either is missing or out of order.
// Both markers are searched from the beginning of text.
func Section(text string, m Marker) string {
	start := strings.Index(text, m.Start)
	end := strings.Index(text, m.End)
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	from := start + len(m.Start)
	if from > end {
		return ""
	}
	return strings.TrimSpace(text[from:end])
}
