package prompt

import (
	"claty/internal/extract"
	"fmt"
	"strconv"
	"strings"
)

type Request struct {
	Persona Persona
	Query   string
	Context string
	Date    DateContext
}

// Compose renders the answer prompt. The section markers it asks for are the
// ones extract.Parse reads back.
func Compose(req Request) string {
	t := req.Persona.Template()
	fill := strings.NewReplacer(
		"{year}", strconv.Itoa(req.Date.Year),
		"{month}", strconv.Itoa(req.Date.Month),
	)

	var sb strings.Builder

	sb.WriteString(t.Intro + "\n")
	sb.WriteString(fmt.Sprintf("%s: %s\n", t.DateLabel, req.Date.DateStr))
	sb.WriteString(fmt.Sprintf("%s: %s", t.SubjectLabel, req.Query))
	if req.Context != "" {
		sb.WriteString(fmt.Sprintf("\n\n%s:\n%s", t.ContextLabel, req.Context))
		if t.ContextNote != "" {
			sb.WriteString("\n" + t.ContextNote)
		}
	}
	sb.WriteString("\n\n")

	sb.WriteString(t.RulesHeading + ":\n")
	for _, rule := range t.Rules {
		sb.WriteString("- " + fill.Replace(rule) + "\n")
	}

	sb.WriteString("\n답변 형식:\n")
	writeSection(&sb, extract.SummaryMarker, "("+t.SummaryHint+")")
	writeSection(&sb, extract.DetailsMarker, "("+t.DetailsHint+")")
	writeSection(&sb, extract.InsightsMarker, strings.Join([]string{
		"키워드: (" + t.KeywordHint + ")",
		"주요 인물: (" + t.PeopleHint + ")",
		"관련 날짜: (" + t.DateHint + ")",
	}, "\n"))
	writeSection(&sb, extract.QuestionsMarker, fmt.Sprintf("1. (%s)\n2. (%s)\n3. (%s)",
		t.Questions[0], t.Questions[1], t.Questions[2]))
	writeSection(&sb, extract.LinksMarker, "("+t.LinksHint+")")
	writeSection(&sb, extract.ImagePromptMarker, "("+t.ImageHint+")")

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeSection(sb *strings.Builder, m extract.Marker, body string) {
	sb.WriteString(m.Start + "\n")
	sb.WriteString(body + "\n")
	sb.WriteString(m.End + "\n")
}
