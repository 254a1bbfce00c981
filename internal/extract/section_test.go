package extract

import "testing"

func TestSection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "returns trimmed body",
			input: "SUMMARY_START  hello world \n SUMMARY_END",
			want:  "hello world",
		},
		{
			name:  "ignores surrounding text",
			input: "preamble\nSUMMARY_START\nbody\nSUMMARY_END\nDETAILS_START x DETAILS_END",
			want:  "body",
		},
		{
			name:  "missing start",
			input: "body SUMMARY_END",
			want:  "",
		},
		{
			name:  "missing end",
			input: "SUMMARY_START body",
			want:  "",
		},
		{
			name:  "end before start",
			input: "SUMMARY_END body SUMMARY_START",
			want:  "",
		},
		{
			name:  "end before start even with a later end",
			input: "SUMMARY_END x SUMMARY_START body SUMMARY_END",
			want:  "",
		},
		{
			name:  "repeated start is kept in the body",
			input: "SUMMARY_START a SUMMARY_START b SUMMARY_END",
			want:  "a SUMMARY_START b",
		},
		{
			name:  "empty body",
			input: "SUMMARY_START SUMMARY_END",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Section(tt.input, SummaryMarker)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSection_OverlappingMarkers(t *testing.T) {
	m := Marker{Start: "AB", End: "B"}

	if got := Section("AB", m); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
