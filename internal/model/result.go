package model

import (
	"encoding/json"
	"time"
)

const (
	SpecialNone  Special = ""
	SpecialOnyu  Special = "onyu"
	SpecialClaty Special = "claty"
)

// Special tags an easter-egg result. It encodes as JSON false when unset.
type Special string

func (s Special) MarshalJSON() ([]byte, error) {
	if s == SpecialNone {
		return []byte("false"), nil
	}
	return json.Marshal(string(s))
}

func (s *Special) UnmarshalJSON(data []byte) error {
	if string(data) == "false" || string(data) == "null" {
		*s = SpecialNone
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Special(v)
	return nil
}

type Insights struct {
	Keywords []string `json:"keywords"`
	People   []string `json:"people"`
	Dates    []string `json:"dates"`
}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ParsedResult struct {
	Summary            string   `json:"summary"`
	Details            string   `json:"details"`
	Insights           Insights `json:"insights"`
	Questions          []string `json:"questions"`
	Links              []Link   `json:"links"`
	ImagePrompt        string   `json:"imagePrompt"`
	IsSpecial          Special  `json:"isSpecial"`
	BackgroundImageURL *string  `json:"backgroundImageUrl"`
}

func NewInsights() Insights {
	return Insights{
		Keywords: []string{},
		People:   []string{},
		Dates:    []string{},
	}
}

type Trend struct {
	Query   string `json:"query"`
	Display string `json:"display"`
}

type SearchRecord struct {
	ID                 int64
	Query              string
	Persona            string
	Summary            string
	Keywords           []string
	BackgroundImageURL string
	CreatedAt          time.Time
}
