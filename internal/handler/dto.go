package handler

type SearchRequest struct {
	Query   string `json:"query"`
	Persona string `json:"persona"`
}

type HistoryItemResponse struct {
	ID                 int64    `json:"id"`
	Query              string   `json:"query"`
	Persona            string   `json:"persona"`
	Summary            string   `json:"summary"`
	Keywords           []string `json:"keywords"`
	BackgroundImageURL string   `json:"backgroundImageUrl"`
	CreatedAt          string   `json:"createdAt"`
}

type HistoryResponse struct {
	Searches []HistoryItemResponse `json:"searches"`
	Total    int                   `json:"total"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
}
