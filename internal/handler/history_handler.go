package handler

import (
	"claty/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HistoryStore interface {
	GetSearches(limit, offset int) ([]model.SearchRecord, error)
	GetSearchTotal() (int, error)
}

type HistoryHandler struct {
	repository HistoryStore
}

func NewHistoryHandler(repository HistoryStore) *HistoryHandler {
	return &HistoryHandler{repository: repository}
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	log := requestLogger(c)

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	records, err := h.repository.GetSearches(limit, offset)
	if err != nil {
		log.Error("error fetching search history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetSearchTotal()
	if err != nil {
		log.Error("error fetching search history total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	searches := make([]HistoryItemResponse, 0, len(records))
	for _, r := range records {
		keywords := r.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		searches = append(searches, HistoryItemResponse{
			ID:                 r.ID,
			Query:              r.Query,
			Persona:            r.Persona,
			Summary:            r.Summary,
			Keywords:           keywords,
			BackgroundImageURL: r.BackgroundImageURL,
			CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Searches: searches,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}
