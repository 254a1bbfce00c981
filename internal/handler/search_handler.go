package handler

import (
	"claty/internal/insight"
	"claty/internal/model"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Insighter interface {
	Search(ctx context.Context, query, persona string) (model.ParsedResult, error)
	Trends(ctx context.Context) insight.TrendResult
}

type SearchHandler struct {
	service Insighter
}

func NewSearchHandler(service Insighter) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) PostSearch(c *gin.Context) {
	log := requestLogger(c)

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("invalid search body", "error", err)
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "검색어가 없습니다."})
		return
	}

	result, err := h.service.Search(c.Request.Context(), req.Query, req.Persona)
	if err != nil {
		log.Error("error generating insight", "error", err, "persona", req.Persona)
		c.JSON(http.StatusBadGateway, gin.H{"error": "분석 실패: " + err.Error()})
		return
	}

	log.Info("search answered", "persona", req.Persona, "special", string(result.IsSpecial))
	c.JSON(http.StatusOK, result)
}

func (h *SearchHandler) PostNewExamples(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Trends(c.Request.Context()))
}
