package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/match"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
)

type CandidateFinder interface {
	FindCandidate(ctx context.Context, query domain.MatchQuery) (match.FindResult, error)
}

type CandidateHandler struct {
	finder CandidateFinder
}

func NewCandidateHandler(finder CandidateFinder) *CandidateHandler {
	return &CandidateHandler{finder: finder}
}

func (h *CandidateHandler) Find(c *gin.Context) {
	var req dto.FindCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	query := req.Query()
	if !query.IsFreeText() && !query.IsStructured() {
		badRequest(c, domain.Invalidf("search_query is required"))
		return
	}

	res, err := h.finder.FindCandidate(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFindCandidateResponse(res))
}
