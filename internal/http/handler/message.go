package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/domain/outreach"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
)

type MessageTailor interface {
	Tailor(ctx context.Context, req domain.ComposeRequest) (outreach.Draft, error)
}

type MessageHandler struct {
	tailor MessageTailor
}

func NewMessageHandler(tailor MessageTailor) *MessageHandler {
	return &MessageHandler{tailor: tailor}
}

func (h *MessageHandler) Tailor(c *gin.Context) {
	var req dto.TailorMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	draft, err := h.tailor.Tailor(c.Request.Context(), req.ComposeRequest())
	if err != nil {
		abortWithError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.TailorMessageResponse{
		Status:  "success",
		Subject: draft.Subject,
		Message: draft.Body,
	})
}
