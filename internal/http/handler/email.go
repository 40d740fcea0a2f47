package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
)

type EmailSender interface {
	Send(ctx context.Context, msg domain.OutreachMessage) (domain.DeliveryReceipt, error)
}

type EmailHandler struct {
	sender EmailSender
}

func NewEmailHandler(sender EmailSender) *EmailHandler {
	return &EmailHandler{sender: sender}
}

func (h *EmailHandler) Send(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	receipt, err := h.sender.Send(c.Request.Context(), req.Message())
	if err != nil {
		abortWithError(c, "Failed to send email", err)
		return
	}

	c.JSON(http.StatusOK, dto.SendEmailResponse{
		Status:  receipt.Status,
		Message: "Email sent successfully",
		Result:  receipt.ProviderResult,
	})
}
