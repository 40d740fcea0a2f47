package handler

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/hiring-mcp/internal/domain"
	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
)

// abortWithError answers 400 for invalid input and 500 for everything else
func abortWithError(c *gin.Context, prefix string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidInput) {
		status = http.StatusBadRequest
	}

	detail := err.Error()
	if prefix != "" {
		detail = prefix + ": " + detail
	}
	if hints := domain.Hints(err); len(hints) > 0 {
		detail += " (" + strings.Join(hints, "; ") + ")"
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: detail})
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Detail: err.Error()})
}
