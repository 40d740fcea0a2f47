package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/honeycarbs/hiring-mcp/internal/http/dto"
	"github.com/honeycarbs/hiring-mcp/internal/http/handler"
	"github.com/honeycarbs/hiring-mcp/internal/http/middleware"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

// Handlers holds the endpoints one process serves; nil handlers are not mounted
type Handlers struct {
	Candidate *handler.CandidateHandler
	Message   *handler.MessageHandler
	Email     *handler.EmailHandler
}

// NewEngine builds a gin engine with tracing, recovery and request logging
func NewEngine(serviceName string, log *logging.Logger) *gin.Engine {
	router := gin.New()

	// otel span first so recovery and logging run inside it
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))

	return router
}

func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	schemas := map[string]any{}
	if h.Candidate != nil {
		router.POST("/find-candidate", h.Candidate.Find)
		schemas["find_candidate_request"] = &dto.FindCandidateRequest{}
		schemas["find_candidate_response"] = &dto.FindCandidateResponse{}
	}
	if h.Message != nil {
		router.POST("/tailor-message", h.Message.Tailor)
		schemas["tailor_message_request"] = &dto.TailorMessageRequest{}
		schemas["tailor_message_response"] = &dto.TailorMessageResponse{}
	}
	if h.Email != nil {
		router.POST("/send-email", h.Email.Send)
		schemas["send_email_request"] = &dto.SendEmailRequest{}
		schemas["send_email_response"] = &dto.SendEmailResponse{}
	}
	schemas["error"] = &dto.ErrorResponse{}

	router.GET("/schema", handler.NewSchemaHandler(schemas).List)
}
