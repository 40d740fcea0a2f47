package mcp

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/hiring-mcp/internal/config"
	"github.com/honeycarbs/hiring-mcp/internal/http/router"
	"github.com/honeycarbs/hiring-mcp/internal/http/server"
	"github.com/honeycarbs/hiring-mcp/internal/mcp/tools"
	"github.com/honeycarbs/hiring-mcp/pkg/logging"
)

const (
	serverName    = "hiring-mcp"
	serverVersion = "0.1.0"
	streamPath    = "/mcp/stream"
)

// NewMCPServer builds the SDK server with every hiring tool and resource registered
func NewMCPServer(res *Resources, logger *logging.Logger) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}
	s := sdkmcp.NewServer(impl, nil)

	opts := []tools.Option{
		tools.WithFindCandidate(res.Backend),
		tools.WithFindCandidateBySkills(res.Backend),
		tools.WithTailorMessage(res.Backend),
		tools.WithSendEmail(res.Backend),
		tools.WithProfileResources(res.Profiles),
	}
	if res.Exporter != nil {
		opts = append(opts, tools.WithExportShortlist(res.Exporter))
	}
	tools.Register(s, logger, opts...)

	return s
}

// Handler serves the streamable MCP transport next to a health check
func Handler(s *sdkmcp.Server, logger *logging.Logger) http.Handler {
	stream := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return s
	}, nil)

	engine := router.NewEngine(serverName, logger)
	engine.Any(streamPath, gin.WrapH(stream))
	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

// NewServer returns the MCP HTTP server bound to MCP_HOST:PORT
func NewServer(cfg config.Config, res *Resources, logger *logging.Logger) *server.Server {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	return server.New("MCP", addr, Handler(NewMCPServer(res, logger), logger), logger)
}
