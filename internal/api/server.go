// Package api provides the HTTP surface of the mcpbridge server.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/internal/telemetry"
	"github.com/mcpbridge/mcpbridge/pkg/types"
	"github.com/mcpbridge/mcpbridge/pkg/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// MCPPath is the single JSON-RPC endpoint of the server.
const MCPPath = "/mcp"

// ToolSetInstaller populates a per-request tool registry. It runs once for
// every inbound MCP call: the hosting model guarantees no state survives
// between requests, so the registry is rebuilt each time.
type ToolSetInstaller func(*mediator.Registry)

// ServerOptions holds everything needed to construct a Server.
type ServerOptions struct {
	// Port is the HTTP port to bind the server to.
	Port string

	// ServerName is advertised in the initialize handshake and /metadata.
	ServerName string
	// ProtocolVersion is the default MCP protocol version offered when the
	// client does not request one.
	ProtocolVersion string

	// RegisterTools installs the tool set into each request's registry.
	RegisterTools ToolSetInstaller

	Logger *zap.Logger

	OtelProviders *telemetry.Providers
	Metrics       telemetry.CustomMetrics
}

// Server is the mcpbridge HTTP server: a stateless MCP endpoint plus
// health, metadata and metrics endpoints.
type Server struct {
	port string

	serverName      string
	protocolVersion string

	registerTools ToolSetInstaller

	logger *zap.Logger

	otelProviders *telemetry.Providers
	metrics       telemetry.CustomMetrics

	router *gin.Engine
}

// NewServer initializes a new Gin server for the mcpbridge MCP endpoint.
func NewServer(opts *ServerOptions) (*Server, error) {
	if opts.RegisterTools == nil {
		return nil, fmt.Errorf("a tool set installer is required")
	}

	s := &Server{
		port:            opts.Port,
		serverName:      opts.ServerName,
		protocolVersion: opts.ProtocolVersion,
		registerTools:   opts.RegisterTools,
		logger:          opts.Logger,
		otelProviders:   opts.OtelProviders,
		metrics:         opts.Metrics,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = telemetry.NewNoopCustomMetrics()
	}

	// Set up the router after the server is fully initialized
	s.router = s.setupRouter()

	return s, nil
}

// Start runs the Gin server (blocking call)
func (s *Server) Start() error {
	if err := s.router.Run(":" + s.port); err != nil {
		return fmt.Errorf("failed to run the server: %w", err)
	}
	return nil
}

// setupRouter sets up the Gin router with the MCP endpoint and the
// operational endpoints.
func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// if otel is enabled, instrument gin and expose the prometheus metrics endpoint
	if s.otelProviders != nil && s.otelProviders.IsEnabled() {
		r.Use(otelgin.Middleware(s.otelProviders.ServiceName()))
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET(
		"/health",
		func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		},
	)

	r.GET(
		"/metadata",
		func(c *gin.Context) {
			m := &types.ServerMetadata{
				Name:    s.serverName,
				Version: version.GetVersion(),
			}
			c.JSON(http.StatusOK, m)
		},
	)

	r.POST(MCPPath, requestIDMiddleware(), s.mcpHandler())

	return r
}
