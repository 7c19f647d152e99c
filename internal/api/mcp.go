package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/pkg/types"
	"github.com/mcpbridge/mcpbridge/pkg/version"
	"go.uber.org/zap"
)

// requestIDKey is the gin context key under which the correlation id is stored.
const requestIDKey = "request_id"

// requestIDMiddleware assigns every MCP call a correlation id, echoed in the
// X-Request-Id response header and attached to all log events of the call.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// mcpHandler serves the stateless MCP endpoint. Each call builds a fresh
// tool registry and dispatcher, delegates to the mediator, and writes the
// resulting envelope. Protocol errors are still HTTP 200: the transport
// succeeds, the JSON-RPC error object carries the failure.
func (s *Server) mcpHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString(requestIDKey)

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			// An unreadable body is indistinguishable from an empty one
			// for the caller; let the parser produce InvalidRequest.
			body = nil
		}

		registry := mediator.NewRegistry()
		s.registerTools(registry)

		dispatcher := mediator.NewDispatcher(&mediator.DispatcherConfig{
			Registry: registry,
			ServerInfo: types.ServerInfo{
				Name:    s.serverName,
				Version: version.GetVersion(),
			},
			ProtocolVersion: s.protocolVersion,
			Log:             s.logFunc(requestID),
			Metrics:         s.metrics,
		})

		// The inbound request's context carries the cancellation signal
		// handed to tool handlers.
		out := dispatcher.Handle(c.Request.Context(), body)

		c.Data(http.StatusOK, "application/json", out)
	}
}

// logFunc bridges the mediator's logging callback to zap, stamping every
// event with the call's correlation id.
func (s *Server) logFunc(requestID string) mediator.LogFunc {
	return func(event string, data map[string]any) {
		s.logger.Info(event,
			zap.String("request_id", requestID),
			zap.Any("data", data),
		)
	}
}
