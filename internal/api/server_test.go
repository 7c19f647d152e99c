package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/internal/tools"
	"github.com/mcpbridge/mcpbridge/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(&ServerOptions{
		Port:            "0",
		ServerName:      "mcpbridge-test",
		ProtocolVersion: "2025-03-26",
		RegisterTools:   tools.RegisterDefault,
	})
	require.NoError(t, err)
	return s
}

func postMCP(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, MCPPath, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestNewServerRequiresToolSetInstaller(t *testing.T) {
	_, err := NewServer(&ServerOptions{Port: "0"})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetadataEndpoint(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/metadata", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var m types.ServerMetadata
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "mcpbridge-test", m.Name)
	assert.NotEmpty(t, m.Version)
}

func TestMetricsEndpointAbsentWhenTelemetryDisabled(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMCPEndpointPing(t *testing.T) {
	s := newTestServer(t)
	w := postMCP(t, s, `{"jsonrpc":"2.0","id":1,"method":"ping"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":{}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestMCPEndpointToolCall(t *testing.T) {
	s := newTestServer(t)
	w := postMCP(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"echo","arguments":{"message":"hi"}}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result *types.CallToolResult `json:"result"`
		Error  *types.ErrorObject    `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.False(t, resp.Result.IsError)
	require.NotEmpty(t, resp.Result.Content)
	assert.Equal(t, "hi", resp.Result.Content[0].Text)
}

func TestMCPEndpointProtocolErrorsAreHTTP200(t *testing.T) {
	s := newTestServer(t)
	w := postMCP(t, s, `not-json`)

	// the transport succeeds; the failure lives in the JSON-RPC error object
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID    any                `json:"id"`
		Error *types.ErrorObject `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.CodeParseError, resp.Error.Code)
	assert.Nil(t, resp.ID)
}

func TestMCPEndpointRegistryIsFreshPerRequest(t *testing.T) {
	// the installer overwrites a default tool; the overwrite must apply to
	// every request, proving the registry is rebuilt rather than cached
	calls := 0
	s, err := NewServer(&ServerOptions{
		Port:            "0",
		ServerName:      "mcpbridge-test",
		ProtocolVersion: "2025-03-26",
		RegisterTools: func(reg *mediator.Registry) {
			calls++
			tools.RegisterDefault(reg)
		},
	})
	require.NoError(t, err)

	postMCP(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	postMCP(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	assert.Equal(t, 2, calls)
}

func TestMCPEndpointListToolsIsIdempotent(t *testing.T) {
	s := newTestServer(t)
	first := postMCP(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	second := postMCP(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
