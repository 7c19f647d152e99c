// Package client provides a small HTTP client for the mcpbridge MCP endpoint.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/mcpbridge/mcpbridge/pkg/types"
)

// Client talks JSON-RPC to a running mcpbridge server.
type Client struct {
	baseURL    string
	httpClient *http.Client

	nextID atomic.Int64
}

// NewClient creates a client for the server at baseURL.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// rpcResponse keeps the result raw so callers can decode into their own type.
type rpcResponse struct {
	JSONRPC string             `json:"jsonrpc"`
	ID      any                `json:"id"`
	Result  json.RawMessage    `json:"result,omitempty"`
	Error   *types.ErrorObject `json:"error,omitempty"`
}

// call sends one JSON-RPC request and decodes the result into out (unless
// out is nil). A JSON-RPC error object is returned as a Go error.
func (c *Client) call(method string, params any, out any) error {
	req := types.Request{
		JSONRPC: types.JSONRPCVersion,
		ID:      c.nextID.Add(1),
		Method:  method,
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("failed to marshal params: %w", err)
		}
		req.Params = raw
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	u := c.baseURL + "/mcp"
	httpReq, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request to %s: %w", u, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", u, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned unexpected status %d", httpResp.StatusCode)
	}

	var resp rpcResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Error != nil {
		return fmt.Errorf("server returned JSON-RPC error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	if out != nil {
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return fmt.Errorf("failed to decode result: %w", err)
		}
	}
	return nil
}

// Ping checks that the server is responsive.
func (c *Client) Ping() error {
	return c.call("ping", nil, nil)
}

// Initialize performs the MCP handshake and returns the server's answer.
func (c *Client) Initialize() (*types.InitializeResult, error) {
	var result types.InitializeResult
	if err := c.call("initialize", types.InitializeParams{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTools returns the descriptors of all tools the server exposes.
func (c *Client) ListTools() ([]types.Tool, error) {
	var result types.ListToolsResult
	if err := c.call("tools/list", types.ListToolsParams{}, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes a tool by name. A tool-level failure is returned as a
// result with IsError set, not as a Go error; only protocol and transport
// failures produce an error.
func (c *Client) CallTool(name string, args map[string]any) (*types.CallToolResult, error) {
	params := types.CallToolParams{
		Name:      name,
		Arguments: args,
	}
	var result types.CallToolResult
	if err := c.call("tools/call", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
