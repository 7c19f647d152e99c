package mediator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcpbridge/mcpbridge/internal/telemetry"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

// MCP method names recognized by the dispatcher.
const (
	methodInitialize            = "initialize"
	methodInitialized           = "initialized"
	methodPing                  = "ping"
	methodListTools             = "tools/list"
	methodCallTool              = "tools/call"
	methodListResources         = "resources/list"
	methodListResourceTemplates = "resources/templates/list"
	methodReadResource          = "resources/read"
	methodListPrompts           = "prompts/list"
	methodGetPrompt             = "prompts/get"
	methodComplete              = "completion/complete"
	methodSetLogLevel           = "logging/setLevel"

	notificationInitialized      = "notifications/initialized"
	notificationCancelled        = "notifications/cancelled"
	notificationRootsListChanged = "notifications/roots/list_changed"
)

// methodHandler builds the response for one recognized method.
type methodHandler func(ctx context.Context, req *types.Request) *types.Response

// DispatcherConfig holds the collaborators of a Dispatcher.
type DispatcherConfig struct {
	// Registry is this request's tool registry. Required.
	Registry *Registry

	// ServerInfo identifies the server in the initialize result.
	ServerInfo types.ServerInfo

	// ProtocolVersion is advertised when the client does not request one.
	ProtocolVersion string

	// Log receives diagnostic events. Optional.
	Log LogFunc

	// Metrics records per-method and per-tool telemetry. Optional; a no-op
	// implementation is substituted when nil.
	Metrics telemetry.CustomMetrics
}

// Dispatcher routes one parsed request to its behavior and renders the
// response envelope. It is the top of the mediator: every inbound body
// terminates in exactly one response, including JSON-RPC notifications,
// because the host requires a body for every call.
//
// A Dispatcher lives for a single request. It holds no shared state and
// needs no locking.
type Dispatcher struct {
	registry *Registry

	serverInfo      types.ServerInfo
	protocolVersion string

	log     LogFunc
	metrics telemetry.CustomMetrics

	routes map[string]methodHandler
}

// NewDispatcher builds a dispatcher with its routing table validated at
// construction time. Unknown methods fall through to MethodNotFound.
func NewDispatcher(c *DispatcherConfig) *Dispatcher {
	d := &Dispatcher{
		registry:        c.Registry,
		serverInfo:      c.ServerInfo,
		protocolVersion: c.ProtocolVersion,
		log:             c.Log,
		metrics:         c.Metrics,
	}
	if d.metrics == nil {
		d.metrics = telemetry.NewNoopCustomMetrics()
	}

	emptyResult := func(_ context.Context, req *types.Request) *types.Response {
		return types.NewResultResponse(req.ID, struct{}{})
	}
	notFound := func(kind string) methodHandler {
		return func(_ context.Context, req *types.Request) *types.Response {
			return types.NewErrorResponse(req.ID, types.CodeInvalidParams, kind+" not found", nil)
		}
	}

	d.routes = map[string]methodHandler{
		methodInitialize: d.handleInitialize,

		// Acknowledged with an empty success object. The host demands a
		// response body even for notifications.
		methodInitialized:            emptyResult,
		notificationInitialized:      emptyResult,
		notificationCancelled:        emptyResult,
		notificationRootsListChanged: emptyResult,
		methodPing:                   emptyResult,

		methodListTools: d.handleListTools,
		methodCallTool:  d.handleCallTool,

		// No resource or prompt store exists in this server, so the list
		// methods return empty typed collections and the read methods fail.
		methodListResources: func(_ context.Context, req *types.Request) *types.Response {
			return types.NewResultResponse(req.ID, types.ListResourcesResult{Resources: []any{}})
		},
		methodListResourceTemplates: func(_ context.Context, req *types.Request) *types.Response {
			return types.NewResultResponse(req.ID, types.ListResourceTemplatesResult{ResourceTemplates: []any{}})
		},
		methodListPrompts: func(_ context.Context, req *types.Request) *types.Response {
			return types.NewResultResponse(req.ID, types.ListPromptsResult{Prompts: []any{}})
		},
		methodReadResource: notFound("Resource"),
		methodGetPrompt:    notFound("Prompt"),

		methodComplete: func(_ context.Context, req *types.Request) *types.Response {
			return types.NewResultResponse(req.ID, types.CompleteResult{
				Completion: types.Completion{Values: []string{}},
			})
		},
		methodSetLogLevel: emptyResult,
	}
	return d
}

// Handle processes one raw request body and returns the serialized response.
func (d *Dispatcher) Handle(ctx context.Context, body []byte) []byte {
	req, parseErr := ParseRequest(body)
	if parseErr != nil {
		// The id could not be recovered, so it is echoed as null.
		return marshalResponse(&types.Response{
			JSONRPC: types.JSONRPCVersion,
			ID:      nil,
			Error:   parseErr,
		})
	}
	return marshalResponse(d.dispatch(ctx, req))
}

// dispatch routes a parsed request. Any panic while building a recognized
// method's result is caught here, once, and converted to InternalError.
// Tool handler faults never reach this boundary; the invoker absorbs them.
func (d *Dispatcher) dispatch(ctx context.Context, req *types.Request) (resp *types.Response) {
	started := time.Now()
	outcome := telemetry.RPCOutcomeError
	defer func() {
		d.metrics.RecordRPC(ctx, req.Method, outcome, time.Since(started))
	}()

	defer func() {
		if r := recover(); r != nil {
			d.emit("dispatch_panic", map[string]any{
				"method": req.Method,
				"panic":  fmt.Sprintf("%v", r),
			})
			resp = types.NewErrorResponse(req.ID, types.CodeInternalError, "Internal error", fmt.Sprintf("%v", r))
		}
	}()

	handler, ok := d.routes[req.Method]
	if !ok {
		return types.NewErrorResponse(req.ID, types.CodeMethodNotFound, "Method not found", req.Method)
	}

	resp = handler(ctx, req)
	if resp.Error == nil {
		outcome = telemetry.RPCOutcomeSuccess
	}
	return resp
}

// handleInitialize builds the capabilities/server-info handshake result,
// echoing the client's requested protocol version when present.
func (d *Dispatcher) handleInitialize(_ context.Context, req *types.Request) *types.Response {
	protocolVersion := d.protocolVersion
	if len(req.Params) > 0 {
		var params types.InitializeParams
		if err := json.Unmarshal(req.Params, &params); err == nil && params.ProtocolVersion != "" {
			protocolVersion = params.ProtocolVersion
		}
	}

	result := types.InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    types.ServerCapabilities{},
		ServerInfo:      d.serverInfo,
	}
	return types.NewResultResponse(req.ID, result)
}

// handleListTools enumerates the registry in registration order. A cursor
// parameter is accepted but ignored; the list is complete and static within
// a request, so no continuation cursor is ever emitted.
func (d *Dispatcher) handleListTools(_ context.Context, req *types.Request) *types.Response {
	tools := d.registry.List()
	result := types.ListToolsResult{
		Tools: make([]types.Tool, 0, len(tools)),
	}
	for _, t := range tools {
		result.Tools = append(result.Tools, t.Descriptor())
	}
	return types.NewResultResponse(req.ID, result)
}

// handleCallTool resolves the named tool and delegates to the invoker.
// An unknown tool name is the one place where an unresolved tool is a
// protocol error rather than a tool error: no handler exists to report a
// tool-level failure.
func (d *Dispatcher) handleCallTool(ctx context.Context, req *types.Request) *types.Response {
	if len(req.Params) == 0 {
		return types.NewErrorResponse(req.ID, types.CodeInvalidParams, "Missing params for tools/call", nil)
	}

	var params types.CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return types.NewErrorResponse(req.ID, types.CodeInvalidParams, "Invalid params for tools/call", err.Error())
	}
	if params.Name == "" {
		return types.NewErrorResponse(req.ID, types.CodeInvalidParams, "Missing tool name", nil)
	}

	tool, ok := d.registry.Lookup(params.Name)
	if !ok {
		return types.NewErrorResponse(req.ID, types.CodeInvalidParams, "Unknown tool: "+params.Name, nil)
	}

	args := params.Arguments
	if args == nil {
		args = map[string]any{}
	}

	return types.NewResultResponse(req.ID, d.invokeTool(ctx, tool, args))
}

// marshalResponse renders the outer envelope. Serialization of the
// envelope itself failing means a handler produced an unmarshalable result;
// that is reported as InternalError rather than an empty body.
func marshalResponse(resp *types.Response) []byte {
	out, err := json.Marshal(resp)
	if err != nil {
		fallback := types.NewErrorResponse(resp.ID, types.CodeInternalError, "Internal error", "failed to serialize response")
		out, err = json.Marshal(fallback)
		if err != nil {
			// The id itself is unserializable; drop it.
			return []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"Internal error"}}`)
		}
	}
	return out
}
