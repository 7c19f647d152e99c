package types

import "github.com/mcpbridge/mcpbridge/pkg/schema"

// InitializeParams is the client side of the MCP initialize handshake.
type InitializeParams struct {
	ProtocolVersion string      `json:"protocolVersion,omitempty"`
	Capabilities    any         `json:"capabilities,omitempty"`
	ClientInfo      *ClientInfo `json:"clientInfo,omitempty"`
}

// ClientInfo identifies the connecting MCP client.
type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InitializeResult is the server side of the MCP initialize handshake.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ServerInfo         `json:"serverInfo"`
}

// ServerInfo identifies this server to the client.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerCapabilities advertises what this server supports.
// mcpbridge is stateless, so no listChanged notifications are ever offered.
type ServerCapabilities struct {
	Tools     CapabilityFlags `json:"tools"`
	Resources CapabilityFlags `json:"resources"`
	Prompts   CapabilityFlags `json:"prompts"`
	Logging   struct{}        `json:"logging"`
}

// CapabilityFlags carries the optional feature flags of a single capability.
type CapabilityFlags struct {
	ListChanged bool `json:"listChanged,omitempty"`
	Subscribe   bool `json:"subscribe,omitempty"`
}

// Tool is the wire descriptor of a registered tool, as returned by tools/list.
type Tool struct {
	Name         string           `json:"name"`
	Title        string           `json:"title,omitempty"`
	Description  string           `json:"description"`
	InputSchema  *schema.Node     `json:"inputSchema"`
	OutputSchema *schema.Node     `json:"outputSchema,omitempty"`
	Annotations  *ToolAnnotations `json:"annotations,omitempty"`
}

// ToolAnnotations are free-form hint flags about a tool's behavior.
// They are advisory only; the mediator never acts on them.
type ToolAnnotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint,omitempty"`
	DestructiveHint bool   `json:"destructiveHint,omitempty"`
	IdempotentHint  bool   `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool   `json:"openWorldHint,omitempty"`
}

// ListToolsParams are the parameters of a tools/list request.
// The cursor is accepted but ignored: the tool list is always complete
// within a single request, so no continuation cursor is ever emitted.
type ListToolsParams struct {
	Cursor string `json:"cursor,omitempty"`
}

// ListToolsResult is the response payload of tools/list.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// CallToolParams are the parameters of a tools/call request.
type CallToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// CallToolResult is the payload a tools/call responds with.
// Content is never empty on success; IsError=true means the content holds a
// human-readable explanation of a tool-level failure.
type CallToolResult struct {
	Content           []Content `json:"content"`
	IsError           bool      `json:"isError,omitempty"`
	StructuredContent any       `json:"structuredContent,omitempty"`
}

// Content item type tags.
const (
	ContentTypeText     = "text"
	ContentTypeImage    = "image"
	ContentTypeAudio    = "audio"
	ContentTypeResource = "resource"
)

// Content is one item of a tool result. It is a tagged variant: Type selects
// which of the remaining fields are meaningful.
type Content struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	Data     string            `json:"data,omitempty"`
	MimeType string            `json:"mimeType,omitempty"`
	Resource *EmbeddedResource `json:"resource,omitempty"`
}

// EmbeddedResource is the payload of a resource content item.
type EmbeddedResource struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

// TextContent wraps a string as a text content item.
func TextContent(text string) Content {
	return Content{Type: ContentTypeText, Text: text}
}

// ListResourcesResult is the (always empty) response payload of resources/list.
type ListResourcesResult struct {
	Resources []any `json:"resources"`
}

// ListResourceTemplatesResult is the (always empty) response payload of
// resources/templates/list.
type ListResourceTemplatesResult struct {
	ResourceTemplates []any `json:"resourceTemplates"`
}

// ListPromptsResult is the (always empty) response payload of prompts/list.
type ListPromptsResult struct {
	Prompts []any `json:"prompts"`
}

// CompleteResult is the empty completion/complete response shape.
type CompleteResult struct {
	Completion Completion `json:"completion"`
}

// Completion carries completion values; mcpbridge models none.
type Completion struct {
	Values  []string `json:"values"`
	Total   int      `json:"total"`
	HasMore bool     `json:"hasMore"`
}

// ServerMetadata is returned by the /metadata endpoint.
type ServerMetadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
