package mediator

import (
	"context"
	"strings"

	"github.com/mcpbridge/mcpbridge/pkg/schema"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

// HandlerFunc performs the actual work of a tool. It receives the raw
// arguments object and the request's cancellation context; handlers doing
// further I/O must observe ctx and abort promptly. A returned *ArgumentError
// or *DomainError selects the matching tool-level outcome; any other error
// (or a panic) is treated as an unexpected fault.
type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// LogFunc receives fire-and-forget diagnostic events from the mediator.
// A failure inside the callback never affects the response.
type LogFunc func(event string, data map[string]any)

// Tool is one registered operation: a wire descriptor plus its handler.
type Tool struct {
	Name         string
	Title        string
	Description  string
	InputSchema  *schema.Node
	OutputSchema *schema.Node
	Annotations  *types.ToolAnnotations
	Handler      HandlerFunc
}

// Descriptor returns the tool's wire form for tools/list.
func (t *Tool) Descriptor() types.Tool {
	return types.Tool{
		Name:         t.Name,
		Title:        t.Title,
		Description:  t.Description,
		InputSchema:  t.InputSchema,
		OutputSchema: t.OutputSchema,
		Annotations:  t.Annotations,
	}
}

// Registry holds the tools available within a single request. The hosting
// model forbids cross-request state, so a fresh Registry is constructed for
// every inbound call and discarded with it. No locking: a Registry is never
// shared between concurrent invocations.
type Registry struct {
	entries map[string]*Tool
	order   []string
}

// NewRegistry returns an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Tool),
	}
}

// Register adds a tool. Names are unique case-insensitively; registering a
// name again overwrites the previous definition in place (last write wins),
// which lets embedders install a default tool set and redefine individual
// tools on top of it.
func (r *Registry) Register(t *Tool) {
	key := strings.ToLower(t.Name)
	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, key)
	}
	r.entries[key] = t
}

// Lookup resolves a tool by name, case-insensitively.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.entries[strings.ToLower(name)]
	return t, ok
}

// List returns all tools in registration order. An overwritten tool keeps
// its original position.
func (r *Registry) List() []*Tool {
	tools := make([]*Tool, 0, len(r.order))
	for _, key := range r.order {
		tools = append(tools, r.entries[key])
	}
	return tools
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.entries)
}
