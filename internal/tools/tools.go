// Package tools provides the built-in tool set served by mcpbridge.
//
// The tools here double as the reference for embedders: each one shows how
// to describe inputs with the schema builder and how to signal the three
// tool-level failure kinds from a handler.
package tools

import "github.com/mcpbridge/mcpbridge/internal/mediator"

// RegisterDefault installs the built-in tool set into a registry.
// Embedders may call this and then re-register individual names to
// overwrite them; the registry keeps the last definition.
func RegisterDefault(reg *mediator.Registry) {
	reg.Register(echoTool())
	reg.Register(systemTimeTool())
	reg.Register(generateUUIDTool())
	reg.Register(httpHeadTool())
	reg.Register(renderTableTool())
}

// stringArg extracts an optional string argument, falling back to def when
// absent. A present value of the wrong type is an argument error.
func stringArg(args map[string]any, name, def string) (string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return def, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", mediator.NewArgumentError("'%s' must be a string", name)
	}
	return s, nil
}

// requiredStringArg extracts a mandatory, non-empty string argument.
func requiredStringArg(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", mediator.NewArgumentError("missing required argument '%s'", name)
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", mediator.NewArgumentError("'%s' must be a non-empty string", name)
	}
	return s, nil
}

// intArg extracts an optional integer argument. JSON numbers decode as
// float64, so both forms are accepted.
func intArg(args map[string]any, name string, def int) (int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, mediator.NewArgumentError("'%s' must be an integer", name)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, mediator.NewArgumentError("'%s' must be an integer", name)
	}
}
