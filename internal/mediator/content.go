package mediator

import (
	"encoding/json"
	"fmt"

	"github.com/mcpbridge/mcpbridge/pkg/types"
)

// FormatResult normalizes a handler's return value into a tool call result.
//
// A value that already has the result shape (a typed *types.CallToolResult,
// or a loose object whose "content" field is a non-empty list of tagged
// items) passes through unchanged except that IsError defaults to false.
// Anything else is wrapped as a single text content item: strings verbatim,
// nil as "{}", everything else as indented JSON.
//
// Formatting never produces IsError=true; tool-level errors arise only in
// the invoker.
func FormatResult(v any) *types.CallToolResult {
	switch val := v.(type) {
	case *types.CallToolResult:
		if val != nil {
			return val
		}
	case types.CallToolResult:
		return &val
	case map[string]any:
		if res, ok := coerceResultShape(val); ok {
			return res
		}
	}
	return &types.CallToolResult{
		Content: []types.Content{types.TextContent(renderText(v))},
	}
}

// coerceResultShape detects a pre-formed result in loose map form and
// converts it. The check is structural, not type-based: handler return
// values are loosely structured data, not a closed type hierarchy.
func coerceResultShape(m map[string]any) (*types.CallToolResult, bool) {
	rawContent, ok := m["content"].([]any)
	if !ok || len(rawContent) == 0 {
		return nil, false
	}
	first, ok := rawContent[0].(map[string]any)
	if !ok {
		return nil, false
	}
	if _, ok := first["type"].(string); !ok {
		return nil, false
	}

	// Round-trip through JSON so item fields land in their typed slots.
	serialized, err := json.Marshal(m)
	if err != nil {
		return nil, false
	}
	var res types.CallToolResult
	if err := json.Unmarshal(serialized, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// renderText serializes an arbitrary handler return value as text.
func renderText(v any) string {
	switch val := v.(type) {
	case nil:
		return "{}"
	case string:
		return val
	}
	serialized, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(serialized)
}
