package mediator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mcpbridge/mcpbridge/internal/telemetry"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

// invokeTool calls a resolved tool's handler inside the error boundary.
// Three outcomes are distinguished:
//  1. normal return            -> success result via FormatResult
//  2. argument validation fail -> IsError result "Invalid arguments: <msg>"
//  3. any other failure        -> IsError result "Tool error: <msg>" for a
//     declared domain error, "Tool execution failed: <msg>" otherwise
//
// No failure, panics included, ever escapes as a protocol error. Tool
// failures travel in the result body where the caller can read them.
func (d *Dispatcher) invokeTool(ctx context.Context, tool *Tool, args map[string]any) (res *types.CallToolResult) {
	started := time.Now()
	outcome := telemetry.ToolCallOutcomeError
	defer func() {
		d.metrics.RecordToolCall(ctx, tool.Name, outcome, time.Since(started))
	}()

	defer func() {
		if r := recover(); r != nil {
			d.emit("tool_panic", map[string]any{
				"tool":  tool.Name,
				"panic": fmt.Sprintf("%v", r),
			})
			res = errorResult(fmt.Sprintf("Tool execution failed: %v", r))
		}
	}()

	out, err := tool.Handler(ctx, args)
	if err != nil {
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			return errorResult("Invalid arguments: " + argErr.Message)
		}

		var domErr *DomainError
		if errors.As(err, &domErr) {
			d.emit("tool_error", map[string]any{
				"tool":  tool.Name,
				"error": domErr.Message,
			})
			return errorResult("Tool error: " + domErr.Message)
		}

		d.emit("tool_failure", map[string]any{
			"tool":  tool.Name,
			"error": err.Error(),
		})
		return errorResult("Tool execution failed: " + err.Error())
	}

	outcome = telemetry.ToolCallOutcomeSuccess
	return FormatResult(out)
}

// errorResult wraps a failure explanation as a tool-level error result.
func errorResult(text string) *types.CallToolResult {
	return &types.CallToolResult{
		Content: []types.Content{types.TextContent(text)},
		IsError: true,
	}
}

// emit reports an event through the logging callback. Logging is strictly
// fire-and-forget: a nil or panicking callback must never affect the
// response, so the call is wrapped in its own recover.
func (d *Dispatcher) emit(event string, data map[string]any) {
	if d.log == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	d.log(event, data)
}
