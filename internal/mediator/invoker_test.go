package mediator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mcpbridge/mcpbridge/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callResult runs a tools/call through a dispatcher holding a single tool
// backed by the given handler, and returns the decoded tool-level result.
func callResult(t *testing.T, handler HandlerFunc, log LogFunc) *types.CallToolResult {
	t.Helper()
	reg := NewRegistry()
	reg.Register(&Tool{
		Name:        "subject",
		Description: "tool under test",
		Handler:     handler,
	})
	d := NewDispatcher(&DispatcherConfig{
		Registry: reg,
		Log:      log,
	})

	env := handle(t, d, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"subject","arguments":{}}}`)
	require.Nil(t, env.Error, "handler faults must never surface as protocol errors")

	var result types.CallToolResult
	require.NoError(t, json.Unmarshal(env.Result, &result))
	return &result
}

func TestInvokeToolSuccess(t *testing.T) {
	result := callResult(t, func(_ context.Context, _ map[string]any) (any, error) {
		return "all good", nil
	}, nil)
	assert.False(t, result.IsError)
	require.NotEmpty(t, result.Content)
	assert.Equal(t, "all good", result.Content[0].Text)
}

func TestInvokeToolArgumentError(t *testing.T) {
	result := callResult(t, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, NewArgumentError("'count' must be positive")
	}, nil)
	assert.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	assert.Equal(t, "Invalid arguments: 'count' must be positive", result.Content[0].Text)
}

func TestInvokeToolDomainError(t *testing.T) {
	var events []string
	log := func(event string, _ map[string]any) {
		events = append(events, event)
	}

	result := callResult(t, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, NewDomainError("upstream rejected the call")
	}, log)
	assert.True(t, result.IsError)
	assert.Equal(t, "Tool error: upstream rejected the call", result.Content[0].Text)
	assert.Contains(t, events, "tool_error", "domain failures are reported via the logging callback")
}

func TestInvokeToolWrappedErrorKindsAreUnwrapped(t *testing.T) {
	wrapped := fmt.Errorf("while validating: %w", NewArgumentError("bad input"))
	result := callResult(t, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, wrapped
	}, nil)
	assert.True(t, result.IsError)
	assert.Equal(t, "Invalid arguments: bad input", result.Content[0].Text)
}

func TestInvokeToolUnexpectedError(t *testing.T) {
	var events []string
	log := func(event string, _ map[string]any) {
		events = append(events, event)
	}

	result := callResult(t, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, errors.New("disk on fire")
	}, log)
	assert.True(t, result.IsError)
	assert.Equal(t, "Tool execution failed: disk on fire", result.Content[0].Text)
	assert.Contains(t, events, "tool_failure")
}

func TestInvokeToolContainsPanics(t *testing.T) {
	var events []string
	log := func(event string, _ map[string]any) {
		events = append(events, event)
	}

	result := callResult(t, func(_ context.Context, _ map[string]any) (any, error) {
		panic("handler exploded")
	}, log)
	assert.True(t, result.IsError)
	assert.True(t, strings.HasPrefix(result.Content[0].Text, "Tool execution failed:"))
	assert.Contains(t, result.Content[0].Text, "handler exploded")
	assert.Contains(t, events, "tool_panic")
}

func TestInvokeToolSurvivesPanickingLogCallback(t *testing.T) {
	log := func(string, map[string]any) {
		panic("logging sink went away")
	}

	result := callResult(t, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, NewDomainError("still reported")
	}, log)
	assert.True(t, result.IsError)
	assert.Equal(t, "Tool error: still reported", result.Content[0].Text)
}

func TestInvokeToolNilArgumentsDefaultToEmptyObject(t *testing.T) {
	reg := NewRegistry()
	var seen map[string]any
	reg.Register(&Tool{
		Name:        "inspect",
		Description: "records its arguments",
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			seen = args
			return "ok", nil
		},
	})
	d := NewDispatcher(&DispatcherConfig{Registry: reg})

	env := handle(t, d, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"inspect"}}`)
	require.Nil(t, env.Error)
	assert.NotNil(t, seen, "handler must receive a non-nil arguments object")
	assert.Empty(t, seen)
}
