package tools

import (
	"context"

	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/pkg/schema"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

func echoTool() *mediator.Tool {
	inputSchema := schema.NewBuilder().
		String("message", "The message to echo back", schema.Required()).
		String("prefix", "Optional prefix prepended to the echoed message", schema.Default("")).
		Build()

	return &mediator.Tool{
		Name:        "echo",
		Description: "Echoes the given message back to the caller.",
		InputSchema: inputSchema,
		Annotations: &types.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			message, err := requiredStringArg(args, "message")
			if err != nil {
				return nil, err
			}
			prefix, err := stringArg(args, "prefix", "")
			if err != nil {
				return nil, err
			}
			return prefix + message, nil
		},
	}
}
