package tools

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/pkg/schema"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

const maxUUIDCount = 100

func generateUUIDTool() *mediator.Tool {
	inputSchema := schema.NewBuilder().
		Integer("count", "Number of UUIDs to generate", schema.Default(1)).
		Build()

	outputSchema := schema.NewBuilder().
		Array("uuids", "The generated UUIDs", schema.StringItem("A version 4 UUID"), schema.Required()).
		Build()

	return &mediator.Tool{
		Name:         "generate_uuid",
		Description:  "Generates one or more random version 4 UUIDs.",
		InputSchema:  inputSchema,
		OutputSchema: outputSchema,
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			count, err := intArg(args, "count", 1)
			if err != nil {
				return nil, err
			}
			if count < 1 || count > maxUUIDCount {
				return nil, mediator.NewArgumentError("'count' must be between 1 and %d", maxUUIDCount)
			}

			uuids := make([]string, count)
			for i := range uuids {
				uuids[i] = uuid.NewString()
			}

			return &types.CallToolResult{
				Content: []types.Content{
					types.TextContent(strings.Join(uuids, "\n")),
				},
				StructuredContent: map[string]any{"uuids": uuids},
			}, nil
		},
	}
}
