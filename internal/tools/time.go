package tools

import (
	"context"
	"strconv"
	"time"

	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/pkg/schema"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

func systemTimeTool() *mediator.Tool {
	inputSchema := schema.NewBuilder().
		String("format", "Output format for the current time",
			schema.Enum("rfc3339", "unix", "kitchen"),
			schema.Default("rfc3339"),
		).
		Build()

	return &mediator.Tool{
		Name:        "system_time",
		Description: "Returns the current server time in the requested format.",
		InputSchema: inputSchema,
		Annotations: &types.ToolAnnotations{
			ReadOnlyHint: true,
		},
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			format, err := stringArg(args, "format", "rfc3339")
			if err != nil {
				return nil, err
			}

			now := time.Now()
			switch format {
			case "rfc3339":
				return now.Format(time.RFC3339), nil
			case "unix":
				return strconv.FormatInt(now.Unix(), 10), nil
			case "kitchen":
				return now.Format(time.Kitchen), nil
			default:
				return nil, mediator.NewArgumentError("'format' must be one of rfc3339, unix, kitchen")
			}
		},
	}
}
