package tools

import (
	"context"
	"strings"
	"text/tabwriter"

	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/pkg/schema"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

func renderTableTool() *mediator.Tool {
	inputSchema := schema.NewBuilder().
		String("title", "Optional title printed above the table").
		Array("columns", "Column headers, left to right",
			schema.StringItem("A column header"),
			schema.Required(),
		).
		Array("rows", "Table rows; each row is a list of cell values",
			schema.ArrayItem(schema.StringItem("A cell value"), "One row of cells"),
			schema.Required(),
		).
		Build()

	return &mediator.Tool{
		Name:        "render_table",
		Description: "Renders rows of string cells as an aligned plain-text table.",
		InputSchema: inputSchema,
		Annotations: &types.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			columns, err := stringListArg(args, "columns")
			if err != nil {
				return nil, err
			}
			if len(columns) == 0 {
				return nil, mediator.NewArgumentError("'columns' must not be empty")
			}

			rawRows, ok := args["rows"].([]any)
			if !ok {
				return nil, mediator.NewArgumentError("missing required argument 'rows'")
			}
			rows := make([][]string, 0, len(rawRows))
			for i, rawRow := range rawRows {
				cells, ok := rawRow.([]any)
				if !ok {
					return nil, mediator.NewArgumentError("row %d must be a list of strings", i)
				}
				if len(cells) != len(columns) {
					return nil, mediator.NewArgumentError(
						"row %d has %d cells, expected %d", i, len(cells), len(columns),
					)
				}
				row := make([]string, len(cells))
				for j, cell := range cells {
					s, ok := cell.(string)
					if !ok {
						return nil, mediator.NewArgumentError("cell %d of row %d must be a string", j, i)
					}
					row[j] = s
				}
				rows = append(rows, row)
			}

			title, err := stringArg(args, "title", "")
			if err != nil {
				return nil, err
			}

			return renderTable(title, columns, rows), nil
		},
	}
}

// stringListArg extracts a required list-of-strings argument.
func stringListArg(args map[string]any, name string) ([]string, error) {
	raw, ok := args[name].([]any)
	if !ok {
		return nil, mediator.NewArgumentError("missing required argument '%s'", name)
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, mediator.NewArgumentError("'%s' must contain only strings", name)
		}
		out[i] = s
	}
	return out, nil
}

func renderTable(title string, columns []string, rows [][]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(title + "\n")
	}

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	write := func(cells []string) {
		_, _ = w.Write([]byte(strings.Join(cells, "\t") + "\n"))
	}
	write(columns)
	for _, row := range rows {
		write(row)
	}
	_ = w.Flush()

	return strings.TrimRight(sb.String(), "\n")
}
