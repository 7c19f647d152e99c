package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mcpbridge/mcpbridge/pkg/types"
	"github.com/spf13/cobra"
)

var callToolCmdArgs string

var callToolCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke a tool on a running mcpbridge server",
	Long: "Invoke a tool by name, passing arguments as a JSON object.\n" +
		"eg: mcpbridge call echo --args '{\"message\": \"hello\"}'",
	Args: cobra.ExactArgs(1),
	RunE: runCallTool,
}

func init() {
	callToolCmd.Flags().StringVar(
		&callToolCmdArgs,
		"args",
		"",
		"Arguments for the tool as a JSON object",
	)

	rootCmd.AddCommand(callToolCmd)
}

// parseToolArgs decodes the --args flag into an arguments object.
func parseToolArgs(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("--args must be a JSON object: %w", err)
	}
	return args, nil
}

func runCallTool(cmd *cobra.Command, args []string) error {
	toolArgs, err := parseToolArgs(callToolCmdArgs)
	if err != nil {
		return err
	}

	result, err := newAPIClient().CallTool(args[0], toolArgs)
	if err != nil {
		return fmt.Errorf("failed to call tool '%s': %w", args[0], err)
	}

	if result.IsError {
		cmd.Println("The tool reported an error:")
	}
	for _, item := range result.Content {
		switch item.Type {
		case types.ContentTypeText:
			cmd.Println(item.Text)
		default:
			cmd.Printf("(%s content, mime type %s)\n", item.Type, item.MimeType)
		}
	}

	if result.StructuredContent != nil {
		j, err := json.MarshalIndent(result.StructuredContent, "", "  ")
		if err == nil {
			cmd.Println()
			cmd.Println("Structured content:")
			cmd.Println(string(j))
		}
	}

	return nil
}
