package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var listToolsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tools exposed by a running mcpbridge server",
	RunE:  runListTools,
}

func init() {
	rootCmd.AddCommand(listToolsCmd)
}

func runListTools(cmd *cobra.Command, args []string) error {
	tools, err := newAPIClient().ListTools()
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}

	if len(tools) == 0 {
		cmd.Println("The server does not expose any tools.")
		return nil
	}

	for _, t := range tools {
		cmd.Printf("%s - %s\n", t.Name, t.Description)

		if t.InputSchema == nil || len(t.InputSchema.Properties) == 0 {
			cmd.Println("  (no input parameters)")
			cmd.Println()
			continue
		}

		// map iteration order is random; print parameters sorted by name
		names := make([]string, 0, len(t.InputSchema.Properties))
		for name := range t.InputSchema.Properties {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			prop := t.InputSchema.Properties[name]
			requiredOrOptional := "optional"
			if slices.Contains(t.InputSchema.Required, name) {
				requiredOrOptional = "required"
			}
			line := fmt.Sprintf("  %s (%s, %s)", name, prop.Type, requiredOrOptional)
			if prop.Description != "" {
				line += ": " + prop.Description
			}
			cmd.Println(line)

			if len(prop.Enum) > 0 {
				values := make([]string, len(prop.Enum))
				for i, v := range prop.Enum {
					values[i] = fmt.Sprintf("%v", v)
				}
				cmd.Printf("    one of: %s\n", strings.Join(values, ", "))
			}
			if prop.Default != nil {
				j, err := json.Marshal(prop.Default)
				if err != nil {
					cmd.Printf("    default: %v\n", prop.Default)
				} else {
					cmd.Printf("    default: %s\n", j)
				}
			}
		}
		cmd.Println()
	}

	return nil
}
