package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that a mcpbridge server is responsive",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	if err := newAPIClient().Ping(); err != nil {
		return fmt.Errorf("server at %s did not respond to ping: %w", serverURL(), err)
	}
	cmd.Printf("%s is up\n", serverURL())
	return nil
}
