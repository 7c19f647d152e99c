// Package cmd contains the mcpbridge command-line interface.
package cmd

import (
	"net/http"
	"os"
	"time"

	"github.com/mcpbridge/mcpbridge/pkg/client"
	"github.com/mcpbridge/mcpbridge/pkg/version"
	"github.com/spf13/cobra"
)

// ServerURLEnvVar overrides the default server URL for client subcommands.
const ServerURLEnvVar = "MCPBRIDGE_SERVER_URL"

const serverURLDefault = "http://127.0.0.1:8080"

var rootCmdServerURL string

var rootCmd = &cobra.Command{
	Use:          "mcpbridge",
	Short:        "mcpbridge is a stateless MCP tool server",
	Long:         "mcpbridge exposes a set of schema-described tools to AI clients over the Model Context Protocol (JSON-RPC 2.0 over HTTP).",
	Version:      version.GetVersion(),
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rootCmdServerURL,
		"server",
		"",
		"Base URL of the mcpbridge server to talk to (overrides env var "+ServerURLEnvVar+")",
	)
}

// Execute runs the root command. It exits the process with a non-zero code
// on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serverURL returns the server base URL for client subcommands.
// precedence: command line flag > environment variable > default
func serverURL() string {
	u := rootCmdServerURL
	if u == "" {
		u = os.Getenv(ServerURLEnvVar)
	}
	if u == "" {
		u = serverURLDefault
	}
	return u
}

// newAPIClient builds a client for the configured server.
func newAPIClient() *client.Client {
	return client.NewClient(serverURL(), &http.Client{Timeout: 30 * time.Second})
}
