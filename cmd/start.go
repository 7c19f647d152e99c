package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mcpbridge/mcpbridge/internal/api"
	"github.com/mcpbridge/mcpbridge/internal/config"
	"github.com/mcpbridge/mcpbridge/internal/telemetry"
	"github.com/mcpbridge/mcpbridge/internal/tools"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	startServerCmdBindPort   string
	startServerCmdConfigPath string
	startServerCmdTelemetry  bool
)

var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mcpbridge server",
	Long: "Starts the mcpbridge HTTP server exposing the built-in tool set over MCP.\n\n" +
		"Configuration is resolved from defaults, then an optional YAML config file (--config),\n" +
		"then environment variables, then command-line flags.\n" +
		"Recognized environment variables: " + config.BindPortEnvVar + ", " + config.ServerNameEnvVar + ", " +
		config.ProtocolVersionEnvVar + ", " + config.TelemetryEnabledEnvVar + ", " + config.LogLevelEnvVar + ".\n" +
		"A .env file in the working directory is loaded automatically.",
	RunE: runStartServer,
}

func init() {
	startServerCmd.Flags().StringVar(
		&startServerCmdBindPort,
		"port",
		"",
		fmt.Sprintf("port to bind the HTTP server to (overrides env var %s)", config.BindPortEnvVar),
	)
	startServerCmd.Flags().StringVar(
		&startServerCmdConfigPath,
		"config",
		"",
		"path to a YAML configuration file",
	)
	startServerCmd.Flags().BoolVar(
		&startServerCmdTelemetry,
		"telemetry",
		false,
		fmt.Sprintf("enable OpenTelemetry metrics (alternatively, set the %s environment variable)", config.TelemetryEnabledEnvVar),
	)

	rootCmd.AddCommand(startServerCmd)
}

// buildLogger creates the zap logger for the server at the configured level.
func buildLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	return cfg.Build()
}

func runStartServer(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(afero.NewOsFs(), startServerCmdConfigPath)
	if err != nil {
		return err
	}

	// flags take precedence over everything the loader resolved
	if startServerCmdBindPort != "" {
		cfg.Port = startServerCmdBindPort
	}
	if startServerCmdTelemetry {
		cfg.TelemetryEnabled = true
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	otelConfig := &telemetry.Config{
		ServiceName: cfg.ServerName,
		Enabled:     cfg.TelemetryEnabled,
	}
	otelProviders, err := telemetry.Init(cmd.Context(), otelConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize Opentelemetry providers: %v", err)
	}
	defer func() {
		if err := otelProviders.Shutdown(cmd.Context()); err != nil {
			cmd.Printf("Warning: failed to shutdown opentelemetry providers: %v\n", err)
		}
	}()

	// By default, a no-op metrics implementation is used. If telemetry is
	// enabled, the real implementation replaces it, so the rest of the code
	// records metrics without ever checking whether telemetry is on.
	metrics := telemetry.NewNoopCustomMetrics()
	if otelProviders.IsEnabled() {
		metrics, err = telemetry.NewOtelCustomMetrics(otelProviders.Meter)
		if err != nil {
			return fmt.Errorf("failed to create metrics: %v", err)
		}
	}

	opts := &api.ServerOptions{
		Port:            cfg.Port,
		ServerName:      cfg.ServerName,
		ProtocolVersion: cfg.ProtocolVersion,
		RegisterTools:   tools.RegisterDefault,
		Logger:          logger,
		OtelProviders:   otelProviders,
		Metrics:         metrics,
	}
	s, err := api.NewServer(opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %v", err)
	}

	logger.Info("starting mcpbridge server",
		zap.String("port", cfg.Port),
		zap.String("protocol_version", cfg.ProtocolVersion),
		zap.Bool("telemetry", cfg.TelemetryEnabled),
	)
	cmd.Printf("mcpbridge HTTP server listening on :%s\n", cfg.Port)
	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to run the server: %v", err)
	}

	return nil
}
