package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/config"
)

var configPath string

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "cartwin",
		Short: "Car-engine digital twin - scenario telemetry simulation and health analysis",
		Long: `cartwin simulates a car engine without real hardware: it generates
scenario-driven telemetry (idle, acceleration, cruise, stress), derives
subsystem health scores and a maintenance estimate, and exports the
result as JSON or serves it live over HTTP and WebSocket.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the configured file. When the default path does not
// exist and the user never pointed at a file explicitly, the built-in
// defaults apply.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
			slog.Info("no config file found, using defaults", "path", configPath)
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
