// Command quartiles is the offline tool around the puzzle engine: it
// builds dictionary artifacts, generates daily puzzles, and inspects
// stored boards. It never serves traffic; the host application owns all
// request-path concerns.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/quartiles/internal/config"
)

var (
	flagConfig   string
	flagLogLevel string

	cfg    config.Config
	logger *slog.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "quartiles",
		Short:         "Daily word-puzzle engine tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := slog.LevelInfo
			switch strings.ToLower(flagLogLevel) {
			case "debug":
				lvl = slog.LevelDebug
			case "warn":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
			var err error
			cfg, err = config.Load(flagConfig)
			return err
		},
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "optional YAML config file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "debug|info|warn|error")

	root.AddCommand(newBuildCmd(), newGenerateCmd(), newSolveCmd(), newHintCmd(), newListCmd())

	if err := root.Execute(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("command failed", "err", err)
		os.Exit(1)
	}
}
