package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
)

// errIssuesFound signals that validation findings were already reported and
// the process should exit with the dedicated status code.
var errIssuesFound = errors.New("issues found")

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "dictweaver",
		Short:         "Load, validate, clean and apply TSV citation dictionaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newValidateCommand(),
		newSortCommand(),
		newCleanCommand(),
		newApplyCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if errors.Is(err, errIssuesFound) {
			// already reported in full by the command
			os.Exit(2)
		}
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}
