package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/grahms/dictweaver"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var keyPattern string
	command := &cobra.Command{
		Use:   "validate <file.tsv>...",
		Short: "Check dictionary files against the import checklist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rep := newReporter(cfg.Report)

			var opts []func(*dictweaver.Loader)
			if keyPattern != "" {
				reg := dictweaver.NewValidatorRegistry()
				if err := reg.RegisterKeyPattern(keyPattern, "configured key pattern"); err != nil {
					return err
				}
				opts = append(opts, dictweaver.WithValidators(reg))
			}
			loader := dictweaver.NewLoader(opts...)

			total := 0
			for _, path := range args {
				b, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				d, issues := loader.Load(string(b))
				slog.Debug("loaded dictionary",
					"path", path, "entries", d.Len(), "issues", len(issues))
				rep.printIssues(path, issues)
				total += len(issues)
			}

			if total == 0 {
				rep.ok("OK: no issues found.")
				return nil
			}
			rep.summary(total)
			return errIssuesFound
		},
	}
	command.Flags().StringVar(&keyPattern, "key-pattern", "",
		"extra regular expression every key must match")
	return command
}
