package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/grahms/dictweaver"
	"github.com/spf13/cobra"
)

func newApplyCommand() *cobra.Command {
	var (
		dictPath string
		outPath  string
		lenient  bool
	)
	command := &cobra.Command{
		Use:   "apply <template>",
		Short: "Substitute {{KEY}} tokens in a text file from a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rep := newReporter(cfg.Report)
			templatePath := args[0]

			dictText, err := os.ReadFile(dictPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", dictPath, err)
			}
			d, loadIssues := dictweaver.Load(string(dictText))
			rep.printIssues(dictPath, loadIssues)
			if fatal(loadIssues) {
				return errIssuesFound
			}
			slog.Debug("loaded dictionary", "path", dictPath, "entries", d.Len())

			templateText, err := os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("read %s: %w", templatePath, err)
			}

			sub := dictweaver.NewSubstitutor(
				dictweaver.WithDelimiters(cfg.Delimiters.Open, cfg.Delimiters.Close),
			)
			out, subIssues := sub.Substitute(string(templateText), d)
			rep.printIssues(templatePath, subIssues)

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outPath, err)
				}
				fmt.Printf("Output: %s\n", outPath)
			} else {
				fmt.Print(out)
			}

			if total := len(loadIssues) + len(subIssues); total > 0 && !lenient {
				rep.summary(total)
				return errIssuesFound
			}
			return nil
		},
	}
	command.Flags().StringVar(&dictPath, "dict", "", "dictionary TSV file (required)")
	command.Flags().StringVar(&outPath, "out", "", "output path (default: stdout)")
	command.Flags().BoolVar(&lenient, "lenient", false,
		"exit successfully even when issues were reported")
	_ = command.MarkFlagRequired("dict")
	return command
}
