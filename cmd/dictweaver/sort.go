package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/grahms/dictweaver"
	"github.com/spf13/cobra"
)

func newSortCommand() *cobra.Command {
	var (
		outPath string
		inplace bool
	)
	command := &cobra.Command{
		Use:   "sort <file.tsv>",
		Short: "Rewrite a dictionary file in hierarchical citation order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rep := newReporter(cfg.Report)
			path := args[0]

			b, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			// sort only: duplicates stay, conflicts get reported
			res, issues := dictweaver.Clean(string(b), dictweaver.WithoutDedup())
			rep.printIssues(path, issues)
			if fatal(issues) {
				return errIssuesFound
			}

			target := outputPath(path, outPath, inplace, "_sorted")
			if err := os.WriteFile(target, []byte(res.Output), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			slog.Debug("sorted dictionary", "input", path, "output", target, "rows", len(res.Entries))
			fmt.Printf("Rows written: %d\n", len(res.Entries))
			fmt.Printf("Output: %s\n", target)
			return nil
		},
	}
	command.Flags().StringVar(&outPath, "out", "", "output path (default: <input>_sorted.tsv)")
	command.Flags().BoolVar(&inplace, "inplace", false, "overwrite the input file (ignores --out)")
	return command
}

// outputPath picks where a rewriting command saves its result: the input
// itself with --inplace, the explicit --out, or the input name with a suffix
// spliced in before the extension.
func outputPath(input, out string, inplace bool, suffix string) string {
	if inplace {
		return input
	}
	if out != "" {
		return out
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

func fatal(issues []dictweaver.Issue) bool {
	for _, iss := range issues {
		if iss.Rule.Fatal() {
			return true
		}
	}
	return false
}
