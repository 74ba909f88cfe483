package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/grahms/dictweaver"
	"github.com/spf13/cobra"
)

func newCleanCommand() *cobra.Command {
	var (
		outPath  string
		inplace  bool
		noSort   bool
		noDedup  bool
		failFast bool
	)
	command := &cobra.Command{
		Use:   "clean <file.tsv>",
		Short: "Validate, sort and deduplicate a dictionary file",
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
			text := string(b)

			if failFast {
				if _, issues := dictweaver.Load(text); len(issues) > 0 {
					rep.printIssues(path, issues)
					rep.summary(len(issues))
					return errIssuesFound
				}
			}

			var opts []dictweaver.CleanOption
			if noSort {
				opts = append(opts, dictweaver.WithoutSort())
			}
			if noDedup {
				opts = append(opts, dictweaver.WithoutDedup())
			}
			res, issues := dictweaver.Clean(text, opts...)
			if fatal(issues) {
				rep.printIssues(path, issues)
				return errIssuesFound
			}

			target := outputPath(path, outPath, inplace, "_cleaned")
			if err := os.WriteFile(target, []byte(res.Output), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			slog.Debug("cleaned dictionary",
				"input", path, "output", target,
				"rows", len(res.Entries), "duplicates_removed", res.DuplicatesRemoved)

			fmt.Printf("Rows written: %d\n", len(res.Entries))
			fmt.Printf("Duplicates removed: %d\n", res.DuplicatesRemoved)
			fmt.Printf("Output: %s\n", target)

			if len(issues) > 0 {
				rep.printIssues(path, issues)
				rep.summary(len(issues))
				return errIssuesFound
			}
			return nil
		},
	}
	command.Flags().StringVar(&outPath, "out", "", "output path (default: <input>_cleaned.tsv)")
	command.Flags().BoolVar(&inplace, "inplace", false, "overwrite the input file (ignores --out)")
	command.Flags().BoolVar(&noSort, "no-sort", false, "do not sort")
	command.Flags().BoolVar(&noDedup, "no-dedup", false, "do not remove exact duplicate rows")
	command.Flags().BoolVar(&failFast, "fail-fast", false,
		"if validation issues exist before changes, exit without writing output")
	return command
}
