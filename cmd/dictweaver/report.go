package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/grahms/dictweaver"
)

// reporter renders issue lists for the terminal, the way the import checklist
// expects them: every finding, capped, with a severity label.
type reporter struct {
	out      io.Writer
	maxLines int
	errLabel func(a ...interface{}) string
	wrnLabel func(a ...interface{}) string
	okText   func(a ...interface{}) string
}

func newReporter(cfg ReportConfig) *reporter {
	if !cfg.Color {
		color.NoColor = true
	}
	return &reporter{
		out:      os.Stdout,
		maxLines: cfg.MaxLines,
		errLabel: color.New(color.FgRed, color.Bold).SprintFunc(),
		wrnLabel: color.New(color.FgYellow).SprintFunc(),
		okText:   color.New(color.FgGreen).SprintFunc(),
	}
}

// printIssues writes one line per issue, prefixed with the source name, until
// the cap is hit.
func (r *reporter) printIssues(source string, issues []dictweaver.Issue) {
	shown := issues
	if r.maxLines > 0 && len(shown) > r.maxLines {
		shown = shown[:r.maxLines]
	}
	for _, iss := range shown {
		label := r.wrnLabel("WARN:")
		if iss.Rule.Fatal() {
			label = r.errLabel("ERROR:")
		}
		fmt.Fprintf(r.out, "%s %s | %s\n", label, source, iss)
	}
	if hidden := len(issues) - len(shown); hidden > 0 {
		fmt.Fprintf(r.out, "... %d more issue(s)\n", hidden)
	}
}

func (r *reporter) ok(msg string) {
	fmt.Fprintln(r.out, r.okText(msg))
}

func (r *reporter) summary(total int) {
	fmt.Fprintf(r.out, "FOUND %d ISSUE(S)\n", total)
}
