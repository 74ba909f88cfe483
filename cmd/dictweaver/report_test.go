package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grahms/dictweaver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OutputPath(t *testing.T) {
	assert.Equal(t, "dict.tsv", outputPath("dict.tsv", "", true, "_sorted"))
	assert.Equal(t, "other.tsv", outputPath("dict.tsv", "other.tsv", false, "_sorted"))
	assert.Equal(t, "dict_sorted.tsv", outputPath("dict.tsv", "", false, "_sorted"))
	assert.Equal(t, "dict_cleaned", outputPath("dict", "", false, "_cleaned"))
}

func Test_Reporter_CapsIssueFlood(t *testing.T) {
	var buf bytes.Buffer
	rep := newReporter(ReportConfig{MaxLines: 2, Color: false})
	rep.out = &buf

	_, issues := dictweaver.Load("a\nb\nc\nd\n") // four malformed lines
	require.Len(t, issues, 4)
	rep.printIssues("dict.tsv", issues)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "WARN:"))
	assert.Contains(t, out, "... 2 more issue(s)")
	assert.Contains(t, out, "dict.tsv | line 1:")
}

func Test_Reporter_FatalLabelled(t *testing.T) {
	var buf bytes.Buffer
	rep := newReporter(ReportConfig{MaxLines: 50, Color: false})
	rep.out = &buf

	_, issues := dictweaver.Load("\xff")
	rep.printIssues("dict.tsv", issues)

	assert.Contains(t, buf.String(), "ERROR:")
	assert.Contains(t, buf.String(), "not valid UTF-8")
}
