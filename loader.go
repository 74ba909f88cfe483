package dictweaver

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Loader turns raw TSV text into a validated Dictionary. It is a pure
// transformation with no I/O of its own: reading the file belongs to the
// caller. A zero-option Loader enforces the built-in checklist rules only.
type Loader struct {
	validators *ValidatorRegistry
}

func NewLoader(opts ...func(*Loader)) *Loader {
	l := &Loader{}
	for _, o := range opts {
		o(l)
	}
	return l
}

// WithValidators attaches caller-defined per-entry rules that run during load
// and contribute issues without affecting which entries are kept.
func WithValidators(reg *ValidatorRegistry) func(*Loader) {
	return func(l *Loader) { l.validators = reg }
}

// Load parses TSV text into a Dictionary plus every rule violation found.
// Recoverable violations are collected and reported alongside the entries
// that survived; the caller decides whether any issue aborts its workflow.
// The one fatal condition is input that is not valid UTF-8: it yields an
// empty dictionary and a single EncodingError issue, since no line of an
// undecodable file can be trusted.
func Load(text string) (*Dictionary, []Issue) {
	return NewLoader().Load(text)
}

func (l *Loader) Load(text string) (*Dictionary, []Issue) {
	if !utf8.ValidString(text) {
		return emptyDictionary(), []Issue{newEncodingIssue()}
	}

	d := &Dictionary{index: map[string]int{}}
	firstSeen := map[string]int{} // key -> line of the occurrence that won
	var issues []Issue

	for no, raw := range splitLines(text) {
		line := no + 1
		if strings.TrimSpace(raw) == "" {
			continue // blank lines carry no semantic content
		}
		key, value, ok := splitEntryLine(raw)
		if !ok {
			issues = append(issues, newMalformedLineIssue(line, raw))
			continue
		}

		trimmed := strings.TrimSpace(key)
		if trimmed != key {
			issues = append(issues, newTrailingWhitespaceIssue(line, key))
			key = trimmed
		}
		if key == "" {
			issues = append(issues, newEmptyKeyIssue(line, raw))
			continue
		}

		if l.validators != nil {
			issues = append(issues, l.validators.ValidateEntry(key, value, line)...)
		}

		if first, dup := firstSeen[key]; dup {
			issues = append(issues, newDuplicateKeyIssue(first, line, key))
			continue // first occurrence wins
		}

		if !balancedPlaceholder(value) {
			// reported but kept: the literal text is more useful to the
			// operator than a hole in the dictionary
			issues = append(issues, newMalformedPlaceholderIssue(line, value))
		}

		firstSeen[key] = line
		d.index[key] = len(d.entries)
		d.entries = append(d.entries, Entry{Key: key, Value: value})
	}

	return d, issues
}

// LoadReader is Load over a stream. Read failures are transport errors, not
// validation issues, and come back as the error return.
func (l *Loader) LoadReader(r io.Reader) (*Dictionary, []Issue, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read dictionary input: %w", err)
	}
	d, issues := l.Load(string(b))
	return d, issues, nil
}

// splitLines splits on LF and strips a trailing CR from each line, so CRLF
// input validates identically to LF input. Line numbering counts every line,
// blank ones included.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	// a trailing newline produces one phantom empty line; harmless, since
	// blank lines are skipped, but drop it to keep line counts honest
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// splitEntryLine splits a line on its single TAB separator. ok is false when
// the line has zero or more than one TAB.
func splitEntryLine(line string) (key, value string, ok bool) {
	if countTabs(line) != 1 {
		return "", "", false
	}
	tab := strings.IndexByte(line, '\t')
	return line[:tab], line[tab+1:], true
}

func countTabs(s string) int {
	return strings.Count(s, "\t")
}

// balancedPlaceholder reports whether every [...] marker in the value is
// balanced and non-nested. Values without brackets are trivially fine.
func balancedPlaceholder(value string) bool {
	depth := 0
	for _, r := range value {
		switch r {
		case '[':
			if depth > 0 {
				return false // nested
			}
			depth++
		case ']':
			if depth == 0 {
				return false // close without open
			}
			depth--
		}
	}
	return depth == 0
}
