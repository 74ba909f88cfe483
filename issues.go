package dictweaver

import "fmt"

// Rule identifies which formatting rule an Issue reports against.
type Rule int

const (
	// MalformedLine: a non-blank line without exactly one TAB separator.
	MalformedLine Rule = iota
	// TrailingWhitespace: a key carrying leading or trailing whitespace.
	TrailingWhitespace
	// DuplicateKey: a key already present in the dictionary being built.
	DuplicateKey
	// MalformedPlaceholder: a value whose [...] brackets are unbalanced or nested.
	MalformedPlaceholder
	// EncodingError: input that is not valid UTF-8. Fatal for the whole load.
	EncodingError
	// UnresolvedKey: a substitution token whose key is absent from the dictionary.
	UnresolvedKey
	// CustomRule: a finding produced by a caller-registered Validator.
	CustomRule
)

// String returns the rule name as used in reports.
func (r Rule) String() string {
	switch r {
	case MalformedLine:
		return "malformed line"
	case TrailingWhitespace:
		return "trailing whitespace"
	case DuplicateKey:
		return "duplicate key"
	case MalformedPlaceholder:
		return "malformed placeholder"
	case EncodingError:
		return "encoding error"
	case UnresolvedKey:
		return "unresolved key"
	case CustomRule:
		return "custom rule"
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// Fatal reports whether the rule aborts the load. Only EncodingError does;
// every other rule is recoverable and leaves the caller with a usable
// (possibly partial) dictionary.
func (r Rule) Fatal() bool {
	return r == EncodingError
}

// Issue records a single rule violation found while loading or substituting.
// It is a value: built once, never mutated.
type Issue struct {
	Rule Rule
	Line int // 1-based line in the input; 0 when not line-scoped
	// FirstLine is set for DuplicateKey issues: the line of the occurrence
	// that won and stayed in the dictionary.
	FirstLine int
	Text      string // offending text (raw line, key, value, or token)
	Message   string
}

// String renders the issue for a report, e.g.
// "line 7: duplicate key "TCA|T=16" (first seen at line 3)".
func (i Issue) String() string {
	if i.Line == 0 {
		return i.Message
	}
	return fmt.Sprintf("line %d: %s", i.Line, i.Message)
}

func newMalformedLineIssue(line int, raw string) Issue {
	return Issue{
		Rule:    MalformedLine,
		Line:    line,
		Text:    raw,
		Message: fmt.Sprintf("expected exactly one TAB separator, got %d in %q", countTabs(raw), raw),
	}
}

func newEmptyKeyIssue(line int, raw string) Issue {
	return Issue{
		Rule:    MalformedLine,
		Line:    line,
		Text:    raw,
		Message: "key is empty",
	}
}

func newTrailingWhitespaceIssue(line int, rawKey string) Issue {
	return Issue{
		Rule:    TrailingWhitespace,
		Line:    line,
		Text:    rawKey,
		Message: fmt.Sprintf("key %q has surrounding whitespace", rawKey),
	}
}

func newDuplicateKeyIssue(firstLine, dupLine int, key string) Issue {
	return Issue{
		Rule:      DuplicateKey,
		Line:      dupLine,
		FirstLine: firstLine,
		Text:      key,
		Message:   fmt.Sprintf("duplicate key %q (first seen at line %d)", key, firstLine),
	}
}

func newMalformedPlaceholderIssue(line int, value string) Issue {
	return Issue{
		Rule:    MalformedPlaceholder,
		Line:    line,
		Text:    value,
		Message: fmt.Sprintf("value %q has unbalanced or nested [...] brackets", value),
	}
}

func newEncodingIssue() Issue {
	return Issue{
		Rule:    EncodingError,
		Message: "input is not valid UTF-8",
	}
}

func newUnresolvedKeyIssue(line int, key string) Issue {
	return Issue{
		Rule:    UnresolvedKey,
		Line:    line,
		Text:    key,
		Message: fmt.Sprintf("no dictionary entry for key %q", key),
	}
}
