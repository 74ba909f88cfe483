package dictweaver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_WellFormed_NoIssues(t *testing.T) {
	input := "TCA|T=16\tCourts\nTCA|T=16|C=1\tGeneral Provisions\nTCA|T=16|C=2\tSupreme Court\n"
	d, issues := Load(input)

	require.Empty(t, issues)
	require.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"TCA|T=16", "TCA|T=16|C=1", "TCA|T=16|C=2"}, d.Keys())

	v, ok := d.Get("TCA|T=16|C=2")
	require.True(t, ok)
	assert.Equal(t, "Supreme Court", v)
}

func Test_Load_BlankLines_SkippedSilently(t *testing.T) {
	input := "\nA\tone\n\n   \n\t \nB\ttwo\n"
	d, issues := Load(input)

	assert.Empty(t, issues)
	assert.Equal(t, []string{"A", "B"}, d.Keys())
}

func Test_Load_MalformedLine_SkippedAndReported(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no tab", input: "A\tone\njust a bare line\nB\ttwo\n"},
		{name: "two tabs", input: "A\tone\nX\tfirst\tsecond\nB\ttwo\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, issues := Load(tt.input)

			assert.Equal(t, []string{"A", "B"}, d.Keys())
			require.Len(t, issues, 1)
			assert.Equal(t, MalformedLine, issues[0].Rule)
			assert.Equal(t, 2, issues[0].Line)
		})
	}
}

func Test_Load_TrailingWhitespace_TrimmedAndReported(t *testing.T) {
	d, issues := Load("FOO \tbar\n")

	require.Len(t, issues, 1)
	assert.Equal(t, TrailingWhitespace, issues[0].Rule)
	assert.Equal(t, 1, issues[0].Line)

	v, ok := d.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
	_, ok = d.Get("FOO ")
	assert.False(t, ok)
}

func Test_Load_LeadingWhitespace_AlsoTrimmed(t *testing.T) {
	d, issues := Load("  FOO\tbar\n")

	require.Len(t, issues, 1)
	assert.Equal(t, TrailingWhitespace, issues[0].Rule)
	assert.Equal(t, []string{"FOO"}, d.Keys())
}

func Test_Load_DuplicateKey_FirstWins(t *testing.T) {
	input := strings.Join([]string{
		"A\tone",
		"",
		"K\tline three value",
		"B\ttwo",
		"C\tthree",
		"D\tfour",
		"K\tline seven value",
	}, "\n")
	d, issues := Load(input)

	v, ok := d.Get("K")
	require.True(t, ok)
	assert.Equal(t, "line three value", v)

	require.Len(t, issues, 1)
	assert.Equal(t, DuplicateKey, issues[0].Rule)
	assert.Equal(t, 3, issues[0].FirstLine)
	assert.Equal(t, 7, issues[0].Line)
}

func Test_Load_DuplicateKey_TrimmedKeysCompared(t *testing.T) {
	d, issues := Load("K\tfirst\nK \tsecond\n")

	require.Equal(t, 1, d.Len())
	v, _ := d.Get("K")
	assert.Equal(t, "first", v)

	// trailing whitespace on line 2, then the duplicate
	require.Len(t, issues, 2)
	assert.Equal(t, TrailingWhitespace, issues[0].Rule)
	assert.Equal(t, DuplicateKey, issues[1].Rule)
}

func Test_Load_EndToEndScenario(t *testing.T) {
	input := "TCA|T=16\tCourts\nTCA|T=16|C=1\tGeneral Provisions\nTCA|T=16|C=1\tDuplicate Value\n"
	d, issues := Load(input)

	assert.Equal(t, []Entry{
		{Key: "TCA|T=16", Value: "Courts"},
		{Key: "TCA|T=16|C=1", Value: "General Provisions"},
	}, d.Entries())

	require.Len(t, issues, 1)
	assert.Equal(t, DuplicateKey, issues[0].Rule)
	assert.Equal(t, 2, issues[0].FirstLine)
	assert.Equal(t, 3, issues[0].Line)
}

func Test_Load_Placeholder_Validation(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantIssue bool
	}{
		{name: "no brackets", value: "plain text", wantIssue: false},
		{name: "balanced marker", value: "[RESERVED – unassigned]", wantIssue: false},
		{name: "marker inside text", value: "see [RESERVED] below", wantIssue: false},
		{name: "two markers", value: "[a] and [b]", wantIssue: false},
		{name: "unclosed", value: "[RESERVED – dangling", wantIssue: true},
		{name: "close without open", value: "oops]", wantIssue: true},
		{name: "nested", value: "[outer [inner]]", wantIssue: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, issues := Load("K\t" + tt.value + "\n")

			// the entry is kept either way, preserved for inspection
			v, ok := d.Get("K")
			require.True(t, ok)
			assert.Equal(t, tt.value, v)

			if tt.wantIssue {
				require.Len(t, issues, 1)
				assert.Equal(t, MalformedPlaceholder, issues[0].Rule)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func Test_Load_InvalidUTF8_FatalEmptyDictionary(t *testing.T) {
	d, issues := Load("A\tone\n\xff\xfe\nB\ttwo\n")

	assert.Equal(t, 0, d.Len())
	require.Len(t, issues, 1)
	assert.Equal(t, EncodingError, issues[0].Rule)
	assert.True(t, issues[0].Rule.Fatal())
}

func Test_Load_CRLF_NotWhitespaceIssue(t *testing.T) {
	d, issues := Load("A\tone\r\nB\ttwo\r\n")

	assert.Empty(t, issues)
	assert.Equal(t, []string{"A", "B"}, d.Keys())
	v, _ := d.Get("B")
	assert.Equal(t, "two", v)
}

func Test_Load_EmptyKey_Rejected(t *testing.T) {
	d, issues := Load("\tvalue with no key\n")

	assert.Equal(t, 0, d.Len())
	require.Len(t, issues, 1)
	assert.Equal(t, MalformedLine, issues[0].Rule)
}

func Test_Load_Idempotent(t *testing.T) {
	input := "TCA|T=16\tCourts\nbroken line\nK \t[oops\nK\tagain\n"

	d1, issues1 := Load(input)
	d2, issues2 := Load(input)

	assert.Equal(t, d1.Entries(), d2.Entries())
	assert.Equal(t, issues1, issues2)
}

func Test_Load_IssueOrder_FollowsLines(t *testing.T) {
	input := "no tab here\nFOO \tbar\nFOO\t[broken\n"
	_, issues := Load(input)

	require.Len(t, issues, 3)
	assert.Equal(t, MalformedLine, issues[0].Rule)
	assert.Equal(t, TrailingWhitespace, issues[1].Rule)
	assert.Equal(t, DuplicateKey, issues[2].Rule)
	assert.Equal(t, []int{1, 2, 3}, []int{issues[0].Line, issues[1].Line, issues[2].Line})
}

func Test_Load_CustomValidator_Reported(t *testing.T) {
	reg := NewValidatorRegistry()
	require.NoError(t, reg.RegisterKeyPattern(`^TCA\|`, "TCA citation path"))

	loader := NewLoader(WithValidators(reg))
	d, issues := loader.Load("TCA|T=16\tCourts\nROGUE\tvalue\n")

	// validators report, they do not reject
	assert.Equal(t, 2, d.Len())
	require.Len(t, issues, 1)
	assert.Equal(t, CustomRule, issues[0].Rule)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, "ROGUE", issues[0].Text)
}

func Test_Load_FuncValidator(t *testing.T) {
	reg := NewValidatorRegistry()
	reg.RegisterFunc(func(key, value string, line int) []Issue {
		if strings.TrimSpace(value) == "" {
			return []Issue{{Rule: CustomRule, Line: line, Text: key, Message: "empty value"}}
		}
		return nil
	})

	_, issues := NewLoader(WithValidators(reg)).Load("A\t\nB\tok\n")

	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
}

func Test_LoadReader(t *testing.T) {
	d, issues, err := NewLoader().LoadReader(strings.NewReader("A\tone\n"))

	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, 1, d.Len())
}

func Test_LoadReader_ReadFailure(t *testing.T) {
	_, _, err := NewLoader().LoadReader(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dictionary input")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}
