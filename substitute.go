package dictweaver

import "strings"

// Substitutor replaces {{KEY}} tokens in host-supplied text with dictionary
// values. It is a pure function from (text, dictionary) to (text, issues):
// the dictionary is never mutated and nothing outside the provided mapping is
// consulted.
type Substitutor struct {
	open  string
	close string
}

func NewSubstitutor(opts ...func(*Substitutor)) *Substitutor {
	s := &Substitutor{open: "{{", close: "}}"}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WithDelimiters switches the token fences, for hosts whose documents cannot
// carry double braces.
func WithDelimiters(open, close string) func(*Substitutor) {
	return func(s *Substitutor) {
		if open != "" && close != "" {
			s.open = open
			s.close = close
		}
	}
}

// Substitute replaces each {{KEY}} token with the dictionary value for KEY.
// Tokens whose key is absent are left exactly as written and reported as
// UnresolvedKey issues, so the operator can fix the dictionary and rerun.
func Substitute(text string, d *Dictionary) (string, []Issue) {
	return NewSubstitutor().Substitute(text, d)
}

func (s *Substitutor) Substitute(text string, d *Dictionary) (string, []Issue) {
	var (
		b      strings.Builder
		issues []Issue
	)
	b.Grow(len(text))

	line := 1
	rest := text
	for {
		j := strings.Index(rest, s.open)
		if j < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:j])
		line += strings.Count(rest[:j], "\n")
		rest = rest[j:]

		inner := rest[len(s.open):]
		k := strings.Index(inner, s.close)
		if k < 0 {
			// unterminated opener: not a token, emit verbatim
			b.WriteString(rest)
			break
		}
		token := inner[:k]
		if strings.ContainsRune(token, '\n') {
			// tokens never span lines; treat the opener as plain text
			b.WriteString(s.open)
			rest = inner
			continue
		}

		key := strings.TrimSpace(token)
		consumed := len(s.open) + k + len(s.close)
		if value, ok := d.Get(key); ok {
			b.WriteString(value)
		} else {
			b.WriteString(rest[:consumed]) // leave the token untouched
			issues = append(issues, newUnresolvedKeyIssue(line, key))
		}
		rest = rest[consumed:]
	}

	return b.String(), issues
}
