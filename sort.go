package dictweaver

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// entryRank is the sort key for one entry: citation components with level
// interposed so that each parent row precedes its children. Entries whose key
// does not parse as a citation rank after every parseable one, in input order.
type entryRank struct {
	title, chapter, part, level, section int
	unranked                             bool
}

func rankOf(key string) entryRank {
	ck, ok := ParseCitationKey(key)
	if !ok {
		return entryRank{unranked: true}
	}
	return entryRank{
		title:   ck.Title,
		chapter: ck.Chapter,
		part:    ck.Part,
		level:   ck.Level(),
		section: ck.Section,
	}
}

func (a entryRank) less(b entryRank) bool {
	if a.unranked != b.unranked {
		return !a.unranked
	}
	if a.unranked {
		return false // equal; stability keeps input order
	}
	switch {
	case a.title != b.title:
		return a.title < b.title
	case a.chapter != b.chapter:
		return a.chapter < b.chapter
	case a.part != b.part:
		return a.part < b.part
	case a.level != b.level:
		return a.level < b.level
	}
	return a.section < b.section
}

// SortEntries orders entries hierarchically: by title, then chapter, part,
// level, section, with absent components ranking before present ones so a
// title row leads its chapters and a chapter row its parts and sections.
// The sort is stable and returns a new slice.
func SortEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i].Key).less(rankOf(out[j].Key))
	})
	return out
}

// Dedup removes exact (key, value) duplicates, keeping the first occurrence.
// Rows with the same key but different values are both kept: that conflict
// is for a human to resolve, not for cleaning to paper over.
func Dedup(entries []Entry) ([]Entry, int) {
	seen := make(map[Entry]struct{}, len(entries))
	kept := make([]Entry, 0, len(entries))
	removed := 0
	for _, e := range entries {
		if _, dup := seen[e]; dup {
			removed++
			continue
		}
		seen[e] = struct{}{}
		kept = append(kept, e)
	}
	return kept, removed
}

// CleanResult is the outcome of the clean pipeline.
type CleanResult struct {
	Entries           []Entry
	Output            string // the cleaned TSV text
	DuplicatesRemoved int
}

type cleanConfig struct {
	sort  bool
	dedup bool
}

// CleanOption tweaks the clean pipeline.
type CleanOption func(*cleanConfig)

// WithoutSort keeps the input row order.
func WithoutSort() CleanOption { return func(c *cleanConfig) { c.sort = false } }

// WithoutDedup keeps exact duplicate rows.
func WithoutDedup() CleanOption { return func(c *cleanConfig) { c.dedup = false } }

// Clean runs the maintenance pipeline over raw TSV text: parse rows
// (reporting and dropping malformed ones), sort hierarchically, remove exact
// duplicate rows, and re-encode. Unlike Load, same-key rows with different
// values all survive cleaning; they are reported as DuplicateKey issues so
// the spreadsheet maintainer can pick the right one.
func Clean(text string, opts ...CleanOption) (CleanResult, []Issue) {
	cfg := cleanConfig{sort: true, dedup: true}
	for _, o := range opts {
		o(&cfg)
	}

	rows, issues, ok := scanRows(text)
	if !ok {
		return CleanResult{}, issues
	}

	if cfg.sort {
		sort.SliceStable(rows, func(i, j int) bool {
			return rankOf(rows[i].Key).less(rankOf(rows[j].Key))
		})
	}

	removed := 0
	if cfg.dedup {
		deduped := make([]cleanRow, 0, len(rows))
		seen := make(map[Entry]struct{}, len(rows))
		for _, r := range rows {
			if _, dup := seen[r.Entry]; dup {
				removed++
				continue
			}
			seen[r.Entry] = struct{}{}
			deduped = append(deduped, r)
		}
		rows = deduped
	}

	// surviving same-key conflicts, cited against the original line numbers
	firstSeen := map[string]int{}
	for _, r := range rows {
		if first, dup := firstSeen[r.Key]; dup {
			issues = append(issues, newDuplicateKeyIssue(first, r.line, r.Key))
			continue
		}
		firstSeen[r.Key] = r.line
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = r.Entry
	}

	var b strings.Builder
	_ = EncodeTSV(&b, entries) // strings.Builder writes cannot fail

	return CleanResult{
		Entries:           entries,
		Output:            b.String(),
		DuplicatesRemoved: removed,
	}, issues
}

type cleanRow struct {
	Entry
	line int
}

// scanRows parses TSV text into rows without applying the duplicate-key
// policy; cleaning wants every row, Load wants one per key. ok is false only
// for the fatal encoding case.
func scanRows(text string) ([]cleanRow, []Issue, bool) {
	if !utf8.ValidString(text) {
		return nil, []Issue{newEncodingIssue()}, false
	}
	var (
		rows   []cleanRow
		issues []Issue
	)
	for no, raw := range splitLines(text) {
		line := no + 1
		if strings.TrimSpace(raw) == "" {
			continue
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
		if !balancedPlaceholder(value) {
			issues = append(issues, newMalformedPlaceholderIssue(line, value))
		}
		rows = append(rows, cleanRow{Entry: Entry{Key: key, Value: value}, line: line})
	}
	return rows, issues, true
}
