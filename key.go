package dictweaver

import (
	"strconv"
	"strings"
)

// CitationKey is the parsed form of a pipe-delimited hierarchical key such as
// "TCA|T=16|C=3|P=3|S=301". The loader never parses keys (they are opaque to
// it); only the hierarchical sort does. Absent components are -1.
type CitationKey struct {
	Jurisdiction string
	Title        int
	Chapter      int
	Part         int
	Section      int
}

// Levels of the citation hierarchy, in sort order: a title row precedes its
// chapter rows, a chapter row its part rows, a part row its section rows.
const (
	LevelTitle = iota
	LevelChapter
	LevelPart
	LevelSection
)

// Level returns which hierarchy level the key addresses.
func (k CitationKey) Level() int {
	switch {
	case k.Section >= 0:
		return LevelSection
	case k.Part >= 0:
		return LevelPart
	case k.Chapter >= 0:
		return LevelChapter
	}
	return LevelTitle
}

// ParseCitationKey parses "JUR|T=n|C=n|P=n|S=n" keys. Components may be
// absent but never repeated; the title is required. ok is false for keys
// that do not follow the convention; such keys still load and substitute
// fine, they just cannot be ranked hierarchically.
func ParseCitationKey(key string) (CitationKey, bool) {
	parts := strings.Split(key, "|")
	if parts[0] == "" || strings.ContainsRune(parts[0], '=') {
		return CitationKey{}, false
	}
	k := CitationKey{
		Jurisdiction: parts[0],
		Title:        -1,
		Chapter:      -1,
		Part:         -1,
		Section:      -1,
	}
	for _, p := range parts[1:] {
		field, digits, found := strings.Cut(p, "=")
		if !found {
			return CitationKey{}, false
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 0 {
			return CitationKey{}, false
		}
		var slot *int
		switch field {
		case "T":
			slot = &k.Title
		case "C":
			slot = &k.Chapter
		case "P":
			slot = &k.Part
		case "S":
			slot = &k.Section
		default:
			return CitationKey{}, false
		}
		if *slot >= 0 {
			return CitationKey{}, false // repeated component
		}
		*slot = n
	}
	if k.Title < 0 {
		return CitationKey{}, false
	}
	return k, true
}
