package dictweaver

// Entry is one key/value pair of a dictionary. The key is an opaque
// case-sensitive identifier (in practice a pipe-delimited citation path such
// as "TCA|T=16|C=3|P=3"); the value is free display text.
type Entry struct {
	Key   string
	Value string
}

// Dictionary is an order-preserving mapping from unique keys to values.
// It is built once, by Load or New, and never mutated afterwards: the
// canonical source of truth is the exported spreadsheet, not this structure.
type Dictionary struct {
	entries []Entry
	index   map[string]int
}

// New builds a dictionary from entries, applying the same duplicate policy as
// the loader: the first occurrence of a key wins, later ones are dropped and
// reported. Entry positions stand in for line numbers in the issues.
func New(entries []Entry) (*Dictionary, []Issue) {
	d := &Dictionary{index: make(map[string]int, len(entries))}
	var issues []Issue
	for i, e := range entries {
		if first, ok := d.index[e.Key]; ok {
			issues = append(issues, newDuplicateKeyIssue(first+1, i+1, e.Key))
			continue
		}
		d.index[e.Key] = i
		d.entries = append(d.entries, e)
	}
	// reindex to positions within the kept slice
	for i, e := range d.entries {
		d.index[e.Key] = i
	}
	return d, issues
}

func emptyDictionary() *Dictionary {
	return &Dictionary{index: map[string]int{}}
}

// Get returns the value mapped to key.
func (d *Dictionary) Get(key string) (string, bool) {
	i, ok := d.index[key]
	if !ok {
		return "", false
	}
	return d.entries[i].Value, true
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns the entries in first-seen order. The slice is a copy; the
// dictionary stays immutable.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Keys returns the keys in first-seen order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Key
	}
	return out
}
