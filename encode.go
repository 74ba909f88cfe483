package dictweaver

import (
	"bufio"
	"fmt"
	"io"
)

// EncodeTSV writes entries as KEY<TAB>VALUE lines in slice order, the exact
// shape the loader reads back.
func EncodeTSV(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", e.Key, e.Value); err != nil {
			return fmt.Errorf("write entry %q: %w", e.Key, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush tsv output: %w", err)
	}
	return nil
}

// EncodeTSV writes the dictionary in first-seen order.
func (d *Dictionary) EncodeTSV(w io.Writer) error {
	return EncodeTSV(w, d.entries)
}
