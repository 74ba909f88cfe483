package dictweaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCitationKey(t *testing.T) {
	tests := []struct {
		key    string
		want   CitationKey
		wantOK bool
	}{
		{
			key:    "TCA|T=16",
			want:   CitationKey{Jurisdiction: "TCA", Title: 16, Chapter: -1, Part: -1, Section: -1},
			wantOK: true,
		},
		{
			key:    "TCA|T=16|C=3|P=3",
			want:   CitationKey{Jurisdiction: "TCA", Title: 16, Chapter: 3, Part: 3, Section: -1},
			wantOK: true,
		},
		{
			key:    "TCA|T=16|C=3|P=3|S=301",
			want:   CitationKey{Jurisdiction: "TCA", Title: 16, Chapter: 3, Part: 3, Section: 301},
			wantOK: true,
		},
		{
			// section without part happens in some titles
			key:    "TCA|T=14|C=2|S=102",
			want:   CitationKey{Jurisdiction: "TCA", Title: 14, Chapter: 2, Part: -1, Section: 102},
			wantOK: true,
		},
		{key: "TCA", wantOK: false},                 // no title
		{key: "TCA|T=16|T=17", wantOK: false},       // repeated component
		{key: "TCA|T=sixteen", wantOK: false},       // non-numeric
		{key: "TCA|T=16|X=1", wantOK: false},        // unknown component
		{key: "TCA|T=-3", wantOK: false},            // negative
		{key: "|T=16", wantOK: false},               // empty jurisdiction
		{key: "T=16|C=1", wantOK: false},            // jurisdiction missing
		{key: "TCA|chapters", wantOK: false},        // bare segment
		{key: "plain-opaque-key", wantOK: false},    // not a citation at all
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ParseCitationKey(tt.key)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_CitationKey_Level(t *testing.T) {
	lvl := func(key string) int {
		k, ok := ParseCitationKey(key)
		require.True(t, ok)
		return k.Level()
	}

	assert.Equal(t, LevelTitle, lvl("TCA|T=16"))
	assert.Equal(t, LevelChapter, lvl("TCA|T=16|C=3"))
	assert.Equal(t, LevelPart, lvl("TCA|T=16|C=3|P=1"))
	assert.Equal(t, LevelSection, lvl("TCA|T=16|C=3|P=1|S=101"))
	assert.Equal(t, LevelSection, lvl("TCA|T=14|C=2|S=102"))
}
