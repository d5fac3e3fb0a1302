package main

import (
	"testing"

	"github.com/npillmayer/fontid"
	"github.com/npillmayer/fontid/otquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRevision(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want fontid.FontRevision
		text string
	}{
		{"0x00010005", 0x00010005, "1.5"},
		{"0X00010000", 0x00010000, "1"},
		{"65536", 0x00010000, "1"},
		{"0", 0, "0"},
		{"0xffff0000", -0x10000, "-1"},
	} {
		r, err := parseRevision(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, r, tc.in)
		assert.Equal(t, tc.text, r.String(), tc.in)
	}
	for _, in := range []string{"", "1.5", "0x1ffffffff", "abc"} {
		_, err := parseRevision(in)
		assert.Error(t, err, in)
	}
}

func TestFormatHead(t *testing.T) {
	h := otquery.HeadTableInfo{
		MajorVersion: 1,
		FontRevision: 0x00020001,
		MagicNumber:  otquery.HeadMagicNumber,
		UnitsPerEm:   1000,
		Created:      2082844800,
	}
	lines := formatHead(h)
	assert.Contains(t, lines, "Revision: 2.1 (0x00020001)")
	assert.Contains(t, lines, "Magic: 0x5f0f3cf5 (valid=true)")
	assert.Contains(t, lines, "Created: 1970-01-01 00:00:00")
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{"a.ttf", "My Font.otf", "c.ttc"}, splitArgs("a.ttf,My Font.otf, c.ttc"))
	assert.Empty(t, splitArgs(" ,"))
}
