package ot

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/fontid/internal/fonttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putU16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:at+2], v)
}

func putU32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:at+4], v)
}

func TestParseMalformedInputs(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := Parse(nil)
		assert.Error(t, err)
	})

	t.Run("UnsupportedFontType", func(t *testing.T) {
		b := make([]byte, 12)
		copy(b, "wOFF")
		_, err := Parse(b)
		assert.ErrorContains(t, err, "font type not supported")
	})

	t.Run("TableRecordsTruncated", func(t *testing.T) {
		b := make([]byte, 20)
		putU32(b, 0, FontTypeTrueType)
		putU16(b, 4, 2) // two records claimed, space for less than one
		_, err := Parse(b)
		assert.Error(t, err)
	})

	t.Run("TableOutOfBounds", func(t *testing.T) {
		b := fonttest.SFNT(map[string][]byte{"head": fonttest.HeadTable(0)})
		putU32(b, 12+12, 0xffffff00) // size of first table record
		_, err := Parse(b)
		assert.ErrorContains(t, err, "exceed font size")
		otf, err := Parse(b, IsTestfont)
		require.NoError(t, err)
		assert.Nil(t, otf.Table(T("head")))
		require.Len(t, otf.Errors(), 1)
		assert.Equal(t, SeverityMajor, otf.Errors()[0].Severity)
	})

	t.Run("TableOrder", func(t *testing.T) {
		b := fonttest.SFNT(map[string][]byte{"head": fonttest.HeadTable(0), "name": fonttest.NameTable()})
		first, second := make([]byte, 16), make([]byte, 16)
		copy(first, b[12:28])
		copy(second, b[28:44])
		copy(b[12:28], second)
		copy(b[28:44], first)
		_, err := Parse(b)
		assert.ErrorContains(t, err, "table order")
		otf, err := Parse(b, IsTestfont)
		require.NoError(t, err)
		assert.NotNil(t, otf.Table(T("head")))
		assert.NotNil(t, otf.Table(T("name")))
		assert.False(t, otf.HasCriticalErrors())
	})

	t.Run("Misaligned", func(t *testing.T) {
		b := fonttest.SFNT(map[string][]byte{"head": fonttest.HeadTable(0)})
		putU32(b, 12+8, binary.BigEndian.Uint32(b[12+8:])+1)
		putU32(b, 12+12, 40)
		_, err := Parse(b)
		assert.ErrorContains(t, err, "invalid table offset")
	})

	t.Run("CollectionTooLarge", func(t *testing.T) {
		b := make([]byte, 16)
		copy(b, "ttcf")
		putU16(b, 4, 1)
		putU32(b, 8, MaxCollectionSize+1)
		_, err := Parse(b)
		assert.Error(t, err)
		_, err = CollectionSize(b)
		assert.Error(t, err)
	})
}

func TestFontErrorString(t *testing.T) {
	e := FontError{Table: T("head"), Section: "Bounds", Issue: "too short", Severity: SeverityCritical, Offset: 12}
	assert.Equal(t, "[CRITICAL] head/Bounds at offset 12: too short", e.Error())
	w := FontWarning{Table: T("head"), Issue: "empty"}
	assert.Equal(t, "[WARNING] head: empty", w.String())
}
