package ot

import (
	"testing"

	"github.com/npillmayer/fontid/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	tag := Tag(0x68656164)
	if tag.String() != "head" {
		t.Errorf("expected tag 0x68656164 to be 'head', is %s", tag.String())
	}
	tag = MakeTag([]byte("cmap"))
	if tag.String() != "cmap" {
		t.Errorf("expected tag MakeTag(cmap) to be 'cmap', is %s", tag.String())
	}
	tag = T("cvt")
	if tag != MakeTag([]byte("cvt ")) {
		t.Errorf("expected tag T(cvt) to be padded with a space, is %q", tag.String())
	}
}

func TestParseSingleFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	head := fonttest.HeadTable(0x00020001)
	name := fonttest.NameTable(fonttest.Windows(6, "Test-Regular"))
	otf, err := Parse(fonttest.SFNT(map[string][]byte{"head": head, "name": name}))
	require.NoError(t, err)
	assert.Equal(t, FontTypeTrueType, otf.Header.FontType)
	assert.Equal(t, uint16(2), otf.Header.TableCount)
	assert.Equal(t, []Tag{T("head"), T("name")}, otf.TableTags())
	require.NotNil(t, otf.Table(T("head")))
	assert.Equal(t, head, otf.Table(T("head")).Binary())
	assert.Equal(t, T("head"), otf.Table(T("head")).NameTag())
	off, size := otf.Table(T("name")).Extent()
	assert.Zero(t, off%4, "tables must be aligned")
	assert.Equal(t, uint32(len(name)), size)
	assert.Nil(t, otf.Table(T("GSUB")))
	assert.Empty(t, otf.Errors())
	assert.Empty(t, otf.Warnings())
	assert.False(t, otf.HasCriticalErrors())
}

func TestParseMissingHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf, err := Parse(fonttest.SFNT(map[string][]byte{"name": fonttest.NameTable()}))
	require.NoError(t, err, "a missing 'head' table is not a parse error")
	require.Len(t, otf.Warnings(), 1)
	assert.Equal(t, T("head"), otf.Warnings()[0].Table)
}

func TestParseCollection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	data := fonttest.Collection(
		map[string][]byte{"head": fonttest.HeadTable(0x00010000)},
		map[string][]byte{"head": fonttest.HeadTable(0x00030000)},
	)
	assert.True(t, IsCollection(data))
	n, err := CollectionSize(data)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	//
	otf, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 0, otf.Index)
	assert.Equal(t, byte(1), otf.Table(T("head")).Binary()[5])
	otf, err = Parse(data, FontIndex(1))
	require.NoError(t, err)
	assert.Equal(t, 1, otf.Index)
	assert.Equal(t, byte(3), otf.Table(T("head")).Binary()[5])
	_, err = Parse(data, FontIndex(2))
	assert.Error(t, err)
}

func TestCollectionSizeSingleFont(t *testing.T) {
	data := fonttest.SFNT(map[string][]byte{"head": fonttest.HeadTable(0)})
	assert.False(t, IsCollection(data))
	n, err := CollectionSize(data)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = Parse(data, FontIndex(1))
	assert.Error(t, err, "font index 1 for a single font")
}
