package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontid/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontid.cli")
	defer teardown()
	//
	cmd := parseCommand("load /fonts/My Font.ttf")
	assert.Equal(t, LOAD, cmd.code)
	assert.Equal(t, "/fonts/My Font.ttf", cmd.arg)
	assert.Equal(t, ID, parseCommand("ID").code)
	assert.Equal(t, HELP, parseCommand("frobnicate").code)
}

func TestSplitFontIndex(t *testing.T) {
	path, index, err := splitFontIndex("/fonts/Helvetica.ttc#2")
	require.NoError(t, err)
	assert.Equal(t, "/fonts/Helvetica.ttc", path)
	assert.Equal(t, 2, index)
	path, index, err = splitFontIndex("Arial.ttf")
	require.NoError(t, err)
	assert.Equal(t, "Arial.ttf", path)
	assert.Equal(t, 0, index)
	_, _, err = splitFontIndex("Arial.ttc#x")
	assert.Error(t, err)
}

func TestExecuteRequiresFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontid.cli")
	defer teardown()
	//
	intp := &Intp{}
	err, quit := intp.execute(parseCommand("id"))
	assert.Error(t, err)
	assert.False(t, quit)
	//
	path := filepath.Join(t.TempDir(), "test.ttf")
	data := fonttest.SFNT(map[string][]byte{
		"head": fonttest.HeadTable(0x00010000),
		"name": fonttest.NameTable(fonttest.Windows(6, "Test-Regular")),
	})
	require.NoError(t, os.WriteFile(path, data, 0o644))
	err, _ = intp.execute(parseCommand("load " + path))
	require.NoError(t, err)
	assert.Equal(t, "Test-Regular", intp.font.ID.Name)
	_, quit = intp.execute(parseCommand("quit"))
	assert.True(t, quit)
}
