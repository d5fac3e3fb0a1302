/*
Package fontload loads OpenType fonts and derives their identity.

Loading locates the font's tables (package ot), derives a fontid.FontID
(package otquery) and, as a secondary source for the font's display name,
parses the font with golang.org/x/image/font/sfnt. Fonts which sfnt cannot
handle are still loaded, as long as they have a valid table directory and a
table 'head'.
*/
package fontload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/fontid"
	"github.com/npillmayer/fontid/ot"
	"github.com/npillmayer/fontid/otquery"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'font.load'
func tracer() tracing.Trace {
	return tracing.Select("font.load")
}

// ErrNoHeadTable is returned for fonts without table 'head'.
var ErrNoHeadTable = errors.New("font has no table 'head'")

// ScalableFont is a parsed scalable font with original bytes, table
// directory and identity.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	OT       *ot.Font
	SFNT     *sfnt.Font // nil if sfnt could not parse the font
	ID       fontid.FontID
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	return LoadOpenTypeFontIndex(fontfile, 0)
}

// LoadOpenTypeFontIndex loads font number index from a font collection file.
// For single fonts, index must be 0.
func LoadOpenTypeFontIndex(fontfile string, index int) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := parse(bytez, index, filepath.Base(fontfile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	return parse(fbytes, 0, "")
}

// ParseOpenTypeFontIndex loads font number index of a font collection from memory.
func ParseOpenTypeFontIndex(fbytes []byte, index int) (*ScalableFont, error) {
	return parse(fbytes, index, "")
}

func parse(fbytes []byte, index int, fallback string) (*ScalableFont, error) {
	f := &ScalableFont{Binary: fbytes}
	var err error
	if f.OT, err = ot.Parse(fbytes, ot.FontIndex(index)); err != nil {
		return nil, err
	}
	f.SFNT = parseSFNT(fbytes, index)
	if f.SFNT != nil {
		if name, err := f.SFNT.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
			fallback = name
		}
	}
	id, ok := otquery.FontID(f.OT, fallback)
	if !ok {
		return nil, ErrNoHeadTable
	}
	f.ID = id
	f.Fontname = fallback
	if full, ok := otquery.Name(f.OT, sfnt.NameIDFull); ok {
		f.Fontname = full
	} else if f.Fontname == "" {
		f.Fontname = id.Name
	}
	tracer().Debugf("loaded font %s, ID = %s", f.Fontname, f.ID)
	return f, nil
}

// parseSFNT parses font data with package sfnt. Failure is not fatal.
func parseSFNT(fbytes []byte, index int) *sfnt.Font {
	if ot.IsCollection(fbytes) {
		c, err := sfnt.ParseCollection(fbytes)
		if err != nil {
			tracer().Infof("sfnt cannot parse font collection: %v", err)
			return nil
		}
		f, err := c.Font(index)
		if err != nil {
			tracer().Infof("sfnt cannot parse font #%d: %v", index, err)
			return nil
		}
		return f
	}
	f, err := sfnt.Parse(fbytes)
	if err != nil {
		tracer().Infof("sfnt cannot parse font: %v", err)
		return nil
	}
	return f
}
