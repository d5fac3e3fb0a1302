package ot

// Font represents the table directory of an OpenType font.
//
// A Font needs ongoing access to the font's byte-data after Parse returns.
// Table data is not copied, clients must not modify it.
type Font struct {
	Header        *FontHeader
	Index         int // index of the font within a collection, 0 for single fonts
	tables        map[Tag]*Table
	tags          []Tag         // tags in directory order
	parseErrors   []FontError   // Errors accumulated during parsing
	parseWarnings []FontWarning // Warnings accumulated during parsing
}

// FontHeader is a directory of the top-level tables in a font. If the font file
// contains only one font, the table directory will begin at byte 0 of the file.
// If the font file is an OpenType Font Collection file, the beginning
// point of the table directory for each font is indicated in the TTCHeader.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// but these version tags should not be used for OpenType fonts.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// Font types accepted by Parse.
const (
	FontTypeTrueType uint32 = 0x00010000
	FontTypeCFF      uint32 = 0x4f54544f // OTTO
	FontTypeApple    uint32 = 0x74727565 // true
)

// Table returns the font table for a given tag. If a table for a tag cannot
// be found in the font, nil is returned.
//
// Table tag names are case-sensitive, following the names in the OpenType specification,
// e.g.
//
//	head := otf.Table(ot.T("head"))
func (otf *Font) Table(tag Tag) *Table {
	if otf == nil {
		return nil
	}
	if t, ok := otf.tables[tag]; ok {
		return t
	}
	return nil
}

// TableTags returns a list of tags, one for each table contained in the font,
// in the order of the font's table directory.
func (otf *Font) TableTags() []Tag {
	tags := make([]Tag, len(otf.tags))
	copy(tags, otf.tags)
	return tags
}

// Errors returns all errors encountered during font parsing which did not
// prevent parsing from completing.
func (otf *Font) Errors() []FontError {
	if otf.parseErrors == nil {
		return []FontError{}
	}
	return otf.parseErrors
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that are generally safe to ignore.
func (otf *Font) Warnings() []FontWarning {
	if otf.parseWarnings == nil {
		return []FontWarning{}
	}
	return otf.parseWarnings
}

// CriticalErrors returns all errors with critical severity.
func (otf *Font) CriticalErrors() []FontError {
	critical := make([]FontError, 0)
	for _, err := range otf.parseErrors {
		if err.Severity == SeverityCritical {
			critical = append(critical, err)
		}
	}
	return critical
}

// HasCriticalErrors returns true if any critical errors were encountered during parsing.
func (otf *Font) HasCriticalErrors() bool {
	return len(otf.CriticalErrors()) > 0
}

// --- Tables ----------------------------------------------------------------

// Table is an entry of a font's table directory, together with the table's data.
type Table struct {
	tag    Tag
	offset uint32
	data   []byte
}

// NameTag returns the tag of the table.
func (t *Table) NameTag() Tag {
	return t.tag
}

// Binary returns the raw bytes of the table.
func (t *Table) Binary() []byte {
	return t.data
}

// Extent returns the offset of the table within the font file and its length.
func (t *Table) Extent() (uint32, uint32) {
	return t.offset, uint32(len(t.data))
}

// --- Tag -------------------------------------------------------------------

// Tag is defined by the spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Parse options ---------------------------------------------------------

// ParseOption guides and influences the parsing of the font.
type ParseOption func(*parseConfig)

type parseConfig struct {
	index   int
	relaxed bool
}

// FontIndex selects a font from a font collection. For single fonts, only
// index 0 is valid.
func FontIndex(n int) ParseOption {
	return func(c *parseConfig) {
		c.index = n
	}
}

// IsTestfont relaxes a number of cross-checks that are normally enforced.
// Violations are recorded as errors or warnings instead of failing the parse.
var IsTestfont ParseOption = func(c *parseConfig) {
	c.relaxed = true
}
