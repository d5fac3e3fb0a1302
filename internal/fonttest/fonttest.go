/*
Package fonttest synthesizes OpenType font binaries for tests.

Fonts built here contain only the tables handed in; they are not renderable,
but carry a valid table directory.
*/
package fonttest

import (
	"encoding/binary"
	"sort"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// FontTypeTrueType is the sfntVersion of fonts with TrueType outlines.
const FontTypeTrueType uint32 = 0x00010000

// HeadTable returns a 54-byte table 'head' with the given font revision.
func HeadTable(revision uint32) []byte {
	b := make([]byte, 54)
	binary.BigEndian.PutUint16(b[0:2], 1)           // majorVersion
	binary.BigEndian.PutUint32(b[4:8], revision)    // fontRevision
	binary.BigEndian.PutUint32(b[8:12], 0x1badb002) // checksumAdjustment, not validated
	binary.BigEndian.PutUint32(b[12:16], 0x5f0f3cf5)
	binary.BigEndian.PutUint16(b[16:18], 0x000b)
	binary.BigEndian.PutUint16(b[18:20], 2048) // unitsPerEm
	binary.BigEndian.PutUint16(b[36:38], 0xfed4)
	binary.BigEndian.PutUint16(b[38:40], 0xfe25)
	binary.BigEndian.PutUint16(b[40:42], 0x092c)
	binary.BigEndian.PutUint16(b[42:44], 0x07d2)
	binary.BigEndian.PutUint16(b[46:48], 9)
	binary.BigEndian.PutUint16(b[48:50], 2)
	binary.BigEndian.PutUint16(b[50:52], 1) // indexToLocFormat
	return b
}

// NameRecord is an entry for NameTable.
type NameRecord struct {
	Platform uint16
	Encoding uint16
	Language uint16
	NameID   uint16
	Value    string
}

// Windows returns a Windows/Unicode BMP name record, language en-US.
func Windows(nameID uint16, value string) NameRecord {
	return NameRecord{Platform: 3, Encoding: 1, Language: 0x0409, NameID: nameID, Value: value}
}

// Macintosh returns a Macintosh/Roman name record, language English.
func Macintosh(nameID uint16, value string) NameRecord {
	return NameRecord{Platform: 1, Encoding: 0, Language: 0, NameID: nameID, Value: value}
}

// NameTable returns a table 'name' (format 0) containing recs.
// Macintosh records are encoded in Mac Roman, all others in UTF-16BE.
func NameTable(recs ...NameRecord) []byte {
	headerSize := 6 + 12*len(recs)
	b := make([]byte, headerSize)
	binary.BigEndian.PutUint16(b[2:4], uint16(len(recs)))
	binary.BigEndian.PutUint16(b[4:6], uint16(headerSize))
	var storage []byte
	for i, rec := range recs {
		str := encodeName(rec)
		r := b[6+12*i:]
		binary.BigEndian.PutUint16(r[0:2], rec.Platform)
		binary.BigEndian.PutUint16(r[2:4], rec.Encoding)
		binary.BigEndian.PutUint16(r[4:6], rec.Language)
		binary.BigEndian.PutUint16(r[6:8], rec.NameID)
		binary.BigEndian.PutUint16(r[8:10], uint16(len(str)))
		binary.BigEndian.PutUint16(r[10:12], uint16(len(storage)))
		storage = append(storage, str...)
	}
	return append(b, storage...)
}

func encodeName(rec NameRecord) []byte {
	if rec.Platform == 1 {
		s, err := charmap.Macintosh.NewEncoder().String(rec.Value)
		if err != nil {
			panic(err)
		}
		return []byte(s)
	}
	s, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().String(rec.Value)
	if err != nil {
		panic(err)
	}
	return []byte(s)
}

// SFNT returns a single font with the given tables, keyed by table tag.
func SFNT(tables map[string][]byte) []byte {
	return appendFont(nil, FontTypeTrueType, tables)
}

// Collection returns a font collection (TTC version 1.0) of fonts, each
// given as a map of tables.
func Collection(fonts ...map[string][]byte) []byte {
	n := len(fonts)
	out := make([]byte, 12+4*n)
	copy(out[0:4], "ttcf")
	binary.BigEndian.PutUint16(out[4:6], 1)
	binary.BigEndian.PutUint32(out[8:12], uint32(n))
	for i, tables := range fonts {
		out = pad(out)
		binary.BigEndian.PutUint32(out[12+4*i:], uint32(len(out)))
		out = appendFont(out, FontTypeTrueType, tables)
	}
	return out
}

// appendFont appends a table directory at the end of out, followed by the
// tables. Table offsets are absolute.
func appendFont(out []byte, fontType uint32, tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	dir := len(out)
	out = append(out, make([]byte, 12+16*len(tags))...)
	binary.BigEndian.PutUint32(out[dir:], fontType)
	binary.BigEndian.PutUint16(out[dir+4:], uint16(len(tags)))
	for i, tag := range tags {
		out = pad(out)
		rec := out[dir+12+16*i:]
		copy(rec[0:4], (tag + "    ")[:4])
		binary.BigEndian.PutUint32(rec[8:12], uint32(len(out)))
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(tables[tag])))
		out = append(out, tables[tag]...)
	}
	return pad(out)
}

func pad(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}
