package otquery

import (
	"fmt"
	"iter"

	"github.com/npillmayer/fontid/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16
	Name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
}

type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDWindows   PlatformID = 3
)

type EncodingID uint16

const (
	EncodingIDWindowsSymbol EncodingID = 0 // for now we will not support symbol fonts
	EncodingIDWindowsBMP    EncodingID = 1
	EncodingIDWindowsFull   EncodingID = 10
	EncodingIDMacRoman      EncodingID = 0
)

const languageIDWindowsEnglishUS = 0x0409

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table.
//
// Only currently supported encodings are yielded (Unicode, Windows BMP and full
// repertoire, Macintosh Roman), and malformed or out-of-bounds records are skipped.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		for key, value := range nameRecords(otf) {
			if !yield(key.Name, value) {
				return
			}
		}
	}
}

// nameRecords yields all decodable name records.
func nameRecords(otf *ot.Font) iter.Seq2[nameKey, string] {
	names := checkNameTableSafe(otf)
	return func(yield func(nameKey, string) bool) {
		if names == nil {
			return
		}
		binary := names.Binary()
		count := int(u16(binary[2:4])) // number of name records
		stringStorageOffset := int(u16(binary[4:6]))
		for i := range count {
			recordSlice := binary[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			key := nameKey{
				Platform: PlatformID(u16(recordSlice[0:2])),
				Encoding: EncodingID(u16(recordSlice[2:4])),
				Language: u16(recordSlice[4:6]),
				Name:     sfnt.NameID(u16(recordSlice[6:8])),
			}
			if !isSupportedNameEncoding(key) {
				continue
			}
			strLen := int(u16(recordSlice[8:10]))
			recordOffset := int(u16(recordSlice[10:12]))
			start := stringStorageOffset + recordOffset
			end := start + strLen
			if end > len(binary) {
				tracer().Debugf("name record %d out of bounds", i)
				continue
			}
			stringValue, err := decodeName(key, binary[start:end])
			if err != nil || stringValue == "" {
				continue
			}
			if !yield(key, stringValue) {
				return
			}
		}
	}
}

// checkNameTableSafe checks if the name table is safe to use, i.e. no out-of-bounds access,
// no empty tables, etc.
func checkNameTableSafe(otf *ot.Font) *ot.Table {
	table := otf.Table(ot.T("name"))
	if table == nil {
		tracer().Debugf("no name table found in font")
		return nil
	}
	b := table.Binary()
	if len(b) < nameHeaderSize {
		tracer().Debugf("name table too short: %d", len(b))
		return nil
	}
	count := int(u16(b[2:4]))
	strOff := int(u16(b[4:6]))
	if strOff > len(b) {
		tracer().Debugf("name table invalid string offset: %d", strOff)
		return nil
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return table
}

func isSupportedNameEncoding(key nameKey) bool {
	switch key.Platform {
	case PlatformIDUnicode:
		return key.Encoding <= 4
	case PlatformIDWindows:
		return key.Encoding == EncodingIDWindowsBMP || key.Encoding == EncodingIDWindowsFull
	case PlatformIDMacintosh:
		return key.Encoding == EncodingIDMacRoman
	}
	return false
}

func decodeName(key nameKey, str []byte) (string, error) {
	if key.Platform == PlatformIDMacintosh {
		s, err := charmap.Macintosh.NewDecoder().Bytes(str)
		if err != nil {
			return "", fmt.Errorf("decoding Mac Roman error: %v", err)
		}
		return string(s), nil
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}

// rank orders name records of the same name ID by preference:
// Windows en-US, other Windows, Unicode, Macintosh.
func (key nameKey) rank() int {
	switch key.Platform {
	case PlatformIDWindows:
		if key.Language == languageIDWindowsEnglishUS {
			return 4
		}
		return 3
	case PlatformIDUnicode:
		return 2
	case PlatformIDMacintosh:
		return 1
	}
	return 0
}

// Name returns the preferred entry for nameID from a font's `name` table.
func Name(otf *ot.Font, nameID sfnt.NameID) (string, bool) {
	best, rank := "", 0
	for key, value := range nameRecords(otf) {
		if key.Name != nameID {
			continue
		}
		if r := key.rank(); r > rank {
			best, rank = value, r
		}
	}
	return best, rank > 0
}

// PostScriptName returns the PostScript name of a font (name ID 6), if present.
func PostScriptName(otf *ot.Font) (string, bool) {
	return Name(otf, sfnt.NameIDPostScript)
}

// NameInfo collects the most common names of a font. Keys are "family",
// "subfamily", "full", "postscript" and "version". Names not present in
// the font are omitted.
func NameInfo(otf *ot.Font) map[string]string {
	info := make(map[string]string)
	for key, id := range map[string]sfnt.NameID{
		"family":     sfnt.NameIDFamily,
		"subfamily":  sfnt.NameIDSubfamily,
		"full":       sfnt.NameIDFull,
		"postscript": sfnt.NameIDPostScript,
		"version":    sfnt.NameIDVersion,
	} {
		if s, ok := Name(otf, id); ok {
			info[key] = s
		}
	}
	return info
}
