package ot

import (
	"fmt"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

const (
	offsetTableSize = 12
	tableRecordSize = 16
	ttcHeaderSize   = 12
	tagCollection   = Tag(0x74746366) // ttcf
)

// MaxCollectionSize limits the number of fonts accepted in a font collection.
const MaxCollectionSize = 1 << 16

// Parse parses the table directory of an OpenType font from a byte slice.
// For font collections, the font at index 0 is selected, unless option
// FontIndex is given.
//
// An ot.Font needs ongoing access to the fonts byte-data after the Parse function returns.
// Its elements are assumed immutable while the ot.Font remains in use.
func Parse(font []byte, opts ...ParseOption) (*Font, error) {
	conf := parseConfig{}
	for _, opt := range opts {
		opt(&conf)
	}
	ec := &errorCollector{}
	dirOffset := uint32(0)
	if IsCollection(font) {
		offsets, err := collectionOffsets(font, ec)
		if err != nil {
			return nil, err
		}
		if conf.index < 0 || conf.index >= len(offsets) {
			return nil, ec.critical(0, "TTCHeader",
				fmt.Sprintf("font index %d out of range, collection has %d fonts", conf.index, len(offsets)), 0)
		}
		dirOffset = offsets[conf.index]
		tracer().Debugf("collection font #%d at offset %d", conf.index, dirOffset)
	} else if conf.index != 0 {
		return nil, ec.critical(0, "Header",
			fmt.Sprintf("font index %d requested, but font is not a collection", conf.index), 0)
	}

	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	b, ok := view(font, dirOffset, offsetTableSize)
	if !ok {
		return nil, ec.critical(0, "Header", "offset table truncated", dirOffset)
	}
	h := FontHeader{FontType: u32(b[0:4]), TableCount: u16(b[4:6])}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	if !(h.FontType == FontTypeCFF ||
		h.FontType == FontTypeTrueType ||
		h.FontType == FontTypeApple) {
		return nil, ec.critical(0, "Header", fmt.Sprintf("font type not supported: %x", h.FontType), dirOffset)
	}
	otf := &Font{
		Header: &h,
		Index:  conf.index,
		tables: make(map[Tag]*Table, h.TableCount),
		tags:   make([]Tag, 0, h.TableCount),
	}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, ok := view(font, dirOffset+offsetTableSize, tableRecordSize*uint32(h.TableCount))
	if !ok {
		return nil, ec.critical(0, "TableRecords", "table record entries", dirOffset+offsetTableSize)
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[tableRecordSize:] {
		if err := otf.addTable(font, b[:tableRecordSize], prevTag, conf, ec); err != nil {
			return nil, err
		}
		prevTag = MakeTag(b)
	}
	if otf.Table(T("head")) == nil {
		// Whether fonts without 'head' are acceptable is up to the client.
		ec.addWarning(T("head"), "font has no table 'head'", 0)
	}
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

func (otf *Font) addTable(font []byte, rec []byte, prevTag Tag, conf parseConfig, ec *errorCollector) error {
	tag := MakeTag(rec)
	off, size := u32(rec[8:12]), u32(rec[12:16])
	if tag < prevTag {
		if !conf.relaxed {
			return ec.critical(0, "TableRecords", "table order", offsetTableSize)
		}
		ec.addError(tag, "TableRecords", "table order", SeverityMinor, off)
	}
	if _, dup := otf.tables[tag]; dup {
		if !conf.relaxed {
			return ec.critical(tag, "TableRecords", "duplicate table record", off)
		}
		ec.addError(tag, "TableRecords", "duplicate table record ignored", SeverityMajor, off)
		return nil
	}
	if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
		if !conf.relaxed {
			return ec.critical(tag, "Offset", "invalid table offset", off)
		}
		ec.addError(tag, "Offset", "table not aligned to 4 bytes", SeverityMinor, off)
	}
	data, ok := view(font, off, size)
	if !ok {
		issue := fmt.Sprintf("bounds [%d:+%d] exceed font size %d", off, size, len(font))
		if !conf.relaxed {
			return ec.critical(tag, "Bounds", issue, off)
		}
		ec.addError(tag, "Bounds", issue+", table dropped", SeverityMajor, off)
		return nil
	}
	if size == 0 {
		ec.addWarning(tag, "table is empty", off)
	}
	tracer().Debugf("table %s at offset %d, size %d", tag, off, size)
	otf.tables[tag] = &Table{tag: tag, offset: off, data: data}
	otf.tags = append(otf.tags, tag)
	return nil
}

// --- Font collections ------------------------------------------------------

// IsCollection reports whether font is a font collection (*.ttc, *.otc).
func IsCollection(font []byte) bool {
	return len(font) >= 4 && MakeTag(font[:4]) == tagCollection
}

// CollectionSize returns the number of fonts in a font collection.
// For single fonts, CollectionSize returns 1.
func CollectionSize(font []byte) (int, error) {
	if !IsCollection(font) {
		if _, ok := view(font, 0, offsetTableSize); !ok {
			return 0, errFontFormat("offset table truncated")
		}
		return 1, nil
	}
	offsets, err := collectionOffsets(font, &errorCollector{})
	if err != nil {
		return 0, err
	}
	return len(offsets), nil
}

// collectionOffsets reads the TTCHeader and returns the offsets of the
// fonts' table directories.
func collectionOffsets(font []byte, ec *errorCollector) ([]uint32, error) {
	b, ok := view(font, 0, ttcHeaderSize)
	if !ok {
		return nil, ec.critical(0, "TTCHeader", "collection header truncated", 0)
	}
	major := u16(b[4:6])
	if major != 1 && major != 2 {
		return nil, ec.critical(0, "TTCHeader", fmt.Sprintf("collection version %d not supported", major), 4)
	}
	numFonts := u32(b[8:12])
	if numFonts == 0 || numFonts > MaxCollectionSize {
		return nil, ec.critical(0, "TTCHeader", fmt.Sprintf("invalid number of fonts: %d", numFonts), 8)
	}
	b, ok = view(font, ttcHeaderSize, 4*numFonts)
	if !ok {
		return nil, ec.critical(0, "TTCHeader", "table directory offsets truncated", ttcHeaderSize)
	}
	offsets := make([]uint32, numFonts)
	for i := range offsets {
		offsets[i] = u32(b[4*i:])
	}
	return offsets, nil
}
