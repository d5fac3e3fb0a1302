package otquery

import (
	"encoding/binary"
	"time"

	"github.com/npillmayer/fontid"
	"github.com/npillmayer/fontid/ot"
)

// HeadTableInfo is a typed query view over OpenType table 'head'.
// Values are decoded directly from the raw table bytes.
type HeadTableInfo struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       fontid.FontRevision
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64 // seconds since 1904-01-01 00:00 UTC
	Modified           int64 // seconds since 1904-01-01 00:00 UTC
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
}

const headTableSize = 54

// HeadMagicNumber is the fixed value of field magicNumber in table 'head'.
const HeadMagicNumber uint32 = 0x5F0F3CF5

// HeadInfo decodes table 'head' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func HeadInfo(otf *ot.Font) (HeadTableInfo, bool) {
	var info HeadTableInfo
	table := otf.Table(ot.Tag(fontid.OpenTypeTagHead))
	if table == nil {
		return info, false
	}
	b := table.Binary()
	if len(b) < headTableSize {
		tracer().Debugf("table 'head' too short: %d", len(b))
		return info, false
	}
	info.MajorVersion = binary.BigEndian.Uint16(b[0:2])
	info.MinorVersion = binary.BigEndian.Uint16(b[2:4])
	info.FontRevision = fontid.DecodeRevision(b)
	info.CheckSumAdjustment = binary.BigEndian.Uint32(b[8:12])
	info.MagicNumber = binary.BigEndian.Uint32(b[12:16])
	info.Flags = binary.BigEndian.Uint16(b[16:18])
	info.UnitsPerEm = binary.BigEndian.Uint16(b[18:20])
	info.Created = int64(binary.BigEndian.Uint64(b[20:28]))
	info.Modified = int64(binary.BigEndian.Uint64(b[28:36]))
	info.XMin = int16(binary.BigEndian.Uint16(b[36:38]))
	info.YMin = int16(binary.BigEndian.Uint16(b[38:40]))
	info.XMax = int16(binary.BigEndian.Uint16(b[40:42]))
	info.YMax = int16(binary.BigEndian.Uint16(b[42:44]))
	info.MacStyle = binary.BigEndian.Uint16(b[44:46])
	info.LowestRecPPEM = binary.BigEndian.Uint16(b[46:48])
	info.FontDirectionHint = int16(binary.BigEndian.Uint16(b[48:50]))
	info.IndexToLocFormat = int16(binary.BigEndian.Uint16(b[50:52]))
	info.GlyphDataFormat = int16(binary.BigEndian.Uint16(b[52:54]))
	return info, true
}

// secs1904To1970 is the offset between the origin of OpenType LONGDATETIME
// values (1904-01-01) and the Unix epoch.
const secs1904To1970 = 2082844800

// LongDateTime converts an OpenType LONGDATETIME value, as found in fields
// Created and Modified, to a time.Time.
func LongDateTime(secs int64) time.Time {
	return time.Unix(secs-secs1904To1970, 0).UTC()
}
