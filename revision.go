package fontid

import (
	"encoding/binary"
	"strconv"
)

// revisionOffset is the byte offset of field fontRevision in table 'head',
// following majorVersion and minorVersion (uint16 each).
const revisionOffset = 4

// FontRevision is the revision number of a font, as stored in table 'head'.
// It is a signed 16.16 fixed-point number, set by the font manufacturer.
type FontRevision int32

// DecodeRevision reads the font revision from the raw bytes of table 'head'.
//
// The revision is located at offset 4. If head is too short to contain it,
// DecodeRevision returns revision 0. A malformed 'head' table must not
// prevent a font from being identified, therefore no error is reported.
func DecodeRevision(head []byte) FontRevision {
	if len(head) < revisionOffset+4 {
		tracer().Debugf("table 'head' too short for font revision: %d bytes", len(head))
		return FontRevision(0)
	}
	return FontRevision(int32(binary.BigEndian.Uint32(head[revisionOffset : revisionOffset+4])))
}

// Raw returns the undecoded 32-bit value.
func (r FontRevision) Raw() int32 {
	return int32(r)
}

// Major returns the major version component, i.e. the upper 16 bits.
func (r FontRevision) Major() int16 {
	return int16(int32(r) >> 16)
}

// Minor returns the minor version component, i.e. the lower 16 bits.
func (r FontRevision) Minor() int16 {
	return int16(r)
}

// String renders the revision as "major" if the minor component is 0,
// and as "major.minor" otherwise.
func (r FontRevision) String() string {
	s := strconv.Itoa(int(r.Major()))
	if minor := r.Minor(); minor != 0 {
		s += "." + strconv.Itoa(int(minor))
	}
	return s
}

// GoString is identical to String.
func (r FontRevision) GoString() string {
	return r.String()
}
