package fontid

import (
	"fmt"
	"hash/crc32"
)

// OpenTypeTagHead is the tag of OpenType table 'head'.
const OpenTypeTagHead uint32 = 0x68656164

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// FontID is an identifier for a font. Two FontIDs denote the same font if
// name, revision and hash are equal, see SameFont.
//
// FontID is a value type and immutable by convention; a copy is a clone.
type FontID struct {
	// A name describing the font. This is usually the PostScript name, but if the
	// font does not have a PostScript name it may be some other kind of name.
	Name     string
	Revision FontRevision // revision number from table 'head'
	Hash     uint32       // CRC-32C of table 'head'
	Flags    FontIDFlags  // provenance of the fields
}

// FromOpenTypeHeadTable creates a FontID from a name and the raw bytes of
// table 'head'. The caller tells whether name has been taken from the PostScript
// name entry of the font's 'name' table.
//
// The hash covers all of head, including the bytes which also hold the revision.
// Identical arguments will always yield identical FontIDs.
func FromOpenTypeHeadTable(name string, head []byte, nameIsPostScript bool) FontID {
	flags := IsOpenType
	if nameIsPostScript {
		flags = flags.Union(HasPostScriptName)
	}
	return FontID{
		Name:     name,
		Revision: DecodeRevision(head),
		Hash:     HashHeadTable(head),
		Flags:    flags,
	}
}

// HashHeadTable returns the CRC-32C checksum of the raw bytes of table 'head'.
func HashHeadTable(head []byte) uint32 {
	return crc32.Checksum(head, castagnoli)
}

// SameFont reports whether id and other have equal name, revision and hash.
// Flags do not take part in the comparison.
func (id FontID) SameFont(other FontID) bool {
	return id.Name == other.Name && id.Revision == other.Revision && id.Hash == other.Hash
}

// String returns the canonical text form "name/revision/hash".
func (id FontID) String() string {
	return fmt.Sprintf("%s/%s/%08x", id.Name, id.Revision, id.Hash)
}

// GoString is identical to String.
func (id FontID) GoString() string {
	return id.String()
}
