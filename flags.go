package fontid

import "strings"

// FontIDFlags describe how the fields of a FontID were obtained.
// They tell about provenance, not about the font's content.
type FontIDFlags uint8

const (
	// HasPostScriptName is set if FontID.Name is a true PostScript name
	// and not some other kind of name substituted for it.
	HasPostScriptName FontIDFlags = 0x01
	// IsOpenType is set if the FontID has been derived from an OpenType
	// 'head' table.
	IsOpenType FontIDFlags = 0x02

	allFlags = HasPostScriptName | IsOpenType
)

var flagNames = []struct {
	flag FontIDFlags
	name string
}{
	{HasPostScriptName, "HasPostScriptName"},
	{IsOpenType, "IsOpenType"},
}

// Contains reports whether all flags of f are set.
func (flags FontIDFlags) Contains(f FontIDFlags) bool {
	return flags&f == f
}

// Union returns the combination of flags and f.
// Bits outside of the defined flags are dropped.
func (flags FontIDFlags) Union(f FontIDFlags) FontIDFlags {
	return (flags | f) & allFlags
}

func (flags FontIDFlags) String() string {
	if flags&allFlags == 0 {
		return "0"
	}
	var names []string
	for _, fn := range flagNames {
		if flags.Contains(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
