/*
Package ot reads the table directory of OpenType fonts.

Package ot does not interpret tables. It locates them within a font's binary
data, checks that their bounds are sane, and hands out the raw bytes. Typed
views on single tables are provided by package otquery.

Single fonts (TrueType outlines, CFF outlines, Apple 'true') and font
collections (*.ttc, *.otc) are supported. For collections, the font to use is
selected with ParseOption FontIndex.

Table checksums are not validated.

# Links

OpenType font file structure:
https://docs.microsoft.com/en-us/typography/opentype/spec/otff

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
