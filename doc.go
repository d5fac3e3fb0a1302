/*
Package fontid derives a stable identity for OpenType fonts.

Font files frequently lack a reliable unique identifier: PostScript names
collide or are missing, family names are ambiguous. A FontID is synthesized
from

▪︎ a human-readable name, usually the PostScript name of the font,

▪︎ the font revision stored in table 'head',

▪︎ a CRC-32C (Castagnoli) hash over the raw bytes of table 'head',

plus flags telling how the name was obtained.

Locating table 'head' and choosing a name is the job of the font loader
(see packages ot and otquery). This package performs no I/O.

The canonical text form of an identity is

	name/revision/hash

e.g., "Helvetica/1/0a3bc7f2", where the revision is printed as
"major[.minor]" and the hash as 8 lowercase hex digits. This form is meant
to be logged and displayed and must stay stable.

# Links

OpenType 'head' table:
https://docs.microsoft.com/en-us/typography/opentype/spec/head

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontid

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontid'
func tracer() tracing.Trace {
	return tracing.Select("fontid")
}
