/*
Package otquery provides typed queries on the tables of an OpenType font.

Queries decode tables directly from their raw bytes as located by package ot.
Missing or malformed tables never cause a panic; queries report them by
returning false or by skipping broken entries.

FontID connects a parsed font to package fontid: it selects the best name
available and derives the font's identity from table 'head'.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.query'
func tracer() tracing.Trace {
	return tracing.Select("font.query")
}
