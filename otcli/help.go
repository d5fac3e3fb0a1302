package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, cmd Command) (error, bool) {
	help(cmd.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "id", "fontid":
		pterm.Info.Println("Font ID")
		pterm.Println(`
	A font ID is derived from table 'head' and a name:

	    name/revision/hash

	name      PostScript name, or full/family name if there is none
	revision  fontRevision of table 'head', printed as major[.minor]
	hash      CRC-32C of table 'head', 8 hex digits

	Flags tell whether the name is a true PostScript name.
	`)
	case "head":
		pterm.Info.Println("Table 'head'")
		pterm.Println(`
	Font header table, 54 bytes. fontRevision is a 16.16 fixed-point number
	at offset 4, set by the font manufacturer.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load <path>[#index]   load a font (index selects a font in a collection)
	id                    show the font ID
	head                  show decoded table 'head'
	names                 show font names
	tables                list the font's tables
	help [id|head]        help on a topic
	quit                  leave (or <ctrl>D)
	`)
	}
}
