package otquery

import (
	"github.com/npillmayer/fontid"
	"github.com/npillmayer/fontid/ot"
	"golang.org/x/image/font/sfnt"
)

// FontID derives the identity of a font from its table 'head'.
//
// The PostScript name of the font is preferred as the identity's name. If it
// is missing, the full name or the family name is used, and as a last resort
// the fallback given by the caller. Only a PostScript name sets flag
// fontid.HasPostScriptName.
//
// FontID returns false if the font has no table 'head'.
func FontID(otf *ot.Font, fallback string) (fontid.FontID, bool) {
	head := otf.Table(ot.Tag(fontid.OpenTypeTagHead))
	if head == nil {
		tracer().Infof("font has no table 'head', cannot derive font ID")
		return fontid.FontID{}, false
	}
	name, isPostScript := PostScriptName(otf)
	if !isPostScript {
		name = substituteName(otf, fallback)
		tracer().Debugf("font has no PostScript name, using '%s'", name)
	}
	id := fontid.FromOpenTypeHeadTable(name, head.Binary(), isPostScript)
	tracer().Debugf("font ID = %s", id)
	return id, true
}

func substituteName(otf *ot.Font, fallback string) string {
	for _, nameID := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
		if name, ok := Name(otf, nameID); ok {
			return name
		}
	}
	return fallback
}
