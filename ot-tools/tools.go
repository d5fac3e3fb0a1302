package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/fontid"
	"github.com/npillmayer/fontid/internal/fontload"
	"github.com/npillmayer/fontid/otquery"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for deriving and inspecting OpenType font identities.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("id").
		SetDescription("Print the identity (name/revision/hash) of one or more OpenType fonts.").
		SetShortDescription("font identity").
		AddArgument("fonts...", "OpenType font file paths", "").
		AddFlag("index,i", "font index within a font collection", commando.Int, 0).
		AddFlag("table,T", "print a table with flags and revision details", commando.Bool, nil).
		SetAction(runIDCommand)

	commando.
		Register("head").
		SetDescription("Print the decoded 'head' table of an OpenType font.").
		SetShortDescription("table 'head'").
		AddArgument("font", "OpenType font file path", "").
		AddFlag("index,i", "font index within a font collection", commando.Int, 0).
		SetAction(runHeadCommand)

	commando.
		Register("revision").
		SetDescription("Render a raw 16.16 font revision value (e.g. 0x00010005) as version text.").
		SetShortDescription("render revision").
		AddArgument("value", "raw revision value, decimal or 0x-prefixed hex", "").
		SetAction(runRevisionCommand)

	commando.Parse(nil)
}

func runIDCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	paths := splitArgs(args["fonts"].Value)
	if len(paths) == 0 {
		fatalf("font path is required")
	}
	index := mustFlagInt(flags["index"], "index")
	asTable := mustFlagBool(flags["table"], "table")
	data := pterm.TableData{{"Font", "Name", "Revision", "Raw", "Hash", "Flags"}}
	failed := 0
	for _, path := range paths {
		f, err := fontload.LoadOpenTypeFontIndex(path, index)
		if err != nil {
			pterm.Error.Println(err)
			failed++
			continue
		}
		id := f.ID
		if !asTable {
			fmt.Println(id)
			continue
		}
		data = append(data, []string{
			path,
			id.Name,
			id.Revision.String(),
			fmt.Sprintf("%#08x", uint32(id.Revision.Raw())),
			fmt.Sprintf("%08x", id.Hash),
			id.Flags.String(),
		})
	}
	if asTable && len(data) > 1 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			fatalf("%v", err)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runHeadCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	path := strings.TrimSpace(args["font"].Value)
	if path == "" {
		fatalf("font path is required")
	}
	f, err := fontload.LoadOpenTypeFontIndex(path, mustFlagInt(flags["index"], "index"))
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	h, ok := otquery.HeadInfo(f.OT)
	if !ok {
		fatalf("table 'head' of %s is truncated", path)
	}
	fmt.Printf("Path: %s\n", path)
	fmt.Printf("ID: %s\n", f.ID)
	for _, line := range formatHead(h) {
		fmt.Println(line)
	}
}

func runRevisionCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	r, err := parseRevision(args["value"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(r)
}

// parseRevision parses a raw revision value. Hex values may use the full
// 32-bit range, i.e. 0xffff0000 is revision -1.
func parseRevision(s string) (fontid.FontRevision, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("revision value is required")
	}
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid revision %q: %v", s, err)
		}
		return fontid.FontRevision(int32(uint32(v))), nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid revision %q: %v", s, err)
	}
	return fontid.FontRevision(v), nil
}

func formatHead(h otquery.HeadTableInfo) []string {
	return []string{
		fmt.Sprintf("Version: %d.%d", h.MajorVersion, h.MinorVersion),
		fmt.Sprintf("Revision: %s (%#08x)", h.FontRevision, uint32(h.FontRevision.Raw())),
		fmt.Sprintf("Magic: %#08x (valid=%v)", h.MagicNumber, h.MagicNumber == otquery.HeadMagicNumber),
		fmt.Sprintf("UnitsPerEm: %d", h.UnitsPerEm),
		fmt.Sprintf("Created: %s", otquery.LongDateTime(h.Created).Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Modified: %s", otquery.LongDateTime(h.Modified).Format("2006-01-02 15:04:05")),
		fmt.Sprintf("BBox: [%d %d %d %d]", h.XMin, h.YMin, h.XMax, h.YMax),
		fmt.Sprintf("IndexToLocFormat: %d", h.IndexToLocFormat),
	}
}

// splitArgs splits a variadic argument, which commando joins by commas.
func splitArgs(spec string) []string {
	var parts []string
	for _, p := range strings.Split(spec, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	v, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return v
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}
