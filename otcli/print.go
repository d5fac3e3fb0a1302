package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/fontid/otquery"
	"github.com/pterm/pterm"
)

func idOp(intp *Intp, cmd Command) (error, bool) {
	id := intp.font.ID
	data := pterm.TableData{
		{"Field", "Value"},
		{"ID", id.String()},
		{"Name", id.Name},
		{"Revision", fmt.Sprintf("%s (major=%d, minor=%d)", id.Revision, id.Revision.Major(), id.Revision.Minor())},
		{"Hash", fmt.Sprintf("%08x", id.Hash)},
		{"Flags", id.Flags.String()},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

func headOp(intp *Intp, cmd Command) (error, bool) {
	h, ok := otquery.HeadInfo(intp.font.OT)
	if !ok {
		return errors.New("table 'head' is truncated"), false
	}
	data := pterm.TableData{
		{"Field", "Value"},
		{"Version", fmt.Sprintf("%d.%d", h.MajorVersion, h.MinorVersion)},
		{"FontRevision", fmt.Sprintf("%s (%#08x)", h.FontRevision, uint32(h.FontRevision.Raw()))},
		{"MagicNumber", fmt.Sprintf("%#08x", h.MagicNumber)},
		{"UnitsPerEm", strconv.Itoa(int(h.UnitsPerEm))},
		{"Created", otquery.LongDateTime(h.Created).String()},
		{"Modified", otquery.LongDateTime(h.Modified).String()},
		{"IndexToLocFormat", strconv.Itoa(int(h.IndexToLocFormat))},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

func namesOp(intp *Intp, cmd Command) (error, bool) {
	names := otquery.NameInfo(intp.font.OT)
	if len(names) == 0 {
		return errors.New("font has no decodable names"), false
	}
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := pterm.TableData{{"Name", "Value"}}
	for _, k := range keys {
		data = append(data, []string{k, names[k]})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

func tablesOp(intp *Intp, cmd Command) (error, bool) {
	otf := intp.font.OT
	data := pterm.TableData{{"Tag", "Offset", "Size"}}
	for _, tag := range otf.TableTags() {
		off, size := otf.Table(tag).Extent()
		data = append(data, []string{tag.String(), strconv.Itoa(int(off)), strconv.Itoa(int(size))})
	}
	for _, w := range otf.Warnings() {
		pterm.Warning.Println(w.String())
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

// splitFontIndex splits "path#index" into its components.
func splitFontIndex(arg string) (string, int, error) {
	i := strings.LastIndexByte(arg, '#')
	if i < 0 {
		return arg, 0, nil
	}
	index, err := strconv.Atoi(arg[i+1:])
	if err != nil || index < 0 {
		return "", 0, fmt.Errorf("invalid font index in %q", arg)
	}
	return arg[:i], index, nil
}
