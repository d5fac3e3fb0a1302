package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontid/internal/fontload"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontid.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontid.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.fontid.cli":    "Info",
		"trace.font.load":     "Error",
		"trace.font.query":    "Error",
		"trace.font.opentype": "Error",
		"trace.fontid":        "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	index := flag.Int("index", 0, "Font index within a font collection")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)   // will set the correct level later
	pterm.Info.Println("Welcome to Font-ID CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("fontid > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if *fontname != "" { // font name provided by flag
		if err := intp.loadFont(*fontname, *index); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	if err := setTraceLevel(*tlevel); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

func setTraceLevel(name string) error {
	switch name {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", name)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font *fontload.ScalableFont
	repl *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "( no font )"
	}
	return fmt.Sprintf("( font=%s )", intp.font.Fontname)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		err, quit := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line: an op-code and an optional argument,
// which is the remainder of the line after the command word.
type Command struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	LOAD
	ID
	HEAD
	NAMES
	TABLES
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"load":   LOAD,
	"id":     ID,
	"head":   HEAD,
	"names":  NAMES,
	"tables": TABLES,
}

var opNames = []string{
	"quit",
	"help",
	"load",
	"id",
	"head",
	"names",
	"tables",
}

func parseCommand(line string) Command {
	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		return Command{code: HELP}
	}
	cmd := Command{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command: %s %q", opNames[cmd.code], cmd.arg)
	return cmd
}

var commandFn = map[int]func(*Intp, Command) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	LOAD:   loadOp,
	ID:     idOp,
	HEAD:   headOp,
	NAMES:  namesOp,
	TABLES: tablesOp,
}

func (intp *Intp) execute(cmd Command) (err error, stop bool) {
	f, ok := commandFn[cmd.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", cmd.code), false
	}
	if cmd.code > LOAD && intp.font == nil {
		return errors.New("no font loaded, use 'load <path>'"), false
	}
	return f(intp, cmd)
}

func quitOp(intp *Intp, cmd Command) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

// loadOp expects a font path, optionally followed by '#' and the index of
// the font within a collection, e.g. "load /fonts/Helvetica.ttc#2".
func loadOp(intp *Intp, cmd Command) (error, bool) {
	if cmd.arg == "" {
		return errors.New("usage: load <path>[#index]"), false
	}
	path, index, err := splitFontIndex(cmd.arg)
	if err != nil {
		return err, false
	}
	return intp.loadFont(path, index), false
}

func (intp *Intp) loadFont(path string, index int) error {
	f, err := fontload.LoadOpenTypeFontIndex(path, index)
	if err != nil {
		return err
	}
	intp.font = f
	tracer().Infof("loaded font %s", f.Fontname)
	pterm.Printf("font ID: %s\n", f.ID)
	return nil
}
