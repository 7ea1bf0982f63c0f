// Package repl implements the Read-Eval-Print Loop for Orin.
//
// The REPL provides an interactive environment where users can enter
// Orin code, see it executed immediately, and navigate command history
// using the arrow keys. It uses readline for line editing and figlet
// for the startup banner.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/phillarmonic/figlet/figletlib"

	"github.com/akashmaji946/orin/eval"
	"github.com/akashmaji946/orin/parser"
)

var (
	blueColor = color.New(color.FgBlue)
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Repl holds the configuration needed for an interactive session.
type Repl struct {
	Version string
	Prompt  string
}

// New returns a Repl with the given version string and prompt.
func New(version, prompt string) *Repl {
	return &Repl{Version: version, Prompt: prompt}
}

// printBanner renders the startup banner with figlet and prints usage
// instructions. Falls back to a plain title if the embedded font can't
// be loaded.
func (r *Repl) printBanner(writer io.Writer) {
	loader := figletlib.NewEmbededLoader()
	font, err := loader.GetFontByName("standard")
	if err == nil {
		startColor, _ := figletlib.ParseColor("#00FF95")
		endColor, _ := figletlib.ParseColor("#00C2FF")
		gradientConfig := figletlib.ColorConfig{
			Mode:       figletlib.ColorModeGradient,
			StartColor: startColor,
			EndColor:   endColor,
		}
		figletlib.PrintColoredMsg("Orin", font, 80, font.Settings(), "left", gradientConfig)
	} else {
		blueColor.Fprintln(writer, "Orin")
	}

	cyanColor.Fprintf(writer, "Version %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type your code and press enter. Type '.exit' to quit.")
	cyanColor.Fprintln(writer, "Use up/down arrows to navigate command history.")
}

// Start begins the REPL main loop, blocking until the user exits or
// input ends. reader is accepted for interface symmetry with file-mode
// execution but line editing is driven by readline directly.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interp := eval.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, interp)
	}
}

// evalLine parses and evaluates a single line of input, printing any
// parse or runtime error in red. Unlike file mode, the REPL never exits
// on error — it returns to the prompt so the user can try again.
func (r *Repl) evalLine(writer io.Writer, line string, interp *eval.Evaluator) {
	p := parser.New(line)
	statements := p.Parse()

	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			redColor.Fprintln(writer, msg)
		}
		return
	}

	result := interp.Interpret(statements)
	if eval.IsError(result) {
		redColor.Fprintln(writer, result.String())
	}
}
