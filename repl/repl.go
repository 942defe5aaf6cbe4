/*
File    : yada/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Yada interpreter.
The REPL provides an interactive environment where users can:
- Enter Yada code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input. Every
line is parsed and evaluated against one Scope shared across the whole
session, so a `let` on one line is visible to every later line — that
shared Scope is what lets closures and bindings survive across REPL turns.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/yada-lang/yada/eval"
	"github.com/yada-lang/yada/objects"
	"github.com/yada-lang/yada/parser"
	"github.com/yada-lang/yada/scope"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all
// the configuration needed to run an interactive session.
type Repl struct {
	Banner       string // ASCII art banner displayed at startup
	Version      string // Version string of the interpreter
	Author       string // Author contact information
	Line         string // Separator line for visual formatting
	License      string // Software license information
	Prompt       string // Command prompt shown to the user
	ShowBanner   bool   // whether to print Banner/version/license at startup
	MaxCallDepth int    // soft recursion guard passed to the evaluator
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:       banner,
		Version:      version,
		Author:       author,
		Line:         line,
		License:      license,
		Prompt:       prompt,
		ShowBanner:   true,
		MaxCallDepth: 10000,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Yada!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: it reads lines from stdin via readline,
// parses and evaluates each one against a single persistent Scope, and
// prints the resulting Value's display form, until '.exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	if r.ShowBanner {
		r.PrintBannerInfo(writer)
	}

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	objects.Writer = writer
	evaluator := eval.NewEvaluatorWithMaxCallDepth(r.MaxCallDepth)
	env := scope.NewScope(nil)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.executeLine(writer, line, evaluator, env)
	}
}

// executeLine parses and evaluates one line of REPL input, printing the
// resulting value's display form (or parse/runtime errors) to writer.
// Unlike file execution, the REPL never exits on error — it reports and
// continues so the user can correct a mistake on the next line.
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator, env *scope.Scope) {
	p := parser.New(line)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		redColor.Fprintf(writer, "ERROR: Parsing errors:\n")
		for _, msg := range errs {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.GetType() == objects.ErrorObj {
		redColor.Fprintf(writer, "%s\n", result.ToString())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
	writer.Write([]byte("\n"))
}
