/*
File    : yada/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Yada interpreter. It provides two
modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a Yada source file from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Yada
code, configured by an optional .yadarc.yaml file (see config.LoadForSource).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/yada-lang/yada/config"
	"github.com/yada-lang/yada/eval"
	"github.com/yada-lang/yada/objects"
	"github.com/yada-lang/yada/parser"
	"github.com/yada-lang/yada/repl"
	"github.com/yada-lang/yada/scope"
)

// VERSION is the current version of the Yada interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 __   __        _
 \ \ / /_ _  __| |__ _
  \ V / _' |/ _' / _' |
   \_/\__,_|\__,_\__,_|
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Yada interpreter.
//
// Usage:
//
//	yada              - Start in REPL (interactive) mode
//	yada <file>       - Execute the specified Yada source file
//	yada --ast <file> - Print the parsed AST instead of evaluating it
//	yada --help       - Display help information
//	yada --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "--ast":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing file for --ast. Usage: yada --ast <file>\n")
				os.Exit(1)
			}
			runAST(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	startRepl()
}

func showHelp() {
	cyanColor.Println("Yada - A Small Expression-Oriented Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  yada                      Start interactive REPL mode")
	yellowColor.Println("  yada <path-to-file>       Execute a Yada file (.yada)")
	yellowColor.Println("  yada --ast <path-to-file> Print the parsed AST, skip evaluation")
	yellowColor.Println("  yada --help               Display this help message")
	yellowColor.Println("  yada --version            Display version information")
	cyanColor.Println("")
	cyanColor.Println("CONFIGURATION:")
	yellowColor.Printf("  Looks for %s beside the file (current directory in REPL mode),\n", config.FileName)
	yellowColor.Println("  then in $HOME, to set prompt/banner/color/maxCallDepth. Missing file -> defaults.")
}

func showVersion() {
	cyanColor.Println("Yada - A Small Expression-Oriented Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// startRepl loads configuration relevant to the current directory and
// launches the interactive REPL on stdin/stdout.
func startRepl() {
	cfg, err := config.LoadForSource("")
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		cfg = config.Default()
	}
	applyColorSetting(cfg)

	r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, cfg.Prompt)
	r.ShowBanner = cfg.Banner
	r.MaxCallDepth = cfg.MaxCallDepth
	r.Start(os.Stdin, os.Stdout)
}

// runFile reads and executes a Yada source file. Parse errors are printed
// in the §6 format and exit the process non-zero; a runtime Error value is
// an ordinary successful evaluation (per §7, it is data, not a fault) and
// is simply printed in its display form with a zero exit code.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	cfg, err := config.LoadForSource(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		cfg = config.Default()
	}
	applyColorSetting(cfg)

	executeSource(string(fileContent), cfg)
}

func executeSource(source string, cfg config.Config) {
	p := parser.New(source)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		redColor.Fprintf(os.Stderr, "ERROR: Parsing errors:\n")
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "\t%s\n", msg)
		}
		os.Exit(1)
	}

	objects.Writer = os.Stdout
	evaluator := eval.NewEvaluatorWithMaxCallDepth(cfg.MaxCallDepth)
	env := scope.NewScope(nil)

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}
	if result.GetType() != objects.NullObj {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.ToString())
	}
}

// runAST parses fileName and prints the resulting tree via PrintingVisitor
// instead of evaluating it — a debugging aid for inspecting what the
// parser actually built.
func runAST(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	p := parser.New(string(fileContent))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		redColor.Fprintf(os.Stderr, "ERROR: Parsing errors:\n")
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "\t%s\n", msg)
		}
		os.Exit(1)
	}

	visitor := &PrintingVisitor{}
	visitor.VisitProgram(program)
	fmt.Print(visitor.String())
}

func applyColorSetting(cfg config.Config) {
	if !cfg.Color {
		color.NoColor = true
	}
}
