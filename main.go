/*
File    : yada/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

A small standalone demo binary (separate from main/main.go, the real CLI
entry point) that parses a handful of sample Yada expressions and walks
the resulting AST with PrintingVisitor, exercising the pretty-printer
described in spec.md §8's round-trip property from the outside.
*/
package main

import (
	"fmt"

	"github.com/yada-lang/yada/parser"
)

func main() {
	fmt.Println("Hello, Yada!")

	samples := []string{
		`1 + 2 * 3`,
		`!!true`,
		`4 - (1 + 2) + 2 + 3 * 4 / 2`,
		`4 - (1 + 2) + (2 + 3) * 4 / 2`,
	}

	for _, src := range samples {
		program := parser.New(src).ParseProgram()
		visitor := &PrintingVisitor{}
		visitor.VisitProgram(program)
		fmt.Printf("%s\n%s\n", program.String(), visitor.String())
	}
}
