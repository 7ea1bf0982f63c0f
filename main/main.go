// Command orin is the entry point for the Orin interpreter.
//
// Usage:
//
//	orin              Start the interactive REPL
//	orin <file>       Execute the given Orin source file
//
// Any other argument count prints a usage message to stderr and exits
// with a nonzero status (§6).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/orin/eval"
	"github.com/akashmaji946/orin/parser"
	"github.com/akashmaji946/orin/repl"
)

// VERSION is the Orin interpreter version string.
var VERSION = "v0.1.0"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "orin >>> "

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		repler := repl.New(VERSION, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: orin [script]")
		os.Exit(64)
	}
}

// runFile reads, parses, and evaluates a single source file, exiting
// nonzero on any reported lexical, parse, or runtime error.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	statements := p.Parse()

	if p.HasErrors() {
		for _, msg := range p.GetErrors() {
			redColor.Fprintln(os.Stderr, msg)
		}
		os.Exit(65)
	}

	interp := eval.New(os.Stdout)
	result := interp.Interpret(statements)
	if eval.IsError(result) {
		redColor.Fprintln(os.Stderr, result.String())
		os.Exit(70)
	}
}
