/*
File    : gomix-lite/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Command gomix drives the gomix-lite scanner, parser, and evaluator from
the command line (spec.md §4.6): `tokenize <file>`, `parse <file>`,
`evaluate <file>`, and the supplemental `repl` mode go-mix's own main
already exposed as a REPL entry point. Exit codes follow spec.md §6: 0
success, 65 a scanner/parser error, 70 a runtime error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/eval"
	"github.com/akashmaji946/gomix-lite/parser"
	"github.com/akashmaji946/gomix-lite/repl"
	"github.com/fatih/color"
)

const (
	version = "0.1.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	line    = "----------------------------------------"
	banner  = `
   ____  ___    __  ____   __   _       __  __ ______
  / ___|/ _ \  |  \/  (_) \ \ / /      | |  \/  |  ____|
 | |  _| | | | | |\/| |>< \ V /______  | |\/| | |__
 | |_| | |_| | | |  | |_  | |  |______| | |  | |  __|
  \____|\___/  |_|  |_(_) |_|          |_|  |_|_|
`
)

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gomix <tokenize|parse|evaluate> <filename>  |  gomix repl")
		os.Exit(1)
	}

	command := os.Args[1]

	if command == "repl" {
		r := repl.New(banner, version, author, line, license, "gomix >>> ")
		r.Start(os.Stdout)
		return
	}

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: gomix <tokenize|parse|evaluate> <filename>")
		os.Exit(1)
	}
	filename := os.Args[2]

	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file %s\n", filename)
		os.Exit(1)
	}

	switch command {
	case "tokenize":
		runTokenize(string(source))
	case "parse":
		runParse(string(source))
	case "evaluate":
		runEvaluate(string(source))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		os.Exit(1)
	}
}

// runTokenize scans the whole file, prints every token (including EOF),
// and exits 65 if any scanner error was recorded (spec.md §4.6).
func runTokenize(source string) {
	par := parser.New(source)
	for _, tok := range par.AllTokens() {
		fmt.Println(tok.String())
	}
	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(65)
	}
}

// runParse scans and parses the file as a single expression, printing its
// Lisp-style pretty-print. Exits 65 on any scanner or parser error.
func runParse(source string) {
	par := parser.New(source)
	expr := par.ParseExpression()

	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(65)
	}
	if expr != nil {
		fmt.Println(ast.Print(expr))
	}
}

// runEvaluate scans and parses the file as a full program. If the program
// is exactly one bare expression statement, it evaluates that expression
// and prints its "interpretation"-formatted result; otherwise it executes
// every statement for effect. Exit 65 on parse error, 70 on runtime error
// (spec.md §4.6).
func runEvaluate(source string) {
	par := parser.New(source)
	stmts := par.ParseProgram()

	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(65)
	}

	evaluator := eval.New()

	if par.IsBareExpression() {
		exprStmt := stmts[0].(*ast.ExpressionStmt)
		value, err := evaluator.EvalExpression(exprStmt.Expr)
		if err != nil {
			reportRuntimeError(err)
		}
		fmt.Println(value.ToString())
		return
	}

	if err := evaluator.Run(stmts); err != nil {
		reportRuntimeError(err)
	}
}

func reportRuntimeError(err error) {
	redColor.Fprintln(os.Stderr, err.Error())
	os.Exit(70)
}
