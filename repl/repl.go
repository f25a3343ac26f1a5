/*
File    : gomix-lite/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements a Read-Eval-Print Loop for gomix-lite. The REPL
is a supplemental mode alongside the required tokenize/parse/evaluate CLI
contract (spec.md §4.6, SPEC_FULL.md §4): it lets a user enter statements
line by line, see each one evaluated immediately, and navigate history
with the arrow keys. Structure and coloring follow go-mix's repl package.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/eval"
	"github.com/akashmaji946/gomix-lite/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session —
// banner, version, prompt — the same fields go-mix's Repl carries.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given display configuration.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to gomix-lite!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until '.exit' or EOF. The evaluator
// persists across lines so that a `var` or `fun` declared on one line is
// visible on the next — the REPL is one long-lived program, not a series
// of independent ones.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.Writer = writer

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
		r.execute(writer, line, evaluator)
	}
}

// execute parses and evaluates one line, printing its result or error.
// Unlike file execution, the REPL never exits on error — it reports and
// returns to the prompt so the session can continue.
func (r *Repl) execute(writer io.Writer, line string, evaluator *eval.Evaluator) {
	par := parser.New(line)
	stmts := par.ParseProgram()

	if par.HasErrors() {
		for _, e := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if par.IsBareExpression() {
		exprStmt := stmts[0].(*ast.ExpressionStmt)
		value, err := evaluator.EvalExpression(exprStmt.Expr)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err.Error())
			return
		}
		yellowColor.Fprintf(writer, "%s\n", value.ToString())
		return
	}

	if err := evaluator.Run(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
