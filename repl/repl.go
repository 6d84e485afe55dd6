/*
File    : cc64/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive Read-Compile-Print Loop for
cc64: it reads one line, compiles it as a standalone source string,
and prints the resulting assembly, using readline for history and
line editing.
*/
package repl

import (
	"bytes"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/cc64/codegen"
	"github.com/akashmaji946/cc64/parser"
)

const prompt = "cc64 >>> "

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
)

// Repl is a minimal, stateless compile-one-line-at-a-time session:
// every line is compiled independently, since cc64 has no persistent
// evaluation environment to carry between inputs.
type Repl struct {
	Prompt string
}

// New creates a Repl with the default prompt.
func New() *Repl {
	return &Repl{Prompt: prompt}
}

// Start runs the read-compile-print loop until EOF, a readline error,
// or the user types ".exit".
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	blueColor.Fprintln(writer, "cc64 interactive compiler, type a statement, or '.exit' to quit")

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.compileAndPrint(writer, line)
	}
}

// compileAndPrint parses and generates assembly for one line,
// printing either the assembly or the first parse error. Unlike file
// mode, the loop continues after an error so the user can retype it.
func (r *Repl) compileAndPrint(writer io.Writer, line string) {
	par := parser.NewParser(line)
	root := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	var buf bytes.Buffer
	gen := codegen.NewGenerator(&buf)
	if err := gen.Generate(root); err != nil {
		redColor.Fprintf(writer, "[CODEGEN ERROR] %v\n", err)
		return
	}
	yellowColor.Fprint(writer, buf.String())
}
