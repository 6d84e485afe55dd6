/*
File    : cc64/codegen/codegen.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package codegen walks a parser.Program and emits x86-64 assembly in
// Intel syntax, following the stack-machine calling convention:
// every intermediate value is pushed onto the runtime stack, binary
// operators pop their two operands off it, and lvalues are produced
// by a dedicated address-emission path rather than a separate AST
// shape. The generator implements parser.NodeVisitor with one Visit
// method per node type, each appending assembly lines to a Generator
// instead of producing a runtime value.
package codegen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akashmaji946/cc64/parser"
)

// Generator holds all state needed to turn a Program into assembly
// text: the output sink, a monotonically increasing label counter
// (shared by every control-flow construct in the compilation, so
// labels never collide across functions), and the epilogue label of
// whichever function is currently being emitted so VisitReturnStatement
// knows where to jump.
type Generator struct {
	out          *bufio.Writer
	labelCounter int
	epilogue     string // label to jump to for `return` in the function being emitted
	addressMode  bool   // when true, the next expression visited is emitted as an lvalue

	registers  []string // integer argument-passing registers, in order
	frameAlign int      // stack-frame size is rounded up to a multiple of this
}

// Config carries the calling-convention knobs cmd/cc64's optional
// -config flag can override: which integer registers carry call
// arguments and what boundary stack frames are padded to. Zero values
// leave the System V AMD64 defaults in place.
type Config struct {
	Registers  []string
	FrameAlign int
}

// defaultArgumentRegisters is the System-V AMD64 integer-argument
// register order. Calls with more than six arguments are out of scope.
var defaultArgumentRegisters = []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// NewGenerator creates a Generator writing to w, using the standard
// System V AMD64 calling convention.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{
		out:        bufio.NewWriter(w),
		registers:  defaultArgumentRegisters,
		frameAlign: 16,
	}
}

// Configure overrides the calling-convention knobs a Generator was
// created with. Fields left zero in cfg keep their current value, so
// a config file that only sets FrameAlign does not also reset
// Registers.
func (g *Generator) Configure(cfg Config) {
	if len(cfg.Registers) > 0 {
		g.registers = cfg.Registers
	}
	if cfg.FrameAlign > 0 {
		g.frameAlign = cfg.FrameAlign
	}
}

// Generate emits the fixed preamble followed by prog's assembly, then
// flushes the output. It assumes prog is a well-formed AST: the
// generator never produces user-facing errors and trusts the
// parser's invariants.
func (g *Generator) Generate(prog *parser.Program) error {
	g.emit(".intel_syntax noprefix")
	g.emit(".global main")
	g.emit("")
	prog.Accept(g)
	return g.out.Flush()
}

// emit writes one assembly line, following format/args the same way
// fmt.Sprintf does.
func (g *Generator) emit(format string, args ...interface{}) {
	fmt.Fprintf(g.out, format+"\n", args...)
}

// newLabel allocates the next integer in the shared label counter.
func (g *Generator) newLabel() int {
	g.labelCounter++
	return g.labelCounter
}

// alignFrame rounds n up to the next multiple of g.frameAlign, the
// stack alignment a function's prologue must reserve.
func (g *Generator) alignFrame(n int) int {
	align := g.frameAlign
	if n%align == 0 {
		return n
	}
	return n + (align - n%align)
}
