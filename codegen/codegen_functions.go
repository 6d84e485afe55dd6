/*
File    : cc64/codegen/codegen_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"fmt"

	"github.com/akashmaji946/cc64/parser"
)

// VisitFunctionDefinition emits name's label, a prologue that
// reserves an aligned frame for its locals, parameter spilling from
// registers into that frame, the body, and an epilogue label that
// VisitReturnStatement jumps to from anywhere inside the body.
func (g *Generator) VisitFunctionDefinition(node *parser.FunctionDefinition) {
	outerEpilogue := g.epilogue
	g.epilogue = fmt.Sprintf(".Lepilogue_%s", node.Name)
	defer func() { g.epilogue = outerEpilogue }()

	g.emit("%s:", node.Name)
	g.emit("  push rbp")
	g.emit("  mov rbp, rsp")
	frame := g.alignFrame(node.FrameSize)
	if frame > 0 {
		g.emit("  sub rsp, %d", frame)
	}

	for i, param := range node.Arguments {
		if i >= len(g.registers) {
			break // more parameters than argument registers is undefined in this subset
		}
		g.emit("  mov [rbp - %d], %s", param.Offset, g.registers[i])
	}

	for _, stmt := range node.Body {
		stmt.Accept(g)
	}

	g.emit("%s:", g.epilogue)
	g.emit("  mov rsp, rbp")
	g.emit("  pop rbp")
	g.emit("  ret")
}
