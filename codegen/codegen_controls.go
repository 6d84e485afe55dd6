/*
File    : cc64/codegen/codegen_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"fmt"

	"github.com/akashmaji946/cc64/parser"
)

// VisitIfStatement emits the condition, branches to the else arm (or
// past the whole statement, if there is none) when it is zero, then
// the consequence, unconditionally skipping the else arm.
func (g *Generator) VisitIfStatement(node *parser.IfStatement) {
	n := g.newLabel()
	elseLabel := fmt.Sprintf(".Lelse_%d", n)
	endLabel := fmt.Sprintf(".Lend_%d", n)

	g.emitValue(node.Condition)
	g.emit("  pop rax")
	g.emit("  cmp rax, 0")
	g.emit("  je %s", elseLabel)
	node.Consequence.Accept(g)
	g.emit("  jmp %s", endLabel)
	g.emit("%s:", elseLabel)
	if node.Alternative != nil {
		node.Alternative.Accept(g)
	}
	g.emit("%s:", endLabel)
}

// VisitWhileStatement emits the classic test-at-top loop: re-evaluate
// the condition at the top of each iteration, branch out when it is
// zero, otherwise run the body and jump back.
func (g *Generator) VisitWhileStatement(node *parser.WhileStatement) {
	n := g.newLabel()
	beginLabel := fmt.Sprintf(".Lbegin_%d", n)
	endLabel := fmt.Sprintf(".Lend_%d", n)

	g.emit("%s:", beginLabel)
	g.emitValue(node.Condition)
	g.emit("  pop rax")
	g.emit("  cmp rax, 0")
	g.emit("  je %s", endLabel)
	node.Body.Accept(g)
	g.emit("  jmp %s", beginLabel)
	g.emit("%s:", endLabel)
}

// VisitForStatement emits init once, then the same test-at-top shape
// as a while loop with post run at the end of every iteration. Any of
// init, condition, or post may be absent; an absent condition is
// treated as always-true.
func (g *Generator) VisitForStatement(node *parser.ForStatement) {
	if node.Init != nil {
		node.Init.Accept(g)
	}

	n := g.newLabel()
	beginLabel := fmt.Sprintf(".Lbegin_%d", n)
	endLabel := fmt.Sprintf(".Lend_%d", n)

	g.emit("%s:", beginLabel)
	if node.Condition != nil {
		g.emitValue(node.Condition)
		g.emit("  pop rax")
		g.emit("  cmp rax, 0")
		g.emit("  je %s", endLabel)
	}
	node.Body.Accept(g)
	if node.Post != nil {
		node.Post.Accept(g)
	}
	g.emit("  jmp %s", beginLabel)
	g.emit("%s:", endLabel)
}
