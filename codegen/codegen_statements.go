/*
File    : cc64/codegen/codegen_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import "github.com/akashmaji946/cc64/parser"

// VisitProgram emits every top-level statement in declaration order.
// In practice these are function definitions and the occasional
// top-level declaration; there is no separate "module" wrapper.
func (g *Generator) VisitProgram(node *parser.Program) {
	for _, stmt := range node.Statements {
		stmt.Accept(g)
	}
}

// VisitBlockStatement emits each statement in the block in order.
// Blocks do not open a new symtab scope (see internal/symtab's doc
// comment), so there is nothing to push/pop here beyond the emitted
// instructions themselves.
func (g *Generator) VisitBlockStatement(node *parser.BlockStatement) {
	for _, stmt := range node.Statements {
		stmt.Accept(g)
	}
}

// VisitExpressionStatement emits the expression as a value, then
// discards the leftover stack word with a bare pop.
func (g *Generator) VisitExpressionStatement(node *parser.ExpressionStatement) {
	g.emitValue(node.Expr)
	g.emit("  pop rax")
}

// VisitReturnStatement emits the return value into rax and jumps to
// the enclosing function's epilogue rather than inlining a second
// copy of the epilogue at every return site.
func (g *Generator) VisitReturnStatement(node *parser.ReturnStatement) {
	g.emitValue(node.Value)
	g.emit("  pop rax")
	g.emit("  jmp %s", g.epilogue)
}

// VisitInitDeclaration emits the initializer assignment when present.
// A declaration with no initializer needs no code: its slot already
// exists within the function's reserved frame.
func (g *Generator) VisitInitDeclaration(node *parser.InitDeclaration) {
	if node.Init == nil {
		return
	}
	lhs := &parser.LocalVariableExpression{Name: node.Name, Offset: node.Offset, Type: node.Type}
	assign := &parser.BinaryExpression{Lhs: lhs, Op: parser.OpAssignment, Rhs: node.Init}
	g.emitValue(assign)
	g.emit("  pop rax")
}
