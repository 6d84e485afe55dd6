/*
File    : cc64/codegen/codegen_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"fmt"

	"github.com/akashmaji946/cc64/parser"
)

// emitValue emits expr so that exactly one 64-bit word representing
// its value is left on top of the runtime stack.
func (g *Generator) emitValue(expr parser.Expression) {
	saved := g.addressMode
	g.addressMode = false
	expr.Accept(g)
	g.addressMode = saved
}

// emitAddress emits expr so that the address of the memory location
// it denotes is left on top of the runtime stack. Only a
// LocalVariableExpression can serve as an lvalue in this language.
// Unary(Dereference, e) is reserved in the AST (parser.OpDereference)
// but never constructed by the parser, so no other case needs
// handling here.
func (g *Generator) emitAddress(expr parser.Expression) {
	saved := g.addressMode
	g.addressMode = true
	expr.Accept(g)
	g.addressMode = saved
}

// VisitIntegerExpression pushes a literal value.
func (g *Generator) VisitIntegerExpression(node *parser.IntegerExpression) {
	g.emit("  push %d", node.Value)
}

// VisitLocalVariableExpression emits either the variable's address
// (`rbp - offset`) or, when not in address mode, its value by
// dereferencing that address.
func (g *Generator) VisitLocalVariableExpression(node *parser.LocalVariableExpression) {
	g.emit("  lea rax, [rbp - %d]", node.Offset)
	g.emit("  push rax")
	if !g.addressMode {
		g.emit("  pop rax")
		g.emit("  mov rax, [rax]")
		g.emit("  push rax")
	}
}

// VisitUnaryExpression emits the only unary form the parser actually
// produces: arithmetic negation. OpDereference and OpReference are
// declared in parser.UnaryOperator but unreachable from
// parseUnaryExpression, so they have no case here.
func (g *Generator) VisitUnaryExpression(node *parser.UnaryExpression) {
	switch node.Op {
	case parser.OpUnaryMinus:
		g.emitValue(node.Expr)
		g.emit("  pop rax")
		g.emit("  neg rax")
		g.emit("  push rax")
	default:
		panic(fmt.Sprintf("codegen: unary operator %q is unreachable from the parser", node.Op))
	}
}

// VisitBinaryExpression emits assignment and arithmetic/comparison
// binary operators. Assignment is the one case whose left operand is
// emitted in address mode; every other operator emits both operands
// as values and combines them in rax.
func (g *Generator) VisitBinaryExpression(node *parser.BinaryExpression) {
	if node.Op == parser.OpAssignment {
		g.emitAddress(node.Lhs)
		g.emitValue(node.Rhs)
		g.emit("  pop rdi")
		g.emit("  pop rax")
		g.emit("  mov [rax], rdi")
		g.emit("  push rdi")
		return
	}

	g.emitValue(node.Lhs)
	g.emitValue(node.Rhs)
	g.emit("  pop rdi")
	g.emit("  pop rax")

	switch node.Op {
	case parser.OpPlus:
		g.emit("  add rax, rdi")
	case parser.OpMinus:
		g.emit("  sub rax, rdi")
	case parser.OpAsterisk:
		g.emit("  imul rax, rdi")
	case parser.OpSlash:
		g.emit("  cqo")
		g.emit("  idiv rdi")
	case parser.OpLt:
		g.emit("  cmp rax, rdi")
		g.emit("  setl al")
		g.emit("  movzx rax, al")
	case parser.OpLtEq:
		g.emit("  cmp rax, rdi")
		g.emit("  setle al")
		g.emit("  movzx rax, al")
	case parser.OpEq:
		g.emit("  cmp rax, rdi")
		g.emit("  sete al")
		g.emit("  movzx rax, al")
	case parser.OpNotEq:
		g.emit("  cmp rax, rdi")
		g.emit("  setne al")
		g.emit("  movzx rax, al")
	default:
		panic(fmt.Sprintf("codegen: binary operator %q is unreachable from the parser", node.Op))
	}
	g.emit("  push rax")
}

// VisitCallExpression emits each argument as a value in source order,
// pops them into the integer-argument registers (g.registers, the
// System-V order unless cmd/cc64's -config flag overrode it), calls
// the callee by name, and pushes its rax result. It does not emit any
// instructions to realign rsp to a 16-byte boundary before call; a
// deeply nested expression evaluated earlier in the same statement can
// leave rsp off that boundary at the point of the call.
func (g *Generator) VisitCallExpression(node *parser.CallExpression) {
	for _, arg := range node.Arguments {
		g.emitValue(arg)
	}
	for i := len(node.Arguments) - 1; i >= 0; i-- {
		g.emit("  pop %s", g.registers[i])
	}
	g.emit("  call %s", node.CalleeName)
	g.emit("  push rax")
}
