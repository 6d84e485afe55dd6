/*
File    : cc64/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/cc64/internal/ctypes"

// NodeVisitor is implemented by anything that walks the AST produced
// by Parse, currently the code generator. Each concrete node type
// calls back into exactly one Visit method from its Accept.
type NodeVisitor interface {
	VisitProgram(node *Program)
	VisitIfStatement(node *IfStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitForStatement(node *ForStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitFunctionDefinition(node *FunctionDefinition)
	VisitInitDeclaration(node *InitDeclaration)

	VisitLocalVariableExpression(node *LocalVariableExpression)
	VisitIntegerExpression(node *IntegerExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitCallExpression(node *CallExpression)
}

// Statement is any node that can appear in a block's statement list.
type Statement interface {
	Accept(v NodeVisitor)
	statementNode()
}

// Expression is any node that produces a value (or an lvalue, under
// code generation's address-mode emission). Every Expression is also
// usable as a Statement, mirroring how an expression followed by ';'
// is itself a statement.
type Expression interface {
	Statement
	expressionNode()
}

// Program is the root of the AST: a translation unit, i.e. a flat
// sequence of top-level statements (in practice, function
// definitions and top-level declarations).
type Program struct {
	Statements []Statement
}

func (p *Program) Accept(v NodeVisitor) { v.VisitProgram(p) }

// IfStatement is `if (condition) consequence [else alternative]`.
// Alternative is nil when there is no else branch.
type IfStatement struct {
	Condition   Expression
	Consequence Statement
	Alternative Statement
}

func (n *IfStatement) Accept(v NodeVisitor) { v.VisitIfStatement(n) }
func (n *IfStatement) statementNode()       {}

// WhileStatement is `while (condition) body`.
type WhileStatement struct {
	Condition Expression
	Body      Statement
}

func (n *WhileStatement) Accept(v NodeVisitor) { v.VisitWhileStatement(n) }
func (n *WhileStatement) statementNode()       {}

// ForStatement is `for (init; condition; post) body`, where each of
// init, condition, and post may be absent.
type ForStatement struct {
	Init      Statement  // nil if omitted
	Condition Expression // nil if omitted
	Post      Statement  // nil if omitted
	Body      Statement
}

func (n *ForStatement) Accept(v NodeVisitor) { v.VisitForStatement(n) }
func (n *ForStatement) statementNode()       {}

// BlockStatement is a brace-delimited sequence of statements; it is
// its own lexical unit for code generation purposes but declares no
// new symbol table (see internal/symtab doc comment).
type BlockStatement struct {
	Statements []Statement
}

func (n *BlockStatement) Accept(v NodeVisitor) { v.VisitBlockStatement(n) }
func (n *BlockStatement) statementNode()       {}

// ReturnStatement is `return expr;`.
type ReturnStatement struct {
	Value Expression
}

func (n *ReturnStatement) Accept(v NodeVisitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) statementNode()       {}

// ExpressionStatement wraps a bare expression used as a statement,
// e.g. `a = a + 1;` or a discarded call `foo();`.
type ExpressionStatement struct {
	Expr Expression
}

func (n *ExpressionStatement) Accept(v NodeVisitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) statementNode()       {}

// FunctionDefinition is `returnType name(params) { body }`. Arguments
// holds the parameter declarations, each already resolved to a
// LocalVariableExpression with its frame offset assigned.
type FunctionDefinition struct {
	Name       string
	ReturnType ctypes.Type
	Arguments  []*LocalVariableExpression
	Body       []Statement
	FrameSize  int // total bytes of local storage, filled in once the body is parsed
}

func (n *FunctionDefinition) Accept(v NodeVisitor) { v.VisitFunctionDefinition(n) }
func (n *FunctionDefinition) statementNode()       {}

// InitDeclaration is a local-variable declaration, optionally with an
// initializer expression: `int x;` or `int x = 1 + 2;`.
type InitDeclaration struct {
	Name   string
	Offset int
	Type   ctypes.Type
	Init   Expression // nil if there is no initializer
}

func (n *InitDeclaration) Accept(v NodeVisitor) { v.VisitInitDeclaration(n) }
func (n *InitDeclaration) statementNode()       {}

// LocalVariableExpression references an already-declared local or
// parameter by its resolved frame offset.
type LocalVariableExpression struct {
	Name   string
	Offset int
	Type   ctypes.Type
}

func (n *LocalVariableExpression) Accept(v NodeVisitor) { v.VisitLocalVariableExpression(n) }
func (n *LocalVariableExpression) statementNode()       {}
func (n *LocalVariableExpression) expressionNode()      {}

// IntegerExpression is an integer literal.
type IntegerExpression struct {
	Value int32
}

func (n *IntegerExpression) Accept(v NodeVisitor) { v.VisitIntegerExpression(n) }
func (n *IntegerExpression) statementNode()       {}
func (n *IntegerExpression) expressionNode()      {}

// BinaryOperator enumerates the binary operators that survive
// parsing. There is deliberately no Gt/GtEq variant: parseBinaryExpression
// normalizes `a > b` into `b < a` and `a >= b` into `b <= a` before a
// BinaryExpression is ever constructed, so code generation only ever
// has to emit Lt and LtEq comparisons.
type BinaryOperator string

const (
	OpAssignment BinaryOperator = "="
	OpPlus       BinaryOperator = "+"
	OpMinus      BinaryOperator = "-"
	OpAsterisk   BinaryOperator = "*"
	OpSlash      BinaryOperator = "/"
	OpLt         BinaryOperator = "<"
	OpLtEq       BinaryOperator = "<="
	OpEq         BinaryOperator = "=="
	OpNotEq      BinaryOperator = "!="
)

// BinaryExpression is `lhs op rhs`.
type BinaryExpression struct {
	Lhs Expression
	Op  BinaryOperator
	Rhs Expression
}

func (n *BinaryExpression) Accept(v NodeVisitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) statementNode()       {}
func (n *BinaryExpression) expressionNode()      {}

// UnaryOperator enumerates the unary operators reachable from the
// parser. OpDereference and OpReference exist in the type system only
// so ctypes.Pointer has a matching operator vocabulary to reason
// about; they are never produced by the parser.
type UnaryOperator string

const (
	OpUnaryMinus  UnaryOperator = "-"
	OpDereference UnaryOperator = "*"
	OpReference   UnaryOperator = "&"
)

// UnaryExpression is `op expr`.
type UnaryExpression struct {
	Op   UnaryOperator
	Expr Expression
}

func (n *UnaryExpression) Accept(v NodeVisitor) { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) statementNode()       {}
func (n *UnaryExpression) expressionNode()      {}

// CallExpression is `calleeName(arguments...)`. The callee name is
// not resolved against the symbol table: it names a function, not a
// local variable, and functions are not first-class values here.
type CallExpression struct {
	CalleeName string
	Arguments  []Expression
}

func (n *CallExpression) Accept(v NodeVisitor) { v.VisitCallExpression(n) }
func (n *CallExpression) statementNode()       {}
func (n *CallExpression) expressionNode()      {}
