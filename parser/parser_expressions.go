/*
File    : cc64/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/cc64/lexer"
)

// parseExpression climbs the precedence table starting from a prefix
// position. It is the Pratt core: parse one prefix expression, then
// keep folding in infix operators for as long as the next token binds
// more tightly than currPrecedence.
func (par *Parser) parseExpression(currPrecedence int) Expression {
	return par.parseInternal(currPrecedence)
}

// parseInternal is the canonical precedence-climbing loop. left is
// produced once by a unary (prefix) handler; each iteration then
// consumes one infix operator whose precedence is > currPrecedence
// and folds it onto left, so higher-precedence operators bind tighter
// by ending their own climb sooner and returning control to a lower
// frame.
func (par *Parser) parseInternal(currPrecedence int) Expression {
	unary, has := par.UnaryFuncs[par.CurrToken.Type]
	if !has {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: unexpected token: %s",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Type)
		par.addError(msg)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}

	for par.NextToken.Type != lexer.EOF_TYPE && currPrecedence < getPrecedence(&par.NextToken) {
		binary, has := par.BinaryFuncs[par.NextToken.Type]
		if !has {
			break
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseIntegerLiteral parses a decimal integer literal into an
// IntegerExpression.
func (par *Parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 32)
	if err != nil {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: invalid integer literal: %s",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal)
		par.addError(msg)
		return nil
	}
	return &IntegerExpression{Value: int32(value)}
}

// parseGroupedExpression parses a parenthesized expression: consume
// '(', parse at Lowest, require ')'.
func (par *Parser) parseGroupedExpression() Expression {
	par.advance()
	expr := par.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseUnaryExpression parses a leading '-' applied to its operand.
// Only unary minus is wired from the parser; dereference/reference
// are declared in the AST (UnaryOperator) but unreachable here.
func (par *Parser) parseUnaryExpression() Expression {
	par.advance()
	operand := par.parseExpression(Product)
	if operand == nil {
		return nil
	}
	return &UnaryExpression{Op: OpUnaryMinus, Expr: operand}
}

// parseIdentifierOrCall disambiguates a bare identifier from a call
// expression by checking whether the identifier is immediately
// followed by '('.
func (par *Parser) parseIdentifierOrCall() Expression {
	if par.NextToken.Type == lexer.LEFT_PAREN {
		return par.parseCallExpression()
	}
	return par.parseLocalVariable()
}

// parseLocalVariable resolves an identifier against the symbol table
// of the function currently being parsed. Unlike a call's callee
// name, a bare identifier always names a previously declared local or
// parameter; an unresolved name here is a real parse error.
func (par *Parser) parseLocalVariable() Expression {
	name := par.CurrToken.Literal
	local, ok := par.lookupLocal(name)
	if !ok {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: undefined variable: %s",
			par.CurrToken.Line, par.CurrToken.Column, name)
		par.addError(msg)
		return nil
	}
	return &LocalVariableExpression{Name: local.Name, Offset: local.Offset, Type: local.Type}
}

// parseCallExpression parses `calleeName(arg, arg, ...)`. The callee
// name is taken verbatim and never consulted against the symbol
// table: functions are resolved at link time, not by this compiler.
func (par *Parser) parseCallExpression() Expression {
	calleeName := par.CurrToken.Literal
	par.advance() // consume identifier, land on '('

	args := make([]Expression, 0)
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return &CallExpression{CalleeName: calleeName, Arguments: args}
	}

	par.advance()
	for {
		arg := par.parseExpression(Lowest)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance()
			par.advance()
			continue
		}
		break
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return &CallExpression{CalleeName: calleeName, Arguments: args}
}

// parseBinaryExpression parses an infix operator given its
// already-parsed left operand. This is where `>` and `>=` are
// normalized away: each is rewritten to its swapped `<`/`<=` form
// before a BinaryExpression is built, so no later stage, including
// code generation, ever has to special-case Gt or GtEq.
func (par *Parser) parseBinaryExpression(left Expression) Expression {
	var op BinaryOperator
	swap := false

	switch par.CurrToken.Type {
	case lexer.ASSIGN_OP:
		op = OpAssignment
	case lexer.PLUS_OP:
		op = OpPlus
	case lexer.MINUS_OP:
		op = OpMinus
	case lexer.MUL_OP:
		op = OpAsterisk
	case lexer.DIV_OP:
		op = OpSlash
	case lexer.LT_OP:
		op = OpLt
	case lexer.GT_OP:
		op, swap = OpLt, true
	case lexer.LE_OP:
		op = OpLtEq
	case lexer.GE_OP:
		op, swap = OpLtEq, true
	case lexer.EQ_OP:
		op = OpEq
	case lexer.NE_OP:
		op = OpNotEq
	default:
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: unexpected operator: %s",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Type)
		par.addError(msg)
		return nil
	}

	// Every operator here, including assignment, is left-associative:
	// the right operand is parsed at this operator's own precedence,
	// so a second operator at the same level is left for the caller's
	// climb to pick up rather than being swallowed here. `a = b = c`
	// therefore parses as `(a = b) = c`, a deliberate, documented
	// limitation that this language never needs to execute.
	precedence := getPrecedence(&par.CurrToken)
	par.advance()
	right := par.parseExpression(precedence)
	if right == nil {
		return nil
	}

	if swap {
		return &BinaryExpression{Lhs: right, Op: op, Rhs: left}
	}
	return &BinaryExpression{Lhs: left, Op: op, Rhs: right}
}
