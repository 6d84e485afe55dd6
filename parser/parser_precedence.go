/*
File    : cc64/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/cc64/lexer"

// Precedence levels for the Pratt expression parser, lowest first.
// There are exactly five bindings; every other token either starts a
// new expression (prefix) or cannot follow one at all (Lowest wins
// the climb and parseInternal returns).
const (
	Lowest = iota
	Assignment
	Equals
	LessGreater
	Sum
	Product
)

// getPrecedence returns the infix binding power of tok, or Lowest if
// tok cannot continue an expression (e.g. ';', ')', EOF).
func getPrecedence(tok *lexer.Token) int {
	switch tok.Type {
	case lexer.ASSIGN_OP:
		return Assignment
	case lexer.EQ_OP, lexer.NE_OP:
		return Equals
	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return LessGreater
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return Sum
	case lexer.MUL_OP, lexer.DIV_OP:
		return Product
	default:
		return Lowest
	}
}

// unaryParseFunction parses a prefix position: the token the parser
// is currently sitting on starts an expression with no left operand.
type unaryParseFunction func() Expression

// binaryParseFunction parses an infix position given the
// already-parsed left operand.
type binaryParseFunction func(left Expression) Expression

// registerUnaryFuncs and registerBinaryFuncs populate the dispatch
// tables the Pratt loop in parseInternal consults, each taking a
// variadic list of token types so one handler can cover several
// tokens in a single registration call.
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, types ...lexer.TokenType) {
	for _, t := range types {
		par.UnaryFuncs[t] = fn
	}
}

func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, types ...lexer.TokenType) {
	for _, t := range types {
		par.BinaryFuncs[t] = fn
	}
}
