/*
File    : cc64/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream from lexer into a Program AST
// using a hand-written recursive-descent/Pratt parser. It performs
// the minimal semantic work needed while parsing: local variable
// offset allocation (via internal/symtab) and normalization of
// `>`/`>=` into swapped `<`/`<=`. It never performs error recovery:
// the first error encountered is recorded and parsing of the current
// construct stops.
package parser

import (
	"fmt"

	"github.com/akashmaji946/cc64/internal/ctypes"
	"github.com/akashmaji946/cc64/internal/symtab"
	"github.com/akashmaji946/cc64/lexer"
)

// Parser holds all state needed to turn a token stream into a
// Program: the lexer, a two-token lookahead window, the Pratt
// dispatch tables, and the symbol table for whichever function
// definition is currently being parsed.
type Parser struct {
	Lex        lexer.Lexer
	CurrToken  lexer.Token
	NextToken  lexer.Token
	UnaryFuncs map[lexer.TokenType]unaryParseFunction
	BinaryFuncs map[lexer.TokenType]binaryParseFunction

	table  *symtab.Table // the current function's locals; at top level, nil until the first declaration
	Errors []string
}

// NewParser creates a Parser over src and primes its two-token
// lookahead window.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex:         lexer.NewLexer(src),
		UnaryFuncs:  make(map[lexer.TokenType]unaryParseFunction),
		BinaryFuncs: make(map[lexer.TokenType]binaryParseFunction),
		Errors:      make([]string, 0),
	}
	par.init()
	return par
}

// init registers every prefix/infix handler and advances twice so
// CurrToken and NextToken are both populated before parsing starts.
func (par *Parser) init() {
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)
	par.registerUnaryFuncs(par.parseGroupedExpression, lexer.LEFT_PAREN)
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.MINUS_OP)
	par.registerUnaryFuncs(par.parseIdentifierOrCall, lexer.IDENTIFIER_ID)

	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.ASSIGN_OP,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP,
		lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP,
		lexer.EQ_OP, lexer.NE_OP,
	)

	par.advance()
	par.advance()
}

// advance slides the two-token lookahead window forward by one token.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectNext reports whether NextToken has the expected type, without
// consuming it.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	return par.NextToken.Type == expected
}

// expectAdvance requires NextToken to have the expected type; if it
// does, it advances past it and returns true, otherwise it records a
// positioned error and returns false.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if par.expectNext(expected) {
		par.advance()
		return true
	}
	msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected %s, got %s",
		par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type)
	par.addError(msg)
	return false
}

// addError appends msg to the accumulated error list.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether any parse error has been recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns every error recorded so far.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// Parse consumes the entire token stream and returns the resulting
// Program. Parsing stops at the first statement that fails to parse;
// callers should check HasErrors before trusting the returned
// Program.
func (par *Parser) Parse() *Program {
	program := &Program{Statements: make([]Statement, 0)}

	for par.CurrToken.Type != lexer.EOF_TYPE {
		if par.HasErrors() {
			break
		}
		stmt := par.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		if par.HasErrors() {
			break
		}
		par.advance()
	}

	return program
}

// parseType parses a base primitive-type keyword followed by zero or
// more trailing `*`, building up a ctypes.Pointer for each one. A
// pointer-typed declaration therefore parses and type-checks even
// though nothing in this language can dereference or take the
// address of a value at the expression level.
func (par *Parser) parseType() (ctypes.Type, bool) {
	var base ctypes.Primitive
	switch par.CurrToken.Type {
	case lexer.VOID_KEY:
		base = ctypes.Void
	case lexer.CHAR_KEY:
		base = ctypes.Char
	case lexer.SHORT_KEY:
		base = ctypes.Short
	case lexer.INT_KEY:
		base = ctypes.Int
	case lexer.LONG_KEY:
		base = ctypes.Long
	case lexer.FLOAT_KEY:
		base = ctypes.Float
	case lexer.DOUBLE_KEY:
		base = ctypes.Double
	default:
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected a type, got %s",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Type)
		par.addError(msg)
		return ctypes.Type{}, false
	}

	typ := ctypes.NewPrimitive(base)
	for par.NextToken.Type == lexer.MUL_OP {
		par.advance()
		typ = ctypes.NewPointer(typ)
	}
	return typ, true
}
