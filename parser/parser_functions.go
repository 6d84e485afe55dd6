/*
File    : cc64/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/cc64/internal/ctypes"
	"github.com/akashmaji946/cc64/internal/symtab"
	"github.com/akashmaji946/cc64/lexer"
)

// newLocal declares name into the symbol table of the function
// currently being parsed and returns a LocalVariableExpression
// carrying its resolved frame offset. A declaration outside any
// function definition goes into a top-level table, created on first
// use; function definitions never share it.
func (par *Parser) newLocal(name string, typ ctypes.Type) *LocalVariableExpression {
	if par.table == nil {
		par.table = symtab.New()
	}
	local := par.table.Declare(name, typ)
	return &LocalVariableExpression{Name: local.Name, Offset: local.Offset, Type: local.Type}
}

// lookupLocal resolves name against the function currently being
// parsed (or the top-level table outside any function). It reports
// false both when the name is unknown and when no table exists yet
// (e.g. a stray identifier at top level before any declaration).
func (par *Parser) lookupLocal(name string) (symtab.Local, bool) {
	if par.table == nil {
		return symtab.Local{}, false
	}
	return par.table.Lookup(name)
}

// parseFunctionDefinition parses `returnType name(params) { body }`.
// It opens a fresh per-function symbol table for the duration of the
// parameter list and body: par.table is always reset to empty here
// rather than carried over from whatever function was parsed
// previously, since this language has no nested function scopes for
// one function's locals to leak into another's.
func (par *Parser) parseFunctionDefinition(returnType ctypes.Type, name string) Statement {
	outer := par.table
	par.table = symtab.New()
	defer func() { par.table = outer }()

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	args := make([]*LocalVariableExpression, 0)
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		for {
			par.advance()
			paramType, ok := par.parseType()
			if !ok {
				return nil
			}
			if !par.expectAdvance(lexer.IDENTIFIER_ID) {
				return nil
			}
			paramName := par.CurrToken.Literal
			args = append(args, par.newLocal(paramName, paramType))

			if par.NextToken.Type == lexer.COMMA_DELIM {
				par.advance()
				continue
			}
			break
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	body := make([]Statement, 0)
	par.advance() // consume '{'
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt == nil {
			return nil
		}
		body = append(body, stmt)
		par.advance()
	}
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.addError("PARSER ERROR: unterminated function body, expected '}'")
		return nil
	}

	return &FunctionDefinition{
		Name:       name,
		ReturnType: returnType,
		Arguments:  args,
		Body:       body,
		FrameSize:  par.table.FrameSize(),
	}
}
