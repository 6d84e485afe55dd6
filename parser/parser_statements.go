/*
File    : cc64/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/cc64/internal/ctypes"
	"github.com/akashmaji946/cc64/lexer"
)

// parseStatement dispatches on CurrToken to the statement-level parse
// function: control-flow keywords get their own parser, a type
// keyword starts a declaration or a function definition, everything
// else is an expression statement.
func (par *Parser) parseStatement() Statement {
	switch {
	case par.CurrToken.Type == lexer.IF_KEY:
		return par.parseIfStatement()
	case par.CurrToken.Type == lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case par.CurrToken.Type == lexer.FOR_KEY:
		return par.parseForStatement()
	case par.CurrToken.Type == lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case par.CurrToken.Type == lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.TYPE_KEYWORDS[par.CurrToken.Type]:
		return par.parseTypedStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseTypedStatement parses whatever follows a type keyword: either
// `type name;` / `type name = expr;` (a variable declaration) or
// `type name(params) { body }` (a function definition). The two are
// disambiguated by a single token of lookahead after the identifier.
func (par *Parser) parseTypedStatement() Statement {
	typ, ok := par.parseType()
	if !ok {
		return nil
	}
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	name := par.CurrToken.Literal

	switch par.NextToken.Type {
	case lexer.LEFT_PAREN:
		return par.parseFunctionDefinition(typ, name)
	case lexer.ASSIGN_OP, lexer.SEMICOLON_DELIM:
		return par.parseInitDeclaration(typ, name)
	default:
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected '(' or '=' or ';', got %s",
			par.NextToken.Line, par.NextToken.Column, par.NextToken.Type)
		par.addError(msg)
		return nil
	}
}

// parseInitDeclaration parses the remainder of a local-variable
// declaration, after its type and name have already been consumed.
// This is the one place new locals enter the symbol table, following
// new_local_var's exact offset formula (internal/symtab.Declare).
func (par *Parser) parseInitDeclaration(typ ctypes.Type, name string) Statement {
	local := par.newLocal(name, typ)

	var init Expression
	if par.NextToken.Type == lexer.ASSIGN_OP {
		par.advance() // consume '='
		par.advance() // move onto the initializer's first token
		init = par.parseExpression(Lowest)
		if init == nil {
			return nil
		}
		if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
			return nil
		}
	} else {
		par.advance() // consume ';'
	}

	return &InitDeclaration{Name: local.Name, Offset: local.Offset, Type: local.Type, Init: init}
}

// parseIfStatement parses `if (condition) consequence [else
// alternative]`. Else-if chains are just a nested IfStatement in the
// Alternative slot, parsed by recursing into parseIfStatement when the
// token after `else` is itself `if`.
func (par *Parser) parseIfStatement() Statement {
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	condition := par.parseExpression(Lowest)
	if condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	par.advance()
	consequence := par.parseStatement()
	if consequence == nil {
		return nil
	}

	node := &IfStatement{Condition: condition, Consequence: consequence}

	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()
		par.advance()
		alternative := par.parseStatement()
		if alternative == nil {
			return nil
		}
		node.Alternative = alternative
	}

	return node
}

// parseWhileStatement parses `while (condition) body`.
func (par *Parser) parseWhileStatement() Statement {
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	condition := par.parseExpression(Lowest)
	if condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}
	return &WhileStatement{Condition: condition, Body: body}
}

// parseForStatement parses `for (init; condition; post) body`, where
// each of the three clauses may be empty. Every statement-shaped
// clause (init) is expected to consume its own trailing ';', so the
// parser only ever inserts the ';' that separates expression-shaped
// clauses (condition) by hand.
func (par *Parser) parseForStatement() Statement {
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	var init Statement
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // Curr = ';'
	} else {
		par.advance()
		init = par.parseStatement()
		if init == nil {
			return nil
		}
	}

	var condition Expression
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance() // Curr = ';'
	} else {
		par.advance()
		condition = par.parseExpression(Lowest)
		if condition == nil {
			return nil
		}
		if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
			return nil
		}
	}

	var post Statement
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		post = par.parseExpressionStatementNoSemicolon()
		if post == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	return &ForStatement{Init: init, Condition: condition, Post: post, Body: body}
}

// parseReturnStatement parses `return expr;`.
func (par *Parser) parseReturnStatement() Statement {
	par.advance()
	value := par.parseExpression(Lowest)
	if value == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ReturnStatement{Value: value}
}

// parseBlockStatement parses a brace-delimited sequence of statements.
func (par *Parser) parseBlockStatement() Statement {
	block := &BlockStatement{Statements: make([]Statement, 0)}
	par.advance() // consume '{'

	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		par.advance()
	}

	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		msg := fmt.Sprintf("[%d:%d] PARSER ERROR: expected '}', got %s",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Type)
		par.addError(msg)
		return nil
	}

	return block
}

// parseExpressionStatement parses a bare expression followed by ';'.
func (par *Parser) parseExpressionStatement() Statement {
	expr := par.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ExpressionStatement{Expr: expr}
}

// parseExpressionStatementNoSemicolon parses a bare expression without
// requiring a trailing ';', used for a for-loop's post clause, which
// is terminated by ')' instead.
func (par *Parser) parseExpressionStatementNoSemicolon() Statement {
	expr := par.parseExpression(Lowest)
	if expr == nil {
		return nil
	}
	return &ExpressionStatement{Expr: expr}
}
