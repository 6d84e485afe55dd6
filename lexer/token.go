/*
File    : cc64/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType represents the category of a lexical token in the source
// language. It is defined as a string to allow for easy comparison
// and debugging.
type TokenType string

// TokenType Constants:
// These constants define all possible token types recognized by the
// lexer, organized into logical groups for clarity and maintainability.
const (
	// Special Types
	EOF_TYPE     TokenType = "EOF"
	INVALID_TYPE TokenType = "INVALID"

	// Arithmetic Operators
	PLUS_OP  TokenType = "+"
	MINUS_OP TokenType = "-"
	MUL_OP   TokenType = "*"
	DIV_OP   TokenType = "/"

	// Comparison / Assignment Operators
	GT_OP     TokenType = ">"
	LT_OP     TokenType = "<"
	GE_OP     TokenType = ">="
	LE_OP     TokenType = "<="
	EQ_OP     TokenType = "=="
	NE_OP     TokenType = "!="
	ASSIGN_OP TokenType = "="

	// Address-of operator. The lexer produces it, but the parser registers
	// no handler for it; pointer types are written with a trailing '*'.
	AMP_OP TokenType = "&"

	// Keywords - control flow and declarations
	RETURN_KEY TokenType = "return"
	IF_KEY     TokenType = "if"
	ELSE_KEY   TokenType = "else"
	WHILE_KEY  TokenType = "while"
	FOR_KEY    TokenType = "for"

	// Keywords - primitive type names
	VOID_KEY   TokenType = "void"
	CHAR_KEY   TokenType = "char"
	SHORT_KEY  TokenType = "short"
	INT_KEY    TokenType = "int"
	LONG_KEY   TokenType = "long"
	FLOAT_KEY  TokenType = "float"
	DOUBLE_KEY TokenType = "double"

	// Identifiers and literals
	IDENTIFIER_ID TokenType = "Identifier"
	INT_LIT       TokenType = "IntLiteral"

	// Structural Tokens
	LEFT_PAREN    TokenType = "("
	RIGHT_PAREN   TokenType = ")"
	LEFT_BRACE    TokenType = "{"
	RIGHT_BRACE   TokenType = "}"
	LEFT_BRACKET  TokenType = "["
	RIGHT_BRACKET TokenType = "]"

	// Delimiters
	COMMA_DELIM     TokenType = ","
	SEMICOLON_DELIM TokenType = ";"
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their
// token types. The lexer consults this map after scanning an
// identifier-shaped run of characters, to decide whether it names a
// reserved word or a user-defined identifier.
var KEYWORDS_MAP = map[string]TokenType{
	"return": RETURN_KEY,
	"if":     IF_KEY,
	"else":   ELSE_KEY,
	"while":  WHILE_KEY,
	"for":    FOR_KEY,
	"void":   VOID_KEY,
	"char":   CHAR_KEY,
	"short":  SHORT_KEY,
	"int":    INT_KEY,
	"long":   LONG_KEY,
	"float":  FLOAT_KEY,
	"double": DOUBLE_KEY,
}

// TYPE_KEYWORDS is the subset of KEYWORDS_MAP that begin a type
// specifier. The parser consults this to decide whether a statement
// is a declaration.
var TYPE_KEYWORDS = map[TokenType]bool{
	VOID_KEY:   true,
	CHAR_KEY:   true,
	SHORT_KEY:  true,
	INT_KEY:    true,
	LONG_KEY:   true,
	FLOAT_KEY:  true,
	DOUBLE_KEY: true,
}

// Token represents a single lexical token in the source code. It
// carries the token's type, its literal text, and its position for
// error reporting.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// NewToken creates a Token with no position metadata. Used mainly by
// tests that only care about type/literal equality.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

// NewTokenWithMetadata creates a Token carrying full source position
// information, as produced by the lexer during scanning.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{Type: tokenType, Literal: literal, Line: line, Column: column}
}

// Print outputs a human-readable "literal:type" representation of the
// token to standard output. Used for debugging only.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent determines the token type for an identifier-shaped run
// of characters: a keyword token type if ident is reserved, otherwise
// IDENTIFIER_ID.
func lookupIdent(ident string) TokenType {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return IDENTIFIER_ID
}
