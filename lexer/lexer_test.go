/*
File    : cc64/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a test case for ConsumeTokens.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } ( ) [ ] , ; `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(COMMA_DELIM, ","),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: ` < <= > >= == != = `,
			ExpectedTokens: []Token{
				NewToken(LT_OP, "<"),
				NewToken(LE_OP, "<="),
				NewToken(GT_OP, ">"),
				NewToken(GE_OP, ">="),
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(ASSIGN_OP, "="),
			},
		},
		{
			Input: `void char short int long float double`,
			ExpectedTokens: []Token{
				NewToken(VOID_KEY, "void"),
				NewToken(CHAR_KEY, "char"),
				NewToken(SHORT_KEY, "short"),
				NewToken(INT_KEY, "int"),
				NewToken(LONG_KEY, "long"),
				NewToken(FLOAT_KEY, "float"),
				NewToken(DOUBLE_KEY, "double"),
			},
		},
		{
			Input: `if else while for return`,
			ExpectedTokens: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(WHILE_KEY, "while"),
				NewToken(FOR_KEY, "for"),
				NewToken(RETURN_KEY, "return"),
			},
		},
		{
			Input: `int *p; int **pp; int x = &y;`,
			ExpectedTokens: []Token{
				NewToken(INT_KEY, "int"),
				NewToken(MUL_OP, "*"),
				NewToken(IDENTIFIER_ID, "p"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_KEY, "int"),
				NewToken(MUL_OP, "*"),
				NewToken(MUL_OP, "*"),
				NewToken(IDENTIFIER_ID, "pp"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_KEY, "int"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(AMP_OP, "&"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `
			int main() {
				int a = 1;
				int b = 2;
				if (a <= b) {
					return a + b;
				} else {
					while (a < b) {
						a = a * b + 2;
					}
					return a;
				}
			}
			`,
			ExpectedTokens: []Token{
				NewToken(INT_KEY, "int"),
				NewToken(IDENTIFIER_ID, "main"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(INT_KEY, "int"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(INT_KEY, "int"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(LE_OP, "<="),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(ELSE_KEY, "else"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(WHILE_KEY, "while"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(LT_OP, "<"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(MUL_OP, "*"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

func TestNewLexer_LineColumnTracking(t *testing.T) {
	lex := NewLexer("int a;\nint b;")
	tokens := lex.ConsumeTokens()

	assert.Equal(t, 1, tokens[0].Line)
	// "int" on the second line
	assert.Equal(t, 2, tokens[3].Line)
}

func TestNewLexer_InvalidCharacter(t *testing.T) {
	lex := NewLexer(`@`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}
