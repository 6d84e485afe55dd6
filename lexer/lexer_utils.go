/*
File: cc64/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import "unicode"

// isWhitespace checks if the given byte is whitespace (space, tab,
// newline, carriage return, form feed, vertical tab).
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric checks if the given byte is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

// isNumeric checks if the given byte is a decimal digit (0-9).
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is an alphabetic character.
func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// readNumber reads an integer literal from the source. Only decimal
// integers are part of this language; a leading run of digits is
// always INT_LIT.
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(INT_LIT, literal, line, column)
}

// readIdentifier reads an identifier or keyword from the source.
// Identifiers start with a letter or underscore and continue with
// letters, digits, or underscores; lookupIdent classifies the result.
func readIdentifier(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	lex.Advance()
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}
