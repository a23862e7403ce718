package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func kinds(tokens []Token) []TokenKind {
	var ks []TokenKind
	for _, tok := range tokens {
		ks = append(ks, tok.Kind)
	}
	return ks
}

func TestKeywordsAndOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"in", TokenIn},
		{"out", TokenOut},
		{"=", TokenEquals},
		{"*", TokenMultiply},
		{"+", TokenPlus},
		{"-", TokenMinus},
		{"/", TokenDivide},
	}

	for _, tt := range tests {
		tokens, ok := TokenizeLine(tt.input)
		be.True(t, ok)
		be.Equal(t, len(tokens), 1)
		be.Equal(t, tokens[0].Kind, tt.kind)
		be.Equal(t, tokens[0].Text, tt.input)
	}
}

func TestIntegerLiterals(t *testing.T) {
	tests := []string{"0", "42", "-7", "+7", "007", "2147483647", "-2147483648"}

	for _, input := range tests {
		tokens, ok := TokenizeLine(input)
		be.True(t, ok)
		be.Equal(t, tokens[0].Kind, TokenInteger)
		be.Equal(t, tokens[0].Text, input)
	}
}

func TestOperands(t *testing.T) {
	tests := []string{"x", "total", "_tmp", "a1", "In", "OUT", "-x", "%", "==", "x3y", "//"}

	for _, input := range tests {
		tokens, ok := TokenizeLine(input)
		be.True(t, ok)
		be.Equal(t, tokens[0].Kind, TokenOperand)
	}
}

func TestSignedOutOfRangeWordsAreOperands(t *testing.T) {
	// Only a leading digit commits a word to being an integer.
	for _, input := range []string{"-2147483649", "+2147483648", "-99999999999"} {
		tokens, ok := TokenizeLine(input)
		be.True(t, ok)
		be.Equal(t, tokens[0].Kind, TokenOperand)
		be.Equal(t, tokens[0].Text, input)
	}
}

func TestLexicalFailure(t *testing.T) {
	tests := []string{
		"3x",
		"x = 3x",
		"1.5",
		"2147483648", // does not fit in an int
		"0x10",
		"in 9lives",
	}

	for _, input := range tests {
		tokens, ok := TokenizeLine(input)
		be.True(t, !ok)
		be.True(t, tokens == nil)
	}
}

func TestTokenizeStatement(t *testing.T) {
	tokens, ok := TokenizeLine("x = 2 + y * -3")
	be.True(t, ok)
	be.Equal(t, kinds(tokens), []TokenKind{
		TokenOperand, TokenEquals, TokenInteger, TokenPlus, TokenOperand, TokenMultiply, TokenInteger,
	})
	be.Equal(t, tokens[6].Text, "-3")
}

func TestBlankLines(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", " \t  "} {
		tokens, ok := TokenizeLine(input)
		be.True(t, ok)
		be.Equal(t, len(tokens), 0)
	}
}

func TestSplitLine(t *testing.T) {
	be.Equal(t, SplitLine("  in x  "), []string{"in", "x"})
	be.Equal(t, SplitLine("x  =  1"), []string{"x", "", "=", "", "1"})
	be.Equal(t, SplitLine(""), []string{""})
	be.Equal(t, SplitLine("\x00in x\x1f\r"), []string{"in", "x"})
	// Only ASCII space and control characters are trimmed.
	be.Equal(t, SplitLine("\u00a0in x"), []string{"\u00a0in", "x"})
	// Tabs inside the line are not separators.
	be.Equal(t, SplitLine("in\tx"), []string{"in\tx"})
}

func TestRepeatedSpacesKeepTextAligned(t *testing.T) {
	tokens, ok := TokenizeLine("x  =   a  +  1")
	be.True(t, ok)
	be.Equal(t, len(tokens), 5)

	texts := []string{}
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	be.Equal(t, texts, []string{"x", "=", "a", "+", "1"})
	be.Equal(t, tokens[0].Column, 1)
	be.Equal(t, tokens[1].Column, 3)
	be.Equal(t, tokens[2].Column, 6)
}

func TestTokenKindString(t *testing.T) {
	be.Equal(t, TokenIn.String(), "in")
	be.Equal(t, TokenOperand.String(), "operand")
	be.Equal(t, TokenInteger.String(), "integer")
	be.Equal(t, TokenKind(99).String(), "TokenKind(99)")
}

func TestTokenKindClasses(t *testing.T) {
	for _, k := range []TokenKind{TokenPlus, TokenMinus, TokenMultiply, TokenDivide} {
		be.True(t, k.IsOperator())
		be.True(t, !k.IsTerm())
	}
	for _, k := range []TokenKind{TokenOperand, TokenInteger} {
		be.True(t, k.IsTerm())
		be.True(t, !k.IsOperator())
	}
	for _, k := range []TokenKind{TokenIn, TokenOut, TokenEquals} {
		be.True(t, !k.IsTerm())
		be.True(t, !k.IsOperator())
	}
}
