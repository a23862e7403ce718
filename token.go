package main

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenKind is the lexical category of one word on a line.
type TokenKind int

const (
	TokenIn TokenKind = iota
	TokenOut
	TokenEquals
	TokenMultiply
	TokenPlus
	TokenMinus
	TokenDivide
	TokenOperand
	TokenInteger
)

func (k TokenKind) String() string {
	switch k {
	case TokenIn:
		return "in"
	case TokenOut:
		return "out"
	case TokenEquals:
		return "equals"
	case TokenMultiply:
		return "multiply"
	case TokenPlus:
		return "plus"
	case TokenMinus:
		return "minus"
	case TokenDivide:
		return "divide"
	case TokenOperand:
		return "operand"
	case TokenInteger:
		return "integer"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// IsOperator reports whether k is one of the four arithmetic operators.
func (k TokenKind) IsOperator() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenMultiply, TokenDivide:
		return true
	}
	return false
}

// IsTerm reports whether k can stand where an operand is expected.
func (k TokenKind) IsTerm() bool {
	return k == TokenOperand || k == TokenInteger
}

// Token pairs a token kind with the word it was read from.
type Token struct {
	Kind TokenKind
	Text string
	// Column is the 1-based index of the word in the split line, counting
	// the empty words produced by repeated spaces.
	Column int
}

// keywords maps the exact-match words to their token kinds.
var keywords = map[string]TokenKind{
	"in":  TokenIn,
	"out": TokenOut,
	"=":   TokenEquals,
	"*":   TokenMultiply,
	"+":   TokenPlus,
	"-":   TokenMinus,
	"/":   TokenDivide,
}

// SplitLine trims space and ASCII control characters from both ends of the
// line and splits it on single ASCII spaces. Runs of spaces produce empty
// words.
func SplitLine(line string) []string {
	return strings.Split(strings.TrimFunc(line, isTrimmed), " ")
}

func isTrimmed(r rune) bool {
	return r <= ' '
}

// Tokenize classifies the words of one line. Empty words are skipped. ok is
// false if any word is not a keyword, an integer literal or an operand, in
// which case the whole line is rejected and no tokens are returned.
func Tokenize(words []string) (tokens []Token, ok bool) {
	tokens = []Token{}
	for i, word := range words {
		if word == "" {
			continue
		}
		kind, ok := classifyWord(word)
		if !ok {
			return nil, false
		}
		tokens = append(tokens, Token{Kind: kind, Text: word, Column: i + 1})
	}
	return tokens, true
}

// TokenizeLine is SplitLine followed by Tokenize.
func TokenizeLine(line string) ([]Token, bool) {
	return Tokenize(SplitLine(line))
}

func classifyWord(word string) (TokenKind, bool) {
	if kind, ok := keywords[word]; ok {
		return kind, true
	}
	if isIntegerLiteral(word) {
		return TokenInteger, true
	}
	if isOperand(word) {
		return TokenOperand, true
	}
	return 0, false
}

// isIntegerLiteral accepts an optionally signed decimal that fits in the
// target's 32-bit int.
func isIntegerLiteral(word string) bool {
	_, err := strconv.ParseInt(word, 10, 32)
	return err == nil
}

// isOperand accepts any non-empty word whose first character is not a digit.
func isOperand(word string) bool {
	if word == "" {
		return false
	}
	return !isDigit(word[0])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
