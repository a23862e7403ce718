package main

import "github.com/xlang/xcc/sexy"

// TokensToSExpr renders one line's tokens. Keywords and operators are bare
// symbols; operands and integers carry their text, e.g.
// ((operand "x") equals (integer 2)). A rejected line renders as error.
func TokensToSExpr(tokens []Token, ok bool) *sexy.Node {
	if !ok {
		return sexy.NewSymbol("error")
	}
	items := make([]*sexy.Node, 0, len(tokens))
	for _, tok := range tokens {
		items = append(items, tokenToSExpr(tok))
	}
	return sexy.NewList(items)
}

func tokenToSExpr(tok Token) *sexy.Node {
	switch tok.Kind {
	case TokenOperand:
		return sexy.NewList([]*sexy.Node{sexy.NewSymbol("operand"), sexy.NewString(tok.Text)})
	case TokenInteger:
		return sexy.NewList([]*sexy.Node{sexy.NewSymbol("integer"), sexy.NewInteger(tok.Text)})
	default:
		return sexy.NewSymbol(tok.Kind.String())
	}
}

// ProgramTokensToSExpr renders every line of a program, one list per line.
func ProgramTokensToSExpr(lines []string) *sexy.Node {
	items := make([]*sexy.Node, 0, len(lines))
	for _, line := range lines {
		items = append(items, TokensToSExpr(TokenizeLine(line)))
	}
	return sexy.NewList(items)
}

// SymbolsToSExpr renders the symbol table as a list of strings in
// declaration order.
func SymbolsToSExpr(st *SymbolTable) *sexy.Node {
	items := make([]*sexy.Node, 0, st.Len())
	for _, name := range st.names {
		items = append(items, sexy.NewString(name))
	}
	return sexy.NewList(items)
}
