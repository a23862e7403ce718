package main

import (
	"bytes"
	"testing"

	"github.com/nalgeon/be"
)

func TestEmitEmptyProgram(t *testing.T) {
	out := GenerateProgram(NewSymbolTable(), nil)
	be.Equal(t, out, prologue+epilogue)
	be.Equal(t, out, "#include <iostream>\nusing namespace std;\nint main()\n{\nreturn 0;\n}")
}

func TestEmitDeclarations(t *testing.T) {
	st := NewSymbolTable()
	st.Register("b")
	st.Register("a")

	var buf bytes.Buffer
	EmitDeclarations(&buf, st)
	be.Equal(t, buf.String(), "int b;\nint a;\n")
}

func TestEmitStatement(t *testing.T) {
	tests := []struct {
		stmt     Statement
		expected string
	}{
		{Statement{Kind: StatementInput, Target: "x"}, "cin >> x;\n"},
		{Statement{Kind: StatementAssign, Target: "y", Terms: []Token{
			{Kind: TokenOperand, Text: "x"},
			{Kind: TokenMultiply, Text: "*"},
			{Kind: TokenInteger, Text: "-2"},
		}}, "y = x*-2;\n"},
		{Statement{Kind: StatementOutput, Terms: []Token{{Kind: TokenOperand, Text: "y"}}}, "cout << y;\n"},
		{Statement{Kind: StatementOutput}, "cout << ;\n"},
		{Statement{Kind: StatementAssign, Target: "z"}, "z = ;\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		EmitStatement(&buf, tt.stmt)
		be.Equal(t, buf.String(), tt.expected)
		be.Equal(t, StatementText(tt.stmt), tt.expected)
	}
}

func TestEmitProgramOrder(t *testing.T) {
	st := NewSymbolTable()
	st.Register("n")
	statements := []Statement{
		{Kind: StatementInput, Target: "n"},
		{Kind: StatementOutput, Terms: []Token{{Kind: TokenOperand, Text: "n"}}},
	}

	expected := "#include <iostream>\n" +
		"using namespace std;\n" +
		"int main()\n" +
		"{\n" +
		"int n;\n" +
		"cin >> n;\n" +
		"cout << n;\n" +
		"return 0;\n" +
		"}"
	be.Equal(t, GenerateProgram(st, statements), expected)
}
