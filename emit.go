package main

import "bytes"

// C++ text produced around and inside the translated statements.
const (
	prologue        = "#include <iostream>\nusing namespace std;\nint main()\n{\n"
	epilogue        = "return 0;\n}"
	declarationType = "int"
	inputPrefix     = "cin >> "
	outputPrefix    = "cout << "
	terminator      = ";\n"
)

// EmitDeclarations writes one declaration per symbol in first-occurrence
// order.
func EmitDeclarations(buf *bytes.Buffer, symbols *SymbolTable) {
	for _, name := range symbols.names {
		buf.WriteString(declarationType)
		buf.WriteByte(' ')
		buf.WriteString(name)
		buf.WriteString(terminator)
	}
}

// EmitStatement writes the C++ text of one statement. Expression tokens are
// written back to back with no separator.
func EmitStatement(buf *bytes.Buffer, stmt Statement) {
	switch stmt.Kind {
	case StatementInput:
		buf.WriteString(inputPrefix)
		buf.WriteString(stmt.Target)
	case StatementAssign:
		buf.WriteString(stmt.Target)
		buf.WriteString(" = ")
		emitTerms(buf, stmt.Terms)
	case StatementOutput:
		buf.WriteString(outputPrefix)
		emitTerms(buf, stmt.Terms)
	}
	buf.WriteString(terminator)
}

func emitTerms(buf *bytes.Buffer, terms []Token) {
	for _, tok := range terms {
		buf.WriteString(tok.Text)
	}
}

// EmitProgram writes the complete C++ program: prologue, declarations,
// statements and epilogue.
func EmitProgram(buf *bytes.Buffer, symbols *SymbolTable, statements []Statement) {
	buf.WriteString(prologue)
	EmitDeclarations(buf, symbols)
	for _, stmt := range statements {
		EmitStatement(buf, stmt)
	}
	buf.WriteString(epilogue)
}

// GenerateProgram returns the C++ text for a translated program.
func GenerateProgram(symbols *SymbolTable, statements []Statement) string {
	var buf bytes.Buffer
	EmitProgram(&buf, symbols, statements)
	return buf.String()
}

// StatementText returns the C++ text of a single statement, including its
// terminator and newline.
func StatementText(stmt Statement) string {
	var buf bytes.Buffer
	EmitStatement(&buf, stmt)
	return buf.String()
}
