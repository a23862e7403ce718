package main

// StatementKind identifies the shape of a translated line.
type StatementKind int

const (
	StatementInput StatementKind = iota
	StatementAssign
	StatementOutput
)

func (k StatementKind) String() string {
	switch k {
	case StatementInput:
		return "input"
	case StatementAssign:
		return "assign"
	case StatementOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Statement is one translated line. Terms holds the expression tokens that
// survived validation, in source order.
type Statement struct {
	Kind   StatementKind
	Line   int
	Target string // StatementInput, StatementAssign
	Terms  []Token
}

// Translator turns lines into statements one at a time. The symbol table and
// the diagnostics are shared by every line of one compile.
type Translator struct {
	Symbols    *SymbolTable
	Errors     *ErrorCollection
	Statements []Statement

	line int
}

// NewTranslator creates a translator with an empty symbol table.
func NewTranslator() *Translator {
	return newTranslator(&ErrorCollection{})
}

func newTranslator(errors *ErrorCollection) *Translator {
	return &Translator{
		Symbols: NewSymbolTable(),
		Errors:  errors,
	}
}

// Line returns the number of lines translated so far.
func (t *Translator) Line() int {
	return t.line
}

// TranslateLine tokenizes and translates the next line of the program.
func (t *Translator) TranslateLine(text string) {
	t.line++

	tokens, ok := TokenizeLine(text)
	if !ok {
		t.lineError(LexicalError)
		return
	}
	t.translateTokens(tokens)
}

// translateTokens translates one already tokenized line, attributing it to
// the current line number. TranslateLine owns the counter. Blank and
// single-token lines produce nothing and are not reported.
//
// Errors inside an expression drop the offending token but do not stop the
// line: the statement is still emitted from the surviving tokens, even if
// the result is not valid C++.
func (t *Translator) translateTokens(tokens []Token) {
	if len(tokens) < 2 {
		return
	}

	if len(tokens) == 2 && tokens[0].Kind == TokenIn && tokens[1].Kind == TokenOperand {
		name := tokens[1].Text
		t.Symbols.Register(name)
		t.Statements = append(t.Statements, Statement{
			Kind:   StatementInput,
			Line:   t.line,
			Target: name,
		})
		return
	}

	head := tokens[0]
	rest := tokens[1:]
	stmt := Statement{Line: t.line}
	switch head.Kind {
	case TokenOperand:
		t.Symbols.Register(head.Text)
		stmt.Kind = StatementAssign
		stmt.Target = head.Text
		if rest[0].Kind == TokenEquals {
			rest = rest[1:]
		}
	case TokenOut:
		stmt.Kind = StatementOutput
	default:
		t.lineError(SyntaxError)
		return
	}

	stmt.Terms = t.translateExpression(rest)
	t.Statements = append(t.Statements, stmt)
}

// translateExpression walks tokens expecting a term and an operator in turn.
func (t *Translator) translateExpression(tokens []Token) []Token {
	terms := []Token{}
	expectOperator := false
	for _, tok := range tokens {
		if expectOperator {
			if !tok.Kind.IsOperator() {
				t.tokenError(SyntaxError, tok)
				continue
			}
			expectOperator = false
			terms = append(terms, tok)
			continue
		}

		switch tok.Kind {
		case TokenInteger:
		case TokenOperand:
			if !t.Symbols.Contains(tok.Text) {
				t.tokenError(UndeclaredVariableError, tok)
				// The slot counts as filled even though the token is dropped.
				expectOperator = true
				continue
			}
		default:
			t.tokenError(SyntaxError, tok)
			continue
		}
		expectOperator = true
		terms = append(terms, tok)
	}
	return terms
}

func (t *Translator) lineError(kind ErrorKind) {
	t.Errors.Add(&CompileError{Kind: kind, Line: t.line})
}

func (t *Translator) tokenError(kind ErrorKind, tok Token) {
	err := &CompileError{Kind: kind, Line: t.line, Column: tok.Column}
	if kind == UndeclaredVariableError {
		err.Name = tok.Text
	}
	t.Errors.Add(err)
}
