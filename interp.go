package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RuntimeError is a failure while checking or running a translated program.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: Line %d", e.Message, e.Line)
}

// Machine executes translated statements with the semantics of the
// generated C++ program: 32-bit wrapping ints that start at zero, * and /
// before + and -, and truncating division.
type Machine struct {
	vars map[string]int32
	in   *bufio.Scanner
	out  *bufio.Writer
}

// NewMachine creates a machine reading whitespace-separated integers from
// stdin and writing to stdout.
func NewMachine(stdin io.Reader, stdout io.Writer) *Machine {
	in := bufio.NewScanner(stdin)
	in.Split(bufio.ScanWords)
	return &Machine{
		vars: make(map[string]int32),
		in:   in,
		out:  bufio.NewWriter(stdout),
	}
}

// Run executes a compiled program. Programs with diagnostics are refused,
// and every statement is checked before the first one runs.
func Run(res *Result, stdin io.Reader, stdout io.Writer) error {
	if res.Errors.HasErrors() {
		return fmt.Errorf("program has %d diagnostic(s); not running", res.Errors.Len())
	}
	if err := CheckStatements(res.Symbols, res.Statements); err != nil {
		return err
	}
	m := NewMachine(stdin, stdout)
	return m.Exec(res.Statements)
}

// CheckStatements rejects statements whose generated C++ would not compile
// even though translation reported nothing: empty or dangling expressions,
// sign-prefixed literals that merge with the operator before them into ++
// or --, and names that are not usable C++ identifiers.
func CheckStatements(symbols *SymbolTable, statements []Statement) error {
	for _, name := range symbols.names {
		if !isCppIdentifier(name) {
			line := 0
			for _, stmt := range statements {
				if stmt.Target == name {
					line = stmt.Line
					break
				}
			}
			return &RuntimeError{Line: line, Message: fmt.Sprintf("%q is not a valid C++ identifier", name)}
		}
	}
	for _, stmt := range statements {
		if stmt.Kind == StatementInput {
			continue
		}
		if err := checkExpression(stmt); err != nil {
			return err
		}
	}
	return nil
}

func checkExpression(stmt Statement) error {
	terms := stmt.Terms
	if len(terms)%2 == 0 {
		return &RuntimeError{Line: stmt.Line, Message: "malformed expression"}
	}
	for i, tok := range terms {
		if (i%2 == 0 && !tok.Kind.IsTerm()) || (i%2 == 1 && !tok.Kind.IsOperator()) {
			return &RuntimeError{Line: stmt.Line, Message: "malformed expression"}
		}
		if i > 0 && tok.Kind == TokenInteger {
			prev := terms[i-1].Text
			if strings.HasPrefix(tok.Text, prev) && (prev == "+" || prev == "-") {
				return &RuntimeError{Line: stmt.Line, Message: "malformed expression"}
			}
		}
	}
	return nil
}

// reservedNames are the C++ keywords and alternative operator spellings, plus
// the iostream objects the generated program refers to unqualified.
var reservedNames = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true, "asm": true,
	"auto": true, "bitand": true, "bitor": true, "bool": true, "break": true,
	"case": true, "catch": true, "char": true, "char8_t": true, "char16_t": true,
	"char32_t": true, "class": true, "compl": true, "concept": true, "const": true,
	"consteval": true, "constexpr": true, "constinit": true, "const_cast": true,
	"continue": true, "co_await": true, "co_return": true, "co_yield": true,
	"decltype": true, "default": true, "delete": true, "do": true, "double": true,
	"dynamic_cast": true, "else": true, "enum": true, "explicit": true,
	"export": true, "extern": true, "false": true, "float": true, "for": true,
	"friend": true, "goto": true, "if": true, "inline": true, "int": true,
	"long": true, "mutable": true, "namespace": true, "new": true,
	"noexcept": true, "not": true, "not_eq": true, "nullptr": true,
	"operator": true, "or": true, "or_eq": true, "private": true,
	"protected": true, "public": true, "register": true,
	"reinterpret_cast": true, "requires": true, "return": true, "short": true,
	"signed": true, "sizeof": true, "static": true, "static_assert": true,
	"static_cast": true, "struct": true, "switch": true, "template": true,
	"this": true, "thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "wchar_t": true, "while": true, "xor": true, "xor_eq": true,

	"cin":  true,
	"cout": true,
}

// isCppIdentifier reports whether name can be declared as an int inside the
// generated main without breaking it.
func isCppIdentifier(name string) bool {
	if reservedNames[name] {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && isDigit(c):
		default:
			return false
		}
	}
	return name != ""
}

// Exec runs statements in order. Output is flushed even when a statement
// fails.
func (m *Machine) Exec(statements []Statement) (err error) {
	defer func() {
		if flushErr := m.out.Flush(); err == nil {
			err = flushErr
		}
	}()
	for _, stmt := range statements {
		if err := m.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) exec(stmt Statement) error {
	switch stmt.Kind {
	case StatementInput:
		v, err := m.readInt(stmt)
		if err != nil {
			return err
		}
		m.vars[stmt.Target] = v
	case StatementAssign:
		v, err := m.eval(stmt)
		if err != nil {
			return err
		}
		m.vars[stmt.Target] = v
	case StatementOutput:
		v, err := m.eval(stmt)
		if err != nil {
			return err
		}
		m.out.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return nil
}

func (m *Machine) readInt(stmt Statement) (int32, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", stmt.Target, err)
		}
		return 0, &RuntimeError{Line: stmt.Line, Message: "unexpected end of input"}
	}
	word := m.in.Text()
	v, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		return 0, &RuntimeError{Line: stmt.Line, Message: fmt.Sprintf("expected an integer for %s, got %q", stmt.Target, word)}
	}
	return int32(v), nil
}

// eval folds additive runs of multiplicative runs, both left to right.
func (m *Machine) eval(stmt Statement) (int32, error) {
	terms := stmt.Terms
	sum, i, err := m.evalProduct(stmt, 0)
	if err != nil {
		return 0, err
	}
	for i < len(terms) {
		op := terms[i].Kind
		rhs, next, err := m.evalProduct(stmt, i+1)
		if err != nil {
			return 0, err
		}
		if op == TokenPlus {
			sum += rhs
		} else {
			sum -= rhs
		}
		i = next
	}
	return sum, nil
}

func (m *Machine) evalProduct(stmt Statement, i int) (int32, int, error) {
	terms := stmt.Terms
	product := m.termValue(terms[i])
	i++
	for i < len(terms) && (terms[i].Kind == TokenMultiply || terms[i].Kind == TokenDivide) {
		rhs := m.termValue(terms[i+1])
		if terms[i].Kind == TokenMultiply {
			product *= rhs
		} else {
			if rhs == 0 {
				return 0, 0, &RuntimeError{Line: stmt.Line, Message: "division by zero"}
			}
			product /= rhs
		}
		i += 2
	}
	return product, i, nil
}

func (m *Machine) termValue(tok Token) int32 {
	if tok.Kind == TokenInteger {
		// Validated by the tokenizer.
		v, _ := strconv.ParseInt(tok.Text, 10, 32)
		return int32(v)
	}
	return m.vars[tok.Text]
}
