package main

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a diagnostic.
type ErrorKind int

const (
	LexicalError ErrorKind = iota
	SyntaxError
	UndeclaredVariableError
	ReadFailure
	WriteFailure
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case SyntaxError:
		return "syntax"
	case UndeclaredVariableError:
		return "undeclared-variable"
	case ReadFailure:
		return "read"
	case WriteFailure:
		return "write"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// CompileError is one diagnostic produced while translating a program.
type CompileError struct {
	Kind ErrorKind
	Line int
	// Column is the word position of the offending token, or 0 when the
	// diagnostic concerns the whole line.
	Column int
	// Name is the undeclared variable for UndeclaredVariableError, or the
	// file path for I/O failures.
	Name string
	Err  error
}

func (e *CompileError) Error() string {
	switch e.Kind {
	case LexicalError, SyntaxError:
		return fmt.Sprintf("Invalid Syntax: Line %d", e.Line)
	case UndeclaredVariableError:
		return fmt.Sprintf("Variable %s not found: Line %d", e.Name, e.Line)
	case ReadFailure:
		return fmt.Sprintf("Error reading file %s: %v", e.Name, e.Err)
	case WriteFailure:
		return fmt.Sprintf("Error writing file %s: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("%s error: Line %d", e.Kind, e.Line)
	}
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ErrorCollection accumulates diagnostics in the order they were found.
type ErrorCollection struct {
	errors []*CompileError
}

// Add records a diagnostic.
func (ec *ErrorCollection) Add(err *CompileError) {
	ec.errors = append(ec.errors, err)
}

// HasErrors reports whether any diagnostic was recorded.
func (ec *ErrorCollection) HasErrors() bool {
	return len(ec.errors) > 0
}

// Len returns the number of diagnostics.
func (ec *ErrorCollection) Len() int {
	return len(ec.errors)
}

// Errors returns the recorded diagnostics.
func (ec *ErrorCollection) Errors() []*CompileError {
	return ec.errors
}

// String renders one diagnostic per line.
func (ec *ErrorCollection) String() string {
	var b strings.Builder
	for i, err := range ec.errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}
