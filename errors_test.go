package main

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"
)

func TestCompileErrorMessages(t *testing.T) {
	tests := []struct {
		err      *CompileError
		expected string
	}{
		{&CompileError{Kind: LexicalError, Line: 3}, "Invalid Syntax: Line 3"},
		{&CompileError{Kind: SyntaxError, Line: 1, Column: 4}, "Invalid Syntax: Line 1"},
		{&CompileError{Kind: UndeclaredVariableError, Line: 2, Name: "total"}, "Variable total not found: Line 2"},
		{&CompileError{Kind: ReadFailure, Name: "a.x", Err: errors.New("boom")}, "Error reading file a.x: boom"},
		{&CompileError{Kind: WriteFailure, Name: "a.cpp", Err: errors.New("boom")}, "Error writing file a.cpp: boom"},
	}

	for _, tt := range tests {
		be.Equal(t, tt.err.Error(), tt.expected)
	}
}

func TestCompileErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &CompileError{Kind: WriteFailure, Name: "a.cpp", Err: cause}
	be.Err(t, err, cause)
}

func TestErrorKindString(t *testing.T) {
	be.Equal(t, LexicalError.String(), "lexical")
	be.Equal(t, SyntaxError.String(), "syntax")
	be.Equal(t, UndeclaredVariableError.String(), "undeclared-variable")
	be.Equal(t, ErrorKind(42).String(), "ErrorKind(42)")
}

func TestErrorCollection(t *testing.T) {
	var ec ErrorCollection
	be.Equal(t, ec.HasErrors(), false)
	be.Equal(t, ec.String(), "")

	ec.Add(&CompileError{Kind: SyntaxError, Line: 1})
	ec.Add(&CompileError{Kind: UndeclaredVariableError, Line: 2, Name: "y"})

	be.True(t, ec.HasErrors())
	be.Equal(t, ec.Len(), 2)
	be.Equal(t, ec.String(), "Invalid Syntax: Line 1\nVariable y not found: Line 2")
}
