package main

import "strings"

// Result is everything one compile produces.
type Result struct {
	Output     string
	Symbols    *SymbolTable
	Statements []Statement
	Errors     *ErrorCollection
	Lines      int
}

// Compile translates an X program given as lines. Bad lines and bad tokens
// are reported in Result.Errors and skipped; Output is always a complete
// C++ program.
func Compile(lines []string) *Result {
	return compileLines(lines, &ErrorCollection{})
}

func compileLines(lines []string, errors *ErrorCollection) *Result {
	t := newTranslator(errors)
	for _, line := range lines {
		t.TranslateLine(line)
	}
	return &Result{
		Output:     GenerateProgram(t.Symbols, t.Statements),
		Symbols:    t.Symbols,
		Statements: t.Statements,
		Errors:     t.Errors,
		Lines:      t.Line(),
	}
}

// CompileSource translates an X program held in a string.
func CompileSource(source string) *Result {
	return Compile(SplitSource(source))
}

// CompileFile reads and translates the program at path. A read failure is
// recorded as the first diagnostic and whatever was read before it is still
// compiled.
func CompileFile(path string) *Result {
	errors := &ErrorCollection{}
	lines, err := ReadLines(path)
	if err != nil {
		errors.Add(&CompileError{Kind: ReadFailure, Name: path, Err: err})
	}
	return compileLines(lines, errors)
}

// SplitSource splits program text into lines, accepting \n, \r\n and \r line
// endings. A trailing line terminator does not start another line.
func SplitSource(source string) []string {
	if source == "" {
		return nil
	}
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	source = strings.TrimSuffix(source, "\n")
	return strings.Split(source, "\n")
}
