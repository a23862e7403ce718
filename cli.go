package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func showUsage(w io.Writer) {
	fmt.Fprintf(w, `xcc - Translates X programs to C++

Usage:
    xcc <command> [arguments]

Commands:
    build <input> <output>  Translate an X file to a C++ file
    check <file>            Translate an X file and report diagnostics
    eval <code>             Translate inline X code and print the C++
    run <file>              Translate and execute an X file
    tokens <file>           Print the tokens of every line of an X file
    help                    Show this help message

Examples:
    xcc build examples/io.x io.cpp
    xcc check -json examples/errors.x
    xcc eval 'in a; b = a * 2; out b'
    xcc run examples/io.x

Use "xcc <command> -h" for more information about a command.
`)
}

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newFlagSet(c *cli, name string, usage string, summary string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {
		fmt.Fprintf(c.stderr, "Usage: %s\n", usage)
		fmt.Fprintf(c.stderr, "%s\n\n", summary)
		fmt.Fprintf(c.stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args and checks the positional argument count. It
// returns the exit status to use when the command must stop.
func parseFlags(c *cli, fs *flag.FlagSet, args []string, nargs int, what string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, false
		}
		return 1, false
	}
	if fs.NArg() != nargs {
		fmt.Fprintf(c.stderr, "Error: expected %s\n", what)
		fs.Usage()
		return 1, false
	}
	return 0, true
}

func (c *cli) printDiagnostics(res *Result) {
	for _, err := range res.Errors.Errors() {
		fmt.Fprintln(c.stderr, err.Error())
	}
}

func (c *cli) buildCommand(args []string) int {
	fs := newFlagSet(c, "build", "xcc build [-v] <input> <output>", "Translate an X file to a C++ file")
	verbose := fs.Bool("v", false, "Show verbose translation details")
	if code, ok := parseFlags(c, fs, args, 2, "an input file and an output file"); !ok {
		return code
	}

	input := fs.Arg(0)
	output := fs.Arg(1)

	if *verbose {
		fmt.Fprintf(c.stdout, "Translating %s to %s...\n", input, output)
	}

	res := CompileFile(input)
	c.printDiagnostics(res)

	if *verbose {
		fmt.Fprintf(c.stdout, "Symbols: %s\n", SymbolsToSExpr(res.Symbols))
		fmt.Fprintf(c.stdout, "Translated %d of %d lines\n", len(res.Statements), res.Lines)
	}

	if err := WriteOutput(output, res); err != nil {
		fmt.Fprintln(c.stderr, err.Error())
		return 1
	}

	fmt.Fprintf(c.stdout, "Generated %s (%d statements, %d variables)\n", output, len(res.Statements), res.Symbols.Len())
	return 0
}

func (c *cli) checkCommand(args []string) int {
	fs := newFlagSet(c, "check", "xcc check [-json] [-v] <file>", "Translate an X file and report diagnostics")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	verbose := fs.Bool("v", false, "Show verbose checking details")
	if code, ok := parseFlags(c, fs, args, 1, "exactly one file argument"); !ok {
		return code
	}

	filename := fs.Arg(0)
	res := CompileFile(filename)

	if *asJSON {
		if err := WriteReport(c.stdout, NewReport(filename, res)); err != nil {
			fmt.Fprintf(c.stderr, "Error writing report: %v\n", err)
			return 1
		}
		if res.Errors.HasErrors() {
			return 1
		}
		return 0
	}

	if *verbose {
		fmt.Fprintf(c.stdout, "Checking %s...\n", filename)
		fmt.Fprintf(c.stdout, "Symbols: %s\n", SymbolsToSExpr(res.Symbols))
	}

	if res.Errors.HasErrors() {
		fmt.Fprintf(c.stdout, "Errors in %s:\n%s\n", filename, res.Errors.String())
		return 1
	}

	fmt.Fprintf(c.stdout, "%s: no errors found\n", filename)
	return 0
}

func (c *cli) evalCommand(args []string) int {
	fs := newFlagSet(c, "eval", "xcc eval [-v] <code>", "Translate inline X code (lines separated by ';' or newlines) and print the C++")
	verbose := fs.Bool("v", false, "Show the tokens of every line")
	if code, ok := parseFlags(c, fs, args, 1, "exactly one code argument"); !ok {
		return code
	}

	lines := SplitSource(strings.ReplaceAll(fs.Arg(0), ";", "\n"))

	if *verbose {
		fmt.Fprintf(c.stdout, "Tokens: %s\n", ProgramTokensToSExpr(lines))
	}

	res := Compile(lines)
	c.printDiagnostics(res)
	fmt.Fprintln(c.stdout, res.Output)
	return 0
}

func (c *cli) runCommand(args []string) int {
	fs := newFlagSet(c, "run", "xcc run [-v] <file>", "Translate and execute an X file")
	verbose := fs.Bool("v", false, "Show verbose translation details")
	if code, ok := parseFlags(c, fs, args, 1, "exactly one file argument"); !ok {
		return code
	}

	filename := fs.Arg(0)
	if *verbose {
		fmt.Fprintf(c.stderr, "Translating %s...\n", filename)
	}

	res := CompileFile(filename)
	if res.Errors.HasErrors() {
		c.printDiagnostics(res)
		fmt.Fprintf(c.stderr, "Compilation failed: %d diagnostic(s)\n", res.Errors.Len())
		return 1
	}

	if *verbose {
		fmt.Fprintf(c.stderr, "Executing %d statements...\n", len(res.Statements))
	}

	if err := Run(res, c.stdin, c.stdout); err != nil {
		fmt.Fprintf(c.stderr, "Execution failed: %v\n", err)
		return 1
	}
	return 0
}

func (c *cli) tokensCommand(args []string) int {
	fs := newFlagSet(c, "tokens", "xcc tokens <file>", "Print the tokens of every line of an X file")
	if code, ok := parseFlags(c, fs, args, 1, "exactly one file argument"); !ok {
		return code
	}

	filename := fs.Arg(0)
	lines, err := ReadLines(filename)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error reading file %s: %v\n", filename, err)
		return 1
	}

	for i, line := range lines {
		fmt.Fprintf(c.stdout, "%d: %s\n", i+1, TokensToSExpr(TokenizeLine(line)))
	}
	return 0
}

func (c *cli) run(args []string) int {
	if len(args) < 1 {
		showUsage(c.stderr)
		return 1
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "build":
		return c.buildCommand(args)
	case "check":
		return c.checkCommand(args)
	case "eval":
		return c.evalCommand(args)
	case "run":
		return c.runCommand(args)
	case "tokens":
		return c.tokensCommand(args)
	case "help", "-h", "--help":
		showUsage(c.stdout)
		return 0
	default:
		fmt.Fprintf(c.stderr, "Unknown command: %s\n\n", command)
		showUsage(c.stderr)
		return 1
	}
}

func main() {
	c := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(c.run(os.Args[1:]))
}
