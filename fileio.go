package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const maxLineLength = 1 << 20

// ReadLines reads the UTF-8 text file at path as lines ended by \n, \r\n or
// \r. On failure it returns the lines read before the failure together with
// the error.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	scanner.Split(scanLines)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return lines, fmt.Errorf("line %d: invalid UTF-8", len(lines)+1)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("line %d: %w", len(lines)+1, err)
	}
	return lines, nil
}

// scanLines is bufio.ScanLines that also ends a line at a lone \r.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell \r from \r\n.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// WriteText writes text to path with every line newline-terminated.
func WriteText(path string, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteOutput writes the translated program to path, reporting failure as a
// WriteFailure diagnostic.
func WriteOutput(path string, res *Result) *CompileError {
	if err := WriteText(path, res.Output); err != nil {
		return &CompileError{Kind: WriteFailure, Name: path, Err: err}
	}
	return nil
}
