package main

import (
	"io"

	"github.com/goccy/go-json"
)

// Report is the machine-readable result of checking one file.
type Report struct {
	File        string             `json:"file"`
	Lines       int                `json:"lines"`
	Symbols     []string           `json:"symbols"`
	Statements  int                `json:"statements"`
	Diagnostics []ReportDiagnostic `json:"diagnostics"`
}

// ReportDiagnostic is one diagnostic in a Report.
type ReportDiagnostic struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// NewReport summarizes a compile of file.
func NewReport(file string, res *Result) *Report {
	r := &Report{
		File:        file,
		Lines:       res.Lines,
		Symbols:     res.Symbols.Names(),
		Statements:  len(res.Statements),
		Diagnostics: []ReportDiagnostic{},
	}
	for _, err := range res.Errors.Errors() {
		r.Diagnostics = append(r.Diagnostics, ReportDiagnostic{
			Kind:    err.Kind.String(),
			Line:    err.Line,
			Column:  err.Column,
			Name:    err.Name,
			Message: err.Error(),
		})
	}
	return r
}

// WriteReport writes r as indented JSON followed by a newline.
func WriteReport(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
