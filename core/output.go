package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer handles all display output for the CLI.
type Printer struct {
	JSON   bool
	Writer io.Writer
}

// NewPrinter creates a default Printer writing to stdout.
func NewPrinter(jsonMode bool) *Printer {
	return &Printer{JSON: jsonMode, Writer: os.Stdout}
}

// PrintRecord renders a record to the configured output, fields in
// registry order.
func (p *Printer) PrintRecord(file string, rec Record) {
	if p.JSON {
		p.printJSON(file, rec)
		return
	}
	fmt.Fprintf(p.Writer, "File: %s\n", file)
	if len(rec) == 0 {
		fmt.Fprintln(p.Writer, "(no metadata found)")
		return
	}
	fmt.Fprintln(p.Writer)
	for _, name := range FieldNames() {
		if v, ok := rec[name]; ok {
			fmt.Fprintf(p.Writer, "  %-20s %s\n", string(name)+":", v)
		}
	}
}

func (p *Printer) printJSON(file string, rec Record) {
	out := struct {
		File     string `json:"file"`
		Metadata Record `json:"metadata"`
	}{File: file, Metadata: rec}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(p.Writer, string(b))
}

// PrintSuccess prints a success message.
func (p *Printer) PrintSuccess(msg string) {
	fmt.Fprintln(p.Writer, "✓ "+msg)
}

// PrintInfo prints an info line (suppressed in JSON mode).
func (p *Printer) PrintInfo(msg string) {
	if !p.JSON {
		fmt.Fprintln(p.Writer, msg)
	}
}

// PrintError prints an error to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, "✗ Error: "+msg)
}

// ParseKV parses a "Key=Value" string.
func ParseKV(s string) (key, value string, ok bool) {
	idx := strings.Index(s, "=")
	if idx < 1 {
		return "", "", false
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:]), true
}
