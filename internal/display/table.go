// Package display renders column-aligned tables for terminal output.
package display

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var headerColor = color.New(color.Bold)

// IsTTY reports whether w is connected to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Table buffers tab-separated rows and writes them aligned on Flush.
// On a terminal the header line is bolded after alignment, so the escape
// codes never count toward column widths.
type Table struct {
	out    io.Writer
	buf    bytes.Buffer
	tw     *tabwriter.Writer
	bold   bool
	header bool
}

// NewTable creates a Table writing to w with an optional header row.
func NewTable(w io.Writer, headers ...string) *Table {
	return newTable(w, IsTTY(w) && !color.NoColor, headers...)
}

func newTable(w io.Writer, bold bool, headers ...string) *Table {
	t := &Table{out: w, bold: bold, header: len(headers) > 0}
	t.tw = tabwriter.NewWriter(&t.buf, 0, 4, 2, ' ', 0)
	if t.header {
		t.Row(headers...)
	}
	return t
}

// Row adds one row.
func (t *Table) Row(vals ...string) {
	fmt.Fprintln(t.tw, strings.Join(vals, "\t"))
}

// Flush aligns the buffered rows and writes them out.
func (t *Table) Flush() error {
	if err := t.tw.Flush(); err != nil {
		return err
	}
	out := t.buf.Bytes()
	t.buf.Reset()

	if t.bold && t.header {
		line, rest, _ := bytes.Cut(out, []byte("\n"))
		if _, err := fmt.Fprintln(t.out, headerColor.Sprint(string(line))); err != nil {
			return err
		}
		out = rest
		t.header = false
	}
	_, err := t.out.Write(out)
	return err
}
