// Package action performs the final step on a resolved SDK path: print it,
// open it, reveal it in the file browser, or copy it to the clipboard.
package action

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
	"xcode-sdk/internal/logger"
)

// Kind selects what Dispatch does with a path.
type Kind int

const (
	Print Kind = iota
	Open
	Reveal
	Copy
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Reveal:
		return "reveal"
	case Copy:
		return "copy"
	default:
		return "print"
	}
}

// Choose maps the CLI flags to a Kind. Open wins over reveal, reveal over
// copy; with no flag set the path is printed.
func Choose(open, reveal, copyPath bool) Kind {
	switch {
	case open:
		return Open
	case reveal:
		return Reveal
	case copyPath:
		return Copy
	default:
		return Print
	}
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Dispatcher carries out a Kind. The zero value is not usable; see New.
type Dispatcher struct {
	Out       io.Writer
	Clipboard Clipboard
	Start     func(cmd *exec.Cmd) error // launches open/reveal without waiting
}

// New returns a Dispatcher printing to stdout and using the system clipboard.
func New() *Dispatcher {
	return &Dispatcher{
		Out:       os.Stdout,
		Clipboard: systemClipboard{},
		Start:     startDetached,
	}
}

// startDetached starts cmd and releases it; nothing ever waits for its exit.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Dispatch applies kind to path.
func (d *Dispatcher) Dispatch(kind Kind, path string) error {
	logger.Debug("[DEBUG] %s %s\n", kind, path)

	switch kind {
	case Open:
		return d.spawn(openCommand(path))
	case Reveal:
		return d.spawn(revealCommand(path))
	case Copy:
		if err := d.Clipboard.WriteAll(path); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintln(d.Out, path)
		return err
	}
}

func (d *Dispatcher) spawn(cmd *exec.Cmd) error {
	if err := d.Start(cmd); err != nil {
		return fmt.Errorf("failed to run %s: %w", cmd.Path, err)
	}
	return nil
}
