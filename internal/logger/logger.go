package logger

import (
	"io"

	"github.com/fatih/color" // Colored console output
)

// Output is where every level writes. It defaults to color.Error (stderr) so
// stdout only ever carries the resolved SDK path or the listing.
var Output io.Writer = color.Error

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// Info logs informational messages in green.
func Info(format string, a ...any) { infoColor.Fprintf(Output, format, a...) }

// Warn logs warnings in bright magenta.
func Warn(format string, a ...any) { warnColor.Fprintf(Output, format, a...) }

// Error logs errors in red.
func Error(format string, a ...any) { errorColor.Fprintf(Output, format, a...) }

// Debug logs debug messages in cyan if enabled, otherwise is a no-op.
// It is reassigned by Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init turns debug logging on or off.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) { debugColor.Fprintf(Output, format, a...) }
	} else {
		Debug = func(format string, a ...any) {}
	}
}
