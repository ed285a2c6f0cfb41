package sdk

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"xcode-sdk/internal/logger"
)

// Enumerator runs a shell command that prints the installed SDKs as JSON.
type Enumerator struct {
	Command string // passed to `sh -c`
}

// Output runs the command and returns its stdout with invalid UTF-8 replaced.
// A command that exits non-zero is only an error when it printed nothing;
// otherwise its output is still used, matching how xcodebuild reports warnings.
func (e Enumerator) Output() ([]byte, error) {
	logger.Debug("[DEBUG] Running: sh -c %q\n", e.Command)

	cmd := exec.Command("sh", "-c", e.Command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %q: %w", e.Command, err)
		}
		if stdout.Len() == 0 {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				return nil, fmt.Errorf("%q failed: %w", e.Command, err)
			}
			return nil, fmt.Errorf("%q failed: %w: %s", e.Command, err, msg)
		}
		logger.Warn("[WARN] %q exited with %s, using its output anyway\n", e.Command, exitErr)
	}

	return bytes.ToValidUTF8(stdout.Bytes(), []byte("\uFFFD")), nil
}

// Load enumerates and parses the installed SDKs.
func (e Enumerator) Load() ([]Record, error) {
	out, err := e.Output()
	if err != nil {
		return nil, err
	}
	records, err := Parse(out)
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Found %d SDKs\n", len(records))
	return records, nil
}
