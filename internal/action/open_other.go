//go:build !windows && !darwin

package action

import (
	"os/exec"
	"path/filepath"
)

func openCommand(path string) *exec.Cmd {
	return exec.Command("xdg-open", path)
}

// revealCommand opens the containing directory; xdg-open cannot select an item.
func revealCommand(path string) *exec.Cmd {
	return exec.Command("xdg-open", filepath.Dir(path))
}
