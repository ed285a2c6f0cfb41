//go:build darwin

package action

import "os/exec"

// openCommand opens path with its default application (Finder for directories).
func openCommand(path string) *exec.Cmd {
	return exec.Command("open", path)
}

// revealCommand reveals path in Finder (opens parent directory with item selected).
func revealCommand(path string) *exec.Cmd {
	return exec.Command("open", "-R", path)
}
