//go:build windows

package action

import "os/exec"

func openCommand(path string) *exec.Cmd {
	return exec.Command("explorer", path)
}

// revealCommand opens the parent folder in Explorer with path selected.
func revealCommand(path string) *exec.Cmd {
	return exec.Command("explorer", "/select,"+path)
}
