//go:build !windows

package engine

import "os/exec"

// hideConsole is a no-op outside Windows; nothing to hide.
func hideConsole(*exec.Cmd) {}
