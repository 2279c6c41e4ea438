//go:build windows

package engine

import (
	"os/exec"
	"syscall"
)

// createNoWindow stops the child from allocating a console.
const createNoWindow = 0x08000000

// hideConsole keeps the engine process from flashing a console window
// every time it is launched.
func hideConsole(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
