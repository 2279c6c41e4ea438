package engine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// launchGrace is how long launch watches a freshly started process for
// an immediate exit before trusting it.
const launchGrace = 100 * time.Millisecond

// launch starts the engine executable in stay-open mode, reading one
// argument batch at a time from stdin until told to shut down. Window
// hiding for platforms that flash console windows is applied by
// hideConsole (see proc_windows.go / proc_other.go).
func launch(executable string) (*handle, error) {
	cmd := exec.Command(executable, "-stay_open", "True", "-@", "-")
	hideConsole(cmd)
	cmd.Stderr = io.Discard

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", executable, err)
	}

	h := &handle{
		cmd:   cmd,
		stdin: stdin,
		out:   bufio.NewReader(stdout),
		done:  make(chan struct{}),
	}
	go func() {
		h.waitErr = cmd.Wait()
		close(h.done)
	}()

	// A process that dies before accepting commands (bad install,
	// unusable binary) must fail the launch, not the first call.
	select {
	case <-h.done:
		if h.waitErr != nil {
			return nil, fmt.Errorf("%s did not execute successfully: %v", executable, h.waitErr)
		}
		return nil, fmt.Errorf("%s did not execute successfully", executable)
	case <-time.After(launchGrace):
	}
	return h, nil
}
