package engine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// readyMarker terminates every response the stay-open process writes.
const readyMarker = "{ready}"

// shutdownWait bounds how long close waits for a clean exit after the
// stay-open shutdown command before killing the process.
const shutdownWait = 2 * time.Second

// handle is the live connection to one resident engine process. It is
// owned by the Supervisor and driven by exactly one executor goroutine;
// it is not safe for concurrent use.
type handle struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	out     *bufio.Reader
	done    chan struct{}
	waitErr error
}

// execute sends one argument batch to the process and reads its response
// up to the ready marker. Each argument travels on its own line, the way
// the stay-open argument stream expects.
func (h *handle) execute(args []string) (string, error) {
	var cmd strings.Builder
	for _, a := range args {
		cmd.WriteString(a)
		cmd.WriteByte('\n')
	}
	cmd.WriteString("-execute\n")

	if _, err := io.WriteString(h.stdin, cmd.String()); err != nil {
		return "", fmt.Errorf("writing engine command: %w", err)
	}

	var lines []string
	for {
		line, err := h.out.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == readyMarker {
			return strings.Join(lines, "\n"), nil
		}
		if err != nil {
			return "", fmt.Errorf("reading engine response: %w", err)
		}
		lines = append(lines, line)
	}
}

// alive reports whether the process is still running.
func (h *handle) alive() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// exitError returns the exit error of a terminated process, nil while
// it is still running.
func (h *handle) exitError() error {
	select {
	case <-h.done:
		return h.waitErr
	default:
		return nil
	}
}

// close shuts the process down: first the stay-open shutdown command and
// a bounded wait for a clean exit, then a kill. Safe to call on a handle
// whose process already exited.
func (h *handle) close() {
	if h.alive() {
		io.WriteString(h.stdin, "-stay_open\nFalse\n")
	}
	h.stdin.Close()

	select {
	case <-h.done:
		return
	case <-time.After(shutdownWait):
	}
	if h.cmd != nil && h.cmd.Process != nil {
		h.cmd.Process.Kill()
		<-h.done
	}
}

// kill terminates the process without the shutdown handshake. Used when
// the conversation is poisoned and its state cannot be trusted.
func (h *handle) kill() {
	h.stdin.Close()
	if h.cmd != nil && h.cmd.Process != nil {
		h.cmd.Process.Kill()
		<-h.done
	}
}
