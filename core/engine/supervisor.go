package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Options configures a Supervisor.
type Options struct {
	// Path is an explicit engine executable. Empty means resolve via
	// the bundled tools directory and then the system PATH.
	Path string
	// Timeout is the per-call budget; zero means DefaultTimeout.
	Timeout time.Duration
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Supervisor owns the one resident engine process for the application's
// lifetime: it starts the process lazily on first use, replaces it when
// it is found dead or poisoned by a timed-out call, and stops it cleanly
// on shutdown. All calls go through Execute.
type Supervisor struct {
	path    string
	timeout time.Duration
	log     *slog.Logger

	mu       sync.Mutex
	h        *handle
	ex       *executor
	poisoned bool
}

// New returns a Supervisor. No process is started until the first call.
func New(opts Options) *Supervisor {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Supervisor{path: opts.Path, timeout: timeout, log: log}
}

// Execute runs one engine call and returns its raw output. It starts or
// restarts the resident process as needed. Errors are ErrUnavailable
// (engine missing or won't start), ErrTimeout (call exceeded its
// budget), or an I/O error from the conversation itself.
func (s *Supervisor) Execute(args ...string) (string, error) {
	ex, err := s.session()
	if err != nil {
		return "", err
	}
	out, err := ex.submit(args)
	if errors.Is(err, ErrTimeout) {
		// The process may still be mid-call; its conversational
		// state can no longer be trusted.
		s.log.Warn("engine call timed out, marking process for replacement", "args", firstArg(args))
		s.mu.Lock()
		s.poisoned = true
		s.mu.Unlock()
	}
	return out, err
}

// Check verifies the engine is reachable by asking for its version.
func (s *Supervisor) Check() (string, error) {
	out, err := s.Execute("-ver")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Start eagerly launches the resident process. Optional: Execute starts
// it lazily anyway. Useful at application startup to surface an
// unavailable engine before the first real operation.
func (s *Supervisor) Start() error {
	_, err := s.session()
	return err
}

// Stop terminates the resident process and releases the handle.
// Idempotent; the next call after Stop starts a fresh process.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.h == nil {
		return
	}
	s.log.Info("stopping engine process")
	s.ex.stop()
	s.h.close()
	s.h, s.ex = nil, nil
	s.poisoned = false
}

// session returns the executor for a running process, replacing a dead
// or poisoned one first.
func (s *Supervisor) session() (*executor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.h != nil && (s.poisoned || !s.h.alive()) {
		s.log.Warn("discarding engine process", "poisoned", s.poisoned, "exit_error", s.h.exitError())
		s.ex.stop()
		s.h.kill()
		s.h, s.ex = nil, nil
		s.poisoned = false
	}
	if s.h == nil {
		exe, err := resolveExecutable(s.path)
		if err != nil {
			return nil, err
		}
		h, err := launch(exe)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		s.log.Info("engine process started", "executable", exe)
		s.h = h
		s.ex = newExecutor(h, s.timeout)
	}
	return s.ex, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
