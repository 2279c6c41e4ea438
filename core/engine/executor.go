package engine

import "time"

// DefaultTimeout is the per-call budget. Malformed or unusually large
// files can hang the engine indefinitely; no single call may block the
// application longer than this.
const DefaultTimeout = 30 * time.Second

type request struct {
	args  []string
	reply chan response
}

type response struct {
	out string
	err error
}

// executor funnels every call into one worker goroutine. The resident
// process is a single conversational partner; concurrent writers would
// interleave commands on its input stream, so calls are strictly FIFO
// and at most one is in flight.
type executor struct {
	calls   chan request
	quit    chan struct{}
	timeout time.Duration
}

func newExecutor(h *handle, timeout time.Duration) *executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ex := &executor{
		calls:   make(chan request),
		quit:    make(chan struct{}),
		timeout: timeout,
	}
	go ex.run(h)
	return ex
}

func (ex *executor) run(h *handle) {
	for {
		select {
		case req := <-ex.calls:
			out, err := h.execute(req.args)
			// reply is buffered; a caller that already timed out
			// does not block the worker.
			req.reply <- response{out: out, err: err}
		case <-ex.quit:
			return
		}
	}
}

// submit queues one call and waits for its result. The timeout covers
// both queue wait and execution. On timeout the in-flight call is
// abandoned, not interrupted: the caller must treat the handle as
// poisoned.
func (ex *executor) submit(args []string) (string, error) {
	req := request{args: args, reply: make(chan response, 1)}
	timer := time.NewTimer(ex.timeout)
	defer timer.Stop()

	select {
	case ex.calls <- req:
	case <-ex.quit:
		return "", ErrStopped
	case <-timer.C:
		return "", ErrTimeout
	}
	select {
	case r := <-req.reply:
		return r.out, r.err
	case <-timer.C:
		return "", ErrTimeout
	}
}

// stop ends the worker. Any call currently executing still runs to
// completion inside the worker; queued callers get ErrStopped.
func (ex *executor) stop() {
	close(ex.quit)
}
