// Package engine supervises the resident ExifTool process: it launches
// the process in stay-open mode, serializes every call through a single
// worker with a per-call timeout, and interprets the engine's read and
// write output. Exactly one engine process exists at a time; the
// Supervisor owns it for the application's lifetime.
package engine

import "errors"

var (
	// ErrUnavailable means the engine executable is missing or failed
	// to start. Metadata operations are no-ops until it is resolved.
	ErrUnavailable = errors.New("metadata engine unavailable")

	// ErrTimeout means one call exceeded its time budget. The resident
	// process may still be mid-call and is replaced on next use.
	ErrTimeout = errors.New("metadata engine call timed out")

	// ErrStopped means the call was abandoned because its engine
	// session was torn down while the call was queued.
	ErrStopped = errors.New("metadata engine session stopped")
)
