package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tagwriter/core/engine"
	"tagwriter/core/preview"
)

// Engine is the call surface the manager needs from the resident
// process supervisor. It is an interface so tests can substitute a fake.
type Engine interface {
	Execute(args ...string) (string, error)
}

// Manager holds the metadata record for one loaded file and implements
// the operations the presentation layer consumes. The record is
// replaced on every load and never cached across files. Manager is not
// safe for concurrent use; the caller owns it.
type Manager struct {
	eng  Engine
	log  *slog.Logger
	file string
	rec  Record
}

// NewManager returns a Manager using eng for all engine calls.
func NewManager(eng Engine) *Manager {
	return &Manager{eng: eng, log: slog.Default(), rec: Record{}}
}

// LoadFromFile reads the file's metadata through the engine and replaces
// the current record. ok is false when the file has no readable
// metadata. When the engine is unavailable the EXIF preview fallback
// answers the read-only subset instead.
func (m *Manager) LoadFromFile(path string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		return false, fmt.Errorf("loading %s: %w", path, err)
	}
	if !Supported(path) {
		return false, fmt.Errorf("unsupported file type: %s", path)
	}

	args := append([]string{"-j"}, ReadFlags(path)...)
	args = append(args, path)

	var raw map[string]any
	out, err := m.eng.Execute(args...)
	switch {
	case err == nil:
		raw = engine.ParseReadOutput(out)
	case errors.Is(err, engine.ErrUnavailable):
		m.log.Warn("engine unavailable, using EXIF preview", "file", path)
		if raw, err = preview.Read(path); err != nil {
			return false, err
		}
	default:
		return false, err
	}

	m.file = path
	m.rec = NormalizeRead(RawMetadata(raw))
	m.log.Debug("metadata loaded", "file", path, "fields", len(m.rec))
	return len(raw) > 0, nil
}

// GetField returns the value for a canonical field, or def if absent.
func (m *Manager) GetField(name Field, def string) string {
	if v, ok := m.rec[name]; ok {
		return v
	}
	return def
}

// SetField sets a field value. Values are sanitized at write time, so a
// user can type freely while editing.
func (m *Manager) SetField(name Field, value string) {
	m.rec[name] = value
}

// Record returns a copy of the current record.
func (m *Manager) Record() Record {
	out := make(Record, len(m.rec))
	for k, v := range m.rec {
		out[k] = v
	}
	return out
}

// Clear discards the current record and file association.
func (m *Manager) Clear() {
	m.file = ""
	m.rec = Record{}
}

// SaveToFile writes every non-empty field to the file in place. ok is
// false when the engine ran but confirmed no file was updated; the file
// is then untouched. A record with nothing to write succeeds without
// calling the engine.
func (m *Manager) SaveToFile(path string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		return false, fmt.Errorf("saving %s: %w", path, err)
	}

	writes := NormalizeWrite(m.rec)
	if len(writes) == 0 {
		return true, nil
	}

	args := make([]string, 0, len(writes)+2)
	for _, w := range writes {
		args = append(args, "-"+w.Tag+"="+w.Value)
	}
	args = append(args, "-overwrite_original", path)

	out, err := m.eng.Execute(args...)
	if err != nil {
		return false, err
	}
	ok = engine.ParseWriteResult(out)
	if !ok {
		m.log.Warn("engine rejected write", "file", path, "output", truncate(out, 200))
	}
	return ok, nil
}

// exportEnvelope is the JSON shape written by ExportJSON and accepted
// (alongside a bare field mapping) by ImportJSON.
type exportEnvelope struct {
	Filename   string `json:"filename"`
	ExportDate string `json:"export_date"`
	Metadata   Record `json:"metadata"`
}

// ExportJSON writes the current record to a JSON file.
func (m *Manager) ExportJSON(path string) error {
	name := "unknown"
	if m.file != "" {
		name = filepath.Base(m.file)
	}
	env := exportEnvelope{
		Filename:   name,
		ExportDate: time.Now().Format("2006-01-02 15:04:05"),
		Metadata:   m.rec,
	}
	data, err := json.MarshalIndent(env, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("exporting metadata: %w", err)
	}
	return nil
}

// ImportJSON merges fields from a JSON file into the current record.
// Both the export envelope and a bare field mapping are accepted; only
// canonical fields are imported.
func (m *Manager) ImportJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("importing metadata: %w", err)
	}

	var env exportEnvelope
	if err := json.Unmarshal(data, &env); err != nil || env.Metadata == nil {
		env.Metadata = Record{}
		if err := json.Unmarshal(data, &env.Metadata); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	for _, name := range FieldNames() {
		if v, ok := env.Metadata[name]; ok {
			m.rec[name] = v
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
