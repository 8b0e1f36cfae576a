// Package status writes a small ephemeral file that external tooling (for
// example a shell statusline) can poll for pipeline progress. Every
// operation is best-effort: a broken status file must never fail a run.
package status

import (
	"os"
	"path/filepath"
)

// Reporter writes progress messages to a fixed file path.
type Reporter struct {
	path string
}

// NewReporter creates a reporter for the given file path. An empty path
// disables all writes.
func NewReporter(path string) *Reporter {
	return &Reporter{path: path}
}

// Set overwrites the status file with the given message. Failures are ignored.
func (r *Reporter) Set(message string) {
	if r == nil || r.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o750); err != nil {
		return
	}
	_ = os.WriteFile(r.path, []byte(message), 0o600)
}

// Clear removes the status file. Failures are ignored.
func (r *Reporter) Clear() {
	if r == nil || r.path == "" {
		return
	}
	_ = os.Remove(r.path)
}
