// Package engine provides the orchestration layer between the CLI and the
// overlap checker.
//
// Key components:
//   - Engine: holds the filesystem and logger shared by all operations
//   - Check: resolves class directories, scans them, diffs against the
//     previous manifest and writes the new one
package engine

import (
	"github.com/charmbracelet/log"

	"github.com/danieljhkim/jpicheck/internal/fsops"
)

// Engine orchestrates jpicheck operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	logger *log.Logger
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, logger *log.Logger) *Engine {
	return &Engine{
		fs:     fs,
		logger: logger,
	}
}
