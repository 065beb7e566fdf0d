package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/danieljhkim/jpicheck/internal/config"
	"github.com/danieljhkim/jpicheck/internal/overlap"
)

// Check scans the requested class directories and writes the manifest.
//
// Overlap failures are returned unchanged from the overlap package together
// with a partial result carrying the resolved roots. Nothing is written
// unless every check passed.
func (e *Engine) Check(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	if req.Output == "" {
		return nil, fmt.Errorf("%w: output path is required", ErrValidation)
	}

	roots, err := config.ResolveRoots(e.fs, req.ClassesDirs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	output, err := e.fs.Abs(req.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	result := &CheckResult{
		Roots:  roots,
		Output: output,
	}

	for _, root := range roots {
		e.logger.Debug("scanning classes directory", "root", root)
	}

	m, err := overlap.Scan(e.fs, roots)
	if err != nil {
		e.logger.Debug("overlap check failed", "error", err)
		return result, err
	}

	result.Manifest = m
	result.Paths = m.Paths()
	e.logger.Debug("overlap check passed",
		"roots", len(roots),
		"annotations", len(m.Annotations),
		"descriptor", result.DescriptorPath())

	content := overlap.Format(m)
	previous, hadPrevious := e.readPrevious(output)
	result.Changed = !hadPrevious || !bytes.Equal(previous, content)

	if req.Diff && result.Changed {
		diff, err := manifestDiff(output, previous, content)
		if err != nil {
			e.logger.Warn("failed to compute manifest diff", "error", err)
		}
		result.Diff = diff
	}

	if req.DryRun {
		e.logger.Info("dry run, manifest not written", "path", output, "entries", len(result.Paths))
		return result, nil
	}

	if err := checkContext(ctx); err != nil {
		return result, err
	}

	if err := overlap.Write(e.fs, output, m); err != nil {
		return result, err
	}
	result.Written = true

	e.logger.Info("manifest written", "path", output, "entries", len(result.Paths), "changed", result.Changed)
	return result, nil
}

// readPrevious returns the current manifest contents, if any.
func (e *Engine) readPrevious(path string) ([]byte, bool) {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			e.logger.Warn("failed to read previous manifest", "path", path, "error", err)
		}
		return nil, false
	}
	return data, true
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
	default:
		return nil
	}
}
