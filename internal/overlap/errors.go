package overlap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCollision indicates an annotation index present in more than one root.
	ErrCollision = errors.New("overlapping annotation index")

	// ErrMultiplicity indicates more than one root declares a plugin descriptor.
	ErrMultiplicity = errors.New("multiple plugin descriptors")

	// ErrWrite indicates the manifest could not be written.
	ErrWrite = errors.New("manifest write failed")
)

// CollisionError reports an annotation index file name produced by two roots.
type CollisionError struct {
	// Name is the index file name relative to META-INF/annotations.
	Name string

	// FirstRoot is the root that registered Name first.
	FirstRoot string

	// Root is the root in which the duplicate was found.
	Root string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("found overlapping SezPoz file: %s (in %s, already provided by %s). Use joint compilation!",
		e.Name, e.Root, e.FirstRoot)
}

// Is reports whether target is ErrCollision.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// MultiplicityError reports every plugin descriptor found when more than one
// root declares a plugin entry point.
type MultiplicityError struct {
	// Paths lists descriptor paths in root order.
	Paths []string
}

func (e *MultiplicityError) Error() string {
	return fmt.Sprintf("found multiple directories containing Jenkins plugin implementations ('%s'). "+
		"Use joint compilation to work around this problem", strings.Join(e.Paths, ", "))
}

// Is reports whether target is ErrMultiplicity.
func (e *MultiplicityError) Is(target error) bool {
	return target == ErrMultiplicity
}

// WriteError wraps an I/O failure while writing the manifest.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
