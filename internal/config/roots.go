package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danieljhkim/jpicheck/internal/fsops"
)

// ResolveRoots turns class directory arguments into absolute roots.
//
// Plain paths are kept even when they do not exist. Glob patterns
// ("build/classes/*/main") expand to the matching directories, sorted.
// Argument order is preserved and repeated roots are dropped, keeping the
// first occurrence.
func ResolveRoots(fsys fsops.FS, patterns []string) ([]string, error) {
	var roots []string
	seen := make(map[string]bool)

	add := func(path string) error {
		abs, err := fsys.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		if seen[abs] {
			return nil
		}
		seen[abs] = true
		roots = append(roots, abs)
		return nil
	}

	for _, pattern := range patterns {
		if !isGlob(pattern) {
			if err := add(pattern); err != nil {
				return nil, err
			}
			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid classes directory pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			info, err := fsys.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}
			if err := add(match); err != nil {
				return nil, err
			}
		}
	}

	return roots, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
