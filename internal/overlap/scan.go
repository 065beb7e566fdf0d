package overlap

import (
	"path/filepath"

	"github.com/danieljhkim/jpicheck/internal/fsops"
)

const (
	// AnnotationsDir holds SezPoz annotation indexes, one file per annotation type.
	AnnotationsDir = "META-INF/annotations"

	// PluginDescriptor is the service file naming the hudson.Plugin implementation.
	PluginDescriptor = "META-INF/services/hudson.Plugin"
)

// Entry is a path discovered under one of the scanned roots.
type Entry struct {
	// Path is the absolute path of the entry.
	Path string `json:"path"`

	// Key is the name compared across roots.
	Key string `json:"key"`

	// Root is the absolute root the entry was found in.
	Root string `json:"root"`

	// Regular is false for directories and other non-regular entries.
	// Those are listed in the manifest but never collide.
	Regular bool `json:"regular"`
}

// Scan inspects roots in the given order and returns every discovered
// annotation index and plugin descriptor.
//
// A root that does not exist, or has no annotations directory, contributes
// nothing. Scan fails with *CollisionError when a regular annotation index
// name was already registered by an earlier root, and with
// *MultiplicityError when more than one root has a plugin descriptor.
// Scan never writes.
func Scan(fsys fsops.FS, roots []string) (*Manifest, error) {
	m := &Manifest{}
	owners := make(map[string]string)

	absRoots := make([]string, 0, len(roots))
	for _, root := range roots {
		absRoots = append(absRoots, absPath(fsys, root))
	}

	for _, root := range absRoots {
		dir := filepath.Join(root, filepath.FromSlash(AnnotationsDir))
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			// Missing or unlistable: nothing to contribute
			continue
		}

		for _, de := range entries {
			name := de.Name()
			entry := Entry{
				Path:    filepath.Join(dir, name),
				Key:     name,
				Root:    root,
				Regular: isRegular(fsys, filepath.Join(dir, name)),
			}
			m.Annotations = append(m.Annotations, entry)

			if !entry.Regular {
				continue
			}
			if first, ok := owners[name]; ok {
				return nil, &CollisionError{Name: name, FirstRoot: first, Root: root}
			}
			owners[name] = root
		}
	}

	var descriptors []Entry
	for _, root := range absRoots {
		path := filepath.Join(root, filepath.FromSlash(PluginDescriptor))
		exists, err := fsys.Exists(path)
		if err != nil || !exists {
			continue
		}
		descriptors = append(descriptors, Entry{
			Path:    path,
			Key:     PluginDescriptor,
			Root:    root,
			Regular: isRegular(fsys, path),
		})
	}

	if len(descriptors) > 1 {
		paths := make([]string, 0, len(descriptors))
		for _, d := range descriptors {
			paths = append(paths, d.Path)
		}
		return nil, &MultiplicityError{Paths: paths}
	}
	if len(descriptors) == 1 {
		m.Descriptor = &descriptors[0]
	}

	return m, nil
}

// isRegular follows symlinks, so a link to a regular file counts as one.
func isRegular(fsys fsops.FS, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func absPath(fsys fsops.FS, path string) string {
	abs, err := fsys.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
