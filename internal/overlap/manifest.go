package overlap

import (
	"bytes"

	"github.com/danieljhkim/jpicheck/internal/fsops"
)

// manifestPerm is the mode of a freshly written manifest.
const manifestPerm = 0644

// Manifest is the ordered result of a successful scan.
type Manifest struct {
	// Annotations are listed in root order, then by name within a root.
	Annotations []Entry `json:"annotations"`

	// Descriptor is the single plugin descriptor, if any root has one.
	Descriptor *Entry `json:"descriptor,omitempty"`
}

// Paths returns annotation paths followed by the descriptor path.
func (m *Manifest) Paths() []string {
	paths := make([]string, 0, len(m.Annotations)+1)
	for _, e := range m.Annotations {
		paths = append(paths, e.Path)
	}
	if m.Descriptor != nil {
		paths = append(paths, m.Descriptor.Path)
	}
	return paths
}

// Format renders the manifest as UTF-8 text, one path per line.
func Format(m *Manifest) []byte {
	var buf bytes.Buffer
	for _, p := range m.Paths() {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Write replaces the file at path with the formatted manifest. The write
// goes through a temp file and rename, so a failure leaves any previous
// manifest untouched.
func Write(fsys fsops.FS, path string, m *Manifest) error {
	if err := fsys.AtomicWrite(path, Format(m), manifestPerm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Validate scans roots and, only if every check passes, writes the manifest
// to output.
func Validate(fsys fsops.FS, roots []string, output string) (*Manifest, error) {
	m, err := Scan(fsys, roots)
	if err != nil {
		return nil, err
	}
	if err := Write(fsys, output, m); err != nil {
		return nil, err
	}
	return m, nil
}
