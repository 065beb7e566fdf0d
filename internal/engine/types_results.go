package engine

import "github.com/danieljhkim/jpicheck/internal/overlap"

// CheckResult represents the outcome of a check.
// On a failed check only Roots and Output are set.
type CheckResult struct {
	// Roots are the resolved absolute roots, in scan order
	Roots []string `json:"roots"`

	// Output is the absolute manifest path
	Output string `json:"output"`

	// Manifest is the scan result
	Manifest *overlap.Manifest `json:"manifest,omitempty"`

	// Paths are the manifest lines
	Paths []string `json:"paths"`

	// Changed reports whether the manifest differs from the previous one
	Changed bool `json:"changed"`

	// Written is false for dry runs
	Written bool `json:"written"`

	// Diff is the unified diff against the previous manifest, when requested
	Diff string `json:"diff,omitempty"`
}

// DescriptorPath returns the plugin descriptor path, or "" if none was found.
func (r *CheckResult) DescriptorPath() string {
	if r.Manifest == nil || r.Manifest.Descriptor == nil {
		return ""
	}
	return r.Manifest.Descriptor.Path
}
