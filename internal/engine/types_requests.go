package engine

// CheckRequest represents a request to check class directories for overlaps.
type CheckRequest struct {
	// ClassesDirs are class output roots or glob patterns, in priority order
	ClassesDirs []string

	// Output is the manifest destination
	Output string

	// DryRun runs every check but does not write the manifest
	DryRun bool

	// Diff computes a unified diff against the previous manifest
	Diff bool
}
