package engine

import (
	difflib "github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged manifest lines shown around a change.
const diffContext = 2

// manifestDiff renders a unified diff from the previous manifest to the new one.
func manifestDiff(path string, previous, current []byte) (string, error) {
	u := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(string(current)),
		FromFile: path + " (previous)",
		ToFile:   path,
		Context:  diffContext,
	}
	return difflib.GetUnifiedDiffString(u)
}
