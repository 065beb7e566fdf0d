// Package overlap detects file-layout conflicts between compiled class
// output directories before they are merged into a single plugin archive.
//
// Each class output root may carry SezPoz annotation indexes under
// META-INF/annotations and a Jenkins plugin descriptor at
// META-INF/services/hudson.Plugin. Copying several roots into one archive
// silently drops all but one index of the same name, and a plugin can only
// declare one entry point, so both situations are rejected here. The fix in
// either case is joint compilation of the source sets into one root.
//
// Key responsibilities:
//   - Scan roots in caller order and collect every discovered path
//   - Reject annotation indexes that appear in more than one root
//   - Reject more than one plugin descriptor across all roots
//   - Write the manifest of discovered paths only after all checks pass
package overlap
