package library

import "strings"

// Relative paths are always "/" separated, whatever the host OS. All joins
// between the active root and a relative path go through this file.

const pathSep = "/"

// Resolve turns a relative path into an absolute one under root.
// An empty relative path is the root itself.
func Resolve(root, rel string) string {
	if rel == "" {
		return root
	}
	return strings.TrimSuffix(root, pathSep) + pathSep + rel
}

// JoinRelative joins the non-empty segments with "/".
func JoinRelative(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, pathSep)
}

// SplitRelative splits a relative path into its segments. Empty segments
// (from a leading or doubled "/") are kept so callers can see them.
func SplitRelative(rel string) []string {
	return strings.Split(rel, pathSep)
}
