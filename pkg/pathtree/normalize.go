package pathtree

import "sort"

// Normalize splits a raw path and keeps the segments starting at the first
// occurrence of anchor. ok is false when the anchor never appears.
func Normalize(path, anchor string) ([]string, bool) {
	parts := splitSegments(path)
	for i, part := range parts {
		if part == anchor {
			return parts[i:], true
		}
	}
	return nil, false
}

// Build folds every path containing anchor into a new tree and returns its
// synthetic root. Paths are inserted in ascending order; the result does not
// depend on it.
func Build(paths []string, anchor string) *Node {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	root := NewNode()
	for _, path := range sorted {
		parts, ok := Normalize(path, anchor)
		if !ok {
			continue
		}
		root.AddSegments(parts)
	}
	return root
}
