package path

import "strings"

// DefaultSeparator joins path segments in diagnostic output.
const DefaultSeparator = "."

// Path is an ordered sequence of keys from the state root to a location in the
// state tree. The empty path denotes the root.
type Path []string

// Root reports whether p addresses the state root.
func (p Path) Root() bool {
	return len(p) == 0
}

// Append returns a new Path with key added. The receiver is never modified, so
// sibling paths built from the same base never share a backing array.
func (p Path) Append(key string) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = key
	return next
}

// Join renders p with segments separated by sep.
func (p Path) Join(sep string) string {
	return strings.Join(p, sep)
}

// String renders p as a dotted path.
func (p Path) String() string {
	return p.Join(DefaultSeparator)
}
