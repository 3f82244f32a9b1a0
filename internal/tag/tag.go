// internal/tag/tag.go
package tag

import "strings"

// Tag is an interned gameplay tag. The zero value is the invalid tag.
//
// Two tags are equal if and only if their paths are equal, so a Tag can be
// compared with == and used as a map key.
type Tag struct {
	path string
}

// None is the invalid, unset tag.
var None = Tag{}

// String returns the full dotted path, or "" for the invalid tag.
func (t Tag) String() string {
	return t.path
}

// IsValid reports whether the tag carries a non-empty path. Only tags issued
// by a Manager are registered; Parent and Category build valid tags that
// may not be.
func (t Tag) IsValid() bool {
	return t.path != ""
}

// MatchesTag reports whether t equals parent or sits below it in the
// hierarchy. `A.B.C` matches `A.B` and `A`, but not `A.BC`.
func (t Tag) MatchesTag(parent Tag) bool {
	if !t.IsValid() || !parent.IsValid() {
		return false
	}
	if t.path == parent.path {
		return true
	}
	return strings.HasPrefix(t.path, parent.path) && t.path[len(parent.path)] == '.'
}

// Parent returns the direct parent of t, or None for a top-level tag.
//
// The parent is not necessarily registered with any Manager; it only
// carries the truncated path.
func (t Tag) Parent() Tag {
	i := strings.LastIndexByte(t.path, '.')
	if i < 0 {
		return None
	}
	return Tag{path: t.path[:i]}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.path), nil
}
