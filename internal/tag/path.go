// internal/tag/path.go
package tag

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidTagPath is returned for paths that do not follow the
// `Segment.Segment` grammar.
var ErrInvalidTagPath = errors.New("invalid tag path")

// segmentRegex matches a single path segment, e.g. `Weapon` or `1`.
var segmentRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidatePath checks that path is a non-empty dot-separated sequence of
// segments made of letters, digits, and underscores.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidTagPath)
	}

	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return fmt.Errorf("%w: %q contains an empty segment", ErrInvalidTagPath, path)
		}
		if !segmentRegex.MatchString(segment) {
			return fmt.Errorf("%w: invalid segment %q in %q", ErrInvalidTagPath, segment, path)
		}
	}
	return nil
}
