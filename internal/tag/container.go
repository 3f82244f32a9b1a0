// internal/tag/container.go
package tag

import (
	"sort"
	"strings"
)

// Container is an unordered set of tags. The zero value is an empty,
// ready-to-use container.
//
// Containers are not safe for concurrent mutation. Clone before handing a
// container to a second owner that intends to modify it.
type Container struct {
	tags map[Tag]struct{}
}

// NewContainer returns a container holding the given valid tags.
func NewContainer(tags ...Tag) Container {
	var c Container
	for _, t := range tags {
		c.Add(t)
	}
	return c
}

// Add inserts t. Invalid tags and duplicates are ignored.
func (c *Container) Add(t Tag) {
	if !t.IsValid() {
		return
	}
	if c.tags == nil {
		c.tags = make(map[Tag]struct{})
	}
	c.tags[t] = struct{}{}
}

// Remove deletes t if present.
func (c *Container) Remove(t Tag) {
	delete(c.tags, t)
}

// Has reports whether t is in the container (exact match).
func (c Container) Has(t Tag) bool {
	_, ok := c.tags[t]
	return ok
}

// HasMatching reports whether any tag in the container matches parent
// hierarchically.
func (c Container) HasMatching(parent Tag) bool {
	for t := range c.tags {
		if t.MatchesTag(parent) {
			return true
		}
	}
	return false
}

// HasAny reports whether at least one of tags is in the container.
func (c Container) HasAny(tags ...Tag) bool {
	for _, t := range tags {
		if c.Has(t) {
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (c Container) Len() int {
	return len(c.tags)
}

// IsEmpty reports whether the container holds no tags.
func (c Container) IsEmpty() bool {
	return len(c.tags) == 0
}

// Tags returns the tags sorted by path.
func (c Container) Tags() []Tag {
	tags := make([]Tag, 0, len(c.tags))
	for t := range c.tags {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].path < tags[j].path })
	return tags
}

// Strings returns the tag paths sorted.
func (c Container) Strings() []string {
	out := make([]string, 0, len(c.tags))
	for _, t := range c.Tags() {
		out = append(out, t.path)
	}
	return out
}

// Clone returns an independent copy.
func (c Container) Clone() Container {
	var out Container
	for t := range c.tags {
		out.Add(t)
	}
	return out
}

// Reset removes every tag.
func (c *Container) Reset() {
	clear(c.tags)
}

// String renders the container as `{A.B, C.D}`.
func (c Container) String() string {
	return "{" + strings.Join(c.Strings(), ", ") + "}"
}
