// internal/tag/manager.go
package tag

import (
	"log/slog"
	"sort"
	"sync"
)

type entry struct {
	tag         Tag
	description string
}

// Manager interns tag paths. It is safe for concurrent use.
type Manager struct {
	logger *slog.Logger

	mu     sync.RWMutex
	byPath map[string]*entry
	order  []*entry
}

// NewManager creates an empty Manager. Conflicting registrations are reported
// to logger; a nil logger discards them.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		logger: logger.With("component", "tags"),
		byPath: make(map[string]*entry),
	}
}

// RegisterOrGet returns the tag for path, registering it with description
// on first use. Repeated calls with the same path return an equal Tag; the
// first description wins.
func (m *Manager) RegisterOrGet(path, description string) (Tag, error) {
	if err := ValidatePath(path); err != nil {
		return None, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if e, exists := m.byPath[path]; exists {
		if e.description != description {
			m.logger.Warn("Tag already registered with a different description, keeping the original.",
				"tag", path, "kept", e.description, "ignored", description)
		}
		return e.tag, nil
	}

	e := &entry{tag: Tag{path: path}, description: description}
	m.byPath[path] = e
	m.order = append(m.order, e)
	return e.tag, nil
}

// Request looks up a previously registered tag without registering it.
func (m *Manager) Request(path string) (Tag, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.byPath[path]
	if !ok {
		return None, false
	}
	return e.tag, true
}

// Description returns the description recorded for t.
func (m *Manager) Description(t Tag) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.byPath[t.path]; ok {
		return e.description
	}
	return ""
}

// Len returns the number of registered tags.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}

// All returns every registered tag in registration order.
func (m *Manager) All() []Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tags := make([]Tag, 0, len(m.order))
	for _, e := range m.order {
		tags = append(tags, e.tag)
	}
	return tags
}

// Children returns every registered tag strictly below parent, sorted by
// path. parent itself does not need to be registered.
func (m *Manager) Children(parent Tag) []Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tags []Tag
	for _, e := range m.order {
		if e.tag != parent && e.tag.MatchesTag(parent) {
			tags = append(tags, e.tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].path < tags[j].path })
	return tags
}

// Category builds a query tag for a category path such as "Weapon.Type",
// for use with Children and Container.HasMatching. The returned tag is not
// registered.
func Category(path string) (Tag, error) {
	if err := ValidatePath(path); err != nil {
		return None, err
	}
	return Tag{path: path}, nil
}
