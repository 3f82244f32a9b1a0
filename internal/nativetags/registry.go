package nativetags

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/specialistvlad/tircore/internal/ctxlog"
	"github.com/specialistvlad/tircore/internal/tag"
)

// Authority is the interning authority native tags are registered with.
// tag.Manager implements it.
type Authority interface {
	RegisterOrGet(path, description string) (tag.Tag, error)
}

// Entry describes one registered native tag.
type Entry struct {
	Field       string
	Category    string
	Path        string
	Description string
	Tag         tag.Tag
}

// snapshot is everything published by a successful initialization.
type snapshot struct {
	tags    Tags
	entries []Entry
	byPath  map[string]tag.Tag
}

// Registry owns the native tag slots of one application instance.
type Registry struct {
	authority Authority
	manifest  []byte
	filename  string

	once      sync.Once
	err       error
	published atomic.Pointer[snapshot]
}

// New creates an uninitialized Registry bound to authority.
func New(authority Authority) *Registry {
	return newRegistry(authority, nativeManifest, nativeManifestName)
}

func newRegistry(authority Authority, manifest []byte, filename string) *Registry {
	return &Registry{
		authority: authority,
		manifest:  manifest,
		filename:  filename,
	}
}

// InitializeNativeTags registers every manifest tag with the authority, in
// manifest order, and publishes the populated slots.
//
// Only the first call does any work. Later calls are no-ops that return the
// first call's result. On failure no slot is published, so the registry
// stays entirely unset; callers are expected to treat the error as fatal.
func (r *Registry) InitializeNativeTags(ctx context.Context) error {
	r.once.Do(func() {
		r.err = r.addAllTags(ctx)
	})
	return r.err
}

func (r *Registry) addAllTags(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	manifest, err := parseManifest(r.manifest, r.filename)
	if err != nil {
		return err
	}

	slotsType := reflect.TypeOf(Tags{})
	fields, err := validateManifest(manifest, slotsType)
	if err != nil {
		return err
	}

	snap := &snapshot{
		entries: make([]Entry, 0, len(manifest)),
		byPath:  make(map[string]tag.Tag, len(manifest)),
	}
	slots := reflect.ValueOf(&snap.tags).Elem()

	for _, m := range manifest {
		t, err := r.authority.RegisterOrGet(m.Path, m.Description)
		if err != nil {
			return fmt.Errorf("failed to register native tag '%s': %w", m.Path, err)
		}
		if !t.IsValid() || t.String() != m.Path {
			return fmt.Errorf("failed to register native tag '%s': authority returned '%s'", m.Path, t)
		}

		idx := fields[m.Path]
		slots.Field(idx).Set(reflect.ValueOf(t))
		snap.byPath[m.Path] = t
		snap.entries = append(snap.entries, Entry{
			Field:       slotsType.Field(idx).Name,
			Category:    m.Category,
			Path:        m.Path,
			Description: m.Description,
			Tag:         t,
		})
	}

	r.published.Store(snap)
	logger.Info("Native gameplay tags initialized.", "count", len(snap.entries))
	return nil
}

// Initialized reports whether the slots have been published.
func (r *Registry) Initialized() bool {
	return r.published.Load() != nil
}

// Get returns the native tag slots. Before InitializeNativeTags has
// succeeded every slot holds the invalid tag; that is a caller precondition,
// not an error.
func (r *Registry) Get() *Tags {
	if snap := r.published.Load(); snap != nil {
		return &snap.tags
	}
	return &Tags{}
}

// SlotFor looks up a native tag by its path.
func (r *Registry) SlotFor(path string) (tag.Tag, bool) {
	snap := r.published.Load()
	if snap == nil {
		return tag.None, false
	}
	t, ok := snap.byPath[path]
	return t, ok
}

// Entries returns the registered tags in registration order, or nil before
// initialization.
func (r *Registry) Entries() []Entry {
	snap := r.published.Load()
	if snap == nil {
		return nil
	}
	out := make([]Entry, len(snap.entries))
	copy(out, snap.entries)
	return out
}
