// internal/tag/doc.go

/*
Package tag provides gameplay tags: interned, comparable identifiers for
dot-separated names such as `Weapon.State.Firing`.

A valid Tag carries a non-empty path; only tags issued by a Manager are
registered. The Manager acts as the interning authority. It validates the
path grammar, deduplicates repeated registrations of the same path, and
answers hierarchical category queries (e.g. every tag under `Weapon`).
Tag.Parent and Category build query tags that need not be registered. The hierarchy is purely a naming convention: a Tag carries its full
path and nothing else.

Container is the unordered tag set carried by payloads such as damage events
and by actors to describe their current state.
*/
package tag
