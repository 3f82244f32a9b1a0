// Package nativetags holds the gameplay tags the game code refers to by
// name, so systems never scatter tag strings through their logic.
//
// The set is fixed at compile time. Its paths and descriptions live in the
// embedded native_tags.hcl manifest, and each one has a matching field on
// Tags. A Registry registers the whole manifest with an interning authority
// exactly once during startup, after checking that the manifest and the Go
// struct are in sync. From then on the populated Tags value is immutable and
// can be read from any goroutine without locking.
package nativetags
