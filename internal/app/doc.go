// Package app contains the core application logic. It wires the tag
// authority, the native tag registry, and the scenario runner together,
// decoupled from any specific entrypoint like a CLI.
package app
