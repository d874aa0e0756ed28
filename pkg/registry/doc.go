// Package registry provides a generic, thread-safe name-to-item registry.
// Registries are explicit values: callers create one with New and pass it
// to whatever needs it, so independent registries never share state.
package registry
