// Package store persists calculation history.
//
// The package defines the Store interface and two implementations: a
// CSV-backed store used by the application and an in-memory store used
// for tests and ephemeral sessions. Loading is tolerant: rows that no
// longer parse, or that name an operation the registry does not know,
// are skipped with a warning instead of failing the whole load.
package store
