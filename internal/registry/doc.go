// Package registry provides the central "glue" for the program system.
//
// The Registry holds the ordered catalog of every runnable program the
// launcher knows about: built-in programs compiled into the binary and
// drop-in program files discovered in the programs directory at startup.
// Each catalog entry is an immutable Descriptor binding a human-readable
// label to a zero-argument factory for the concrete Program.
//
// The catalog is populated once during application startup and is read-only
// afterwards; there is no hot reload.
package registry
