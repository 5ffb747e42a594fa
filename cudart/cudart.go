// Package cudart binds the CUDA runtime API, loaded at run time.
package cudart

import (
	"github.com/agiangrant/cudl/internal/ffi"
)

//go:generate go run ../tools/generate -dir .

// Name is the logical library name of the runtime API.
const Name = "cudart"

var (
	library = ffi.NewGlobalLibrary(Name, nil)
	table   = ffi.NewTable(library, LibraryPath)
)

// LibraryPath returns the path EnsureLoaded opens.
func LibraryPath() string {
	return ffi.Locate(Name)
}

// EnsureLoaded loads the runtime library and resolves its symbols,
// blocking until some goroutine has finished doing so.
func EnsureLoaded() error {
	return table.EnsureLoaded()
}

// Loaded reports whether the runtime library is loaded.
func Loaded() bool { return table.Loaded() }

// IsLoaded reports whether the named runtime function is available.
func IsLoaded(name string) bool { return table.IsLoaded(name) }

// Path returns the path the runtime library was loaded from.
func Path() string { return table.Path() }

// Symbols returns the declared runtime function names.
func Symbols() []string { return table.Symbols() }

// Resolved returns the runtime functions the loaded library exports.
func Resolved() []string { return table.Resolved() }

// Missing returns the declared runtime functions the loaded library lacks.
func Missing() []string { return table.Missing() }
