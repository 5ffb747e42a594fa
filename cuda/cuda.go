// Package cuda binds the CUDA driver API, loaded at run time.
//
// No library is opened until EnsureLoaded is called. Calling a wrapper
// whose symbol was not resolved panics with an error naming the symbol.
package cuda

import (
	"runtime"

	"github.com/agiangrant/cudl/internal/ffi"
)

//go:generate go run ../tools/generate -dir .

// Name is the logical library name of the driver API.
const Name = "cuda"

var (
	library = ffi.NewGlobalLibrary(Name, nil)
	table   = ffi.NewTable(library, LibraryPath)
)

// LibraryPath returns the path EnsureLoaded opens. On Windows the driver is
// installed as nvcuda.dll in the system directory.
func LibraryPath() string {
	l := ffi.DefaultLocator()
	if path, ok := l.Override(Name); ok {
		return path
	}
	if runtime.GOOS == "windows" {
		return "nvcuda.dll"
	}
	return l.Locate(Name)
}

// EnsureLoaded loads the driver library and resolves its symbols. It
// blocks until some goroutine, possibly this one, has finished doing so.
// A load failure is returned as a *ffi.LoadError and may be retried.
func EnsureLoaded() error {
	return table.EnsureLoaded()
}

// Loaded reports whether the driver library is loaded.
func Loaded() bool { return table.Loaded() }

// IsLoaded reports whether the named driver function is available.
func IsLoaded(name string) bool { return table.IsLoaded(name) }

// Path returns the path the driver library was loaded from.
func Path() string { return table.Path() }

// Symbols returns the declared driver function names.
func Symbols() []string { return table.Symbols() }

// Resolved returns the driver functions the loaded library exports.
func Resolved() []string { return table.Resolved() }

// Missing returns the declared driver functions the loaded library lacks.
func Missing() []string { return table.Missing() }
