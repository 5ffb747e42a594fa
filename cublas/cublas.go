// Package cublas binds the cuBLAS dense linear algebra library, loaded at
// run time.
//
// Matrix and vector arguments are device addresses obtained from the
// runtime, e.g. cudart.Malloc. Scalars such as alpha and beta are host
// pointers unless the handle's pointer mode is PointerModeDevice.
package cublas

import (
	"github.com/agiangrant/cudl/internal/ffi"
)

//go:generate go run ../tools/generate -dir .

// Name is the logical library name of cuBLAS.
const Name = "cublas"

var (
	library = ffi.NewGlobalLibrary(Name, nil)
	table   = ffi.NewTable(library, LibraryPath)
)

// LibraryPath returns the path EnsureLoaded opens.
func LibraryPath() string {
	return ffi.Locate(Name)
}

// EnsureLoaded loads cuBLAS and resolves its symbols, blocking until some
// goroutine has finished doing so.
func EnsureLoaded() error {
	return table.EnsureLoaded()
}

// Loaded reports whether cuBLAS is loaded.
func Loaded() bool { return table.Loaded() }

// IsLoaded reports whether the named cuBLAS function is available.
func IsLoaded(name string) bool { return table.IsLoaded(name) }

// Path returns the path cuBLAS was loaded from.
func Path() string { return table.Path() }

// Symbols returns the declared cuBLAS function names.
func Symbols() []string { return table.Symbols() }

// Resolved returns the cuBLAS functions the loaded library exports.
func Resolved() []string { return table.Resolved() }

// Missing returns the declared cuBLAS functions the loaded library lacks.
func Missing() []string { return table.Missing() }
