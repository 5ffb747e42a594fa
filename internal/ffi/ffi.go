// Package ffi loads vendor shared libraries at runtime via purego and binds
// their exported functions to typed Go function values.
// This implementation uses purego for FFI, eliminating the need for CGo.
//
// A library is located once (see [Locator]), opened at most once per process
// (see [GlobalLibrary]) and its symbols are resolved at most once into a
// [Table]. Symbols the library does not export are tolerated until a caller
// actually invokes them.
package ffi

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"unsafe"
)

// ============================================================================
// Library Loading
// ============================================================================

// Library is a loaded native shared library.
type Library interface {
	// Path is the path the library was opened from.
	Path() string
	// Lookup returns the address of the named exported symbol.
	Lookup(name string) (uintptr, error)
	// Close releases this reference to the library.
	Close() error
}

// Opener opens the shared library at path.
type Opener func(path string) (Library, error)

// sharedLibrary is a Library backed by the platform loader.
type sharedLibrary struct {
	path   string
	handle uintptr
}

// Open loads the shared library at path with the platform loader.
// A path without a directory component is resolved by the platform's own
// library search.
func Open(path string) (Library, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, err
	}
	return &sharedLibrary{path: path, handle: handle}, nil
}

func (l *sharedLibrary) Path() string { return l.path }

func (l *sharedLibrary) Lookup(name string) (uintptr, error) {
	addr, err := getSymbol(l.handle, name)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, fmt.Errorf("symbol %s resolved to nil", name)
	}
	return addr, nil
}

func (l *sharedLibrary) Close() error {
	return closeLibrary(l.handle)
}

// ============================================================================
// Errors
// ============================================================================

// LoadErrorKind classifies a failure to load a shared library.
type LoadErrorKind int

const (
	// LoadNotFound means the named file does not exist.
	LoadNotFound LoadErrorKind = iota
	// LoadRejected means the platform loader refused the library: wrong
	// architecture, missing dependencies or a bare name the loader could
	// not find on its search path.
	LoadRejected
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadNotFound:
		return "file not found"
	case LoadRejected:
		return "rejected by loader"
	default:
		return fmt.Sprintf("LoadErrorKind(%d)", int(k))
	}
}

// LoadError is returned when a module's shared library cannot be loaded.
// It is never cached; loading may be retried.
type LoadError struct {
	Module string
	Path   string
	Kind   LoadErrorKind
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: failed to load library from %s: %s: %v", e.Module, e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// newLoadError classifies err from opening path.
func newLoadError(module, path string, err error) *LoadError {
	kind := LoadRejected
	if filepath.Base(path) != path {
		if _, serr := os.Stat(path); errors.Is(serr, fs.ErrNotExist) {
			kind = LoadNotFound
		}
	}
	return &LoadError{Module: module, Path: path, Kind: kind, Err: err}
}

// UnresolvedSymbolError reports a call through a symbol that was not
// resolved, either because the library is not loaded or because it does
// not export the symbol.
type UnresolvedSymbolError struct {
	Module string
	Symbol string
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("%s doesn't export %s, or the library isn't loaded", e.Module, e.Symbol)
}

// ============================================================================
// Logging
// ============================================================================

var logger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for library loading. A nil logger restores
// slog.Default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// ============================================================================
// String Helpers for FFI
// ============================================================================

// GoString converts a NUL-terminated C string pointer to a Go string.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Add(unsafe.Pointer(nil), ptr+uintptr(length)))
		if b == 0 {
			break
		}
		length++
		if length > 1<<20 { // Safety limit: 1MB
			break
		}
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Add(unsafe.Pointer(nil), ptr)), length))
}
