// Package cudl loads the CUDA driver, runtime and cuBLAS libraries lazily
// at run time.
//
// The bindings live in the cuda, cudart and cublas packages. Each loads its
// library on the first call to its EnsureLoaded, exactly once per process
// and safely under concurrent first use. This package configures where the
// libraries are searched for and reports on all of them together.
package cudl

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/agiangrant/cudl/cublas"
	"github.com/agiangrant/cudl/cuda"
	"github.com/agiangrant/cudl/cudart"
	"github.com/agiangrant/cudl/internal/ffi"
)

// LoadError reports that a library file could not be loaded.
type LoadError = ffi.LoadError

// UnresolvedSymbolError is the panic value of a call to a function the
// loaded library does not export, or made before the library is loaded.
type UnresolvedSymbolError = ffi.UnresolvedSymbolError

// Module describes one bound vendor library.
type Module struct {
	Name string

	locate       func() string
	ensureLoaded func() error
	loaded       func() bool
	path         func() string
	symbols      func() []string
	resolved     func() []string
	missing      func() []string
}

var modules = []Module{
	{
		Name:         cuda.Name,
		locate:       cuda.LibraryPath,
		ensureLoaded: cuda.EnsureLoaded,
		loaded:       cuda.Loaded,
		path:         cuda.Path,
		symbols:      cuda.Symbols,
		resolved:     cuda.Resolved,
		missing:      cuda.Missing,
	},
	{
		Name:         cudart.Name,
		locate:       cudart.LibraryPath,
		ensureLoaded: cudart.EnsureLoaded,
		loaded:       cudart.Loaded,
		path:         cudart.Path,
		symbols:      cudart.Symbols,
		resolved:     cudart.Resolved,
		missing:      cudart.Missing,
	},
	{
		Name:         cublas.Name,
		locate:       cublas.LibraryPath,
		ensureLoaded: cublas.EnsureLoaded,
		loaded:       cublas.Loaded,
		path:         cublas.Path,
		symbols:      cublas.Symbols,
		resolved:     cublas.Resolved,
		missing:      cublas.Missing,
	},
}

// Modules returns every bound module in dependency order.
func Modules() []Module {
	return append([]Module(nil), modules...)
}

// LookupModule returns the module with the given name.
func LookupModule(name string) (Module, bool) {
	for _, m := range modules {
		if m.Name == name {
			return m, true
		}
	}
	return Module{}, false
}

// LibraryPath returns the path the module's library would be loaded from
// with the current configuration.
func (m Module) LibraryPath() string { return m.locate() }

// EnsureLoaded loads the module's library if necessary.
func (m Module) EnsureLoaded() error { return m.ensureLoaded() }

// Loaded reports whether the module's library is loaded.
func (m Module) Loaded() bool { return m.loaded() }

// Path returns the path the library was loaded from, or "".
func (m Module) Path() string { return m.path() }

// Symbols returns the function names the module declares.
func (m Module) Symbols() []string { return m.symbols() }

// Status reports the module's current state without loading it.
func (m Module) Status() ModuleStatus {
	return ModuleStatus{
		Name:     m.Name,
		Loaded:   m.loaded(),
		Path:     m.path(),
		Declared: len(m.symbols()),
		Resolved: m.resolved(),
		Missing:  m.missing(),
	}
}

// ModuleStatus is a snapshot of a module's load state.
type ModuleStatus struct {
	Name     string
	Loaded   bool
	Path     string
	Declared int
	Resolved []string
	Missing  []string
	// Err is the load error, set only by Probe.
	Err error
}

// SelectModules returns the named modules, or all modules when none are
// named.
func SelectModules(names ...string) ([]Module, error) {
	if len(names) == 0 {
		return Modules(), nil
	}
	selected := make([]Module, 0, len(names))
	for _, name := range names {
		m, ok := LookupModule(name)
		if !ok {
			return nil, fmt.Errorf("unknown module %q", name)
		}
		selected = append(selected, m)
	}
	return selected, nil
}

// Report returns the status of the named modules, or of all modules when
// none are named, without loading anything.
func Report(names ...string) ([]ModuleStatus, error) {
	selected, err := SelectModules(names...)
	if err != nil {
		return nil, err
	}
	statuses := make([]ModuleStatus, len(selected))
	for i, m := range selected {
		statuses[i] = m.Status()
	}
	return statuses, nil
}

// Probe loads the named modules, or all modules when none are named,
// concurrently and returns their status. A load failure is reported in the
// module's ModuleStatus.Err; the returned error is non-nil only for unknown
// module names.
func Probe(names ...string) ([]ModuleStatus, error) {
	selected, err := SelectModules(names...)
	if err != nil {
		return nil, err
	}
	statuses := make([]ModuleStatus, len(selected))
	var wg sync.WaitGroup
	for i, m := range selected {
		wg.Go(func() {
			err := m.EnsureLoaded()
			statuses[i] = m.Status()
			statuses[i].Err = err
		})
	}
	wg.Wait()
	return statuses, nil
}

// EnsureAll loads the named modules, or all modules when none are named,
// and returns every load failure joined.
func EnsureAll(names ...string) error {
	statuses, err := Probe(names...)
	if err != nil {
		return err
	}
	var errs []error
	for _, s := range statuses {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errors.Join(errs...)
}

// SetLogger sets the logger used for load diagnostics. The default is
// slog.Default().
func SetLogger(l *slog.Logger) {
	ffi.SetLogger(l)
}
