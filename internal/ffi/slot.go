package ffi

import (
	"slices"
	"sync"
	"sync/atomic"
)

// GlobalLibrary is a process-wide slot holding a shared library that is
// opened at most once and whose dependent symbol tables are populated at
// most once, however many goroutines race to load it.
//
// The library is never closed after it has been published: function values
// resolved from it have no safe revocation.
type GlobalLibrary struct {
	module string
	open   Opener

	lib atomic.Pointer[published]

	// done is set once population has finished. It, not lib, is the
	// source of truth for initialisation.
	done atomic.Bool
	mu   sync.Mutex // serialises population

	attachMu sync.Mutex
	attached []func(Library)
}

type published struct {
	lib Library
}

// NewGlobalLibrary returns an empty slot for module that opens libraries
// with open. A nil open uses the platform loader.
func NewGlobalLibrary(module string, open Opener) *GlobalLibrary {
	if open == nil {
		open = Open
	}
	return &GlobalLibrary{module: module, open: open}
}

// Module returns the logical module name of the slot.
func (g *GlobalLibrary) Module() string {
	return g.module
}

// IsLoaded reports whether a library has been published and population has
// completed. It never blocks.
func (g *GlobalLibrary) IsLoaded() bool {
	return g.done.Load() && g.lib.Load() != nil
}

// Path returns the path of the published library, or "" if none is.
func (g *GlobalLibrary) Path() string {
	if p := g.lib.Load(); p != nil {
		return p.lib.Path()
	}
	return ""
}

// Attach registers a population routine run by populateAttached. It must be
// called before the library is loaded, normally during package
// initialisation.
func (g *GlobalLibrary) Attach(populate func(Library)) {
	g.attachMu.Lock()
	g.attached = append(g.attached, populate)
	g.attachMu.Unlock()
}

// populateAttached runs every attached population routine against lib. It
// is only called through the gate.
func (g *GlobalLibrary) populateAttached(lib Library) {
	g.attachMu.Lock()
	attached := slices.Clone(g.attached)
	g.attachMu.Unlock()
	for _, populate := range attached {
		populate(lib)
	}
}

// TryLoading opens the library at path unless one is already published and
// then runs populate against the published library exactly once across all
// callers. Callers arriving while another goroutine is populating block
// until population is complete, so a nil return always means the symbols
// written by populate are visible to the caller.
//
// A failure to open the library is returned as a *LoadError and is not
// remembered; a later call may succeed.
func (g *GlobalLibrary) TryLoading(path string, populate func(Library)) error {
	p := g.lib.Load()
	if p == nil {
		lib, err := g.open(path)
		if err != nil {
			lerr := newLoadError(g.module, path, err)
			log().Debug("ffi: library load failed", "module", g.module, "path", path, "kind", lerr.Kind, "error", err)
			return lerr
		}
		candidate := &published{lib: lib}
		if g.lib.CompareAndSwap(nil, candidate) {
			p = candidate
			log().Info("ffi: loaded library", "module", g.module, "path", path)
		} else {
			// Lost the race; use the winner's handle and drop ours.
			p = g.lib.Load()
			if err := lib.Close(); err != nil {
				log().Warn("ffi: failed to close duplicate library handle", "module", g.module, "path", path, "error", err)
			} else {
				log().Debug("ffi: discarded duplicate library handle", "module", g.module, "path", path)
			}
		}
	}
	g.once(func() { populate(p.lib) })
	return nil
}

// once runs f if population has not completed, holding the population
// lock. The done store happens after f returns, so any goroutine observing
// done also observes every write f made. If f panics, done stays unset and
// a later call runs f again.
func (g *GlobalLibrary) once(f func()) {
	if g.done.Load() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.done.Load() {
		f()
		g.done.Store(true)
	}
}
