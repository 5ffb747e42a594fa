package ffi

import (
	"fmt"
	"sort"
)

// Binder turns the native function at addr into a Go function value stored
// through fptr, a pointer to a variable of function type.
type Binder func(fptr any, addr uintptr)

// Table is the symbol table of one native module. Symbols are declared
// during package initialisation with Declare and resolved together when the
// module's library is loaded.
type Table struct {
	module string
	lib    *GlobalLibrary
	locate func() string
	bind   Binder

	symbols []symbol
	byName  map[string]symbol
}

// symbol is implemented by *Func.
type symbol interface {
	Name() string
	resolve(lib Library, bind Binder) bool
	present() bool
}

// NewTable returns a table populated from lib. locate is consulted on every
// EnsureLoaded that still needs to open the library.
func NewTable(lib *GlobalLibrary, locate func() string) *Table {
	t := &Table{
		module: lib.Module(),
		lib:    lib,
		locate: locate,
		bind:   defaultBinder,
		byName: make(map[string]symbol),
	}
	lib.Attach(t.populate)
	return t
}

// SetBinder replaces the function used to bind resolved addresses. It must
// be called before the table is populated.
func (t *Table) SetBinder(bind Binder) {
	t.bind = bind
}

// Module returns the logical module name of the table.
func (t *Table) Module() string {
	return t.module
}

// EnsureLoaded locates and loads the module's library and resolves all
// declared symbols, blocking until some goroutine has finished doing so.
func (t *Table) EnsureLoaded() error {
	if t.lib.IsLoaded() {
		return nil
	}
	return t.lib.TryLoading(t.locate(), t.lib.populateAttached)
}

// Loaded reports whether the module's library is loaded and its symbols
// resolved.
func (t *Table) Loaded() bool {
	return t.lib.IsLoaded()
}

// Path returns the path the library was loaded from, or "".
func (t *Table) Path() string {
	return t.lib.Path()
}

// IsLoaded reports whether the named symbol is declared and resolved.
func (t *Table) IsLoaded(name string) bool {
	s, ok := t.byName[name]
	return ok && t.lib.IsLoaded() && s.present()
}

// Symbols returns the declared symbol names in declaration order.
func (t *Table) Symbols() []string {
	names := make([]string, len(t.symbols))
	for i, s := range t.symbols {
		names[i] = s.Name()
	}
	return names
}

// Resolved returns the sorted names of resolved symbols. It is empty until
// the table is loaded.
func (t *Table) Resolved() []string {
	return t.filter(true)
}

// Missing returns the sorted names of declared symbols the library does not
// export. It is empty until the table is loaded.
func (t *Table) Missing() []string {
	return t.filter(false)
}

func (t *Table) filter(present bool) []string {
	if !t.lib.IsLoaded() {
		return nil
	}
	var names []string
	for _, s := range t.symbols {
		if s.present() == present {
			names = append(names, s.Name())
		}
	}
	sort.Strings(names)
	return names
}

// populate resolves every declared symbol against lib. A symbol the library
// does not export is left absent.
func (t *Table) populate(lib Library) {
	var missing int
	for _, s := range t.symbols {
		if !s.resolve(lib, t.bind) {
			missing++
		}
	}
	log().Debug("ffi: resolved symbols", "module", t.module, "declared", len(t.symbols), "missing", missing)
}

// Func is a declared native function with Go signature F.
type Func[F any] struct {
	table *Table
	name  string
	fn    F
	ok    bool
}

// Declare adds the native function name with signature F to t. F must be a
// func type whose parameters and results purego can pass. Declare must be
// called before t is loaded, normally from a package-level var.
func Declare[F any](t *Table, name string) *Func[F] {
	if _, dup := t.byName[name]; dup {
		panic(fmt.Sprintf("ffi: %s: symbol %s declared twice", t.module, name))
	}
	f := &Func[F]{table: t, name: name}
	t.symbols = append(t.symbols, f)
	t.byName[name] = f
	return f
}

// Name returns the native symbol name.
func (f *Func[F]) Name() string {
	return f.name
}

// IsLoaded reports whether the module is loaded and exports f.
func (f *Func[F]) IsLoaded() bool {
	return f.table.lib.IsLoaded() && f.ok
}

// Get returns the bound function. It panics with *UnresolvedSymbolError if
// the module is not loaded or does not export f.
func (f *Func[F]) Get() F {
	fn, err := f.Lookup()
	if err != nil {
		panic(err)
	}
	return fn
}

// Lookup returns the bound function, or *UnresolvedSymbolError.
func (f *Func[F]) Lookup() (F, error) {
	if !f.IsLoaded() {
		var zero F
		return zero, &UnresolvedSymbolError{Module: f.table.module, Symbol: f.name}
	}
	return f.fn, nil
}

func (f *Func[F]) resolve(lib Library, bind Binder) bool {
	addr, err := lib.Lookup(f.name)
	if err != nil {
		log().Debug("ffi: symbol not exported", "module", f.table.module, "symbol", f.name, "error", err)
		return false
	}
	bind(&f.fn, addr)
	f.ok = true
	return true
}

func (f *Func[F]) present() bool {
	return f.ok
}
