package ffi

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

type testStatus int32

// newTestTable returns a table over a fake library exporting fns, with
// three declared symbols.
func newTestTable(t *testing.T, fns map[string]any) (tab *Table, opener *countingOpener, add *Func[func(a, b int32) int32], version *Func[func(v *int32) testStatus], reset *Func[func() testStatus]) {
	t.Helper()
	opener = &countingOpener{fns: fns}
	g := NewGlobalLibrary("fakeblas", opener.open)
	tab = NewTable(g, func() string { return "libfakeblas.so" })
	tab.SetBinder(bindRegistered)
	add = Declare[func(a, b int32) int32](tab, "fakeAdd")
	version = Declare[func(v *int32) testStatus](tab, "fakeGetVersion")
	reset = Declare[func() testStatus](tab, "fakeReset")
	return tab, opener, add, version, reset
}

func TestTableDispatch(t *testing.T) {
	tab, _, add, version, reset := newTestTable(t, map[string]any{
		"fakeAdd":        func(a, b int32) int32 { return a + b },
		"fakeGetVersion": func(v *int32) testStatus { *v = 11020; return 0 },
		"fakeReset":      func() testStatus { return 3 },
	})
	if tab.Loaded() {
		t.Fatal("table loaded before EnsureLoaded")
	}
	if err := tab.EnsureLoaded(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := add.Get()(2, 3); got != 5 {
		t.Errorf("unexpected sum: got %d, want 5", got)
	}
	var v int32
	if status := version.Get()(&v); status != 0 || v != 11020 {
		t.Errorf("unexpected version result: status=%d version=%d", status, v)
	}
	// Status codes pass through untouched.
	if got := reset.Get()(); got != 3 {
		t.Errorf("unexpected status: got %d, want 3", got)
	}
	if got := tab.Path(); got != "libfakeblas.so" {
		t.Errorf("unexpected path: got %q", got)
	}
}

func TestTableMissingSymbol(t *testing.T) {
	tab, _, add, version, reset := newTestTable(t, map[string]any{
		"fakeAdd":   func(a, b int32) int32 { return a + b },
		"fakeReset": func() testStatus { return 0 },
	})
	if err := tab.EnsureLoaded(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tab.Loaded() {
		t.Error("table with a missing symbol should still be loaded")
	}
	for _, name := range []string{"fakeAdd", "fakeReset"} {
		if !tab.IsLoaded(name) {
			t.Errorf("expected %s to be loaded", name)
		}
	}
	if tab.IsLoaded("fakeGetVersion") {
		t.Error("expected fakeGetVersion not to be loaded")
	}
	if tab.IsLoaded("notDeclared") {
		t.Error("undeclared symbol reported as loaded")
	}
	if !add.IsLoaded() || !reset.IsLoaded() || version.IsLoaded() {
		t.Errorf("unexpected per-symbol state: add=%t reset=%t version=%t", add.IsLoaded(), reset.IsLoaded(), version.IsLoaded())
	}

	if diff := cmp.Diff([]string{"fakeAdd", "fakeReset"}, tab.Resolved()); diff != "" {
		t.Errorf("unexpected resolved symbols (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fakeGetVersion"}, tab.Missing()); diff != "" {
		t.Errorf("unexpected missing symbols (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fakeAdd", "fakeGetVersion", "fakeReset"}, tab.Symbols()); diff != "" {
		t.Errorf("unexpected declared symbols (-want +got):\n%s", diff)
	}

	_, err := version.Lookup()
	var uerr *UnresolvedSymbolError
	if !errors.As(err, &uerr) || uerr.Module != "fakeblas" || uerr.Symbol != "fakeGetVersion" {
		t.Errorf("unexpected lookup error: %v", err)
	}
}

func TestTableCallUnresolvedPanics(t *testing.T) {
	tests := []struct {
		name string
		load bool
	}{
		{name: "not loaded", load: false},
		{name: "not exported", load: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tab, _, _, version, _ := newTestTable(t, map[string]any{
				"fakeAdd": func(a, b int32) int32 { return a + b },
			})
			if test.load {
				if err := tab.EnsureLoaded(); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			called := false
			func() {
				defer func() {
					r := recover()
					err, ok := r.(*UnresolvedSymbolError)
					if !ok {
						t.Fatalf("expected *UnresolvedSymbolError panic, got %T: %v", r, r)
					}
					if err.Module != "fakeblas" || err.Symbol != "fakeGetVersion" {
						t.Errorf("panic does not name module and symbol: %v", err)
					}
				}()
				var v int32
				version.Get()(&v)
				called = true
			}()
			if called {
				t.Error("call through unresolved symbol returned")
			}
		})
	}
}

func TestTableStateBeforeLoad(t *testing.T) {
	tab, opener, add, _, _ := newTestTable(t, map[string]any{
		"fakeAdd": func(a, b int32) int32 { return a + b },
	})
	if tab.IsLoaded("fakeAdd") || add.IsLoaded() {
		t.Error("symbol reported loaded before the table")
	}
	if got := tab.Resolved(); got != nil {
		t.Errorf("unexpected resolved symbols before load: %v", got)
	}
	if got := tab.Missing(); got != nil {
		t.Errorf("unexpected missing symbols before load: %v", got)
	}
	if got := opener.calls.Load(); got != 0 {
		t.Errorf("library opened before EnsureLoaded: %d", got)
	}
}

func TestTableEnsureLoadedConcurrent(t *testing.T) {
	const goroutines = 64

	var resolved atomic.Int32
	tab, opener, add, _, _ := newTestTable(t, map[string]any{
		"fakeAdd": func(a, b int32) int32 { return a + b },
	})
	tab.lib.Attach(func(Library) { resolved.Add(1) })

	var eg errgroup.Group
	for i := 0; i < goroutines; i++ {
		eg.Go(func() error {
			if err := tab.EnsureLoaded(); err != nil {
				return err
			}
			// Every successful caller sees a fully populated table.
			if got := add.Get()(int32(i), 1); got != int32(i)+1 {
				t.Errorf("goroutine %d: unexpected sum %d", i, got)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resolved.Load(); got != 1 {
		t.Errorf("population ran %d times, want 1", got)
	}
	opener.mu.Lock()
	defer opener.mu.Unlock()
	var live int
	for _, lib := range opener.libs {
		if lib.closed.Load() == 0 {
			live++
		}
	}
	if live != 1 {
		t.Errorf("got %d live library handles, want 1", live)
	}
}

func TestTablesShareSlot(t *testing.T) {
	opener := &countingOpener{fns: map[string]any{
		"fakeAdd": func(a, b int32) int32 { return a + b },
		"fakeNeg": func(a int32) int32 { return -a },
	}}
	g := NewGlobalLibrary("fakeblas", opener.open)
	locate := func() string { return "libfakeblas.so" }
	first := NewTable(g, locate)
	first.SetBinder(bindRegistered)
	second := NewTable(g, locate)
	second.SetBinder(bindRegistered)
	add := Declare[func(a, b int32) int32](first, "fakeAdd")
	neg := Declare[func(a int32) int32](second, "fakeNeg")

	if err := first.EnsureLoaded(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Loaded() {
		t.Error("table sharing the slot not loaded")
	}
	if got := neg.Get()(add.Get()(1, 2)); got != -3 {
		t.Errorf("unexpected result: got %d, want -3", got)
	}
	if err := second.EnsureLoaded(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := opener.calls.Load(); got != 1 {
		t.Errorf("library opened %d times, want 1", got)
	}
}

func TestDeclareTwicePanics(t *testing.T) {
	tab, _, _, _, _ := newTestTable(t, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate declaration")
		}
	}()
	Declare[func() testStatus](tab, "fakeReset")
}

func TestTablePopulationPanicIsRetried(t *testing.T) {
	tab, opener, add, _, _ := newTestTable(t, map[string]any{
		"fakeAdd": func(a, b int32) int32 { return a + b },
	})
	var calls atomic.Int32
	tab.SetBinder(func(fptr any, addr uintptr) {
		if calls.Add(1) == 1 {
			panic("cannot bind signature")
		}
		bindRegistered(fptr, addr)
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected population to panic")
			}
		}()
		tab.EnsureLoaded()
	}()
	if tab.Loaded() || add.IsLoaded() {
		t.Fatal("table reported loaded after population panicked")
	}

	if err := tab.EnsureLoaded(); err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if !tab.Loaded() || !add.IsLoaded() {
		t.Fatal("table not loaded after retry")
	}
	if got := add.Get()(4, 5); got != 9 {
		t.Errorf("unexpected sum: got %d, want 9", got)
	}
	if got := opener.calls.Load(); got != 1 {
		t.Errorf("library opened %d times, want 1", got)
	}
}
