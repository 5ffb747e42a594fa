//go:build darwin || freebsd || linux || netbsd

package ffi

import (
	"github.com/ebitengine/purego"
)

// defaultBinder binds resolved addresses with purego.
var defaultBinder Binder = purego.RegisterFunc

// openLibrary loads a dynamic library on Unix-like systems
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// getSymbol retrieves a symbol from the loaded library
func getSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

// closeLibrary drops one reference to the library
func closeLibrary(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
