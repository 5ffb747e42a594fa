//go:build !(darwin || freebsd || linux || netbsd || windows)

package ffi

import (
	"errors"
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("ffi: dynamic loading is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)

var defaultBinder Binder = func(any, uintptr) {
	panic(errUnsupported)
}

func openLibrary(string) (uintptr, error) {
	return 0, errUnsupported
}

func getSymbol(uintptr, string) (uintptr, error) {
	return 0, errUnsupported
}

func closeLibrary(uintptr) error {
	return errors.ErrUnsupported
}
