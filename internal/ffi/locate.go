package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
)

// Default search settings for vendor libraries.
var (
	// DefaultVersions are the vendor version numbers tried, most preferred
	// first. These are best guesses at shipped library versions.
	DefaultVersions = []int{100, 90, 80, 70}

	// DefaultPrefixes are the standard installation prefixes searched
	// after the environment.
	DefaultPrefixes = []string{"/usr/local/cuda", "/opt/cuda"}
)

const (
	DefaultPrimaryEnv   = "CUDA_PATH"
	DefaultSecondaryEnv = "CUDA_LIBRARY_PATH"
)

// Locator finds shared library files for logical library names.
// The zero value searches with the defaults for the running platform.
type Locator struct {
	// PrimaryEnv and SecondaryEnv name environment variables holding
	// search path lists. Empty means the defaults.
	PrimaryEnv   string
	SecondaryEnv string

	// Prefixes are the standard installation prefixes. Nil means
	// DefaultPrefixes.
	Prefixes []string

	// Versions are the candidate version numbers in descending
	// preference. Nil means DefaultVersions.
	Versions []int

	// Overrides maps a logical name to an explicit path that is returned
	// without searching.
	Overrides map[string]string

	// GOOS and PtrSize describe the target platform. Zero values mean
	// the running platform.
	GOOS    string
	PtrSize int

	// Getenv and IsFile replace environment and filesystem access.
	Getenv func(string) string
	IsFile func(string) bool
}

// Candidate is a single location the locator will probe.
type Candidate struct {
	Dir  string
	File string
}

// Path returns the joined candidate path.
func (c Candidate) Path() string {
	return filepath.Join(c.Dir, c.File)
}

// Locate returns the path of the best matching library file for name.
// When no candidate exists, it returns the platform-decorated bare file
// name so that the platform loader's own search path is used.
func (l *Locator) Locate(name string) string {
	if path, ok := l.Override(name); ok {
		log().Debug("ffi: using configured library path", "library", name, "path", path)
		return path
	}
	isFile := l.IsFile
	if isFile == nil {
		isFile = isRegularFile
	}
	for _, c := range l.Candidates(name) {
		path := c.Path()
		if isFile(path) {
			log().Debug("ffi: located library", "library", name, "path", path)
			return path
		}
	}
	path := l.fallback(name)
	log().Debug("ffi: no library candidate found, deferring to platform search", "library", name, "path", path)
	return path
}

// Override returns the configured path for name, if any.
func (l *Locator) Override(name string) (string, bool) {
	path, ok := l.Overrides[name]
	return path, ok && path != ""
}

// Candidates returns every location probed for name in priority order.
func (l *Locator) Candidates(name string) []Candidate {
	prefix, suffix := l.decoration()
	libDir := l.libDir()
	var dirs []string
	for _, env := range []string{l.primaryEnv(), l.secondaryEnv()} {
		dirs = append(dirs, l.splitEnv(env)...)
	}
	dirs = append(dirs, l.prefixes()...)

	var candidates []Candidate
	for _, v := range l.versions() {
		file := fmt.Sprintf("%s%s%d_%d%s", prefix, name, l.ptrSize(), v, suffix)
		for _, dir := range dirs {
			candidates = append(candidates, Candidate{Dir: filepath.Join(dir, libDir), File: file})
		}
	}
	return candidates
}

// fallback is the undecorated-by-version library file name.
func (l *Locator) fallback(name string) string {
	prefix, suffix := l.decoration()
	return prefix + name + suffix
}

func (l *Locator) splitEnv(name string) []string {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	val := getenv(name)
	if val == "" {
		return nil
	}
	sep := ":"
	if l.goos() == "windows" {
		sep = ";"
	}
	var dirs []string
	for _, dir := range strings.Split(val, sep) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// decoration returns the platform's shared library file name prefix and
// suffix.
func (l *Locator) decoration() (prefix, suffix string) {
	switch l.goos() {
	case "windows":
		return "", ".dll"
	case "darwin", "ios":
		return "lib", ".dylib"
	default:
		return "lib", ".so"
	}
}

// libDir is the conventional library subdirectory of an install prefix.
func (l *Locator) libDir() string {
	switch {
	case l.goos() == "windows":
		return "bin"
	case l.ptrSize() == 32:
		return "lib"
	default:
		return "lib64"
	}
}

func (l *Locator) goos() string {
	if l.GOOS != "" {
		return l.GOOS
	}
	return runtime.GOOS
}

func (l *Locator) ptrSize() int {
	if l.PtrSize != 0 {
		return l.PtrSize
	}
	return strconv.IntSize
}

func (l *Locator) primaryEnv() string {
	if l.PrimaryEnv != "" {
		return l.PrimaryEnv
	}
	return DefaultPrimaryEnv
}

func (l *Locator) secondaryEnv() string {
	if l.SecondaryEnv != "" {
		return l.SecondaryEnv
	}
	return DefaultSecondaryEnv
}

func (l *Locator) prefixes() []string {
	if l.Prefixes != nil {
		return l.Prefixes
	}
	return DefaultPrefixes
}

func (l *Locator) versions() []int {
	if l.Versions != nil {
		return l.Versions
	}
	return DefaultVersions
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

var defaultLocator atomic.Pointer[Locator]

// DefaultLocator returns the process-wide locator used by the vendor modules.
func DefaultLocator() *Locator {
	if l := defaultLocator.Load(); l != nil {
		return l
	}
	return &Locator{}
}

// SetDefaultLocator replaces the process-wide locator. It affects only
// subsequent load attempts; a library already loaded stays loaded.
// A nil locator restores the defaults.
func SetDefaultLocator(l *Locator) {
	defaultLocator.Store(l)
}

// Locate finds name with the default locator.
func Locate(name string) string {
	return DefaultLocator().Locate(name)
}
