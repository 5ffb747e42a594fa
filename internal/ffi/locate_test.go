package ffi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// touch creates an empty file at dir/lib64/file.
func touch(t *testing.T, dir, file string) string {
	t.Helper()
	path := filepath.Join(dir, "lib64", file)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func envMap(env map[string]string) func(string) string {
	return func(name string) string { return env[name] }
}

func TestLocate(t *testing.T) {
	primary := t.TempDir()
	secondary := t.TempDir()
	std := t.TempDir()
	empty := t.TempDir()

	primaryHit := touch(t, primary, "libcublas64_90.so")
	secondaryHit := touch(t, secondary, "libcublas64_90.so")
	stdHit := touch(t, std, "libcublas64_90.so")
	stdNewer := touch(t, std, "libcudart64_100.so")
	touch(t, secondary, "libcudart64_80.so")
	if err := os.MkdirAll(filepath.Join(primary, "lib64", "libcurand64_100.so"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		lib  string
		env  map[string]string
		want string
	}{
		{
			name: "primary env beats standard prefix",
			lib:  "cublas",
			env:  map[string]string{"CUDA_PATH": primary, "CUDA_LIBRARY_PATH": secondary},
			want: primaryHit,
		},
		{
			name: "later primary entry beats secondary",
			lib:  "cublas",
			env:  map[string]string{"CUDA_PATH": empty + "::" + primary, "CUDA_LIBRARY_PATH": secondary},
			want: primaryHit,
		},
		{
			name: "secondary env beats standard prefix",
			lib:  "cublas",
			env:  map[string]string{"CUDA_PATH": empty, "CUDA_LIBRARY_PATH": secondary},
			want: secondaryHit,
		},
		{
			name: "standard prefix",
			lib:  "cublas",
			want: stdHit,
		},
		{
			name: "newer version beats env priority",
			lib:  "cudart",
			env:  map[string]string{"CUDA_LIBRARY_PATH": secondary},
			want: stdNewer,
		},
		{
			name: "directories are not files",
			lib:  "curand",
			env:  map[string]string{"CUDA_PATH": primary},
			want: "libcurand.so",
		},
		{
			name: "fallback to bare name",
			lib:  "cusparse",
			env:  map[string]string{"CUDA_PATH": primary, "CUDA_LIBRARY_PATH": secondary},
			want: "libcusparse.so",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := &Locator{
				GOOS:     "linux",
				PtrSize:  64,
				Prefixes: []string{empty, std},
				Getenv:   envMap(test.env),
			}
			if got := l.Locate(test.lib); got != test.want {
				t.Errorf("unexpected path: got %q, want %q", got, test.want)
			}
		})
	}
}

func TestLocateOverride(t *testing.T) {
	primary := t.TempDir()
	touch(t, primary, "libcublas64_100.so")
	l := &Locator{
		GOOS:      "linux",
		PtrSize:   64,
		Prefixes:  []string{},
		Overrides: map[string]string{"cublas": "/somewhere/libcublas.so.12", "cudart": ""},
		Getenv:    envMap(map[string]string{"CUDA_PATH": primary}),
	}
	if got, want := l.Locate("cublas"), "/somewhere/libcublas.so.12"; got != want {
		t.Errorf("unexpected override path: got %q, want %q", got, want)
	}
	if got, want := l.Locate("cudart"), "libcudart.so"; got != want {
		t.Errorf("empty override should search: got %q, want %q", got, want)
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name    string
		locator Locator
		want    []Candidate
	}{
		{
			name: "linux 64",
			locator: Locator{
				GOOS: "linux", PtrSize: 64,
				Versions: []int{100, 90},
				Prefixes: []string{"/usr/local/cuda"},
				Getenv:   envMap(map[string]string{"CUDA_PATH": "/a:/b", "CUDA_LIBRARY_PATH": "/c"}),
			},
			want: []Candidate{
				{Dir: filepath.Join("/a", "lib64"), File: "libcublas64_100.so"},
				{Dir: filepath.Join("/b", "lib64"), File: "libcublas64_100.so"},
				{Dir: filepath.Join("/c", "lib64"), File: "libcublas64_100.so"},
				{Dir: filepath.Join("/usr/local/cuda", "lib64"), File: "libcublas64_100.so"},
				{Dir: filepath.Join("/a", "lib64"), File: "libcublas64_90.so"},
				{Dir: filepath.Join("/b", "lib64"), File: "libcublas64_90.so"},
				{Dir: filepath.Join("/c", "lib64"), File: "libcublas64_90.so"},
				{Dir: filepath.Join("/usr/local/cuda", "lib64"), File: "libcublas64_90.so"},
			},
		},
		{
			name: "linux 32",
			locator: Locator{
				GOOS: "linux", PtrSize: 32,
				Versions: []int{80},
				Prefixes: []string{"/opt/cuda"},
				Getenv:   envMap(nil),
			},
			want: []Candidate{
				{Dir: filepath.Join("/opt/cuda", "lib"), File: "libcublas32_80.so"},
			},
		},
		{
			name: "darwin",
			locator: Locator{
				GOOS: "darwin", PtrSize: 64,
				Versions: []int{100},
				Prefixes: []string{"/usr/local/cuda"},
				Getenv:   envMap(nil),
			},
			want: []Candidate{
				{Dir: filepath.Join("/usr/local/cuda", "lib64"), File: "libcublas64_100.dylib"},
			},
		},
		{
			name: "windows",
			locator: Locator{
				GOOS: "windows", PtrSize: 64,
				Versions:   []int{100},
				Prefixes:   []string{},
				PrimaryEnv: "MY_CUDA",
				Getenv:     envMap(map[string]string{"MY_CUDA": `C:\cuda;D:\cuda`, "CUDA_PATH": "/ignored"}),
			},
			want: []Candidate{
				{Dir: filepath.Join(`C:\cuda`, "bin"), File: "cublas64_100.dll"},
				{Dir: filepath.Join(`D:\cuda`, "bin"), File: "cublas64_100.dll"},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.locator.Candidates("cublas")
			if !cmp.Equal(test.want, got) {
				t.Errorf("unexpected candidates:\n--- want:\n+++ got:\n%s", cmp.Diff(test.want, got))
			}
		})
	}
}

func TestDefaultLocator(t *testing.T) {
	t.Cleanup(func() { SetDefaultLocator(nil) })

	if got := DefaultLocator(); got == nil {
		t.Fatal("expected non-nil default locator")
	}
	l := &Locator{Overrides: map[string]string{"cuda": "/x/libcuda.so"}}
	SetDefaultLocator(l)
	if got := Locate("cuda"); got != "/x/libcuda.so" {
		t.Errorf("unexpected path from default locator: got %q", got)
	}
}
