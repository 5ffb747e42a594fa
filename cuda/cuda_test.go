package cuda

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agiangrant/cudl/internal/ffi"
)

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
		err  string
	}{
		{r: Success, want: "CUDA_SUCCESS", err: "CUDA_SUCCESS (0)"},
		{r: ErrorOutOfMemory, want: "CUDA_ERROR_OUT_OF_MEMORY", err: "CUDA_ERROR_OUT_OF_MEMORY (2)"},
		{r: ErrorLaunchFailed, want: "CUDA_ERROR_LAUNCH_FAILED", err: "CUDA_ERROR_LAUNCH_FAILED (719)"},
		{r: Result(12345), want: "CUresult(12345)", err: "CUresult(12345) (12345)"},
	}
	for _, test := range tests {
		if got := test.r.String(); got != test.want {
			t.Errorf("unexpected string for %d: got %q, want %q", int32(test.r), got, test.want)
		}
		if got := test.r.Error(); got != test.err {
			t.Errorf("unexpected error string for %d: got %q, want %q", int32(test.r), got, test.err)
		}
	}
}

func TestResultErr(t *testing.T) {
	if err := Success.Err(); err != nil {
		t.Errorf("unexpected error for success: %v", err)
	}
	err := ErrorNoDevice.Err()
	if !errors.Is(err, ErrorNoDevice) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSymbolsDeclared(t *testing.T) {
	want := map[string]bool{
		"cuInit":             true,
		"cuDriverGetVersion": true,
		"cuMemAlloc_v2":      true,
		"cuLaunchKernel":     true,
	}
	for _, name := range Symbols() {
		delete(want, name)
	}
	for name := range want {
		t.Errorf("symbol %s not declared", name)
	}
}

// TestEnsureLoaded runs against whatever driver the host has. Without one
// it checks that the failure is reported cleanly and calls are refused.
func TestEnsureLoaded(t *testing.T) {
	err := EnsureLoaded()
	if err != nil {
		var lerr *ffi.LoadError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected *ffi.LoadError, got %T: %v", err, err)
		}
		if lerr.Module != Name {
			t.Errorf("unexpected module in load error: %q", lerr.Module)
		}
		if Loaded() || IsLoaded("cuInit") {
			t.Error("driver reported loaded after failed load")
		}
		func() {
			defer func() {
				r := recover()
				uerr, ok := r.(*ffi.UnresolvedSymbolError)
				if !ok {
					t.Fatalf("expected *ffi.UnresolvedSymbolError panic, got %T: %v", r, r)
				}
				if uerr.Module != Name || uerr.Symbol != "cuInit" {
					t.Errorf("unexpected unresolved symbol: %v", uerr)
				}
			}()
			Init(0)
		}()
		return
	}

	if !Loaded() {
		t.Fatal("driver not reported loaded after successful load")
	}
	if Path() == "" {
		t.Error("no path recorded for loaded driver")
	}
	if !IsLoaded("cuDriverGetVersion") {
		t.Skip("driver does not export cuDriverGetVersion")
	}
	v, err := DriverVersion()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v <= 0 {
		t.Errorf("unexpected driver version: %d", v)
	}
}

func TestResultWrapped(t *testing.T) {
	err := fmt.Errorf("cuDriverGetVersion: %w", ErrorNoDevice)
	if got, want := err.Error(), "cuDriverGetVersion: CUDA_ERROR_NO_DEVICE (100)"; got != want {
		t.Errorf("unexpected wrapped error: got %q, want %q", got, want)
	}
	var r Result
	if !errors.As(err, &r) || r != ErrorNoDevice {
		t.Errorf("wrapped result not recovered: %v", r)
	}
	if got, want := fmt.Sprint(ErrorLaunchFailed), "CUDA_ERROR_LAUNCH_FAILED (719)"; got != want {
		t.Errorf("unexpected formatted result: got %q, want %q", got, want)
	}
}
