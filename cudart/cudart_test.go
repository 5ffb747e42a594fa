package cudart

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agiangrant/cudl/internal/ffi"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		e    Error
		want string
	}{
		{e: Success, want: "cudaSuccess"},
		{e: ErrorMemoryAllocation, want: "cudaErrorMemoryAllocation"},
		{e: ErrorNoDevice, want: "cudaErrorNoDevice"},
		{e: Error(4242), want: "cudaError_t(4242)"},
	}
	for _, test := range tests {
		if got := test.e.String(); got != test.want {
			t.Errorf("unexpected string for %d: got %q, want %q", int32(test.e), got, test.want)
		}
	}
	if got, want := ErrorInsufficientDriver.Error(), "cudaErrorInsufficientDriver (35)"; got != want {
		t.Errorf("unexpected error string: got %q, want %q", got, want)
	}
	if err := Success.Err(); err != nil {
		t.Errorf("unexpected error for success: %v", err)
	}
	if err := ErrorInvalidValue.Err(); !errors.Is(err, ErrorInvalidValue) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDataTypeValues(t *testing.T) {
	// Values are fixed by the native ABI.
	tests := []struct {
		d    DataType
		want int32
	}{
		{R32F, 0}, {R64F, 1}, {R16F, 2}, {R8I, 3},
		{C32F, 4}, {C64F, 5}, {C16F, 6}, {C8I, 7},
		{R8U, 8}, {C8U, 9}, {R32I, 10}, {C32I, 11},
		{R32U, 12}, {C32U, 13},
	}
	for _, test := range tests {
		if int32(test.d) != test.want {
			t.Errorf("unexpected value: got %d, want %d", int32(test.d), test.want)
		}
	}
}

func TestEnsureLoaded(t *testing.T) {
	err := EnsureLoaded()
	if err != nil {
		var lerr *ffi.LoadError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected *ffi.LoadError, got %T: %v", err, err)
		}
		if lerr.Module != Name || lerr.Path == "" {
			t.Errorf("unexpected load error: %+v", lerr)
		}
		if Loaded() || IsLoaded("cudaMalloc") {
			t.Error("runtime reported loaded after failed load")
		}
		if got := Resolved(); got != nil {
			t.Errorf("unexpected resolved symbols: %v", got)
		}
		// Without the runtime the symbolic name is the only description.
		if got := ErrorNoDevice.Message(); got != "cudaErrorNoDevice" {
			t.Errorf("unexpected message: %q", got)
		}
		return
	}

	if len(Resolved())+len(Missing()) != len(Symbols()) {
		t.Errorf("resolved and missing do not partition the declared symbols")
	}
	if !IsLoaded("cudaRuntimeGetVersion") {
		t.Skip("runtime does not export cudaRuntimeGetVersion")
	}
	v, err := RuntimeVersion()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v <= 0 {
		t.Errorf("unexpected runtime version: %d", v)
	}
}

func TestErrorWrapped(t *testing.T) {
	err := fmt.Errorf("cudaRuntimeGetVersion: %w", ErrorInsufficientDriver)
	if got, want := err.Error(), "cudaRuntimeGetVersion: cudaErrorInsufficientDriver (35)"; got != want {
		t.Errorf("unexpected wrapped error: got %q, want %q", got, want)
	}
	var e Error
	if !errors.As(err, &e) || e != ErrorInsufficientDriver {
		t.Errorf("wrapped error not recovered: %v", e)
	}
	if got, want := fmt.Sprint(Error(4242)), "cudaError_t(4242) (4242)"; got != want {
		t.Errorf("unexpected formatted error: got %q, want %q", got, want)
	}
}
