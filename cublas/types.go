package cublas

import (
	"fmt"

	"github.com/agiangrant/cudl/cudart"
)

// Status is a cuBLAS status code (cublasStatus_t).
type Status int32

const (
	StatusSuccess         Status = 0
	StatusNotInitialized  Status = 1
	StatusAllocFailed     Status = 3
	StatusInvalidValue    Status = 7
	StatusArchMismatch    Status = 8
	StatusMappingError    Status = 11
	StatusExecutionFailed Status = 13
	StatusInternalError   Status = 14
	StatusNotSupported    Status = 15
	StatusLicenseError    Status = 16
)

var statusNames = map[Status]string{
	StatusSuccess:         "CUBLAS_STATUS_SUCCESS",
	StatusNotInitialized:  "CUBLAS_STATUS_NOT_INITIALIZED",
	StatusAllocFailed:     "CUBLAS_STATUS_ALLOC_FAILED",
	StatusInvalidValue:    "CUBLAS_STATUS_INVALID_VALUE",
	StatusArchMismatch:    "CUBLAS_STATUS_ARCH_MISMATCH",
	StatusMappingError:    "CUBLAS_STATUS_MAPPING_ERROR",
	StatusExecutionFailed: "CUBLAS_STATUS_EXECUTION_FAILED",
	StatusInternalError:   "CUBLAS_STATUS_INTERNAL_ERROR",
	StatusNotSupported:    "CUBLAS_STATUS_NOT_SUPPORTED",
	StatusLicenseError:    "CUBLAS_STATUS_LICENSE_ERROR",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("cublasStatus_t(%d)", int32(s))
}

func (s Status) Error() string {
	return fmt.Sprintf("%s (%d)", s.String(), int32(s))
}

// Err returns s as an error, or nil if s is StatusSuccess.
func (s Status) Err() error {
	if s == StatusSuccess {
		return nil
	}
	return s
}

// FillMode selects the triangle of a symmetric or triangular matrix.
type FillMode int32

const (
	FillModeLower FillMode = 0
	FillModeUpper FillMode = 1
)

// DiagType reports whether a triangular matrix has a unit diagonal.
type DiagType int32

const (
	DiagNonUnit DiagType = 0
	DiagUnit    DiagType = 1
)

// SideMode selects the side a matrix is applied from.
type SideMode int32

const (
	SideLeft  SideMode = 0
	SideRight SideMode = 1
)

// Operation selects op(A).
type Operation int32

const (
	OpN Operation = 0 // non-transposed
	OpT Operation = 1 // transposed
	OpC Operation = 2 // conjugate transposed
)

func (o Operation) String() string {
	switch o {
	case OpN:
		return "N"
	case OpT:
		return "T"
	case OpC:
		return "C"
	}
	return fmt.Sprintf("Operation(%d)", int32(o))
}

// PointerMode selects whether scalars are passed by host or device pointer.
type PointerMode int32

const (
	PointerModeHost   PointerMode = 0
	PointerModeDevice PointerMode = 1
)

// AtomicsMode controls whether routines may use atomics.
type AtomicsMode int32

const (
	AtomicsNotAllowed AtomicsMode = 0
	AtomicsAllowed    AtomicsMode = 1
)

// GemmAlgo selects a GEMM algorithm for the extended GEMM routines.
type GemmAlgo int32

const (
	GemmDfalt           GemmAlgo = -1
	GemmAlgo0           GemmAlgo = 0
	GemmAlgo1           GemmAlgo = 1
	GemmAlgo2           GemmAlgo = 2
	GemmAlgo3           GemmAlgo = 3
	GemmAlgo4           GemmAlgo = 4
	GemmAlgo5           GemmAlgo = 5
	GemmAlgo6           GemmAlgo = 6
	GemmAlgo7           GemmAlgo = 7
	GemmAlgo8           GemmAlgo = 8
	GemmAlgo9           GemmAlgo = 9
	GemmAlgo10          GemmAlgo = 10
	GemmAlgo11          GemmAlgo = 11
	GemmAlgo12          GemmAlgo = 12
	GemmAlgo13          GemmAlgo = 13
	GemmAlgo14          GemmAlgo = 14
	GemmAlgo15          GemmAlgo = 15
	GemmAlgo16          GemmAlgo = 16
	GemmAlgo17          GemmAlgo = 17
	GemmAlgo18          GemmAlgo = 18
	GemmAlgo19          GemmAlgo = 19
	GemmAlgo20          GemmAlgo = 20
	GemmAlgo21          GemmAlgo = 21
	GemmAlgo22          GemmAlgo = 22
	GemmAlgo23          GemmAlgo = 23
	GemmDefaultTensorOp GemmAlgo = 99
	GemmAlgo0TensorOp   GemmAlgo = 100
	GemmAlgo1TensorOp   GemmAlgo = 101
	GemmAlgo2TensorOp   GemmAlgo = 102
	GemmAlgo3TensorOp   GemmAlgo = 103
	GemmAlgo4TensorOp   GemmAlgo = 104
	GemmAlgo5TensorOp   GemmAlgo = 105
	GemmAlgo6TensorOp   GemmAlgo = 106
	GemmAlgo7TensorOp   GemmAlgo = 107
	GemmAlgo8TensorOp   GemmAlgo = 108
	GemmAlgo9TensorOp   GemmAlgo = 109
	GemmAlgo10TensorOp  GemmAlgo = 110
	GemmAlgo11TensorOp  GemmAlgo = 111
	GemmAlgo12TensorOp  GemmAlgo = 112
	GemmAlgo13TensorOp  GemmAlgo = 113
	GemmAlgo14TensorOp  GemmAlgo = 114
	GemmAlgo15TensorOp  GemmAlgo = 115
)

// Aliases with the same native values.
const (
	GemmDefault       = GemmDfalt
	GemmDfaltTensorOp = GemmDefaultTensorOp
)

// Math selects whether routines may use tensor cores.
type Math int32

const (
	DefaultMath  Math = 0
	TensorOpMath Math = 1
)

// Handle is a cuBLAS library context (cublasHandle_t).
type Handle uintptr

type (
	DataType            = cudart.DataType
	LibraryPropertyType = cudart.LibraryPropertyType
	Stream              = cudart.Stream
	DevicePtr           = cudart.DevicePtr
)

// LibraryVersion loads cuBLAS if necessary and returns its version
// components. It needs no handle, and so no device.
func LibraryVersion() (major, minor, patch int32, err error) {
	if err := EnsureLoaded(); err != nil {
		return 0, 0, 0, err
	}
	get, err := cublasGetProperty.Lookup()
	if err != nil {
		return 0, 0, 0, err
	}
	for _, p := range []struct {
		typ LibraryPropertyType
		dst *int32
	}{
		{cudart.MajorVersion, &major},
		{cudart.MinorVersion, &minor},
		{cudart.PatchLevel, &patch},
	} {
		if s := get(p.typ, p.dst); s != StatusSuccess {
			return 0, 0, 0, fmt.Errorf("cublasGetProperty(%d): %w", p.typ, s)
		}
	}
	return major, minor, patch, nil
}
