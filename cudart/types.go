package cudart

import (
	"fmt"

	"github.com/agiangrant/cudl/internal/ffi"
)

// Error is a runtime API status code (cudaError_t).
type Error int32

const (
	Success                       Error = 0
	ErrorInvalidValue             Error = 1
	ErrorMemoryAllocation         Error = 2
	ErrorInitializationError      Error = 3
	ErrorCudartUnloading          Error = 4
	ErrorProfilerDisabled         Error = 5
	ErrorInvalidConfiguration     Error = 9
	ErrorInvalidPitchValue        Error = 12
	ErrorInvalidSymbol            Error = 13
	ErrorInvalidHostPointer       Error = 16
	ErrorInvalidDevicePointer     Error = 17
	ErrorInvalidTexture           Error = 18
	ErrorInvalidMemcpyDirection   Error = 21
	ErrorInsufficientDriver       Error = 35
	ErrorMissingConfiguration     Error = 52
	ErrorNoDevice                 Error = 100
	ErrorInvalidDevice            Error = 101
	ErrorStartupFailure           Error = 127
	ErrorInvalidKernelImage       Error = 200
	ErrorDeviceUninitialized      Error = 201
	ErrorNoKernelImageForDevice   Error = 209
	ErrorECCUncorrectable         Error = 214
	ErrorInvalidResourceHandle    Error = 400
	ErrorSymbolNotFound           Error = 500
	ErrorNotReady                 Error = 600
	ErrorIllegalAddress           Error = 700
	ErrorLaunchOutOfResources     Error = 701
	ErrorLaunchTimeout            Error = 702
	ErrorPeerAccessAlreadyEnabled Error = 704
	ErrorLaunchFailure            Error = 719
	ErrorNotSupported             Error = 801
	ErrorUnknown                  Error = 999
)

var errorNames = map[Error]string{
	Success:                       "cudaSuccess",
	ErrorInvalidValue:             "cudaErrorInvalidValue",
	ErrorMemoryAllocation:         "cudaErrorMemoryAllocation",
	ErrorInitializationError:      "cudaErrorInitializationError",
	ErrorCudartUnloading:          "cudaErrorCudartUnloading",
	ErrorProfilerDisabled:         "cudaErrorProfilerDisabled",
	ErrorInvalidConfiguration:     "cudaErrorInvalidConfiguration",
	ErrorInvalidPitchValue:        "cudaErrorInvalidPitchValue",
	ErrorInvalidSymbol:            "cudaErrorInvalidSymbol",
	ErrorInvalidHostPointer:       "cudaErrorInvalidHostPointer",
	ErrorInvalidDevicePointer:     "cudaErrorInvalidDevicePointer",
	ErrorInvalidTexture:           "cudaErrorInvalidTexture",
	ErrorInvalidMemcpyDirection:   "cudaErrorInvalidMemcpyDirection",
	ErrorInsufficientDriver:       "cudaErrorInsufficientDriver",
	ErrorMissingConfiguration:     "cudaErrorMissingConfiguration",
	ErrorNoDevice:                 "cudaErrorNoDevice",
	ErrorInvalidDevice:            "cudaErrorInvalidDevice",
	ErrorStartupFailure:           "cudaErrorStartupFailure",
	ErrorInvalidKernelImage:       "cudaErrorInvalidKernelImage",
	ErrorDeviceUninitialized:      "cudaErrorDeviceUninitialized",
	ErrorNoKernelImageForDevice:   "cudaErrorNoKernelImageForDevice",
	ErrorECCUncorrectable:         "cudaErrorECCUncorrectable",
	ErrorInvalidResourceHandle:    "cudaErrorInvalidResourceHandle",
	ErrorSymbolNotFound:           "cudaErrorSymbolNotFound",
	ErrorNotReady:                 "cudaErrorNotReady",
	ErrorIllegalAddress:           "cudaErrorIllegalAddress",
	ErrorLaunchOutOfResources:     "cudaErrorLaunchOutOfResources",
	ErrorLaunchTimeout:            "cudaErrorLaunchTimeout",
	ErrorPeerAccessAlreadyEnabled: "cudaErrorPeerAccessAlreadyEnabled",
	ErrorLaunchFailure:            "cudaErrorLaunchFailure",
	ErrorNotSupported:             "cudaErrorNotSupported",
	ErrorUnknown:                  "cudaErrorUnknown",
}

func (e Error) String() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("cudaError_t(%d)", int32(e))
}

func (e Error) Error() string {
	return fmt.Sprintf("%s (%d)", e.String(), int32(e))
}

// Err returns e as an error, or nil if e is Success.
func (e Error) Err() error {
	if e == Success {
		return nil
	}
	return e
}

// Message returns the runtime's description of e when the runtime exports
// cudaGetErrorString, otherwise the symbolic name.
func (e Error) Message() string {
	get, err := cudaGetErrorString.Lookup()
	if err != nil {
		return e.String()
	}
	if s := ffi.GoString(get(e)); s != "" {
		return s
	}
	return e.String()
}

// MemcpyKind is the direction of a memory copy.
type MemcpyKind int32

const (
	MemcpyHostToHost     MemcpyKind = 0
	MemcpyHostToDevice   MemcpyKind = 1
	MemcpyDeviceToHost   MemcpyKind = 2
	MemcpyDeviceToDevice MemcpyKind = 3
	MemcpyDefault        MemcpyKind = 4
)

// DeviceAttr selects a value reported by DeviceGetAttribute.
type DeviceAttr int32

const (
	DevAttrMaxThreadsPerBlock     DeviceAttr = 1
	DevAttrWarpSize               DeviceAttr = 10
	DevAttrMultiProcessorCount    DeviceAttr = 16
	DevAttrComputeCapabilityMajor DeviceAttr = 75
	DevAttrComputeCapabilityMinor DeviceAttr = 76
)

// Stream is a runtime stream handle (cudaStream_t).
type Stream uintptr

// DevicePtr is a device memory address.
type DevicePtr uintptr

// Stream creation flags.
const (
	StreamDefault     uint32 = 0x0
	StreamNonBlocking uint32 = 0x1
)

// DataType identifies the element type of library data (cudaDataType).
type DataType int32

const (
	R16F DataType = 2
	C16F DataType = 6
	R32F DataType = 0
	C32F DataType = 4
	R64F DataType = 1
	C64F DataType = 5
	R8I  DataType = 3
	C8I  DataType = 7
	R8U  DataType = 8
	C8U  DataType = 9
	R32I DataType = 10
	C32I DataType = 11
	R32U DataType = 12
	C32U DataType = 13
)

// LibraryPropertyType selects a library version component.
type LibraryPropertyType int32

const (
	MajorVersion LibraryPropertyType = 0
	MinorVersion LibraryPropertyType = 1
	PatchLevel   LibraryPropertyType = 2
)

// RuntimeVersion loads the runtime if necessary and returns its version,
// encoded as 1000*major + 10*minor.
func RuntimeVersion() (int32, error) {
	if err := EnsureLoaded(); err != nil {
		return 0, err
	}
	get, err := cudaRuntimeGetVersion.Lookup()
	if err != nil {
		return 0, err
	}
	var v int32
	if e := get(&v); e != Success {
		return 0, fmt.Errorf("cudaRuntimeGetVersion: %w", e)
	}
	return v, nil
}
