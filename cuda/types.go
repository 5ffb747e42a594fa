package cuda

import (
	"fmt"

	"github.com/agiangrant/cudl/internal/ffi"
)

// Result is a driver API status code (CUresult).
type Result int32

const (
	Success                          Result = 0
	ErrorInvalidValue                Result = 1
	ErrorOutOfMemory                 Result = 2
	ErrorNotInitialized              Result = 3
	ErrorDeinitialized               Result = 4
	ErrorProfilerDisabled            Result = 5
	ErrorProfilerNotInitialized      Result = 6
	ErrorProfilerAlreadyStarted      Result = 7
	ErrorProfilerAlreadyStopped      Result = 8
	ErrorNoDevice                    Result = 100
	ErrorInvalidDevice               Result = 101
	ErrorInvalidImage                Result = 200
	ErrorInvalidContext              Result = 201
	ErrorContextAlreadyCurrent       Result = 202
	ErrorMapFailed                   Result = 205
	ErrorUnmapFailed                 Result = 206
	ErrorArrayIsMapped               Result = 207
	ErrorAlreadyMapped               Result = 208
	ErrorNoBinaryForGPU              Result = 209
	ErrorAlreadyAcquired             Result = 210
	ErrorNotMapped                   Result = 211
	ErrorNotMappedAsArray            Result = 212
	ErrorNotMappedAsPointer          Result = 213
	ErrorECCUncorrectable            Result = 214
	ErrorUnsupportedLimit            Result = 215
	ErrorContextAlreadyInUse         Result = 216
	ErrorPeerAccessUnsupported       Result = 217
	ErrorInvalidPTX                  Result = 218
	ErrorInvalidGraphicsContext      Result = 219
	ErrorNVLinkUncorrectable         Result = 220
	ErrorJITCompilerNotFound         Result = 221
	ErrorInvalidSource               Result = 300
	ErrorFileNotFound                Result = 301
	ErrorSharedObjectSymbolNotFound  Result = 302
	ErrorSharedObjectInitFailed      Result = 303
	ErrorOperatingSystem             Result = 304
	ErrorInvalidHandle               Result = 400
	ErrorNotFound                    Result = 500
	ErrorNotReady                    Result = 600
	ErrorIllegalAddress              Result = 700
	ErrorLaunchOutOfResources        Result = 701
	ErrorLaunchTimeout               Result = 702
	ErrorLaunchIncompatibleTexturing Result = 703
	ErrorPeerAccessAlreadyEnabled    Result = 704
	ErrorPeerAccessNotEnabled        Result = 705
	ErrorPrimaryContextActive        Result = 708
	ErrorContextIsDestroyed          Result = 709
	ErrorAssert                      Result = 710
	ErrorTooManyPeers                Result = 711
	ErrorHostMemoryAlreadyRegistered Result = 712
	ErrorHostMemoryNotRegistered     Result = 713
	ErrorHardwareStackError          Result = 714
	ErrorIllegalInstruction          Result = 715
	ErrorMisalignedAddress           Result = 716
	ErrorInvalidAddressSpace         Result = 717
	ErrorInvalidPC                   Result = 718
	ErrorLaunchFailed                Result = 719
	ErrorCooperativeLaunchTooLarge   Result = 720
	ErrorNotPermitted                Result = 800
	ErrorNotSupported                Result = 801
	ErrorUnknown                     Result = 999
)

var resultNames = map[Result]string{
	Success:                          "CUDA_SUCCESS",
	ErrorInvalidValue:                "CUDA_ERROR_INVALID_VALUE",
	ErrorOutOfMemory:                 "CUDA_ERROR_OUT_OF_MEMORY",
	ErrorNotInitialized:              "CUDA_ERROR_NOT_INITIALIZED",
	ErrorDeinitialized:               "CUDA_ERROR_DEINITIALIZED",
	ErrorProfilerDisabled:            "CUDA_ERROR_PROFILER_DISABLED",
	ErrorProfilerNotInitialized:      "CUDA_ERROR_PROFILER_NOT_INITIALIZED",
	ErrorProfilerAlreadyStarted:      "CUDA_ERROR_PROFILER_ALREADY_STARTED",
	ErrorProfilerAlreadyStopped:      "CUDA_ERROR_PROFILER_ALREADY_STOPPED",
	ErrorNoDevice:                    "CUDA_ERROR_NO_DEVICE",
	ErrorInvalidDevice:               "CUDA_ERROR_INVALID_DEVICE",
	ErrorInvalidImage:                "CUDA_ERROR_INVALID_IMAGE",
	ErrorInvalidContext:              "CUDA_ERROR_INVALID_CONTEXT",
	ErrorContextAlreadyCurrent:       "CUDA_ERROR_CONTEXT_ALREADY_CURRENT",
	ErrorMapFailed:                   "CUDA_ERROR_MAP_FAILED",
	ErrorUnmapFailed:                 "CUDA_ERROR_UNMAP_FAILED",
	ErrorArrayIsMapped:               "CUDA_ERROR_ARRAY_IS_MAPPED",
	ErrorAlreadyMapped:               "CUDA_ERROR_ALREADY_MAPPED",
	ErrorNoBinaryForGPU:              "CUDA_ERROR_NO_BINARY_FOR_GPU",
	ErrorAlreadyAcquired:             "CUDA_ERROR_ALREADY_ACQUIRED",
	ErrorNotMapped:                   "CUDA_ERROR_NOT_MAPPED",
	ErrorNotMappedAsArray:            "CUDA_ERROR_NOT_MAPPED_AS_ARRAY",
	ErrorNotMappedAsPointer:          "CUDA_ERROR_NOT_MAPPED_AS_POINTER",
	ErrorECCUncorrectable:            "CUDA_ERROR_ECC_UNCORRECTABLE",
	ErrorUnsupportedLimit:            "CUDA_ERROR_UNSUPPORTED_LIMIT",
	ErrorContextAlreadyInUse:         "CUDA_ERROR_CONTEXT_ALREADY_IN_USE",
	ErrorPeerAccessUnsupported:       "CUDA_ERROR_PEER_ACCESS_UNSUPPORTED",
	ErrorInvalidPTX:                  "CUDA_ERROR_INVALID_PTX",
	ErrorInvalidGraphicsContext:      "CUDA_ERROR_INVALID_GRAPHICS_CONTEXT",
	ErrorNVLinkUncorrectable:         "CUDA_ERROR_NVLINK_UNCORRECTABLE",
	ErrorJITCompilerNotFound:         "CUDA_ERROR_JIT_COMPILER_NOT_FOUND",
	ErrorInvalidSource:               "CUDA_ERROR_INVALID_SOURCE",
	ErrorFileNotFound:                "CUDA_ERROR_FILE_NOT_FOUND",
	ErrorSharedObjectSymbolNotFound:  "CUDA_ERROR_SHARED_OBJECT_SYMBOL_NOT_FOUND",
	ErrorSharedObjectInitFailed:      "CUDA_ERROR_SHARED_OBJECT_INIT_FAILED",
	ErrorOperatingSystem:             "CUDA_ERROR_OPERATING_SYSTEM",
	ErrorInvalidHandle:               "CUDA_ERROR_INVALID_HANDLE",
	ErrorNotFound:                    "CUDA_ERROR_NOT_FOUND",
	ErrorNotReady:                    "CUDA_ERROR_NOT_READY",
	ErrorIllegalAddress:              "CUDA_ERROR_ILLEGAL_ADDRESS",
	ErrorLaunchOutOfResources:        "CUDA_ERROR_LAUNCH_OUT_OF_RESOURCES",
	ErrorLaunchTimeout:               "CUDA_ERROR_LAUNCH_TIMEOUT",
	ErrorLaunchIncompatibleTexturing: "CUDA_ERROR_LAUNCH_INCOMPATIBLE_TEXTURING",
	ErrorPeerAccessAlreadyEnabled:    "CUDA_ERROR_PEER_ACCESS_ALREADY_ENABLED",
	ErrorPeerAccessNotEnabled:        "CUDA_ERROR_PEER_ACCESS_NOT_ENABLED",
	ErrorPrimaryContextActive:        "CUDA_ERROR_PRIMARY_CONTEXT_ACTIVE",
	ErrorContextIsDestroyed:          "CUDA_ERROR_CONTEXT_IS_DESTROYED",
	ErrorAssert:                      "CUDA_ERROR_ASSERT",
	ErrorTooManyPeers:                "CUDA_ERROR_TOO_MANY_PEERS",
	ErrorHostMemoryAlreadyRegistered: "CUDA_ERROR_HOST_MEMORY_ALREADY_REGISTERED",
	ErrorHostMemoryNotRegistered:     "CUDA_ERROR_HOST_MEMORY_NOT_REGISTERED",
	ErrorHardwareStackError:          "CUDA_ERROR_HARDWARE_STACK_ERROR",
	ErrorIllegalInstruction:          "CUDA_ERROR_ILLEGAL_INSTRUCTION",
	ErrorMisalignedAddress:           "CUDA_ERROR_MISALIGNED_ADDRESS",
	ErrorInvalidAddressSpace:         "CUDA_ERROR_INVALID_ADDRESS_SPACE",
	ErrorInvalidPC:                   "CUDA_ERROR_INVALID_PC",
	ErrorLaunchFailed:                "CUDA_ERROR_LAUNCH_FAILED",
	ErrorCooperativeLaunchTooLarge:   "CUDA_ERROR_COOPERATIVE_LAUNCH_TOO_LARGE",
	ErrorNotPermitted:                "CUDA_ERROR_NOT_PERMITTED",
	ErrorNotSupported:                "CUDA_ERROR_NOT_SUPPORTED",
	ErrorUnknown:                     "CUDA_ERROR_UNKNOWN",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("CUresult(%d)", int32(r))
}

func (r Result) Error() string {
	return fmt.Sprintf("%s (%d)", r.String(), int32(r))
}

// Err returns r as an error, or nil if r is Success.
func (r Result) Err() error {
	if r == Success {
		return nil
	}
	return r
}

// Message returns the driver's description of r when the driver exports
// cuGetErrorString, otherwise the symbolic name.
func (r Result) Message() string {
	get, err := cuGetErrorString.Lookup()
	if err != nil {
		return r.String()
	}
	var str uintptr
	if get(r, &str) != Success || str == 0 {
		return r.String()
	}
	return ffi.GoString(str)
}

// Device is a device ordinal handle (CUdevice).
type Device int32

// Opaque driver handles.
type (
	Context  uintptr // CUcontext
	Module   uintptr // CUmodule
	Function uintptr // CUfunction
	Stream   uintptr // CUstream
)

// DevicePtr is a device memory address (CUdeviceptr).
type DevicePtr uintptr

// DeviceAttribute selects a value reported by DeviceGetAttribute.
type DeviceAttribute int32

const (
	DeviceAttributeMaxThreadsPerBlock      DeviceAttribute = 1
	DeviceAttributeMaxBlockDimX            DeviceAttribute = 2
	DeviceAttributeMaxBlockDimY            DeviceAttribute = 3
	DeviceAttributeMaxBlockDimZ            DeviceAttribute = 4
	DeviceAttributeMaxGridDimX             DeviceAttribute = 5
	DeviceAttributeMaxGridDimY             DeviceAttribute = 6
	DeviceAttributeMaxGridDimZ             DeviceAttribute = 7
	DeviceAttributeMaxSharedMemoryPerBlock DeviceAttribute = 8
	DeviceAttributeTotalConstantMemory     DeviceAttribute = 9
	DeviceAttributeWarpSize                DeviceAttribute = 10
	DeviceAttributeClockRate               DeviceAttribute = 13
	DeviceAttributeMultiprocessorCount     DeviceAttribute = 16
	DeviceAttributeComputeCapabilityMajor  DeviceAttribute = 75
	DeviceAttributeComputeCapabilityMinor  DeviceAttribute = 76
)

// Context creation flags.
const (
	CtxSchedAuto         uint32 = 0x00
	CtxSchedSpin         uint32 = 0x01
	CtxSchedYield        uint32 = 0x02
	CtxSchedBlockingSync uint32 = 0x04
	CtxMapHost           uint32 = 0x08
)

// Stream creation flags.
const (
	StreamDefault     uint32 = 0x0
	StreamNonBlocking uint32 = 0x1
)

// DriverVersion loads the driver if necessary and returns its version,
// encoded as 1000*major + 10*minor.
func DriverVersion() (int32, error) {
	if err := EnsureLoaded(); err != nil {
		return 0, err
	}
	get, err := cuDriverGetVersion.Lookup()
	if err != nil {
		return 0, err
	}
	var v int32
	if r := get(&v); r != Success {
		return 0, fmt.Errorf("cuDriverGetVersion: %w", r)
	}
	return v, nil
}
