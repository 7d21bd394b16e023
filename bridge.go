// SPDX-License-Identifier: MIT
//
// C-ABI entry points of the voicedsp bridge. These shims only convert
// between C and Go types; validation, diagnostics, and the ownership
// protocol all live in internal/bridge so they can be tested without cgo.

package main

/*
#include "voicedsp.h"
*/
import "C"

import (
	"unsafe"

	"voicedsp/internal/bridge"
)

// compute_spectrum computes the magnitude spectrum of length float32
// samples at buffer. Returns a heap-allocated buffer of fft_size/2+1
// floats, owned by the caller, or null on any failure. The caller must
// release the result with release_spectrum, passing the same length.
//
//export compute_spectrum
func compute_spectrum(buffer *C.float, length, sampleRate, fftSize C.int32_t) *C.float {
	out := bridge.ComputeSpectrum(unsafe.Pointer(buffer), int32(length), int32(sampleRate), int32(fftSize))
	return (*C.float)(out)
}

// release_spectrum frees a buffer previously returned by
// compute_spectrum. Null pointers are ignored; a non-positive length is
// logged and the buffer is not freed. Must be called exactly once per
// successful compute_spectrum result.
//
//export release_spectrum
func release_spectrum(ptr *C.float, length C.int32_t) {
	bridge.ReleaseSpectrum(unsafe.Pointer(ptr), int32(length))
}

// detect_pitch runs YIN pitch detection over length float32 samples at
// buffer. The result is returned by value and owns no memory; on any
// failure every field is zero.
//
//export detect_pitch
func detect_pitch(buffer *C.float, length, sampleRate C.int32_t) C.PitchResult {
	return pitchResultToC(bridge.DetectPitch(unsafe.Pointer(buffer), int32(length), int32(sampleRate)))
}

// test_ffi_bridge returns a fixed constant so host build pipelines can
// verify the shared library loads and links. Retained for backward
// compatibility.
//
//export test_ffi_bridge
func test_ffi_bridge() C.int32_t {
	return C.int32_t(bridge.Probe())
}

func pitchResultToC(r bridge.PitchResult) C.PitchResult {
	return C.PitchResult{
		frequency:  C.float(r.Frequency),
		confidence: C.float(r.Confidence),
		is_voiced:  C.bool(r.Voiced),
	}
}
