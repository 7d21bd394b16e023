// SPDX-License-Identifier: MIT
/*
Package bridge implements the native boundary contract for the voicedsp
library: input validation, sentinel error signaling, and the ownership
transfer of heap results handed to FFI/JNI hosts.

Every operation is synchronous, stateless, and reentrant. Failures never
panic across the boundary; they are classified once, logged as a single
diagnostic line, and converted into the in-band sentinel matching the
call's return shape (nil pointer for buffer results, a zeroed PitchResult
for value results).

Memory protocol for spectrum results: ComputeSpectrum allocates the output
with C.malloc and never touches it again after returning. The caller owns
the block and must pass it back to ReleaseSpectrum exactly once, with the
exact fftSize/2+1 length the computation produced. Releasing twice,
releasing a foreign pointer, or releasing with a wrong length is undefined
behavior this layer cannot detect.
*/
package bridge

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"voicedsp/internal/dsp"
	"voicedsp/internal/log"
	"voicedsp/pkg/bitint"
)

// Validation limits of the boundary contract.
const (
	MinFFTSize = 256
	MaxFFTSize = 8192

	MinPitchSampleRate = 8000
	MaxPitchSampleRate = 48000

	// Fixed analysis band for pitch detection, tuned for human voice:
	// 80 Hz (low male) to 400 Hz (high female).
	PitchMinFrequency = 80.0
	PitchMaxFrequency = 400.0
)

// probeConstant is the fixed value returned by Probe. Host build
// pipelines compare against it to verify the bridge is loadable.
const probeConstant = 42

// PitchResult mirrors the C PitchResult struct field for field.
// Frequency is 0 whenever Voiced is false; Confidence is always in [0, 1].
type PitchResult struct {
	Frequency  float32
	Confidence float32
	Voiced     bool
}

// ComputeSpectrum validates the call, computes the magnitude spectrum of
// the length samples at buffer, and returns a C-allocated float32 buffer
// of exactly fftSize/2+1 elements. Ownership of the returned block passes
// to the caller, who must release it with ReleaseSpectrum.
//
// Any validation or computation failure logs one diagnostic and returns
// nil; nothing is allocated on failure. The input buffer is borrowed for
// the duration of the call only.
func ComputeSpectrum(buffer unsafe.Pointer, length, sampleRate, fftSize int32) unsafe.Pointer {
	if buffer == nil {
		log.Errorf("bridge: buffer pointer is null")
		return nil
	}
	if length <= 0 {
		log.Errorf("bridge: length must be > 0, got %d", length)
		return nil
	}
	if sampleRate <= 0 {
		log.Errorf("bridge: sample_rate must be > 0, got %d", sampleRate)
		return nil
	}
	if !bitint.IsPowerOfTwo32(fftSize) {
		log.Errorf("bridge: fft_size must be a power of 2, got %d", fftSize)
		return nil
	}
	if fftSize < MinFFTSize || fftSize > MaxFFTSize {
		log.Errorf("bridge: fft_size must be in range [%d, %d], got %d", MinFFTSize, MaxFFTSize, fftSize)
		return nil
	}

	samples := unsafe.Slice((*float32)(buffer), int(length))

	spectrum, err := dsp.ComputeSpectrum(samples, int(sampleRate), int(fftSize))
	if err != nil {
		log.Errorf("bridge: spectrum computation failed: %v", err)
		return nil
	}

	return transferFloats(spectrum.Magnitudes)
}

// ReleaseSpectrum releases a buffer previously returned by
// ComputeSpectrum. A nil pointer is a no-op. A non-positive length logs a
// diagnostic and refuses to free: the region is unsizable, and leaking it
// is the only safe outcome.
func ReleaseSpectrum(ptr unsafe.Pointer, length int32) {
	if ptr == nil {
		return
	}
	if length <= 0 {
		log.Errorf("bridge: release called with invalid length %d", length)
		return
	}
	C.free(ptr)
}

// DetectPitch validates the call and runs pitch detection over the length
// samples at buffer, using the fixed voice band. The result is returned
// by value and owns no memory.
//
// All failures, validation and computation alike, return the same
// sentinel {0, 0, false} after logging one diagnostic; the return value
// alone does not distinguish them.
func DetectPitch(buffer unsafe.Pointer, length, sampleRate int32) PitchResult {
	var failed PitchResult

	if buffer == nil {
		log.Errorf("bridge: buffer pointer is null")
		return failed
	}
	if length <= 0 {
		log.Errorf("bridge: length must be > 0, got %d", length)
		return failed
	}
	if sampleRate < MinPitchSampleRate || sampleRate > MaxPitchSampleRate {
		log.Errorf("bridge: sample_rate must be in range [%d, %d] Hz, got %d",
			MinPitchSampleRate, MaxPitchSampleRate, sampleRate)
		return failed
	}

	samples := unsafe.Slice((*float32)(buffer), int(length))

	pitch, err := dsp.EstimatePitch(samples, int(sampleRate), PitchMinFrequency, PitchMaxFrequency)
	if err != nil {
		log.Errorf("bridge: pitch detection failed: %v", err)
		return failed
	}

	result := PitchResult{
		Confidence: clamp01(pitch.Confidence),
		Voiced:     pitch.Voiced,
	}
	// Never report a frequency for an unvoiced segment, whatever the
	// estimator computed along the way.
	if pitch.Voiced {
		result.Frequency = pitch.Frequency
	}
	return result
}

// Probe returns a fixed constant so host build pipelines can verify the
// compiled bridge is loadable and linkable. Not part of the DSP contract.
func Probe() int32 {
	return probeConstant
}

// transferFloats copies vals into a C-allocated block and returns it.
// This is the single ownership-transfer point of the package: after the
// return, the bridge holds no reference to the block.
func transferFloats(vals []float32) unsafe.Pointer {
	// C.malloc never returns nil; it aborts on allocation failure.
	mem := C.malloc(C.size_t(len(vals)) * C.size_t(unsafe.Sizeof(float32(0))))
	copy(unsafe.Slice((*float32)(mem), len(vals)), vals)
	return mem
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
