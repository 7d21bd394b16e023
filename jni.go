// SPDX-License-Identifier: MIT
//
// JNI native-method symbols for the Android host. The names and
// parameter lists are dictated by the Kotlin side (package
// com.loqalabs.loqaaudiodsp, object RustBridge) and must not change
// here. The shims fill in what the JNI convention omits and delegate to
// the generic entry points; they perform no validation of their own.

package main

/*
#include "voicedsp.h"
*/
import "C"

import "unsafe"

// jniDefaultSampleRate is hard-coded because the Android method
// signature carries no sample rate; it matches the host module default.
const jniDefaultSampleRate = 44100

// Java_com_loqalabs_loqaaudiodsp_RustJNI_RustBridge_nativeComputeFFT is
// the JNI symbol for nativeComputeFFT(buffer, fftSize, windowType).
// windowType is accepted for signature compatibility and ignored; the
// DSP core applies its own windowing.
//
//export Java_com_loqalabs_loqaaudiodsp_RustJNI_RustBridge_nativeComputeFFT
func Java_com_loqalabs_loqaaudiodsp_RustJNI_RustBridge_nativeComputeFFT(
	env, class unsafe.Pointer,
	buffer *C.float,
	bufferLength, fftSize, windowType C.int32_t,
) *C.float {
	return compute_spectrum(buffer, bufferLength, jniDefaultSampleRate, fftSize)
}

// Java_com_loqalabs_loqaaudiodsp_RustJNI_RustBridge_nativeDetectPitch is
// the JNI symbol for nativeDetectPitch(buffer, sampleRate).
//
//export Java_com_loqalabs_loqaaudiodsp_RustJNI_RustBridge_nativeDetectPitch
func Java_com_loqalabs_loqaaudiodsp_RustJNI_RustBridge_nativeDetectPitch(
	env, class unsafe.Pointer,
	buffer *C.float,
	bufferLength, sampleRate C.int32_t,
) C.PitchResult {
	return detect_pitch(buffer, bufferLength, sampleRate)
}
