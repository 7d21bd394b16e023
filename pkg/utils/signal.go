// SPDX-License-Identifier: MIT
// Package utils provides synthetic signal generators shared by tests and
// the example tooling.
package utils

import "math"

// GenerateSineWave returns size float32 samples of a pure sine at the
// given frequency, with amplitude 0.9 to stay clear of clipping.
func GenerateSineWave(size int, sampleRate, frequency float64) []float32 {
	buffer := make([]float32, size)
	for i := range buffer {
		t := float64(i) / sampleRate
		buffer[i] = float32(math.Sin(2*math.Pi*frequency*t) * 0.9)
	}
	return buffer
}

// GenerateComplexWave returns a 440 Hz fundamental with two harmonics,
// useful for exercising spectral analysis with a non-trivial signal.
func GenerateComplexWave(size int, sampleRate float64) []float32 {
	buffer := make([]float32, size)
	for i := range buffer {
		t := float64(i) / sampleRate
		signal := math.Sin(2*math.Pi*440*t)*0.5 +
			math.Sin(2*math.Pi*880*t)*0.3 +
			math.Sin(2*math.Pi*1320*t)*0.2
		buffer[i] = float32(signal)
	}
	return buffer
}

// GenerateNoise returns deterministic pseudo-random samples in [-1, 1).
// A multiplicative hash keeps runs reproducible without seeding.
func GenerateNoise(size int) []float32 {
	buffer := make([]float32, size)
	for i := range buffer {
		h := uint32(i) * 2654435761
		buffer[i] = float32(h%2000)/1000 - 1
	}
	return buffer
}
