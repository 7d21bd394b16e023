// SPDX-License-Identifier: MIT
package dsp

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"

	"voicedsp/pkg/bitint"
)

// Spectrum holds the magnitude spectrum of a single analysis frame.
// Magnitudes has exactly FFTSize/2 + 1 elements (DC through Nyquist).
type Spectrum struct {
	Magnitudes []float32
	SampleRate int
	FFTSize    int
}

// BinFrequency returns the center frequency (Hz) for a magnitude bin.
// Out-of-range indices return 0.
func (s *Spectrum) BinFrequency(bin int) float64 {
	if bin < 0 || bin >= len(s.Magnitudes) {
		return 0
	}
	return float64(bin) * float64(s.SampleRate) / float64(s.FFTSize)
}

// PeakBin returns the index of the largest magnitude bin. Bin 0 (DC)
// participates in the search.
func (s *Spectrum) PeakBin() int {
	peak := 0
	for i, m := range s.Magnitudes {
		if m > s.Magnitudes[peak] {
			peak = i
		}
	}
	return peak
}

// ComputeSpectrum computes the magnitude spectrum of samples.
//
// The input is copied into an fftSize-point analysis frame (truncated or
// zero-padded as needed), Hann-windowed, and transformed with a real FFT.
// The result owns its buffer; the input slice is never retained.
func ComputeSpectrum(samples []float32, sampleRate, fftSize int) (*Spectrum, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("dsp: empty sample buffer")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("dsp: sample rate must be positive, got %d", sampleRate)
	}
	if !bitint.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("dsp: fft size must be a power of 2, got %d", fftSize)
	}

	// Copy + zero-pad into the transform frame, then window in place.
	frame := make([]float64, fftSize)
	n := len(samples)
	if n > fftSize {
		n = fftSize
	}
	for i := 0; i < n; i++ {
		frame[i] = float64(samples[i])
	}
	window.Hann(frame)

	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, frame)

	mags := make([]float32, len(coeffs)) // fftSize/2 + 1
	for i, c := range coeffs {
		mags[i] = float32(cmplx.Abs(c))
	}

	return &Spectrum{
		Magnitudes: mags,
		SampleRate: sampleRate,
		FFTSize:    fftSize,
	}, nil
}
