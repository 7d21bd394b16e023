// SPDX-License-Identifier: MIT
package dsp

import (
	"math"
	"testing"

	"voicedsp/pkg/utils"
)

func TestComputeSpectrumArgValidation(t *testing.T) {
	buf := make([]float32, 1024)

	tests := []struct {
		name       string
		samples    []float32
		sampleRate int
		fftSize    int
	}{
		{"empty buffer", nil, 44100, 1024},
		{"zero sample rate", buf, 0, 1024},
		{"negative sample rate", buf, -1, 1024},
		{"non power of two", buf, 44100, 1000},
		{"zero fft size", buf, 44100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeSpectrum(tt.samples, tt.sampleRate, tt.fftSize); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestComputeSpectrumBinCount(t *testing.T) {
	for _, fftSize := range []int{256, 1024, 4096, 8192} {
		buf := utils.GenerateComplexWave(fftSize, 44100)

		spec, err := ComputeSpectrum(buf, 44100, fftSize)
		if err != nil {
			t.Fatalf("fft size %d: %v", fftSize, err)
		}
		if want := fftSize/2 + 1; len(spec.Magnitudes) != want {
			t.Errorf("fft size %d: got %d bins, want %d", fftSize, len(spec.Magnitudes), want)
		}
	}
}

func TestComputeSpectrumFinite(t *testing.T) {
	buf := utils.GenerateNoise(4096)

	spec, err := ComputeSpectrum(buf, 48000, 2048)
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range spec.Magnitudes {
		if math.IsNaN(float64(m)) || math.IsInf(float64(m), 0) {
			t.Fatalf("bin %d: %v is not finite", i, m)
		}
	}
}

func TestComputeSpectrumPeak(t *testing.T) {
	const (
		sampleRate = 44100
		fftSize    = 4096
	)

	for _, target := range []float64{440, 1000, 2500} {
		buf := utils.GenerateSineWave(fftSize, sampleRate, target)

		spec, err := ComputeSpectrum(buf, sampleRate, fftSize)
		if err != nil {
			t.Fatal(err)
		}

		peakFreq := spec.BinFrequency(spec.PeakBin())
		binWidth := float64(sampleRate) / float64(fftSize)
		if math.Abs(peakFreq-target) > 1.5*binWidth {
			t.Errorf("target %.0f Hz: peak at %.1f Hz (bin width %.1f Hz)", target, peakFreq, binWidth)
		}
	}
}

func TestComputeSpectrumZeroPadding(t *testing.T) {
	// Shorter input than the transform size must still produce a full,
	// finite spectrum.
	buf := utils.GenerateSineWave(1000, 44100, 440)

	spec, err := ComputeSpectrum(buf, 44100, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Magnitudes) != 4096/2+1 {
		t.Fatalf("got %d bins", len(spec.Magnitudes))
	}
}

func TestBinFrequencyBounds(t *testing.T) {
	spec := &Spectrum{Magnitudes: make([]float32, 513), SampleRate: 44100, FFTSize: 1024}

	if got := spec.BinFrequency(-1); got != 0 {
		t.Errorf("BinFrequency(-1) = %v, want 0", got)
	}
	if got := spec.BinFrequency(513); got != 0 {
		t.Errorf("BinFrequency(513) = %v, want 0", got)
	}
	if got := spec.BinFrequency(512); math.Abs(got-22050) > 1e-9 {
		t.Errorf("Nyquist bin = %v, want 22050", got)
	}
}

func BenchmarkComputeSpectrum(b *testing.B) {
	buf := utils.GenerateComplexWave(4096, 44100)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ComputeSpectrum(buf, 44100, 4096)
	}
}
