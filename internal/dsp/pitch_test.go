// SPDX-License-Identifier: MIT
package dsp

import (
	"math"
	"testing"

	"voicedsp/pkg/utils"
)

func TestEstimatePitchArgValidation(t *testing.T) {
	buf := make([]float32, 4096)

	tests := []struct {
		name             string
		samples          []float32
		sampleRate       int
		minFreq, maxFreq float64
	}{
		{"empty buffer", nil, 44100, 80, 400},
		{"zero sample rate", buf, 0, 80, 400},
		{"zero min freq", buf, 44100, 0, 400},
		{"inverted band", buf, 44100, 400, 80},
		{"buffer too short", buf[:256], 44100, 80, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EstimatePitch(tt.samples, tt.sampleRate, tt.minFreq, tt.maxFreq); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEstimatePitchSine(t *testing.T) {
	tests := []struct {
		target     float64
		sampleRate int
	}{
		{110, 44100},
		{220, 44100},
		{220, 48000},
		{220, 16000},
		{330, 44100},
	}

	for _, tt := range tests {
		buf := utils.GenerateSineWave(tt.sampleRate/10, float64(tt.sampleRate), tt.target)

		pitch, err := EstimatePitch(buf, tt.sampleRate, 80, 400)
		if err != nil {
			t.Fatalf("%.0f Hz @ %d: %v", tt.target, tt.sampleRate, err)
		}
		if !pitch.Voiced {
			t.Errorf("%.0f Hz @ %d: expected voiced", tt.target, tt.sampleRate)
			continue
		}
		if errPct := math.Abs(float64(pitch.Frequency)-tt.target) / tt.target * 100; errPct > 10 {
			t.Errorf("%.0f Hz @ %d: got %.2f Hz (%.1f%% off)", tt.target, tt.sampleRate, pitch.Frequency, errPct)
		}
		if pitch.Confidence <= 0.5 {
			t.Errorf("%.0f Hz @ %d: confidence %.3f too low for a clean tone", tt.target, tt.sampleRate, pitch.Confidence)
		}
	}
}

func TestEstimatePitchSilence(t *testing.T) {
	buf := make([]float32, 4096)

	pitch, err := EstimatePitch(buf, 44100, 80, 400)
	if err != nil {
		t.Fatal(err)
	}
	if pitch.Voiced {
		t.Error("silence classified voiced")
	}
	if pitch.Frequency != 0 {
		t.Errorf("silence reported frequency %v", pitch.Frequency)
	}
	if pitch.Confidence != 0 {
		t.Errorf("silence reported confidence %v", pitch.Confidence)
	}
}

func TestEstimatePitchNoise(t *testing.T) {
	buf := utils.GenerateNoise(4096)

	pitch, err := EstimatePitch(buf, 44100, 80, 400)
	if err != nil {
		t.Fatal(err)
	}
	if pitch.Confidence < 0 || pitch.Confidence > 1 {
		t.Errorf("confidence %v outside [0, 1]", pitch.Confidence)
	}
	if !pitch.Voiced && pitch.Frequency != 0 {
		t.Errorf("unvoiced result carries frequency %v", pitch.Frequency)
	}
}

func TestEstimatePitchOutOfBandTone(t *testing.T) {
	// 1 kHz is far above the 80-400 Hz search band. YIN may lock on a
	// subharmonic lag; the invariant is the reported frequency stays
	// inside the requested band or the frame is unvoiced.
	buf := utils.GenerateSineWave(4410, 44100, 1000)

	pitch, err := EstimatePitch(buf, 44100, 80, 400)
	if err != nil {
		t.Fatal(err)
	}
	if pitch.Voiced && (pitch.Frequency < 80 || pitch.Frequency > 400) {
		t.Errorf("reported %v Hz outside requested band", pitch.Frequency)
	}
}

func BenchmarkEstimatePitch(b *testing.B) {
	buf := utils.GenerateSineWave(4410, 44100, 220)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = EstimatePitch(buf, 44100, 80, 400)
	}
}
