// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"voicedsp/internal/bridge"
	"voicedsp/internal/config"
	"voicedsp/internal/dsp"
)

var analyzeFFTSize int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.wav>",
	Short: "Analyze a WAV file: spectral peak and pitch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fftSize := cfg.Analysis.FFTSize
		if analyzeFFTSize != 0 {
			fftSize = analyzeFFTSize
		}
		return analyzeFile(args[0], fftSize)
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeFFTSize, "fft-size", 0,
		"FFT size (power of 2 in [256, 8192]; 0 uses the configured default)")
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeFile(path string, fftSize int) error {
	samples, sampleRate, err := readWAV(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d samples @ %d Hz (%.2fs)\n",
		path, len(samples), sampleRate, float64(len(samples))/float64(sampleRate))

	spectrum, err := dsp.ComputeSpectrum(samples, sampleRate, fftSize)
	if err != nil {
		return fmt.Errorf("spectrum analysis failed: %w", err)
	}
	peak := spectrum.PeakBin()
	fmt.Printf("spectral peak: %.1f Hz (bin %d of %d, magnitude %.4g)\n",
		spectrum.BinFrequency(peak), peak, len(spectrum.Magnitudes), spectrum.Magnitudes[peak])

	if sampleRate < config.MinSampleRate || sampleRate > config.MaxSampleRate {
		fmt.Printf("pitch: skipped (sample rate %d Hz outside [%d, %d])\n",
			sampleRate, config.MinSampleRate, config.MaxSampleRate)
		return nil
	}

	// Analyze up to the first half second, same voice band as the bridge.
	window := samples
	if limit := sampleRate / 2; len(window) > limit {
		window = window[:limit]
	}
	pitch, err := dsp.EstimatePitch(window, sampleRate,
		bridge.PitchMinFrequency, bridge.PitchMaxFrequency)
	if err != nil {
		return fmt.Errorf("pitch analysis failed: %w", err)
	}
	if pitch.Voiced {
		fmt.Printf("pitch: %.2f Hz (confidence %.2f)\n", pitch.Frequency, pitch.Confidence)
	} else {
		fmt.Println("pitch: unvoiced")
	}
	return nil
}

// readWAV decodes a WAV file into mono float32 samples. Multi-channel
// files are averaged down to one channel.
func readWAV(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, 0, fmt.Errorf("%s contains no audio data", path)
	}
	return monoFloat32(buf), buf.Format.SampleRate, nil
}

// monoFloat32 converts a PCM buffer to mono float32 samples, averaging
// interleaved channels.
func monoFloat32(buf *audio.IntBuffer) []float32 {
	floats := buf.AsFloat32Buffer().Data
	channels := buf.Format.NumChannels
	if channels <= 1 {
		return floats
	}

	mono := make([]float32, len(floats)/channels)
	for i := range mono {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += floats[i*channels+ch]
		}
		mono[i] = sum / float32(channels)
	}
	return mono
}
