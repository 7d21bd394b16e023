// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default configuration invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voicedsp.yaml")

	data := []byte(`
log_level: debug
audio:
  input_device: 2
  sample_rate: 48000
  frames_per_buffer: 1024
analysis:
  fft_size: 2048
listen:
  enabled: true
  address: ":9090"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("SampleRate = %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.InputDevice != 2 {
		t.Errorf("InputDevice = %d", cfg.Audio.InputDevice)
	}
	if cfg.Analysis.FFTSize != 2048 {
		t.Errorf("FFTSize = %d", cfg.Analysis.FFTSize)
	}
	if !cfg.Listen.Enabled || cfg.Listen.Address != ":9090" {
		t.Errorf("Listen = %+v", cfg.Listen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"sample rate too low", func(c *Config) { c.Audio.SampleRate = 4000 }},
		{"sample rate too high", func(c *Config) { c.Audio.SampleRate = 96000 }},
		{"zero frames", func(c *Config) { c.Audio.FramesPerBuffer = 0 }},
		{"fft size not power of 2", func(c *Config) { c.Analysis.FFTSize = 1000 }},
		{"fft size too small", func(c *Config) { c.Analysis.FFTSize = 128 }},
		{"fft size too large", func(c *Config) { c.Analysis.FFTSize = 16384 }},
		{"listen without address", func(c *Config) { c.Listen.Enabled = true; c.Listen.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VOICEDSP_SAMPLE_RATE", "16000")
	t.Setenv("VOICEDSP_FFT_SIZE", "512")
	t.Setenv("VOICEDSP_LOG_LEVEL", "error")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", cfg.Audio.SampleRate)
	}
	if cfg.Analysis.FFTSize != 512 {
		t.Errorf("FFTSize = %d, want 512", cfg.Analysis.FFTSize)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
}
