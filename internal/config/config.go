// SPDX-License-Identifier: MIT
// Package config holds the runtime configuration of the voicedsp CLI
// tooling. The native bridge itself is configuration-free; everything
// here applies only to the analyze/live commands.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"voicedsp/pkg/bitint"
)

// Limits mirroring the boundary contract. The CLI enforces the same
// ranges the bridge does so offline results stay comparable with what a
// host would get over FFI.
const (
	MinFFTSize    = 256
	MaxFFTSize    = 8192
	MinSampleRate = 8000
	MaxSampleRate = 48000

	DefaultSampleRate      = 44100
	DefaultFFTSize         = 4096
	DefaultFramesPerBuffer = 2048
	DefaultDeviceID        = -1 // system default input device
)

// Config is the root configuration structure, loaded from YAML with
// environment overrides applied on top.
type Config struct {
	LogLevel string          `yaml:"log_level"` // "debug", "info", "warn", "error"
	Audio    AudioConfig     `yaml:"audio"`
	Analysis AnalysisConfig  `yaml:"analysis"`
	Listen   TransportConfig `yaml:"listen"`
}

// AudioConfig holds live-capture settings.
type AudioConfig struct {
	InputDevice     int `yaml:"input_device"`      // PortAudio device index, -1 for default
	SampleRate      int `yaml:"sample_rate"`       // Hz
	FramesPerBuffer int `yaml:"frames_per_buffer"` // analysis frame length
}

// AnalysisConfig holds spectral analysis settings.
type AnalysisConfig struct {
	FFTSize int `yaml:"fft_size"` // power of 2 in [256, 8192]
}

// TransportConfig holds WebSocket broadcast settings for the live command.
type TransportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"` // e.g. ":8080"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Audio: AudioConfig{
			InputDevice:     DefaultDeviceID,
			SampleRate:      DefaultSampleRate,
			FramesPerBuffer: DefaultFramesPerBuffer,
		},
		Analysis: AnalysisConfig{
			FFTSize: DefaultFFTSize,
		},
		Listen: TransportConfig{
			Enabled: false,
			Address: ":8080",
		},
	}
}

// Load reads configuration from the YAML file at path. An empty path
// falls back to "voicedsp.yaml" when present, otherwise the defaults.
// Environment overrides apply after the file, then the result is
// validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat("voicedsp.yaml"); err == nil {
			path = "voicedsp.yaml"
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration against the boundary limits.
func (c *Config) Validate() error {
	if c.Audio.SampleRate < MinSampleRate || c.Audio.SampleRate > MaxSampleRate {
		return fmt.Errorf("audio.sample_rate must be in [%d, %d], got %d",
			MinSampleRate, MaxSampleRate, c.Audio.SampleRate)
	}
	if c.Audio.FramesPerBuffer <= 0 {
		return fmt.Errorf("audio.frames_per_buffer must be positive, got %d", c.Audio.FramesPerBuffer)
	}
	if !bitint.IsPowerOfTwo(c.Analysis.FFTSize) {
		return fmt.Errorf("analysis.fft_size must be a power of 2, got %d", c.Analysis.FFTSize)
	}
	if c.Analysis.FFTSize < MinFFTSize || c.Analysis.FFTSize > MaxFFTSize {
		return fmt.Errorf("analysis.fft_size must be in [%d, %d], got %d",
			MinFFTSize, MaxFFTSize, c.Analysis.FFTSize)
	}
	if c.Listen.Enabled && c.Listen.Address == "" {
		return fmt.Errorf("listen.address must be set when listen.enabled is true")
	}
	return nil
}

// applyEnvOverrides applies VOICEDSP_* environment variables on top of
// whatever the file provided.
func (c *Config) applyEnvOverrides() {
	if val, ok := os.LookupEnv("VOICEDSP_LOG_LEVEL"); ok {
		c.LogLevel = val
	}
	if val, ok := os.LookupEnv("VOICEDSP_SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			c.Audio.SampleRate = n
		}
	}
	if val, ok := os.LookupEnv("VOICEDSP_FFT_SIZE"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			c.Analysis.FFTSize = n
		}
	}
	if val, ok := os.LookupEnv("VOICEDSP_LISTEN"); ok {
		c.Listen.Enabled = true
		c.Listen.Address = val
	}
}
