// SPDX-License-Identifier: MIT
/*
Package capture provides live microphone capture for the voicedsp CLI,
feeding fixed-size float32 frames to an analysis callback. It is a thin
layer over PortAudio; all DSP happens in the callback's hands.
*/
package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"voicedsp/internal/config"
)

// Initialize sets up the PortAudio subsystem. Must be paired with
// Terminate.
func Initialize() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return nil
}

// Terminate shuts down the PortAudio subsystem.
func Terminate() error {
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("failed to terminate PortAudio: %w", err)
	}
	return nil
}

// InputDevice resolves a device index to a PortAudio input device.
// config.DefaultDeviceID (-1) selects the system default.
func InputDevice(deviceID int) (*portaudio.DeviceInfo, error) {
	if deviceID == config.DefaultDeviceID {
		return portaudio.DefaultInputDevice()
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}
	if deviceID < 0 || deviceID >= len(devices) {
		return nil, fmt.Errorf("invalid device ID: %d", deviceID)
	}
	return devices[deviceID], nil
}

// ListDevices prints all available audio devices with their capabilities.
func ListDevices() error {
	devices, err := portaudio.Devices()
	if err != nil {
		return err
	}

	fmt.Printf("\nAvailable Audio Devices\n\n")
	for i, device := range devices {
		deviceType := "Output"
		switch {
		case device.MaxInputChannels > 0 && device.MaxOutputChannels > 0:
			deviceType = "Input/Output"
		case device.MaxInputChannels > 0:
			deviceType = "Input"
		}

		fmt.Printf("[%d] %s (%s)\n", i, device.Name, deviceType)
		fmt.Printf("    Input channels: %d, Output channels: %d\n",
			device.MaxInputChannels, device.MaxOutputChannels)
		fmt.Printf("    Default sample rate: %.0f Hz\n", device.DefaultSampleRate)
		fmt.Println()
	}
	return nil
}

// FrameFunc receives one mono capture frame. The slice is reused between
// callbacks; implementations must copy anything they keep.
type FrameFunc func(frame []float32)

// Stream captures mono float32 audio from one input device and hands
// each buffer to a FrameFunc.
type Stream struct {
	device  *portaudio.DeviceInfo
	stream  *portaudio.Stream
	buffer  []float32
	onFrame FrameFunc
}

// OpenStream opens (but does not start) a mono input stream on the
// configured device.
func OpenStream(cfg config.AudioConfig, onFrame FrameFunc) (*Stream, error) {
	device, err := InputDevice(cfg.InputDevice)
	if err != nil {
		return nil, err
	}

	s := &Stream{
		device:  device,
		buffer:  make([]float32, cfg.FramesPerBuffer),
		onFrame: onFrame,
	}

	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Channels: 1,
			Device:   device,
			Latency:  device.DefaultHighInputLatency,
		},
		FramesPerBuffer: cfg.FramesPerBuffer,
		SampleRate:      float64(cfg.SampleRate),
	}

	stream, err := portaudio.OpenStream(params, s.process)
	if err != nil {
		return nil, fmt.Errorf("failed to open input stream: %w", err)
	}
	s.stream = stream
	return s, nil
}

// Start begins capture; the FrameFunc runs on the audio callback
// goroutine from here on.
func (s *Stream) Start() error {
	return s.stream.Start()
}

// Close stops the stream and releases it.
func (s *Stream) Close() error {
	if s.stream == nil {
		return nil
	}
	if err := s.stream.Stop(); err != nil {
		return err
	}
	err := s.stream.Close()
	s.stream = nil
	return err
}

// DeviceName returns the name of the opened input device.
func (s *Stream) DeviceName() string {
	return s.device.Name
}

func (s *Stream) process(in []float32) {
	copy(s.buffer, in)
	if s.onFrame != nil {
		s.onFrame(s.buffer[:min(len(in), len(s.buffer))])
	}
}
