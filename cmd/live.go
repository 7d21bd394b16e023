// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"voicedsp/internal/bridge"
	"voicedsp/internal/capture"
	"voicedsp/internal/dsp"
	"voicedsp/internal/log"
	"voicedsp/internal/transport"
)

var (
	liveDevice     int
	liveSampleRate int
	liveFrames     int
	liveListen     string
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Capture the microphone and print pitch in real time",
	RunE: func(cmd *cobra.Command, args []string) error {
		if liveDevice != -2 {
			cfg.Audio.InputDevice = liveDevice
		}
		if liveSampleRate != 0 {
			cfg.Audio.SampleRate = liveSampleRate
		}
		if liveFrames != 0 {
			cfg.Audio.FramesPerBuffer = liveFrames
		}
		if liveListen != "" {
			cfg.Listen.Enabled = true
			cfg.Listen.Address = liveListen
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runLive()
	},
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List available audio input devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := capture.Initialize(); err != nil {
			return err
		}
		defer capture.Terminate()
		return capture.ListDevices()
	},
}

func init() {
	liveCmd.Flags().IntVarP(&liveDevice, "device", "d", -2,
		"Input device ID ('devices' lists them; -1 is the system default)")
	liveCmd.Flags().IntVarP(&liveSampleRate, "sample-rate", "s", 0,
		"Sample rate in Hz (0 uses the configured default)")
	liveCmd.Flags().IntVarP(&liveFrames, "frames", "b", 0,
		"Frames per analysis buffer (0 uses the configured default)")
	liveCmd.Flags().StringVar(&liveListen, "listen", "",
		"Broadcast analysis frames over WebSocket on this address (e.g. :8080)")
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(devicesCmd)
}

func runLive() error {
	if err := capture.Initialize(); err != nil {
		return err
	}
	defer capture.Terminate()

	var sink transport.Transport
	if cfg.Listen.Enabled {
		wst := transport.NewWebSocketTransport(cfg.Listen.Address)
		defer wst.Close()
		sink = wst
	}

	sampleRate := cfg.Audio.SampleRate
	fftSize := cfg.Analysis.FFTSize

	stream, err := capture.OpenStream(cfg.Audio, func(frame []float32) {
		pitch, err := dsp.EstimatePitch(frame, sampleRate,
			bridge.PitchMinFrequency, bridge.PitchMaxFrequency)
		if err != nil {
			log.Debugf("live: pitch estimation: %v", err)
			return
		}

		out := transport.Frame{
			Timestamp:  time.Now().UnixMilli(),
			Frequency:  pitch.Frequency,
			Confidence: pitch.Confidence,
			Voiced:     pitch.Voiced,
		}

		if sink != nil {
			if spectrum, err := dsp.ComputeSpectrum(frame, sampleRate, fftSize); err == nil {
				out.Magnitudes = spectrum.Magnitudes
			}
			_ = sink.Send(out)
		}

		if pitch.Voiced {
			fmt.Printf("\rpitch: %7.2f Hz  confidence: %.2f   ", pitch.Frequency, pitch.Confidence)
		} else {
			fmt.Printf("\rpitch:    --    Hz  confidence: %.2f   ", pitch.Confidence)
		}
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	log.Infof("live: capturing from %q at %d Hz, %d frames per buffer",
		stream.DeviceName(), sampleRate, cfg.Audio.FramesPerBuffer)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done
	fmt.Println()
	return nil
}
