// SPDX-License-Identifier: MIT
// Package transport publishes analysis frames from the live command to
// external consumers. Implementations must tolerate slow consumers by
// dropping frames rather than blocking the capture path.
package transport

// Frame is one analysis result published to consumers.
type Frame struct {
	Timestamp  int64     `json:"ts"` // Unix milliseconds
	Magnitudes []float32 `json:"magnitudes,omitempty"`
	Frequency  float32   `json:"frequency"`
	Confidence float32   `json:"confidence"`
	Voiced     bool      `json:"voiced"`
}

// Transport sends analysis frames to consumers.
type Transport interface {
	// Send queues a frame for delivery. It must never block; frames may
	// be dropped under back pressure.
	Send(frame Frame) error

	// Close releases the transport's resources.
	Close() error
}
