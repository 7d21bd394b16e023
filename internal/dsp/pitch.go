// SPDX-License-Identifier: MIT
package dsp

import (
	"fmt"
	"math"
)

// Pitch holds the result of a single pitch estimation.
// Frequency is 0 whenever Voiced is false.
type Pitch struct {
	Frequency  float32
	Confidence float32
	Voiced     bool
}

// yinThreshold is the absolute threshold on the cumulative mean
// normalized difference function. 0.15 follows de Cheveigné & Kawahara
// (2002), step 4.
const yinThreshold = 0.15

// EstimatePitch estimates the fundamental frequency of samples using the
// YIN algorithm, restricted to the [minFreq, maxFreq] band.
//
// The integration window is half the buffer, so the buffer must span at
// least two periods of minFreq. Segments with no lag under the YIN
// threshold (silence, noise, unvoiced speech) come back with Voiced=false
// and Frequency=0.
func EstimatePitch(samples []float32, sampleRate int, minFreq, maxFreq float64) (*Pitch, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("dsp: empty sample buffer")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("dsp: sample rate must be positive, got %d", sampleRate)
	}
	if minFreq <= 0 || maxFreq <= minFreq {
		return nil, fmt.Errorf("dsp: invalid frequency band [%g, %g]", minFreq, maxFreq)
	}

	w := len(samples) / 2 // integration window
	tauMin := int(float64(sampleRate) / maxFreq)
	tauMax := int(math.Ceil(float64(sampleRate) / minFreq))
	if tauMin < 1 {
		tauMin = 1
	}
	if tauMax >= w {
		return nil, fmt.Errorf("dsp: buffer too short for %g Hz minimum: need more than %d samples, got %d",
			minFreq, 2*tauMax, len(samples))
	}

	// Difference function d(tau) over the integration window.
	diff := make([]float64, tauMax+1)
	for tau := 1; tau <= tauMax; tau++ {
		var sum float64
		for j := 0; j < w; j++ {
			delta := float64(samples[j]) - float64(samples[j+tau])
			sum += delta * delta
		}
		diff[tau] = sum
	}

	// Cumulative mean normalized difference. A running sum of zero means
	// the window is silent; pinning cmndf to 1 keeps silence unvoiced
	// instead of dividing zero by zero.
	cmndf := make([]float64, tauMax+1)
	cmndf[0] = 1
	var running float64
	for tau := 1; tau <= tauMax; tau++ {
		running += diff[tau]
		if running == 0 {
			cmndf[tau] = 1
			continue
		}
		cmndf[tau] = diff[tau] * float64(tau) / running
	}

	// First local minimum under the threshold inside the search band.
	best := -1
	for tau := tauMin; tau <= tauMax; tau++ {
		if cmndf[tau] >= yinThreshold {
			continue
		}
		for tau+1 <= tauMax && cmndf[tau+1] < cmndf[tau] {
			tau++
		}
		best = tau
		break
	}

	if best < 0 {
		return &Pitch{}, nil // unvoiced
	}

	period := refineLag(cmndf, best)
	freq := float64(sampleRate) / period
	if freq < minFreq || freq > maxFreq {
		return &Pitch{}, nil
	}

	conf := 1 - cmndf[best]
	if conf < 0 {
		conf = 0
	} else if conf > 1 {
		conf = 1
	}

	return &Pitch{
		Frequency:  float32(freq),
		Confidence: float32(conf),
		Voiced:     true,
	}, nil
}

// refineLag sharpens an integer lag estimate with parabolic interpolation
// over its two neighbors. Edge lags are returned unchanged.
func refineLag(data []float64, lag int) float64 {
	if lag <= 0 || lag >= len(data)-1 {
		return float64(lag)
	}
	y1 := data[lag-1]
	y2 := data[lag]
	y3 := data[lag+1]

	a := (y1 - 2*y2 + y3) / 2
	if a == 0 {
		return float64(lag)
	}
	b := (y3 - y1) / 2
	return float64(lag) - b/(2*a)
}
