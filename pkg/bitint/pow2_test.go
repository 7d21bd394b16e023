// SPDX-License-Identifier: MIT
package bitint

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, true},
		{2, true},
		{256, true},
		{4096, true},
		{8192, true},
		{0, false},
		{-8, false},
		{3, false},
		{500, false},
		{1000, false},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
		if got := IsPowerOfTwo32(int32(tt.n)); got != tt.want {
			t.Errorf("IsPowerOfTwo32(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{8192, 8192},
	}

	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
