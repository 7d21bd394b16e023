// SPDX-License-Identifier: MIT
// Package bitint provides branch-free power-of-2 helpers used for FFT
// sizing and buffer validation. All operations are O(1) and allocation
// free, so they are safe to call from real-time paths.
package bitint

import "math/bits"

// IsPowerOfTwo reports whether n is a positive power of 2.
// Powers of 2 have exactly one bit set, so (n & (n-1)) == 0.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// IsPowerOfTwo32 is IsPowerOfTwo for int32 values arriving over the
// C boundary.
func IsPowerOfTwo32(n int32) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of 2 >= size. Non-positive
// sizes return 1. The size-1 keeps exact powers of 2 from doubling.
func NextPowerOfTwo(size int) int {
	if size <= 0 {
		return 1
	}
	return 1 << bits.Len64(uint64(size-1))
}
