// Package conv provides safe integer conversion helpers for the regex
// engine's program-counter and slot-index arithmetic.
//
// IntToUint32 performs bounds checking before narrowing, panicking on
// overflow since that indicates a programming error (a program counter or
// capture slot index outside any value this engine can legitimately
// produce), not a condition callers should handle with a returned error.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
