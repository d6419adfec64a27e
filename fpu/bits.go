// Copyright 2025 go-nofpu Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fpu

import stdmath "math"

// IEEE-754 single-precision bit layout.
const (
	// SignMask selects bit 31.
	SignMask uint32 = 0x80000000

	// AbsMask selects the magnitude bits 0-30.
	AbsMask uint32 = 0x7FFFFFFF

	// ExpMask selects the 8-bit biased exponent field.
	ExpMask uint32 = 0x7F800000

	// MantMask selects the 23-bit fraction field.
	MantMask uint32 = 0x007FFFFF

	// ExpBias is the exponent bias of float32.
	ExpBias = 127

	// MantBits is the width of the fraction field.
	MantBits = 23

	// OneBits is the bit pattern of 1.0.
	OneBits uint32 = 0x3F800000

	// InfBits is the bit pattern of +Inf. Magnitudes above it are NaN.
	InfBits uint32 = 0x7F800000

	// ExpLimitBits is the bit pattern of 4.0, the magnitude above which
	// exp and tanh saturate instead of evaluating.
	ExpLimitBits uint32 = 0x40800000
)

// Bits returns the raw IEEE-754 bit pattern of f.
//
// Bits and FromBits are reinterpretations, not numeric conversions, and
// round-trip exactly for every one of the 2^32 patterns, NaN payloads
// included.
func Bits(f float32) uint32 {
	return stdmath.Float32bits(f)
}

// FromBits returns the float32 whose bit pattern is u.
func FromBits(u uint32) float32 {
	return stdmath.Float32frombits(u)
}

// IsNegative reports whether the sign bit of x is set. -0 is negative.
func IsNegative(x float32) bool {
	return Bits(x)&SignMask != 0
}

// Neg flips the sign bit of x.
func Neg(x float32) float32 {
	return FromBits(Bits(x) ^ SignMask)
}

// AbsBits returns the magnitude bits of x with the sign cleared. For finite
// values, AbsBits(a) > AbsBits(b) iff |a| > |b|.
func AbsBits(x float32) uint32 {
	return Bits(x) & AbsMask
}

// Abs clears the sign bit of x.
func Abs(x float32) float32 {
	return FromBits(AbsBits(x))
}

// orderedKey maps a float32 bit pattern onto a uint32 whose unsigned order
// matches the numeric order of finite values (-0 sorts just below +0).
func orderedKey(x float32) uint32 {
	u := Bits(x)
	if u&SignMask != 0 {
		return ^u
	}
	return u | SignMask
}

// Greater reports whether a > b using only integer comparison of the bit
// patterns. Both values must be finite.
func Greater(a, b float32) bool {
	return orderedKey(a) > orderedKey(b)
}

// Max returns the larger of a and b without a floating-point compare.
// Both values must be finite.
func Max(a, b float32) float32 {
	if Greater(b, a) {
		return b
	}
	return a
}

// pow2 returns 2^n for n in [-126, 127] by building the exponent field.
func pow2(n int) float32 {
	return FromBits(uint32(n+ExpBias) << MantBits)
}
