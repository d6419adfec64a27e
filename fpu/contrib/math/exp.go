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

package math

import "github.com/ajroetker/go-nofpu/fpu"

// ExpPoly evaluates the truncated Taylor series
//
//	1 + x + x^2/2 + x^3/6 + x^4/24
//
// with four multiplies for the powers, three for the coefficients and four
// adds. It is accurate to about 2% for |x| <= 1 and diverges quickly
// beyond; use Exp for anything else.
func ExpPoly[P fpu.Provider](p P, x float32) float32 {
	x2 := p.Mul(x, x)
	x3 := p.Mul(x2, x)
	x4 := p.Mul(x3, x)

	term2 := p.Mul(x2, expC2_f32)
	term3 := p.Mul(x3, expC3_f32)
	term4 := p.Mul(x4, expC4_f32)

	result := p.Add(expOne_f32, x)
	result = p.Add(result, term2)
	result = p.Add(result, term3)
	return p.Add(result, term4)
}

// Exp approximates e^x.
//
// For |x| > 4 (magnitude bits above 0x40800000) Exp saturates: it returns
// exactly ExpSaturationHigh for positive x and ExpSaturationLow for
// negative x, without evaluating anything.
//
// Otherwise the argument is scaled by 1/4, ExpPoly is evaluated on
// [-1, 1], and the result is squared twice: e^x = (e^(x/4))^4. The maximum
// relative error on [-4, 4] is about 8%, at x = -4.
//
// NaN is returned unchanged. Infinities saturate like any other large
// input.
func Exp[P fpu.Provider](p P, x float32) float32 {
	if abs := fpu.AbsBits(x); abs > fpu.ExpLimitBits {
		if abs > fpu.InfBits {
			return x
		}
		if !fpu.IsNegative(x) {
			return ExpSaturationHigh
		}
		return ExpSaturationLow
	}

	r := ExpPoly(p, p.Mul(x, expReduce_f32))
	for range expSquarings {
		r = p.Mul(r, r)
	}
	return r
}

// Tanh approximates the hyperbolic tangent as
//
//	tanh(x) = (e^2x - 1) / (e^2x + 1)
//
// using Exp and the Newton-Raphson divider. For |x| > 4 it returns exactly
// +1 or -1 by sign and NaN is returned unchanged. Note that e^2x itself
// saturates once |x| > 2, which caps |Tanh| at 19/21 between 2 and 4.
func Tanh[P fpu.Provider](p P, x float32) float32 {
	if abs := fpu.AbsBits(x); abs > fpu.ExpLimitBits {
		if abs > fpu.InfBits {
			return x
		}
		if !fpu.IsNegative(x) {
			return expOne_f32
		}
		return fpu.Neg(expOne_f32)
	}

	e2x := Exp(p, p.Add(x, x))
	num := fpu.Sub(p, e2x, expOne_f32)
	den := p.Add(e2x, expOne_f32)
	return fpu.Div(p, num, den)
}
