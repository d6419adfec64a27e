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

// NewtonIterations is the fixed number of Newton-Raphson steps taken by
// Recip and Div. It sets both the accuracy and the cycle cost of every
// division and must not vary with the input.
const NewtonIterations = 3

// recipSplitMant is the fraction field of 4/3. Divisors are normalized to
// a mantissa in [2/3, 4/3) so the seed 1.0 is within 1/3 of the answer.
const recipSplitMant uint32 = 0x2AAAAB

// Sub returns a - b as a + (-b). The sign flip is exact, so Sub rounds
// exactly once, in Add.
func Sub[P Provider](p P, a, b float32) float32 {
	return p.Add(a, Neg(b))
}

// Recip approximates 1/b with NewtonIterations steps of
//
//	x[n+1] = x[n] * (2 - b*x[n]),  x[0] = 1
//
// applied to the mantissa of b. The exponent and sign are peeled off with
// integer operations and restored by multiplying with exact powers of two,
// so the relative error is bounded by (1/3)^8 for every normal b.
//
// Zero, subnormal, infinite and NaN divisors skip the normalization and
// iterate on b directly; the result is whatever the recurrence produces.
func Recip[P Provider](p P, b float32) float32 {
	u := Bits(b)
	e := int((u & ExpMask) >> MantBits)
	if e == 0 || e == 0xFF {
		return newtonRecip(p, b)
	}

	mant := u & MantMask
	k := e - ExpBias
	mexp := uint32(ExpBias)
	if mant >= recipSplitMant {
		mexp--
		k++
	}
	r := newtonRecip(p, FromBits(mexp<<MantBits|mant))

	// 2^-k may not be representable on its own (k reaches 128), so scale
	// in two halves.
	h := -k / 2
	r = p.Mul(r, pow2(h))
	r = p.Mul(r, pow2(-k-h))
	if u&SignMask != 0 {
		r = Neg(r)
	}
	return r
}

// Div returns a * Recip(b).
//
// Subnormal divisors, like zero, skip range reduction and leave the seed
// only three doublings from 1: Div(1, 1e-38) is 8, not 1e38.
func Div[P Provider](p P, a, b float32) float32 {
	return p.Mul(a, Recip(p, b))
}

func newtonRecip[P Provider](p P, b float32) float32 {
	x := float32(1.0)
	for range NewtonIterations {
		bx := p.Mul(b, x)
		x = p.Mul(x, Sub(p, 2.0, bx))
	}
	return x
}
