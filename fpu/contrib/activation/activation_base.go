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

package activation

import (
	"github.com/ajroetker/go-nofpu/fpu"
	"github.com/ajroetker/go-nofpu/fpu/contrib/math"
)

// GELU tanh-approximation constants.
var (
	geluSqrt2OverPi_f32 float32 = 0.7978845608
	geluCubic_f32       float32 = 0.044715
	geluHalf_f32        float32 = 0.5
)

// Mish approximation constants.
var (
	mishHalf_f32       float32 = 0.5
	mishNegHalf_f32    float32 = -0.5
	mishCorrection_f32 float32 = 0.8

	// mishSmallBits is the bit pattern of 0.5.
	mishSmallBits uint32 = 0x3F000000
)

var one_f32 float32 = 1.0

// BaseReLU returns x when its sign bit is clear and 0 otherwise. -0 maps
// to +0.
func BaseReLU(x float32) float32 {
	if !fpu.IsNegative(x) {
		return x
	}
	return 0
}

// BaseLeakyReLU returns x when its sign bit is clear and alpha*x otherwise.
func BaseLeakyReLU[P fpu.Provider](p P, x, alpha float32) float32 {
	if !fpu.IsNegative(x) {
		return x
	}
	return p.Mul(alpha, x)
}

// BaseELU returns x when its sign bit is clear and alpha*(exp(x) - 1)
// otherwise. Below -4 the exponential saturates, so the negative branch
// bottoms out at alpha*(0.05 - 1).
func BaseELU[P fpu.Provider](p P, x, alpha float32) float32 {
	if !fpu.IsNegative(x) {
		return x
	}
	expM1 := fpu.Sub(p, math.Exp(p, x), one_f32)
	return p.Mul(alpha, expM1)
}

// BaseSigmoid computes 1 / (1 + exp(-x)). The negation is a sign-bit flip
// and the division is the Newton-Raphson divider.
func BaseSigmoid[P fpu.Provider](p P, x float32) float32 {
	expNegX := math.Exp(p, fpu.Neg(x))
	return fpu.Div(p, one_f32, p.Add(one_f32, expNegX))
}

// BaseSiLU computes x * sigmoid(x).
func BaseSiLU[P fpu.Provider](p P, x float32) float32 {
	return p.Mul(x, BaseSigmoid(p, x))
}

// BaseTanh computes tanh(x); see math.Tanh for the saturation behavior.
func BaseTanh[P fpu.Provider](p P, x float32) float32 {
	return math.Tanh(p, x)
}

// BaseGELU computes the tanh approximation of GELU:
//
//	0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3)))
func BaseGELU[P fpu.Provider](p P, x float32) float32 {
	x2 := p.Mul(x, x)
	x3 := p.Mul(x2, x)
	inner := p.Add(x, p.Mul(geluCubic_f32, x3))
	t := math.Tanh(p, p.Mul(geluSqrt2OverPi_f32, inner))
	return p.Mul(geluHalf_f32, p.Mul(x, p.Add(one_f32, t)))
}

// BaseMish is a closed-form stand-in for mish(x) = x * tanh(softplus(x)).
// The custom backend has no logarithm, so softplus is not computed:
//
//	x >= 0:  x
//	x <  0:  0.8 * x * t,  t = x/2 if |x/2| < 0.5, else -0.5
//
// This is not an approximation of mish in any error-bounded sense. For
// negative x it is positive where mish is negative, and it grows as 0.4*x^2
// for small |x|. It is kept as is because results recorded on the target
// depend on it; use SoftMish where the true function is required.
func BaseMish[P fpu.Provider](p P, x float32) float32 {
	if !fpu.IsNegative(x) {
		return x
	}

	xs := p.Mul(x, mishHalf_f32)
	t := mishNegHalf_f32
	if fpu.AbsBits(xs) < mishSmallBits {
		t = xs
	}
	return p.Mul(p.Mul(x, t), mishCorrection_f32)
}
