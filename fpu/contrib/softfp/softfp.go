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

// Package softfp is the emulated floating-point backend: full single
// precision arithmetic plus exp, log, pow and tanh, supplied by a software
// float library rather than the core's custom instructions.
//
// It serves two roles. It is the accuracy oracle the custom-instruction
// kernels are measured against, and it is the portable path on cores that
// do not implement the custom instructions at all. Because it has real
// division and transcendental functions, kernels built on softfp bypass the
// derived-arithmetic and approximation layers of package fpu entirely.
//
// Like the C library it stands in for, softfp reports domain and range
// problems through a process-wide errno (see Errno) rather than through
// return values.
package softfp

import (
	"github.com/chewxy/math32"

	"github.com/ajroetker/go-nofpu/fpu"
)

// Provider exposes the emulated add and multiply through the primitive
// contract, so anything written against fpu.Provider can run on softfp.
type Provider struct{}

// Add returns a + b.
func (Provider) Add(a, b float32) float32 { return Add(a, b) }

// Mul returns a * b.
func (Provider) Mul(a, b float32) float32 { return Mul(a, b) }

var _ fpu.Provider = Provider{}

// Add returns a + b.
func Add(a, b float32) float32 { return float32(a + b) }

// Sub returns a - b.
func Sub(a, b float32) float32 { return float32(a - b) }

// Mul returns a * b.
func Mul(a, b float32) float32 { return float32(a * b) }

// Div returns a / b. Division by zero yields a signed infinity or NaN as
// IEEE-754 prescribes; errno is not touched.
func Div(a, b float32) float32 { return float32(a / b) }

// Less reports whether a < b. NaN compares false with everything.
func Less(a, b float32) bool { return a < b }

// Exp returns e^x. Results that overflow to +Inf set ERANGE.
func Exp(x float32) float32 {
	r := math32.Exp(x)
	if math32.IsInf(r, 1) && !math32.IsInf(x, 1) {
		setErrno(errRange)
	}
	return r
}

// Log returns the natural logarithm of x. Log(0) is -Inf with ERANGE;
// negative x is NaN with EDOM.
func Log(x float32) float32 {
	switch {
	case x == 0:
		setErrno(errRange)
	case x < 0:
		setErrno(errDomain)
	}
	return math32.Log(x)
}

// Pow returns x**y. A finite negative base with a finite non-integer
// exponent is NaN with EDOM.
func Pow(x, y float32) float32 {
	if x < 0 && !math32.IsInf(x, -1) && !math32.IsInf(y, 0) && y != math32.Trunc(y) {
		setErrno(errDomain)
	}
	r := math32.Pow(x, y)
	if math32.IsInf(r, 0) && !math32.IsInf(x, 0) && x != 0 {
		setErrno(errRange)
	}
	return r
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float32) float32 {
	return math32.Tanh(x)
}
