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

package bench

import (
	"github.com/ajroetker/go-nofpu/fpu"
	nfmath "github.com/ajroetker/go-nofpu/fpu/contrib/math"
)

// Probe is one primitive-operation check on the custom backend.
//
// When Tol is zero the result must match Want bit for bit; otherwise it must
// lie within Tol of Want.
type Probe struct {
	Name string
	Got  float32
	Want float32
	Tol  float32
}

// Pass reports whether the probe result is acceptable.
func (p Probe) Pass() bool {
	if p.Tol == 0 {
		return fpu.Bits(p.Got) == fpu.Bits(p.Want)
	}
	d := fpu.Sub(fpu.Custom{}, p.Got, p.Want)
	return fpu.AbsBits(d) <= fpu.Bits(p.Tol)
}

// Probes evaluates the firmware self-test scenarios on fpu.Custom: the two
// instructions, the derived subtract and divide, and the exp and tanh
// building blocks.
func Probes() []Probe {
	var c fpu.Custom
	return []Probe{
		{Name: "add(1,2)", Got: c.Add(1, 2), Want: fpu.FromBits(0x40400000)},
		{Name: "mul(2,3)", Got: c.Mul(2, 3), Want: fpu.FromBits(0x40C00000)},
		{Name: "mul(-1,0.5)", Got: c.Mul(-1, 0.5), Want: fpu.FromBits(0xBF000000)},
		{Name: "sub(3,1)", Got: fpu.Sub(c, 3, 1), Want: fpu.FromBits(0x40000000)},
		{Name: "add(3,-1)", Got: c.Add(3, fpu.Neg(1)), Want: fpu.FromBits(0x40000000)},
		{Name: "div(1,2)", Got: fpu.Div(c, 1, 2), Want: 0.5, Tol: 1e-3},
		{Name: "exp(5)", Got: nfmath.Exp(c, 5), Want: nfmath.ExpSaturationHigh},
		{Name: "exp(-5)", Got: nfmath.Exp(c, -5), Want: nfmath.ExpSaturationLow},
		{Name: "exp(-1)", Got: nfmath.Exp(c, -1), Want: 0.36787945, Tol: 0.02},
		{Name: "tanh(0.5)", Got: nfmath.Tanh(c, 0.5), Want: 0.46211716, Tol: 0.02},
	}
}
