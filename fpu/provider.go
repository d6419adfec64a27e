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

// Provider is the primitive floating-point contract: the only two
// operations the target core executes natively. Everything else in this
// module is built from these plus bit manipulation.
//
// Implementations must be pure: identical bit patterns in give identical
// bit patterns out.
type Provider interface {
	// Add returns a + b, rounded once to nearest-even.
	Add(a, b float32) float32

	// Mul returns a * b, rounded once to nearest-even.
	Mul(a, b float32) float32
}

// Custom is the Provider backed by the core's custom add and multiply
// instructions (custom0 and custom1 opcode space). On builds without the
// instructions the same contract is met by single-rounded float32 Go
// arithmetic, so kernels built on Custom behave identically on the host.
type Custom struct{}

// Add issues the custom add instruction.
func (Custom) Add(a, b float32) float32 { return customAdd(a, b) }

// Mul issues the custom multiply instruction.
func (Custom) Mul(a, b float32) float32 { return customMul(a, b) }

// HasCustomInstructions reports whether Custom maps onto real custom
// instructions in this build rather than the Go rendition.
func HasCustomInstructions() bool { return hasCustomInsn }

var _ Provider = Custom{}
