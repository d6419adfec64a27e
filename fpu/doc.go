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

// Package fpu provides the floating-point foundation for cores whose only
// floating-point hardware is a pair of custom instructions: single-precision
// add and multiply.
//
// The package is layered bottom-up:
//
//   - Bit view: Bits/FromBits reinterpret a float32 as its IEEE-754 pattern.
//     Sign and magnitude tests (IsNegative, AbsBits, Greater, Max) work on
//     the pattern so no comparison instruction is needed.
//   - Primitive provider: the Provider interface (Add, Mul). Custom issues
//     the custom instructions on riscv64 builds tagged nofpu_custom and
//     falls back to single-rounded Go arithmetic elsewhere.
//   - Derived arithmetic: Sub (sign flip + Add) and Recip/Div (fixed
//     three-step Newton-Raphson).
//
// Exponential, tanh and the activation kernels live in fpu/contrib.
//
// # Backend selection
//
// Exactly one backend is active per process. The build default is
// BackendCustom; the nofpu_soft build tag makes it BackendSoft. Setting
// NOFPU_BACKEND=soft (or custom) overrides the default once at start-up:
//
//	NOFPU_BACKEND=soft go test ./...
package fpu
