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

// Package activation provides neural-network activation functions for
// cores without a floating-point unit.
//
// Each kernel exists in two renditions:
//
//   - Base* kernels are built from an fpu.Provider (add, multiply), the
//     derived arithmetic in package fpu and the approximations in
//     fpu/contrib/math. Sign and zero tests read the sign bit; no kernel
//     uses a floating-point compare.
//   - Soft* kernels use the emulated backend in fpu/contrib/softfp, with
//     real division and library exp/log/tanh. They are the accuracy oracle.
//
// The package-level function variables (ReLU, Sigmoid, Softmax, ...) are
// bound once at start-up to the rendition selected by fpu.CurrentBackend.
//
// Supported kernels:
//   - ReLU(x) = max(0, x)
//   - LeakyReLU(x, alpha) = x if x >= 0, else alpha*x
//   - ELU(x, alpha) = x if x >= 0, else alpha*(exp(x) - 1)
//   - Sigmoid(x) = 1 / (1 + exp(-x))
//   - SiLU(x) = x * sigmoid(x), also called Swish
//   - Tanh(x)
//   - GELU(x) = 0.5*x*(1 + tanh(sqrt(2/pi)*(x + 0.044715*x^3)))
//   - Mish(x) = x * tanh(softplus(x)); see BaseMish for the custom-backend
//     approximation, which deliberately differs
//   - Softmax(input, output)
//
// None of the kernels report errors: they are total over float32, with
// saturation standing in for overflow.
package activation
