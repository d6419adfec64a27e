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
	"github.com/ajroetker/go-nofpu/fpu/contrib/softfp"
)

// Kernels is one complete set of activation functions bound to a backend.
type Kernels struct {
	Backend fpu.Backend

	ReLU      func(x float32) float32
	LeakyReLU func(x, alpha float32) float32
	ELU       func(x, alpha float32) float32
	Sigmoid   func(x float32) float32
	SiLU      func(x float32) float32
	Tanh      func(x float32) float32
	GELU      func(x float32) float32
	Mish      func(x float32) float32
	Softmax   func(input, output []float32)
}

// ForBackend returns the kernel set for b. Unknown backends get the custom
// set.
func ForBackend(b fpu.Backend) Kernels {
	if b == fpu.BackendSoft {
		return Kernels{
			Backend:   fpu.BackendSoft,
			ReLU:      SoftReLU,
			LeakyReLU: SoftLeakyReLU,
			ELU:       SoftELU,
			Sigmoid:   SoftSigmoid,
			SiLU:      SoftSiLU,
			Tanh:      SoftTanh,
			GELU:      SoftGELU,
			Mish:      SoftMish,
			Softmax:   SoftSoftmax,
		}
	}
	return Kernels{
		Backend:   fpu.BackendCustom,
		ReLU:      BaseReLU,
		LeakyReLU: func(x, alpha float32) float32 { return BaseLeakyReLU(custom, x, alpha) },
		ELU:       func(x, alpha float32) float32 { return BaseELU(custom, x, alpha) },
		Sigmoid:   func(x float32) float32 { return BaseSigmoid(custom, x) },
		SiLU:      func(x float32) float32 { return BaseSiLU(custom, x) },
		Tanh:      func(x float32) float32 { return BaseTanh(custom, x) },
		GELU:      func(x float32) float32 { return BaseGELU(custom, x) },
		Mish:      func(x float32) float32 { return BaseMish(custom, x) },
		Softmax:   func(input, output []float32) { BaseSoftmax(custom, input, output) },
	}
}

var custom fpu.Custom

// Dispatched kernels for the process-wide backend, bound in init.
var (
	ReLU      func(x float32) float32
	LeakyReLU func(x, alpha float32) float32
	ELU       func(x, alpha float32) float32
	Sigmoid   func(x float32) float32
	SiLU      func(x float32) float32
	Tanh      func(x float32) float32
	GELU      func(x float32) float32
	Mish      func(x float32) float32
	Softmax   func(input, output []float32)
)

// Provider returns the primitive provider behind the dispatched kernels.
func Provider() fpu.Provider {
	if fpu.CurrentBackend() == fpu.BackendSoft {
		return softfp.Provider{}
	}
	return custom
}

func init() {
	k := ForBackend(fpu.CurrentBackend())
	ReLU = k.ReLU
	LeakyReLU = k.LeakyReLU
	ELU = k.ELU
	Sigmoid = k.Sigmoid
	SiLU = k.SiLU
	Tanh = k.Tanh
	GELU = k.GELU
	Mish = k.Mish
	Softmax = k.Softmax
}
