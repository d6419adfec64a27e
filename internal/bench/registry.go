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
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-nofpu/fpu"
	"github.com/ajroetker/go-nofpu/fpu/contrib/activation"
)

// ErrUnknownKernel is returned for kernel names not in the registry.
var ErrUnknownKernel = errors.New("unknown kernel")

// Kernel is a unary kernel as driven by the benchmark loop. Two-argument
// kernels are closed over their parameter.
type Kernel func(x float32) float32

// Params holds the second argument of the parameterized kernels.
type Params struct {
	LeakyAlpha float32 `yaml:"leaky_alpha"`
	ELUAlpha   float32 `yaml:"elu_alpha"`
}

// DefaultParams returns the parameters used on the target: 0.01 for leaky
// ReLU and 1.0 for ELU.
func DefaultParams() Params {
	return Params{LeakyAlpha: 0.01, ELUAlpha: 1.0}
}

func kernelTable(k activation.Kernels, params Params) map[string]Kernel {
	return map[string]Kernel{
		"relu":       k.ReLU,
		"leaky_relu": func(x float32) float32 { return k.LeakyReLU(x, params.LeakyAlpha) },
		"elu":        func(x float32) float32 { return k.ELU(x, params.ELUAlpha) },
		"sigmoid":    k.Sigmoid,
		"silu":       k.SiLU,
		"tanh":       k.Tanh,
		"gelu":       k.GELU,
		"mish":       k.Mish,
	}
}

// Names returns the registered kernel names in sorted order.
func Names() []string {
	names := lo.Keys(kernelTable(activation.ForBackend(fpu.BackendCustom), DefaultParams()))
	slices.Sort(names)
	return names
}

// Lookup returns the named kernel on backend b.
func Lookup(name string, b fpu.Backend, params Params) (Kernel, error) {
	k, ok := kernelTable(activation.ForBackend(b), params)[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownKernel, name, Names())
	}
	return k, nil
}
