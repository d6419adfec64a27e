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
	"github.com/ajroetker/go-nofpu/fpu/contrib/softfp"
)

// BaseSoftmax computes the softmax of input into output:
//
//	softmax(x_i) = exp(x_i - max(x)) / sum(exp(x_j - max(x)))
//
// in three passes: the maximum is found by comparing bit patterns, the
// shifted exponentials and their compensated running sum are accumulated,
// and the results are scaled by a single reciprocal of the sum. Only the
// first min(len(input), len(output)) elements are processed. Input must be
// finite.
//
// Every shifted argument is <= 0, so each exponential lies in (0, 1] (or
// is the 0.05 saturation value) and the sum is at least 1.
func BaseSoftmax[P fpu.Provider](p P, input, output []float32) {
	size := min(len(input), len(output))
	if size == 0 {
		return
	}

	maxVal := input[0]
	for i := 1; i < size; i++ {
		maxVal = fpu.Max(maxVal, input[i])
	}

	// Kahan summation: comp carries the low-order bits lost by each add,
	// keeping the sum accurate for long vectors.
	var sum, comp float32
	for i := range size {
		e := math.Exp(p, fpu.Sub(p, input[i], maxVal))
		output[i] = e
		y := fpu.Sub(p, e, comp)
		t := p.Add(sum, y)
		comp = fpu.Sub(p, fpu.Sub(p, t, sum), y)
		sum = t
	}

	invSum := fpu.Recip(p, sum)
	for i := range size {
		output[i] = p.Mul(output[i], invSum)
	}
}

// SoftSoftmax is BaseSoftmax on the emulated backend, with float compares,
// library exp and true division.
func SoftSoftmax(input, output []float32) {
	size := min(len(input), len(output))
	if size == 0 {
		return
	}

	maxVal := input[0]
	for i := 1; i < size; i++ {
		if softfp.Less(maxVal, input[i]) {
			maxVal = input[i]
		}
	}

	var sum, comp float32
	for i := range size {
		e := softfp.Exp(softfp.Sub(input[i], maxVal))
		output[i] = e
		y := softfp.Sub(e, comp)
		t := softfp.Add(sum, y)
		comp = softfp.Sub(softfp.Sub(t, sum), y)
		sum = t
	}

	for i := range size {
		output[i] = softfp.Div(output[i], sum)
	}
}
