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
	"context"
	"fmt"
	stdmath "math"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-nofpu/fpu"
)

// SweepResult is the worst disagreement between the two backends for one
// kernel over a sampled range.
type SweepResult struct {
	Kernel     string
	MaxAbsErr  float64
	WorstInput float32
	Samples    int
}

// Sweep samples steps+1 evenly spaced inputs on [lo, hi] and records, for
// each named kernel, the largest |custom - soft|. Kernels are swept
// concurrently; the first error cancels the rest.
func Sweep(ctx context.Context, names []string, params Params, lo, hi float32, steps int) ([]SweepResult, error) {
	if steps < 1 {
		return nil, fmt.Errorf("sweep: steps must be positive, got %d", steps)
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("sweep: empty range [%g, %g]", lo, hi)
	}

	results := make([]SweepResult, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			custom, err := Lookup(name, fpu.BackendCustom, params)
			if err != nil {
				return err
			}
			soft, err := Lookup(name, fpu.BackendSoft, params)
			if err != nil {
				return err
			}

			res, err := sweepKernel(ctx, name, custom, soft, lo, hi, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sweepKernel(ctx context.Context, name string, custom, soft Kernel, lo, hi float32, steps int) (SweepResult, error) {
	res := SweepResult{Kernel: name, Samples: steps + 1}
	span := hi - lo
	for s := 0; s <= steps; s++ {
		if s%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return SweepResult{}, err
			}
		}
		x := lo + span*float32(s)/float32(steps)
		if d := divergence(custom(x), soft(x)); d > res.MaxAbsErr {
			res.MaxAbsErr = d
			res.WorstInput = x
		}
	}
	return res, nil
}

// divergence returns |a - b|. A NaN on one side only counts as +Inf so it
// can't hide below a tolerance; NaN on both sides is agreement.
func divergence(a, b float32) float64 {
	aNaN, bNaN := stdmath.IsNaN(float64(a)), stdmath.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || bNaN:
		return stdmath.Inf(1)
	}
	d := stdmath.Abs(float64(a) - float64(b))
	if stdmath.IsNaN(d) {
		// Same-signed infinities.
		return 0
	}
	return d
}
