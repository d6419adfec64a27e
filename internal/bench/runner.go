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
	"io"
	"log/slog"

	"github.com/ajroetker/go-nofpu/fpu"
)

// DefaultIterations matches the firmware benchmark loop.
const DefaultIterations = 1000

// Result is one benchmark measurement.
type Result struct {
	Kernel     string
	Backend    fpu.Backend
	Input      float32
	Iterations int
	Total      uint64
	Average    uint64
	Output     float32
}

// OutputBits returns the bit pattern of the last kernel result.
func (r Result) OutputBits() uint32 {
	return fpu.Bits(r.Output)
}

// Runner times repeated kernel calls with a Counter.
type Runner struct {
	Counter    Counter
	Iterations int
	Logger     *slog.Logger
}

// NewRunner returns a Runner on the host clock with DefaultIterations.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		Counter:    &HostCounter{},
		Iterations: DefaultIterations,
		Logger:     logger,
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}

// Run calls k(x) r.Iterations times between two counter reads.
func (r *Runner) Run(name string, b fpu.Backend, k Kernel, x float32) Result {
	n := r.Iterations
	if n <= 0 {
		n = DefaultIterations
	}

	// One untimed call, as the firmware does before enabling the counter.
	out := k(x)

	r.Counter.Reset()
	before := r.Counter.Read()
	for range n {
		out = k(x)
	}
	after := r.Counter.Read()

	res := Result{
		Kernel:     name,
		Backend:    b,
		Input:      x,
		Iterations: n,
		Total:      after - before,
		Average:    (after - before) / uint64(n),
		Output:     out,
	}
	r.logger().Debug("kernel timed",
		"kernel", name,
		"backend", b.String(),
		"input", x,
		"total", res.Total,
		"average", res.Average,
		"result_bits", res.OutputBits(),
	)
	return res
}
