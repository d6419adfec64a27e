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

import "github.com/ajroetker/go-nofpu/fpu/contrib/workerpool"

// Parallel tuning parameters. Kernels are pure, so rows can be handed to
// workers in any order.
const (
	// MinParallelElements is the minimum total element count before work is
	// spread over the pool. The custom-backend sigmoid is ~25 primitive
	// operations, so below this the hand-off costs more than it saves.
	MinParallelElements = 8192

	// RowBatch is the number of rows a worker claims at a time.
	RowBatch = 4
)

// ParallelApplyRows applies fn to each row of a [rows, cols] matrix.
// fn receives the input and output slices for one row.
//
// Runs sequentially when pool is nil or rows*cols < MinParallelElements.
func ParallelApplyRows(pool *workerpool.Pool, input, output []float32, rows, cols int, fn func(input, output []float32)) {
	if pool == nil || rows*cols < MinParallelElements {
		for r := range rows {
			off := r * cols
			fn(input[off:off+cols], output[off:off+cols])
		}
		return
	}

	pool.ParallelForBatched(rows, RowBatch, func(start, end int) {
		for r := start; r < end; r++ {
			off := r * cols
			fn(input[off:off+cols], output[off:off+cols])
		}
	})
}

// ParallelMap applies a unary kernel element-wise over the first
// min(len(input), len(output)) elements, splitting the range across the
// pool.
func ParallelMap(pool *workerpool.Pool, input, output []float32, fn func(x float32) float32) {
	size := min(len(input), len(output))
	if pool == nil || size < MinParallelElements {
		Apply(input[:size], output[:size], fn)
		return
	}

	pool.ParallelFor(size, func(start, end int) {
		Apply(input[start:end], output[start:end], fn)
	})
}

// ParallelSoftmax computes Softmax independently over each row of a
// [rows, cols] matrix.
func ParallelSoftmax(pool *workerpool.Pool, input, output []float32, rows, cols int) {
	ParallelApplyRows(pool, input, output, rows, cols, Softmax)
}
