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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdmath "math"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nofpu/internal/bench"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	Kernels []string
	Lo, Hi  float32
	Steps   int
	Tol     float64
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Sweep kernels and report the worst custom-vs-emulated error",
		Long: `Compare evaluates each kernel on both backends at evenly spaced inputs
and reports the largest absolute difference and where it occurred.

With --tol, kernels whose error exceeds the tolerance fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Kernels, "kernel", "k", bench.Names(), "kernels to compare")
	cmd.Flags().Float32Var(&opts.Lo, "lo", -4, "lower end of the input range")
	cmd.Flags().Float32Var(&opts.Hi, "hi", 4, "upper end of the input range")
	cmd.Flags().IntVar(&opts.Steps, "steps", 8000, "number of intervals in the sweep")
	cmd.Flags().Float64Var(&opts.Tol, "tol", 0, "fail if any kernel's max error exceeds this (0 disables)")

	return cmd
}

func runCompare(ctx context.Context, rootOpts *RootOptions, opts *CompareOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := rootOpts.logger(cmd.ErrOrStderr())

	results, err := bench.Sweep(ctx, opts.Kernels, bench.DefaultParams(), opts.Lo, opts.Hi, opts.Steps)
	if err != nil {
		return &ExitError{Code: ExitCommandError, Message: "sweep failed", Err: err}
	}
	logger.Debug("sweep finished", "kernels", len(results), "steps", opts.Steps)

	if rootOpts.Format == "json" {
		if err := writeSweepJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		pr := printer()
		out := cmd.OutOrStdout()
		pr.Fprintf(out, "%-10s %12s %12s %10s\n", "KERNEL", "MAX_ABS_ERR", "AT", "SAMPLES")
		for _, r := range results {
			pr.Fprintf(out, "%-10s %12.6f %12.4f %10d\n", r.Kernel, r.MaxAbsErr, r.WorstInput, r.Samples)
		}
	}

	if opts.Tol <= 0 {
		return nil
	}
	failed := lo.Filter(results, func(r bench.SweepResult, _ int) bool {
		return r.MaxAbsErr > opts.Tol
	})
	if len(failed) > 0 {
		names := lo.Map(failed, func(r bench.SweepResult, _ int) string { return r.Kernel })
		return &ExitError{
			Code:    ExitFailure,
			Message: fmt.Sprintf("%d kernel(s) exceed tolerance %g: %v", len(failed), opts.Tol, names),
		}
	}
	return nil
}

type sweepJSON struct {
	Kernel     string  `json:"kernel"`
	MaxAbsErr  float64 `json:"max_abs_err"`
	Divergent  bool    `json:"divergent"`
	WorstInput float32 `json:"worst_input"`
	Samples    int     `json:"samples"`
}

// writeSweepJSON encodes sweep results. JSON has no infinity, so a NaN
// disagreement is reported with divergent set and max_abs_err zeroed.
func writeSweepJSON(w io.Writer, results []bench.SweepResult) error {
	out := make([]sweepJSON, len(results))
	for i, r := range results {
		out[i] = sweepJSON{
			Kernel:     r.Kernel,
			MaxAbsErr:  r.MaxAbsErr,
			WorstInput: r.WorstInput,
			Samples:    r.Samples,
		}
		if stdmath.IsInf(r.MaxAbsErr, 0) {
			out[i].MaxAbsErr = 0
			out[i].Divergent = true
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
