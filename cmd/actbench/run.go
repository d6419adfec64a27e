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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nofpu/internal/bench"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	Kernels    []string
	Inputs     []float32
	Iterations int
	PlanPath   string
	LeakyAlpha float32
	ELUAlpha   float32
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}
	params := bench.DefaultParams()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time kernels over a fixed number of iterations",
		Long: `Run calls each kernel on each input for a fixed number of iterations
between two counter reads and reports the total and per-call counts and the
bit pattern of the last result.

Kernels and inputs come from flags or from a YAML plan (--plan).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Kernels, "kernel", "k", bench.Names(), "kernels to run")
	cmd.Flags().Float32SliceVarP(&opts.Inputs, "input", "x", []float32{-1, 0.5, 2}, "kernel inputs")
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", bench.DefaultIterations, "calls per measurement")
	cmd.Flags().StringVarP(&opts.PlanPath, "plan", "p", "", "YAML bench plan (overrides --kernel, --input and --iterations)")
	cmd.Flags().Float32Var(&opts.LeakyAlpha, "leaky-alpha", params.LeakyAlpha, "negative slope for leaky_relu")
	cmd.Flags().Float32Var(&opts.ELUAlpha, "elu-alpha", params.ELUAlpha, "alpha for elu")

	return cmd
}

func (o *RunOptions) plan(rootOpts *RootOptions) (*bench.Plan, error) {
	var (
		p   *bench.Plan
		err error
	)
	if o.PlanPath != "" {
		p, err = bench.LoadPlan(o.PlanPath)
	} else {
		p = &bench.Plan{
			Iterations: o.Iterations,
			Kernels:    o.Kernels,
			Inputs:     o.Inputs,
			Params:     &bench.Params{LeakyAlpha: o.LeakyAlpha, ELUAlpha: o.ELUAlpha},
		}
		err = p.Validate()
	}
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "invalid bench plan", Err: err}
	}
	if rootOpts.Backend != "" {
		b, err := rootOpts.backend()
		if err != nil {
			return nil, err
		}
		p.Backends = []string{b.String()}
	}
	return p, nil
}

func runRun(rootOpts *RootOptions, opts *RunOptions, cmd *cobra.Command) error {
	p, err := opts.plan(rootOpts)
	if err != nil {
		return err
	}

	logger := rootOpts.logger(cmd.ErrOrStderr())
	logger.Debug("bench plan",
		"backends", p.Backends,
		"kernels", p.Kernels,
		"inputs", len(p.Inputs),
		"iterations", p.Iterations,
	)

	runner := bench.NewRunner(logger)
	results, err := runner.Execute(p)
	if err != nil {
		return &ExitError{Code: ExitCommandError, Message: "running bench plan", Err: err}
	}

	if rootOpts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	writeResults(cmd.OutOrStdout(), results)
	return nil
}

type resultJSON struct {
	Kernel     string  `json:"kernel"`
	Backend    string  `json:"backend"`
	Input      float32 `json:"input"`
	Iterations int     `json:"iterations"`
	Total      uint64  `json:"total"`
	Average    uint64  `json:"average"`
	Output     float32 `json:"output"`
	OutputBits string  `json:"output_bits"`
}

func writeJSON(w io.Writer, results []bench.Result) error {
	out := make([]resultJSON, len(results))
	for i, r := range results {
		out[i] = resultJSON{
			Kernel:     r.Kernel,
			Backend:    r.Backend.String(),
			Input:      r.Input,
			Iterations: r.Iterations,
			Total:      r.Total,
			Average:    r.Average,
			Output:     r.Output,
			OutputBits: fmt.Sprintf("0x%08X", r.OutputBits()),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeResults(w io.Writer, results []bench.Result) {
	pr := printer()
	pr.Fprintf(w, "%-10s %-7s %10s %14s %10s %12s %s\n",
		"KERNEL", "BACKEND", "INPUT", "TOTAL", "AVG", "RESULT", "BITS")
	for _, r := range results {
		pr.Fprintf(w, "%-10s %-7s %10.4f %14d %10d %12.6f 0x%08X\n",
			r.Kernel, r.Backend, r.Input, r.Total, r.Average, r.Output, r.OutputBits())
	}
}
