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
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nofpu/fpu"
	"github.com/ajroetker/go-nofpu/internal/bench"
)

// NewProbeCommand creates the probe command.
func NewProbeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check the primitive operations against known bit patterns",
		Long: `Probe runs the firmware self-test: the add and multiply instructions,
the derived subtract and divide, and the exp and tanh building blocks, each
against an expected bit pattern or tolerance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(rootOpts, cmd)
		},
	}
	return cmd
}

func runProbe(rootOpts *RootOptions, cmd *cobra.Command) error {
	logger := rootOpts.logger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	probes := bench.Probes()
	for _, p := range probes {
		status := "ok"
		if !p.Pass() {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-12s 0x%08X want 0x%08X %s\n", p.Name, fpu.Bits(p.Got), fpu.Bits(p.Want), status)
		logger.Debug("probe", "name", p.Name, "got", p.Got, "want", p.Want, "tol", p.Tol)
	}

	failed := lo.CountBy(probes, func(p bench.Probe) bool { return !p.Pass() })
	if failed > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d of %d probes failed", failed, len(probes))}
	}
	return nil
}
