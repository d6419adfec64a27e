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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nofpu/fpu"
	nfmath "github.com/ajroetker/go-nofpu/fpu/contrib/math"
	"github.com/ajroetker/go-nofpu/internal/bench"
)

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected backend and approximation constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := rootOpts.backend()
			if err != nil {
				return err
			}
			pr := printer()
			out := cmd.OutOrStdout()
			pr.Fprintf(out, "backend:              %s\n", b)
			pr.Fprintf(out, "process default:      %s\n", fpu.CurrentName())
			pr.Fprintf(out, "custom instructions:  %t\n", fpu.HasCustomInstructions())
			pr.Fprintf(out, "newton iterations:    %d\n", fpu.NewtonIterations)
			pr.Fprintf(out, "exp saturation:       %g / %g beyond |x| > 4\n", nfmath.ExpSaturationHigh, nfmath.ExpSaturationLow)
			pr.Fprintf(out, "kernels:              %s\n", strings.Join(bench.Names(), ", "))
			return nil
		},
	}
}
