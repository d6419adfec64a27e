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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-nofpu/fpu"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a probe or tolerance check failed
	ExitCommandError = 2 // bad flags, unreadable plan, unknown kernel
)

// ExitError carries a process exit code alongside the error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode returns the exit code carried by err, or ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Backend string
	Format  string // "text" | "json"
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// backend resolves --backend, falling back to the process default.
func (o *RootOptions) backend() (fpu.Backend, error) {
	if o.Backend == "" {
		return fpu.CurrentBackend(), nil
	}
	b, ok := fpu.ParseBackend(o.Backend)
	if !ok {
		return 0, &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("unknown backend %q", o.Backend)}
	}
	return b, nil
}

// logger writes to the command's stderr; --verbose enables debug records.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printer formats counts with digit grouping.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// NewRootCommand creates the actbench root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "actbench",
		Short: "Benchmark activation kernels on add/multiply-only hardware",
		Long: `actbench times activation kernels built from two custom floating-point
instructions, compares them against the emulated backend, and checks the
primitive operations against known bit patterns.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return &ExitError{
					Code:    ExitCommandError,
					Message: fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats),
				}
			}
			_, err := opts.backend()
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Backend, "backend", "b", "", "kernel backend (custom|soft); default from build tags and "+fpu.BackendEnvVar)
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewProbeCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}
