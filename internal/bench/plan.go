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
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-nofpu/fpu"
)

// ErrEmptyPlan is returned when a plan names no kernels or no inputs.
var ErrEmptyPlan = errors.New("bench plan has no kernels or no inputs")

// Plan describes a batch of benchmark runs.
//
//	iterations: 1000
//	backends: [custom, soft]
//	kernels: [sigmoid, mish]
//	inputs: [-1.0, 0.5]
//	params:
//	  leaky_alpha: 0.01
//	  elu_alpha: 1.0
type Plan struct {
	Iterations int       `yaml:"iterations"`
	Backends   []string  `yaml:"backends"`
	Kernels    []string  `yaml:"kernels"`
	Inputs     []float32 `yaml:"inputs"`
	Params     *Params   `yaml:"params"`
}

// LoadPlan reads and validates a YAML plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bench plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes and validates a YAML plan, filling in defaults.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing bench plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks kernel and backend names and applies defaults for
// iterations, backends and params.
func (p *Plan) Validate() error {
	if len(p.Kernels) == 0 || len(p.Inputs) == 0 {
		return ErrEmptyPlan
	}
	if p.Iterations < 0 {
		return fmt.Errorf("bench plan: negative iterations %d", p.Iterations)
	}
	if p.Iterations == 0 {
		p.Iterations = DefaultIterations
	}
	if len(p.Backends) == 0 {
		p.Backends = []string{fpu.CurrentName()}
	}
	if p.Params == nil {
		params := DefaultParams()
		p.Params = &params
	}
	for _, name := range p.Backends {
		if _, ok := fpu.ParseBackend(name); !ok {
			return fmt.Errorf("bench plan: unknown backend %q", name)
		}
	}
	for _, name := range p.Kernels {
		if _, err := Lookup(name, fpu.BackendCustom, *p.Params); err != nil {
			return fmt.Errorf("bench plan: %w", err)
		}
	}
	return nil
}

// Execute runs every (backend, kernel, input) combination in plan order.
func (r *Runner) Execute(p *Plan) ([]Result, error) {
	var results []Result
	for _, bname := range p.Backends {
		b, ok := fpu.ParseBackend(bname)
		if !ok {
			return nil, fmt.Errorf("unknown backend %q", bname)
		}
		for _, kname := range p.Kernels {
			k, err := Lookup(kname, b, *p.Params)
			if err != nil {
				return nil, err
			}
			for _, x := range p.Inputs {
				runner := *r
				runner.Iterations = p.Iterations
				results = append(results, runner.Run(kname, b, k, x))
			}
		}
	}
	return results, nil
}
