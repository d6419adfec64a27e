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

// Package math provides the elementary functions needed by the activation
// kernels, built only from an fpu.Provider (add, multiply) and the derived
// arithmetic in package fpu.
//
// Functions:
//   - ExpPoly(p, x) - 4th-order Taylor polynomial of e^x around 0
//   - Exp(p, x) - e^x with |x| > 4 saturation
//   - Tanh(p, x) - (e^2x - 1) / (e^2x + 1) with |x| > 4 saturation
//
// Every function executes a fixed number of primitive operations per
// branch. Accuracy is bounded but not IEEE-correct; outside |x| <= 4 the
// functions return fixed substitute values instead of evaluating.
package math
