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

// Package bench drives activation kernels the way the firmware benchmark
// does: reset a cycle counter, call one kernel N times on a fixed input,
// read the counter, and report total and per-call counts together with the
// bit pattern of the final result.
//
// The counter is an interface. HostCounter reads the monotonic clock; a
// target build supplies an mcycle reader. The package also holds the kernel
// registry shared by the CLI, YAML bench plans, the primitive probes and
// the custom-versus-oracle sweep.
package bench
