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

import "time"

// Counter is a monotonic event counter, typically the core's cycle CSR.
type Counter interface {
	// Reset zeroes the counter, or records the current value as the new
	// origin.
	Reset()

	// Read returns the count since the last Reset.
	Read() uint64
}

// HostCounter counts nanoseconds of the host's monotonic clock.
type HostCounter struct {
	origin time.Time
}

// Reset records now as the origin.
func (c *HostCounter) Reset() {
	c.origin = time.Now()
}

// Read returns nanoseconds elapsed since Reset.
func (c *HostCounter) Read() uint64 {
	if c.origin.IsZero() {
		return 0
	}
	return uint64(time.Since(c.origin))
}

var _ Counter = (*HostCounter)(nil)
