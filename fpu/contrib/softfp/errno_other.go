//go:build !unix

package softfp

import "syscall"

// Values match newlib and Linux.
const (
	errDomain = syscall.Errno(33)
	errRange  = syscall.Errno(34)
)
