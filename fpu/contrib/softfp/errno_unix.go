//go:build unix

package softfp

import "golang.org/x/sys/unix"

const (
	errDomain = unix.EDOM
	errRange  = unix.ERANGE
)
