package softfp

import (
	"sync/atomic"
	"syscall"
)

// errno is the library's process-wide error number. It exists from
// package initialization on and is never torn down.
var errno atomic.Uint32

func setErrno(e syscall.Errno) {
	errno.Store(uint32(e))
}

// Errno returns the error recorded by the most recent failing library call
// since the last ClearErrno, or nil. Successful calls do not clear it.
func Errno() error {
	if e := errno.Load(); e != 0 {
		return syscall.Errno(e)
	}
	return nil
}

// ClearErrno resets the error number to zero.
func ClearErrno() {
	errno.Store(0)
}
