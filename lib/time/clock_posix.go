//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris
// +build linux darwin dragonfly freebsd netbsd openbsd solaris

package time

import (
	"time"

	"golang.org/x/sys/unix"
)

// systemNow reads the wall clock with gettimeofday(2).
func systemNow() time.Time {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return time.Now()
	}
	return time.Unix(tv.Unix())
}
