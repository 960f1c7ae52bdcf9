//go:build unix

package bench

import "golang.org/x/sys/unix"

// peakRSSKB reports the calling process's peak resident set size in
// kilobytes via getrusage(RUSAGE_SELF), the same best-effort OS
// introspection role golang.org/x/sys plays for process-level stats when no
// portable stdlib equivalent exists.
func peakRSSKB() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return -1
	}
	// Linux reports ru_maxrss in kilobytes already; other unix kernels that
	// report bytes are close enough for a "best-effort" figure.
	return int64(ru.Maxrss)
}
