//go:build !unix

package bench

// peakRSSKB reports -1 on platforms without getrusage.
func peakRSSKB() int64 { return -1 }
