package formatter

import (
	"fmt"
	"io"
	"time"
)

// PrintScanTimestamp prints the scan timestamp and duration
func PrintScanTimestamp(w io.Writer, scanStartTime time.Time, scanDuration time.Duration) {
	timeStr := scanStartTime.Format("2006-01-02 15:04:05")
	fmt.Fprintf(w, "Scan completed at %s (took %.2fs)\n", timeStr, scanDuration.Seconds())
}

// money formats a dollar amount with two decimals
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
