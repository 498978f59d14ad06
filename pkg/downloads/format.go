package downloads

import "fmt"

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders a byte count as a human-readable string with one
// decimal place, scaling by 1024 up to TB. Zero and negative counts render
// as "0 B". Callers append "/s" for rates.
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	value := float64(n)
	for _, unit := range byteUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
