package util

import "fmt"

// Excerpt shortens a string to a maximum
// width (80 unless given), ellipsized.
func Excerpt(data string, max ...int) string {
	width := 80
	if len(max) > 0 {
		width = max[0]
	}
	if len(data) <= width {
		return data
	}
	return data[:width] + "..."
}

// HumanizeBytes pretty-prints an amount of bytes.
func HumanizeBytes(bytes int) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%dB", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// Fallback returns the first non-empty string.
func Fallback(data ...string) string {
	for _, entry := range data {
		if entry != "" {
			return entry
		}
	}
	return ""
}
