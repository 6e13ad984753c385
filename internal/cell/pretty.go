package cell

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// PrettyDuration formats seconds as M:SS, or H:MM:SS from one hour up.
func PrettyDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds / 60) % 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PrettySize formats a byte count with SI units ("0 B", "4.2 MB").
func PrettySize(bytes uint64) string {
	return humanize.Bytes(bytes)
}
