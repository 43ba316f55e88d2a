package tui

import (
	"time"

	"github.com/kudoshq/kudoticker/internal/recognition"
)

// loopPrefix is the number of leading cards duplicated at the end of the
// display list so the wrap never shows a hard cut.
const loopPrefix = 3

// displayList returns the input sequence concatenated with its own first
// min(loopPrefix, len) elements. When the scroll offset nears the end of
// the original sequence the duplicated cards are already visible in the
// overflow region, making the loop seamless.
func displayList(records []recognition.Recognition) []recognition.Recognition {
	n := min(loopPrefix, len(records))
	out := make([]recognition.Recognition, 0, len(records)+n)
	out = append(out, records...)
	out = append(out, records[:n]...)
	return out
}

// advance converts a scroll speed in rows per second into rows to advance
// for the elapsed interval.
func advance(speed float64, elapsed time.Duration) float64 {
	return speed * elapsed.Seconds()
}

// step returns the next scroll offset. When the advanced offset reaches the
// content extent it wraps to exactly 0, restarting the loop; it is never
// clamped and never left out of [0, contentExtent).
func step(offset, adv float64, contentExtent int) float64 {
	next := offset + adv
	if next >= float64(contentExtent) {
		return 0
	}
	return next
}
