package scheduling

import "time"

const (
	// DefaultSlotDelay is how far ahead an interview is booked.
	DefaultSlotDelay = 24 * time.Hour

	slotLayout = "2006-01-02T15:04:05Z"
)

// NextSlot returns now+delay in UTC, truncated to whole seconds, as an
// ISO-8601 timestamp with a Z suffix. A non-positive delay means
// DefaultSlotDelay.
func NextSlot(now time.Time, delay time.Duration) string {
	if delay <= 0 {
		delay = DefaultSlotDelay
	}
	return now.Add(delay).UTC().Truncate(time.Second).Format(slotLayout)
}
