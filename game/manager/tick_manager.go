package manager

import "time"

// TickManager decides when the next simulation step is due. The interval is
// passed on every check so acceleration takes effect immediately.
type TickManager struct {
	lastTick time.Time
}

func NewTickManager(start time.Time) *TickManager {
	return &TickManager{lastTick: start}
}

// Due reports whether interval has elapsed since the last tick and, if so,
// starts the next period at now.
func (tm *TickManager) Due(now time.Time, interval time.Duration) bool {
	if now.Sub(tm.lastTick) < interval {
		return false
	}
	tm.lastTick = now
	return true
}
