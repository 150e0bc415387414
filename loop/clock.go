package loop

import "time"

// FrameTimer measures wall-clock time between frames for front ends whose
// host does not report a delta.
type FrameTimer struct {
	lastFrameTime time.Time
	now           func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return newFrameTimer(time.Now)
}

func newFrameTimer(now func() time.Time) *FrameTimer {
	return &FrameTimer{
		lastFrameTime: now(),
		now:           now,
	}
}

// Reset restarts the measurement from the current instant.
func (ft *FrameTimer) Reset() {
	ft.lastFrameTime = ft.now()
}

// Delta returns the seconds elapsed since the previous call or Reset.
func (ft *FrameTimer) Delta() float64 {
	now := ft.now()
	delta := now.Sub(ft.lastFrameTime).Seconds()
	ft.lastFrameTime = now
	return delta
}
