package core

import "time"

// DefaultTPS matches the ~33ms redraw interval of the window host.
const DefaultTPS = 30

// FixedStep paces generations at a steady ticks-per-second rate for hosts
// that do not have a game loop of their own.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	windowStart time.Time
	windowTicks int
	rate        float64
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to Due always reports a tick.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to DefaultTPS.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports whether the host should advance by one generation. At most one
// tick is reported per call; backlog beyond one tick is dropped so a stalled
// host does not burst through generations afterwards.
func (f *FixedStep) Due() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	f.measure(now)
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	f.windowTicks++
	return true
}

// measure closes the current one-second window and records its tick rate.
func (f *FixedStep) measure(now time.Time) {
	if f.windowStart.IsZero() {
		f.windowStart = now
		return
	}
	elapsed := now.Sub(f.windowStart)
	if elapsed < time.Second {
		return
	}
	f.rate = float64(f.windowTicks) / elapsed.Seconds()
	f.windowTicks = 0
	f.windowStart = now
}

// Rate returns the ticks per second measured over the last completed
// one-second window, or 0 before the first window closes.
func (f *FixedStep) Rate() float64 { return f.rate }

// Wait returns how long the caller can sleep before the next tick is due.
func (f *FixedStep) Wait() time.Duration {
	if f.accumulator >= f.step {
		return 0
	}
	return f.step - f.accumulator
}
