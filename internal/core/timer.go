package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Stopwatch measures the wall-clock span of the evolution loop.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
}

// Start begins (or restarts) the measurement.
func (s *Stopwatch) Start() {
	s.start = time.Now()
	s.elapsed = 0
}

// Stop ends the measurement and returns the elapsed wall-clock time.
func (s *Stopwatch) Stop() time.Duration {
	s.elapsed = time.Since(s.start)
	return s.elapsed
}

// Elapsed returns the duration recorded by the last Stop.
func (s *Stopwatch) Elapsed() time.Duration { return s.elapsed }
