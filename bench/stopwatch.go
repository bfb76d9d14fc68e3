package bench

import "time"

// Stopwatch is a coarse wall-clock timer.
type Stopwatch struct {
	start time.Time
	end   time.Time
}

func (s *Stopwatch) Start() {
	s.start = time.Now()
	s.end = time.Time{}
}

func (s *Stopwatch) Stop() {
	s.end = time.Now()
}

// Elapsed is zero until Stop has been called after Start.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.end.IsZero() || s.start.IsZero() {
		return 0
	}
	return s.end.Sub(s.start)
}

func (s *Stopwatch) Micros() float64 {
	return float64(s.Elapsed()) / float64(time.Microsecond)
}
