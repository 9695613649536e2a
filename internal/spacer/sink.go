package spacer

import (
	"io"
	"sync"
)

// Sink serializes writes to the shared output. Each call writes one
// complete block while holding the lock, so relayed lines and spacers never
// interleave mid-line.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink wraps w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Write writes p as one unit.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// WriteIf evaluates commit while holding the sink lock and writes p only
// when it returns true. It reports whether p was written.
func (s *Sink) WriteIf(commit func() bool, p []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !commit() {
		return false, nil
	}
	if _, err := s.w.Write(p); err != nil {
		return false, err
	}
	return true, nil
}

var _ io.Writer = (*Sink)(nil)
