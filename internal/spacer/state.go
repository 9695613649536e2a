package spacer

import (
	"sync"
	"time"
)

// Snapshot is a consistent copy of State taken under one lock acquisition.
type Snapshot struct {
	// LastLine is the arrival time of the most recent input line.
	LastLine time.Time

	// LastSpacer is the time the most recent spacer was committed.
	LastSpacer time.Time

	// Lines is the number of lines recorded so far.
	Lines uint64

	// Covered is the number of lines that precede the most recent spacer.
	Covered uint64

	// Finished reports whether the input has ended.
	Finished bool
}

// Idle reports whether no line has arrived since the last spacer.
// It is the line-counting form of "LastSpacer >= LastLine", which stays
// correct when two instants compare equal on a coarse clock.
func (s Snapshot) Idle() bool {
	return s.Covered == s.Lines
}

// State is the timing state shared by the relay and the clock.
//
// Every method is atomic with respect to the others and holds the lock only
// long enough to copy or assign a value. Timestamps never move backwards.
type State struct {
	mu         sync.Mutex
	lastLine   time.Time
	lastSpacer time.Time
	lines      uint64
	covered    uint64
	finished   bool

	wake chan struct{}
}

// NewState returns an idle State with both timestamps set to now.
func NewState(now time.Time) *State {
	return &State{
		lastLine:   now,
		lastSpacer: now,
		wake:       make(chan struct{}, 1),
	}
}

// LastLine returns the arrival time of the most recent line.
func (s *State) LastLine() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLine
}

// LastSpacer returns the time of the most recent spacer.
func (s *State) LastSpacer() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSpacer
}

// Finished reports whether MarkFinished has been called.
func (s *State) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Snapshot returns all fields under a single lock acquisition.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		LastLine:   s.lastLine,
		LastSpacer: s.lastSpacer,
		Lines:      s.lines,
		Covered:    s.covered,
		Finished:   s.finished,
	}
}

// SetLastLine records a line that arrived at now. When the line moves the
// state out of idle, the clock is woken.
func (s *State) SetLastLine(now time.Time) {
	s.mu.Lock()
	wasIdle := s.covered == s.lines
	s.lines++
	if now.After(s.lastLine) {
		s.lastLine = now
	}
	s.mu.Unlock()

	if wasIdle {
		s.notify()
	}
}

// SetLastSpacer records a spacer written at now, covering every line
// recorded so far.
func (s *State) SetLastSpacer(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLastSpacerLocked(now)
}

// CommitSpacer records a spacer at now only if no line has arrived since
// the clock observed seen lines. It returns false when the spacer is stale.
func (s *State) CommitSpacer(seen uint64, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lines != seen {
		return false
	}
	s.setLastSpacerLocked(now)
	return true
}

func (s *State) setLastSpacerLocked(now time.Time) {
	if now.After(s.lastSpacer) {
		s.lastSpacer = now
	}
	s.covered = s.lines
}

// MarkFinished records the end of input and wakes the clock.
// Calling it more than once is harmless.
func (s *State) MarkFinished() {
	s.mu.Lock()
	s.finished = true
	s.mu.Unlock()

	s.notify()
}

// Wake returns the channel that receives a value when the clock should
// re-examine the state early. Signals coalesce: at most one is pending.
func (s *State) Wake() <-chan struct{} {
	return s.wake
}

func (s *State) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
