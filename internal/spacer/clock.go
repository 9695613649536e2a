package spacer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/spacer/internal/clock"
	"github.com/mrz1836/spacer/internal/constants"
	spacererrors "github.com/mrz1836/spacer/internal/errors"
)

// Phase is the state of the spacer clock at one wakeup.
type Phase int

const (
	// PhaseIdle means a spacer already follows the last line.
	PhaseIdle Phase = iota
	// PhaseCounting means a line arrived and the threshold has not elapsed.
	PhaseCounting
	// PhaseDue means the threshold has elapsed and a spacer must be written.
	PhaseDue
)

// String returns the lowercase phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCounting:
		return "counting"
	case PhaseDue:
		return "due"
	default:
		return "unknown"
	}
}

// Decide classifies snap at now and returns how long the clock should
// wait before looking again.
func Decide(snap Snapshot, now time.Time, after time.Duration) (Phase, time.Duration) {
	if snap.Idle() {
		return PhaseIdle, after
	}

	elapsed := now.Sub(snap.LastLine)
	if elapsed >= after {
		return PhaseDue, after
	}
	return PhaseCounting, max(constants.MinCountingSleep, after-elapsed)
}

// Clock decides when a spacer is due and writes it.
type Clock struct {
	after    time.Duration
	state    *State
	sink     *Sink
	renderer *Renderer
	clk      clock.Clock
	logger   zerolog.Logger

	wakeups atomic.Int64
	spacers atomic.Int64
}

// NewClock creates a Clock. A nil clk uses the system clock.
func NewClock(after time.Duration, state *State, sink *Sink, renderer *Renderer, clk clock.Clock, logger zerolog.Logger) *Clock {
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Clock{
		after:    after,
		state:    state,
		sink:     sink,
		renderer: renderer,
		clk:      clk,
		logger:   logger.With().Str("component", "clock").Logger(),
	}
}

// Wakeups returns the number of loop iterations so far.
func (c *Clock) Wakeups() int64 {
	return c.wakeups.Load()
}

// Spacers returns the number of spacers written so far.
func (c *Clock) Spacers() int64 {
	return c.spacers.Load()
}

// Run loops until the input is finished or ctx is done. It returns nil
// after the input finished, ctx.Err() on cancellation, and an
// ErrOutputWrite error when a spacer cannot be written.
func (c *Clock) Run(ctx context.Context) error {
	for {
		c.wakeups.Add(1)

		snap := c.state.Snapshot()
		if snap.Finished {
			c.logger.Debug().Msg("input finished, clock exiting")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		now := c.clk.Now()
		phase, wait := Decide(snap, now, c.after)
		c.logger.Debug().
			Stringer("phase", phase).
			Dur("wait", wait).
			Msg("clock wakeup")

		if phase == PhaseDue {
			if err := c.emit(ctx, now, snap); err != nil {
				return err
			}
		}

		select {
		case <-c.clk.After(wait):
		case <-c.state.Wake():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// emit renders a spacer for snap and writes it unless a line arrived in
// the meantime.
func (c *Clock) emit(ctx context.Context, now time.Time, snap Snapshot) error {
	block := c.renderer.Render(ctx, now, snap.LastSpacer)

	written, err := c.sink.WriteIf(func() bool {
		return c.state.CommitSpacer(snap.Lines, c.clk.Now())
	}, block)
	if err != nil {
		return fmt.Errorf("%w: spacer: %w", spacererrors.ErrOutputWrite, err)
	}

	if !written {
		c.logger.Debug().Msg("line arrived before spacer was written, spacer dropped")
		return nil
	}

	c.spacers.Add(1)
	c.logger.Debug().Int("bytes", len(block)).Msg("spacer written")
	return nil
}
