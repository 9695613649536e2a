package spacer

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/spacer/internal/clock"
	spacererrors "github.com/mrz1836/spacer/internal/errors"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	after := 100 * time.Millisecond
	lineAt := testStart.Add(time.Second)
	counting := Snapshot{LastLine: lineAt, LastSpacer: testStart, Lines: 1}

	tests := []struct {
		name         string
		snap         Snapshot
		now          time.Time
		expectPhase  Phase
		expectedWait time.Duration
	}{
		{
			name:         "idle at start",
			snap:         Snapshot{LastLine: testStart, LastSpacer: testStart},
			now:          testStart.Add(time.Hour),
			expectPhase:  PhaseIdle,
			expectedWait: after,
		},
		{
			name:         "idle after spacer",
			snap:         Snapshot{LastLine: lineAt, LastSpacer: lineAt.Add(after), Lines: 3, Covered: 3},
			now:          lineAt.Add(time.Hour),
			expectPhase:  PhaseIdle,
			expectedWait: after,
		},
		{
			name:         "counting right after a line",
			snap:         counting,
			now:          lineAt,
			expectPhase:  PhaseCounting,
			expectedWait: after,
		},
		{
			name:         "counting waits out the remainder",
			snap:         counting,
			now:          lineAt.Add(30 * time.Millisecond),
			expectPhase:  PhaseCounting,
			expectedWait: 70 * time.Millisecond,
		},
		{
			name:         "counting never waits below the minimum",
			snap:         counting,
			now:          lineAt.Add(98 * time.Millisecond),
			expectPhase:  PhaseCounting,
			expectedWait: 10 * time.Millisecond,
		},
		{
			name:         "due at the threshold",
			snap:         counting,
			now:          lineAt.Add(after),
			expectPhase:  PhaseDue,
			expectedWait: after,
		},
		{
			name:         "due long after the threshold",
			snap:         counting,
			now:          lineAt.Add(time.Minute),
			expectPhase:  PhaseDue,
			expectedWait: after,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			phase, wait := Decide(tc.snap, tc.now, after)
			assert.Equal(t, tc.expectPhase, phase)
			assert.Equal(t, tc.expectedWait, wait)
		})
	}
}

func TestPhase_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "counting", PhaseCounting.String())
	assert.Equal(t, "due", PhaseDue.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

type clockHarness struct {
	fake   *clock.Fake
	state  *State
	out    *syncBuffer
	clock  *Clock
	cancel context.CancelFunc
	done   chan error
}

// startClock runs a Clock against a fake clock starting at testStart.
func startClock(t *testing.T, cfg Config, out io.Writer) *clockHarness {
	t.Helper()

	buf := &syncBuffer{}
	if out == nil {
		out = buf
	}

	fake := clock.NewFake(testStart)
	state := NewState(testStart)
	renderer := NewRenderer(cfg, nil, plainPalette(), nil)
	c := NewClock(cfg.After, state, NewSink(out), renderer, fake, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := &clockHarness{fake: fake, state: state, out: buf, clock: c, cancel: cancel, done: make(chan error, 1)}
	go func() {
		h.done <- c.Run(ctx)
	}()
	return h
}

func (h *clockHarness) wait(t *testing.T) error {
	t.Helper()

	select {
	case err := <-h.done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("clock did not stop")
		return nil
	}
}

func TestClock_WritesOneSpacerPerIdlePeriod(t *testing.T) {
	t.Parallel()

	h := startClock(t, Config{After: 100 * time.Millisecond, Dash: '-', Width: 40}, nil)

	// Idle: one wait of the threshold.
	h.fake.WaitForWaiters(1)

	h.fake.Advance(40 * time.Millisecond)
	h.state.SetLastLine(h.fake.Now())

	// The line wakes the clock, which starts counting.
	h.fake.WaitForWaiters(2)
	assert.Empty(t, h.out.String())

	h.fake.Advance(160 * time.Millisecond)

	// The spacer is written before the next wait is registered.
	h.fake.WaitForWaiters(1)
	assert.Equal(t, "2024-01-02 03:04:05 0.2s "+"---------------\n", h.out.String())
	assert.Equal(t, int64(1), h.clock.Spacers())
	assert.True(t, h.state.Snapshot().Idle())

	// No new line, no second spacer.
	h.fake.Advance(100 * time.Millisecond)
	h.fake.WaitForWaiters(1)
	assert.Equal(t, int64(1), h.clock.Spacers())

	h.state.MarkFinished()
	require.NoError(t, h.wait(t))
	assert.Equal(t, int64(5), h.clock.Wakeups())
}

func TestClock_NoSpacerBeforeThreshold(t *testing.T) {
	t.Parallel()

	h := startClock(t, Config{After: 100 * time.Millisecond, Dash: '-', Width: 40}, nil)
	h.fake.WaitForWaiters(1)

	h.state.SetLastLine(h.fake.Now())
	h.fake.WaitForWaiters(2)

	// Another line before the threshold restarts the count.
	h.fake.Advance(80 * time.Millisecond)
	h.state.SetLastLine(h.fake.Now())
	h.fake.Advance(30 * time.Millisecond)

	// Counting again from the second line.
	h.fake.WaitForWaiters(1)
	assert.Empty(t, h.out.String())

	h.fake.Advance(70 * time.Millisecond)
	h.fake.WaitForWaiters(1)
	assert.Contains(t, h.out.String(), "---")
	assert.Equal(t, int64(1), h.clock.Spacers())

	h.state.MarkFinished()
	require.NoError(t, h.wait(t))
}

func TestClock_ExitsWhenFinishedWhileCounting(t *testing.T) {
	t.Parallel()

	h := startClock(t, Config{After: time.Hour, Dash: '-', Width: 40}, nil)
	h.fake.WaitForWaiters(1)

	h.state.SetLastLine(h.fake.Now())
	h.fake.WaitForWaiters(2)

	h.state.MarkFinished()
	require.NoError(t, h.wait(t))
	assert.Empty(t, h.out.String())
}

func TestClock_ContextCanceled(t *testing.T) {
	t.Parallel()

	h := startClock(t, Config{After: time.Hour, Dash: '-', Width: 40}, nil)
	h.fake.WaitForWaiters(1)

	h.cancel()
	require.ErrorIs(t, h.wait(t), context.Canceled)
}

func TestClock_WriteError(t *testing.T) {
	t.Parallel()

	h := startClock(t, Config{After: 100 * time.Millisecond, Dash: '-', Width: 40}, failingWriter{})
	h.fake.WaitForWaiters(1)

	h.fake.Advance(time.Millisecond)
	h.state.SetLastLine(h.fake.Now())
	h.fake.WaitForWaiters(2)
	h.fake.Advance(100 * time.Millisecond)

	err := h.wait(t)
	require.ErrorIs(t, err, spacererrors.ErrOutputWrite)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, int64(0), h.clock.Spacers())
}
