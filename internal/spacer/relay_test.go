package spacer

import (
	"context"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/spacer/internal/clock"
	spacererrors "github.com/mrz1836/spacer/internal/errors"
)

func newTestRelay(in io.Reader, out io.Writer) (*Relay, *State) {
	fake := clock.NewFake(testStart)
	state := NewState(testStart)
	return NewRelay(in, state, NewSink(out), fake, zerolog.Nop()), state
}

func TestRelay_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		expected      string
		expectedLines int64
	}{
		{name: "empty input", input: "", expected: "", expectedLines: 0},
		{name: "single line", input: "foo\n", expected: "foo\n", expectedLines: 1},
		{name: "multiple lines", input: "foo\nbar\nbaz\n", expected: "foo\nbar\nbaz\n", expectedLines: 3},
		{name: "blank lines kept", input: "\n\nfoo\n", expected: "\n\nfoo\n", expectedLines: 3},
		{name: "unterminated fragment", input: "foo\ntail", expected: "foo\ntail\n", expectedLines: 2},
		{name: "carriage returns kept", input: "a\r\nb\r\n", expected: "a\r\nb\r\n", expectedLines: 2},
		{name: "utf-8 content", input: "héllo ━━\n", expected: "héllo ━━\n", expectedLines: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			relay, state := newTestRelay(strings.NewReader(tc.input), &out)

			require.NoError(t, relay.Run(context.Background()))
			assert.Equal(t, tc.expected, out.String())
			assert.Equal(t, tc.expectedLines, relay.Lines())

			snap := state.Snapshot()
			assert.True(t, snap.Finished)
			assert.Equal(t, uint64(tc.expectedLines), snap.Lines)
		})
	}
}

func TestRelay_PartialReadsFormOneLine(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	relay, state := newTestRelay(iotest.OneByteReader(strings.NewReader("foobarbaz\n")), &out)

	require.NoError(t, relay.Run(context.Background()))
	assert.Equal(t, "foobarbaz\n", out.String())
	assert.Equal(t, uint64(1), state.Snapshot().Lines)
}

// recordingWriter captures the state snapshot at the moment of each write.
type recordingWriter struct {
	state *State
	seen  []uint64
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.seen = append(w.seen, w.state.Snapshot().Lines)
	return len(p), nil
}

func TestRelay_RecordsLineBeforeWriting(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(testStart)
	state := NewState(testStart)
	w := &recordingWriter{state: state}
	relay := NewRelay(strings.NewReader("a\nb\nc\n"), state, NewSink(w), fake, zerolog.Nop())

	require.NoError(t, relay.Run(context.Background()))
	assert.Equal(t, []uint64{1, 2, 3}, w.seen)
}

func TestRelay_ReadError(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	in := io.MultiReader(strings.NewReader("ok\n"), iotest.ErrReader(errBoom))
	relay, state := newTestRelay(in, &out)

	err := relay.Run(context.Background())
	require.ErrorIs(t, err, spacererrors.ErrInputRead)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, "ok\n", out.String())
	assert.True(t, state.Finished())
}

func TestRelay_WriteError(t *testing.T) {
	t.Parallel()

	relay, state := newTestRelay(strings.NewReader("foo\n"), failingWriter{})

	err := relay.Run(context.Background())
	require.ErrorIs(t, err, spacererrors.ErrOutputWrite)
	assert.True(t, state.Finished())
}

func TestRelay_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	relay, state := newTestRelay(strings.NewReader("foo\n"), &out)

	require.ErrorIs(t, relay.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
	assert.True(t, state.Finished())
}

func TestRelay_UsesClockForArrival(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(testStart)
	fake.Advance(5 * time.Second)
	state := NewState(testStart)

	var out strings.Builder
	relay := NewRelay(strings.NewReader("foo\n"), state, NewSink(&out), fake, zerolog.Nop())
	require.NoError(t, relay.Run(context.Background()))

	assert.Equal(t, testStart.Add(5*time.Second), state.LastLine())
}
