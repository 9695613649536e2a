package signal

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_SignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handle(syscall.SIGINT)

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.Equal(t, syscall.SIGINT, h.Signal())

	select {
	case <-h.Received():
	default:
		t.Fatal("received channel should be closed after a signal")
	}
}

func TestHandler_FirstSignalWins(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handle(syscall.SIGTERM)
	h.handle(syscall.SIGINT)

	assert.Equal(t, syscall.SIGTERM, h.Signal())
}

func TestHandler_NoSignalInitially(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	require.NoError(t, h.Context().Err())
	assert.Nil(t, h.Signal())

	select {
	case <-h.Received():
		t.Fatal("received channel should be open initially")
	default:
	}
}

func TestHandler_StopIsIdempotent(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()

	require.Error(t, h.Context().Err())
	assert.Nil(t, h.Signal(), "Stop is not a signal")
}

func TestHandler_ParentCanceled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	require.Error(t, h.Context().Err())
	assert.Nil(t, h.Signal())
}

func TestHandler_RepeatedSignalsDoNotBlock(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.sigChan <- syscall.SIGINT
	require.Eventually(t, func() bool {
		return h.Signal() != nil
	}, time.Second, 5*time.Millisecond)

	// listen has returned after cancellation; the buffered slot still
	// accepts one more signal without blocking.
	h.sigChan <- syscall.SIGINT

	assert.Equal(t, syscall.SIGINT, h.Signal())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 130, ExitCode(syscall.SIGINT))
	assert.Equal(t, 143, ExitCode(syscall.SIGTERM))
	assert.Equal(t, 1, ExitCode(fakeSignal{}))
}

type fakeSignal struct{}

func (fakeSignal) String() string { return "fake" }
func (fakeSignal) Signal() {}
