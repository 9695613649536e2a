// Package signal turns SIGINT and SIGTERM into context cancellation so a
// running spacer pipeline can stop while its input read is still blocked.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ExitCodeBase is added to a signal number to form the conventional shell
// exit status of a process stopped by that signal (SIGINT -> 130).
const ExitCodeBase = 128

// Handler cancels its context on the first SIGINT or SIGTERM and remembers
// which signal arrived.
type Handler struct {
	ctx      context.Context //nolint:containedctx // intentional: handler manages context lifecycle
	cancel   context.CancelFunc
	received chan struct{}
	done     chan struct{} // signals listen() to exit cleanly
	once     sync.Once
	stopOnce sync.Once
	sigChan  chan os.Signal

	mu  sync.Mutex
	sig os.Signal
}

// NewHandler creates a handler whose context is canceled by SIGINT, SIGTERM,
// or cancellation of parent.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := run(h.Context())
//	if sig := h.Signal(); sig != nil {
//	    os.Exit(signal.ExitCode(sig))
//	}
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:      ctx,
		cancel:   cancel,
		received: make(chan struct{}),
		done:     make(chan struct{}),
		// Buffer of 1 so signal.Notify never drops the first signal.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the context canceled on the first signal.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Received returns a channel closed when the first signal arrives.
func (h *Handler) Received() <-chan struct{} {
	return h.received
}

// Signal returns the first signal received, or nil.
func (h *Handler) Signal() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sig
}

// Stop stops listening for signals and cancels the context.
// It is safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// handle records sig and cancels the context. Only the first call has
// any effect.
func (h *Handler) handle(sig os.Signal) {
	h.once.Do(func() {
		h.mu.Lock()
		h.sig = sig
		h.mu.Unlock()

		h.cancel()
		close(h.received)
	})
}

// listen handles signals until Stop is called or the context ends.
// Later signals are drained and ignored.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handle(sig)
		}
	}
}

// ExitCode returns the shell exit status for a process stopped by sig.
// Signals without a number map to 1.
func ExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return ExitCodeBase + int(s)
	}
	return 1
}
