package spacer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mrz1836/spacer/internal/clock"
	spacererrors "github.com/mrz1836/spacer/internal/errors"
)

// Relay copies input lines to the sink and records their arrival.
type Relay struct {
	in     *bufio.Reader
	state  *State
	sink   *Sink
	clk    clock.Clock
	logger zerolog.Logger

	lines atomic.Int64
}

// NewRelay creates a Relay reading from in. A nil clk uses the system clock.
func NewRelay(in io.Reader, state *State, sink *Sink, clk clock.Clock, logger zerolog.Logger) *Relay {
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Relay{
		in:     bufio.NewReader(in),
		state:  state,
		sink:   sink,
		clk:    clk,
		logger: logger.With().Str("component", "relay").Logger(),
	}
}

// Lines returns the number of lines relayed so far.
func (r *Relay) Lines() int64 {
	return r.lines.Load()
}

// Run relays lines until end of input, a read or write error, or ctx is
// done. The state is marked finished on every return path.
//
// Each line is recorded in the state before it is written, so the clock
// never writes a spacer for an idle period the line has already ended.
// A final fragment without a newline is written with one appended.
func (r *Relay) Run(ctx context.Context) error {
	defer r.state.MarkFinished()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := r.in.ReadBytes('\n')
		if len(line) > 0 {
			if err := r.relay(line); err != nil {
				return err
			}
		}

		if errors.Is(readErr, io.EOF) {
			r.logger.Debug().Int64("lines", r.Lines()).Msg("end of input")
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("%w: %w", spacererrors.ErrInputRead, readErr)
		}
	}
}

func (r *Relay) relay(line []byte) error {
	r.state.SetLastLine(r.clk.Now())

	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}
	if _, err := r.sink.Write(line); err != nil {
		return fmt.Errorf("%w: line: %w", spacererrors.ErrOutputWrite, err)
	}

	r.lines.Add(1)
	return nil
}
