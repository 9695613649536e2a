package spacer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/spacer/internal/clock"
	"github.com/mrz1836/spacer/internal/tui"
)

// Options holds the collaborators of Run. Zero values select defaults.
type Options struct {
	// Clock is the time source. Default: the system clock.
	Clock clock.Clock

	// Palette styles the spacer line. Default: no color.
	Palette *tui.Palette

	// Width reports the terminal width. Default: 80 columns.
	Width tui.WidthFunc

	// Stderr receives user-facing warnings. Default: os.Stderr.
	Stderr io.Writer
}

// Stats summarizes a finished run.
type Stats struct {
	Lines   int64
	Spacers int64
	Wakeups int64
}

// Run relays in to out until end of input, inserting spacers after idle
// periods of cfg.After.
//
// The relay and the clock run concurrently. Run returns when the input
// ends and the clock has stopped, when either fails, or when ctx is done.
// On cancellation Run returns ctx.Err() without waiting for a blocked read
// to finish; the reading goroutine exits with the process.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config, opts Options) (Stats, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "spacer").Logger()

	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Palette == nil {
		opts.Palette = tui.NewPalette(out, tui.ColorNever)
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	loc, err := LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Debug().Err(err).Msg("falling back to local time")
		_, _ = fmt.Fprintf(opts.Stderr, "Warning: unknown timezone %q, using local time\n", cfg.Timezone)
	}

	start := opts.Clock.Now()
	state := NewState(start)
	sink := NewSink(out)
	renderer := NewRenderer(cfg, loc, opts.Palette, opts.Width)
	clk := NewClock(cfg.After, state, sink, renderer, opts.Clock, logger)
	relay := NewRelay(in, state, sink, opts.Clock, logger)

	logger.Debug().
		Dur("after", cfg.After).
		Str("dash", string(cfg.Dash)).
		Int("padding", cfg.Padding).
		Int("width", cfg.Width).
		Bool("right", cfg.Right).
		Str("timezone", cfg.Timezone).
		Str("color", opts.Palette.Mode().String()).
		Msg("spacer started")

	g, gctx := errgroup.WithContext(ctx)

	// The relay runs outside the group: a blocked read cannot observe
	// cancellation, and the group must still return on ctx.Done.
	relayDone := make(chan error, 1)
	go func() {
		relayDone <- relay.Run(gctx)
	}()

	g.Go(func() error {
		select {
		case err := <-relayDone:
			return err
		case <-gctx.Done():
			return gctx.Err()
		}
	})
	g.Go(func() error {
		return clk.Run(gctx)
	})

	err = g.Wait()
	stats := Stats{
		Lines:   relay.Lines(),
		Spacers: clk.Spacers(),
		Wakeups: clk.Wakeups(),
	}

	logger.Debug().
		Int64("lines", stats.Lines).
		Int64("spacers", stats.Spacers).
		Int64("wakeups", stats.Wakeups).
		Dur("duration", opts.Clock.Now().Sub(start)).
		Msg("spacer finished")

	return stats, err
}
