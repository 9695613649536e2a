package spacer

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/mrz1836/spacer/internal/constants"
	"github.com/mrz1836/spacer/internal/tui"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	zoneTimeLayout = "15:04:05 MST"
)

// Renderer formats spacer blocks.
type Renderer struct {
	cfg     Config
	loc     *time.Location
	palette *tui.Palette
	width   tui.WidthFunc
}

// NewRenderer creates a Renderer.
//
// loc is the zone for the timestamp; nil prints local time without an
// abbreviation. width is queried on every render unless cfg.Width is set;
// a nil width falls back to the default width.
func NewRenderer(cfg Config, loc *time.Location, palette *tui.Palette, width tui.WidthFunc) *Renderer {
	if cfg.Width > 0 {
		width = tui.FixedWidth(cfg.Width)
	}
	if width == nil {
		width = tui.FixedWidth(tui.DefaultWidth)
	}

	return &Renderer{
		cfg:     cfg,
		loc:     loc,
		palette: palette,
		width:   width,
	}
}

type segment struct {
	text  string
	style lipgloss.Style
}

// Render returns one spacer block for the instant now: Padding blank lines,
// the spacer line, and Padding blank lines. prevSpacer is the time of the
// previous spacer; the elapsed delta is printed when it is more than
// 100ms ago.
func (r *Renderer) Render(ctx context.Context, now, prevSpacer time.Time) []byte {
	segments := r.prefix(now, prevSpacer)

	var prefix strings.Builder
	prefixWidth := 0
	for _, seg := range segments {
		prefix.WriteString(seg.style.Render(seg.text))
		prefix.WriteByte(' ')
		prefixWidth += runewidth.StringWidth(seg.text) + 1
	}

	fill := r.fill(r.targetWidth(ctx) - prefixWidth)

	var b strings.Builder
	padding := strings.Repeat("\n", r.cfg.Padding)
	b.WriteString(padding)
	if r.cfg.Right {
		b.WriteByte('\r')
		b.WriteString(fill)
		b.WriteByte(' ')
		b.WriteString(strings.TrimSuffix(prefix.String(), " "))
	} else {
		b.WriteString(prefix.String())
		b.WriteString(fill)
	}
	b.WriteByte('\n')
	b.WriteString(padding)

	return []byte(b.String())
}

func (r *Renderer) prefix(now, prevSpacer time.Time) []segment {
	stamp := now
	clockLayout := timeLayout
	if r.loc != nil {
		stamp = now.In(r.loc)
		clockLayout = zoneTimeLayout
	}

	segments := []segment{
		{text: stamp.Format(dateLayout), style: r.palette.Date},
		{text: stamp.Format(clockLayout), style: r.palette.Time},
	}

	if since := now.Sub(prevSpacer); since > constants.ElapsedDisplayThreshold {
		segments = append(segments, segment{text: tui.FormatElapsed(since), style: r.palette.Elapsed})
	}
	return segments
}

// fill returns the dash run for width columns.
func (r *Renderer) fill(width int) string {
	dashWidth := runewidth.RuneWidth(r.cfg.Dash)
	if dashWidth < 1 {
		dashWidth = 1
	}

	count := width / dashWidth
	if count <= 0 {
		return ""
	}
	return r.palette.Fill.Render(strings.Repeat(string(r.cfg.Dash), count))
}

func (r *Renderer) targetWidth(ctx context.Context) int {
	width, err := r.width()
	if err != nil {
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Int("fallback_width", tui.DefaultWidth).
			Msg("terminal width unavailable")
		return tui.DefaultWidth
	}
	return width
}
