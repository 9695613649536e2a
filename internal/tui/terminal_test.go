package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/spacer/internal/errors"
)

func TestTerminalWidth_NotATerminal(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	width, err := TerminalWidth(f)()
	require.ErrorIs(t, err, errors.ErrTerminalSize)
	assert.Zero(t, width)
	assert.False(t, IsTerminal(f))
}

func TestFixedWidth(t *testing.T) {
	t.Parallel()

	width, err := FixedWidth(42)()
	require.NoError(t, err)
	assert.Equal(t, 42, width)
}
