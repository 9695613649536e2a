package spacer

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Write(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	sink := NewSink(&out)

	n, err := sink.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "hello\n", out.String())
}

func TestSink_WriteIf(t *testing.T) {
	t.Parallel()

	t.Run("writes when commit succeeds", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		written, err := NewSink(&out).WriteIf(func() bool { return true }, []byte("---\n"))
		require.NoError(t, err)
		assert.True(t, written)
		assert.Equal(t, "---\n", out.String())
	})

	t.Run("skips when commit fails", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		written, err := NewSink(&out).WriteIf(func() bool { return false }, []byte("---\n"))
		require.NoError(t, err)
		assert.False(t, written)
		assert.Empty(t, out.String())
	})

	t.Run("returns write error", func(t *testing.T) {
		t.Parallel()

		written, err := NewSink(failingWriter{}).WriteIf(func() bool { return true }, []byte("---\n"))
		require.ErrorIs(t, err, errBoom)
		assert.False(t, written)
	})
}

func TestSink_WriteIfStaleSpacer(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	sink := NewSink(&out)
	state := NewState(testStart)

	state.SetLastLine(testStart.Add(1))
	seen := state.Snapshot().Lines

	// A line is recorded between the due decision and the write.
	state.SetLastLine(testStart.Add(2))

	written, err := sink.WriteIf(func() bool {
		return state.CommitSpacer(seen, testStart.Add(3))
	}, []byte("spacer\n"))
	require.NoError(t, err)
	assert.False(t, written)
	assert.Empty(t, out.String())
}

func TestSink_NoInterleaving(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	sink := NewSink(out)
	lines := []string{"aaaaaaaaaaaaaaaa\n", "bbbbbbbbbbbbbbbb\n", "cccccccccccccccc\n"}

	var wg sync.WaitGroup
	for _, line := range lines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, err := sink.Write([]byte(line))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, got, 300)
	for _, line := range got {
		assert.Contains(t, lines, line+"\n")
	}
}
