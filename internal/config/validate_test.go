package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	spacererrors "github.com/mrz1836/spacer/internal/errors"
)

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), spacererrors.ErrConfigNil)
}

func TestValidate_DefaultConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "minimum after",
			mutate: func(c *Config) { c.After = time.Millisecond },
		},
		{
			name:   "ascii dash",
			mutate: func(c *Config) { c.Dash = "-" },
		},
		{
			name:   "wide dash",
			mutate: func(c *Config) { c.Dash = "＝" },
		},
		{
			name:   "maximum padding",
			mutate: func(c *Config) { c.Padding = 100 },
		},
		{
			name:   "fixed width with timezone",
			mutate: func(c *Config) { c.Width = 20; c.Timezone = "Europe/London" },
		},
		{
			name:   "unknown timezone is not a validation error",
			mutate: func(c *Config) { c.Timezone = "Mars/Olympus_Mons" },
		},
		{
			name:    "zero after",
			mutate:  func(c *Config) { c.After = 0 },
			wantErr: spacererrors.ErrValueOutOfRange,
		},
		{
			name:    "negative after",
			mutate:  func(c *Config) { c.After = -time.Second },
			wantErr: spacererrors.ErrValueOutOfRange,
		},
		{
			name:    "empty dash",
			mutate:  func(c *Config) { c.Dash = "" },
			wantErr: spacererrors.ErrInvalidDash,
		},
		{
			name:    "multi character dash",
			mutate:  func(c *Config) { c.Dash = "=-" },
			wantErr: spacererrors.ErrInvalidDash,
		},
		{
			name:    "negative padding",
			mutate:  func(c *Config) { c.Padding = -1 },
			wantErr: spacererrors.ErrValueOutOfRange,
		},
		{
			name:    "padding too large",
			mutate:  func(c *Config) { c.Padding = 101 },
			wantErr: spacererrors.ErrValueOutOfRange,
		},
		{
			name:    "negative width",
			mutate:  func(c *Config) { c.Width = -5 },
			wantErr: spacererrors.ErrValueOutOfRange,
		},
		{
			name:    "unknown color mode",
			mutate:  func(c *Config) { c.Color = "sometimes" },
			wantErr: spacererrors.ErrValueOutOfRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
