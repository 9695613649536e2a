package config

import (
	"context"
	stderrors "errors"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/spacer/internal/constants"
	"github.com/mrz1836/spacer/internal/errors"
)

// NewViper creates a Viper instance with spacer defaults and SPACER_*
// environment variable support. The CLI binds its flags into the returned
// instance before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v, unmarshals the merged settings, and
// validates them.
//
// If path is empty the default config file is read when it exists; a
// missing default file is not an error. An explicit path must exist.
// A nil v is replaced by NewViper().
func Load(ctx context.Context, v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("config_file", v.ConfigFileUsed()).
		Dur("after", cfg.After).
		Str("dash", cfg.Dash).
		Int("padding", cfg.Padding).
		Int("width", cfg.Width).
		Bool("right", cfg.Right).
		Str("timezone", cfg.Timezone).
		Str("color", cfg.Color).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// readConfigFile loads the explicit or default config file into v.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", path)
		}
		return nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil || !fileExists(defaultPath) {
		// No home directory or no config file: defaults, env, and flags only
		return nil
	}

	v.SetConfigFile(defaultPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// setDefaults configures all default values on the Viper instance.
// These defaults match DefaultConfig(). Keys must match the mapstructure
// tags exactly, and every key needs a default so environment variables
// are picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("after", defaults.After.String())
	v.SetDefault("dash", defaults.Dash)
	v.SetDefault("padding", defaults.Padding)
	v.SetDefault("width", defaults.Width)
	v.SetDefault("right", defaults.Right)
	v.SetDefault("timezone", defaults.Timezone)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("log.file", defaults.Log.File)
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			secondsToDurationHookFunc(),
		),
	)
}

// secondsToDurationHookFunc decodes time.Duration fields from float or
// integer seconds (the --after flag and plain YAML numbers) as well as
// from strings holding either seconds ("1.5") or a Go duration ("1500ms").
func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType {
			return data, nil
		}

		switch val := data.(type) {
		case time.Duration:
			return val, nil
		case float64:
			return secondsToDuration(val), nil
		case float32:
			return secondsToDuration(float64(val)), nil
		case int:
			return time.Duration(val) * time.Second, nil
		case int64:
			return time.Duration(val) * time.Second, nil
		case string:
			return parseDuration(val)
		default:
			return data, nil
		}
	}
}

// parseDuration accepts seconds ("0.5") or a Go duration string ("500ms").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return secondsToDuration(secs), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidDuration, "%q", s)
	}
	return d, nil
}

// secondsToDuration converts fractional seconds to a Duration.
func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
