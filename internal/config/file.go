package config

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/spacer/internal/errors"
)

// View is the serialized shape of Config used by config files and
// 'spacer config show'. Durations are written as strings ("1s") so the
// output stays readable and round-trips through Load.
type View struct {
	After    string  `yaml:"after" json:"after"`
	Dash     string  `yaml:"dash" json:"dash"`
	Padding  int     `yaml:"padding" json:"padding"`
	Width    int     `yaml:"width" json:"width"`
	Right    bool    `yaml:"right" json:"right"`
	Timezone string  `yaml:"timezone" json:"timezone"`
	Color    string  `yaml:"color" json:"color"`
	Log      LogView `yaml:"log" json:"log"`
}

// LogView is the serialized shape of LogConfig.
type LogView struct {
	File string `yaml:"file" json:"file"`
}

// NewView converts cfg to its serialized shape.
func NewView(cfg *Config) View {
	return View{
		After:    cfg.After.String(),
		Dash:     cfg.Dash,
		Padding:  cfg.Padding,
		Width:    cfg.Width,
		Right:    cfg.Right,
		Timezone: cfg.Timezone,
		Color:    cfg.Color,
		Log:      LogView{File: cfg.Log.File},
	}
}

// MarshalYAML renders cfg as a YAML document.
func MarshalYAML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.ErrConfigNil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(NewView(cfg)); err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return buf.Bytes(), nil
}

// WriteFile writes cfg to path, creating parent directories as needed.
// An existing file is only replaced when force is true.
func WriteFile(path string, cfg *Config, force bool) error {
	if !force && fileExists(path) {
		return errors.Wrapf(errors.ErrConfigExists, "%s", path)
	}

	data, err := MarshalYAML(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
