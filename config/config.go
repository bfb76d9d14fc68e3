// Package config loads benchmark settings from a JSON file that may carry
// comments and trailing commas.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/goupdate/bigomap"
	"github.com/goupdate/bigomap/bench"
	"github.com/goupdate/bigomap/complexity"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Sizes        []int    `json:"sizes"`
	WorkloadSize int      `json:"workload_size"`
	KeyLength    int      `json:"key_length"`
	Seed         int64    `json:"seed"`
	Capacity     int      `json:"capacity"`
	Rounds       int      `json:"rounds"`
	Kinds        []string `json:"kinds"`

	Listen   string `json:"listen"`
	LogFile  string `json:"log_file"`
	LogLevel int    `json:"log_level"` //0 = OFF, 1=CALLS, 2=CALLS+DATA, 3=+RESPONSE
}

func Default() *Config {
	return &Config{
		Sizes:        append([]int(nil), complexity.DefaultSizes...),
		WorkloadSize: bench.DefaultWorkloadSize,
		KeyLength:    bench.DefaultKeyLength,
		Capacity:     bigomap.DefaultCapacity,
		Rounds:       1,
		Kinds:        []string{"linear", "sorted", "hashed"},
		Listen:       ":8080",
		LogFile:      "./logs/bigomap.log",
		LogLevel:     1,
	}
}

// Load reads path from fs over the defaults. A missing file is not an error
// when allowMissing is set; the defaults are returned instead.
func Load(fs afero.Fs, path string, allowMissing bool) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func (c *Config) Save(fs afero.Fs, path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return errors.Wrapf(afero.WriteFile(fs, path, data, 0o644), "write config %s", path)
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalid, format, args...)
}

func (c *Config) Validate() error {
	if len(c.Sizes) < 2 {
		return invalid("need at least two sizes, got %d", len(c.Sizes))
	}
	for i, s := range c.Sizes {
		if s < 0 {
			return invalid("size %d is negative", s)
		}
		if i > 0 && s <= c.Sizes[i-1] {
			return invalid("sizes must be ascending at %d", s)
		}
	}
	if last := c.Sizes[len(c.Sizes)-1]; last > c.WorkloadSize {
		return invalid("workload_size %d is smaller than size %d", c.WorkloadSize, last)
	}
	if c.KeyLength < 1 {
		return invalid("key_length %d", c.KeyLength)
	}
	if c.Capacity < 1 {
		return invalid("capacity %d", c.Capacity)
	}
	if c.Rounds < 1 {
		return invalid("rounds %d", c.Rounds)
	}
	if _, err := c.ParsedKinds(); err != nil {
		return invalid("%v", err)
	}
	if c.LogLevel < 0 || c.LogLevel > 3 {
		return invalid("log_level %d", c.LogLevel)
	}
	return nil
}

// ParsedKinds returns the configured kinds, or every kind when none are set.
func (c *Config) ParsedKinds() ([]bigomap.Kind, error) {
	if len(c.Kinds) == 0 {
		return append([]bigomap.Kind(nil), bigomap.Kinds...), nil
	}
	kinds := make([]bigomap.Kind, 0, len(c.Kinds))
	for _, name := range c.Kinds {
		k, err := bigomap.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (c *Config) Bench() bench.Options {
	return bench.Options{
		Sizes:        append([]int(nil), c.Sizes...),
		WorkloadSize: c.WorkloadSize,
		KeyLength:    c.KeyLength,
		Seed:         c.Seed,
		Capacity:     c.Capacity,
		Rounds:       c.Rounds,
	}
}
