// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package config loads the codec profile shared by the command line tools.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/hhorai/lterrc/encoding/per"
)

type Config struct {
	Strict          bool
	MaxMessageBytes int

	LogLevel zerolog.Level
	NoColor  bool

	MetricsEnabled   bool
	MetricsNamespace string
}

type fileConfig struct {
	Codec struct {
		Strict          bool `toml:"strict"`
		MaxMessageBytes int  `toml:"max_message_bytes"`
	} `toml:"codec"`
	Log struct {
		Level   string `toml:"level"`
		NoColor bool   `toml:"no_color"`
	} `toml:"log"`
	Metrics struct {
		Enabled   bool   `toml:"enabled"`
		Namespace string `toml:"namespace"`
	} `toml:"metrics"`
}

// Default returns the profile used when no file is given: permissive
// decoding, the largest RRC PDU and warnings only.
func Default() Config {
	return Config{
		MaxMessageBytes:  per.MaxMessageBits / 8,
		LogLevel:         zerolog.WarnLevel,
		MetricsNamespace: "lterrc",
	}
}

// Load reads a TOML profile. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return apply(Default(), meta, &raw)
}

// Parse is Load for a profile that is already in memory.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return apply(Default(), meta, &raw)
}

func apply(cfg Config, meta toml.MetaData, raw *fileConfig) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	if meta.IsDefined("codec", "strict") {
		cfg.Strict = raw.Codec.Strict
	}

	if meta.IsDefined("codec", "max_message_bytes") {
		n := raw.Codec.MaxMessageBytes
		if n <= 0 || n > per.MaxMessageBits/8 {
			return Config{}, fmt.Errorf("codec.max_message_bytes %d out of range 1..%d",
				n, per.MaxMessageBits/8)
		}
		cfg.MaxMessageBytes = n
	}

	if meta.IsDefined("log", "level") {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw.Log.Level)))
		if err != nil {
			return Config{}, fmt.Errorf("parse log.level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("log", "no_color") {
		cfg.NoColor = raw.Log.NoColor
	}

	if meta.IsDefined("metrics", "enabled") {
		cfg.MetricsEnabled = raw.Metrics.Enabled
	}

	if meta.IsDefined("metrics", "namespace") {
		ns := strings.TrimSpace(raw.Metrics.Namespace)
		if ns == "" {
			return Config{}, fmt.Errorf("metrics.namespace is empty")
		}
		cfg.MetricsNamespace = ns
	}

	return cfg, nil
}

// ReaderOptions returns the cursor options matching the codec section.
func (c Config) ReaderOptions() []per.ReaderOption {
	if c.Strict {
		return []per.ReaderOption{per.Strict()}
	}
	return nil
}

// MaxMessageBits is the writer bound selected by max_message_bytes.
func (c Config) MaxMessageBits() int {
	if c.MaxMessageBytes <= 0 {
		return per.MaxMessageBits
	}
	return c.MaxMessageBytes * 8
}

// Logger builds a console logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: c.NoColor}
	return zerolog.New(out).Level(c.LogLevel).With().
		Timestamp().Str("component", "rrc").Logger()
}
