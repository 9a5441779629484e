// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhorai/lterrc/encoding/per"
)

func TestLoadFile(t *testing.T) {
	cfg, err := Load("lterrc.toml")
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, 1024, cfg.MaxMessageBytes)
	assert.Equal(t, 8192, cfg.MaxMessageBits())
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "rrc", cfg.MetricsNamespace)
	assert.Len(t, cfg.ReaderOptions(), 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	pattern := []struct {
		name string
		in   string
		exp  Config
		err  bool
	}{
		{"empty keeps defaults", "", Default(), false},
		{"strict only", "[codec]\nstrict = true\n", func() Config {
			c := Default()
			c.Strict = true
			return c
		}(), false},
		{"log level", "[log]\nlevel = \"Error\"\n", func() Config {
			c := Default()
			c.LogLevel = zerolog.ErrorLevel
			return c
		}(), false},
		{"bad level", "[log]\nlevel = \"loud\"\n", Config{}, true},
		{"zero size", "[codec]\nmax_message_bytes = 0\n", Config{}, true},
		{"oversize", "[codec]\nmax_message_bytes = 20000\n", Config{}, true},
		{"empty namespace", "[metrics]\nnamespace = \" \"\n", Config{}, true},
		{"unknown key", "[codec]\naligned = true\n", Config{}, true},
		{"bad syntax", "[codec\n", Config{}, true},
	}

	for _, p := range pattern {
		cfg, err := Parse(p.in)
		if p.err {
			assert.Error(t, err, p.name)
			continue
		}
		require.NoError(t, err, p.name)
		assert.Equal(t, p.exp, cfg, p.name)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Strict)
	assert.Nil(t, cfg.ReaderOptions())
	assert.Equal(t, per.MaxMessageBits, cfg.MaxMessageBits())
	assert.Equal(t, per.MaxMessageBits, Config{}.MaxMessageBits())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.NoColor = true
	l := cfg.Logger(&buf)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "component=rrc")
}
