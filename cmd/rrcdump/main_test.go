// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDecode(t *testing.T) {
	out, _, err := run(t, "decode", "--channel", "UL-CCCH", "0x5010 2030", "4056")
	require.NoError(t, err)

	var d struct {
		Channel string          `json:"channel"`
		Message string          `json:"message"`
		Octets  int             `json:"octets"`
		Body    json.RawMessage `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "UL-CCCH", d.Channel)
	assert.Equal(t, "RRCConnectionRequest", d.Message)
	assert.Equal(t, 6, d.Octets)
	assert.NotEmpty(t, d.Body)
}

func TestRoundtrip(t *testing.T) {
	pattern := []struct {
		channel string
		hex     string
	}{
		{"UL-CCCH", "501020304056"},
		{"BCCH-BCH", "604800"},
		{"DL-CCCH", "4080"},
		{"PCCH", "60012deadbeef0"},
	}

	for _, p := range pattern {
		out, _, err := run(t, "roundtrip", "--channel", p.channel, p.hex)
		require.NoError(t, err, "pattern = %v", p)
		assert.Contains(t, out, "identical", "pattern = %v", p)
	}
}

func TestErrors(t *testing.T) {
	pattern := []struct {
		name string
		args []string
	}{
		{"unknown channel", []string{"decode", "--channel", "MCCH", "00"}},
		{"missing channel", []string{"decode", "00"}},
		{"odd hex", []string{"decode", "--channel", "PCCH", "123"}},
		{"no octets", []string{"decode", "--channel", "PCCH", "0x"}},
		{"short", []string{"decode", "--channel", "UL-CCCH", "50"}},
		{"spare", []string{"roundtrip", "--channel", "UL-DCCH", "8000"}},
		{"no config", []string{"--config", "/nonexistent/lterrc.toml", "channels"}},
	}

	for _, p := range pattern {
		_, _, err := run(t, p.args...)
		assert.Error(t, err, p.name)
	}
}

func TestChannels(t *testing.T) {
	out, _, err := run(t, "channels")
	require.NoError(t, err)
	assert.Contains(t, out, "DL-DCCH\n")
	assert.Contains(t, out, "  RRCConnectionReconfiguration\n")
	assert.Contains(t, out, "BCCH-BCH\n  MasterInformationBlock\n")
}

func TestMetricsOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lterrc.toml")
	profile := "[log]\nlevel = \"error\"\nno_color = true\n\n[metrics]\nenabled = true\n"
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o644))

	_, stderr, err := run(t, "--config", path, "roundtrip", "--channel", "DL-CCCH", "4080")
	require.NoError(t, err)
	assert.Contains(t, stderr, `lterrc_codec_messages_total{channel="DL-CCCH",message="RRCConnectionReject",op="decode"} 1`)
	assert.Contains(t, stderr, `lterrc_codec_messages_total{channel="DL-CCCH",message="RRCConnectionReject",op="encode"} 1`)
}

func TestFirstDiff(t *testing.T) {
	pattern := []struct {
		data []byte
		b    []byte
		n    int
		exp  int
	}{
		{[]byte{0x40, 0x80}, []byte{0x40, 0x80}, 11, -1},
		{[]byte{0x40, 0x9f}, []byte{0x40, 0x80}, 11, -1},
		{[]byte{0x40, 0xc0}, []byte{0x40, 0x80}, 11, 1},
		{[]byte{0x41}, []byte{0x40, 0x80}, 11, 0},
		{[]byte{0x40}, []byte{0x40, 0x80}, 11, 1},
	}

	for _, p := range pattern {
		assert.Equal(t, p.exp, firstDiff(p.data, p.b, p.n), "pattern = %v", p)
	}
}
