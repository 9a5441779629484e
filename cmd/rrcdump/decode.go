// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hhorai/lterrc/encoding/rrc"
)

type dump struct {
	Channel string      `json:"channel"`
	Message string      `json:"message"`
	Octets  int         `json:"octets"`
	Body    rrc.Message `json:"body"`
}

func newChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the logical channels and their messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, ch := range rrc.Channels() {
				fmt.Fprintf(out, "%s\n", ch)
				for _, m := range rrc.Messages(ch) {
					fmt.Fprintf(out, "  %s\n", m)
				}
			}
			return nil
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	var channel string
	cmd := &cobra.Command{
		Use:   "decode --channel <name> <hex>...",
		Short: "Decode a message and print it as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseHex(args)
			if err != nil {
				return err
			}
			m, err := a.decode(channel, data)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dump{
				Channel: m.Channel(),
				Message: messageName(m),
				Octets:  len(data),
				Body:    m.Body(),
			})
		},
	}
	cmd.Flags().StringVar(&channel, "channel", "", "logical channel, see the channels command")
	_ = cmd.MarkFlagRequired("channel")
	return cmd
}

func newRoundtripCmd(a *app) *cobra.Command {
	var channel string
	cmd := &cobra.Command{
		Use:   "roundtrip --channel <name> <hex>...",
		Short: "Decode a message, encode it again and compare the bits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseHex(args)
			if err != nil {
				return err
			}
			m, err := a.decode(channel, data)
			if err != nil {
				return err
			}
			b, n, err := rrc.EncodeLimit(m, a.cfg.MaxMessageBits())
			if err != nil {
				return err
			}
			if i := firstDiff(data, b, n); i >= 0 {
				return fmt.Errorf("%s %s: re-encoded bits differ at octet %d: %x",
					m.Channel(), messageName(m), i, b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d bits, identical\n",
				m.Channel(), messageName(m), n)
			return nil
		},
	}
	cmd.Flags().StringVar(&channel, "channel", "", "logical channel, see the channels command")
	_ = cmd.MarkFlagRequired("channel")
	return cmd
}

func (a *app) decode(channel string, data []byte) (rrc.ChannelMessage, error) {
	m, err := rrc.NewChannelMessage(channel)
	if err != nil {
		return nil, err
	}
	if err := rrc.Decode(data, m, a.cfg.ReaderOptions()...); err != nil {
		return nil, err
	}
	return m, nil
}

// parseHex accepts octets split over several arguments, with or without
// a 0x prefix and spaces.
func parseHex(args []string) ([]byte, error) {
	s := strings.Join(args, "")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	s = strings.NewReplacer(" ", "", ":", "", "\n", "").Replace(s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("parse hex: no octets")
	}
	return data, nil
}

// firstDiff compares the first n bits of b with data and returns the index
// of the first differing octet, or -1.
func firstDiff(data, b []byte, n int) int {
	for i := 0; i < (n+7)/8; i++ {
		if i >= len(data) {
			return i
		}
		mask := byte(0xff)
		if rem := n - 8*i; rem < 8 {
			mask <<= 8 - rem
		}
		if data[i]&mask != b[i]&mask {
			return i
		}
	}
	return -1
}

func messageName(m rrc.ChannelMessage) string {
	if b := m.Body(); b != nil {
		return b.Name()
	}
	return ""
}
