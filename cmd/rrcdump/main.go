// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Command rrcdump decodes and re-encodes LTE RRC messages given in hex.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/hhorai/lterrc/config"
	"github.com/hhorai/lterrc/encoding/rrc"
	"github.com/hhorai/lterrc/metrics"
)

type app struct {
	configPath string
	strict     bool

	cfg      config.Config
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "rrcdump",
		Short:         "Decode and re-encode LTE RRC messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML codec profile")
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "reject out of range values while decoding")

	root.AddCommand(newChannelsCmd(), newDecodeCmd(a), newRoundtripCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if cmd.Flags().Changed("strict") {
		a.cfg.Strict = a.strict
	}

	rrc.SetLogger(a.cfg.Logger(cmd.ErrOrStderr()))

	if a.cfg.MetricsEnabled {
		a.registry = prometheus.NewRegistry()
		if err := metrics.NewCollector(a.cfg.MetricsNamespace).Register(a.registry); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
	}
	return nil
}

// teardown writes the collected counters in text exposition format.
func (a *app) teardown(cmd *cobra.Command) error {
	if a.registry == nil {
		return nil
	}
	defer rrc.SetObserver(nil)

	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(cmd.ErrOrStderr(), expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rrcdump: %v\n", err)
		os.Exit(1)
	}
}
