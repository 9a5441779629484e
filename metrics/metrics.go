// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package metrics exports codec activity as prometheus counters.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hhorai/lterrc/encoding/per"
	"github.com/hhorai/lterrc/encoding/rrc"
)

// Collector counts the messages seen by rrc.Encode and rrc.Decode. It is
// both an rrc.Observer and a prometheus.Collector.
type Collector struct {
	messages *prometheus.CounterVec
	bits     *prometheus.CounterVec
	failures *prometheus.CounterVec
}

var _ rrc.Observer = (*Collector)(nil)
var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "lterrc"
	}
	return &Collector{
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "messages_total",
				Help:      "RRC messages encoded or decoded.",
			},
			[]string{"channel", "message", "op"},
		),
		bits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "bits_total",
				Help:      "Bits produced or consumed by the RRC codec.",
			},
			[]string{"channel", "op"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "errors_total",
				Help:      "RRC codec failures by reason.",
			},
			[]string{"channel", "op", "reason"},
		),
	}
}

func (c *Collector) Encoded(channel, message string, bits int) {
	c.messages.WithLabelValues(channel, message, "encode").Inc()
	c.bits.WithLabelValues(channel, "encode").Add(float64(bits))
}

func (c *Collector) Decoded(channel, message string, bits int) {
	c.messages.WithLabelValues(channel, message, "decode").Inc()
	c.bits.WithLabelValues(channel, "decode").Add(float64(bits))
}

func (c *Collector) Failed(channel, op string, err error) {
	c.failures.WithLabelValues(channel, op, Reason(err)).Inc()
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.messages.Describe(ch)
	c.bits.Describe(ch)
	c.failures.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.messages.Collect(ch)
	c.bits.Collect(ch)
	c.failures.Collect(ch)
}

// Register adds c to reg and installs it as the rrc observer.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if err := reg.Register(c); err != nil {
		return err
	}
	rrc.SetObserver(c)
	return nil
}

// Reason maps a codec error to a short label value.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case rrc.IsUnsupported(err):
		return "unsupported"
	case errors.Is(err, rrc.ErrWrongChannel):
		return "wrong_channel"
	case errors.Is(err, rrc.ErrInvalidInputs):
		return "invalid_inputs"
	case errors.Is(err, per.ErrShortBuffer):
		return "short_buffer"
	case errors.Is(err, per.ErrBufferOverflow):
		return "overflow"
	case errors.Is(err, per.ErrListTooLong):
		return "list_too_long"
	case errors.Is(err, per.ErrValueOutOfRange):
		return "out_of_range"
	case errors.Is(err, per.ErrLengthTooLarge):
		return "length_too_large"
	}
	return "other"
}
