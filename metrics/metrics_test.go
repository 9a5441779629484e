// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package metrics

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhorai/lterrc/encoding/per"
	"github.com/hhorai/lterrc/encoding/rrc"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector("")
	c.Encoded("DL-CCCH", "RRCConnectionSetup", 40)
	c.Encoded("DL-CCCH", "RRCConnectionSetup", 40)
	c.Decoded("UL-CCCH", "RRCConnectionRequest", 48)
	c.Failed("UL-DCCH", "decode", per.ErrShortBuffer)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.messages.WithLabelValues("DL-CCCH", "RRCConnectionSetup", "encode")))
	assert.Equal(t, 80.0, testutil.ToFloat64(c.bits.WithLabelValues("DL-CCCH", "encode")))
	assert.Equal(t, 48.0, testutil.ToFloat64(c.bits.WithLabelValues("UL-CCCH", "decode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("UL-DCCH", "decode", "short_buffer")))
}

func TestCollectorExposition(t *testing.T) {
	c := NewCollector("rrc")
	c.Decoded("PCCH", "Paging", 56)

	exp := `
# HELP rrc_codec_messages_total RRC messages encoded or decoded.
# TYPE rrc_codec_messages_total counter
rrc_codec_messages_total{channel="PCCH",message="Paging",op="decode"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(exp), "rrc_codec_messages_total"))
}

func TestRegisterObservesCodec(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := NewCollector("lterrc")
	require.NoError(t, c.Register(reg))
	defer rrc.SetObserver(nil)

	msg := &rrc.DLCCCHMessage{Message: &rrc.RRCConnectionReject{WaitTime: 5}}
	_, bits, err := rrc.Encode(msg)
	require.NoError(t, err)

	var out rrc.ULDCCHMessage
	err = rrc.Decode([]byte{0x80, 0x00}, &out)
	require.Error(t, err)

	assert.Equal(t, float64(bits), testutil.ToFloat64(c.bits.WithLabelValues("DL-CCCH", "encode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("UL-DCCH", "decode", "unsupported")))

	n, err := testutil.GatherAndCount(reg, "lterrc_codec_messages_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// a second collector with the same names is refused
	assert.Error(t, NewCollector("lterrc").Register(reg))
}

func TestReason(t *testing.T) {
	pattern := []struct {
		in  error
		exp string
	}{
		{nil, "none"},
		{&rrc.UnsupportedVariantError{Kind: "x", Value: 1}, "unsupported"},
		{fmt.Errorf("rrc: UL-CCCH: %w", rrc.ErrWrongChannel), "wrong_channel"},
		{rrc.ErrInvalidInputs, "invalid_inputs"},
		{per.ErrShortBuffer, "short_buffer"},
		{per.ErrBufferOverflow, "overflow"},
		{per.ErrListTooLong, "list_too_long"},
		{per.ErrValueOutOfRange, "out_of_range"},
		{per.ErrLengthTooLarge, "length_too_large"},
		{errors.New("boom"), "other"},
	}

	for _, p := range pattern {
		assert.Equal(t, p.exp, Reason(p.in), "pattern = %v", p)
	}
}
