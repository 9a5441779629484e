// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package per

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeBitField(t *testing.T) {
	pattern := []struct {
		in1    []byte
		inlen1 int
		in2    []byte
		inlen2 int
		expect []byte
		expLen int
	}{
		{nil, 0, []byte{0xeb, 0xc0}, 14, []byte{0xeb, 0xc0}, 14},
		{[]byte{0xa0}, 4, []byte{0xeb, 0xc0}, 14, []byte{0xae, 0xbc, 0x00}, 18},
		{[]byte{0xff}, 8, []byte{0x80}, 1, []byte{0xff, 0x80}, 9},
		{[]byte{0xc0}, 2, []byte{0xff}, 6, []byte{0xff}, 8},
		{[]byte{0xff}, 1, []byte{0xff}, 1, []byte{0xc0}, 2},
	}

	for _, p := range pattern {
		out, outlen := MergeBitField(p.in1, p.inlen1, p.in2, p.inlen2)
		assert.Equal(t, p.expect, out, "pattern = %v", p)
		assert.Equal(t, p.expLen, outlen, "pattern = %v", p)
	}
}

func TestShift(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x00}, ShiftRight([]byte{0x02, 0x00}, 1))
	assert.Equal(t, []byte{0x00, 0x80}, ShiftRight([]byte{0x01, 0x00}, 1))
}

func TestCursorBits(t *testing.T) {
	w := NewWriter(0)
	w.WriteBits(0x5, 3)
	w.WriteBits(0x1ff, 9)
	w.WriteBool(true)
	w.WriteBits(0x0102030405, 40)
	require.NoError(t, w.Err())
	assert.Equal(t, 53, w.Len())

	r := NewBitReader(w.Bytes(), w.Len())
	assert.Equal(t, uint64(0x5), r.ReadBits(3))
	assert.Equal(t, uint64(0x1ff), r.ReadBits(9))
	assert.True(t, r.ReadBool())
	assert.Equal(t, uint64(0x0102030405), r.ReadBits(40))
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
}

func TestCursorTruncatesValue(t *testing.T) {
	w := NewWriter(0)
	w.WriteBits(0xff, 4)
	w.WriteBits(0, 4)
	assert.Equal(t, []byte{0xf0}, w.Bytes())
}

func TestCursorBounds(t *testing.T) {
	w := NewWriter(10)
	w.WriteBits(0, 8)
	w.WriteBits(0, 3)
	assert.ErrorIs(t, w.Err(), ErrBufferOverflow)
	// sticky: later writes are ignored
	w.WriteBits(0x3, 2)
	assert.Equal(t, 8, w.Len())

	r := NewReader([]byte{0xaa})
	r.ReadBits(6)
	assert.Equal(t, uint64(0), r.ReadBits(3))
	assert.ErrorIs(t, r.Err(), ErrShortBuffer)
	assert.Equal(t, 6, r.Len())

	r = NewReader([]byte{0xaa})
	r.WriteBits(1, 1)
	assert.ErrorIs(t, r.Err(), ErrWrongDirection)
}

func TestCursorAppendAndAlign(t *testing.T) {
	inner := NewWriter(0)
	inner.WriteBits(0x2ab, 10)

	outer := NewWriter(0)
	outer.WriteBits(0x1, 3)
	outer.Append(inner)
	require.NoError(t, outer.Err())
	assert.Equal(t, 13, outer.Len())
	assert.Equal(t, 3, outer.PadBits())
	outer.Align()
	assert.Equal(t, 16, outer.Len())
	// 001 1010101011 000
	assert.Equal(t, []byte{0x35, 0x58}, outer.Bytes())

	outer.WriteBits(0x7, 3)
	assert.Equal(t, []byte{0x35, 0x58, 0xe0}, outer.Bytes())

	failed := NewWriter(4)
	failed.WriteBits(0, 5)
	outer.Append(failed)
	assert.ErrorIs(t, outer.Err(), ErrBufferOverflow)
}

func TestConstrainedWholeNumber(t *testing.T) {
	pattern := []struct {
		in     int
		min    int
		max    int
		expect uint64
		width  int
	}{
		{-70, -70, -22, 0, 6},
		{35, 0, 63, 35, 6},
		{503, 0, 503, 503, 9},
		{5, 5, 5, 0, 0},
		{1, 1, 2, 0, 1}, // 1-bit range
		{65535, 0, 65535, 65535, 16},
	}

	for _, p := range pattern {
		w := NewWriter(0)
		EncConstrainedWholeNumber(w, p.in, p.min, p.max)
		require.NoError(t, w.Err(), "pattern = %v", p)
		assert.Equal(t, p.width, w.Len(), "pattern = %v", p)

		r := NewBitReader(w.Bytes(), w.Len())
		assert.Equal(t, p.expect, r.ReadBits(p.width), "pattern = %v", p)

		r = NewBitReader(w.Bytes(), w.Len())
		assert.Equal(t, p.in, DecConstrainedWholeNumber(r, p.min, p.max),
			"pattern = %v", p)
	}

	w := NewWriter(0)
	EncConstrainedWholeNumber(w, 64, 0, 63)
	assert.ErrorIs(t, w.Err(), ErrValueOutOfRange)
}

func TestDecConstrainedWholeNumberStrict(t *testing.T) {
	// 0..5 in 3 bits, raw 7 is out of range
	data := []byte{0xe0}

	r := NewReader(data)
	assert.Equal(t, 7, DecConstrainedWholeNumber(r, 0, 5))
	assert.NoError(t, r.Err())

	r = NewReader(data, Strict())
	DecConstrainedWholeNumber(r, 0, 5)
	assert.ErrorIs(t, r.Err(), ErrValueOutOfRange)
}

func TestLengthDeterminant(t *testing.T) {
	pattern := []struct {
		in     int
		expect []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x80}},
		{16383, []byte{0xbf, 0xff}},
	}

	for _, p := range pattern {
		w := NewWriter(0)
		EncLengthDeterminant(w, p.in)
		require.NoError(t, w.Err(), "pattern = %v", p)
		assert.Equal(t, p.expect, w.Bytes(), "pattern = %v", p)
		assert.Equal(t, p.in, DecLengthDeterminant(NewReader(w.Bytes())),
			"pattern = %v", p)
	}

	w := NewWriter(0)
	EncLengthDeterminant(w, 16384)
	assert.ErrorIs(t, w.Err(), ErrLengthTooLarge)

	r := NewReader([]byte{0xc1, 0x00})
	DecLengthDeterminant(r)
	assert.ErrorIs(t, r.Err(), ErrLengthTooLarge)
}

func TestEnumerated(t *testing.T) {
	pattern := []struct {
		in      int
		count   int
		extmark bool
		width   int
	}{
		{3, 8, false, 3},
		{3, 8, true, 4},
		{0, 2, true, 2},
		{10, 10, true, 8}, // first extension value
		{0, 1, false, 0},
	}

	for _, p := range pattern {
		w := NewWriter(0)
		EncEnumerated(w, p.in, p.count, p.extmark)
		require.NoError(t, w.Err(), "pattern = %v", p)
		assert.Equal(t, p.width, w.Len(), "pattern = %v", p)

		r := NewBitReader(w.Bytes(), w.Len())
		assert.Equal(t, p.in, DecEnumerated(r, p.count, p.extmark),
			"pattern = %v", p)
		assert.NoError(t, r.Err(), "pattern = %v", p)
	}

	w := NewWriter(0)
	EncEnumerated(w, 12, 10, true)
	r := NewBitReader(w.Bytes(), w.Len(), Strict())
	DecEnumerated(r, 10, true)
	assert.ErrorIs(t, r.Err(), ErrValueOutOfRange)
}

func TestNormallySmallBound(t *testing.T) {
	pattern := []struct {
		value uint64
		err   error
	}{
		{0xffffffffffffffff, ErrValueOutOfRange},
		{0xffffffffffffff38, ErrValueOutOfRange},
		{1 << 31, ErrValueOutOfRange},
		{1<<31 - 1, nil},
	}

	for _, p := range pattern {
		// extended choice, long form with an 8 octet value
		w := NewWriter(0)
		w.WriteBits(1, 1)
		w.WriteBits(1, 1)
		w.WriteBits(8, 8)
		w.WriteBits(p.value, 64)
		require.NoError(t, w.Err())

		r := NewBitReader(w.Bytes(), w.Len())
		idx, ext := DecChoice(r, 10, true)
		assert.True(t, ext, "pattern = %v", p)
		if p.err != nil {
			assert.ErrorIs(t, r.Err(), p.err, "pattern = %v", p)
			assert.Equal(t, 0, idx, "pattern = %v", p)
			continue
		}
		require.NoError(t, r.Err(), "pattern = %v", p)
		assert.Equal(t, int(p.value), idx, "pattern = %v", p)
	}
}

func TestSequenceOf(t *testing.T) {
	w := NewWriter(0)
	EncSequenceOf(w, 3, 1, 32)
	require.NoError(t, w.Err())
	assert.Equal(t, 5, w.Len())
	assert.Equal(t, 3, DecSequenceOf(NewBitReader(w.Bytes(), w.Len()), 1, 32))

	w = NewWriter(0)
	EncSequenceOf(w, 33, 1, 32)
	assert.ErrorIs(t, w.Err(), ErrListTooLong)

	w = NewWriter(0)
	EncSequenceOf(w, 0, 1, 32)
	assert.ErrorIs(t, w.Err(), ErrListTooLong)

	// count field of 6 bits carries 63 for a list bounded at 1..40
	r := NewReader([]byte{0xfc})
	assert.Equal(t, 0, DecSequenceOf(r, 1, 40))
	assert.ErrorIs(t, r.Err(), ErrListTooLong)
}

func TestChoice(t *testing.T) {
	w := NewWriter(0)
	EncChoice(w, 2, 4, true)
	require.NoError(t, w.Err())
	assert.Equal(t, 3, w.Len())

	idx, ext := DecChoice(NewBitReader(w.Bytes(), w.Len()), 4, true)
	assert.Equal(t, 2, idx)
	assert.False(t, ext)

	// extension alternative 5
	idx, ext = DecChoice(NewReader([]byte{0x85}), 4, true)
	assert.Equal(t, 5, idx)
	assert.True(t, ext)

	w = NewWriter(0)
	EncChoiceExtension(w, 1)
	require.NoError(t, w.Err())
	assert.Equal(t, 8, w.Len())
	assert.Equal(t, []byte{0x81}, w.Bytes())
}

func TestOctetString(t *testing.T) {
	w := NewWriter(0)
	EncOctetString(w, []byte{0xde, 0xad})
	EncFixedOctetString(w, []byte{0x01, 0x02, 0x03}, 3)
	EncBoundedOctetString(w, []byte{0xff}, 1, 4)
	require.NoError(t, w.Err())
	assert.Equal(t, 8+16+24+2+8, w.Len())

	r := NewBitReader(w.Bytes(), w.Len())
	assert.Equal(t, []byte{0xde, 0xad}, DecOctetString(r))
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, DecFixedOctetString(r, 3))
	assert.Equal(t, []byte{0xff}, DecBoundedOctetString(r, 1, 4))
	require.NoError(t, r.Err())

	w = NewWriter(0)
	EncFixedOctetString(w, []byte{0x01}, 2)
	assert.ErrorIs(t, w.Err(), ErrValueOutOfRange)
}

func TestSequencePreamble(t *testing.T) {
	w := NewWriter(0)
	EncSequence(w, true, true, false, true)
	assert.Equal(t, []byte{0x50}, w.Bytes())
	assert.Equal(t, 4, w.Len())

	var a, b, c bool
	ext := DecSequence(NewReader([]byte{0xd0}), true, &a, &b, &c)
	assert.True(t, ext)
	assert.True(t, a)
	assert.False(t, b)
	assert.True(t, c)
}

func TestOpenType(t *testing.T) {
	inner := NewWriter(0)
	inner.WriteBits(0x5, 3)

	w := NewWriter(0)
	w.WriteBits(1, 1)
	EncOpenType(w, inner)
	w.WriteBits(0x3, 2)
	require.NoError(t, w.Err())
	assert.Equal(t, 1+8+8+2, w.Len())

	r := NewBitReader(w.Bytes(), w.Len(), Strict())
	assert.True(t, r.ReadBool())
	sub, err := DecOpenType(r)
	require.NoError(t, err)
	assert.True(t, sub.Strict())
	assert.Equal(t, uint64(0x5), sub.ReadBits(3))
	assert.Equal(t, uint64(0x3), r.ReadBits(2))
}

func TestOpenTypeEmpty(t *testing.T) {
	w := NewWriter(0)
	EncOpenType(w, NewWriter(0))
	require.NoError(t, w.Err())
	assert.Equal(t, []byte{0x01, 0x00}, w.Bytes())

	sub, err := DecOpenType(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 8, sub.Remaining())
}

func TestSkipExtensionAdditions(t *testing.T) {
	add := NewWriter(0)
	add.WriteBits(0xabc, 12)

	w := NewWriter(0)
	EncExtensionAdditions(w, nil, add, nil)
	// a trailing known field must decode from the position after the skip
	w.WriteBits(0x2d, 6)
	require.NoError(t, w.Err())

	r := NewBitReader(w.Bytes(), w.Len())
	n, err := SkipExtensionAdditions(r)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint64(0x2d), r.ReadBits(6))
	assert.Equal(t, 0, r.Remaining())

	// truncated addition
	r = NewBitReader(w.Bytes(), 7+3+8+4)
	_, err = SkipExtensionAdditions(r)
	assert.True(t, errors.Is(err, ErrShortBuffer))
}
