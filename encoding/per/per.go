// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package per is implementation for Packed Encoding Rule (PER) in
// UNALIGNED variant, as used by the LTE RRC protocol.
//
// Every Enc/Dec function works on a Cursor and records its failure on the
// cursor, so a codec may chain many calls and check Cursor.Err once.
package per

import (
	"fmt"
	"math/bits"
)

// MergeBitField is utility function for merging bit-field.
// Both inputs are left aligned: the first bit of a field is the MSB of the
// first octet. Bits after inlen1 in in1 and after inlen2 in in2 are ignored.
func MergeBitField(in1 []byte, inlen1 int, in2 []byte, inlen2 int) (
	out []byte, outlen int) {
	/*
	   ex1.
	   in1(len=4)  b1010 xxxx
	   in2(len=14) b1110 1011 1100 00xx
	   out(len=18) b1010 1110 1011 1100 00xx
	*/
	outlen = inlen1 + inlen2
	octetlen := (outlen + 7) / 8

	head := inlen1 / 8
	out = make([]byte, head, octetlen+1)
	copy(out, in1[:head])

	tail := make([]byte, (inlen2+7)/8+1)
	copy(tail, in2[:(inlen2+7)/8])
	if r := inlen2 % 8; r != 0 {
		tail[(inlen2-1)/8] &= 0xff << uint(8-r)
	}

	if shift := inlen1 % 8; shift != 0 {
		tail = ShiftRight(tail, shift)
		tail[0] |= in1[head] &^ (0xff >> uint(shift))
	}
	out = append(out, tail...)
	out = out[:octetlen]
	return
}

// ShiftRight is utility function to right shift the octet values.
func ShiftRight(in []byte, shiftlen int) (out []byte) {
	out = in
	for n := 0; n < shiftlen; n++ {
		var carry byte
		for m := 0; m < len(out); m++ {
			next := out[m] << 7
			out[m] = out[m]>>1 | carry
			carry = next
		}
	}
	return
}

// BitLen returns the number of bits for a constrained whole number with the
// range of min..max.
func BitLen(min, max int) int {
	if max <= min {
		return 0
	}
	return bits.Len64(uint64(max - min))
}

// EncConstrainedWholeNumber is the implementation for
// 10.5 Encoding of constrained whole number.
func EncConstrainedWholeNumber(c *Cursor, input, min, max int) {
	if input < min || input > max {
		c.Fail(fmt.Errorf("EncConstrainedWholeNumber: "+
			"input value=%d is out of range. "+
			"(should be %d <= %d): %w", input, min, max,
			ErrValueOutOfRange))
		return
	}
	c.WriteBits(uint64(input-min), BitLen(min, max))
}

// DecConstrainedWholeNumber reads a constrained whole number. A bit pattern
// above the range is returned as is unless the cursor is strict.
func DecConstrainedWholeNumber(c *Cursor, min, max int) (v int) {
	raw := c.ReadBits(BitLen(min, max))
	v = min + int(raw)
	if c.strict && v > max {
		c.Fail(fmt.Errorf("DecConstrainedWholeNumber: "+
			"value=%d is out of range %d..%d: %w", v, min, max,
			ErrValueOutOfRange))
	}
	return
}

// maxNormallySmall bounds a decoded normally small number so that callers
// adding it to a root count stay within int32.
const maxNormallySmall = 1<<31 - 1

// 10.6 Encoding of a normally small non-negative whole number
func encNormallySmall(c *Cursor, input int) {
	if input < 64 {
		c.WriteBits(0, 1)
		c.WriteBits(uint64(input), 6)
		return
	}
	c.WriteBits(1, 1)
	octets := (bits.Len64(uint64(input)) + 7) / 8
	EncLengthDeterminant(c, octets)
	c.WriteBits(uint64(input), octets*8)
}

func decNormallySmall(c *Cursor) int {
	if !c.ReadBool() {
		return int(c.ReadBits(6))
	}
	octets := DecLengthDeterminant(c)
	if octets > 8 {
		c.Fail(fmt.Errorf("decNormallySmall: %d octets: %w",
			octets, ErrLengthTooLarge))
		return 0
	}
	v := c.ReadBits(octets * 8)
	if v > maxNormallySmall {
		c.Fail(fmt.Errorf("decNormallySmall: value=%#x: %w",
			v, ErrValueOutOfRange))
		return 0
	}
	return int(v)
}

// EncLengthDeterminant is the implementation for
// 10.9 General rules for encoding a length determinant
// in the unconstrained case. Fragmentation is not supported.
func EncLengthDeterminant(c *Cursor, input int) {
	switch {
	case input < 0:
		c.Fail(fmt.Errorf("EncLengthDeterminant: "+
			"negative length=%d: %w", input, ErrValueOutOfRange))
	case input < 128:
		c.WriteBits(uint64(input), 8)
	case input < 16384:
		c.WriteBits(0x8000|uint64(input), 16)
	default:
		c.Fail(fmt.Errorf("EncLengthDeterminant: "+
			"not implemented yet for input=%d: %w", input,
			ErrLengthTooLarge))
	}
}

// DecLengthDeterminant reads an unconstrained length determinant.
func DecLengthDeterminant(c *Cursor) int {
	if !c.ReadBool() {
		return int(c.ReadBits(7))
	}
	if !c.ReadBool() {
		return int(c.ReadBits(14))
	}
	c.Fail(fmt.Errorf("DecLengthDeterminant: "+
		"fragmented length: %w", ErrLengthTooLarge))
	return 0
}

// EncEnumerated is the implementation for
// 13. Encoding the enumerated type
// count is the number of root values. With extmark, input >= count is
// encoded as an extension value.
func EncEnumerated(c *Cursor, input, count int, extmark bool) {
	if extmark {
		if input >= count {
			c.WriteBits(1, 1)
			encNormallySmall(c, input-count)
			return
		}
		c.WriteBits(0, 1)
	}
	EncConstrainedWholeNumber(c, input, 0, count-1)
}

// DecEnumerated reads an enumerated value. An extension value is returned
// as count plus its extension index.
func DecEnumerated(c *Cursor, count int, extmark bool) int {
	if extmark && c.ReadBool() {
		v := count + decNormallySmall(c)
		if c.strict {
			c.Fail(fmt.Errorf("DecEnumerated: "+
				"extension value=%d: %w", v, ErrValueOutOfRange))
		}
		return v
	}
	return DecConstrainedWholeNumber(c, 0, count-1)
}

// EncOctetString is the implementation for
// 16. Encoding the octetstring type
// with no size constraint.
func EncOctetString(c *Cursor, input []byte) {
	EncLengthDeterminant(c, len(input))
	c.WriteBytes(input)
}

func DecOctetString(c *Cursor) []byte {
	n := DecLengthDeterminant(c)
	return c.ReadBytes(n)
}

// EncFixedOctetString encodes an OCTET STRING (SIZE(n)).
func EncFixedOctetString(c *Cursor, input []byte, n int) {
	if len(input) != n {
		c.Fail(fmt.Errorf("EncFixedOctetString: "+
			"input len(value)=%d must be %d: %w", len(input), n,
			ErrValueOutOfRange))
		return
	}
	c.WriteBytes(input)
}

func DecFixedOctetString(c *Cursor, n int) []byte {
	return c.ReadBytes(n)
}

// EncBoundedOctetString encodes an OCTET STRING (SIZE(min..max)).
func EncBoundedOctetString(c *Cursor, input []byte, min, max int) {
	if len(input) < min || len(input) > max {
		c.Fail(fmt.Errorf("EncBoundedOctetString: "+
			"input len(value)=%d is out of range. "+
			"(should be %d <= %d): %w", len(input), min, max,
			ErrValueOutOfRange))
		return
	}
	EncConstrainedWholeNumber(c, len(input), min, max)
	c.WriteBytes(input)
}

func DecBoundedOctetString(c *Cursor, min, max int) []byte {
	n := DecConstrainedWholeNumber(c, min, max)
	if n > max {
		c.Fail(fmt.Errorf("DecBoundedOctetString: "+
			"len=%d exceeds %d: %w", n, max, ErrLengthTooLarge))
		return nil
	}
	return c.ReadBytes(n)
}

// EncSequence writes the preamble of
// 18. Encoding the sequence type
// that is the extension bit (always 0) and one bit per OPTIONAL or DEFAULT
// component.
func EncSequence(c *Cursor, extmark bool, present ...bool) {
	if extmark {
		c.WriteBits(0, 1)
	}
	for _, p := range present {
		c.WriteBool(p)
	}
}

// DecSequence reads the sequence preamble into present and reports whether
// the extension bit was set.
func DecSequence(c *Cursor, extmark bool, present ...*bool) (extended bool) {
	if extmark {
		extended = c.ReadBool()
	}
	for _, p := range present {
		*p = c.ReadBool()
	}
	return
}

// EncSequenceOf writes the count of
// 19. Encoding the sequence-of type
// for SEQUENCE (SIZE(min..max)) OF.
func EncSequenceOf(c *Cursor, n, min, max int) {
	if n < min || n > max {
		c.Fail(fmt.Errorf("EncSequenceOf: "+
			"count=%d is out of range %d..%d: %w", n, min, max,
			ErrListTooLong))
		return
	}
	c.WriteBits(uint64(n-min), BitLen(min, max))
}

// DecSequenceOf reads a sequence-of count. A count beyond max always fails,
// regardless of strictness, before the caller allocates anything.
func DecSequenceOf(c *Cursor, min, max int) int {
	n := min + int(c.ReadBits(BitLen(min, max)))
	if c.Err() != nil {
		return 0
	}
	if n > max {
		c.Fail(fmt.Errorf("DecSequenceOf: "+
			"count=%d is out of range %d..%d: %w", n, min, max,
			ErrListTooLong))
		return 0
	}
	return n
}

// EncChoice is the implementation for
// 22. Encoding the choice type
// for a root alternative.
func EncChoice(c *Cursor, input, count int, extmark bool) {
	if extmark {
		c.WriteBits(0, 1)
	}
	EncConstrainedWholeNumber(c, input, 0, count-1)
}

// EncChoiceExtension selects the extension alternative index of an
// extensible CHOICE. The open type that follows is written by the caller.
func EncChoiceExtension(c *Cursor, index int) {
	c.WriteBits(1, 1)
	encNormallySmall(c, index)
}

// DecChoice reads a choice index. For an extension alternative, extended is
// true and the index is the extension index; the caller cannot interpret
// the open type that follows.
func DecChoice(c *Cursor, count int, extmark bool) (index int, extended bool) {
	if extmark && c.ReadBool() {
		return decNormallySmall(c), true
	}
	index = DecConstrainedWholeNumber(c, 0, count-1)
	return
}

// EncOpenType is the implementation for
// 10.2 Open type fields
// inner is written as a whole number of octets behind a length determinant.
func EncOpenType(c *Cursor, inner *Cursor) {
	if inner.Err() != nil {
		c.Fail(inner.Err())
		return
	}
	if inner.Len() == 0 { // 10.1.3 an empty encoding is one zero octet
		EncLengthDeterminant(c, 1)
		c.WriteBits(0, 8)
		return
	}
	octets := (inner.Len() + 7) / 8
	EncLengthDeterminant(c, octets)
	c.Append(inner)
	c.WriteBits(0, octets*8-inner.Len())
}

// DecOpenType consumes an open type and returns a reader over its octets,
// inheriting the strictness of c.
func DecOpenType(c *Cursor) (*Cursor, error) {
	n := DecLengthDeterminant(c)
	b := c.ReadBytes(n)
	if err := c.Err(); err != nil {
		return nil, err
	}
	inner := NewReader(b)
	inner.strict = c.strict
	return inner, nil
}

// SkipExtensionAdditions consumes the extension additions of a SEQUENCE
// whose extension bit was set: the count, the presence bitmap and the open
// type of each present addition. It returns how many additions were
// discarded.
func SkipExtensionAdditions(c *Cursor) (n int, err error) {
	count := int(c.ReadBits(7)) + 1
	present := make([]bool, count)
	for i := range present {
		present[i] = c.ReadBool()
	}
	for _, p := range present {
		if !p {
			continue
		}
		octets := DecLengthDeterminant(c)
		c.Skip(octets * 8)
		n++
	}
	err = c.Err()
	return
}

// EncExtensionAdditions writes the extension additions for an extensible
// SEQUENCE whose extension bit was set to 1. Each non-nil entry is written
// as an open type; a nil entry is marked absent.
func EncExtensionAdditions(c *Cursor, additions ...*Cursor) {
	if len(additions) == 0 || len(additions) > 128 {
		c.Fail(fmt.Errorf("EncExtensionAdditions: "+
			"count=%d: %w", len(additions), ErrListTooLong))
		return
	}
	c.WriteBits(uint64(len(additions)-1), 7)
	for _, a := range additions {
		c.WriteBool(a != nil)
	}
	for _, a := range additions {
		if a != nil {
			EncOpenType(c, a)
		}
	}
}
