// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package per

import (
	"errors"
	"fmt"
)

// MaxMessageBits is the default upper bound for a writer cursor. It matches
// the largest RRC PDU the lower layers are able to carry.
const MaxMessageBits = 102048

var (
	ErrBufferOverflow  = errors.New("per: encoded message exceeds buffer size")
	ErrShortBuffer     = errors.New("per: read past end of buffer")
	ErrListTooLong     = errors.New("per: sequence-of count out of range")
	ErrValueOutOfRange = errors.New("per: decoded value out of range")
	ErrLengthTooLarge  = errors.New("per: length determinant too large")
	ErrInvalidWidth    = errors.New("per: invalid bit width")
	ErrWrongDirection  = errors.New("per: operation not allowed on this cursor")
)

type direction int

const (
	writing direction = iota
	reading
)

// Cursor is a bit-addressable buffer with a position that only moves
// forward. A writer cursor appends bits MSB first, a reader cursor consumes
// them. The first error is kept and every later operation is a no-op, so a
// codec can run a sequence of writes and check Err once.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	buf    []byte
	pos    int
	limit  int
	dir    direction
	strict bool
	err    error
}

// ReaderOption configures a reader cursor.
type ReaderOption func(*Cursor)

// Strict makes constrained whole numbers and enumerations fail with
// ErrValueOutOfRange when the decoded bit pattern is outside the declared
// value set. The default is to accept any bit pattern of the declared width.
func Strict() ReaderOption {
	return func(c *Cursor) {
		c.strict = true
	}
}

// NewWriter returns an empty writer cursor limited to maxBits.
// maxBits <= 0 selects MaxMessageBits.
func NewWriter(maxBits int) *Cursor {
	if maxBits <= 0 {
		maxBits = MaxMessageBits
	}
	return &Cursor{
		buf:   make([]byte, 0, 64),
		limit: maxBits,
		dir:   writing,
	}
}

// NewReader returns a reader cursor over all bits of data.
func NewReader(data []byte, opts ...ReaderOption) *Cursor {
	return NewBitReader(data, len(data)*8, opts...)
}

// NewBitReader returns a reader cursor over the first nbits of data.
func NewBitReader(data []byte, nbits int, opts ...ReaderOption) *Cursor {
	if nbits > len(data)*8 || nbits < 0 {
		nbits = len(data) * 8
	}
	c := &Cursor{
		buf:   data,
		limit: nbits,
		dir:   reading,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Err returns the first error recorded on the cursor.
func (c *Cursor) Err() error {
	return c.err
}

// Fail records err unless an error is already recorded.
func (c *Cursor) Fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// Strict reports whether the reader rejects out-of-range values.
func (c *Cursor) Strict() bool {
	return c.strict
}

// Len returns the number of bits written or consumed so far.
func (c *Cursor) Len() int {
	return c.pos
}

// Remaining returns the number of bits left before the limit.
func (c *Cursor) Remaining() int {
	return c.limit - c.pos
}

// Bytes returns the written bits, zero padded to an octet boundary.
// For a reader it returns the underlying data.
func (c *Cursor) Bytes() []byte {
	if c.dir == writing {
		return c.buf[:(c.pos+7)/8]
	}
	return c.buf
}

// PadBits returns the number of bits needed to reach the next octet boundary.
func (c *Cursor) PadBits() int {
	return (8 - c.pos%8) % 8
}

func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor{pos: %d, limit: %d, err: %v}", c.pos, c.limit, c.err)
}

func (c *Cursor) check(width int, dir direction) bool {
	if width > 64 {
		c.Fail(ErrInvalidWidth)
		return false
	}
	return c.room(width, dir)
}

func (c *Cursor) room(width int, dir direction) bool {
	if c.err != nil {
		return false
	}
	if width < 0 {
		c.Fail(ErrInvalidWidth)
		return false
	}
	if c.dir != dir {
		c.Fail(ErrWrongDirection)
		return false
	}
	if c.pos+width > c.limit {
		if dir == writing {
			c.Fail(ErrBufferOverflow)
		} else {
			c.Fail(ErrShortBuffer)
		}
		return false
	}
	return true
}

// WriteBits appends the low width bits of v, most significant bit first.
// Bits of v above width are dropped.
func (c *Cursor) WriteBits(v uint64, width int) {
	if !c.check(width, writing) || width == 0 {
		return
	}
	if width < 64 {
		v &= uint64(1)<<uint(width) - 1
	}
	for width > 0 {
		for len(c.buf) <= c.pos>>3 {
			c.buf = append(c.buf, 0)
		}
		free := 8 - c.pos&7
		n := free
		if width < n {
			n = width
		}
		chunk := byte(v>>uint(width-n)) & byte(uint(1)<<uint(n)-1)
		c.buf[c.pos>>3] |= chunk << uint(free-n)
		c.pos += n
		width -= n
	}
}

// ReadBits consumes width bits and returns them as an unsigned value.
func (c *Cursor) ReadBits(width int) uint64 {
	if !c.check(width, reading) || width == 0 {
		return 0
	}
	var v uint64
	for width > 0 {
		b := c.buf[c.pos>>3]
		free := 8 - c.pos&7
		n := free
		if width < n {
			n = width
		}
		chunk := (uint64(b) >> uint(free-n)) & (uint64(1)<<uint(n) - 1)
		v = v<<uint(n) | chunk
		c.pos += n
		width -= n
	}
	return v
}

func (c *Cursor) WriteBool(b bool) {
	if b {
		c.WriteBits(1, 1)
		return
	}
	c.WriteBits(0, 1)
}

func (c *Cursor) ReadBool() bool {
	return c.ReadBits(1) == 1
}

// Skip consumes n bits without interpreting them.
func (c *Cursor) Skip(n int) {
	for n > 0 {
		w := n
		if w > 64 {
			w = 64
		}
		c.ReadBits(w)
		n -= w
	}
}

// Align moves the position to the next octet boundary, writing zero bits
// on a writer and skipping bits on a reader.
func (c *Cursor) Align() {
	pad := c.PadBits()
	if c.dir == writing {
		c.WriteBits(0, pad)
		return
	}
	c.Skip(pad)
}

// WriteBytes appends whole octets at the current bit position.
func (c *Cursor) WriteBytes(b []byte) {
	for _, v := range b {
		c.WriteBits(uint64(v), 8)
	}
}

// ReadBytes consumes n octets starting at the current bit position.
func (c *Cursor) ReadBytes(n int) []byte {
	if n < 0 || !c.room(n*8, reading) {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(c.ReadBits(8))
	}
	return out
}

// Append copies every bit written to src after the bits of c. A failed src
// propagates its error.
func (c *Cursor) Append(src *Cursor) {
	if src == nil {
		return
	}
	if src.err != nil {
		c.Fail(src.err)
		return
	}
	if !c.room(src.pos, writing) || src.pos == 0 {
		return
	}
	out, outlen := MergeBitField(c.buf[:(c.pos+7)/8], c.pos, src.buf, src.pos)
	c.buf = out
	c.pos = outlen
}
