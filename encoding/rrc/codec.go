// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.4 RRC multiplicity and type constraint values
const (
	maxBands            = 64
	maxCDMABandClass    = 32
	maxCellBlack        = 16
	maxCellInter        = 16
	maxCellIntra        = 16
	maxCellMeas         = 32
	maxCellReport       = 8
	maxDRB              = 11
	maxEARFCN           = 65535
	maxFreq             = 8
	maxGERANSI          = 10
	maxGNFG             = 16
	maxMBSFNAllocations = 8
	maxMBSFNArea        = 8
	maxMCSPerPMCH       = 15
	maxMeasID           = 32
	maxObjectID         = 32
	maxPageRec          = 16
	maxPNOffset         = 511
	maxRATCapabilities  = 8
	maxReportConfigID   = 32
	maxSIMessage        = 32
	maxSIB              = 32
	maxUTRAFDDCarrier   = 16
	maxUTRATDDCarrier   = 16
)

// Packer is implemented by every information element and message.
type Packer interface {
	Pack(c *per.Cursor) error
	Unpack(c *per.Cursor) error
}

// packerPtr lets the generic helpers allocate a T and use its pointer
// methods.
type packerPtr[T any] interface {
	*T
	Packer
}

func packList[T any, P packerPtr[T]](c *per.Cursor, list []T, min, max int) error {
	per.EncSequenceOf(c, len(list), min, max)
	if err := c.Err(); err != nil {
		return err
	}
	for i := range list {
		if err := P(&list[i]).Pack(c); err != nil {
			return err
		}
	}
	return nil
}

func unpackList[T any, P packerPtr[T]](c *per.Cursor, min, max int) ([]T, error) {
	n := per.DecSequenceOf(c, min, max)
	if err := c.Err(); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	list := make([]T, n)
	for i := range list {
		if err := P(&list[i]).Unpack(c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// unpackOptional decodes a T when present is set, nil otherwise.
func unpackOptional[T any, P packerPtr[T]](c *per.Cursor, present bool) (*T, error) {
	if !present {
		return nil, c.Err()
	}
	v := P(new(T))
	if err := v.Unpack(c); err != nil {
		return nil, err
	}
	return (*T)(v), nil
}

func packOptional(c *per.Cursor, present bool, v Packer) error {
	if !present {
		return c.Err()
	}
	return v.Pack(c)
}

// differsFrom reports whether a DEFAULT field must be sent: v is set and not
// equal to def.
func differsFrom[T comparable](v *T, def T) bool {
	return v != nil && *v != def
}

// skipExtensions discards the extension additions of ie when its
// extension bit was set.
func skipExtensions(c *per.Cursor, extended bool, ie string) error {
	if !extended {
		return c.Err()
	}
	n, err := per.SkipExtensionAdditions(c)
	if err != nil {
		return err
	}
	logDiscardedExtensions(ie, n)
	return nil
}

// unsupported records an UnsupportedVariantError on the cursor.
func unsupported(c *per.Cursor, kind string, v int) error {
	logUnsupported(kind, v)
	err := &UnsupportedVariantError{Kind: kind, Value: v}
	c.Fail(err)
	return err
}

// packCriticalExtensions writes the CHOICE { rN-IEs, criticalExtensionsFuture }
// wrapper of a message body, selecting rN-IEs.
func packCriticalExtensions(c *per.Cursor) {
	c.WriteBits(0, 1)
}

func unpackCriticalExtensions(c *per.Cursor, msg string) error {
	if c.ReadBool() {
		return unsupported(c, msg+" criticalExtensions", 1)
	}
	return c.Err()
}

// packC1 writes the criticalExtensions CHOICE with a c1 selector of
// width bits, selecting the first rN-IEs alternative.
func packC1(c *per.Cursor, width int) {
	c.WriteBits(0, 1)
	c.WriteBits(0, width)
}

func unpackC1(c *per.Cursor, width int, msg string) error {
	if c.ReadBool() {
		return unsupported(c, msg+" criticalExtensions", 1)
	}
	if v := int(c.ReadBits(width)); v != 0 {
		return unsupported(c, msg+" c1", v)
	}
	return c.Err()
}

// unpackNonCriticalExtension notes the trailing nonCriticalExtension of a
// message. Its content is left unread.
func unpackNonCriticalExtension(present bool, msg string) bool {
	if present {
		logIgnoredNonCriticalExtension(msg)
	}
	return present
}

func packEnum[E ~uint8](c *per.Cursor, v E, count int, extmark bool) {
	per.EncEnumerated(c, int(v), count, extmark)
}

func unpackEnum[E ~uint8](c *per.Cursor, count int, extmark bool) E {
	return E(per.DecEnumerated(c, count, extmark))
}

func packInt(c *per.Cursor, v, min, max int) {
	per.EncConstrainedWholeNumber(c, v, min, max)
}

func unpackInt(c *per.Cursor, min, max int) int {
	return per.DecConstrainedWholeNumber(c, min, max)
}
