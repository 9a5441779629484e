// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// ARFCNValueEUTRA ::= INTEGER (0..maxEARFCN)
type ARFCNValueEUTRA uint16

func (ie *ARFCNValueEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, maxEARFCN)
	return c.Err()
}

func (ie *ARFCNValueEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ARFCNValueEUTRA(unpackInt(c, 0, maxEARFCN))
	return c.Err()
}

// ARFCNValueUTRA ::= INTEGER (0..16383)
type ARFCNValueUTRA uint16

func (ie *ARFCNValueUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 16383)
	return c.Err()
}

func (ie *ARFCNValueUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ARFCNValueUTRA(unpackInt(c, 0, 16383))
	return c.Err()
}

// ARFCNValueGERAN ::= INTEGER (0..1023)
type ARFCNValueGERAN uint16

func (ie *ARFCNValueGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 1023)
	return c.Err()
}

func (ie *ARFCNValueGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ARFCNValueGERAN(unpackInt(c, 0, 1023))
	return c.Err()
}

// ARFCNValueCDMA2000 ::= INTEGER (0..2047)
type ARFCNValueCDMA2000 uint16

func (ie *ARFCNValueCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 2047)
	return c.Err()
}

func (ie *ARFCNValueCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ARFCNValueCDMA2000(unpackInt(c, 0, 2047))
	return c.Err()
}

// BandclassCDMA2000 is ENUMERATED { bc0, ..., bc17, spare14, ..., spare1, ... }.
// The value is the band class number.
type BandclassCDMA2000 uint8

func (ie *BandclassCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 32, true)
	return c.Err()
}

func (ie *BandclassCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[BandclassCDMA2000](c, 32, true)
	return c.Err()
}

// BandIndicatorGERAN ::= ENUMERATED {dcs1800, pcs1900}
type BandIndicatorGERAN uint8

const (
	BandIndicatorDCS1800 BandIndicatorGERAN = iota
	BandIndicatorPCS1900
)

// 6.3.4 CarrierFreqGERAN
/*
CarrierFreqGERAN ::=                SEQUENCE {
    arfcn                               ARFCN-ValueGERAN,
    bandIndicator                       BandIndicatorGERAN
}
*/
type CarrierFreqGERAN struct {
	ARFCN         ARFCNValueGERAN
	BandIndicator BandIndicatorGERAN
}

func (ie *CarrierFreqGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.ARFCN.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.BandIndicator, 2, false)
	return c.Err()
}

func (ie *CarrierFreqGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.ARFCN.Unpack(c); err != nil {
		return err
	}
	ie.BandIndicator = unpackEnum[BandIndicatorGERAN](c, 2, false)
	return c.Err()
}

// FollowingARFCNsChoice selects the followingARFCNs alternative.
type FollowingARFCNsChoice uint8

const (
	FollowingARFCNsExplicitList FollowingARFCNsChoice = iota
	FollowingARFCNsEquallySpaced
	FollowingARFCNsVariableBitMap
)

// 6.3.4 CarrierFreqsGERAN
/*
CarrierFreqsGERAN ::=               SEQUENCE {
    startingARFCN                       ARFCN-ValueGERAN,
    bandIndicator                       BandIndicatorGERAN,
    followingARFCNs                     CHOICE {
        explicitListOfARFCNs                ExplicitListOfARFCNs,
        equallySpacedARFCNs                 SEQUENCE {
            arfcn-Spacing                       INTEGER (1..8),
            numberOfFollowingARFCNs             INTEGER (0..31)
        },
        variableBitMapOfARFCNs              OCTET STRING (SIZE (1..16))
    }
}

ExplicitListOfARFCNs ::=            SEQUENCE (SIZE (0..31)) OF ARFCN-ValueGERAN
*/
type CarrierFreqsGERAN struct {
	StartingARFCN           ARFCNValueGERAN
	BandIndicator           BandIndicatorGERAN
	Choice                  FollowingARFCNsChoice
	ExplicitListOfARFCNs    []ARFCNValueGERAN
	ARFCNSpacing            uint8
	NumberOfFollowingARFCNs uint8
	VariableBitMapOfARFCNs  []byte
}

func (ie *CarrierFreqsGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.StartingARFCN.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.BandIndicator, 2, false)
	switch ie.Choice {
	case FollowingARFCNsExplicitList:
		per.EncChoice(c, 0, 3, false)
		per.EncSequenceOf(c, len(ie.ExplicitListOfARFCNs), 0, 31)
		for i := range ie.ExplicitListOfARFCNs {
			if err := ie.ExplicitListOfARFCNs[i].Pack(c); err != nil {
				return err
			}
		}
	case FollowingARFCNsEquallySpaced:
		per.EncChoice(c, 1, 3, false)
		packInt(c, int(ie.ARFCNSpacing), 1, 8)
		packInt(c, int(ie.NumberOfFollowingARFCNs), 0, 31)
	case FollowingARFCNsVariableBitMap:
		per.EncChoice(c, 2, 3, false)
		per.EncBoundedOctetString(c, ie.VariableBitMapOfARFCNs, 1, 16)
	default:
		return unsupported(c, "followingARFCNs", int(ie.Choice))
	}
	return c.Err()
}

func (ie *CarrierFreqsGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CarrierFreqsGERAN{}
	if err := ie.StartingARFCN.Unpack(c); err != nil {
		return err
	}
	ie.BandIndicator = unpackEnum[BandIndicatorGERAN](c, 2, false)
	idx, _ := per.DecChoice(c, 3, false)
	ie.Choice = FollowingARFCNsChoice(idx)
	switch ie.Choice {
	case FollowingARFCNsExplicitList:
		n := per.DecSequenceOf(c, 0, 31)
		if err := c.Err(); err != nil || n == 0 {
			return err
		}
		ie.ExplicitListOfARFCNs = make([]ARFCNValueGERAN, n)
		for i := range ie.ExplicitListOfARFCNs {
			if err := ie.ExplicitListOfARFCNs[i].Unpack(c); err != nil {
				return err
			}
		}
	case FollowingARFCNsEquallySpaced:
		ie.ARFCNSpacing = uint8(unpackInt(c, 1, 8))
		ie.NumberOfFollowingARFCNs = uint8(unpackInt(c, 0, 31))
	case FollowingARFCNsVariableBitMap:
		ie.VariableBitMapOfARFCNs = per.DecBoundedOctetString(c, 1, 16)
	default:
		return unsupported(c, "followingARFCNs", idx)
	}
	return c.Err()
}

// 6.3.4 CarrierFreqCDMA2000
/*
CarrierFreqCDMA2000 ::=             SEQUENCE {
    bandClass                           BandclassCDMA2000,
    arfcn                               ARFCN-ValueCDMA2000
}
*/
type CarrierFreqCDMA2000 struct {
	BandClass BandclassCDMA2000
	ARFCN     ARFCNValueCDMA2000
}

func (ie *CarrierFreqCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.BandClass.Pack(c); err != nil {
		return err
	}
	return ie.ARFCN.Pack(c)
}

func (ie *CarrierFreqCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.BandClass.Unpack(c); err != nil {
		return err
	}
	return ie.ARFCN.Unpack(c)
}

// 6.3.4 CarrierFreqEUTRA
/*
CarrierFreqEUTRA ::=                SEQUENCE {
    dl-CarrierFreq                      ARFCN-ValueEUTRA,
    ul-CarrierFreq                      ARFCN-ValueEUTRA        OPTIONAL    -- Cond FDD
}
*/
type CarrierFreqEUTRA struct {
	DLCarrierFreq ARFCNValueEUTRA
	ULCarrierFreq *ARFCNValueEUTRA
}

func (ie *CarrierFreqEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.ULCarrierFreq != nil)
	if err := ie.DLCarrierFreq.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.ULCarrierFreq != nil, ie.ULCarrierFreq)
}

func (ie *CarrierFreqEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CarrierFreqEUTRA{}
	var ulPresent bool
	per.DecSequence(c, false, &ulPresent)
	if err := ie.DLCarrierFreq.Unpack(c); err != nil {
		return err
	}
	var err error
	ie.ULCarrierFreq, err = unpackOptional[ARFCNValueEUTRA](c, ulPresent)
	return err
}

// Bandwidth is the ENUMERATED { n6, n15, n25, n50, n75, n100 } transmission
// bandwidth in resource blocks, used by the MIB (3 bits), freqInfo and
// CarrierBandwidthEUTRA (4 bits with spares).
type Bandwidth uint8

const (
	BandwidthN6 Bandwidth = iota
	BandwidthN15
	BandwidthN25
	BandwidthN50
	BandwidthN75
	BandwidthN100
)

// 6.3.4 CarrierBandwidthEUTRA
/*
CarrierBandwidthEUTRA ::=           SEQUENCE {
    dl-Bandwidth                        ENUMERATED {
                                            n6, n15, n25, n50, n75, n100, spare10,
                                            spare9, spare8, spare7, spare6, spare5,
                                            spare4, spare3, spare2, spare1},
    ul-Bandwidth                        ENUMERATED {...}        OPTIONAL    -- Need OP
}
*/
type CarrierBandwidthEUTRA struct {
	DLBandwidth Bandwidth
	ULBandwidth *Bandwidth
}

func (ie *CarrierBandwidthEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.ULBandwidth != nil)
	packEnum(c, ie.DLBandwidth, 16, false)
	if ie.ULBandwidth != nil {
		packEnum(c, *ie.ULBandwidth, 16, false)
	}
	return c.Err()
}

func (ie *CarrierBandwidthEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CarrierBandwidthEUTRA{}
	var ulPresent bool
	per.DecSequence(c, false, &ulPresent)
	ie.DLBandwidth = unpackEnum[Bandwidth](c, 16, false)
	if ulPresent {
		ul := unpackEnum[Bandwidth](c, 16, false)
		ie.ULBandwidth = &ul
	}
	return c.Err()
}
