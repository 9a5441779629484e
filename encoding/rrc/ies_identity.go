// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// MCCAbsent is the PLMNIdentity.MCC value for an omitted MCC.
const MCCAbsent = 0xffff

// 6.3.4 PLMN-Identity
/*
PLMN-Identity ::=                   SEQUENCE {
    mcc                                 MCC                             OPTIONAL,   -- Cond MCC
    mnc                                 MNC
}

MCC ::=                             SEQUENCE (SIZE (3)) OF MCC-MNC-Digit
MNC ::=                             SEQUENCE (SIZE (2..3)) OF MCC-MNC-Digit
MCC-MNC-Digit ::=                   INTEGER (0..9)
*/
// The MCC is held as 0xF followed by its three digits, e.g. 0xF262 for 262.
// A two digit MNC is held as 0xFF followed by two digits (0xFF01) and a
// three digit MNC as 0xF followed by three digits (0xF001).
type PLMNIdentity struct {
	MCC uint16
	MNC uint16
}

func (ie *PLMNIdentity) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	mccPresent := ie.MCC != MCCAbsent
	per.EncSequence(c, false, mccPresent)
	if mccPresent {
		packDigits(c, uint32(ie.MCC), 3)
	}
	if ie.MNC>>8 == 0xff {
		per.EncSequenceOf(c, 2, 2, 3)
		packDigits(c, uint32(ie.MNC), 2)
	} else {
		per.EncSequenceOf(c, 3, 2, 3)
		packDigits(c, uint32(ie.MNC), 3)
	}
	return c.Err()
}

func (ie *PLMNIdentity) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PLMNIdentity{MCC: MCCAbsent}
	var mccPresent bool
	per.DecSequence(c, false, &mccPresent)
	if mccPresent {
		ie.MCC = 0xf000 | uint16(unpackDigits(c, 3))
	}
	if n := per.DecSequenceOf(c, 2, 3); n == 2 {
		ie.MNC = 0xff00 | uint16(unpackDigits(c, 2))
	} else {
		ie.MNC = 0xf000 | uint16(unpackDigits(c, 3))
	}
	return c.Err()
}

// packDigits writes the n low nibbles of v as MCC-MNC-Digit values,
// most significant first.
func packDigits(c *per.Cursor, v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		packInt(c, int(v>>uint(4*i)&0xf), 0, 9)
	}
}

func unpackDigits(c *per.Cursor, n int) (v uint32) {
	for i := 0; i < n; i++ {
		v = v<<4 | uint32(unpackInt(c, 0, 9))
	}
	return
}

// CellIdentity ::= BIT STRING (SIZE (28))
type CellIdentity uint32

func (ie *CellIdentity) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(*ie), 28)
	return c.Err()
}

func (ie *CellIdentity) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CellIdentity(c.ReadBits(28))
	return c.Err()
}

// TrackingAreaCode ::= BIT STRING (SIZE (16))
type TrackingAreaCode uint16

func (ie *TrackingAreaCode) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(*ie), 16)
	return c.Err()
}

func (ie *TrackingAreaCode) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = TrackingAreaCode(c.ReadBits(16))
	return c.Err()
}

// CSGIdentity ::= BIT STRING (SIZE (27))
type CSGIdentity uint32

func (ie *CSGIdentity) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(*ie), 27)
	return c.Err()
}

func (ie *CSGIdentity) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CSGIdentity(c.ReadBits(27))
	return c.Err()
}

// PhysCellID ::= INTEGER (0..503)
type PhysCellID uint16

func (ie *PhysCellID) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 503)
	return c.Err()
}

func (ie *PhysCellID) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PhysCellID(unpackInt(c, 0, 503))
	return c.Err()
}

// PhysCellRange is the range component of PhysCellIdRange.
type PhysCellRange uint8

const (
	PhysCellRangeN4 PhysCellRange = iota
	PhysCellRangeN8
	PhysCellRangeN12
	PhysCellRangeN16
	PhysCellRangeN24
	PhysCellRangeN32
	PhysCellRangeN48
	PhysCellRangeN64
	PhysCellRangeN84
	PhysCellRangeN96
	PhysCellRangeN128
	PhysCellRangeN168
	PhysCellRangeN252
	PhysCellRangeN504
)

// 6.3.4 PhysCellIdRange
/*
PhysCellIdRange ::=                 SEQUENCE {
    start                               PhysCellId,
    range                               ENUMERATED {
                                            n4, n8, n12, n16, n24, n32, n48, n64, n84,
                                            n96, n128, n168, n252, n504, spare2,
                                            spare1}         OPTIONAL    -- Need OP
}
*/
type PhysCellIDRange struct {
	Start PhysCellID
	Range *PhysCellRange
}

func (ie *PhysCellIDRange) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.Range != nil)
	if err := ie.Start.Pack(c); err != nil {
		return err
	}
	if ie.Range != nil {
		packEnum(c, *ie.Range, 16, false)
	}
	return c.Err()
}

func (ie *PhysCellIDRange) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PhysCellIDRange{}
	var rangePresent bool
	per.DecSequence(c, false, &rangePresent)
	if err := ie.Start.Unpack(c); err != nil {
		return err
	}
	if rangePresent {
		r := unpackEnum[PhysCellRange](c, 16, false)
		ie.Range = &r
	}
	return c.Err()
}

// PhysCellIDUTRAFDD ::= INTEGER (0..511)
type PhysCellIDUTRAFDD uint16

func (ie *PhysCellIDUTRAFDD) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 511)
	return c.Err()
}

func (ie *PhysCellIDUTRAFDD) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PhysCellIDUTRAFDD(unpackInt(c, 0, 511))
	return c.Err()
}

// PhysCellIDUTRATDD ::= INTEGER (0..127)
type PhysCellIDUTRATDD uint8

func (ie *PhysCellIDUTRATDD) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 127)
	return c.Err()
}

func (ie *PhysCellIDUTRATDD) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PhysCellIDUTRATDD(unpackInt(c, 0, 127))
	return c.Err()
}

// 6.3.4 PhysCellIdGERAN
/*
PhysCellIdGERAN ::=                 SEQUENCE {
    networkColourCode                   BIT STRING (SIZE (3)),
    baseStationColourCode               BIT STRING (SIZE (3))
}
*/
type PhysCellIDGERAN struct {
	NetworkColourCode     uint8
	BaseStationColourCode uint8
}

func (ie *PhysCellIDGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(ie.NetworkColourCode), 3)
	c.WriteBits(uint64(ie.BaseStationColourCode), 3)
	return c.Err()
}

func (ie *PhysCellIDGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.NetworkColourCode = uint8(c.ReadBits(3))
	ie.BaseStationColourCode = uint8(c.ReadBits(3))
	return c.Err()
}

// PhysCellIDCDMA2000 ::= INTEGER (0..maxPNOffset)
type PhysCellIDCDMA2000 uint16

func (ie *PhysCellIDCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, maxPNOffset)
	return c.Err()
}

func (ie *PhysCellIDCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PhysCellIDCDMA2000(unpackInt(c, 0, maxPNOffset))
	return c.Err()
}

// CRNTI ::= BIT STRING (SIZE (16))
type CRNTI uint16

func (ie *CRNTI) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(*ie), 16)
	return c.Err()
}

func (ie *CRNTI) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CRNTI(c.ReadBits(16))
	return c.Err()
}

// ShortMACI ::= BIT STRING (SIZE (16))
type ShortMACI uint16

func (ie *ShortMACI) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(*ie), 16)
	return c.Err()
}

func (ie *ShortMACI) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ShortMACI(c.ReadBits(16))
	return c.Err()
}

// 6.3.6 S-TMSI
/*
S-TMSI ::=                          SEQUENCE {
    mmec                                MMEC,
    m-TMSI                              BIT STRING (SIZE (32))
}

MMEC ::=                            BIT STRING (SIZE (8))
*/
type STMSI struct {
	MMEC  uint8
	MTMSI uint32
}

func (ie *STMSI) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(ie.MMEC), 8)
	c.WriteBits(uint64(ie.MTMSI), 32)
	return c.Err()
}

func (ie *STMSI) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.MMEC = uint8(c.ReadBits(8))
	ie.MTMSI = uint32(c.ReadBits(32))
	return c.Err()
}

// 6.3.6 IMSI
/*
IMSI ::=                            SEQUENCE (SIZE (6..21)) OF IMSI-Digit

IMSI-Digit ::=                      INTEGER (0..9)
*/
// IMSI holds one decimal digit per element.
type IMSI []uint8

func (ie *IMSI) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequenceOf(c, len(*ie), 6, 21)
	for _, d := range *ie {
		packInt(c, int(d), 0, 9)
	}
	return c.Err()
}

func (ie *IMSI) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	n := per.DecSequenceOf(c, 6, 21)
	if err := c.Err(); err != nil {
		*ie = nil
		return err
	}
	digits := make(IMSI, n)
	for i := range digits {
		digits[i] = uint8(unpackInt(c, 0, 9))
	}
	*ie = digits
	return c.Err()
}

// InitialUEIdentityChoice selects the InitialUE-Identity alternative.
type InitialUEIdentityChoice uint8

const (
	InitialUEIdentitySTMSI InitialUEIdentityChoice = iota
	InitialUEIdentityRandomValue
)

// 6.2.2 InitialUE-Identity
/*
InitialUE-Identity ::=              CHOICE {
    s-TMSI                              S-TMSI,
    randomValue                         BIT STRING (SIZE (40))
}
*/
type InitialUEIdentity struct {
	Choice      InitialUEIdentityChoice
	STMSI       STMSI
	RandomValue uint64
}

func (ie *InitialUEIdentity) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	switch ie.Choice {
	case InitialUEIdentitySTMSI:
		per.EncChoice(c, 0, 2, false)
		return ie.STMSI.Pack(c)
	case InitialUEIdentityRandomValue:
		per.EncChoice(c, 1, 2, false)
		c.WriteBits(ie.RandomValue, 40)
		return c.Err()
	}
	return unsupported(c, "InitialUE-Identity", int(ie.Choice))
}

func (ie *InitialUEIdentity) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = InitialUEIdentity{}
	idx, _ := per.DecChoice(c, 2, false)
	ie.Choice = InitialUEIdentityChoice(idx)
	if ie.Choice == InitialUEIdentitySTMSI {
		return ie.STMSI.Unpack(c)
	}
	ie.RandomValue = c.ReadBits(40)
	return c.Err()
}

// PagingUEIdentityChoice selects the PagingUE-Identity alternative.
type PagingUEIdentityChoice uint8

const (
	PagingUEIdentitySTMSI PagingUEIdentityChoice = iota
	PagingUEIdentityIMSI
)

// 6.2.2 PagingUE-Identity
/*
PagingUE-Identity ::=               CHOICE {
    s-TMSI                              S-TMSI,
    imsi                                IMSI,
    ...
}
*/
type PagingUEIdentity struct {
	Choice PagingUEIdentityChoice
	STMSI  STMSI
	IMSI   IMSI
}

func (ie *PagingUEIdentity) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	switch ie.Choice {
	case PagingUEIdentitySTMSI:
		per.EncChoice(c, 0, 2, true)
		return ie.STMSI.Pack(c)
	case PagingUEIdentityIMSI:
		per.EncChoice(c, 1, 2, true)
		return ie.IMSI.Pack(c)
	}
	return unsupported(c, "PagingUE-Identity", int(ie.Choice))
}

func (ie *PagingUEIdentity) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PagingUEIdentity{}
	idx, ext := per.DecChoice(c, 2, true)
	if ext {
		return unsupported(c, "PagingUE-Identity", 2+idx)
	}
	ie.Choice = PagingUEIdentityChoice(idx)
	if ie.Choice == PagingUEIdentitySTMSI {
		return ie.STMSI.Unpack(c)
	}
	return ie.IMSI.Unpack(c)
}

// 6.3.4 CellGlobalIdEUTRA
/*
CellGlobalIdEUTRA ::=               SEQUENCE {
    plmn-Identity                       PLMN-Identity,
    cellIdentity                        CellIdentity
}
*/
type CellGlobalIDEUTRA struct {
	PLMNIdentity PLMNIdentity
	CellIdentity CellIdentity
}

func (ie *CellGlobalIDEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Pack(c); err != nil {
		return err
	}
	return ie.CellIdentity.Pack(c)
}

func (ie *CellGlobalIDEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Unpack(c); err != nil {
		return err
	}
	return ie.CellIdentity.Unpack(c)
}

// 6.3.4 CellGlobalIdUTRA
/*
CellGlobalIdUTRA ::=                SEQUENCE {
    plmn-Identity                       PLMN-Identity,
    cellIdentity                        BIT STRING (SIZE (28))
}
*/
type CellGlobalIDUTRA struct {
	PLMNIdentity PLMNIdentity
	CellIdentity uint32
}

func (ie *CellGlobalIDUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Pack(c); err != nil {
		return err
	}
	c.WriteBits(uint64(ie.CellIdentity), 28)
	return c.Err()
}

func (ie *CellGlobalIDUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Unpack(c); err != nil {
		return err
	}
	ie.CellIdentity = uint32(c.ReadBits(28))
	return c.Err()
}

// 6.3.4 CellGlobalIdGERAN
/*
CellGlobalIdGERAN ::=               SEQUENCE {
    plmn-Identity                       PLMN-Identity,
    locationAreaCode                    BIT STRING (SIZE (16)),
    cellIdentity                        BIT STRING (SIZE (16))
}
*/
type CellGlobalIDGERAN struct {
	PLMNIdentity     PLMNIdentity
	LocationAreaCode uint16
	CellIdentity     uint16
}

func (ie *CellGlobalIDGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Pack(c); err != nil {
		return err
	}
	c.WriteBits(uint64(ie.LocationAreaCode), 16)
	c.WriteBits(uint64(ie.CellIdentity), 16)
	return c.Err()
}

func (ie *CellGlobalIDGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Unpack(c); err != nil {
		return err
	}
	ie.LocationAreaCode = uint16(c.ReadBits(16))
	ie.CellIdentity = uint16(c.ReadBits(16))
	return c.Err()
}

// CellGlobalIDCDMA2000Choice selects the CellGlobalIdCDMA2000 alternative.
type CellGlobalIDCDMA2000Choice uint8

const (
	CellGlobalID1XRTT CellGlobalIDCDMA2000Choice = iota
	CellGlobalIDHRPD
)

// 6.3.4 CellGlobalIdCDMA2000
/*
CellGlobalIdCDMA2000 ::=            CHOICE {
    cellGlobalId1XRTT                   BIT STRING (SIZE (47)),
    cellGlobalIdHRPD                    BIT STRING (SIZE (128))
}
*/
type CellGlobalIDCDMA2000 struct {
	Choice  CellGlobalIDCDMA2000Choice
	OneXRTT uint64
	HRPD    [16]byte
}

func (ie *CellGlobalIDCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	switch ie.Choice {
	case CellGlobalID1XRTT:
		per.EncChoice(c, 0, 2, false)
		c.WriteBits(ie.OneXRTT, 47)
	case CellGlobalIDHRPD:
		per.EncChoice(c, 1, 2, false)
		c.WriteBytes(ie.HRPD[:])
	default:
		return unsupported(c, "CellGlobalIdCDMA2000", int(ie.Choice))
	}
	return c.Err()
}

func (ie *CellGlobalIDCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CellGlobalIDCDMA2000{}
	idx, _ := per.DecChoice(c, 2, false)
	ie.Choice = CellGlobalIDCDMA2000Choice(idx)
	if ie.Choice == CellGlobalID1XRTT {
		ie.OneXRTT = c.ReadBits(47)
		return c.Err()
	}
	copy(ie.HRPD[:], c.ReadBytes(16))
	return c.Err()
}

// 6.2.2 RegisteredMME
/*
RegisteredMME ::=                   SEQUENCE {
    plmn-Identity                       PLMN-Identity           OPTIONAL,
    mmegi                               BIT STRING (SIZE (16)),
    mmec                                MMEC
}
*/
type RegisteredMME struct {
	PLMNIdentity *PLMNIdentity
	MMEGI        uint16
	MMEC         uint8
}

func (ie *RegisteredMME) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.PLMNIdentity != nil)
	if err := packOptional(c, ie.PLMNIdentity != nil, ie.PLMNIdentity); err != nil {
		return err
	}
	c.WriteBits(uint64(ie.MMEGI), 16)
	c.WriteBits(uint64(ie.MMEC), 8)
	return c.Err()
}

func (ie *RegisteredMME) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RegisteredMME{}
	var plmnPresent bool
	per.DecSequence(c, false, &plmnPresent)
	var err error
	if ie.PLMNIdentity, err = unpackOptional[PLMNIdentity](c, plmnPresent); err != nil {
		return err
	}
	ie.MMEGI = uint16(c.ReadBits(16))
	ie.MMEC = uint8(c.ReadBits(8))
	return c.Err()
}
