// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.6 SystemTimeInfoCDMA2000
/*
SystemTimeInfoCDMA2000 ::=          SEQUENCE {
    cdma-EUTRA-Synchronisation          BOOLEAN,
    cdma-SystemTime                     CHOICE {
        synchronousSystemTime               BIT STRING (SIZE (39)),
        asynchronousSystemTime              BIT STRING (SIZE (49))
    }
}
*/
type SystemTimeInfoCDMA2000 struct {
	CDMAEUTRASynchronisation bool
	// Asynchronous selects the 49 bit asynchronousSystemTime, otherwise the
	// 39 bit synchronousSystemTime is sent.
	Asynchronous bool
	SystemTime   uint64
}

func (ie *SystemTimeInfoCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBool(ie.CDMAEUTRASynchronisation)
	if ie.Asynchronous {
		per.EncChoice(c, 1, 2, false)
		c.WriteBits(ie.SystemTime, 49)
	} else {
		per.EncChoice(c, 0, 2, false)
		c.WriteBits(ie.SystemTime, 39)
	}
	return c.Err()
}

func (ie *SystemTimeInfoCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.CDMAEUTRASynchronisation = c.ReadBool()
	idx, _ := per.DecChoice(c, 2, false)
	ie.Asynchronous = idx == 1
	if ie.Asynchronous {
		ie.SystemTime = c.ReadBits(49)
	} else {
		ie.SystemTime = c.ReadBits(39)
	}
	return c.Err()
}

// 6.3.6 CSFB-RegistrationParam1XRTT
/*
CSFB-RegistrationParam1XRTT ::=     SEQUENCE {
    sid                                 BIT STRING (SIZE (15)),
    nid                                 BIT STRING (SIZE (16)),
    multipleSID                         BOOLEAN,
    multipleNID                         BOOLEAN,
    homeReg                             BOOLEAN,
    foreignSIDReg                       BOOLEAN,
    foreignNIDReg                       BOOLEAN,
    parameterReg                        BOOLEAN,
    powerUpReg                          BOOLEAN,
    registrationPeriod                  BIT STRING (SIZE (7)),
    registrationZone                    BIT STRING (SIZE (12)),
    totalZone                           BIT STRING (SIZE (3)),
    zoneTimer                           BIT STRING (SIZE (3))
}
*/
type CSFBRegistrationParam1XRTT struct {
	SID                uint16
	NID                uint16
	MultipleSID        bool
	MultipleNID        bool
	HomeReg            bool
	ForeignSIDReg      bool
	ForeignNIDReg      bool
	ParameterReg       bool
	PowerUpReg         bool
	RegistrationPeriod uint8
	RegistrationZone   uint16
	TotalZone          uint8
	ZoneTimer          uint8
}

func (ie *CSFBRegistrationParam1XRTT) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(ie.SID), 15)
	c.WriteBits(uint64(ie.NID), 16)
	for _, b := range []bool{ie.MultipleSID, ie.MultipleNID, ie.HomeReg,
		ie.ForeignSIDReg, ie.ForeignNIDReg, ie.ParameterReg, ie.PowerUpReg} {
		c.WriteBool(b)
	}
	c.WriteBits(uint64(ie.RegistrationPeriod), 7)
	c.WriteBits(uint64(ie.RegistrationZone), 12)
	c.WriteBits(uint64(ie.TotalZone), 3)
	c.WriteBits(uint64(ie.ZoneTimer), 3)
	return c.Err()
}

func (ie *CSFBRegistrationParam1XRTT) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.SID = uint16(c.ReadBits(15))
	ie.NID = uint16(c.ReadBits(16))
	for _, b := range []*bool{&ie.MultipleSID, &ie.MultipleNID, &ie.HomeReg,
		&ie.ForeignSIDReg, &ie.ForeignNIDReg, &ie.ParameterReg, &ie.PowerUpReg} {
		*b = c.ReadBool()
	}
	ie.RegistrationPeriod = uint8(c.ReadBits(7))
	ie.RegistrationZone = uint16(c.ReadBits(12))
	ie.TotalZone = uint8(c.ReadBits(3))
	ie.ZoneTimer = uint8(c.ReadBits(3))
	return c.Err()
}

// 6.3.6 CellReselectionParametersCDMA2000
/*
CellReselectionParametersCDMA2000 ::=   SEQUENCE {
    bandClassList                       BandClassListCDMA2000,
    neighCellList                       NeighCellListCDMA2000,
    t-ReselectionCDMA2000               T-Reselection,
    t-ReselectionCDMA2000-SF            SpeedStateScaleFactors      OPTIONAL    -- Need OP
}

BandClassListCDMA2000 ::=           SEQUENCE (SIZE (1..maxCDMA-BandClass)) OF BandClassInfoCDMA2000

NeighCellListCDMA2000 ::=           SEQUENCE (SIZE (1..16)) OF NeighCellCDMA2000
*/
type CellReselectionParametersCDMA2000 struct {
	BandClassList          []BandClassInfoCDMA2000
	NeighCellList          []NeighCellCDMA2000
	TReselectionCDMA2000   TReselection
	TReselectionCDMA2000SF *SpeedStateScaleFactors
}

// maxNeighCellsCDMA2000 bounds the neighbour lists of
// CellReselectionParametersCDMA2000.
const maxNeighCellsCDMA2000 = 16

func (ie *CellReselectionParametersCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.TReselectionCDMA2000SF != nil)
	if err := packList(c, ie.BandClassList, 1, maxCDMABandClass); err != nil {
		return err
	}
	if err := packList(c, ie.NeighCellList, 1, maxNeighCellsCDMA2000); err != nil {
		return err
	}
	if err := ie.TReselectionCDMA2000.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.TReselectionCDMA2000SF != nil, ie.TReselectionCDMA2000SF)
}

func (ie *CellReselectionParametersCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CellReselectionParametersCDMA2000{}
	var sf bool
	per.DecSequence(c, false, &sf)
	var err error
	if ie.BandClassList, err =
		unpackList[BandClassInfoCDMA2000](c, 1, maxCDMABandClass); err != nil {
		return err
	}
	if ie.NeighCellList, err =
		unpackList[NeighCellCDMA2000](c, 1, maxNeighCellsCDMA2000); err != nil {
		return err
	}
	if err := ie.TReselectionCDMA2000.Unpack(c); err != nil {
		return err
	}
	ie.TReselectionCDMA2000SF, err = unpackOptional[SpeedStateScaleFactors](c, sf)
	return err
}

// 6.3.6 BandClassInfoCDMA2000
/*
BandClassInfoCDMA2000 ::=   SEQUENCE {
    bandClass                   BandclassCDMA2000,
    cellReselectionPriority     CellReselectionPriority         OPTIONAL,   -- Need OP
    threshX-High                INTEGER (0..63),
    threshX-Low                 INTEGER (0..63),
    ...
}
*/
type BandClassInfoCDMA2000 struct {
	BandClass               BandclassCDMA2000
	CellReselectionPriority *CellReselectionPriority
	ThreshXHigh             uint8
	ThreshXLow              uint8
}

func (ie *BandClassInfoCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.CellReselectionPriority != nil)
	if err := ie.BandClass.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.CellReselectionPriority != nil,
		ie.CellReselectionPriority); err != nil {
		return err
	}
	packInt(c, int(ie.ThreshXHigh), 0, 63)
	packInt(c, int(ie.ThreshXLow), 0, 63)
	return c.Err()
}

func (ie *BandClassInfoCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = BandClassInfoCDMA2000{}
	var prio bool
	ext := per.DecSequence(c, true, &prio)
	if err := ie.BandClass.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.CellReselectionPriority, err =
		unpackOptional[CellReselectionPriority](c, prio); err != nil {
		return err
	}
	ie.ThreshXHigh = uint8(unpackInt(c, 0, 63))
	ie.ThreshXLow = uint8(unpackInt(c, 0, 63))
	return skipExtensions(c, ext, "BandClassInfoCDMA2000")
}

/*
NeighCellCDMA2000 ::=   SEQUENCE {
    bandClass               BandclassCDMA2000,
    neighCellsPerFreqList   NeighCellsPerBandclassListCDMA2000
}

NeighCellsPerBandclassListCDMA2000 ::=  SEQUENCE (SIZE (1..16)) OF NeighCellsPerBandclassCDMA2000

NeighCellsPerBandclassCDMA2000 ::=      SEQUENCE {
    arfcn                                   ARFCN-ValueCDMA2000,
    physCellIdList                          PhysCellIdListCDMA2000
}

PhysCellIdListCDMA2000 ::=              SEQUENCE (SIZE (1..16)) OF PhysCellIdCDMA2000
*/
type NeighCellCDMA2000 struct {
	BandClass             BandclassCDMA2000
	NeighCellsPerFreqList []NeighCellsPerBandclassCDMA2000
}

type NeighCellsPerBandclassCDMA2000 struct {
	ARFCN          ARFCNValueCDMA2000
	PhysCellIDList []PhysCellIDCDMA2000
}

func (ie *NeighCellCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.BandClass.Pack(c); err != nil {
		return err
	}
	return packList(c, ie.NeighCellsPerFreqList, 1, maxNeighCellsCDMA2000)
}

func (ie *NeighCellCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.BandClass.Unpack(c); err != nil {
		return err
	}
	var err error
	ie.NeighCellsPerFreqList, err =
		unpackList[NeighCellsPerBandclassCDMA2000](c, 1, maxNeighCellsCDMA2000)
	return err
}

func (ie *NeighCellsPerBandclassCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.ARFCN.Pack(c); err != nil {
		return err
	}
	return packList(c, ie.PhysCellIDList, 1, maxNeighCellsCDMA2000)
}

func (ie *NeighCellsPerBandclassCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.ARFCN.Unpack(c); err != nil {
		return err
	}
	var err error
	ie.PhysCellIDList, err = unpackList[PhysCellIDCDMA2000](c, 1, maxNeighCellsCDMA2000)
	return err
}
