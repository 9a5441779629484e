// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.5 MeasConfig
/*
MeasConfig ::=                      SEQUENCE {
    -- Measurement objects
    measObjectToRemoveList              MeasObjectToRemoveList          OPTIONAL,   -- Need ON
    measObjectToAddModList              MeasObjectToAddModList          OPTIONAL,   -- Need ON
    -- Reporting configurations
    reportConfigToRemoveList            ReportConfigToRemoveList        OPTIONAL,   -- Need ON
    reportConfigToAddModList            ReportConfigToAddModList        OPTIONAL,   -- Need ON
    -- Measurement identities
    measIdToRemoveList                  MeasIdToRemoveList              OPTIONAL,   -- Need ON
    measIdToAddModList                  MeasIdToAddModList              OPTIONAL,   -- Need ON
    -- Other parameters
    quantityConfig                      QuantityConfig                  OPTIONAL,   -- Need ON
    measGapConfig                       MeasGapConfig                   OPTIONAL,   -- Need ON
    s-Measure                           RSRP-Range                      OPTIONAL,   -- Need ON
    preRegistrationInfoHRPD             PreRegistrationInfoHRPD         OPTIONAL,   -- Need OP
    speedStatePars                      CHOICE {
        release                             NULL,
        setup                               SEQUENCE {
            mobilityStateParameters             MobilityStateParameters,
            timeToTrigger-SF                    SpeedStateScaleFactors
        }
    }                                                                   OPTIONAL,   -- Need ON
    ...
}

MeasObjectToRemoveList ::=          SEQUENCE (SIZE (1..maxObjectId)) OF MeasObjectId
MeasObjectToAddModList ::=          SEQUENCE (SIZE (1..maxObjectId)) OF MeasObjectToAddMod
ReportConfigToRemoveList ::=        SEQUENCE (SIZE (1..maxReportConfigId)) OF ReportConfigId
ReportConfigToAddModList ::=        SEQUENCE (SIZE (1..maxReportConfigId)) OF ReportConfigToAddMod
MeasIdToRemoveList ::=              SEQUENCE (SIZE (1..maxMeasId)) OF MeasId
MeasIdToAddModList ::=              SEQUENCE (SIZE (1..maxMeasId)) OF MeasIdToAddMod
*/
type MeasConfig struct {
	MeasObjectToRemoveList   []MeasObjectID
	MeasObjectToAddModList   []MeasObjectToAddMod
	ReportConfigToRemoveList []ReportConfigID
	ReportConfigToAddModList []ReportConfigToAddMod
	MeasIDToRemoveList       []MeasID
	MeasIDToAddModList       []MeasIDToAddMod
	QuantityConfig           *QuantityConfig
	MeasGapConfig            *MeasGapConfig
	SMeasure                 *RSRPRange
	PreRegistrationInfoHRPD  *PreRegistrationInfoHRPD
	SpeedStatePars           *SpeedStatePars
}

func (ie *MeasConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		len(ie.MeasObjectToRemoveList) != 0,
		len(ie.MeasObjectToAddModList) != 0,
		len(ie.ReportConfigToRemoveList) != 0,
		len(ie.ReportConfigToAddModList) != 0,
		len(ie.MeasIDToRemoveList) != 0,
		len(ie.MeasIDToAddModList) != 0,
		ie.QuantityConfig != nil,
		ie.MeasGapConfig != nil,
		ie.SMeasure != nil,
		ie.PreRegistrationInfoHRPD != nil,
		ie.SpeedStatePars != nil)

	var err error
	if len(ie.MeasObjectToRemoveList) != 0 {
		err = packList(c, ie.MeasObjectToRemoveList, 1, maxObjectID)
	}
	if err == nil && len(ie.MeasObjectToAddModList) != 0 {
		err = packList(c, ie.MeasObjectToAddModList, 1, maxObjectID)
	}
	if err == nil && len(ie.ReportConfigToRemoveList) != 0 {
		err = packList(c, ie.ReportConfigToRemoveList, 1, maxReportConfigID)
	}
	if err == nil && len(ie.ReportConfigToAddModList) != 0 {
		err = packList(c, ie.ReportConfigToAddModList, 1, maxReportConfigID)
	}
	if err == nil && len(ie.MeasIDToRemoveList) != 0 {
		err = packList(c, ie.MeasIDToRemoveList, 1, maxMeasID)
	}
	if err == nil && len(ie.MeasIDToAddModList) != 0 {
		err = packList(c, ie.MeasIDToAddModList, 1, maxMeasID)
	}
	if err != nil {
		return err
	}

	steps := []struct {
		present bool
		v       Packer
	}{
		{ie.QuantityConfig != nil, ie.QuantityConfig},
		{ie.MeasGapConfig != nil, ie.MeasGapConfig},
		{ie.SMeasure != nil, ie.SMeasure},
		{ie.PreRegistrationInfoHRPD != nil, ie.PreRegistrationInfoHRPD},
		{ie.SpeedStatePars != nil, ie.SpeedStatePars},
	}
	for _, s := range steps {
		if err := packOptional(c, s.present, s.v); err != nil {
			return err
		}
	}
	return c.Err()
}

func (ie *MeasConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasConfig{}
	var objRm, objAdd, repRm, repAdd, idRm, idAdd, qc, gap, sm, hrpd, speed bool
	ext := per.DecSequence(c, true, &objRm, &objAdd, &repRm, &repAdd,
		&idRm, &idAdd, &qc, &gap, &sm, &hrpd, &speed)

	var err error
	if objRm {
		if ie.MeasObjectToRemoveList, err =
			unpackList[MeasObjectID](c, 1, maxObjectID); err != nil {
			return err
		}
	}
	if objAdd {
		if ie.MeasObjectToAddModList, err =
			unpackList[MeasObjectToAddMod](c, 1, maxObjectID); err != nil {
			return err
		}
	}
	if repRm {
		if ie.ReportConfigToRemoveList, err =
			unpackList[ReportConfigID](c, 1, maxReportConfigID); err != nil {
			return err
		}
	}
	if repAdd {
		if ie.ReportConfigToAddModList, err =
			unpackList[ReportConfigToAddMod](c, 1, maxReportConfigID); err != nil {
			return err
		}
	}
	if idRm {
		if ie.MeasIDToRemoveList, err = unpackList[MeasID](c, 1, maxMeasID); err != nil {
			return err
		}
	}
	if idAdd {
		if ie.MeasIDToAddModList, err =
			unpackList[MeasIDToAddMod](c, 1, maxMeasID); err != nil {
			return err
		}
	}
	if ie.QuantityConfig, err = unpackOptional[QuantityConfig](c, qc); err != nil {
		return err
	}
	if ie.MeasGapConfig, err = unpackOptional[MeasGapConfig](c, gap); err != nil {
		return err
	}
	if ie.SMeasure, err = unpackOptional[RSRPRange](c, sm); err != nil {
		return err
	}
	if ie.PreRegistrationInfoHRPD, err =
		unpackOptional[PreRegistrationInfoHRPD](c, hrpd); err != nil {
		return err
	}
	if ie.SpeedStatePars, err = unpackOptional[SpeedStatePars](c, speed); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MeasConfig")
}

// SpeedStatePars is the speedStatePars CHOICE. A nil Setup is release.
type SpeedStatePars struct {
	Setup *SpeedStateParsSetup
}

type SpeedStateParsSetup struct {
	MobilityStateParameters MobilityStateParameters
	TimeToTriggerSF         SpeedStateScaleFactors
}

func (ie *SpeedStateParsSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.MobilityStateParameters.Pack(c); err != nil {
		return err
	}
	return ie.TimeToTriggerSF.Pack(c)
}

func (ie *SpeedStateParsSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.MobilityStateParameters.Unpack(c); err != nil {
		return err
	}
	return ie.TimeToTriggerSF.Unpack(c)
}

func (ie *SpeedStatePars) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *SpeedStatePars) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[SpeedStateParsSetup](c)
	return err
}

// MeasObjectType selects the measObject alternative.
type MeasObjectType uint8

const (
	MeasObjectTypeEUTRA MeasObjectType = iota
	MeasObjectTypeUTRA
	MeasObjectTypeGERAN
	MeasObjectTypeCDMA2000
)

// 6.3.5 MeasObjectToAddModList
/*
MeasObjectToAddMod ::=  SEQUENCE {
    measObjectId                MeasObjectId,
    measObject                  CHOICE {
        measObjectEUTRA             MeasObjectEUTRA,
        measObjectUTRA              MeasObjectUTRA,
        measObjectGERAN             MeasObjectGERAN,
        measObjectCDMA2000          MeasObjectCDMA2000,
        ...
    }
}
*/
type MeasObjectToAddMod struct {
	MeasObjectID MeasObjectID
	Type         MeasObjectType
	EUTRA        MeasObjectEUTRA
	UTRA         MeasObjectUTRA
	GERAN        MeasObjectGERAN
	CDMA2000     MeasObjectCDMA2000
}

func (ie *MeasObjectToAddMod) object() Packer {
	switch ie.Type {
	case MeasObjectTypeEUTRA:
		return &ie.EUTRA
	case MeasObjectTypeUTRA:
		return &ie.UTRA
	case MeasObjectTypeGERAN:
		return &ie.GERAN
	case MeasObjectTypeCDMA2000:
		return &ie.CDMA2000
	}
	return nil
}

func (ie *MeasObjectToAddMod) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	obj := ie.object()
	if obj == nil {
		return unsupported(c, "measObject", int(ie.Type))
	}
	if err := ie.MeasObjectID.Pack(c); err != nil {
		return err
	}
	per.EncChoice(c, int(ie.Type), 4, true)
	return obj.Pack(c)
}

func (ie *MeasObjectToAddMod) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasObjectToAddMod{}
	if err := ie.MeasObjectID.Unpack(c); err != nil {
		return err
	}
	idx, ext := per.DecChoice(c, 4, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext {
		return unsupported(c, "measObject", 4+idx)
	}
	ie.Type = MeasObjectType(idx)
	return ie.object().Unpack(c)
}

// 6.3.5 MeasObjectEUTRA
/*
MeasObjectEUTRA ::=                 SEQUENCE {
    carrierFreq                         ARFCN-ValueEUTRA,
    allowedMeasBandwidth                AllowedMeasBandwidth,
    presenceAntennaPort1                PresenceAntennaPort1,
    neighCellConfig                     NeighCellConfig,
    offsetFreq                          Q-OffsetRange               DEFAULT dB0,
    -- Neighbour cell list
    cellsToRemoveList                   CellIndexList               OPTIONAL,       -- Need ON
    cellsToAddModList                   CellsToAddModList           OPTIONAL,       -- Need ON
    -- Black list
    blackCellsToRemoveList              CellIndexList               OPTIONAL,       -- Need ON
    blackCellsToAddModList              BlackCellsToAddModList      OPTIONAL,       -- Need ON
    cellForWhichToReportCGI             PhysCellId                  OPTIONAL,       -- Need ON
    ...
}

CellIndexList ::=                   SEQUENCE (SIZE (1..maxCellMeas)) OF CellIndex
CellsToAddModList ::=               SEQUENCE (SIZE (1..maxCellMeas)) OF CellsToAddMod
BlackCellsToAddModList ::=          SEQUENCE (SIZE (1..maxCellMeas)) OF BlackCellsToAddMod
*/
// OffsetFreq is a pointer so that a dB0 entry round trips; nil means the
// DEFAULT.
type MeasObjectEUTRA struct {
	CarrierFreq             ARFCNValueEUTRA
	AllowedMeasBandwidth    AllowedMeasBandwidth
	PresenceAntennaPort1    bool
	NeighCellConfig         uint8
	OffsetFreq              *QOffsetRange
	CellsToRemoveList       []CellIndex
	CellsToAddModList       []CellsToAddMod
	BlackCellsToRemoveList  []CellIndex
	BlackCellsToAddModList  []BlackCellsToAddMod
	CellForWhichToReportCGI *PhysCellID
}

func (ie *MeasObjectEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	offset := differsFrom(ie.OffsetFreq, QOffsetDB0)
	per.EncSequence(c, true,
		offset,
		len(ie.CellsToRemoveList) != 0,
		len(ie.CellsToAddModList) != 0,
		len(ie.BlackCellsToRemoveList) != 0,
		len(ie.BlackCellsToAddModList) != 0,
		ie.CellForWhichToReportCGI != nil)
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	if err := ie.AllowedMeasBandwidth.Pack(c); err != nil {
		return err
	}
	c.WriteBool(ie.PresenceAntennaPort1)
	c.WriteBits(uint64(ie.NeighCellConfig), 2)
	if offset {
		if err := ie.OffsetFreq.Pack(c); err != nil {
			return err
		}
	}

	var err error
	if len(ie.CellsToRemoveList) != 0 {
		err = packList(c, ie.CellsToRemoveList, 1, maxCellMeas)
	}
	if err == nil && len(ie.CellsToAddModList) != 0 {
		err = packList(c, ie.CellsToAddModList, 1, maxCellMeas)
	}
	if err == nil && len(ie.BlackCellsToRemoveList) != 0 {
		err = packList(c, ie.BlackCellsToRemoveList, 1, maxCellMeas)
	}
	if err == nil && len(ie.BlackCellsToAddModList) != 0 {
		err = packList(c, ie.BlackCellsToAddModList, 1, maxCellMeas)
	}
	if err != nil {
		return err
	}
	return packOptional(c, ie.CellForWhichToReportCGI != nil,
		ie.CellForWhichToReportCGI)
}

func (ie *MeasObjectEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasObjectEUTRA{}
	var offset, cellRm, cellAdd, blackRm, blackAdd, cgi bool
	ext := per.DecSequence(c, true, &offset, &cellRm, &cellAdd,
		&blackRm, &blackAdd, &cgi)
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	if err := ie.AllowedMeasBandwidth.Unpack(c); err != nil {
		return err
	}
	ie.PresenceAntennaPort1 = c.ReadBool()
	ie.NeighCellConfig = uint8(c.ReadBits(2))

	var err error
	if ie.OffsetFreq, err = unpackOptional[QOffsetRange](c, offset); err != nil {
		return err
	}
	if cellRm {
		if ie.CellsToRemoveList, err = unpackList[CellIndex](c, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if cellAdd {
		if ie.CellsToAddModList, err =
			unpackList[CellsToAddMod](c, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if blackRm {
		if ie.BlackCellsToRemoveList, err =
			unpackList[CellIndex](c, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if blackAdd {
		if ie.BlackCellsToAddModList, err =
			unpackList[BlackCellsToAddMod](c, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if ie.CellForWhichToReportCGI, err = unpackOptional[PhysCellID](c, cgi); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MeasObjectEUTRA")
}

// 6.3.5 CellsToAddMod
/*
CellsToAddMod ::=                   SEQUENCE {
    cellIndex                           INTEGER (1..maxCellMeas),
    physCellId                          PhysCellId,
    cellIndividualOffset                Q-OffsetRange
}
*/
type CellsToAddMod struct {
	CellIndex            CellIndex
	PhysCellID           PhysCellID
	CellIndividualOffset QOffsetRange
}

func (ie *CellsToAddMod) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	for _, v := range []Packer{&ie.CellIndex, &ie.PhysCellID, &ie.CellIndividualOffset} {
		if err := v.Pack(c); err != nil {
			return err
		}
	}
	return nil
}

func (ie *CellsToAddMod) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	for _, v := range []Packer{&ie.CellIndex, &ie.PhysCellID, &ie.CellIndividualOffset} {
		if err := v.Unpack(c); err != nil {
			return err
		}
	}
	return nil
}

// BlackCellsToAddMod ::= SEQUENCE { cellIndex INTEGER (1..maxCellMeas),
// physCellIdRange PhysCellIdRange }
type BlackCellsToAddMod struct {
	CellIndex       CellIndex
	PhysCellIDRange PhysCellIDRange
}

func (ie *BlackCellsToAddMod) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CellIndex.Pack(c); err != nil {
		return err
	}
	return ie.PhysCellIDRange.Pack(c)
}

func (ie *BlackCellsToAddMod) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CellIndex.Unpack(c); err != nil {
		return err
	}
	return ie.PhysCellIDRange.Unpack(c)
}

// UTRAMode selects between the UTRA FDD and TDD alternatives.
type UTRAMode uint8

const (
	UTRAModeFDD UTRAMode = iota
	UTRAModeTDD
)

// 6.3.5 MeasObjectUTRA
/*
MeasObjectUTRA ::=                  SEQUENCE {
    carrierFreq                         ARFCN-ValueUTRA,
    offsetFreq                          Q-OffsetRangeInterRAT       DEFAULT 0,
    cellsToRemoveList                   CellIndexList               OPTIONAL,       -- Need ON
    cellsToAddModList                   CHOICE {
        cellsToAddModListUTRA-FDD           CellsToAddModListUTRA-FDD,
        cellsToAddModListUTRA-TDD           CellsToAddModListUTRA-TDD
    }                                                               OPTIONAL,       -- Need ON
    cellForWhichToReportCGI             CHOICE {
        utra-FDD                            PhysCellIdUTRA-FDD,
        utra-TDD                            PhysCellIdUTRA-TDD
    }                                                               OPTIONAL,       -- Need ON
    ...
}

CellsToAddModListUTRA-FDD ::=       SEQUENCE (SIZE (1..maxCellMeas)) OF CellsToAddModUTRA-FDD

CellsToAddModUTRA-FDD ::=           SEQUENCE {
    cellIndex                           INTEGER (1..maxCellMeas),
    physCellId                          PhysCellIdUTRA-FDD
}
*/
// A physical cell id of a UTRA cell is stored as uint16 for both modes; the
// list mode selects the width.
type MeasObjectUTRA struct {
	CarrierFreq       ARFCNValueUTRA
	OffsetFreq        QOffsetRangeInterRAT
	CellsToRemoveList []CellIndex
	CellsToAddModMode UTRAMode
	CellsToAddModList []CellsToAddModUTRA
	// CellForWhichToReportCGI is nil when absent.
	CellForWhichToReportCGI *PhysCellIDUTRA
}

type CellsToAddModUTRA struct {
	CellIndex  CellIndex
	PhysCellID uint16
}

// PhysCellIDUTRA ::= CHOICE { utra-FDD PhysCellIdUTRA-FDD, utra-TDD
// PhysCellIdUTRA-TDD }
type PhysCellIDUTRA struct {
	Mode       UTRAMode
	PhysCellID uint16
}

func packPhysCellIDUTRA(c *per.Cursor, mode UTRAMode, v uint16) error {
	switch mode {
	case UTRAModeFDD:
		packInt(c, int(v), 0, 511)
	case UTRAModeTDD:
		packInt(c, int(v), 0, 127)
	default:
		return unsupported(c, "PhysCellIdUTRA", int(mode))
	}
	return c.Err()
}

func unpackPhysCellIDUTRA(c *per.Cursor, mode UTRAMode) uint16 {
	if mode == UTRAModeFDD {
		return uint16(unpackInt(c, 0, 511))
	}
	return uint16(unpackInt(c, 0, 127))
}

func (ie *PhysCellIDUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncChoice(c, int(ie.Mode), 2, false)
	return packPhysCellIDUTRA(c, ie.Mode, ie.PhysCellID)
}

func (ie *PhysCellIDUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	idx, _ := per.DecChoice(c, 2, false)
	ie.Mode = UTRAMode(idx)
	ie.PhysCellID = unpackPhysCellIDUTRA(c, ie.Mode)
	return c.Err()
}

func (ie *MeasObjectUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		ie.OffsetFreq != 0,
		len(ie.CellsToRemoveList) != 0,
		len(ie.CellsToAddModList) != 0,
		ie.CellForWhichToReportCGI != nil)
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	if ie.OffsetFreq != 0 {
		if err := ie.OffsetFreq.Pack(c); err != nil {
			return err
		}
	}
	if len(ie.CellsToRemoveList) != 0 {
		if err := packList(c, ie.CellsToRemoveList, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if len(ie.CellsToAddModList) != 0 {
		if ie.CellsToAddModMode > UTRAModeTDD {
			return unsupported(c, "cellsToAddModList", int(ie.CellsToAddModMode))
		}
		per.EncChoice(c, int(ie.CellsToAddModMode), 2, false)
		per.EncSequenceOf(c, len(ie.CellsToAddModList), 1, maxCellMeas)
		for _, cell := range ie.CellsToAddModList {
			if err := cell.CellIndex.Pack(c); err != nil {
				return err
			}
			if err := packPhysCellIDUTRA(c, ie.CellsToAddModMode, cell.PhysCellID); err != nil {
				return err
			}
		}
	}
	return packOptional(c, ie.CellForWhichToReportCGI != nil,
		ie.CellForWhichToReportCGI)
}

func (ie *MeasObjectUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasObjectUTRA{}
	var offset, cellRm, cellAdd, cgi bool
	ext := per.DecSequence(c, true, &offset, &cellRm, &cellAdd, &cgi)
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	if offset {
		if err := ie.OffsetFreq.Unpack(c); err != nil {
			return err
		}
	}
	var err error
	if cellRm {
		if ie.CellsToRemoveList, err = unpackList[CellIndex](c, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if cellAdd {
		idx, _ := per.DecChoice(c, 2, false)
		ie.CellsToAddModMode = UTRAMode(idx)
		n := per.DecSequenceOf(c, 1, maxCellMeas)
		if err := c.Err(); err != nil {
			return err
		}
		ie.CellsToAddModList = make([]CellsToAddModUTRA, n)
		for i := range ie.CellsToAddModList {
			cell := &ie.CellsToAddModList[i]
			if err := cell.CellIndex.Unpack(c); err != nil {
				return err
			}
			cell.PhysCellID = unpackPhysCellIDUTRA(c, ie.CellsToAddModMode)
		}
	}
	if ie.CellForWhichToReportCGI, err = unpackOptional[PhysCellIDUTRA](c, cgi); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MeasObjectUTRA")
}

// 6.3.5 MeasObjectGERAN
/*
MeasObjectGERAN ::=                 SEQUENCE {
    carrierFreqs                        CarrierFreqsGERAN,
    offsetFreq                          Q-OffsetRangeInterRAT       DEFAULT 0,
    ncc-Permitted                       BIT STRING(SIZE (8))        DEFAULT '11111111'B,
    cellForWhichToReportCGI             PhysCellIdGERAN             OPTIONAL,       -- Need ON
    ...
}
*/
// NCCPermitted is a pointer so that an explicit '11111111'B is kept apart
// from the DEFAULT; nil is the DEFAULT.
type MeasObjectGERAN struct {
	CarrierFreqs            CarrierFreqsGERAN
	OffsetFreq              QOffsetRangeInterRAT
	NCCPermitted            *uint8
	CellForWhichToReportCGI *PhysCellIDGERAN
}

const defaultNCCPermitted = 0xff

func (ie *MeasObjectGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ncc := differsFrom(ie.NCCPermitted, defaultNCCPermitted)
	per.EncSequence(c, true, ie.OffsetFreq != 0, ncc, ie.CellForWhichToReportCGI != nil)
	if err := ie.CarrierFreqs.Pack(c); err != nil {
		return err
	}
	if ie.OffsetFreq != 0 {
		if err := ie.OffsetFreq.Pack(c); err != nil {
			return err
		}
	}
	if ncc {
		c.WriteBits(uint64(*ie.NCCPermitted), 8)
	}
	return packOptional(c, ie.CellForWhichToReportCGI != nil,
		ie.CellForWhichToReportCGI)
}

func (ie *MeasObjectGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasObjectGERAN{}
	var offset, ncc, cgi bool
	ext := per.DecSequence(c, true, &offset, &ncc, &cgi)
	if err := ie.CarrierFreqs.Unpack(c); err != nil {
		return err
	}
	if offset {
		if err := ie.OffsetFreq.Unpack(c); err != nil {
			return err
		}
	}
	if ncc {
		v := uint8(c.ReadBits(8))
		ie.NCCPermitted = &v
	}
	var err error
	if ie.CellForWhichToReportCGI, err = unpackOptional[PhysCellIDGERAN](c, cgi); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MeasObjectGERAN")
}

// 6.3.5 MeasObjectCDMA2000
/*
MeasObjectCDMA2000 ::=              SEQUENCE {
    cdma2000-Type                       CDMA2000-Type,
    carrierFreq                         CarrierFreqCDMA2000,
    searchWindowSize                    INTEGER (0..15)                 OPTIONAL,   -- Need ON
    offsetFreq                          Q-OffsetRangeInterRAT           DEFAULT 0,
    cellsToRemoveList                   CellIndexList                   OPTIONAL,   -- Need ON
    cellsToAddModList                   CellsToAddModListCDMA2000       OPTIONAL,   -- Need ON
    cellForWhichToReportCGI             PhysCellIdCDMA2000              OPTIONAL,   -- Need ON
    ...
}

CellsToAddModCDMA2000 ::=   SEQUENCE {
    cellIndex                   INTEGER (1..maxCellMeas),
    physCellId                  PhysCellIdCDMA2000
}
*/
type MeasObjectCDMA2000 struct {
	CDMA2000Type            CDMA2000Type
	CarrierFreq             CarrierFreqCDMA2000
	SearchWindowSize        *uint8
	OffsetFreq              QOffsetRangeInterRAT
	CellsToRemoveList       []CellIndex
	CellsToAddModList       []CellsToAddModCDMA2000
	CellForWhichToReportCGI *PhysCellIDCDMA2000
}

type CellsToAddModCDMA2000 struct {
	CellIndex  CellIndex
	PhysCellID PhysCellIDCDMA2000
}

func (ie *CellsToAddModCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CellIndex.Pack(c); err != nil {
		return err
	}
	return ie.PhysCellID.Pack(c)
}

func (ie *CellsToAddModCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CellIndex.Unpack(c); err != nil {
		return err
	}
	return ie.PhysCellID.Unpack(c)
}

func (ie *MeasObjectCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		ie.SearchWindowSize != nil,
		ie.OffsetFreq != 0,
		len(ie.CellsToRemoveList) != 0,
		len(ie.CellsToAddModList) != 0,
		ie.CellForWhichToReportCGI != nil)
	if err := ie.CDMA2000Type.Pack(c); err != nil {
		return err
	}
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	if ie.SearchWindowSize != nil {
		packInt(c, int(*ie.SearchWindowSize), 0, 15)
	}
	if ie.OffsetFreq != 0 {
		if err := ie.OffsetFreq.Pack(c); err != nil {
			return err
		}
	}
	if len(ie.CellsToRemoveList) != 0 {
		if err := packList(c, ie.CellsToRemoveList, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if len(ie.CellsToAddModList) != 0 {
		if err := packList(c, ie.CellsToAddModList, 1, maxCellMeas); err != nil {
			return err
		}
	}
	return packOptional(c, ie.CellForWhichToReportCGI != nil,
		ie.CellForWhichToReportCGI)
}

func (ie *MeasObjectCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasObjectCDMA2000{}
	var window, offset, cellRm, cellAdd, cgi bool
	ext := per.DecSequence(c, true, &window, &offset, &cellRm, &cellAdd, &cgi)
	if err := ie.CDMA2000Type.Unpack(c); err != nil {
		return err
	}
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	if window {
		v := uint8(unpackInt(c, 0, 15))
		ie.SearchWindowSize = &v
	}
	if offset {
		if err := ie.OffsetFreq.Unpack(c); err != nil {
			return err
		}
	}
	var err error
	if cellRm {
		if ie.CellsToRemoveList, err = unpackList[CellIndex](c, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if cellAdd {
		if ie.CellsToAddModList, err =
			unpackList[CellsToAddModCDMA2000](c, 1, maxCellMeas); err != nil {
			return err
		}
	}
	if ie.CellForWhichToReportCGI, err =
		unpackOptional[PhysCellIDCDMA2000](c, cgi); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MeasObjectCDMA2000")
}

// 6.3.5 MeasIdToAddModList
/*
MeasIdToAddMod ::=  SEQUENCE {
    measId                      MeasId,
    measObjectId                MeasObjectId,
    reportConfigId              ReportConfigId
}
*/
type MeasIDToAddMod struct {
	MeasID         MeasID
	MeasObjectID   MeasObjectID
	ReportConfigID ReportConfigID
}

func (ie *MeasIDToAddMod) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	for _, v := range []Packer{&ie.MeasID, &ie.MeasObjectID, &ie.ReportConfigID} {
		if err := v.Pack(c); err != nil {
			return err
		}
	}
	return nil
}

func (ie *MeasIDToAddMod) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	for _, v := range []Packer{&ie.MeasID, &ie.MeasObjectID, &ie.ReportConfigID} {
		if err := v.Unpack(c); err != nil {
			return err
		}
	}
	return nil
}

// 6.3.5 QuantityConfig
/*
QuantityConfig ::=                  SEQUENCE {
    quantityConfigEUTRA                 QuantityConfigEUTRA     OPTIONAL,   -- Need ON
    quantityConfigUTRA                  QuantityConfigUTRA      OPTIONAL,   -- Need ON
    quantityConfigGERAN                 QuantityConfigGERAN     OPTIONAL,   -- Need ON
    quantityConfigCDMA2000              QuantityConfigCDMA2000  OPTIONAL,   -- Need ON
    ...
}

QuantityConfigEUTRA ::=             SEQUENCE {
    filterCoefficientRSRP               FilterCoefficient       DEFAULT fc4,
    filterCoefficientRSRQ               FilterCoefficient       DEFAULT fc4
}

QuantityConfigUTRA ::=              SEQUENCE {
    measQuantityUTRA-FDD                ENUMERATED {cpich-RSCP, cpich-EcN0},
    measQuantityUTRA-TDD                ENUMERATED {pccpch-RSCP},
    filterCoefficient                   FilterCoefficient       DEFAULT fc4
}

QuantityConfigGERAN ::=             SEQUENCE {
    measQuantityGERAN                   ENUMERATED {rssi},
    filterCoefficient                   FilterCoefficient       DEFAULT fc2
}

QuantityConfigCDMA2000 ::=          SEQUENCE {
    measQuantityCDMA2000                ENUMERATED {pilotStrength, pilotPnPhaseAndPilotStrength}
}
*/
// A nil filter coefficient is its DEFAULT.
type QuantityConfig struct {
	EUTRA    *QuantityConfigEUTRA
	UTRA     *QuantityConfigUTRA
	GERAN    *QuantityConfigGERAN
	CDMA2000 *QuantityConfigCDMA2000
}

type QuantityConfigEUTRA struct {
	FilterCoefficientRSRP *FilterCoefficient
	FilterCoefficientRSRQ *FilterCoefficient
}

type QuantityConfigUTRA struct {
	MeasQuantityUTRAFDD uint8
	FilterCoefficient   *FilterCoefficient
}

type QuantityConfigGERAN struct {
	FilterCoefficient *FilterCoefficient
}

type QuantityConfigCDMA2000 struct {
	MeasQuantityCDMA2000 uint8
}

func (ie *QuantityConfigEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	rsrp := differsFrom(ie.FilterCoefficientRSRP, FilterCoefficientFC4)
	rsrq := differsFrom(ie.FilterCoefficientRSRQ, FilterCoefficientFC4)
	per.EncSequence(c, false, rsrp, rsrq)
	if err := packOptional(c, rsrp, ie.FilterCoefficientRSRP); err != nil {
		return err
	}
	return packOptional(c, rsrq, ie.FilterCoefficientRSRQ)
}

func (ie *QuantityConfigEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = QuantityConfigEUTRA{}
	var rsrp, rsrq bool
	per.DecSequence(c, false, &rsrp, &rsrq)
	var err error
	if ie.FilterCoefficientRSRP, err = unpackOptional[FilterCoefficient](c, rsrp); err != nil {
		return err
	}
	ie.FilterCoefficientRSRQ, err = unpackOptional[FilterCoefficient](c, rsrq)
	return err
}

func (ie *QuantityConfigUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	fc := differsFrom(ie.FilterCoefficient, FilterCoefficientFC4)
	per.EncSequence(c, false, fc)
	packEnum(c, ie.MeasQuantityUTRAFDD, 2, false)
	// measQuantityUTRA-TDD has a single value and takes no bits.
	return packOptional(c, fc, ie.FilterCoefficient)
}

func (ie *QuantityConfigUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = QuantityConfigUTRA{}
	var fc bool
	per.DecSequence(c, false, &fc)
	ie.MeasQuantityUTRAFDD = unpackEnum[uint8](c, 2, false)
	var err error
	ie.FilterCoefficient, err = unpackOptional[FilterCoefficient](c, fc)
	return err
}

func (ie *QuantityConfigGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	fc := differsFrom(ie.FilterCoefficient, FilterCoefficientFC2)
	per.EncSequence(c, false, fc)
	return packOptional(c, fc, ie.FilterCoefficient)
}

func (ie *QuantityConfigGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = QuantityConfigGERAN{}
	var fc bool
	per.DecSequence(c, false, &fc)
	var err error
	ie.FilterCoefficient, err = unpackOptional[FilterCoefficient](c, fc)
	return err
}

func (ie *QuantityConfigCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.MeasQuantityCDMA2000, 2, false)
	return c.Err()
}

func (ie *QuantityConfigCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.MeasQuantityCDMA2000 = unpackEnum[uint8](c, 2, false)
	return c.Err()
}

func (ie *QuantityConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.EUTRA != nil, ie.UTRA != nil,
		ie.GERAN != nil, ie.CDMA2000 != nil)
	if err := packOptional(c, ie.EUTRA != nil, ie.EUTRA); err != nil {
		return err
	}
	if err := packOptional(c, ie.UTRA != nil, ie.UTRA); err != nil {
		return err
	}
	if err := packOptional(c, ie.GERAN != nil, ie.GERAN); err != nil {
		return err
	}
	return packOptional(c, ie.CDMA2000 != nil, ie.CDMA2000)
}

func (ie *QuantityConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = QuantityConfig{}
	var eutra, utra, geran, cdma bool
	ext := per.DecSequence(c, true, &eutra, &utra, &geran, &cdma)
	var err error
	if ie.EUTRA, err = unpackOptional[QuantityConfigEUTRA](c, eutra); err != nil {
		return err
	}
	if ie.UTRA, err = unpackOptional[QuantityConfigUTRA](c, utra); err != nil {
		return err
	}
	if ie.GERAN, err = unpackOptional[QuantityConfigGERAN](c, geran); err != nil {
		return err
	}
	if ie.CDMA2000, err = unpackOptional[QuantityConfigCDMA2000](c, cdma); err != nil {
		return err
	}
	return skipExtensions(c, ext, "QuantityConfig")
}

// GapPattern selects the gapOffset alternative.
type GapPattern uint8

const (
	GapPatternGP0 GapPattern = iota
	GapPatternGP1
)

// 6.3.5 MeasGapConfig
/*
MeasGapConfig ::=                   CHOICE {
    release                             NULL,
    setup                               SEQUENCE {
        gapOffset                           CHOICE {
                gp0                                 INTEGER (0..39),
                gp1                                 INTEGER (0..79),
                ...
        }
    }
}
*/
// A nil Setup is release.
type MeasGapConfig struct {
	Setup *MeasGapConfigSetup
}

type MeasGapConfigSetup struct {
	Pattern   GapPattern
	GapOffset uint8
}

func (ie *MeasGapConfigSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	switch ie.Pattern {
	case GapPatternGP0:
		per.EncChoice(c, 0, 2, true)
		packInt(c, int(ie.GapOffset), 0, 39)
	case GapPatternGP1:
		per.EncChoice(c, 1, 2, true)
		packInt(c, int(ie.GapOffset), 0, 79)
	default:
		return unsupported(c, "gapOffset", int(ie.Pattern))
	}
	return c.Err()
}

func (ie *MeasGapConfigSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	idx, ext := per.DecChoice(c, 2, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext {
		return unsupported(c, "gapOffset", 2+idx)
	}
	ie.Pattern = GapPattern(idx)
	if ie.Pattern == GapPatternGP0 {
		ie.GapOffset = uint8(unpackInt(c, 0, 39))
	} else {
		ie.GapOffset = uint8(unpackInt(c, 0, 79))
	}
	return c.Err()
}

func (ie *MeasGapConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *MeasGapConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[MeasGapConfigSetup](c)
	return err
}

// 6.3.5 PreRegistrationInfoHRPD
/*
PreRegistrationInfoHRPD ::=         SEQUENCE {
    preRegistrationAllowed              BOOLEAN,
    preRegistrationZoneId               PreRegistrationZoneIdHRPD   OPTIONAL,   -- cond PreRegAllowed
    secondaryPreRegistrationZoneIdList  SecondaryPreRegistrationZoneIdListHRPD  OPTIONAL    -- Need OR
}

SecondaryPreRegistrationZoneIdListHRPD ::=  SEQUENCE (SIZE (1..2)) OF PreRegistrationZoneIdHRPD

PreRegistrationZoneIdHRPD ::=       INTEGER (0..255)
*/
type PreRegistrationInfoHRPD struct {
	PreRegistrationAllowed             bool
	PreRegistrationZoneID              *uint8
	SecondaryPreRegistrationZoneIDList []uint8
}

func (ie *PreRegistrationInfoHRPD) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.PreRegistrationZoneID != nil,
		len(ie.SecondaryPreRegistrationZoneIDList) != 0)
	c.WriteBool(ie.PreRegistrationAllowed)
	if ie.PreRegistrationZoneID != nil {
		packInt(c, int(*ie.PreRegistrationZoneID), 0, 255)
	}
	if len(ie.SecondaryPreRegistrationZoneIDList) != 0 {
		per.EncSequenceOf(c, len(ie.SecondaryPreRegistrationZoneIDList), 1, 2)
		for _, z := range ie.SecondaryPreRegistrationZoneIDList {
			packInt(c, int(z), 0, 255)
		}
	}
	return c.Err()
}

func (ie *PreRegistrationInfoHRPD) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PreRegistrationInfoHRPD{}
	var zone, secondary bool
	per.DecSequence(c, false, &zone, &secondary)
	ie.PreRegistrationAllowed = c.ReadBool()
	if zone {
		v := uint8(unpackInt(c, 0, 255))
		ie.PreRegistrationZoneID = &v
	}
	if secondary {
		n := per.DecSequenceOf(c, 1, 2)
		if err := c.Err(); err != nil {
			return err
		}
		ie.SecondaryPreRegistrationZoneIDList = make([]uint8, n)
		for i := range ie.SecondaryPreRegistrationZoneIDList {
			ie.SecondaryPreRegistrationZoneIDList[i] = uint8(unpackInt(c, 0, 255))
		}
	}
	return c.Err()
}
