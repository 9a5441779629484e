// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.2 PhysicalConfigDedicated
/*
PhysicalConfigDedicated ::=         SEQUENCE {
    pdsch-ConfigDedicated               PDSCH-ConfigDedicated           OPTIONAL,   -- Need ON
    pucch-ConfigDedicated               PUCCH-ConfigDedicated           OPTIONAL,   -- Need ON
    pusch-ConfigDedicated               PUSCH-ConfigDedicated           OPTIONAL,   -- Need ON
    uplinkPowerControlDedicated         UplinkPowerControlDedicated     OPTIONAL,   -- Need ON
    tpc-PDCCH-ConfigPUCCH               TPC-PDCCH-Config                OPTIONAL,   -- Need ON
    tpc-PDCCH-ConfigPUSCH               TPC-PDCCH-Config                OPTIONAL,   -- Need ON
    cqi-ReportConfig                    CQI-ReportConfig                OPTIONAL,   -- Cond CQI-r8
    soundingRS-UL-ConfigDedicated       SoundingRS-UL-ConfigDedicated   OPTIONAL,   -- Need ON
    antennaInfo                         CHOICE {
        explicitValue                       AntennaInfoDedicated,
        defaultValue                        NULL
    }                                                                   OPTIONAL,   -- Cond AI-r8
    schedulingRequestConfig             SchedulingRequestConfig         OPTIONAL,   -- Need ON
    ...
}
*/
type PhysicalConfigDedicated struct {
	PDSCHConfigDedicated        *PDSCHConfigDedicated
	PUCCHConfigDedicated        *PUCCHConfigDedicated
	PUSCHConfigDedicated        *PUSCHConfigDedicated
	UplinkPowerControlDedicated *UplinkPowerControlDedicated
	TPCPDCCHConfigPUCCH         *TPCPDCCHConfig
	TPCPDCCHConfigPUSCH         *TPCPDCCHConfig
	CQIReportConfig             *CQIReportConfig
	SoundingRSULConfigDedicated *SoundingRSULConfigDedicated
	AntennaInfo                 *AntennaInfoDedicated
	AntennaInfoDefault          bool
	SchedulingRequestConfig     *SchedulingRequestConfig
}

func (ie *PhysicalConfigDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	antenna := ie.AntennaInfo != nil || ie.AntennaInfoDefault
	per.EncSequence(c, true,
		ie.PDSCHConfigDedicated != nil,
		ie.PUCCHConfigDedicated != nil,
		ie.PUSCHConfigDedicated != nil,
		ie.UplinkPowerControlDedicated != nil,
		ie.TPCPDCCHConfigPUCCH != nil,
		ie.TPCPDCCHConfigPUSCH != nil,
		ie.CQIReportConfig != nil,
		ie.SoundingRSULConfigDedicated != nil,
		antenna,
		ie.SchedulingRequestConfig != nil)

	steps := []struct {
		present bool
		v       Packer
	}{
		{ie.PDSCHConfigDedicated != nil, ie.PDSCHConfigDedicated},
		{ie.PUCCHConfigDedicated != nil, ie.PUCCHConfigDedicated},
		{ie.PUSCHConfigDedicated != nil, ie.PUSCHConfigDedicated},
		{ie.UplinkPowerControlDedicated != nil, ie.UplinkPowerControlDedicated},
		{ie.TPCPDCCHConfigPUCCH != nil, ie.TPCPDCCHConfigPUCCH},
		{ie.TPCPDCCHConfigPUSCH != nil, ie.TPCPDCCHConfigPUSCH},
		{ie.CQIReportConfig != nil, ie.CQIReportConfig},
		{ie.SoundingRSULConfigDedicated != nil, ie.SoundingRSULConfigDedicated},
	}
	for _, s := range steps {
		if err := packOptional(c, s.present, s.v); err != nil {
			return err
		}
	}
	if antenna {
		if err := packExplicitDefault(c, ie.AntennaInfo != nil,
			ie.AntennaInfo); err != nil {
			return err
		}
	}
	return packOptional(c, ie.SchedulingRequestConfig != nil,
		ie.SchedulingRequestConfig)
}

func (ie *PhysicalConfigDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PhysicalConfigDedicated{}
	var pdsch, pucch, pusch, ulpc, tpcPUCCH, tpcPUSCH, cqi, srs, antenna, sr bool
	ext := per.DecSequence(c, true, &pdsch, &pucch, &pusch, &ulpc,
		&tpcPUCCH, &tpcPUSCH, &cqi, &srs, &antenna, &sr)

	var err error
	if ie.PDSCHConfigDedicated, err =
		unpackOptional[PDSCHConfigDedicated](c, pdsch); err != nil {
		return err
	}
	if ie.PUCCHConfigDedicated, err =
		unpackOptional[PUCCHConfigDedicated](c, pucch); err != nil {
		return err
	}
	if ie.PUSCHConfigDedicated, err =
		unpackOptional[PUSCHConfigDedicated](c, pusch); err != nil {
		return err
	}
	if ie.UplinkPowerControlDedicated, err =
		unpackOptional[UplinkPowerControlDedicated](c, ulpc); err != nil {
		return err
	}
	if ie.TPCPDCCHConfigPUCCH, err =
		unpackOptional[TPCPDCCHConfig](c, tpcPUCCH); err != nil {
		return err
	}
	if ie.TPCPDCCHConfigPUSCH, err =
		unpackOptional[TPCPDCCHConfig](c, tpcPUSCH); err != nil {
		return err
	}
	if ie.CQIReportConfig, err = unpackOptional[CQIReportConfig](c, cqi); err != nil {
		return err
	}
	if ie.SoundingRSULConfigDedicated, err =
		unpackOptional[SoundingRSULConfigDedicated](c, srs); err != nil {
		return err
	}
	if antenna {
		ie.AntennaInfo, ie.AntennaInfoDefault, err =
			unpackExplicitDefault[AntennaInfoDedicated](c)
		if err != nil {
			return err
		}
	}
	if ie.SchedulingRequestConfig, err =
		unpackOptional[SchedulingRequestConfig](c, sr); err != nil {
		return err
	}
	return skipExtensions(c, ext, "PhysicalConfigDedicated")
}

// PDSCHConfigDedicated holds p-a, ENUMERATED {dB-6, dB-4dot77, dB-3,
// dB-1dot77, dB0, dB1, dB2, dB3}.
type PDSCHConfigDedicated struct {
	PA uint8
}

func (ie *PDSCHConfigDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.PA, 8, false)
	return c.Err()
}

func (ie *PDSCHConfigDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.PA = unpackEnum[uint8](c, 8, false)
	return c.Err()
}

// 6.3.2 PUCCH-ConfigDedicated
/*
PUCCH-ConfigDedicated ::=           SEQUENCE {
    ackNackRepetition                   CHOICE{
        release                             NULL,
        setup                               SEQUENCE {
            repetitionFactor                    ENUMERATED {n2, n4, n6, spare1},
            n1PUCCH-AN-Rep                      INTEGER (0..2047)
        }
    },
    tdd-AckNackFeedbackMode             ENUMERATED {bundling, multiplexing} OPTIONAL    -- Cond TDD
}
*/
// A nil AckNackRepetition is the release alternative.
type PUCCHConfigDedicated struct {
	AckNackRepetition  *AckNackRepetition
	TDDAckNackFeedback *uint8
}

type AckNackRepetition struct {
	RepetitionFactor uint8
	N1PUCCHANRep     uint16
}

func (ie *AckNackRepetition) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.RepetitionFactor, 4, false)
	packInt(c, int(ie.N1PUCCHANRep), 0, 2047)
	return c.Err()
}

func (ie *AckNackRepetition) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.RepetitionFactor = unpackEnum[uint8](c, 4, false)
	ie.N1PUCCHANRep = uint16(unpackInt(c, 0, 2047))
	return c.Err()
}

func (ie *PUCCHConfigDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.TDDAckNackFeedback != nil)
	if err := packSetupRelease(c, ie.AckNackRepetition != nil,
		ie.AckNackRepetition); err != nil {
		return err
	}
	if ie.TDDAckNackFeedback != nil {
		packEnum(c, *ie.TDDAckNackFeedback, 2, false)
	}
	return c.Err()
}

func (ie *PUCCHConfigDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PUCCHConfigDedicated{}
	var tdd bool
	per.DecSequence(c, false, &tdd)
	var err error
	if ie.AckNackRepetition, err = unpackSetupRelease[AckNackRepetition](c); err != nil {
		return err
	}
	if tdd {
		v := unpackEnum[uint8](c, 2, false)
		ie.TDDAckNackFeedback = &v
	}
	return c.Err()
}

// 6.3.2 PUSCH-ConfigDedicated
/*
PUSCH-ConfigDedicated ::=           SEQUENCE {
    betaOffset-ACK-Index                INTEGER (0..15),
    betaOffset-RI-Index                 INTEGER (0..15),
    betaOffset-CQI-Index                INTEGER (0..15)
}
*/
type PUSCHConfigDedicated struct {
	BetaOffsetACKIndex uint8
	BetaOffsetRIIndex  uint8
	BetaOffsetCQIIndex uint8
}

func (ie *PUSCHConfigDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(ie.BetaOffsetACKIndex), 0, 15)
	packInt(c, int(ie.BetaOffsetRIIndex), 0, 15)
	packInt(c, int(ie.BetaOffsetCQIIndex), 0, 15)
	return c.Err()
}

func (ie *PUSCHConfigDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.BetaOffsetACKIndex = uint8(unpackInt(c, 0, 15))
	ie.BetaOffsetRIIndex = uint8(unpackInt(c, 0, 15))
	ie.BetaOffsetCQIIndex = uint8(unpackInt(c, 0, 15))
	return c.Err()
}

// 6.3.2 UplinkPowerControlDedicated
/*
UplinkPowerControlDedicated ::=     SEQUENCE {
    p0-UE-PUSCH                         INTEGER (-8..7),
    deltaMCS-Enabled                    ENUMERATED {en0, en1},
    accumulationEnabled                 BOOLEAN,
    p0-UE-PUCCH                         INTEGER (-8..7),
    pSRS-Offset                         INTEGER (0..15),
    filterCoefficient                   FilterCoefficient   DEFAULT fc4
}
*/
// A nil FilterCoefficient is the DEFAULT fc4.
type UplinkPowerControlDedicated struct {
	P0UEPUSCH           int
	DeltaMCSEnabled     uint8
	AccumulationEnabled bool
	P0UEPUCCH           int
	PSRSOffset          uint8
	FilterCoefficient   *FilterCoefficient
}

func (ie *UplinkPowerControlDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	fc := differsFrom(ie.FilterCoefficient, FilterCoefficientFC4)
	per.EncSequence(c, false, fc)
	packInt(c, ie.P0UEPUSCH, -8, 7)
	packEnum(c, ie.DeltaMCSEnabled, 2, false)
	c.WriteBool(ie.AccumulationEnabled)
	packInt(c, ie.P0UEPUCCH, -8, 7)
	packInt(c, int(ie.PSRSOffset), 0, 15)
	return packOptional(c, fc, ie.FilterCoefficient)
}

func (ie *UplinkPowerControlDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = UplinkPowerControlDedicated{}
	var fc bool
	per.DecSequence(c, false, &fc)
	ie.P0UEPUSCH = unpackInt(c, -8, 7)
	ie.DeltaMCSEnabled = unpackEnum[uint8](c, 2, false)
	ie.AccumulationEnabled = c.ReadBool()
	ie.P0UEPUCCH = unpackInt(c, -8, 7)
	ie.PSRSOffset = uint8(unpackInt(c, 0, 15))
	var err error
	ie.FilterCoefficient, err = unpackOptional[FilterCoefficient](c, fc)
	return err
}

// TPCIndexChoice selects the TPC-Index alternative.
type TPCIndexChoice uint8

const (
	TPCIndexOfFormat3 TPCIndexChoice = iota
	TPCIndexOfFormat3A
)

// 6.3.2 TPC-PDCCH-Config
/*
TPC-PDCCH-Config ::=                CHOICE {
    release                             NULL,
    setup                               SEQUENCE {
        tpc-RNTI                            BIT STRING (SIZE (16)),
        tpc-Index                           TPC-Index
    }
}

TPC-Index ::=                       CHOICE {
    indexOfFormat3                      INTEGER (1..15),
    indexOfFormat3A                     INTEGER (1..31)
}
*/
// A nil Setup is release.
type TPCPDCCHConfig struct {
	Setup *TPCPDCCHConfigSetup
}

type TPCPDCCHConfigSetup struct {
	TPCRNTI    uint16
	TPCIndex   TPCIndexChoice
	IndexValue uint8
}

func (ie *TPCPDCCHConfigSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBits(uint64(ie.TPCRNTI), 16)
	switch ie.TPCIndex {
	case TPCIndexOfFormat3:
		per.EncChoice(c, 0, 2, false)
		packInt(c, int(ie.IndexValue), 1, 15)
	case TPCIndexOfFormat3A:
		per.EncChoice(c, 1, 2, false)
		packInt(c, int(ie.IndexValue), 1, 31)
	default:
		return unsupported(c, "TPC-Index", int(ie.TPCIndex))
	}
	return c.Err()
}

func (ie *TPCPDCCHConfigSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.TPCRNTI = uint16(c.ReadBits(16))
	idx, _ := per.DecChoice(c, 2, false)
	ie.TPCIndex = TPCIndexChoice(idx)
	if ie.TPCIndex == TPCIndexOfFormat3 {
		ie.IndexValue = uint8(unpackInt(c, 1, 15))
	} else {
		ie.IndexValue = uint8(unpackInt(c, 1, 31))
	}
	return c.Err()
}

func (ie *TPCPDCCHConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *TPCPDCCHConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[TPCPDCCHConfigSetup](c)
	return err
}

// 6.3.2 CQI-ReportConfig
/*
CQI-ReportConfig ::=                SEQUENCE {
    cqi-ReportModeAperiodic             ENUMERATED {
                                            rm12, rm20, rm22, rm30, rm31,
                                            spare3, spare2, spare1} OPTIONAL,   -- Need OR
    nomPDSCH-RS-EPRE-Offset             INTEGER (-1..6),
    cqi-ReportPeriodic                  CQI-ReportPeriodic          OPTIONAL    -- Need ON
}

CQI-ReportPeriodic ::=              CHOICE {
    release                             NULL,
    setup                               SEQUENCE {
        cqi-PUCCH-ResourceIndex             INTEGER (0..1185),
        cqi-pmi-ConfigIndex                 INTEGER (0..1023),
        cqi-FormatIndicatorPeriodic         CHOICE {
            widebandCQI                         NULL,
            subbandCQI                          SEQUENCE {
                k                                   INTEGER (1..4)
            }
        },
        ri-ConfigIndex                      INTEGER (0..1023)           OPTIONAL,   -- Need OR
        simultaneousAckNackAndCQI           BOOLEAN
    }
}
*/
type CQIReportConfig struct {
	CQIReportModeAperiodic *uint8
	NomPDSCHRSEPREOffset   int
	CQIReportPeriodic      *CQIReportPeriodic
}

// A nil Setup is release.
type CQIReportPeriodic struct {
	Setup *CQIReportPeriodicSetup
}

// A zero SubbandK selects widebandCQI.
type CQIReportPeriodicSetup struct {
	CQIPUCCHResourceIndex     uint16
	CQIPMIConfigIndex         uint16
	SubbandK                  uint8
	RIConfigIndex             *uint16
	SimultaneousAckNackAndCQI bool
}

func (ie *CQIReportPeriodicSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.RIConfigIndex != nil)
	packInt(c, int(ie.CQIPUCCHResourceIndex), 0, 1185)
	packInt(c, int(ie.CQIPMIConfigIndex), 0, 1023)
	if ie.SubbandK == 0 {
		per.EncChoice(c, 0, 2, false)
	} else {
		per.EncChoice(c, 1, 2, false)
		packInt(c, int(ie.SubbandK), 1, 4)
	}
	if ie.RIConfigIndex != nil {
		packInt(c, int(*ie.RIConfigIndex), 0, 1023)
	}
	c.WriteBool(ie.SimultaneousAckNackAndCQI)
	return c.Err()
}

func (ie *CQIReportPeriodicSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CQIReportPeriodicSetup{}
	var ri bool
	per.DecSequence(c, false, &ri)
	ie.CQIPUCCHResourceIndex = uint16(unpackInt(c, 0, 1185))
	ie.CQIPMIConfigIndex = uint16(unpackInt(c, 0, 1023))
	if idx, _ := per.DecChoice(c, 2, false); idx == 1 {
		ie.SubbandK = uint8(unpackInt(c, 1, 4))
	}
	if ri {
		v := uint16(unpackInt(c, 0, 1023))
		ie.RIConfigIndex = &v
	}
	ie.SimultaneousAckNackAndCQI = c.ReadBool()
	return c.Err()
}

func (ie *CQIReportPeriodic) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *CQIReportPeriodic) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[CQIReportPeriodicSetup](c)
	return err
}

func (ie *CQIReportConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false,
		ie.CQIReportModeAperiodic != nil,
		ie.CQIReportPeriodic != nil)
	if ie.CQIReportModeAperiodic != nil {
		packEnum(c, *ie.CQIReportModeAperiodic, 8, false)
	}
	packInt(c, ie.NomPDSCHRSEPREOffset, -1, 6)
	return packOptional(c, ie.CQIReportPeriodic != nil, ie.CQIReportPeriodic)
}

func (ie *CQIReportConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CQIReportConfig{}
	var aperiodic, periodic bool
	per.DecSequence(c, false, &aperiodic, &periodic)
	if aperiodic {
		v := unpackEnum[uint8](c, 8, false)
		ie.CQIReportModeAperiodic = &v
	}
	ie.NomPDSCHRSEPREOffset = unpackInt(c, -1, 6)
	var err error
	ie.CQIReportPeriodic, err = unpackOptional[CQIReportPeriodic](c, periodic)
	return err
}

// 6.3.2 SoundingRS-UL-ConfigDedicated
/*
SoundingRS-UL-ConfigDedicated ::=   CHOICE{
    release                             NULL,
    setup                               SEQUENCE {
        srs-Bandwidth                       ENUMERATED {bw0, bw1, bw2, bw3},
        srs-HoppingBandwidth                ENUMERATED {hbw0, hbw1, hbw2, hbw3},
        freqDomainPosition                  INTEGER (0..23),
        duration                            BOOLEAN,
        srs-ConfigIndex                     INTEGER (0..1023),
        transmissionComb                    INTEGER (0..1),
        cyclicShift                         ENUMERATED {cs0, cs1, cs2, cs3, cs4, cs5, cs6, cs7}
    }
}
*/
// A nil Setup is release.
type SoundingRSULConfigDedicated struct {
	Setup *SoundingRSULConfigDedicatedSetup
}

type SoundingRSULConfigDedicatedSetup struct {
	SRSBandwidth        uint8
	SRSHoppingBandwidth uint8
	FreqDomainPosition  uint8
	Duration            bool
	SRSConfigIndex      uint16
	TransmissionComb    uint8
	CyclicShift         uint8
}

func (ie *SoundingRSULConfigDedicatedSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.SRSBandwidth, 4, false)
	packEnum(c, ie.SRSHoppingBandwidth, 4, false)
	packInt(c, int(ie.FreqDomainPosition), 0, 23)
	c.WriteBool(ie.Duration)
	packInt(c, int(ie.SRSConfigIndex), 0, 1023)
	packInt(c, int(ie.TransmissionComb), 0, 1)
	packEnum(c, ie.CyclicShift, 8, false)
	return c.Err()
}

func (ie *SoundingRSULConfigDedicatedSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.SRSBandwidth = unpackEnum[uint8](c, 4, false)
	ie.SRSHoppingBandwidth = unpackEnum[uint8](c, 4, false)
	ie.FreqDomainPosition = uint8(unpackInt(c, 0, 23))
	ie.Duration = c.ReadBool()
	ie.SRSConfigIndex = uint16(unpackInt(c, 0, 1023))
	ie.TransmissionComb = uint8(unpackInt(c, 0, 1))
	ie.CyclicShift = unpackEnum[uint8](c, 8, false)
	return c.Err()
}

func (ie *SoundingRSULConfigDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *SoundingRSULConfigDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[SoundingRSULConfigDedicatedSetup](c)
	return err
}

// codebookSubsetRestrictionBits is the BIT STRING size of each
// codebookSubsetRestriction alternative, n2TxAntenna-tm3 first.
var codebookSubsetRestrictionBits = [...]int{2, 4, 6, 64, 4, 16, 4, 16}

// 6.3.2 AntennaInfoDedicated
/*
AntennaInfoDedicated ::=            SEQUENCE {
    transmissionMode                    ENUMERATED {
                                            tm1, tm2, tm3, tm4, tm5, tm6,
                                            tm7, spare1},
    codebookSubsetRestriction           CHOICE {
        n2TxAntenna-tm3                     BIT STRING (SIZE (2)),
        n4TxAntenna-tm3                     BIT STRING (SIZE (4)),
        n2TxAntenna-tm4                     BIT STRING (SIZE (6)),
        n4TxAntenna-tm4                     BIT STRING (SIZE (64)),
        n2TxAntenna-tm5                     BIT STRING (SIZE (4)),
        n4TxAntenna-tm5                     BIT STRING (SIZE (16)),
        n2TxAntenna-tm6                     BIT STRING (SIZE (4)),
        n4TxAntenna-tm6                     BIT STRING (SIZE (16))
    }                                                               OPTIONAL,   -- Cond TM
    ue-TransmitAntennaSelection         CHOICE{
        release                             NULL,
        setup                               ENUMERATED {closedLoop, openLoop}
    }
}
*/
type AntennaInfoDedicated struct {
	TransmissionMode          uint8
	CodebookSubsetRestriction *CodebookSubsetRestriction
	// UETransmitAntennaSelection is nil for release.
	UETransmitAntennaSelection *uint8
}

type CodebookSubsetRestriction struct {
	Choice uint8
	Value  uint64
}

func (ie *AntennaInfoDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.CodebookSubsetRestriction != nil)
	packEnum(c, ie.TransmissionMode, 8, false)
	if r := ie.CodebookSubsetRestriction; r != nil {
		if int(r.Choice) >= len(codebookSubsetRestrictionBits) {
			return unsupported(c, "codebookSubsetRestriction", int(r.Choice))
		}
		per.EncChoice(c, int(r.Choice), len(codebookSubsetRestrictionBits), false)
		c.WriteBits(r.Value, codebookSubsetRestrictionBits[r.Choice])
	}
	if ie.UETransmitAntennaSelection == nil {
		per.EncChoice(c, 0, 2, false)
	} else {
		per.EncChoice(c, 1, 2, false)
		packEnum(c, *ie.UETransmitAntennaSelection, 2, false)
	}
	return c.Err()
}

func (ie *AntennaInfoDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = AntennaInfoDedicated{}
	var csr bool
	per.DecSequence(c, false, &csr)
	ie.TransmissionMode = unpackEnum[uint8](c, 8, false)
	if csr {
		idx, _ := per.DecChoice(c, len(codebookSubsetRestrictionBits), false)
		if err := c.Err(); err != nil {
			return err
		}
		ie.CodebookSubsetRestriction = &CodebookSubsetRestriction{
			Choice: uint8(idx),
			Value:  c.ReadBits(codebookSubsetRestrictionBits[idx]),
		}
	}
	if idx, _ := per.DecChoice(c, 2, false); idx == 1 {
		v := unpackEnum[uint8](c, 2, false)
		ie.UETransmitAntennaSelection = &v
	}
	return c.Err()
}

// 6.3.2 SchedulingRequestConfig
/*
SchedulingRequestConfig ::=         CHOICE {
    release                             NULL,
    setup                               SEQUENCE {
        sr-PUCCH-ResourceIndex              INTEGER (0..2047),
        sr-ConfigIndex                      INTEGER (0..155),
        dsr-TransMax                        ENUMERATED {
                                                n4, n8, n16, n32, n64, spare3, spare2, spare1}
    }
}
*/
// A nil Setup is release.
type SchedulingRequestConfig struct {
	Setup *SchedulingRequestConfigSetup
}

type SchedulingRequestConfigSetup struct {
	SRPUCCHResourceIndex uint16
	SRConfigIndex        uint8
	DSRTransMax          uint8
}

func (ie *SchedulingRequestConfigSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(ie.SRPUCCHResourceIndex), 0, 2047)
	packInt(c, int(ie.SRConfigIndex), 0, 155)
	packEnum(c, ie.DSRTransMax, 8, false)
	return c.Err()
}

func (ie *SchedulingRequestConfigSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.SRPUCCHResourceIndex = uint16(unpackInt(c, 0, 2047))
	ie.SRConfigIndex = uint8(unpackInt(c, 0, 155))
	ie.DSRTransMax = unpackEnum[uint8](c, 8, false)
	return c.Err()
}

func (ie *SchedulingRequestConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *SchedulingRequestConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[SchedulingRequestConfigSetup](c)
	return err
}
