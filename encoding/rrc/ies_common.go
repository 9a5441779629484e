// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.2 RACH-ConfigCommon
/*
RACH-ConfigCommon ::=               SEQUENCE {
    preambleInfo                        SEQUENCE {
        numberOfRA-Preambles                ENUMERATED {
                                                n4, n8, n12, n16 ,n20, n24, n28,
                                                n32, n36, n40, n44, n48, n52, n56,
                                                n60, n64},
        preamblesGroupAConfig               SEQUENCE {
            sizeOfRA-PreamblesGroupA            ENUMERATED {
                                                    n4, n8, n12, n16 ,n20, n24, n28,
                                                    n32, n36, n40, n44, n48, n52, n56,
                                                    n60},
            messageSizeGroupA                   ENUMERATED {b56, b144, b208, b256},
            messagePowerOffsetGroupB            ENUMERATED {
                                                    minusinfinity, dB0, dB5, dB8, dB10, dB12,
                                                    dB15, dB18},
            ...
        }           OPTIONAL                    -- Need OP
    },
    powerRampingParameters              SEQUENCE {
        powerRampingStep                    ENUMERATED {dB0, dB2,dB4, dB6},
        preambleInitialReceivedTargetPower  ENUMERATED {
                                                dBm-120, dBm-118, dBm-116, dBm-114, dBm-112,
                                                dBm-110, dBm-108, dBm-106, dBm-104, dBm-102,
                                                dBm-100, dBm-98, dBm-96, dBm-94,
                                                dBm-92, dBm-90}
    },
    ra-SupervisionInfo                  SEQUENCE {
        preambleTransMax                    ENUMERATED {
                                                n3, n4, n5, n6, n7, n8, n10, n20, n50,
                                                n100, n200},
        ra-ResponseWindowSize               ENUMERATED {
                                                sf2, sf3, sf4, sf5, sf6, sf7,
                                                sf8, sf10},
        mac-ContentionResolutionTimer       ENUMERATED {
                                                sf8, sf16, sf24, sf32, sf40, sf48,
                                                sf56, sf64}
    },
    maxHARQ-Msg3Tx                      INTEGER (1..8),
    ...
}
*/
type RACHConfigCommon struct {
	NumberOfRAPreambles                uint8
	PreamblesGroupAConfig              *PreamblesGroupAConfig
	PowerRampingStep                   uint8
	PreambleInitialReceivedTargetPower uint8
	PreambleTransMax                   uint8
	RAResponseWindowSize               uint8
	MACContentionResolutionTimer       uint8
	MaxHARQMsg3Tx                      uint8
}

type PreamblesGroupAConfig struct {
	SizeOfRAPreamblesGroupA  uint8
	MessageSizeGroupA        uint8
	MessagePowerOffsetGroupB uint8
}

func (ie *PreamblesGroupAConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	packEnum(c, ie.SizeOfRAPreamblesGroupA, 15, false)
	packEnum(c, ie.MessageSizeGroupA, 4, false)
	packEnum(c, ie.MessagePowerOffsetGroupB, 8, false)
	return c.Err()
}

func (ie *PreamblesGroupAConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ext := per.DecSequence(c, true)
	ie.SizeOfRAPreamblesGroupA = unpackEnum[uint8](c, 15, false)
	ie.MessageSizeGroupA = unpackEnum[uint8](c, 4, false)
	ie.MessagePowerOffsetGroupB = unpackEnum[uint8](c, 8, false)
	return skipExtensions(c, ext, "preamblesGroupAConfig")
}

func (ie *RACHConfigCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)

	// preambleInfo
	per.EncSequence(c, false, ie.PreamblesGroupAConfig != nil)
	packEnum(c, ie.NumberOfRAPreambles, 16, false)
	if err := packOptional(c, ie.PreamblesGroupAConfig != nil,
		ie.PreamblesGroupAConfig); err != nil {
		return err
	}

	// powerRampingParameters
	packEnum(c, ie.PowerRampingStep, 4, false)
	packEnum(c, ie.PreambleInitialReceivedTargetPower, 16, false)

	// ra-SupervisionInfo
	packEnum(c, ie.PreambleTransMax, 11, false)
	packEnum(c, ie.RAResponseWindowSize, 8, false)
	packEnum(c, ie.MACContentionResolutionTimer, 8, false)

	packInt(c, int(ie.MaxHARQMsg3Tx), 1, 8)
	return c.Err()
}

func (ie *RACHConfigCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RACHConfigCommon{}
	ext := per.DecSequence(c, true)

	var groupAPresent bool
	per.DecSequence(c, false, &groupAPresent)
	ie.NumberOfRAPreambles = unpackEnum[uint8](c, 16, false)
	var err error
	ie.PreamblesGroupAConfig, err =
		unpackOptional[PreamblesGroupAConfig](c, groupAPresent)
	if err != nil {
		return err
	}

	ie.PowerRampingStep = unpackEnum[uint8](c, 4, false)
	ie.PreambleInitialReceivedTargetPower = unpackEnum[uint8](c, 16, false)

	ie.PreambleTransMax = unpackEnum[uint8](c, 11, false)
	ie.RAResponseWindowSize = unpackEnum[uint8](c, 8, false)
	ie.MACContentionResolutionTimer = unpackEnum[uint8](c, 8, false)

	ie.MaxHARQMsg3Tx = uint8(unpackInt(c, 1, 8))
	return skipExtensions(c, ext, "RACH-ConfigCommon")
}

// 6.3.2 BCCH-Config
/*
BCCH-Config ::=                     SEQUENCE {
    modificationPeriodCoeff             ENUMERATED {n2, n4, n8, n16}
}
*/
type BCCHConfig struct {
	ModificationPeriodCoeff uint8
}

func (ie *BCCHConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.ModificationPeriodCoeff, 4, false)
	return c.Err()
}

func (ie *BCCHConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.ModificationPeriodCoeff = unpackEnum[uint8](c, 4, false)
	return c.Err()
}

// 6.3.2 PCCH-Config
/*
PCCH-Config ::=                     SEQUENCE {
    defaultPagingCycle                  ENUMERATED {
                                            rf32, rf64, rf128, rf256},
    nB                                  ENUMERATED {
                                            fourT, twoT, oneT, halfT, quarterT, oneEighthT,
                                            oneSixteenthT, oneThirtySecondT}
}
*/
type PCCHConfig struct {
	DefaultPagingCycle uint8
	NB                 uint8
}

func (ie *PCCHConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.DefaultPagingCycle, 4, false)
	packEnum(c, ie.NB, 8, false)
	return c.Err()
}

func (ie *PCCHConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.DefaultPagingCycle = unpackEnum[uint8](c, 4, false)
	ie.NB = unpackEnum[uint8](c, 8, false)
	return c.Err()
}

// 6.3.2 PRACH-ConfigInfo
/*
PRACH-ConfigInfo ::=                SEQUENCE {
    prach-ConfigIndex                   INTEGER (0..63),
    highSpeedFlag                       BOOLEAN,
    zeroCorrelationZoneConfig           INTEGER (0..15),
    prach-FreqOffset                    INTEGER (0..94)
}
*/
type PRACHConfigInfo struct {
	PRACHConfigIndex          uint8
	HighSpeedFlag             bool
	ZeroCorrelationZoneConfig uint8
	PRACHFreqOffset           uint8
}

func (ie *PRACHConfigInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(ie.PRACHConfigIndex), 0, 63)
	c.WriteBool(ie.HighSpeedFlag)
	packInt(c, int(ie.ZeroCorrelationZoneConfig), 0, 15)
	packInt(c, int(ie.PRACHFreqOffset), 0, 94)
	return c.Err()
}

func (ie *PRACHConfigInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.PRACHConfigIndex = uint8(unpackInt(c, 0, 63))
	ie.HighSpeedFlag = c.ReadBool()
	ie.ZeroCorrelationZoneConfig = uint8(unpackInt(c, 0, 15))
	ie.PRACHFreqOffset = uint8(unpackInt(c, 0, 94))
	return c.Err()
}

// 6.3.2 PRACH-ConfigSIB
/*
PRACH-ConfigSIB ::=                 SEQUENCE {
    rootSequenceIndex                   INTEGER (0..837),
    prach-ConfigInfo                    PRACH-ConfigInfo
}
*/
type PRACHConfigSIB struct {
	RootSequenceIndex uint16
	PRACHConfigInfo   PRACHConfigInfo
}

func (ie *PRACHConfigSIB) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(ie.RootSequenceIndex), 0, 837)
	return ie.PRACHConfigInfo.Pack(c)
}

func (ie *PRACHConfigSIB) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.RootSequenceIndex = uint16(unpackInt(c, 0, 837))
	return ie.PRACHConfigInfo.Unpack(c)
}

// 6.3.2 PRACH-Config
/*
PRACH-Config ::=                    SEQUENCE {
    rootSequenceIndex                   INTEGER (0..837),
    prach-ConfigInfo                    PRACH-ConfigInfo            OPTIONAL    -- Need ON
}
*/
type PRACHConfig struct {
	RootSequenceIndex uint16
	PRACHConfigInfo   *PRACHConfigInfo
}

func (ie *PRACHConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.PRACHConfigInfo != nil)
	packInt(c, int(ie.RootSequenceIndex), 0, 837)
	return packOptional(c, ie.PRACHConfigInfo != nil, ie.PRACHConfigInfo)
}

func (ie *PRACHConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PRACHConfig{}
	var infoPresent bool
	per.DecSequence(c, false, &infoPresent)
	ie.RootSequenceIndex = uint16(unpackInt(c, 0, 837))
	var err error
	ie.PRACHConfigInfo, err = unpackOptional[PRACHConfigInfo](c, infoPresent)
	return err
}

// 6.3.2 PDSCH-ConfigCommon
/*
PDSCH-ConfigCommon ::=              SEQUENCE {
    referenceSignalPower                INTEGER (-60..50),
    p-b                                 INTEGER (0..3)
}
*/
type PDSCHConfigCommon struct {
	ReferenceSignalPower int
	PB                   uint8
}

func (ie *PDSCHConfigCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, ie.ReferenceSignalPower, -60, 50)
	packInt(c, int(ie.PB), 0, 3)
	return c.Err()
}

func (ie *PDSCHConfigCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.ReferenceSignalPower = unpackInt(c, -60, 50)
	ie.PB = uint8(unpackInt(c, 0, 3))
	return c.Err()
}

// 6.3.2 PUSCH-ConfigCommon
/*
PUSCH-ConfigCommon ::=              SEQUENCE {
    pusch-ConfigBasic                   SEQUENCE {
        n-SB                                INTEGER (1..4),
        hoppingMode                         ENUMERATED {interSubFrame, intraAndInterSubFrame},
        pusch-HoppingOffset                 INTEGER (0..98),
        enable64QAM                         BOOLEAN
    },
    ul-ReferenceSignalsPUSCH            UL-ReferenceSignalsPUSCH
}

UL-ReferenceSignalsPUSCH ::=        SEQUENCE {
    groupHoppingEnabled                 BOOLEAN,
    groupAssignmentPUSCH                INTEGER (0..29),
    sequenceHoppingEnabled              BOOLEAN,
    cyclicShift                         INTEGER (0..7)
}
*/
type PUSCHConfigCommon struct {
	NSB                     uint8
	HoppingMode             uint8
	PUSCHHoppingOffset      uint8
	Enable64QAM             bool
	ULReferenceSignalsPUSCH ULReferenceSignalsPUSCH
}

type ULReferenceSignalsPUSCH struct {
	GroupHoppingEnabled    bool
	GroupAssignmentPUSCH   uint8
	SequenceHoppingEnabled bool
	CyclicShift            uint8
}

func (ie *ULReferenceSignalsPUSCH) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBool(ie.GroupHoppingEnabled)
	packInt(c, int(ie.GroupAssignmentPUSCH), 0, 29)
	c.WriteBool(ie.SequenceHoppingEnabled)
	packInt(c, int(ie.CyclicShift), 0, 7)
	return c.Err()
}

func (ie *ULReferenceSignalsPUSCH) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.GroupHoppingEnabled = c.ReadBool()
	ie.GroupAssignmentPUSCH = uint8(unpackInt(c, 0, 29))
	ie.SequenceHoppingEnabled = c.ReadBool()
	ie.CyclicShift = uint8(unpackInt(c, 0, 7))
	return c.Err()
}

func (ie *PUSCHConfigCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(ie.NSB), 1, 4)
	packEnum(c, ie.HoppingMode, 2, false)
	packInt(c, int(ie.PUSCHHoppingOffset), 0, 98)
	c.WriteBool(ie.Enable64QAM)
	return ie.ULReferenceSignalsPUSCH.Pack(c)
}

func (ie *PUSCHConfigCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.NSB = uint8(unpackInt(c, 1, 4))
	ie.HoppingMode = unpackEnum[uint8](c, 2, false)
	ie.PUSCHHoppingOffset = uint8(unpackInt(c, 0, 98))
	ie.Enable64QAM = c.ReadBool()
	return ie.ULReferenceSignalsPUSCH.Unpack(c)
}

// 6.3.2 PUCCH-ConfigCommon
/*
PUCCH-ConfigCommon ::=              SEQUENCE {
    deltaPUCCH-Shift                    ENUMERATED {ds1, ds2, ds3},
    nRB-CQI                             INTEGER (0..98),
    nCS-AN                              INTEGER (0..7),
    n1PUCCH-AN                          INTEGER (0..2047)
}
*/
type PUCCHConfigCommon struct {
	DeltaPUCCHShift uint8
	NRBCQI          uint8
	NCSAN           uint8
	N1PUCCHAN       uint16
}

func (ie *PUCCHConfigCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.DeltaPUCCHShift, 3, false)
	packInt(c, int(ie.NRBCQI), 0, 98)
	packInt(c, int(ie.NCSAN), 0, 7)
	packInt(c, int(ie.N1PUCCHAN), 0, 2047)
	return c.Err()
}

func (ie *PUCCHConfigCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.DeltaPUCCHShift = unpackEnum[uint8](c, 3, false)
	ie.NRBCQI = uint8(unpackInt(c, 0, 98))
	ie.NCSAN = uint8(unpackInt(c, 0, 7))
	ie.N1PUCCHAN = uint16(unpackInt(c, 0, 2047))
	return c.Err()
}

// 6.3.2 SoundingRS-UL-ConfigCommon
/*
SoundingRS-UL-ConfigCommon ::=      CHOICE {
    release                             NULL,
    setup                               SEQUENCE {
        srs-BandwidthConfig                 ENUMERATED {bw0, bw1, bw2, bw3, bw4, bw5, bw6, bw7},
        srs-SubframeConfig                  ENUMERATED {
                                                sc0, sc1, sc2, sc3, sc4, sc5, sc6, sc7,
                                                sc8, sc9, sc10, sc11, sc12, sc13, sc14, sc15},
        ackNackSRS-SimultaneousTransmission BOOLEAN,
        srs-MaxUpPts                        ENUMERATED {true}           OPTIONAL    -- Cond TDD
    }
}
*/
// A nil Setup is the release alternative.
type SoundingRSULConfigCommon struct {
	Setup *SoundingRSULConfigCommonSetup
}

type SoundingRSULConfigCommonSetup struct {
	SRSBandwidthConfig                 uint8
	SRSSubframeConfig                  uint8
	AckNackSRSSimultaneousTransmission bool
	SRSMaxUpPts                        bool
}

func (ie *SoundingRSULConfigCommonSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.SRSMaxUpPts)
	packEnum(c, ie.SRSBandwidthConfig, 8, false)
	packEnum(c, ie.SRSSubframeConfig, 16, false)
	c.WriteBool(ie.AckNackSRSSimultaneousTransmission)
	return c.Err()
}

func (ie *SoundingRSULConfigCommonSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.DecSequence(c, false, &ie.SRSMaxUpPts)
	ie.SRSBandwidthConfig = unpackEnum[uint8](c, 8, false)
	ie.SRSSubframeConfig = unpackEnum[uint8](c, 16, false)
	ie.AckNackSRSSimultaneousTransmission = c.ReadBool()
	return c.Err()
}

func (ie *SoundingRSULConfigCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *SoundingRSULConfigCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[SoundingRSULConfigCommonSetup](c)
	return err
}

// packSetupRelease writes CHOICE { release NULL, setup T }.
func packSetupRelease(c *per.Cursor, setup bool, v Packer) error {
	if !setup {
		per.EncChoice(c, 0, 2, false)
		return c.Err()
	}
	per.EncChoice(c, 1, 2, false)
	return v.Pack(c)
}

func unpackSetupRelease[T any, P packerPtr[T]](c *per.Cursor) (*T, error) {
	idx, _ := per.DecChoice(c, 2, false)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return unpackOptional[T, P](c, idx == 1)
}

// 6.3.2 UplinkPowerControlCommon
/*
UplinkPowerControlCommon ::=        SEQUENCE {
    p0-NominalPUSCH                     INTEGER (-126..24),
    alpha                               ENUMERATED {al0, al04, al05, al06, al07, al08, al09, al1},
    p0-NominalPUCCH                     INTEGER (-127..-96),
    deltaFList-PUCCH                    DeltaFList-PUCCH,
    deltaPreambleMsg3                   INTEGER (-1..6)
}

DeltaFList-PUCCH ::=                SEQUENCE {
    deltaF-PUCCH-Format1                ENUMERATED {deltaF-2, deltaF0, deltaF2},
    deltaF-PUCCH-Format1b               ENUMERATED {deltaF1, deltaF3, deltaF5},
    deltaF-PUCCH-Format2                ENUMERATED {deltaF-2, deltaF0, deltaF1, deltaF2},
    deltaF-PUCCH-Format2a               ENUMERATED {deltaF-2, deltaF0, deltaF2},
    deltaF-PUCCH-Format2b               ENUMERATED {deltaF-2, deltaF0, deltaF2}
}
*/
type UplinkPowerControlCommon struct {
	P0NominalPUSCH    int
	Alpha             uint8
	P0NominalPUCCH    int
	DeltaFListPUCCH   DeltaFListPUCCH
	DeltaPreambleMsg3 int
}

type DeltaFListPUCCH struct {
	Format1  uint8
	Format1b uint8
	Format2  uint8
	Format2a uint8
	Format2b uint8
}

func (ie *DeltaFListPUCCH) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.Format1, 3, false)
	packEnum(c, ie.Format1b, 3, false)
	packEnum(c, ie.Format2, 4, false)
	packEnum(c, ie.Format2a, 3, false)
	packEnum(c, ie.Format2b, 3, false)
	return c.Err()
}

func (ie *DeltaFListPUCCH) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.Format1 = unpackEnum[uint8](c, 3, false)
	ie.Format1b = unpackEnum[uint8](c, 3, false)
	ie.Format2 = unpackEnum[uint8](c, 4, false)
	ie.Format2a = unpackEnum[uint8](c, 3, false)
	ie.Format2b = unpackEnum[uint8](c, 3, false)
	return c.Err()
}

func (ie *UplinkPowerControlCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, ie.P0NominalPUSCH, -126, 24)
	packEnum(c, ie.Alpha, 8, false)
	packInt(c, ie.P0NominalPUCCH, -127, -96)
	if err := ie.DeltaFListPUCCH.Pack(c); err != nil {
		return err
	}
	packInt(c, ie.DeltaPreambleMsg3, -1, 6)
	return c.Err()
}

func (ie *UplinkPowerControlCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.P0NominalPUSCH = unpackInt(c, -126, 24)
	ie.Alpha = unpackEnum[uint8](c, 8, false)
	ie.P0NominalPUCCH = unpackInt(c, -127, -96)
	if err := ie.DeltaFListPUCCH.Unpack(c); err != nil {
		return err
	}
	ie.DeltaPreambleMsg3 = unpackInt(c, -1, 6)
	return c.Err()
}

// 6.3.2 PHICH-Config
/*
PHICH-Config ::=                    SEQUENCE {
    phich-Duration                      ENUMERATED {normal, extended},
    phich-Resource                      ENUMERATED {oneSixth, half, one, two}
}
*/
type PHICHConfig struct {
	Duration uint8
	Resource uint8
}

func (ie *PHICHConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.Duration, 2, false)
	packEnum(c, ie.Resource, 4, false)
	return c.Err()
}

func (ie *PHICHConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.Duration = unpackEnum[uint8](c, 2, false)
	ie.Resource = unpackEnum[uint8](c, 4, false)
	return c.Err()
}

// AntennaInfoCommon is SEQUENCE { antennaPortsCount ENUMERATED {an1, an2,
// an4, spare1} }.
type AntennaInfoCommon struct {
	AntennaPortsCount uint8
}

func (ie *AntennaInfoCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.AntennaPortsCount, 4, false)
	return c.Err()
}

func (ie *AntennaInfoCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.AntennaPortsCount = unpackEnum[uint8](c, 4, false)
	return c.Err()
}

// 6.3.2 TDD-Config
/*
TDD-Config ::=                      SEQUENCE {
    subframeAssignment                  ENUMERATED {
                                            sa0, sa1, sa2, sa3, sa4, sa5, sa6},
    specialSubframePatterns             ENUMERATED {
                                            ssp0, ssp1, ssp2, ssp3, ssp4,ssp5,
                                            ssp6, ssp7, ssp8}
}
*/
type TDDConfig struct {
	SubframeAssignment      uint8
	SpecialSubframePatterns uint8
}

func (ie *TDDConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.SubframeAssignment, 7, false)
	packEnum(c, ie.SpecialSubframePatterns, 9, false)
	return c.Err()
}

func (ie *TDDConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.SubframeAssignment = unpackEnum[uint8](c, 7, false)
	ie.SpecialSubframePatterns = unpackEnum[uint8](c, 9, false)
	return c.Err()
}

// 6.3.2 RadioResourceConfigCommonSIB
/*
RadioResourceConfigCommonSIB ::=    SEQUENCE {
    rach-ConfigCommon                   RACH-ConfigCommon,
    bcch-Config                         BCCH-Config,
    pcch-Config                         PCCH-Config,
    prach-Config                        PRACH-ConfigSIB,
    pdsch-ConfigCommon                  PDSCH-ConfigCommon,
    pusch-ConfigCommon                  PUSCH-ConfigCommon,
    pucch-ConfigCommon                  PUCCH-ConfigCommon,
    soundingRS-UL-ConfigCommon          SoundingRS-UL-ConfigCommon,
    uplinkPowerControlCommon            UplinkPowerControlCommon,
    ul-CyclicPrefixLength               UL-CyclicPrefixLength,
    ...
}

UL-CyclicPrefixLength ::=           ENUMERATED {len1, len2}
*/
type RadioResourceConfigCommonSIB struct {
	RACHConfigCommon         RACHConfigCommon
	BCCHConfig               BCCHConfig
	PCCHConfig               PCCHConfig
	PRACHConfig              PRACHConfigSIB
	PDSCHConfigCommon        PDSCHConfigCommon
	PUSCHConfigCommon        PUSCHConfigCommon
	PUCCHConfigCommon        PUCCHConfigCommon
	SoundingRSULConfigCommon SoundingRSULConfigCommon
	UplinkPowerControlCommon UplinkPowerControlCommon
	ULCyclicPrefixLength     uint8
}

func (ie *RadioResourceConfigCommonSIB) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	for _, v := range []Packer{
		&ie.RACHConfigCommon,
		&ie.BCCHConfig,
		&ie.PCCHConfig,
		&ie.PRACHConfig,
		&ie.PDSCHConfigCommon,
		&ie.PUSCHConfigCommon,
		&ie.PUCCHConfigCommon,
		&ie.SoundingRSULConfigCommon,
		&ie.UplinkPowerControlCommon,
	} {
		if err := v.Pack(c); err != nil {
			return err
		}
	}
	packEnum(c, ie.ULCyclicPrefixLength, 2, false)
	return c.Err()
}

func (ie *RadioResourceConfigCommonSIB) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RadioResourceConfigCommonSIB{}
	ext := per.DecSequence(c, true)
	for _, v := range []Packer{
		&ie.RACHConfigCommon,
		&ie.BCCHConfig,
		&ie.PCCHConfig,
		&ie.PRACHConfig,
		&ie.PDSCHConfigCommon,
		&ie.PUSCHConfigCommon,
		&ie.PUCCHConfigCommon,
		&ie.SoundingRSULConfigCommon,
		&ie.UplinkPowerControlCommon,
	} {
		if err := v.Unpack(c); err != nil {
			return err
		}
	}
	ie.ULCyclicPrefixLength = unpackEnum[uint8](c, 2, false)
	return skipExtensions(c, ext, "RadioResourceConfigCommonSIB")
}

// 6.3.2 RadioResourceConfigCommon
/*
RadioResourceConfigCommon ::=       SEQUENCE {
    rach-ConfigCommon                   RACH-ConfigCommon           OPTIONAL,   -- Need ON
    prach-Config                        PRACH-Config,
    pdsch-ConfigCommon                  PDSCH-ConfigCommon          OPTIONAL,   -- Need ON
    pusch-ConfigCommon                  PUSCH-ConfigCommon,
    phich-Config                        PHICH-Config                OPTIONAL,   -- Need ON
    pucch-ConfigCommon                  PUCCH-ConfigCommon          OPTIONAL,   -- Need ON
    soundingRS-UL-ConfigCommon          SoundingRS-UL-ConfigCommon  OPTIONAL,   -- Need ON
    uplinkPowerControlCommon            UplinkPowerControlCommon    OPTIONAL,   -- Need ON
    antennaInfoCommon                   AntennaInfoCommon           OPTIONAL,   -- Need ON
    p-Max                               P-Max                       OPTIONAL,   -- Need OP
    tdd-Config                          TDD-Config                  OPTIONAL,   -- Cond TDD
    ul-CyclicPrefixLength               UL-CyclicPrefixLength,
    ...
}
*/
type RadioResourceConfigCommon struct {
	RACHConfigCommon         *RACHConfigCommon
	PRACHConfig              PRACHConfig
	PDSCHConfigCommon        *PDSCHConfigCommon
	PUSCHConfigCommon        PUSCHConfigCommon
	PHICHConfig              *PHICHConfig
	PUCCHConfigCommon        *PUCCHConfigCommon
	SoundingRSULConfigCommon *SoundingRSULConfigCommon
	UplinkPowerControlCommon *UplinkPowerControlCommon
	AntennaInfoCommon        *AntennaInfoCommon
	PMax                     *PMax
	TDDConfig                *TDDConfig
	ULCyclicPrefixLength     uint8
}

func (ie *RadioResourceConfigCommon) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		ie.RACHConfigCommon != nil,
		ie.PDSCHConfigCommon != nil,
		ie.PHICHConfig != nil,
		ie.PUCCHConfigCommon != nil,
		ie.SoundingRSULConfigCommon != nil,
		ie.UplinkPowerControlCommon != nil,
		ie.AntennaInfoCommon != nil,
		ie.PMax != nil,
		ie.TDDConfig != nil)
	steps := []struct {
		present bool
		v       Packer
	}{
		{ie.RACHConfigCommon != nil, ie.RACHConfigCommon},
		{true, &ie.PRACHConfig},
		{ie.PDSCHConfigCommon != nil, ie.PDSCHConfigCommon},
		{true, &ie.PUSCHConfigCommon},
		{ie.PHICHConfig != nil, ie.PHICHConfig},
		{ie.PUCCHConfigCommon != nil, ie.PUCCHConfigCommon},
		{ie.SoundingRSULConfigCommon != nil, ie.SoundingRSULConfigCommon},
		{ie.UplinkPowerControlCommon != nil, ie.UplinkPowerControlCommon},
		{ie.AntennaInfoCommon != nil, ie.AntennaInfoCommon},
		{ie.PMax != nil, ie.PMax},
		{ie.TDDConfig != nil, ie.TDDConfig},
	}
	for _, s := range steps {
		if err := packOptional(c, s.present, s.v); err != nil {
			return err
		}
	}
	packEnum(c, ie.ULCyclicPrefixLength, 2, false)
	return c.Err()
}

func (ie *RadioResourceConfigCommon) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RadioResourceConfigCommon{}
	var rach, pdsch, phich, pucch, srs, ulpc, ant, pmax, tdd bool
	ext := per.DecSequence(c, true,
		&rach, &pdsch, &phich, &pucch, &srs, &ulpc, &ant, &pmax, &tdd)

	var err error
	if ie.RACHConfigCommon, err = unpackOptional[RACHConfigCommon](c, rach); err != nil {
		return err
	}
	if err = ie.PRACHConfig.Unpack(c); err != nil {
		return err
	}
	if ie.PDSCHConfigCommon, err = unpackOptional[PDSCHConfigCommon](c, pdsch); err != nil {
		return err
	}
	if err = ie.PUSCHConfigCommon.Unpack(c); err != nil {
		return err
	}
	if ie.PHICHConfig, err = unpackOptional[PHICHConfig](c, phich); err != nil {
		return err
	}
	if ie.PUCCHConfigCommon, err = unpackOptional[PUCCHConfigCommon](c, pucch); err != nil {
		return err
	}
	if ie.SoundingRSULConfigCommon, err =
		unpackOptional[SoundingRSULConfigCommon](c, srs); err != nil {
		return err
	}
	if ie.UplinkPowerControlCommon, err =
		unpackOptional[UplinkPowerControlCommon](c, ulpc); err != nil {
		return err
	}
	if ie.AntennaInfoCommon, err = unpackOptional[AntennaInfoCommon](c, ant); err != nil {
		return err
	}
	if ie.PMax, err = unpackOptional[PMax](c, pmax); err != nil {
		return err
	}
	if ie.TDDConfig, err = unpackOptional[TDDConfig](c, tdd); err != nil {
		return err
	}
	ie.ULCyclicPrefixLength = unpackEnum[uint8](c, 2, false)
	return skipExtensions(c, ext, "RadioResourceConfigCommon")
}

// 6.3.1 UE-TimersAndConstants
/*
UE-TimersAndConstants ::=           SEQUENCE {
    t300                                ENUMERATED {
                                            ms100, ms200, ms300, ms400, ms600, ms1000, ms1500,
                                            ms2000},
    t301                                ENUMERATED {
                                            ms100, ms200, ms300, ms400, ms600, ms1000, ms1500,
                                            ms2000},
    t310                                ENUMERATED {
                                            ms0, ms50, ms100, ms200, ms500, ms1000, ms2000},
    n310                                ENUMERATED {
                                            n1, n2, n3, n4, n6, n8, n10, n20},
    t311                                ENUMERATED {
                                            ms1000, ms3000, ms5000, ms10000, ms15000,
                                            ms20000, ms30000},
    n311                                ENUMERATED {
                                            n1, n2, n3, n4, n5, n6, n8, n10},
    ...
}
*/
type UETimersAndConstants struct {
	T300 uint8
	T301 uint8
	T310 uint8
	N310 uint8
	T311 uint8
	N311 uint8
}

func (ie *UETimersAndConstants) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	packEnum(c, ie.T300, 8, false)
	packEnum(c, ie.T301, 8, false)
	packEnum(c, ie.T310, 7, false)
	packEnum(c, ie.N310, 8, false)
	packEnum(c, ie.T311, 7, false)
	packEnum(c, ie.N311, 8, false)
	return c.Err()
}

func (ie *UETimersAndConstants) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ext := per.DecSequence(c, true)
	ie.T300 = unpackEnum[uint8](c, 8, false)
	ie.T301 = unpackEnum[uint8](c, 8, false)
	ie.T310 = unpackEnum[uint8](c, 7, false)
	ie.N310 = unpackEnum[uint8](c, 8, false)
	ie.T311 = unpackEnum[uint8](c, 7, false)
	ie.N311 = unpackEnum[uint8](c, 8, false)
	return skipExtensions(c, ext, "UE-TimersAndConstants")
}

// 6.3.1 AC-BarringConfig
/*
AC-BarringConfig ::=                SEQUENCE {
    ac-BarringFactor                    ENUMERATED {
                                            p00, p05, p10, p15, p20, p25, p30, p40,
                                            p50, p60, p70, p75, p80, p85, p90, p95},
    ac-BarringTime                      ENUMERATED {s4, s8, s16, s32, s64, s128, s256, s512},
    ac-BarringForSpecialAC              BIT STRING (SIZE(5))
}
*/
type ACBarringConfig struct {
	Factor       uint8
	Time         uint8
	ForSpecialAC uint8
}

func (ie *ACBarringConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.Factor, 16, false)
	packEnum(c, ie.Time, 8, false)
	c.WriteBits(uint64(ie.ForSpecialAC), 5)
	return c.Err()
}

func (ie *ACBarringConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.Factor = unpackEnum[uint8](c, 16, false)
	ie.Time = unpackEnum[uint8](c, 8, false)
	ie.ForSpecialAC = uint8(c.ReadBits(5))
	return c.Err()
}

// SubframeAllocation selects the MBSFN subframeAllocation alternative.
type SubframeAllocation uint8

const (
	SubframeAllocationOneFrame SubframeAllocation = iota
	SubframeAllocationFourFrames
)

// 6.3.7 MBSFN-SubframeConfig
/*
MBSFN-SubframeConfig ::=            SEQUENCE {
    radioframeAllocationPeriod          ENUMERATED {n1, n2, n4, n8, n16, n32},
    radioframeAllocationOffset          INTEGER (0..7),
    subframeAllocation                  CHOICE {
        oneFrame                            BIT STRING (SIZE(6)),
        fourFrames                          BIT STRING (SIZE(24))
    }
}
*/
type MBSFNSubframeConfig struct {
	RadioframeAllocationPeriod uint8
	RadioframeAllocationOffset uint8
	Choice                     SubframeAllocation
	SubframeAllocation         uint32
}

func (ie *MBSFNSubframeConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.RadioframeAllocationPeriod, 6, false)
	packInt(c, int(ie.RadioframeAllocationOffset), 0, 7)
	switch ie.Choice {
	case SubframeAllocationOneFrame:
		per.EncChoice(c, 0, 2, false)
		c.WriteBits(uint64(ie.SubframeAllocation), 6)
	case SubframeAllocationFourFrames:
		per.EncChoice(c, 1, 2, false)
		c.WriteBits(uint64(ie.SubframeAllocation), 24)
	default:
		return unsupported(c, "subframeAllocation", int(ie.Choice))
	}
	return c.Err()
}

func (ie *MBSFNSubframeConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.RadioframeAllocationPeriod = unpackEnum[uint8](c, 6, false)
	ie.RadioframeAllocationOffset = uint8(unpackInt(c, 0, 7))
	idx, _ := per.DecChoice(c, 2, false)
	ie.Choice = SubframeAllocation(idx)
	if ie.Choice == SubframeAllocationOneFrame {
		ie.SubframeAllocation = uint32(c.ReadBits(6))
	} else {
		ie.SubframeAllocation = uint32(c.ReadBits(24))
	}
	return c.Err()
}
