// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"fmt"

	"github.com/hhorai/lterrc/encoding/per"
)

// SIBType identifies a system information block carried by
// SystemInformation. SIBType2 to SIBType11 are root alternatives of
// sib-TypeAndInfo, SIBType12 and SIBType13 are its v920 extensions.
type SIBType uint8

const (
	SIBType2 SIBType = iota
	SIBType3
	SIBType4
	SIBType5
	SIBType6
	SIBType7
	SIBType8
	SIBType9
	SIBType10
	SIBType11
	SIBType12
	SIBType13
)

// number of root alternatives of sib-TypeAndInfo.
const sibRootTypes = 10

func (t SIBType) String() string {
	return fmt.Sprintf("SIB%d", int(t)+2)
}

// SystemInformationBlock is implemented by SIB2 to SIB13.
type SystemInformationBlock interface {
	Packer
	SIBType() SIBType
}

// newSIB allocates the block for t, or nil for an unknown type.
func newSIB(t SIBType) SystemInformationBlock {
	switch t {
	case SIBType2:
		return new(SystemInformationBlockType2)
	case SIBType3:
		return new(SystemInformationBlockType3)
	case SIBType4:
		return new(SystemInformationBlockType4)
	case SIBType5:
		return new(SystemInformationBlockType5)
	case SIBType6:
		return new(SystemInformationBlockType6)
	case SIBType7:
		return new(SystemInformationBlockType7)
	case SIBType8:
		return new(SystemInformationBlockType8)
	case SIBType9:
		return new(SystemInformationBlockType9)
	case SIBType10:
		return new(SystemInformationBlockType10)
	case SIBType11:
		return new(SystemInformationBlockType11)
	case SIBType12:
		return new(SystemInformationBlockType12)
	case SIBType13:
		return new(SystemInformationBlockType13)
	}
	return nil
}

// 6.2.2 MasterInformationBlock
/*
MasterInformationBlock ::=      SEQUENCE {
    dl-Bandwidth                    ENUMERATED {
                                        n6, n15, n25, n50, n75, n100},
    phich-Config                    PHICH-Config,
    systemFrameNumber               BIT STRING (SIZE (8)),
    spare                           BIT STRING (SIZE (10))
}
*/
// SystemFrameNumber holds the 8 most significant bits of the SFN.
type MasterInformationBlock struct {
	DLBandwidth       Bandwidth
	PHICHConfig       PHICHConfig
	SystemFrameNumber uint8
}

func (ie *MasterInformationBlock) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.DLBandwidth, 6, false)
	if err := ie.PHICHConfig.Pack(c); err != nil {
		return err
	}
	c.WriteBits(uint64(ie.SystemFrameNumber), 8)
	c.WriteBits(0, 10)
	return c.Err()
}

func (ie *MasterInformationBlock) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MasterInformationBlock{}
	ie.DLBandwidth = unpackEnum[Bandwidth](c, 6, false)
	if err := ie.PHICHConfig.Unpack(c); err != nil {
		return err
	}
	ie.SystemFrameNumber = uint8(c.ReadBits(8))
	c.Skip(10)
	return c.Err()
}

// 6.2.2 SystemInformationBlockType1
/*
SystemInformationBlockType1 ::=     SEQUENCE {
    cellAccessRelatedInfo               SEQUENCE {
        plmn-IdentityList                   PLMN-IdentityList,
        trackingAreaCode                    TrackingAreaCode,
        cellIdentity                        CellIdentity,
        cellBarred                          ENUMERATED {barred, notBarred},
        intraFreqReselection                ENUMERATED {allowed, notAllowed},
        csg-Indication                      BOOLEAN,
        csg-Identity                        CSG-Identity            OPTIONAL    -- Need OR
    },
    cellSelectionInfo                   SEQUENCE {
        q-RxLevMin                          Q-RxLevMin,
        q-RxLevMinOffset                    INTEGER (1..8)          OPTIONAL    -- Need OP
    },
    p-Max                               P-Max                       OPTIONAL,   -- Need OP
    freqBandIndicator                   INTEGER (1..64),
    schedulingInfoList                  SchedulingInfoList,
    tdd-Config                          TDD-Config                  OPTIONAL,   -- Cond TDD
    si-WindowLength                     ENUMERATED {
                                            ms1, ms2, ms5, ms10, ms15, ms20,
                                            ms40},
    systemInfoValueTag                  INTEGER (0..31),
    nonCriticalExtension                SystemInformationBlockType1-v890-IEs    OPTIONAL
}

PLMN-IdentityList ::=               SEQUENCE (SIZE (1..6)) OF PLMN-IdentityInfo

PLMN-IdentityInfo ::=               SEQUENCE {
    plmn-Identity                       PLMN-Identity,
    cellReservedForOperatorUse          ENUMERATED {reserved, notReserved}
}

SchedulingInfoList ::= SEQUENCE (SIZE (1..maxSI-Message)) OF SchedulingInfo
*/
type SystemInformationBlockType1 struct {
	PLMNIdentityList     []PLMNIdentityInfo
	TrackingAreaCode     TrackingAreaCode
	CellIdentity         CellIdentity
	CellBarred           uint8
	IntraFreqReselection uint8
	CSGIndication        bool
	CSGIdentity          *CSGIdentity
	QRxLevMin            QRxLevMin
	QRxLevMinOffset      *uint8
	PMax                 *PMax
	FreqBandIndicator    uint8
	SchedulingInfoList   []SchedulingInfo
	TDDConfig            *TDDConfig
	SIWindowLength       uint8
	SystemInfoValueTag   uint8
	// NonCriticalExtension records a received v890 extension.
	NonCriticalExtension bool
}

// CellBarred and IntraFreqReselection values.
const (
	CellBarredBarred    = 0
	CellBarredNotBarred = 1

	IntraFreqReselectionAllowed    = 0
	IntraFreqReselectionNotAllowed = 1
)

const maxPLMNIdentities = 6

type PLMNIdentityInfo struct {
	PLMNIdentity               PLMNIdentity
	CellReservedForOperatorUse uint8
}

func (ie *PLMNIdentityInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.CellReservedForOperatorUse, 2, false)
	return c.Err()
}

func (ie *PLMNIdentityInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PLMNIdentity.Unpack(c); err != nil {
		return err
	}
	ie.CellReservedForOperatorUse = unpackEnum[uint8](c, 2, false)
	return c.Err()
}

// 6.2.2 SchedulingInfo
/*
SchedulingInfo ::=                  SEQUENCE {
    si-Periodicity                      ENUMERATED {
                                            rf8, rf16, rf32, rf64, rf128, rf256, rf512},
    sib-MappingInfo                     SIB-MappingInfo
}

SIB-MappingInfo ::=                 SEQUENCE (SIZE (0..maxSIB-1)) OF SIB-Type

SIB-Type ::=                        ENUMERATED {
                                        sibType3, sibType4, sibType5, sibType6,
                                        sibType7, sibType8, sibType9, sibType10,
                                        sibType11, sibType12-v920, sibType13-v920,
                                        spare5, spare4, spare3, spare2, spare1, ...}
*/
// SIBMappingInfo lists the blocks other than SIB2 carried by the message,
// starting from SIBType3.
type SchedulingInfo struct {
	SIPeriodicity  uint8
	SIBMappingInfo []SIBType
}

func (ie *SchedulingInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.SIPeriodicity, 7, false)
	per.EncSequenceOf(c, len(ie.SIBMappingInfo), 0, maxSIB-1)
	for _, t := range ie.SIBMappingInfo {
		if t < SIBType3 {
			return unsupported(c, "SIB-Type", int(t))
		}
		packEnum(c, t-SIBType3, 16, true)
	}
	return c.Err()
}

func (ie *SchedulingInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SchedulingInfo{}
	ie.SIPeriodicity = unpackEnum[uint8](c, 7, false)
	n := per.DecSequenceOf(c, 0, maxSIB-1)
	if err := c.Err(); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	ie.SIBMappingInfo = make([]SIBType, n)
	for i := range ie.SIBMappingInfo {
		ie.SIBMappingInfo[i] = unpackEnum[SIBType](c, 16, true) + SIBType3
	}
	return c.Err()
}

func (ie *SystemInformationBlockType1) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.PMax != nil, ie.TDDConfig != nil, false)

	// cellAccessRelatedInfo
	per.EncSequence(c, false, ie.CSGIdentity != nil)
	if err := packList(c, ie.PLMNIdentityList, 1, maxPLMNIdentities); err != nil {
		return err
	}
	if err := ie.TrackingAreaCode.Pack(c); err != nil {
		return err
	}
	if err := ie.CellIdentity.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.CellBarred, 2, false)
	packEnum(c, ie.IntraFreqReselection, 2, false)
	c.WriteBool(ie.CSGIndication)
	if err := packOptional(c, ie.CSGIdentity != nil, ie.CSGIdentity); err != nil {
		return err
	}

	// cellSelectionInfo
	per.EncSequence(c, false, ie.QRxLevMinOffset != nil)
	if err := ie.QRxLevMin.Pack(c); err != nil {
		return err
	}
	if ie.QRxLevMinOffset != nil {
		packInt(c, int(*ie.QRxLevMinOffset), 1, 8)
	}

	if err := packOptional(c, ie.PMax != nil, ie.PMax); err != nil {
		return err
	}
	packInt(c, int(ie.FreqBandIndicator), 1, 64)
	if err := packList(c, ie.SchedulingInfoList, 1, maxSIMessage); err != nil {
		return err
	}
	if err := packOptional(c, ie.TDDConfig != nil, ie.TDDConfig); err != nil {
		return err
	}
	packEnum(c, ie.SIWindowLength, 7, false)
	packInt(c, int(ie.SystemInfoValueTag), 0, 31)
	return c.Err()
}

func (ie *SystemInformationBlockType1) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType1{}
	var pmax, tdd, nce, csg, offset bool
	per.DecSequence(c, false, &pmax, &tdd, &nce)

	per.DecSequence(c, false, &csg)
	var err error
	if ie.PLMNIdentityList, err =
		unpackList[PLMNIdentityInfo](c, 1, maxPLMNIdentities); err != nil {
		return err
	}
	if err := ie.TrackingAreaCode.Unpack(c); err != nil {
		return err
	}
	if err := ie.CellIdentity.Unpack(c); err != nil {
		return err
	}
	ie.CellBarred = unpackEnum[uint8](c, 2, false)
	ie.IntraFreqReselection = unpackEnum[uint8](c, 2, false)
	ie.CSGIndication = c.ReadBool()
	if ie.CSGIdentity, err = unpackOptional[CSGIdentity](c, csg); err != nil {
		return err
	}

	per.DecSequence(c, false, &offset)
	if err := ie.QRxLevMin.Unpack(c); err != nil {
		return err
	}
	if offset {
		v := uint8(unpackInt(c, 1, 8))
		ie.QRxLevMinOffset = &v
	}

	if ie.PMax, err = unpackOptional[PMax](c, pmax); err != nil {
		return err
	}
	ie.FreqBandIndicator = uint8(unpackInt(c, 1, 64))
	if ie.SchedulingInfoList, err =
		unpackList[SchedulingInfo](c, 1, maxSIMessage); err != nil {
		return err
	}
	if ie.TDDConfig, err = unpackOptional[TDDConfig](c, tdd); err != nil {
		return err
	}
	ie.SIWindowLength = unpackEnum[uint8](c, 7, false)
	ie.SystemInfoValueTag = uint8(unpackInt(c, 0, 31))
	ie.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"SystemInformationBlockType1")
	return c.Err()
}

// 6.3.1 SystemInformationBlockType2
/*
SystemInformationBlockType2 ::=     SEQUENCE {
    ac-BarringInfo                      SEQUENCE {
        ac-BarringForEmergency              BOOLEAN,
        ac-BarringForMO-Signalling          AC-BarringConfig        OPTIONAL,   -- Need OP
        ac-BarringForMO-Data                AC-BarringConfig        OPTIONAL    -- Need OP
    }                                                               OPTIONAL,   -- Need OP
    radioResourceConfigCommon           RadioResourceConfigCommonSIB,
    ue-TimersAndConstants               UE-TimersAndConstants,
    freqInfo                            SEQUENCE {
        ul-CarrierFreq                      ARFCN-ValueEUTRA        OPTIONAL,   -- Need OP
        ul-Bandwidth                        ENUMERATED {n6, n15, n25, n50, n75, n100}
                                                                    OPTIONAL,   -- Need OP
        additionalSpectrumEmission          AdditionalSpectrumEmission
    },
    mbsfn-SubframeConfigList            MBSFN-SubframeConfigList    OPTIONAL,   -- Need OR
    timeAlignmentTimerCommon            TimeAlignmentTimer,
    ...
}

MBSFN-SubframeConfigList ::=        SEQUENCE (SIZE (1..maxMBSFN-Allocations)) OF MBSFN-SubframeConfig
*/
type SystemInformationBlockType2 struct {
	ACBarringInfo              *ACBarringInfo
	RadioResourceConfigCommon  RadioResourceConfigCommonSIB
	UETimersAndConstants       UETimersAndConstants
	ULCarrierFreq              *ARFCNValueEUTRA
	ULBandwidth                *Bandwidth
	AdditionalSpectrumEmission AdditionalSpectrumEmission
	MBSFNSubframeConfigList    []MBSFNSubframeConfig
	TimeAlignmentTimerCommon   TimeAlignmentTimer
}

type ACBarringInfo struct {
	ACBarringForEmergency    bool
	ACBarringForMOSignalling *ACBarringConfig
	ACBarringForMOData       *ACBarringConfig
}

func (ie *ACBarringInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.ACBarringForMOSignalling != nil,
		ie.ACBarringForMOData != nil)
	c.WriteBool(ie.ACBarringForEmergency)
	if err := packOptional(c, ie.ACBarringForMOSignalling != nil,
		ie.ACBarringForMOSignalling); err != nil {
		return err
	}
	return packOptional(c, ie.ACBarringForMOData != nil, ie.ACBarringForMOData)
}

func (ie *ACBarringInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ACBarringInfo{}
	var sig, data bool
	per.DecSequence(c, false, &sig, &data)
	ie.ACBarringForEmergency = c.ReadBool()
	var err error
	if ie.ACBarringForMOSignalling, err = unpackOptional[ACBarringConfig](c, sig); err != nil {
		return err
	}
	ie.ACBarringForMOData, err = unpackOptional[ACBarringConfig](c, data)
	return err
}

func (*SystemInformationBlockType2) SIBType() SIBType { return SIBType2 }

func (ie *SystemInformationBlockType2) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.ACBarringInfo != nil, len(ie.MBSFNSubframeConfigList) != 0)
	if err := packOptional(c, ie.ACBarringInfo != nil, ie.ACBarringInfo); err != nil {
		return err
	}
	if err := ie.RadioResourceConfigCommon.Pack(c); err != nil {
		return err
	}
	if err := ie.UETimersAndConstants.Pack(c); err != nil {
		return err
	}

	// freqInfo
	per.EncSequence(c, false, ie.ULCarrierFreq != nil, ie.ULBandwidth != nil)
	if err := packOptional(c, ie.ULCarrierFreq != nil, ie.ULCarrierFreq); err != nil {
		return err
	}
	if ie.ULBandwidth != nil {
		packEnum(c, *ie.ULBandwidth, 6, false)
	}
	if err := ie.AdditionalSpectrumEmission.Pack(c); err != nil {
		return err
	}

	if len(ie.MBSFNSubframeConfigList) != 0 {
		if err := packList(c, ie.MBSFNSubframeConfigList, 1, maxMBSFNAllocations); err != nil {
			return err
		}
	}
	return ie.TimeAlignmentTimerCommon.Pack(c)
}

func (ie *SystemInformationBlockType2) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType2{}
	var barring, mbsfn, ulFreq, ulBw bool
	ext := per.DecSequence(c, true, &barring, &mbsfn)
	var err error
	if ie.ACBarringInfo, err = unpackOptional[ACBarringInfo](c, barring); err != nil {
		return err
	}
	if err := ie.RadioResourceConfigCommon.Unpack(c); err != nil {
		return err
	}
	if err := ie.UETimersAndConstants.Unpack(c); err != nil {
		return err
	}

	per.DecSequence(c, false, &ulFreq, &ulBw)
	if ie.ULCarrierFreq, err = unpackOptional[ARFCNValueEUTRA](c, ulFreq); err != nil {
		return err
	}
	if ulBw {
		v := unpackEnum[Bandwidth](c, 6, false)
		ie.ULBandwidth = &v
	}
	if err := ie.AdditionalSpectrumEmission.Unpack(c); err != nil {
		return err
	}

	if mbsfn {
		if ie.MBSFNSubframeConfigList, err =
			unpackList[MBSFNSubframeConfig](c, 1, maxMBSFNAllocations); err != nil {
			return err
		}
	}
	if err := ie.TimeAlignmentTimerCommon.Unpack(c); err != nil {
		return err
	}
	return skipExtensions(c, ext, "SystemInformationBlockType2")
}

// 6.3.1 SystemInformationBlockType3
/*
SystemInformationBlockType3 ::=     SEQUENCE {
    cellReselectionInfoCommon           SEQUENCE {
        q-Hyst                              ENUMERATED {
                                                dB0, dB1, dB2, dB3, dB4, dB5, dB6, dB8, dB10,
                                                dB12, dB14, dB16, dB18, dB20, dB22, dB24},
        speedStateReselectionPars           SEQUENCE {
            mobilityStateParameters             MobilityStateParameters,
            q-HystSF                            SEQUENCE {
                sf-Medium                           ENUMERATED {
                                                        dB-6, dB-4, dB-2, dB0},
                sf-High                             ENUMERATED {
                                                        dB-6, dB-4, dB-2, dB0}
            }
        }                                                               OPTIONAL        -- Need OP
    },
    cellReselectionServingFreqInfo      SEQUENCE {
        s-NonIntraSearch                    ReselectionThreshold        OPTIONAL,       -- Need OP
        threshServingLow                    ReselectionThreshold,
        cellReselectionPriority             CellReselectionPriority
    },
    intraFreqCellReselectionInfo        SEQUENCE {
        q-RxLevMin                          Q-RxLevMin,
        p-Max                               P-Max                       OPTIONAL,       -- Need OP
        s-IntraSearch                       ReselectionThreshold        OPTIONAL,       -- Need OP
        allowedMeasBandwidth                AllowedMeasBandwidth        OPTIONAL,       -- Need OP
        presenceAntennaPort1                PresenceAntennaPort1,
        neighCellConfig                     NeighCellConfig,
        t-ReselectionEUTRA                  T-Reselection,
        t-ReselectionEUTRA-SF               SpeedStateScaleFactors      OPTIONAL        -- Need OP
    },
    ...
}
*/
type SystemInformationBlockType3 struct {
	QHyst                     uint8
	SpeedStateReselectionPars *SpeedStateReselectionPars
	SNonIntraSearch           *ReselectionThreshold
	ThreshServingLow          ReselectionThreshold
	CellReselectionPriority   CellReselectionPriority
	QRxLevMin                 QRxLevMin
	PMax                      *PMax
	SIntraSearch              *ReselectionThreshold
	AllowedMeasBandwidth      *AllowedMeasBandwidth
	PresenceAntennaPort1      bool
	NeighCellConfig           uint8
	TReselectionEUTRA         TReselection
	TReselectionEUTRASF       *SpeedStateScaleFactors
}

// SpeedStateReselectionPars holds the mobility state parameters with the
// q-HystSF scaling, where 0..3 is -6, -4, -2 and 0 dB.
type SpeedStateReselectionPars struct {
	MobilityStateParameters MobilityStateParameters
	QHystSFMedium           uint8
	QHystSFHigh             uint8
}

func (ie *SpeedStateReselectionPars) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.MobilityStateParameters.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.QHystSFMedium, 4, false)
	packEnum(c, ie.QHystSFHigh, 4, false)
	return c.Err()
}

func (ie *SpeedStateReselectionPars) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.MobilityStateParameters.Unpack(c); err != nil {
		return err
	}
	ie.QHystSFMedium = unpackEnum[uint8](c, 4, false)
	ie.QHystSFHigh = unpackEnum[uint8](c, 4, false)
	return c.Err()
}

func (*SystemInformationBlockType3) SIBType() SIBType { return SIBType3 }

func (ie *SystemInformationBlockType3) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)

	// cellReselectionInfoCommon
	per.EncSequence(c, false, ie.SpeedStateReselectionPars != nil)
	packEnum(c, ie.QHyst, 16, false)
	if err := packOptional(c, ie.SpeedStateReselectionPars != nil,
		ie.SpeedStateReselectionPars); err != nil {
		return err
	}

	// cellReselectionServingFreqInfo
	per.EncSequence(c, false, ie.SNonIntraSearch != nil)
	if err := packOptional(c, ie.SNonIntraSearch != nil, ie.SNonIntraSearch); err != nil {
		return err
	}
	if err := ie.ThreshServingLow.Pack(c); err != nil {
		return err
	}
	if err := ie.CellReselectionPriority.Pack(c); err != nil {
		return err
	}

	// intraFreqCellReselectionInfo
	per.EncSequence(c, false, ie.PMax != nil, ie.SIntraSearch != nil,
		ie.AllowedMeasBandwidth != nil, ie.TReselectionEUTRASF != nil)
	if err := ie.QRxLevMin.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.PMax != nil, ie.PMax); err != nil {
		return err
	}
	if err := packOptional(c, ie.SIntraSearch != nil, ie.SIntraSearch); err != nil {
		return err
	}
	if err := packOptional(c, ie.AllowedMeasBandwidth != nil,
		ie.AllowedMeasBandwidth); err != nil {
		return err
	}
	c.WriteBool(ie.PresenceAntennaPort1)
	c.WriteBits(uint64(ie.NeighCellConfig), 2)
	if err := ie.TReselectionEUTRA.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.TReselectionEUTRASF != nil, ie.TReselectionEUTRASF)
}

func (ie *SystemInformationBlockType3) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType3{}
	ext := per.DecSequence(c, true)

	var speed bool
	per.DecSequence(c, false, &speed)
	ie.QHyst = unpackEnum[uint8](c, 16, false)
	var err error
	if ie.SpeedStateReselectionPars, err =
		unpackOptional[SpeedStateReselectionPars](c, speed); err != nil {
		return err
	}

	var nonIntra bool
	per.DecSequence(c, false, &nonIntra)
	if ie.SNonIntraSearch, err = unpackOptional[ReselectionThreshold](c, nonIntra); err != nil {
		return err
	}
	if err := ie.ThreshServingLow.Unpack(c); err != nil {
		return err
	}
	if err := ie.CellReselectionPriority.Unpack(c); err != nil {
		return err
	}

	var pmax, intra, bw, sf bool
	per.DecSequence(c, false, &pmax, &intra, &bw, &sf)
	if err := ie.QRxLevMin.Unpack(c); err != nil {
		return err
	}
	if ie.PMax, err = unpackOptional[PMax](c, pmax); err != nil {
		return err
	}
	if ie.SIntraSearch, err = unpackOptional[ReselectionThreshold](c, intra); err != nil {
		return err
	}
	if ie.AllowedMeasBandwidth, err = unpackOptional[AllowedMeasBandwidth](c, bw); err != nil {
		return err
	}
	ie.PresenceAntennaPort1 = c.ReadBool()
	ie.NeighCellConfig = uint8(c.ReadBits(2))
	if err := ie.TReselectionEUTRA.Unpack(c); err != nil {
		return err
	}
	if ie.TReselectionEUTRASF, err = unpackOptional[SpeedStateScaleFactors](c, sf); err != nil {
		return err
	}
	return skipExtensions(c, ext, "SystemInformationBlockType3")
}
