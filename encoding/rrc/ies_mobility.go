// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.4 MobilityControlInfo
/*
MobilityControlInfo ::=             SEQUENCE {
    targetPhysCellId                    PhysCellId,
    carrierFreq                         CarrierFreqEUTRA                OPTIONAL,   -- Cond HO-toEUTRA2
    carrierBandwidth                    CarrierBandwidthEUTRA           OPTIONAL,   -- Cond HO-toEUTRA
    additionalSpectrumEmission          AdditionalSpectrumEmission      OPTIONAL,   -- Cond HO-toEUTRA
    t304                                ENUMERATED {
                                            ms50, ms100, ms150, ms200, ms500, ms1000,
                                            ms2000, spare1},
    newUE-Identity                      C-RNTI,
    radioResourceConfigCommon           RadioResourceConfigCommon,
    rach-ConfigDedicated                RACH-ConfigDedicated            OPTIONAL,   -- Need OP
    ...
}
*/
type MobilityControlInfo struct {
	TargetPhysCellID           PhysCellID
	CarrierFreq                *CarrierFreqEUTRA
	CarrierBandwidth           *CarrierBandwidthEUTRA
	AdditionalSpectrumEmission *AdditionalSpectrumEmission
	T304                       uint8
	NewUEIdentity              CRNTI
	RadioResourceConfigCommon  RadioResourceConfigCommon
	RACHConfigDedicated        *RACHConfigDedicated
}

func (ie *MobilityControlInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		ie.CarrierFreq != nil,
		ie.CarrierBandwidth != nil,
		ie.AdditionalSpectrumEmission != nil,
		ie.RACHConfigDedicated != nil)
	if err := ie.TargetPhysCellID.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.CarrierFreq != nil, ie.CarrierFreq); err != nil {
		return err
	}
	if err := packOptional(c, ie.CarrierBandwidth != nil, ie.CarrierBandwidth); err != nil {
		return err
	}
	if err := packOptional(c, ie.AdditionalSpectrumEmission != nil,
		ie.AdditionalSpectrumEmission); err != nil {
		return err
	}
	packEnum(c, ie.T304, 8, false)
	if err := ie.NewUEIdentity.Pack(c); err != nil {
		return err
	}
	if err := ie.RadioResourceConfigCommon.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.RACHConfigDedicated != nil, ie.RACHConfigDedicated)
}

func (ie *MobilityControlInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MobilityControlInfo{}
	var freq, bw, emission, rach bool
	ext := per.DecSequence(c, true, &freq, &bw, &emission, &rach)
	if err := ie.TargetPhysCellID.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.CarrierFreq, err = unpackOptional[CarrierFreqEUTRA](c, freq); err != nil {
		return err
	}
	if ie.CarrierBandwidth, err = unpackOptional[CarrierBandwidthEUTRA](c, bw); err != nil {
		return err
	}
	if ie.AdditionalSpectrumEmission, err =
		unpackOptional[AdditionalSpectrumEmission](c, emission); err != nil {
		return err
	}
	ie.T304 = unpackEnum[uint8](c, 8, false)
	if err := ie.NewUEIdentity.Unpack(c); err != nil {
		return err
	}
	if err := ie.RadioResourceConfigCommon.Unpack(c); err != nil {
		return err
	}
	if ie.RACHConfigDedicated, err = unpackOptional[RACHConfigDedicated](c, rach); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MobilityControlInfo")
}

// RACHConfigDedicated ::= SEQUENCE { ra-PreambleIndex INTEGER (0..63),
// ra-PRACH-MaskIndex INTEGER (0..15) }
type RACHConfigDedicated struct {
	RAPreambleIndex  uint8
	RAPRACHMaskIndex uint8
}

func (ie *RACHConfigDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(ie.RAPreambleIndex), 0, 63)
	packInt(c, int(ie.RAPRACHMaskIndex), 0, 15)
	return c.Err()
}

func (ie *RACHConfigDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.RAPreambleIndex = uint8(unpackInt(c, 0, 63))
	ie.RAPRACHMaskIndex = uint8(unpackInt(c, 0, 15))
	return c.Err()
}

// NextHopChainingCount ::= INTEGER (0..7)
type NextHopChainingCount uint8

func (ie *NextHopChainingCount) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 7)
	return c.Err()
}

func (ie *NextHopChainingCount) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = NextHopChainingCount(unpackInt(c, 0, 7))
	return c.Err()
}

// HandoverType selects the SecurityConfigHO handoverType alternative.
type HandoverType uint8

const (
	HandoverTypeIntraLTE HandoverType = iota
	HandoverTypeInterRAT
)

// 6.3.3 SecurityConfigHO
/*
SecurityConfigHO ::=        SEQUENCE {
    handoverType                CHOICE {
        intraLTE                    SEQUENCE {
            securityAlgorithmConfig     SecurityAlgorithmConfig     OPTIONAL,   -- Need OP
            keyChangeIndicator          BOOLEAN,
            nextHopChainingCount        NextHopChainingCount
        },
        interRAT                    SEQUENCE {
            securityAlgorithmConfig     SecurityAlgorithmConfig,
            nas-SecurityParamToEUTRA    OCTET STRING (SIZE(6))
        }
    },
    ...
}
*/
// For intraLTE a nil SecurityAlgorithmConfig keeps the current algorithms;
// interRAT requires it.
type SecurityConfigHO struct {
	HandoverType            HandoverType
	SecurityAlgorithmConfig *SecurityAlgorithmConfig
	KeyChangeIndicator      bool
	NextHopChainingCount    NextHopChainingCount
	NASSecurityParamToEUTRA []byte
}

func (ie *SecurityConfigHO) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	switch ie.HandoverType {
	case HandoverTypeIntraLTE:
		per.EncChoice(c, 0, 2, false)
		per.EncSequence(c, false, ie.SecurityAlgorithmConfig != nil)
		if err := packOptional(c, ie.SecurityAlgorithmConfig != nil,
			ie.SecurityAlgorithmConfig); err != nil {
			return err
		}
		c.WriteBool(ie.KeyChangeIndicator)
		return ie.NextHopChainingCount.Pack(c)
	case HandoverTypeInterRAT:
		if ie.SecurityAlgorithmConfig == nil {
			return ErrInvalidInputs
		}
		per.EncChoice(c, 1, 2, false)
		if err := ie.SecurityAlgorithmConfig.Pack(c); err != nil {
			return err
		}
		per.EncFixedOctetString(c, ie.NASSecurityParamToEUTRA, 6)
		return c.Err()
	}
	return unsupported(c, "handoverType", int(ie.HandoverType))
}

func (ie *SecurityConfigHO) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SecurityConfigHO{}
	ext := per.DecSequence(c, true)
	idx, _ := per.DecChoice(c, 2, false)
	ie.HandoverType = HandoverType(idx)
	if ie.HandoverType == HandoverTypeIntraLTE {
		var alg bool
		per.DecSequence(c, false, &alg)
		var err error
		if ie.SecurityAlgorithmConfig, err =
			unpackOptional[SecurityAlgorithmConfig](c, alg); err != nil {
			return err
		}
		ie.KeyChangeIndicator = c.ReadBool()
		if err := ie.NextHopChainingCount.Unpack(c); err != nil {
			return err
		}
	} else {
		ie.SecurityAlgorithmConfig = new(SecurityAlgorithmConfig)
		if err := ie.SecurityAlgorithmConfig.Unpack(c); err != nil {
			return err
		}
		ie.NASSecurityParamToEUTRA = per.DecFixedOctetString(c, 6)
	}
	return skipExtensions(c, ext, "SecurityConfigHO")
}

// SecurityConfigSMC ::= SEQUENCE { securityAlgorithmConfig
// SecurityAlgorithmConfig, ... }
type SecurityConfigSMC struct {
	SecurityAlgorithmConfig SecurityAlgorithmConfig
}

func (ie *SecurityConfigSMC) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	return ie.SecurityAlgorithmConfig.Pack(c)
}

func (ie *SecurityConfigSMC) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ext := per.DecSequence(c, true)
	if err := ie.SecurityAlgorithmConfig.Unpack(c); err != nil {
		return err
	}
	return skipExtensions(c, ext, "SecurityConfigSMC")
}

// RedirectedCarrierType selects the RedirectedCarrierInfo alternative.
type RedirectedCarrierType uint8

const (
	RedirectedCarrierEUTRA RedirectedCarrierType = iota
	RedirectedCarrierGERAN
	RedirectedCarrierUTRAFDD
	RedirectedCarrierUTRATDD
	RedirectedCarrierCDMA2000HRPD
	RedirectedCarrierCDMA20001xRTT
)

// 6.3.6 RedirectedCarrierInfo
/*
RedirectedCarrierInfo ::=           CHOICE {
    eutra                               ARFCN-ValueEUTRA,
    geran                               CarrierFreqsGERAN,
    utra-FDD                            ARFCN-ValueUTRA,
    utra-TDD                            ARFCN-ValueUTRA,
    cdma2000-HRPD                       CarrierFreqCDMA2000,
    cdma2000-1xRTT                      CarrierFreqCDMA2000,
    ...
}
*/
// ARFCN holds the EUTRA or UTRA carrier.
type RedirectedCarrierInfo struct {
	Type     RedirectedCarrierType
	ARFCN    uint16
	GERAN    CarrierFreqsGERAN
	CDMA2000 CarrierFreqCDMA2000
}

func (ie *RedirectedCarrierInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if ie.Type > RedirectedCarrierCDMA20001xRTT {
		return unsupported(c, "RedirectedCarrierInfo", int(ie.Type))
	}
	per.EncChoice(c, int(ie.Type), 6, true)
	switch ie.Type {
	case RedirectedCarrierEUTRA:
		v := ARFCNValueEUTRA(ie.ARFCN)
		return v.Pack(c)
	case RedirectedCarrierGERAN:
		return ie.GERAN.Pack(c)
	case RedirectedCarrierUTRAFDD, RedirectedCarrierUTRATDD:
		v := ARFCNValueUTRA(ie.ARFCN)
		return v.Pack(c)
	}
	return ie.CDMA2000.Pack(c)
}

func (ie *RedirectedCarrierInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RedirectedCarrierInfo{}
	idx, ext := per.DecChoice(c, 6, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext || idx > int(RedirectedCarrierCDMA20001xRTT) {
		if ext {
			idx += 6
		}
		return unsupported(c, "RedirectedCarrierInfo", idx)
	}
	ie.Type = RedirectedCarrierType(idx)
	switch ie.Type {
	case RedirectedCarrierEUTRA:
		var v ARFCNValueEUTRA
		err := v.Unpack(c)
		ie.ARFCN = uint16(v)
		return err
	case RedirectedCarrierGERAN:
		return ie.GERAN.Unpack(c)
	case RedirectedCarrierUTRAFDD, RedirectedCarrierUTRATDD:
		var v ARFCNValueUTRA
		err := v.Unpack(c)
		ie.ARFCN = uint16(v)
		return err
	}
	return ie.CDMA2000.Unpack(c)
}

// 6.3.6 IdleModeMobilityControlInfo
/*
IdleModeMobilityControlInfo ::= SEQUENCE {
    freqPriorityListEUTRA               FreqPriorityListEUTRA           OPTIONAL,   -- Need ON
    freqPriorityListGERAN               FreqsPriorityListGERAN          OPTIONAL,   -- Need ON
    freqPriorityListUTRA-FDD            FreqPriorityListUTRA-FDD        OPTIONAL,   -- Need ON
    freqPriorityListUTRA-TDD            FreqPriorityListUTRA-TDD        OPTIONAL,   -- Need ON
    bandClassPriorityListHRPD           BandClassPriorityListHRPD       OPTIONAL,   -- Need ON
    bandClassPriorityList1XRTT          BandClassPriorityList1XRTT      OPTIONAL,   -- Need ON
    t320                                ENUMERATED {
                                            min5, min10, min20, min30, min60, min120, min180,
                                            spare1}                     OPTIONAL,   -- Need OR
    ...
}

FreqPriorityListEUTRA ::=           SEQUENCE (SIZE (1..maxFreq)) OF FreqPriorityEUTRA
FreqsPriorityListGERAN ::=          SEQUENCE (SIZE (1..maxGNFG)) OF FreqsPriorityGERAN
FreqPriorityListUTRA-FDD ::=        SEQUENCE (SIZE (1..maxUTRA-FDD-Carrier)) OF FreqPriorityUTRA-FDD
FreqPriorityListUTRA-TDD ::=        SEQUENCE (SIZE (1..maxUTRA-TDD-Carrier)) OF FreqPriorityUTRA-TDD
BandClassPriorityListHRPD ::=       SEQUENCE (SIZE (1..maxCDMA-BandClass)) OF BandClassPriorityHRPD
BandClassPriorityList1XRTT ::=      SEQUENCE (SIZE (1..maxCDMA-BandClass)) OF BandClassPriority1XRTT
*/
type IdleModeMobilityControlInfo struct {
	FreqPriorityListEUTRA      []FreqPriorityEUTRA
	FreqPriorityListGERAN      []FreqsPriorityGERAN
	FreqPriorityListUTRAFDD    []FreqPriorityUTRA
	FreqPriorityListUTRATDD    []FreqPriorityUTRA
	BandClassPriorityListHRPD  []BandClassPriority
	BandClassPriorityList1XRTT []BandClassPriority
	T320                       *uint8
}

// FreqPriorityEUTRA ::= SEQUENCE { carrierFreq ARFCN-ValueEUTRA,
// cellReselectionPriority CellReselectionPriority }
type FreqPriorityEUTRA struct {
	CarrierFreq             ARFCNValueEUTRA
	CellReselectionPriority CellReselectionPriority
}

func (ie *FreqPriorityEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Pack(c)
}

func (ie *FreqPriorityEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Unpack(c)
}

type FreqsPriorityGERAN struct {
	CarrierFreqs            CarrierFreqsGERAN
	CellReselectionPriority CellReselectionPriority
}

func (ie *FreqsPriorityGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CarrierFreqs.Pack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Pack(c)
}

func (ie *FreqsPriorityGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CarrierFreqs.Unpack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Unpack(c)
}

// FreqPriorityUTRA is FreqPriorityUTRA-FDD and FreqPriorityUTRA-TDD, which
// share one layout.
type FreqPriorityUTRA struct {
	CarrierFreq             ARFCNValueUTRA
	CellReselectionPriority CellReselectionPriority
}

func (ie *FreqPriorityUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Pack(c)
}

func (ie *FreqPriorityUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Unpack(c)
}

// BandClassPriority is BandClassPriorityHRPD and BandClassPriority1XRTT.
type BandClassPriority struct {
	BandClass               BandclassCDMA2000
	CellReselectionPriority CellReselectionPriority
}

func (ie *BandClassPriority) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.BandClass.Pack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Pack(c)
}

func (ie *BandClassPriority) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.BandClass.Unpack(c); err != nil {
		return err
	}
	return ie.CellReselectionPriority.Unpack(c)
}

func (ie *IdleModeMobilityControlInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		len(ie.FreqPriorityListEUTRA) != 0,
		len(ie.FreqPriorityListGERAN) != 0,
		len(ie.FreqPriorityListUTRAFDD) != 0,
		len(ie.FreqPriorityListUTRATDD) != 0,
		len(ie.BandClassPriorityListHRPD) != 0,
		len(ie.BandClassPriorityList1XRTT) != 0,
		ie.T320 != nil)

	var err error
	if len(ie.FreqPriorityListEUTRA) != 0 {
		err = packList(c, ie.FreqPriorityListEUTRA, 1, maxFreq)
	}
	if err == nil && len(ie.FreqPriorityListGERAN) != 0 {
		err = packList(c, ie.FreqPriorityListGERAN, 1, maxGNFG)
	}
	if err == nil && len(ie.FreqPriorityListUTRAFDD) != 0 {
		err = packList(c, ie.FreqPriorityListUTRAFDD, 1, maxUTRAFDDCarrier)
	}
	if err == nil && len(ie.FreqPriorityListUTRATDD) != 0 {
		err = packList(c, ie.FreqPriorityListUTRATDD, 1, maxUTRATDDCarrier)
	}
	if err == nil && len(ie.BandClassPriorityListHRPD) != 0 {
		err = packList(c, ie.BandClassPriorityListHRPD, 1, maxCDMABandClass)
	}
	if err == nil && len(ie.BandClassPriorityList1XRTT) != 0 {
		err = packList(c, ie.BandClassPriorityList1XRTT, 1, maxCDMABandClass)
	}
	if err != nil {
		return err
	}
	if ie.T320 != nil {
		packEnum(c, *ie.T320, 8, false)
	}
	return c.Err()
}

func (ie *IdleModeMobilityControlInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = IdleModeMobilityControlInfo{}
	var eutra, geran, fdd, tdd, hrpd, rtt, t320 bool
	ext := per.DecSequence(c, true, &eutra, &geran, &fdd, &tdd, &hrpd, &rtt, &t320)

	var err error
	if eutra {
		if ie.FreqPriorityListEUTRA, err =
			unpackList[FreqPriorityEUTRA](c, 1, maxFreq); err != nil {
			return err
		}
	}
	if geran {
		if ie.FreqPriorityListGERAN, err =
			unpackList[FreqsPriorityGERAN](c, 1, maxGNFG); err != nil {
			return err
		}
	}
	if fdd {
		if ie.FreqPriorityListUTRAFDD, err =
			unpackList[FreqPriorityUTRA](c, 1, maxUTRAFDDCarrier); err != nil {
			return err
		}
	}
	if tdd {
		if ie.FreqPriorityListUTRATDD, err =
			unpackList[FreqPriorityUTRA](c, 1, maxUTRATDDCarrier); err != nil {
			return err
		}
	}
	if hrpd {
		if ie.BandClassPriorityListHRPD, err =
			unpackList[BandClassPriority](c, 1, maxCDMABandClass); err != nil {
			return err
		}
	}
	if rtt {
		if ie.BandClassPriorityList1XRTT, err =
			unpackList[BandClassPriority](c, 1, maxCDMABandClass); err != nil {
			return err
		}
	}
	if t320 {
		v := unpackEnum[uint8](c, 8, false)
		ie.T320 = &v
	}
	return skipExtensions(c, ext, "IdleModeMobilityControlInfo")
}

// SIOrPSIType selects between GERAN SI and PSI messages.
type SIOrPSIType uint8

const (
	SIOrPSISI SIOrPSIType = iota
	SIOrPSIPSI
)

// SI-OrPSI-GERAN ::= CHOICE { si SystemInfoListGERAN, psi SystemInfoListGERAN }
//
// SystemInfoListGERAN ::= SEQUENCE (SIZE (1..maxGERAN-SI)) OF
// OCTET STRING (SIZE (1..23))
type SIOrPSIGERAN struct {
	Type SIOrPSIType
	List [][]byte
}

func (ie *SIOrPSIGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if ie.Type > SIOrPSIPSI {
		return unsupported(c, "SI-OrPSI-GERAN", int(ie.Type))
	}
	per.EncChoice(c, int(ie.Type), 2, false)
	per.EncSequenceOf(c, len(ie.List), 1, maxGERANSI)
	for _, si := range ie.List {
		per.EncBoundedOctetString(c, si, 1, 23)
	}
	return c.Err()
}

func (ie *SIOrPSIGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SIOrPSIGERAN{}
	idx, _ := per.DecChoice(c, 2, false)
	ie.Type = SIOrPSIType(idx)
	n := per.DecSequenceOf(c, 1, maxGERANSI)
	if err := c.Err(); err != nil {
		return err
	}
	ie.List = make([][]byte, n)
	for i := range ie.List {
		ie.List[i] = per.DecBoundedOctetString(c, 1, 23)
	}
	return c.Err()
}

// 6.2.2 MobilityFromEUTRACommand purpose
/*
Handover ::=                        SEQUENCE {
    targetRAT-Type                      ENUMERATED {
                                            utra, geran, cdma2000-1XRTT, cdma2000-HRPD,
                                            spare4, spare3, spare2, spare1, ...},
    targetRAT-MessageContainer          OCTET STRING,
    nas-SecurityParamFromEUTRA          OCTET STRING (SIZE (1))     OPTIONAL,   -- Cond UTRAGERAN
    systemInformation                   SI-OrPSI-GERAN              OPTIONAL    -- Cond PSHO
}
*/
type Handover struct {
	TargetRATType             TargetRATType
	TargetRATMessageContainer []byte
	NASSecurityParamFromEUTRA *uint8
	SystemInformation         *SIOrPSIGERAN
}

// TargetRATType is the targetRAT-Type of Handover.
type TargetRATType uint8

const (
	TargetRATUTRA TargetRATType = iota
	TargetRATGERAN
	TargetRATCDMA20001XRTT
	TargetRATCDMA2000HRPD
)

func (ie *Handover) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.NASSecurityParamFromEUTRA != nil,
		ie.SystemInformation != nil)
	packEnum(c, ie.TargetRATType, 8, true)
	per.EncOctetString(c, ie.TargetRATMessageContainer)
	if ie.NASSecurityParamFromEUTRA != nil {
		c.WriteBits(uint64(*ie.NASSecurityParamFromEUTRA), 8)
	}
	return packOptional(c, ie.SystemInformation != nil, ie.SystemInformation)
}

func (ie *Handover) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = Handover{}
	var nas, si bool
	per.DecSequence(c, false, &nas, &si)
	ie.TargetRATType = unpackEnum[TargetRATType](c, 8, true)
	ie.TargetRATMessageContainer = per.DecOctetString(c)
	if nas {
		v := uint8(c.ReadBits(8))
		ie.NASSecurityParamFromEUTRA = &v
	}
	var err error
	ie.SystemInformation, err = unpackOptional[SIOrPSIGERAN](c, si)
	return err
}

// 6.2.2 MobilityFromEUTRACommand purpose
/*
CellChangeOrder ::=                 SEQUENCE {
    t304                                ENUMERATED {
                                            ms100, ms200, ms500, ms1000,
                                            ms2000, ms4000, ms8000, spare1},
    targetRAT-Type                      CHOICE {
        geran                               SEQUENCE {
            physCellId                          PhysCellIdGERAN,
            carrierFreq                         CarrierFreqGERAN,
            networkControlOrder                 BIT STRING (SIZE (2))       OPTIONAL,   -- Need OP
            systemInformation                   SI-OrPSI-GERAN              OPTIONAL    -- Need OP
        },
        ...
    }
}
*/
type CellChangeOrder struct {
	T304                uint8
	PhysCellID          PhysCellIDGERAN
	CarrierFreq         CarrierFreqGERAN
	NetworkControlOrder *uint8
	SystemInformation   *SIOrPSIGERAN
}

func (ie *CellChangeOrder) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.T304, 8, false)
	per.EncChoice(c, 0, 1, true)
	per.EncSequence(c, false, ie.NetworkControlOrder != nil, ie.SystemInformation != nil)
	if err := ie.PhysCellID.Pack(c); err != nil {
		return err
	}
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	if ie.NetworkControlOrder != nil {
		c.WriteBits(uint64(*ie.NetworkControlOrder), 2)
	}
	return packOptional(c, ie.SystemInformation != nil, ie.SystemInformation)
}

func (ie *CellChangeOrder) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CellChangeOrder{}
	ie.T304 = unpackEnum[uint8](c, 8, false)
	idx, ext := per.DecChoice(c, 1, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext {
		return unsupported(c, "CellChangeOrder targetRAT-Type", 1+idx)
	}
	var nco, si bool
	per.DecSequence(c, false, &nco, &si)
	if err := ie.PhysCellID.Unpack(c); err != nil {
		return err
	}
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	if nco {
		v := uint8(c.ReadBits(2))
		ie.NetworkControlOrder = &v
	}
	var err error
	ie.SystemInformation, err = unpackOptional[SIOrPSIGERAN](c, si)
	return err
}
