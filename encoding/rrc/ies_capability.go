// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.6 UE-CapabilityRAT-ContainerList
/*
UE-CapabilityRAT-ContainerList ::=  SEQUENCE (SIZE (0..maxRAT-Capabilities)) OF UE-CapabilityRAT-Container

UE-CapabilityRAT-Container ::=      SEQUENCE {
    rat-Type                            RAT-Type,
    ueCapabilityRAT-Container           OCTET STRING
}
*/
// Container holds the capability of RATType as sent; for RATTypeEUTRA it
// carries an encoded UE-EUTRA-Capability.
type UECapabilityRATContainer struct {
	RATType   RATType
	Container []byte
}

func (ie *UECapabilityRATContainer) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.RATType.Pack(c); err != nil {
		return err
	}
	per.EncOctetString(c, ie.Container)
	return c.Err()
}

func (ie *UECapabilityRATContainer) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = UECapabilityRATContainer{}
	if err := ie.RATType.Unpack(c); err != nil {
		return err
	}
	ie.Container = per.DecOctetString(c)
	return c.Err()
}

// NewEUTRACapabilityContainer encodes capability into an E-UTRA capability
// container.
func NewEUTRACapabilityContainer(capability *UEEUTRACapability) (
	UECapabilityRATContainer, error) {

	inner := per.NewWriter(0)
	if err := capability.Pack(inner); err != nil {
		return UECapabilityRATContainer{}, err
	}
	return UECapabilityRATContainer{
		RATType:   RATTypeEUTRA,
		Container: inner.Bytes(),
	}, nil
}

// EUTRACapability decodes the container as a UE-EUTRA-Capability.
func (ie *UECapabilityRATContainer) EUTRACapability(opts ...per.ReaderOption) (
	*UEEUTRACapability, error) {

	if ie == nil {
		return nil, ErrInvalidInputs
	}
	if ie.RATType != RATTypeEUTRA {
		return nil, &UnsupportedVariantError{
			Kind: "ueCapabilityRAT-Container", Value: int(ie.RATType)}
	}
	capability := new(UEEUTRACapability)
	if err := capability.Unpack(per.NewReader(ie.Container, opts...)); err != nil {
		return nil, err
	}
	return capability, nil
}

// 6.3.6 UE-EUTRA-Capability
/*
UE-EUTRA-Capability ::=             SEQUENCE {
    accessStratumRelease                AccessStratumRelease,
    ue-Category                         INTEGER (1..5),
    pdcp-Parameters                     PDCP-Parameters,
    phyLayerParameters                  PhyLayerParameters,
    rf-Parameters                       RF-Parameters,
    measParameters                      MeasParameters,
    featureGroupIndicators              BIT STRING (SIZE (32))              OPTIONAL,
    interRAT-Parameters                 SEQUENCE {
        utraFDD                             IRAT-ParametersUTRA-FDD         OPTIONAL,
        utraTDD128                          IRAT-ParametersUTRA-TDD128      OPTIONAL,
        utraTDD384                          IRAT-ParametersUTRA-TDD384      OPTIONAL,
        utraTDD768                          IRAT-ParametersUTRA-TDD768      OPTIONAL,
        geran                               IRAT-ParametersGERAN            OPTIONAL,
        cdma2000-HRPD                       IRAT-ParametersCDMA2000-HRPD    OPTIONAL,
        cdma2000-1xRTT                      IRAT-ParametersCDMA2000-1XRTT   OPTIONAL
    },
    nonCriticalExtension                UE-EUTRA-Capability-v920-IEs        OPTIONAL
}

AccessStratumRelease ::=            ENUMERATED {
                                        rel8, rel9, spare6, spare5, spare4, spare3,
                                        spare2, spare1, ...}
*/
type UEEUTRACapability struct {
	AccessStratumRelease   uint8
	UECategory             uint8
	PDCPParameters         PDCPParameters
	PhyLayerParameters     PhyLayerParameters
	SupportedBandListEUTRA []SupportedBandEUTRA
	BandListEUTRA          []BandInfoEUTRA
	FeatureGroupIndicators *uint32
	InterRATParameters     InterRATParameters
	// NonCriticalExtension records a received v920 extension, which is
	// not decoded. It is never encoded.
	NonCriticalExtension bool
}

func (ie *UEEUTRACapability) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.FeatureGroupIndicators != nil, false)
	packEnum(c, ie.AccessStratumRelease, 8, true)
	packInt(c, int(ie.UECategory), 1, 5)
	if err := ie.PDCPParameters.Pack(c); err != nil {
		return err
	}
	if err := ie.PhyLayerParameters.Pack(c); err != nil {
		return err
	}
	if err := packList(c, ie.SupportedBandListEUTRA, 1, maxBands); err != nil {
		return err
	}
	if err := packList(c, ie.BandListEUTRA, 1, maxBands); err != nil {
		return err
	}
	if ie.FeatureGroupIndicators != nil {
		c.WriteBits(uint64(*ie.FeatureGroupIndicators), 32)
	}
	return ie.InterRATParameters.Pack(c)
}

func (ie *UEEUTRACapability) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = UEEUTRACapability{}
	var fgi, nce bool
	per.DecSequence(c, false, &fgi, &nce)
	ie.AccessStratumRelease = unpackEnum[uint8](c, 8, true)
	ie.UECategory = uint8(unpackInt(c, 1, 5))
	if err := ie.PDCPParameters.Unpack(c); err != nil {
		return err
	}
	if err := ie.PhyLayerParameters.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.SupportedBandListEUTRA, err =
		unpackList[SupportedBandEUTRA](c, 1, maxBands); err != nil {
		return err
	}
	if ie.BandListEUTRA, err = unpackList[BandInfoEUTRA](c, 1, maxBands); err != nil {
		return err
	}
	if fgi {
		v := uint32(c.ReadBits(32))
		ie.FeatureGroupIndicators = &v
	}
	if err := ie.InterRATParameters.Unpack(c); err != nil {
		return err
	}
	ie.NonCriticalExtension = unpackNonCriticalExtension(nce, "UE-EUTRA-Capability")
	return c.Err()
}

// 6.3.6 PDCP-Parameters
/*
PDCP-Parameters ::=                 SEQUENCE {
    supportedROHC-Profiles              SEQUENCE {
        profile0x0001                       BOOLEAN,
        profile0x0002                       BOOLEAN,
        profile0x0003                       BOOLEAN,
        profile0x0004                       BOOLEAN,
        profile0x0006                       BOOLEAN,
        profile0x0101                       BOOLEAN,
        profile0x0102                       BOOLEAN,
        profile0x0103                       BOOLEAN,
        profile0x0104                       BOOLEAN
    },
    maxNumberROHC-ContextSessions       ENUMERATED {
                                            cs2, cs4, cs8, cs12, cs16, cs24, cs32,
                                            cs48, cs64, cs128, cs256, cs512, cs1024,
                                            cs16384, spare2, spare1}  DEFAULT cs16,
    ...
}
*/
type PDCPParameters struct {
	SupportedROHCProfiles [9]bool
	// MaxNumberROHCContextSessions is nil for the DEFAULT cs16.
	MaxNumberROHCContextSessions *uint8
}

const maxNumberROHCContextSessionsCS16 = 4

func (ie *PDCPParameters) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	sessions := differsFrom(ie.MaxNumberROHCContextSessions,
		maxNumberROHCContextSessionsCS16)
	per.EncSequence(c, true, sessions)
	for _, p := range ie.SupportedROHCProfiles {
		c.WriteBool(p)
	}
	if sessions {
		packEnum(c, *ie.MaxNumberROHCContextSessions, 16, false)
	}
	return c.Err()
}

func (ie *PDCPParameters) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PDCPParameters{}
	var sessions bool
	ext := per.DecSequence(c, true, &sessions)
	for i := range ie.SupportedROHCProfiles {
		ie.SupportedROHCProfiles[i] = c.ReadBool()
	}
	if sessions {
		v := unpackEnum[uint8](c, 16, false)
		ie.MaxNumberROHCContextSessions = &v
	}
	return skipExtensions(c, ext, "PDCP-Parameters")
}

// PhyLayerParameters ::= SEQUENCE { ue-TxAntennaSelectionSupported BOOLEAN,
// ue-SpecificRefSigsSupported BOOLEAN }
type PhyLayerParameters struct {
	UETxAntennaSelectionSupported bool
	UESpecificRefSigsSupported    bool
}

func (ie *PhyLayerParameters) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBool(ie.UETxAntennaSelectionSupported)
	c.WriteBool(ie.UESpecificRefSigsSupported)
	return c.Err()
}

func (ie *PhyLayerParameters) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.UETxAntennaSelectionSupported = c.ReadBool()
	ie.UESpecificRefSigsSupported = c.ReadBool()
	return c.Err()
}

// SupportedBandEUTRA is an entry of rf-Parameters: SEQUENCE { bandEUTRA
// INTEGER (1..64), halfDuplex BOOLEAN }
type SupportedBandEUTRA struct {
	BandEUTRA  uint8
	HalfDuplex bool
}

func (ie *SupportedBandEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(ie.BandEUTRA), 1, 64)
	c.WriteBool(ie.HalfDuplex)
	return c.Err()
}

func (ie *SupportedBandEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.BandEUTRA = uint8(unpackInt(c, 1, 64))
	ie.HalfDuplex = c.ReadBool()
	return c.Err()
}

// 6.3.6 MeasParameters
/*
BandInfoEUTRA ::=                   SEQUENCE {
    interFreqBandList                   InterFreqBandList,
    interRAT-BandList                   InterRAT-BandList       OPTIONAL
}

InterFreqBandList ::=               SEQUENCE (SIZE (1..maxBands)) OF InterFreqBandInfo

InterFreqBandInfo ::=               SEQUENCE {
    interFreqNeedForGaps                BOOLEAN
}

InterRAT-BandList ::=               SEQUENCE (SIZE (1..maxBands)) OF InterRAT-BandInfo

InterRAT-BandInfo ::=               SEQUENCE {
    interRAT-NeedForGaps                BOOLEAN
}
*/
// The lists hold the need-for-gaps flag of each band.
type BandInfoEUTRA struct {
	InterFreqNeedForGaps []bool
	InterRATNeedForGaps  []bool
}

func packBoolList(c *per.Cursor, list []bool, max int) {
	per.EncSequenceOf(c, len(list), 1, max)
	for _, b := range list {
		c.WriteBool(b)
	}
}

func unpackBoolList(c *per.Cursor, max int) []bool {
	n := per.DecSequenceOf(c, 1, max)
	if c.Err() != nil {
		return nil
	}
	list := make([]bool, n)
	for i := range list {
		list[i] = c.ReadBool()
	}
	return list
}

func (ie *BandInfoEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, len(ie.InterRATNeedForGaps) != 0)
	packBoolList(c, ie.InterFreqNeedForGaps, maxBands)
	if len(ie.InterRATNeedForGaps) != 0 {
		packBoolList(c, ie.InterRATNeedForGaps, maxBands)
	}
	return c.Err()
}

func (ie *BandInfoEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = BandInfoEUTRA{}
	var irat bool
	per.DecSequence(c, false, &irat)
	ie.InterFreqNeedForGaps = unpackBoolList(c, maxBands)
	if irat {
		ie.InterRATNeedForGaps = unpackBoolList(c, maxBands)
	}
	return c.Err()
}

// 6.3.6 IRAT-Parameters
/*
IRAT-ParametersUTRA-FDD ::=         SEQUENCE {
    supportedBandListUTRA-FDD           SupportedBandListUTRA-FDD
}

SupportedBandListUTRA-FDD ::=       SEQUENCE (SIZE (1..maxBands)) OF SupportedBandUTRA-FDD

SupportedBandUTRA-FDD ::=           ENUMERATED {
                                        bandI, bandII, bandIII, bandIV, bandV, bandVI,
                                        bandVII, bandVIII, bandIX, bandX, bandXI,
                                        bandXII, bandXIII, bandXIV, bandXV, bandXVI, ...}

IRAT-ParametersGERAN ::=            SEQUENCE {
    supportedBandListGERAN              SupportedBandListGERAN,
    interRAT-PS-HO-ToGERAN              BOOLEAN
}

IRAT-ParametersCDMA2000-HRPD ::=    SEQUENCE {
    supportedBandListHRPD               SupportedBandListHRPD,
    tx-ConfigHRPD                       ENUMERATED {single, dual},
    rx-ConfigHRPD                       ENUMERATED {single, dual}
}

SupportedBandListHRPD ::= SEQUENCE (SIZE (1..maxCDMA-BandClass)) OF BandclassCDMA2000
*/
// The UTRA TDD and GERAN band enumerations share the 16 value extensible
// layout of SupportedBandUTRA-FDD. An empty band list is an absent RAT.
type InterRATParameters struct {
	UTRAFDD             []uint8
	UTRATDD128          []uint8
	UTRATDD384          []uint8
	UTRATDD768          []uint8
	GERAN               []uint8
	InterRATPSHOToGERAN bool
	CDMA2000HRPD        *IRATParametersCDMA2000
	CDMA20001XRTT       *IRATParametersCDMA2000
}

// IRATParametersCDMA2000 covers IRAT-ParametersCDMA2000-HRPD and
// IRAT-ParametersCDMA2000-1XRTT.
type IRATParametersCDMA2000 struct {
	SupportedBandList []BandclassCDMA2000
	TxConfig          uint8
	RxConfig          uint8
}

func (ie *IRATParametersCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := packList(c, ie.SupportedBandList, 1, maxCDMABandClass); err != nil {
		return err
	}
	packEnum(c, ie.TxConfig, 2, false)
	packEnum(c, ie.RxConfig, 2, false)
	return c.Err()
}

func (ie *IRATParametersCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	if ie.SupportedBandList, err =
		unpackList[BandclassCDMA2000](c, 1, maxCDMABandClass); err != nil {
		return err
	}
	ie.TxConfig = unpackEnum[uint8](c, 2, false)
	ie.RxConfig = unpackEnum[uint8](c, 2, false)
	return c.Err()
}

func packBandList(c *per.Cursor, list []uint8) {
	per.EncSequenceOf(c, len(list), 1, maxBands)
	for _, b := range list {
		packEnum(c, b, 16, true)
	}
}

func unpackBandList(c *per.Cursor) []uint8 {
	n := per.DecSequenceOf(c, 1, maxBands)
	if c.Err() != nil {
		return nil
	}
	list := make([]uint8, n)
	for i := range list {
		list[i] = unpackEnum[uint8](c, 16, true)
	}
	return list
}

func (ie *InterRATParameters) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false,
		len(ie.UTRAFDD) != 0,
		len(ie.UTRATDD128) != 0,
		len(ie.UTRATDD384) != 0,
		len(ie.UTRATDD768) != 0,
		len(ie.GERAN) != 0,
		ie.CDMA2000HRPD != nil,
		ie.CDMA20001XRTT != nil)
	for _, list := range [][]uint8{ie.UTRAFDD, ie.UTRATDD128, ie.UTRATDD384, ie.UTRATDD768} {
		if len(list) != 0 {
			packBandList(c, list)
		}
	}
	if len(ie.GERAN) != 0 {
		packBandList(c, ie.GERAN)
		c.WriteBool(ie.InterRATPSHOToGERAN)
	}
	if err := packOptional(c, ie.CDMA2000HRPD != nil, ie.CDMA2000HRPD); err != nil {
		return err
	}
	return packOptional(c, ie.CDMA20001XRTT != nil, ie.CDMA20001XRTT)
}

func (ie *InterRATParameters) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = InterRATParameters{}
	var fdd, tdd128, tdd384, tdd768, geran, hrpd, rtt bool
	per.DecSequence(c, false, &fdd, &tdd128, &tdd384, &tdd768, &geran, &hrpd, &rtt)
	lists := []struct {
		present bool
		list    *[]uint8
	}{
		{fdd, &ie.UTRAFDD},
		{tdd128, &ie.UTRATDD128},
		{tdd384, &ie.UTRATDD384},
		{tdd768, &ie.UTRATDD768},
		{geran, &ie.GERAN},
	}
	for _, l := range lists {
		if l.present {
			*l.list = unpackBandList(c)
		}
	}
	if geran {
		ie.InterRATPSHOToGERAN = c.ReadBool()
	}
	var err error
	if ie.CDMA2000HRPD, err = unpackOptional[IRATParametersCDMA2000](c, hrpd); err != nil {
		return err
	}
	ie.CDMA20001XRTT, err = unpackOptional[IRATParametersCDMA2000](c, rtt)
	return err
}
