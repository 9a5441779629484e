// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhorai/lterrc/encoding/per"
)

func testSIB2() *SystemInformationBlockType2 {
	return &SystemInformationBlockType2{
		ACBarringInfo: &ACBarringInfo{
			ACBarringForMOData: &ACBarringConfig{Factor: 4, Time: 2, ForSpecialAC: 0x1f},
		},
		RadioResourceConfigCommon: RadioResourceConfigCommonSIB{
			RACHConfigCommon: RACHConfigCommon{
				NumberOfRAPreambles:                15,
				PowerRampingStep:                   2,
				PreambleInitialReceivedTargetPower: 10,
				PreambleTransMax:                   6,
				RAResponseWindowSize:               7,
				MACContentionResolutionTimer:       7,
				MaxHARQMsg3Tx:                      4,
			},
			BCCHConfig: BCCHConfig{ModificationPeriodCoeff: 1},
			PCCHConfig: PCCHConfig{DefaultPagingCycle: 2, NB: 2},
			PRACHConfig: PRACHConfigSIB{
				RootSequenceIndex: 22,
				PRACHConfigInfo:   PRACHConfigInfo{PRACHConfigIndex: 3, ZeroCorrelationZoneConfig: 12, PRACHFreqOffset: 4},
			},
			PDSCHConfigCommon: PDSCHConfigCommon{ReferenceSignalPower: 18, PB: 1},
			PUSCHConfigCommon: PUSCHConfigCommon{NSB: 1, PUSCHHoppingOffset: 4},
			PUCCHConfigCommon: PUCCHConfigCommon{DeltaPUCCHShift: 1, NRBCQI: 1, N1PUCCHAN: 36},
			UplinkPowerControlCommon: UplinkPowerControlCommon{
				P0NominalPUSCH:    -85,
				Alpha:             6,
				P0NominalPUCCH:    -117,
				DeltaFListPUCCH:   DeltaFListPUCCH{Format1: 1, Format1b: 1, Format2: 1, Format2a: 1, Format2b: 1},
				DeltaPreambleMsg3: 4,
			},
		},
		UETimersAndConstants:       UETimersAndConstants{T300: 3, T301: 3, T310: 6, T311: 2},
		AdditionalSpectrumEmission: 1,
		MBSFNSubframeConfigList: []MBSFNSubframeConfig{
			{RadioframeAllocationPeriod: 1, Choice: SubframeAllocationFourFrames, SubframeAllocation: 0xabcdef},
		},
		TimeAlignmentTimerCommon: 7,
	}
}

func testSIB3() *SystemInformationBlockType3 {
	pmax := PMax(23)
	return &SystemInformationBlockType3{
		QHyst: 4,
		SpeedStateReselectionPars: &SpeedStateReselectionPars{
			MobilityStateParameters: MobilityStateParameters{NCellChangeMedium: 1, NCellChangeHigh: 16},
			QHystSFHigh:             3,
		},
		ThreshServingLow:        4,
		CellReselectionPriority: 5,
		QRxLevMin:               -128,
		PMax:                    &pmax,
		PresenceAntennaPort1:    true,
		NeighCellConfig:         1,
		TReselectionEUTRA:       2,
	}
}

func testSIB13() *SystemInformationBlockType13 {
	return &SystemInformationBlockType13{
		MBSFNAreaInfoList: []MBSFNAreaInfo{
			{MBSFNAreaID: 1, NotificationIndicator: 7, MCCHRepetitionPeriod: 2, MCCHOffset: 10, SFAllocInfo: 0x20, SignallingMCS: 3},
		},
		NotificationConfig: MBSFNNotificationConfig{NotificationOffset: 2, NotificationSFIndex: 6},
	}
}

func TestSystemInformation(t *testing.T) {
	in := &SystemInformation{SIBs: []SystemInformationBlock{testSIB2(), testSIB3(), testSIB13()}}

	w := per.NewWriter(0)
	require.NoError(t, in.Pack(w))
	// criticalExtensions, preamble, count 3, sib2 root alternative
	assert.Equal(t, byte(0x04), w.Bytes()[0])

	var out SystemInformation
	r := per.NewBitReader(w.Bytes(), w.Len())
	require.NoError(t, out.Unpack(r))
	assert.Equal(t, w.Len(), r.Len())
	require.Len(t, out.SIBs, 3)

	types := []SIBType{SIBType2, SIBType3, SIBType13}
	for i, sib := range out.SIBs {
		assert.Equal(t, types[i], sib.SIBType())
	}
	assert.Equal(t, in, &out)
}

func TestSystemInformationExtensionAlternative(t *testing.T) {
	in := &SystemInformation{SIBs: []SystemInformationBlock{testSIB13()}}
	w := per.NewWriter(0)
	require.NoError(t, in.Pack(w))

	// 7 bits of header, the extension bit with index 1, a one octet
	// length of 6 and the 41 bits of SIB13 padded to 48
	assert.Equal(t, 7+8+8+48, w.Len())
	assert.Equal(t, []byte{0x01, 0x02, 0x0c}, w.Bytes()[:3])

	// the padding of the open type is skipped before the next block
	in.SIBs = append(in.SIBs, testSIB3())
	w = per.NewWriter(0)
	require.NoError(t, in.Pack(w))

	var out SystemInformation
	r := per.NewBitReader(w.Bytes(), w.Len())
	require.NoError(t, out.Unpack(r))
	assert.Equal(t, w.Len(), r.Len())
	assert.Equal(t, in, &out)
}

func TestSystemInformationAllBlocks(t *testing.T) {
	dcs := uint8(0x0f)
	prio := CellReselectionPriority(3)
	window := uint8(5)
	sibs := []SystemInformationBlock{
		testSIB2(),
		testSIB3(),
		&SystemInformationBlockType4{
			IntraFreqNeighCellList: []IntraFreqNeighCellInfo{{PhysCellID: 10, QOffsetCell: 16}},
			CSGPhysCellIDRange:     &PhysCellIDRange{Start: 100, Range: ptr(PhysCellRangeN8)},
		},
		&SystemInformationBlockType5{
			InterFreqCarrierFreqList: []InterFreqCarrierFreqInfo{{
				DLCarrierFreq:           3050,
				QRxLevMin:               -120,
				TReselectionEUTRA:       1,
				ThreshXHigh:             10,
				ThreshXLow:              6,
				AllowedMeasBandwidth:    AllowedMeasBandwidthMBW25,
				CellReselectionPriority: &prio,
				QOffsetFreq:             ptr(QOffsetRange(20)),
			}},
		},
		&SystemInformationBlockType6{
			CarrierFreqListUTRAFDD: []CarrierFreqUTRA{
				{CarrierFreq: 10700, ThreshXHigh: 8, ThreshXLow: 4, QRxLevMin: -50, PMaxUTRA: 24, QQualMin: -18},
			},
			CarrierFreqListUTRATDD: []CarrierFreqUTRA{
				{CarrierFreq: 9500, CellReselectionPriority: &prio, QRxLevMin: -60, PMaxUTRA: -50},
			},
			TReselectionUTRA: 2,
		},
		&SystemInformationBlockType7{
			TReselectionGERAN: 3,
			CarrierFreqsInfoList: []CarrierFreqsInfoGERAN{{
				CarrierFreqs: CarrierFreqsGERAN{
					StartingARFCN:           512,
					Choice:                  FollowingARFCNsEquallySpaced,
					ARFCNSpacing:            2,
					NumberOfFollowingARFCNs: 3,
				},
				NCCPermitted: 0xff,
				QRxLevMin:    10,
				PMaxGERAN:    ptr(uint8(33)),
				ThreshXHigh:  12,
				ThreshXLow:   2,
			}},
		},
		&SystemInformationBlockType8{SearchWindowSize: &window},
		&SystemInformationBlockType9{HNBName: []byte("home")},
		&SystemInformationBlockType10{MessageIdentifier: 0x1100, SerialNumber: 0x3001, WarningType: [2]byte{0x05, 0x80}},
		&SystemInformationBlockType11{WarningMessageSegment{
			MessageIdentifier: 0x1104,
			SerialNumber:      0x3001,
			LastSegment:       true,
			Segment:           []byte("evacuate"),
			DataCodingScheme:  &dcs,
		}},
		&SystemInformationBlockType12{
			WarningMessageSegment: WarningMessageSegment{
				MessageIdentifier: 0x1112,
				SerialNumber:      0x0010,
				SegmentNumber:     2,
				Segment:           []byte{0xca, 0xfe},
			},
			LateNonCriticalExtension: []byte{0x00},
		},
		testSIB13(),
	}
	in := &SystemInformation{SIBs: sibs}
	var out SystemInformation
	repack(t, in, &out)
	require.Len(t, out.SIBs, len(sibs))
	for i := range sibs {
		assert.Equal(t, sibs[i], out.SIBs[i], "%s", sibs[i].SIBType())
	}
}

func TestSystemInformationUnsupported(t *testing.T) {
	pattern := []struct {
		name  string
		write func(w *per.Cursor)
		value int
	}{
		{"extension index 2", func(w *per.Cursor) {
			per.EncChoiceExtension(w, 2)
			inner := per.NewWriter(0)
			inner.WriteBits(0, 8)
			per.EncOpenType(w, inner)
		}, 12},
		{"root index 11", func(w *per.Cursor) {
			w.WriteBits(0, 1)
			w.WriteBits(11, 4)
		}, 11},
	}

	for _, p := range pattern {
		w := per.NewWriter(0)
		w.WriteBits(0, 7)
		p.write(w)
		w.WriteBits(0, 16)
		require.NoError(t, w.Err())

		var out SystemInformation
		err := out.Unpack(per.NewReader(w.Bytes()))
		var uv *UnsupportedVariantError
		require.ErrorAs(t, err, &uv, p.name)
		assert.Equal(t, p.value, uv.Value, p.name)
	}
}

func TestSystemInformationExtensionIndexBound(t *testing.T) {
	pattern := []struct {
		index uint64
		value int
		err   error
	}{
		{0xffffffffffffffff, 0, per.ErrValueOutOfRange},
		{0xffffffffffffff38, 0, per.ErrValueOutOfRange},
		{1 << 20, sibRootTypes + 1<<20, nil},
	}

	for _, p := range pattern {
		w := per.NewWriter(0)
		w.WriteBits(0, 7)
		// extension alternative, normally small long form of 8 octets
		w.WriteBits(1, 1)
		w.WriteBits(1, 1)
		w.WriteBits(8, 8)
		w.WriteBits(p.index, 64)
		inner := per.NewWriter(0)
		inner.WriteBits(0, 64)
		per.EncOpenType(w, inner)
		require.NoError(t, w.Err())

		var out SystemInformation
		err := out.Unpack(per.NewReader(w.Bytes()))
		require.Error(t, err, "pattern = %v", p)
		assert.Empty(t, out.SIBs, "pattern = %v", p)
		if p.err != nil {
			assert.ErrorIs(t, err, p.err, "pattern = %v", p)
			continue
		}
		var uv *UnsupportedVariantError
		require.ErrorAs(t, err, &uv, "pattern = %v", p)
		assert.Equal(t, p.value, uv.Value, "pattern = %v", p)
	}
}

func TestEmptyListsStayNil(t *testing.T) {
	sib1 := &SystemInformationBlockType1{
		PLMNIdentityList: []PLMNIdentityInfo{
			{PLMNIdentity: PLMNIdentity{MCC: 0xf001, MNC: 0xff01}},
		},
		TrackingAreaCode:  1,
		CellIdentity:      0x1234567,
		QRxLevMin:         -70,
		FreqBandIndicator: 7,
		SchedulingInfoList: []SchedulingInfo{
			{SIPeriodicity: 1},
		},
		SIWindowLength: 2,
	}
	geran := &CarrierFreqsGERAN{StartingARFCN: 20, Choice: FollowingARFCNsExplicitList}

	pattern := []struct {
		in  Packer
		out Packer
	}{
		{sib1, new(SystemInformationBlockType1)},
		{geran, new(CarrierFreqsGERAN)},
		{&UECapabilityInformation{RRCTransactionIdentifier: 1}, new(UECapabilityInformation)},
		{&CounterCheckResponse{RRCTransactionIdentifier: 2}, new(CounterCheckResponse)},
	}

	for _, p := range pattern {
		repack(t, p.in, p.out)
		assert.Equal(t, p.in, p.out)
	}
}

func TestSystemInformationInvalid(t *testing.T) {
	w := per.NewWriter(0)
	err := (&SystemInformation{}).Pack(w)
	assert.ErrorIs(t, err, per.ErrListTooLong)

	w = per.NewWriter(0)
	err = (&SystemInformation{SIBs: []SystemInformationBlock{nil}}).Pack(w)
	assert.ErrorIs(t, err, ErrInvalidInputs)
}

func TestSIBTypeString(t *testing.T) {
	assert.Equal(t, "SIB2", SIBType2.String())
	assert.Equal(t, "SIB13", SIBType13.String())
	assert.Nil(t, newSIB(SIBType13+1))
	for ty := SIBType2; ty <= SIBType13; ty++ {
		assert.Equal(t, ty, newSIB(ty).SIBType())
	}
}

func TestMasterInformationBlock(t *testing.T) {
	in := &MasterInformationBlock{
		DLBandwidth:       BandwidthN100,
		PHICHConfig:       PHICHConfig{Duration: 1, Resource: 3},
		SystemFrameNumber: 0xff,
	}
	w := per.NewWriter(0)
	require.NoError(t, in.Pack(w))
	assert.Equal(t, 24, w.Len())

	var out MasterInformationBlock
	require.NoError(t, out.Unpack(per.NewReader(w.Bytes())))
	assert.Equal(t, *in, out)
}
