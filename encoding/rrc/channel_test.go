// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhorai/lterrc/encoding/per"
)

func srb1Default() RadioResourceConfigDedicated {
	return RadioResourceConfigDedicated{
		SRBToAddModList: []SRBToAddMod{
			{SRBIdentity: 1, RLCConfigDefault: true, LogicalChannelConfigDefault: true},
		},
		MACMainConfigDefault: true,
	}
}

func testChannelMessages() []ChannelMessage {
	return []ChannelMessage{
		&BCCHBCHMessage{Message: &MasterInformationBlock{
			DLBandwidth: BandwidthN50, SystemFrameNumber: 0x12}},

		&BCCHDLSCHMessage{Message: &SystemInformationBlockType1{
			PLMNIdentityList: []PLMNIdentityInfo{
				{PLMNIdentity: PLMNIdentity{MCC: 0xf001, MNC: 0xff01}, CellReservedForOperatorUse: 1},
			},
			TrackingAreaCode:     1,
			CellIdentity:         0x1234567,
			CellBarred:           CellBarredNotBarred,
			IntraFreqReselection: IntraFreqReselectionAllowed,
			QRxLevMin:            -70,
			FreqBandIndicator:    7,
			SchedulingInfoList: []SchedulingInfo{
				{SIPeriodicity: 1, SIBMappingInfo: []SIBType{SIBType3}},
			},
			SIWindowLength:     2,
			SystemInfoValueTag: 5,
		}},
		&BCCHDLSCHMessage{Message: &SystemInformation{
			SIBs: []SystemInformationBlock{testSIB3()},
		}},

		&PCCHMessage{Message: &Paging{
			PagingRecordList: []PagingRecord{
				{UEIdentity: PagingUEIdentity{STMSI: STMSI{MMEC: 0x12, MTMSI: 0xdeadbeef}}},
			},
			SystemInfoModification: true,
		}},

		&DLCCCHMessage{Message: &RRCConnectionReestablishment{
			RRCTransactionIdentifier:     1,
			RadioResourceConfigDedicated: srb1Default(),
			NextHopChainingCount:         3,
		}},
		&DLCCCHMessage{Message: &RRCConnectionReestablishmentReject{}},
		&DLCCCHMessage{Message: &RRCConnectionReject{WaitTime: 5}},
		&DLCCCHMessage{Message: &RRCConnectionSetup{
			RRCTransactionIdentifier:     2,
			RadioResourceConfigDedicated: srb1Default(),
		}},

		&ULCCCHMessage{Message: &RRCConnectionReestablishmentRequest{
			CRNTI:                0x1234,
			PhysCellID:           5,
			ShortMACI:            0xabcd,
			ReestablishmentCause: ReestablishmentCauseOtherFailure,
		}},
		&ULCCCHMessage{Message: &RRCConnectionRequest{
			UEIdentity:         InitialUEIdentity{Choice: InitialUEIdentityRandomValue, RandomValue: 0x0102030405},
			EstablishmentCause: EstablishmentCauseMOSignalling,
		}},

		&DLDCCHMessage{Message: &CSFBParametersResponseCDMA2000{
			RRCTransactionIdentifier: 1, RAND: 0xdeadbeef, MobilityParameters: []byte{1, 2, 3}}},
		&DLDCCHMessage{Message: &DLInformationTransfer{
			RRCTransactionIdentifier: 2,
			DedicatedInfoType:        DedicatedInfoType{Kind: DedicatedInfoNAS, Info: []byte{0x07, 0x42}},
		}},
		&DLDCCHMessage{Message: &HandoverFromEUTRAPreparationRequest{
			CDMA2000Type: CDMA2000TypeHRPD, RAND: ptr(uint32(7)), MobilityParameters: []byte{9}}},
		&DLDCCHMessage{Message: &MobilityFromEUTRACommand{
			RRCTransactionIdentifier: 1,
			Purpose:                  MobilityPurposeHandover,
			Handover: Handover{
				TargetRATType:             TargetRATUTRA,
				TargetRATMessageContainer: []byte{0xaa, 0xbb},
			},
		}},
		&DLDCCHMessage{Message: &RRCConnectionReconfiguration{
			RRCTransactionIdentifier: 3,
			DedicatedInfoNASList:     [][]byte{{0x27, 0x01}},
			RadioResourceConfigDedicated: &RadioResourceConfigDedicated{
				DRBToReleaseList: []DRBIdentity{1},
			},
		}},
		&DLDCCHMessage{Message: &RRCConnectionRelease{ReleaseCause: ReleaseCauseOther}},
		&DLDCCHMessage{Message: &SecurityModeCommand{
			RRCTransactionIdentifier: 1,
			SecurityConfigSMC: SecurityConfigSMC{SecurityAlgorithmConfig: SecurityAlgorithmConfig{
				CipheringAlgorithm: 2, IntegrityProtAlgorithm: 2}},
		}},
		&DLDCCHMessage{Message: &UECapabilityEnquiry{
			RRCTransactionIdentifier: 2, UECapabilityRequest: []RATType{RATTypeEUTRA}}},
		&DLDCCHMessage{Message: &CounterCheck{
			DRBCountMSBInfoList: []DRBCountMSBInfo{{DRBIdentity: 1, CountMSBUplink: 5, CountMSBDownlink: maxCountMSB}}}},
		&DLDCCHMessage{Message: &UEInformationRequest{RRCTransactionIdentifier: 1, RACHReportReq: true}},

		&ULDCCHMessage{Message: &CSFBParametersRequestCDMA2000{}},
		&ULDCCHMessage{Message: &MeasurementReport{
			MeasResults: MeasResults{MeasID: 1, RSRPResult: 50, RSRQResult: 20}}},
		&ULDCCHMessage{Message: &RRCConnectionReconfigurationComplete{simpleCompletion{RRCTransactionIdentifier: 3}}},
		&ULDCCHMessage{Message: &RRCConnectionReestablishmentComplete{simpleCompletion{RRCTransactionIdentifier: 1}}},
		&ULDCCHMessage{Message: &RRCConnectionSetupComplete{
			RRCTransactionIdentifier: 2,
			SelectedPLMNIdentity:     1,
			DedicatedInfoNAS:         []byte{0x07, 0x41, 0x01},
		}},
		&ULDCCHMessage{Message: &SecurityModeComplete{simpleCompletion{RRCTransactionIdentifier: 1}}},
		&ULDCCHMessage{Message: &SecurityModeFailure{simpleCompletion{RRCTransactionIdentifier: 1}}},
		&ULDCCHMessage{Message: &UECapabilityInformation{
			RRCTransactionIdentifier: 2,
			UECapabilityRATContainers: []UECapabilityRATContainer{
				{RATType: RATTypeEUTRA, Container: []byte{0x01, 0x02}},
			},
		}},
		&ULDCCHMessage{Message: &ULHandoverPreparationTransfer{
			CDMA2000Type: CDMA2000Type1XRTT, MEID: ptr(uint64(0x12345678abcdef)), DedicatedInfo: []byte{5}}},
		&ULDCCHMessage{Message: &ULInformationTransfer{
			DedicatedInfoType: DedicatedInfoType{Kind: DedicatedInfoNAS, Info: []byte{0x27}}}},
		&ULDCCHMessage{Message: &CounterCheckResponse{
			DRBCountInfoList: []DRBCountInfo{{DRBIdentity: 1, CountUplink: 100, CountDownlink: 0xffffffff}}}},
		&ULDCCHMessage{Message: &ProximityIndication{Type: ProximityLeaving, UTRA: true, CarrierFreq: 10700}},
	}
}

func TestChannelRoundTrip(t *testing.T) {
	for _, m := range testChannelMessages() {
		data, n, err := Encode(m)
		require.NoError(t, err, "%s %s", m.Channel(), m.Body().Name())
		assert.Equal(t, (n+7)/8, len(data))

		out, err := NewChannelMessage(m.Channel())
		require.NoError(t, err)
		require.NoError(t, Decode(data, out), "%s %s", m.Channel(), m.Body().Name())
		assert.Equal(t, m.Body(), out.Body(), "%s %s", m.Channel(), m.Body().Name())
	}
}

// Every message with a codec on a channel appears in the round trip table.
func TestChannelCoverage(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range testChannelMessages() {
		seen[m.Channel()+"/"+m.Body().Name()] = true
	}
	for _, ch := range Channels() {
		for _, name := range Messages(ch) {
			assert.True(t, seen[ch+"/"+name], "%s/%s", ch, name)
		}
	}
}

func TestChannelSpareAlternatives(t *testing.T) {
	pattern := []struct {
		ch *channel
	}{
		{bcchDLSCH}, {pcch}, {dlCCCH}, {ulCCCH}, {dlDCCH}, {ulDCCH},
	}

	for _, p := range pattern {
		for idx, alt := range p.ch.alts {
			if alt.alloc != nil {
				continue
			}
			w := per.NewWriter(0)
			w.WriteBits(0, 1)
			w.WriteBits(uint64(idx), p.ch.width)
			w.WriteBits(0, 32)

			r := per.NewReader(w.Bytes())
			msg, err := p.ch.unpack(r)
			assert.Nil(t, msg)
			assert.True(t, IsUnsupported(err), "%s %s", p.ch.name, alt.name)
		}
	}
}

func TestConnectionRequestBits(t *testing.T) {
	m := &ULCCCHMessage{Message: &RRCConnectionRequest{
		UEIdentity:         InitialUEIdentity{Choice: InitialUEIdentityRandomValue, RandomValue: 0x0102030405},
		EstablishmentCause: EstablishmentCauseMOSignalling,
	}}
	data, n, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, 48, n)
	assert.Equal(t, []byte{0x50, 0x10, 0x20, 0x30, 0x40, 0x56}, data)

	var out ULCCCHMessage
	require.NoError(t, Decode(data, &out))
	req, ok := out.Message.(*RRCConnectionRequest)
	require.True(t, ok)
	assert.Equal(t, uint64(0x0102030405), req.UEIdentity.RandomValue)
	assert.Equal(t, EstablishmentCauseMOSignalling, req.EstablishmentCause)
}

func TestReestablishmentRequestBits(t *testing.T) {
	in := &RRCConnectionReestablishmentRequest{
		CRNTI:                0x1234,
		PhysCellID:           5,
		ShortMACI:            0xabcd,
		ReestablishmentCause: ReestablishmentCauseOtherFailure,
	}
	data, n, err := Encode(&ULCCCHMessage{Message: in})
	require.NoError(t, err)
	assert.Equal(t, 48, n)
	assert.Equal(t, []byte{0x02, 0x46, 0x80, 0x5a, 0xbc, 0xd8}, data)

	// the two spare bits end the body; octet aligned data behind it is
	// left intact
	w := per.NewWriter(0)
	require.NoError(t, in.Pack(w))
	assert.Equal(t, 46, w.Len())
	w.Align()
	w.WriteBytes([]byte{0xff})
	require.NoError(t, w.Err())
	b := w.Bytes()
	require.Len(t, b, 7)
	assert.Equal(t, byte(0x00), b[5]&0x03)
	assert.Equal(t, byte(0xff), b[6])

	var out RRCConnectionReestablishmentRequest
	require.NoError(t, out.Unpack(per.NewReader(b)))
	assert.Equal(t, *in, out)
}

func TestChannelBits(t *testing.T) {
	pattern := []struct {
		m      ChannelMessage
		expect []byte
	}{
		{
			&BCCHBCHMessage{Message: &MasterInformationBlock{DLBandwidth: BandwidthN50, SystemFrameNumber: 0x12}},
			[]byte{0x60, 0x48, 0x00},
		},
		{
			&DLCCCHMessage{Message: &RRCConnectionReject{WaitTime: 5}},
			[]byte{0x40, 0x80},
		},
		{
			&PCCHMessage{Message: &Paging{
				PagingRecordList: []PagingRecord{
					{UEIdentity: PagingUEIdentity{STMSI: STMSI{MMEC: 0x12, MTMSI: 0xdeadbeef}}},
				},
				SystemInfoModification: true,
			}},
			[]byte{0x60, 0x01, 0x2d, 0xea, 0xdb, 0xee, 0xf0},
		},
	}

	for _, p := range pattern {
		data, _, err := Encode(p.m)
		require.NoError(t, err, "%s", p.m.Channel())
		assert.Equal(t, p.expect, data, "%s", p.m.Channel())
	}
}

func TestChannelErrors(t *testing.T) {
	_, _, err := Encode(&ULCCCHMessage{Message: &RRCConnectionSetup{}})
	assert.ErrorIs(t, err, ErrWrongChannel)
	assert.Contains(t, err.Error(), "UL-CCCH")

	_, _, err = Encode(&DLCCCHMessage{})
	assert.ErrorIs(t, err, ErrInvalidInputs)

	_, _, err = Encode(&BCCHBCHMessage{})
	assert.ErrorIs(t, err, ErrInvalidInputs)

	_, _, err = Encode(nil)
	assert.ErrorIs(t, err, ErrInvalidInputs)

	// messageClassExtension
	err = Decode([]byte{0x80, 0x00}, new(ULDCCHMessage))
	assert.True(t, IsUnsupported(err))
	assert.Contains(t, err.Error(), "UL-DCCH")

	err = Decode([]byte{0x50}, new(ULCCCHMessage))
	assert.ErrorIs(t, err, per.ErrShortBuffer)
}

func TestEncodeLimit(t *testing.T) {
	m := &ULCCCHMessage{Message: &RRCConnectionRequest{
		UEIdentity: InitialUEIdentity{Choice: InitialUEIdentityRandomValue},
	}}
	_, _, err := EncodeLimit(m, 40)
	assert.ErrorIs(t, err, per.ErrBufferOverflow)

	_, n, err := EncodeLimit(m, 48)
	require.NoError(t, err)
	assert.Equal(t, 48, n)
}

func TestNewChannelMessage(t *testing.T) {
	for _, name := range Channels() {
		m, err := NewChannelMessage(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.Channel())
		assert.Nil(t, m.Body())
	}
	_, err := NewChannelMessage("MCCH")
	assert.Error(t, err)

	assert.Equal(t, []string{"RRCConnectionReestablishmentRequest", "RRCConnectionRequest"},
		Messages("UL-CCCH"))
	assert.Nil(t, Messages("MCCH"))
}

type event struct {
	op      string
	channel string
	message string
	bits    int
}

type recorder struct {
	mu     sync.Mutex
	events []event
}

func (r *recorder) Encoded(channel, message string, bits int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{"encode", channel, message, bits})
}

func (r *recorder) Decoded(channel, message string, bits int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{"decode", channel, message, bits})
}

func (r *recorder) Failed(channel, op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{op + " failed", channel, "", 0})
}

func TestObserver(t *testing.T) {
	rec := &recorder{}
	SetObserver(rec)
	defer SetObserver(nil)

	data, _, err := Encode(&DLCCCHMessage{Message: &RRCConnectionReject{WaitTime: 5}})
	require.NoError(t, err)
	require.NoError(t, Decode(data, new(DLCCCHMessage)))
	require.Error(t, Decode([]byte{0x80}, new(DLCCCHMessage)))

	assert.Equal(t, []event{
		{"encode", "DL-CCCH", "RRCConnectionReject", 11},
		{"decode", "DL-CCCH", "RRCConnectionReject", 11},
		{"decode failed", "DL-CCCH", "", 0},
	}, rec.events)
}

func TestLogger(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	// spare4 of DL-DCCH
	err := Decode([]byte{0x60, 0x00}, new(DLDCCHMessage))
	assert.True(t, IsUnsupported(err))
	assert.Contains(t, buf.String(), "unsupported variant")
	assert.Contains(t, buf.String(), "DL-DCCH message")

	buf.Reset()
	data, _, err := Encode(&PCCHMessage{Message: &Paging{}})
	require.NoError(t, err)
	// set the nonCriticalExtension presence bit
	data[0] |= 0x08
	var out PCCHMessage
	require.NoError(t, Decode(data, &out))
	assert.True(t, out.Message.(*Paging).NonCriticalExtension)
	assert.Contains(t, buf.String(), "ignored non-critical extension")
}
