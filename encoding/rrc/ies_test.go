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

// repack packs in, unpacks the produced bits into out and checks that both
// sides saw the same number of bits.
func repack(t *testing.T, in, out Packer) {
	t.Helper()
	w := per.NewWriter(0)
	require.NoError(t, in.Pack(w))
	r := per.NewBitReader(w.Bytes(), w.Len())
	require.NoError(t, out.Unpack(r))
	assert.Equal(t, w.Len(), r.Len(), "consumed bits")
}

func TestPLMNIdentity(t *testing.T) {
	pattern := []struct {
		in     PLMNIdentity
		expLen int
	}{
		{PLMNIdentity{MCC: 0xf262, MNC: 0xff01}, 1 + 12 + 1 + 8},
		{PLMNIdentity{MCC: 0xf440, MNC: 0xf010}, 1 + 12 + 1 + 12},
		{PLMNIdentity{MCC: MCCAbsent, MNC: 0xff99}, 1 + 1 + 8},
	}

	for _, p := range pattern {
		w := per.NewWriter(0)
		require.NoError(t, p.in.Pack(w))
		assert.Equal(t, p.expLen, w.Len(), "pattern = %v", p)

		var out PLMNIdentity
		require.NoError(t, out.Unpack(per.NewBitReader(w.Bytes(), w.Len())))
		assert.Equal(t, p.in, out, "pattern = %v", p)
	}
}

func TestPLMNIdentityDigits(t *testing.T) {
	in := PLMNIdentity{MCC: 0xf262, MNC: 0xff01}
	w := per.NewWriter(0)
	require.NoError(t, in.Pack(w))
	// mcc present, 2 6 2, two digit mnc, 0 1
	assert.Equal(t, []byte{0x93, 0x10, 0x04}, w.Bytes())
}

func TestRangeMapping(t *testing.T) {
	pattern := []struct {
		ie     Packer
		raw    uint64
		width  int
		decode Packer
	}{
		{ptr(QRxLevMin(-70)), 35, 6, new(QRxLevMin)},
		{ptr(QRxLevMin(-140)), 0, 6, new(QRxLevMin)},
		{ptr(QRxLevMin(-44)), 48, 6, new(QRxLevMin)},
		{ptr(PMax(-30)), 0, 6, new(PMax)},
		{ptr(PMax(33)), 63, 6, new(PMax)},
		{ptr(RSRPRange(0)), 0, 7, new(RSRPRange)},
		{ptr(RSRPRange(97)), 97, 7, new(RSRPRange)},
		{ptr(QQualMin(-34)), 0, 5, new(QQualMin)},
		{ptr(ReselectionThreshold(62)), 31, 5, new(ReselectionThreshold)},
		{ptr(QOffsetRangeInterRAT(-15)), 0, 5, new(QOffsetRangeInterRAT)},
	}

	for _, p := range pattern {
		w := per.NewWriter(0)
		require.NoError(t, p.ie.Pack(w), "pattern = %v", p)
		require.Equal(t, p.width, w.Len(), "pattern = %v", p)

		r := per.NewBitReader(w.Bytes(), w.Len())
		assert.Equal(t, p.raw, r.ReadBits(p.width), "pattern = %v", p)

		require.NoError(t, p.decode.Unpack(per.NewBitReader(w.Bytes(), w.Len())))
		assert.Equal(t, p.ie, p.decode, "pattern = %v", p)
	}
}

func TestQRxLevMinRaw35(t *testing.T) {
	var v QRxLevMin
	require.NoError(t, v.Unpack(per.NewBitReader([]byte{0x8c}, 6)))
	assert.Equal(t, QRxLevMin(-70), v)
}

func TestRangeOutOfDomain(t *testing.T) {
	pattern := []struct {
		ie Packer
	}{
		{ptr(PMax(34))},
		{ptr(QRxLevMin(-20))},
		{ptr(RSRPRange(98))},
		{ptr(PhysCellID(504))},
	}

	for _, p := range pattern {
		w := per.NewWriter(0)
		assert.ErrorIs(t, p.ie.Pack(w), per.ErrValueOutOfRange, "pattern = %v", p)
	}
}

func TestStrictDecoding(t *testing.T) {
	// raw 63 is above the 49 values of Q-RxLevMin
	data := []byte{0xfc}

	var v QRxLevMin
	require.NoError(t, v.Unpack(per.NewBitReader(data, 6)))
	assert.Equal(t, QRxLevMin(2*(-70+63)), v)

	err := v.Unpack(per.NewBitReader(data, 6, per.Strict()))
	assert.ErrorIs(t, err, per.ErrValueOutOfRange)
}

func TestInitialUEIdentity(t *testing.T) {
	pattern := []struct {
		in InitialUEIdentity
	}{
		{InitialUEIdentity{Choice: InitialUEIdentityRandomValue, RandomValue: 0x0102030405}},
		{InitialUEIdentity{Choice: InitialUEIdentitySTMSI, STMSI: STMSI{MMEC: 0x1a, MTMSI: 0xc0ffee00}}},
	}

	for _, p := range pattern {
		var out InitialUEIdentity
		repack(t, &p.in, &out)
		assert.Equal(t, p.in, out)
	}
}

func TestUnsupportedChoice(t *testing.T) {
	in := InitialUEIdentity{Choice: InitialUEIdentityChoice(2)}
	w := per.NewWriter(0)
	err := in.Pack(w)
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
	assert.ErrorIs(t, w.Err(), err)
}

func TestNilInputs(t *testing.T) {
	var plmn *PLMNIdentity
	assert.ErrorIs(t, plmn.Pack(per.NewWriter(0)), ErrInvalidInputs)
	assert.ErrorIs(t, plmn.Unpack(per.NewReader([]byte{0})), ErrInvalidInputs)
	assert.ErrorIs(t, new(RRCConnectionRequest).Pack(nil), ErrInvalidInputs)
	assert.ErrorIs(t, new(MeasObjectToAddMod).Unpack(nil), ErrInvalidInputs)
}

func testMeasObjects() []MeasObjectToAddMod {
	offset := QOffsetRange(17)
	ncc := uint8(0x0f)
	return []MeasObjectToAddMod{
		{
			MeasObjectID: 1,
			Type:         MeasObjectTypeEUTRA,
			EUTRA: MeasObjectEUTRA{
				CarrierFreq:          1850,
				AllowedMeasBandwidth: AllowedMeasBandwidthMBW50,
				PresenceAntennaPort1: true,
				NeighCellConfig:      1,
				OffsetFreq:           &offset,
				CellsToAddModList: []CellsToAddMod{
					{CellIndex: 1, PhysCellID: 42, CellIndividualOffset: QOffsetDB0},
				},
			},
		},
		{
			MeasObjectID: 2,
			Type:         MeasObjectTypeUTRA,
			UTRA: MeasObjectUTRA{
				CarrierFreq:       10700,
				OffsetFreq:        -3,
				CellsToAddModMode: UTRAModeFDD,
				CellsToAddModList: []CellsToAddModUTRA{{CellIndex: 3, PhysCellID: 300}},
			},
		},
		{
			MeasObjectID: 3,
			Type:         MeasObjectTypeGERAN,
			GERAN: MeasObjectGERAN{
				CarrierFreqs: CarrierFreqsGERAN{
					StartingARFCN:        20,
					Choice:               FollowingARFCNsExplicitList,
					ExplicitListOfARFCNs: []ARFCNValueGERAN{22, 24},
				},
				NCCPermitted: &ncc,
			},
		},
	}
}

func TestMeasObjectToAddModList(t *testing.T) {
	in := testMeasObjects()

	w := per.NewWriter(0)
	require.NoError(t, packList(w, in, 1, maxObjectID))

	r := per.NewBitReader(w.Bytes(), w.Len())
	out, err := unpackList[MeasObjectToAddMod](r, 1, maxObjectID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, w.Len(), r.Len())

	types := []MeasObjectType{MeasObjectTypeEUTRA, MeasObjectTypeUTRA, MeasObjectTypeGERAN}
	for i, obj := range out {
		assert.Equal(t, types[i], obj.Type)
	}
	assert.Equal(t, in, out)
}

func TestListBounds(t *testing.T) {
	w := per.NewWriter(0)
	err := packList(w, []PLMNIdentityInfo{}, 1, maxPLMNIdentities)
	assert.ErrorIs(t, err, per.ErrListTooLong)

	w = per.NewWriter(0)
	err = packList(w, make([]MeasObjectToAddMod, maxObjectID+1), 1, maxObjectID)
	assert.ErrorIs(t, err, per.ErrListTooLong)

	// a 3 bit count of 7 announces 8 PLMN identities
	r := per.NewReader([]byte{0xe0})
	list, err := unpackList[PLMNIdentityInfo](r, 1, maxPLMNIdentities)
	assert.ErrorIs(t, err, per.ErrListTooLong)
	assert.Nil(t, list)
}

func TestExtensionAdditionsSkipped(t *testing.T) {
	in := PagingRecord{
		UEIdentity: PagingUEIdentity{Choice: PagingUEIdentitySTMSI, STMSI: STMSI{MMEC: 1, MTMSI: 2}},
		CNDomain:   CNDomainCS,
	}
	plain := per.NewWriter(0)
	require.NoError(t, in.Pack(plain))

	// the same record with its extension bit set and two additions
	w := per.NewWriter(0)
	w.WriteBits(1, 1)
	require.NoError(t, in.UEIdentity.Pack(w))
	packEnum(w, in.CNDomain, 2, false)
	a1 := per.NewWriter(0)
	a1.WriteBits(0x5a5, 12)
	a2 := per.NewWriter(0)
	a2.WriteBits(1, 1)
	per.EncExtensionAdditions(w, a1, nil, a2)
	require.NoError(t, w.Err())

	var out PagingRecord
	r := per.NewBitReader(w.Bytes(), w.Len())
	require.NoError(t, out.Unpack(r))
	assert.Equal(t, in, out)
	assert.Equal(t, 0, r.Remaining())

	// decoding once more from the result gives the same value
	var again PagingRecord
	repack(t, &out, &again)
	assert.Equal(t, out, again)
	assert.Equal(t, plain.Bytes(), mustPack(t, &again))
}

func mustPack(t *testing.T, p Packer) []byte {
	t.Helper()
	w := per.NewWriter(0)
	require.NoError(t, p.Pack(w))
	return w.Bytes()
}

func ptr[T any](v T) *T {
	return &v
}
