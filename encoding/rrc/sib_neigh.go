// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.1 SystemInformationBlockType4
/*
SystemInformationBlockType4 ::=     SEQUENCE {
    intraFreqNeighCellList              IntraFreqNeighCellList      OPTIONAL,   -- Need OR
    intraFreqBlackCellList              IntraFreqBlackCellList      OPTIONAL,   -- Need OR
    csg-PhysCellIdRange                 PhysCellIdRange             OPTIONAL,   -- Cond CSG
    ...
}

IntraFreqNeighCellList ::=          SEQUENCE (SIZE (1..maxCellIntra)) OF IntraFreqNeighCellInfo

IntraFreqNeighCellInfo ::=          SEQUENCE {
    physCellId                          PhysCellId,
    q-OffsetCell                        Q-OffsetRange,
    ...
}

IntraFreqBlackCellList ::=          SEQUENCE (SIZE (1..maxCellBlack)) OF PhysCellIdRange
*/
type SystemInformationBlockType4 struct {
	IntraFreqNeighCellList []IntraFreqNeighCellInfo
	IntraFreqBlackCellList []PhysCellIDRange
	CSGPhysCellIDRange     *PhysCellIDRange
}

type IntraFreqNeighCellInfo struct {
	PhysCellID  PhysCellID
	QOffsetCell QOffsetRange
}

func (ie *IntraFreqNeighCellInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	if err := ie.PhysCellID.Pack(c); err != nil {
		return err
	}
	return ie.QOffsetCell.Pack(c)
}

func (ie *IntraFreqNeighCellInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ext := per.DecSequence(c, true)
	if err := ie.PhysCellID.Unpack(c); err != nil {
		return err
	}
	if err := ie.QOffsetCell.Unpack(c); err != nil {
		return err
	}
	return skipExtensions(c, ext, "IntraFreqNeighCellInfo")
}

func (*SystemInformationBlockType4) SIBType() SIBType { return SIBType4 }

func (ie *SystemInformationBlockType4) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	neigh := len(ie.IntraFreqNeighCellList) != 0
	black := len(ie.IntraFreqBlackCellList) != 0
	per.EncSequence(c, true, neigh, black, ie.CSGPhysCellIDRange != nil)
	if neigh {
		if err := packList(c, ie.IntraFreqNeighCellList, 1, maxCellIntra); err != nil {
			return err
		}
	}
	if black {
		if err := packList(c, ie.IntraFreqBlackCellList, 1, maxCellBlack); err != nil {
			return err
		}
	}
	return packOptional(c, ie.CSGPhysCellIDRange != nil, ie.CSGPhysCellIDRange)
}

func (ie *SystemInformationBlockType4) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType4{}
	var neigh, black, csg bool
	ext := per.DecSequence(c, true, &neigh, &black, &csg)
	var err error
	if neigh {
		if ie.IntraFreqNeighCellList, err =
			unpackList[IntraFreqNeighCellInfo](c, 1, maxCellIntra); err != nil {
			return err
		}
	}
	if black {
		if ie.IntraFreqBlackCellList, err =
			unpackList[PhysCellIDRange](c, 1, maxCellBlack); err != nil {
			return err
		}
	}
	if ie.CSGPhysCellIDRange, err = unpackOptional[PhysCellIDRange](c, csg); err != nil {
		return err
	}
	return skipExtensions(c, ext, "SystemInformationBlockType4")
}

// 6.3.1 SystemInformationBlockType5
/*
SystemInformationBlockType5 ::=     SEQUENCE {
    interFreqCarrierFreqList            InterFreqCarrierFreqList,
    ...
}

InterFreqCarrierFreqList ::=        SEQUENCE (SIZE (1..maxFreq)) OF InterFreqCarrierFreqInfo

InterFreqCarrierFreqInfo ::=        SEQUENCE {
    dl-CarrierFreq                      ARFCN-ValueEUTRA,
    q-RxLevMin                          Q-RxLevMin,
    p-Max                               P-Max                       OPTIONAL,   -- Need OP
    t-ReselectionEUTRA                  T-Reselection,
    t-ReselectionEUTRA-SF               SpeedStateScaleFactors      OPTIONAL,   -- Need OP
    threshX-High                        ReselectionThreshold,
    threshX-Low                         ReselectionThreshold,
    allowedMeasBandwidth                AllowedMeasBandwidth,
    presenceAntennaPort1                PresenceAntennaPort1,
    cellReselectionPriority             CellReselectionPriority     OPTIONAL,   -- Need OP
    neighCellConfig                     NeighCellConfig,
    q-OffsetFreq                        Q-OffsetRange               DEFAULT dB0,
    interFreqNeighCellList              InterFreqNeighCellList      OPTIONAL,   -- Need OR
    interFreqBlackCellList              InterFreqBlackCellList      OPTIONAL,   -- Need OR
    ...
}

InterFreqNeighCellList ::=          SEQUENCE (SIZE (1..maxCellInter)) OF InterFreqNeighCellInfo

InterFreqNeighCellInfo ::=          SEQUENCE {
    physCellId                          PhysCellId,
    q-OffsetCell                        Q-OffsetRange
}

InterFreqBlackCellList ::=          SEQUENCE (SIZE (1..maxCellBlack)) OF PhysCellIdRange
*/
type SystemInformationBlockType5 struct {
	InterFreqCarrierFreqList []InterFreqCarrierFreqInfo
}

type InterFreqCarrierFreqInfo struct {
	DLCarrierFreq           ARFCNValueEUTRA
	QRxLevMin               QRxLevMin
	PMax                    *PMax
	TReselectionEUTRA       TReselection
	TReselectionEUTRASF     *SpeedStateScaleFactors
	ThreshXHigh             ReselectionThreshold
	ThreshXLow              ReselectionThreshold
	AllowedMeasBandwidth    AllowedMeasBandwidth
	PresenceAntennaPort1    bool
	CellReselectionPriority *CellReselectionPriority
	NeighCellConfig         uint8
	// QOffsetFreq is omitted when nil or dB0.
	QOffsetFreq            *QOffsetRange
	InterFreqNeighCellList []InterFreqNeighCellInfo
	InterFreqBlackCellList []PhysCellIDRange
}

type InterFreqNeighCellInfo struct {
	PhysCellID  PhysCellID
	QOffsetCell QOffsetRange
}

func (ie *InterFreqNeighCellInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PhysCellID.Pack(c); err != nil {
		return err
	}
	return ie.QOffsetCell.Pack(c)
}

func (ie *InterFreqNeighCellInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.PhysCellID.Unpack(c); err != nil {
		return err
	}
	return ie.QOffsetCell.Unpack(c)
}

func (ie *InterFreqCarrierFreqInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	offset := differsFrom(ie.QOffsetFreq, QOffsetDB0)
	neigh := len(ie.InterFreqNeighCellList) != 0
	black := len(ie.InterFreqBlackCellList) != 0
	per.EncSequence(c, true, ie.PMax != nil, ie.TReselectionEUTRASF != nil,
		ie.CellReselectionPriority != nil, offset, neigh, black)
	if err := ie.DLCarrierFreq.Pack(c); err != nil {
		return err
	}
	if err := ie.QRxLevMin.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.PMax != nil, ie.PMax); err != nil {
		return err
	}
	if err := ie.TReselectionEUTRA.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.TReselectionEUTRASF != nil, ie.TReselectionEUTRASF); err != nil {
		return err
	}
	if err := ie.ThreshXHigh.Pack(c); err != nil {
		return err
	}
	if err := ie.ThreshXLow.Pack(c); err != nil {
		return err
	}
	if err := ie.AllowedMeasBandwidth.Pack(c); err != nil {
		return err
	}
	c.WriteBool(ie.PresenceAntennaPort1)
	if err := packOptional(c, ie.CellReselectionPriority != nil,
		ie.CellReselectionPriority); err != nil {
		return err
	}
	c.WriteBits(uint64(ie.NeighCellConfig), 2)
	if err := packOptional(c, offset, ie.QOffsetFreq); err != nil {
		return err
	}
	if neigh {
		if err := packList(c, ie.InterFreqNeighCellList, 1, maxCellInter); err != nil {
			return err
		}
	}
	if black {
		if err := packList(c, ie.InterFreqBlackCellList, 1, maxCellBlack); err != nil {
			return err
		}
	}
	return c.Err()
}

func (ie *InterFreqCarrierFreqInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = InterFreqCarrierFreqInfo{}
	var pmax, sf, prio, offset, neigh, black bool
	ext := per.DecSequence(c, true, &pmax, &sf, &prio, &offset, &neigh, &black)
	if err := ie.DLCarrierFreq.Unpack(c); err != nil {
		return err
	}
	if err := ie.QRxLevMin.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.PMax, err = unpackOptional[PMax](c, pmax); err != nil {
		return err
	}
	if err := ie.TReselectionEUTRA.Unpack(c); err != nil {
		return err
	}
	if ie.TReselectionEUTRASF, err = unpackOptional[SpeedStateScaleFactors](c, sf); err != nil {
		return err
	}
	if err := ie.ThreshXHigh.Unpack(c); err != nil {
		return err
	}
	if err := ie.ThreshXLow.Unpack(c); err != nil {
		return err
	}
	if err := ie.AllowedMeasBandwidth.Unpack(c); err != nil {
		return err
	}
	ie.PresenceAntennaPort1 = c.ReadBool()
	if ie.CellReselectionPriority, err =
		unpackOptional[CellReselectionPriority](c, prio); err != nil {
		return err
	}
	ie.NeighCellConfig = uint8(c.ReadBits(2))
	if ie.QOffsetFreq, err = unpackOptional[QOffsetRange](c, offset); err != nil {
		return err
	}
	if neigh {
		if ie.InterFreqNeighCellList, err =
			unpackList[InterFreqNeighCellInfo](c, 1, maxCellInter); err != nil {
			return err
		}
	}
	if black {
		if ie.InterFreqBlackCellList, err =
			unpackList[PhysCellIDRange](c, 1, maxCellBlack); err != nil {
			return err
		}
	}
	return skipExtensions(c, ext, "InterFreqCarrierFreqInfo")
}

func (*SystemInformationBlockType5) SIBType() SIBType { return SIBType5 }

func (ie *SystemInformationBlockType5) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	return packList(c, ie.InterFreqCarrierFreqList, 1, maxFreq)
}

func (ie *SystemInformationBlockType5) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType5{}
	ext := per.DecSequence(c, true)
	var err error
	if ie.InterFreqCarrierFreqList, err =
		unpackList[InterFreqCarrierFreqInfo](c, 1, maxFreq); err != nil {
		return err
	}
	return skipExtensions(c, ext, "SystemInformationBlockType5")
}

// 6.3.1 SystemInformationBlockType6
/*
SystemInformationBlockType6 ::=     SEQUENCE {
    carrierFreqListUTRA-FDD             CarrierFreqListUTRA-FDD     OPTIONAL,   -- Need OR
    carrierFreqListUTRA-TDD             CarrierFreqListUTRA-TDD     OPTIONAL,   -- Need OR
    t-ReselectionUTRA                   T-Reselection,
    t-ReselectionUTRA-SF                SpeedStateScaleFactors      OPTIONAL,   -- Need OP
    ...
}

CarrierFreqUTRA-FDD ::=             SEQUENCE {
    carrierFreq                         ARFCN-ValueUTRA,
    cellReselectionPriority             CellReselectionPriority     OPTIONAL,   -- Need OP
    threshX-High                        ReselectionThreshold,
    threshX-Low                         ReselectionThreshold,
    q-RxLevMin                          INTEGER (-60..-13),
    p-MaxUTRA                           INTEGER (-50..33),
    q-QualMin                           INTEGER (-24..0),
    ...
}

CarrierFreqUTRA-TDD ::=             SEQUENCE {
    carrierFreq                         ARFCN-ValueUTRA,
    cellReselectionPriority             CellReselectionPriority     OPTIONAL,   -- Need OP
    threshX-High                        ReselectionThreshold,
    threshX-Low                         ReselectionThreshold,
    q-RxLevMin                          INTEGER (-60..-13),
    p-MaxUTRA                           INTEGER (-50..33),
    ...
}
*/
type SystemInformationBlockType6 struct {
	CarrierFreqListUTRAFDD []CarrierFreqUTRA
	CarrierFreqListUTRATDD []CarrierFreqUTRA
	TReselectionUTRA       TReselection
	TReselectionUTRASF     *SpeedStateScaleFactors
}

// CarrierFreqUTRA is a CarrierFreqUTRA-FDD or CarrierFreqUTRA-TDD entry.
// QQualMin is carried only by the FDD list.
type CarrierFreqUTRA struct {
	CarrierFreq             ARFCNValueUTRA
	CellReselectionPriority *CellReselectionPriority
	ThreshXHigh             ReselectionThreshold
	ThreshXLow              ReselectionThreshold
	QRxLevMin               int
	PMaxUTRA                int
	QQualMin                int
}

func (ie *CarrierFreqUTRA) pack(c *per.Cursor, fdd bool) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.CellReselectionPriority != nil)
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.CellReselectionPriority != nil,
		ie.CellReselectionPriority); err != nil {
		return err
	}
	if err := ie.ThreshXHigh.Pack(c); err != nil {
		return err
	}
	if err := ie.ThreshXLow.Pack(c); err != nil {
		return err
	}
	packInt(c, ie.QRxLevMin, -60, -13)
	packInt(c, ie.PMaxUTRA, -50, 33)
	if fdd {
		packInt(c, ie.QQualMin, -24, 0)
	}
	return c.Err()
}

func (ie *CarrierFreqUTRA) unpack(c *per.Cursor, fdd bool) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CarrierFreqUTRA{}
	var prio bool
	ext := per.DecSequence(c, true, &prio)
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.CellReselectionPriority, err =
		unpackOptional[CellReselectionPriority](c, prio); err != nil {
		return err
	}
	if err := ie.ThreshXHigh.Unpack(c); err != nil {
		return err
	}
	if err := ie.ThreshXLow.Unpack(c); err != nil {
		return err
	}
	ie.QRxLevMin = unpackInt(c, -60, -13)
	ie.PMaxUTRA = unpackInt(c, -50, 33)
	if fdd {
		ie.QQualMin = unpackInt(c, -24, 0)
	}
	return skipExtensions(c, ext, "CarrierFreqUTRA")
}

func packCarrierFreqListUTRA(c *per.Cursor, list []CarrierFreqUTRA, fdd bool) error {
	ub := maxUTRATDDCarrier
	if fdd {
		ub = maxUTRAFDDCarrier
	}
	per.EncSequenceOf(c, len(list), 1, ub)
	if err := c.Err(); err != nil {
		return err
	}
	for i := range list {
		if err := list[i].pack(c, fdd); err != nil {
			return err
		}
	}
	return nil
}

func unpackCarrierFreqListUTRA(c *per.Cursor, fdd bool) ([]CarrierFreqUTRA, error) {
	ub := maxUTRATDDCarrier
	if fdd {
		ub = maxUTRAFDDCarrier
	}
	n := per.DecSequenceOf(c, 1, ub)
	if err := c.Err(); err != nil {
		return nil, err
	}
	list := make([]CarrierFreqUTRA, n)
	for i := range list {
		if err := list[i].unpack(c, fdd); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (*SystemInformationBlockType6) SIBType() SIBType { return SIBType6 }

func (ie *SystemInformationBlockType6) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	fdd := len(ie.CarrierFreqListUTRAFDD) != 0
	tdd := len(ie.CarrierFreqListUTRATDD) != 0
	per.EncSequence(c, true, fdd, tdd, ie.TReselectionUTRASF != nil)
	if fdd {
		if err := packCarrierFreqListUTRA(c, ie.CarrierFreqListUTRAFDD, true); err != nil {
			return err
		}
	}
	if tdd {
		if err := packCarrierFreqListUTRA(c, ie.CarrierFreqListUTRATDD, false); err != nil {
			return err
		}
	}
	if err := ie.TReselectionUTRA.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.TReselectionUTRASF != nil, ie.TReselectionUTRASF)
}

func (ie *SystemInformationBlockType6) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType6{}
	var fdd, tdd, sf bool
	ext := per.DecSequence(c, true, &fdd, &tdd, &sf)
	var err error
	if fdd {
		if ie.CarrierFreqListUTRAFDD, err = unpackCarrierFreqListUTRA(c, true); err != nil {
			return err
		}
	}
	if tdd {
		if ie.CarrierFreqListUTRATDD, err = unpackCarrierFreqListUTRA(c, false); err != nil {
			return err
		}
	}
	if err := ie.TReselectionUTRA.Unpack(c); err != nil {
		return err
	}
	if ie.TReselectionUTRASF, err = unpackOptional[SpeedStateScaleFactors](c, sf); err != nil {
		return err
	}
	return skipExtensions(c, ext, "SystemInformationBlockType6")
}

// 6.3.1 SystemInformationBlockType7
/*
SystemInformationBlockType7 ::=     SEQUENCE {
    t-ReselectionGERAN                  T-Reselection,
    t-ReselectionGERAN-SF               SpeedStateScaleFactors      OPTIONAL,   -- Need OR
    carrierFreqsInfoList                CarrierFreqsInfoListGERAN   OPTIONAL,   -- Need OR
    ...
}

CarrierFreqsInfoListGERAN ::=       SEQUENCE (SIZE (1..maxGNFG)) OF CarrierFreqsInfoGERAN

CarrierFreqsInfoGERAN ::=           SEQUENCE {
    carrierFreqs                        CarrierFreqsGERAN,
    commonInfo                          SEQUENCE {
        cellReselectionPriority             CellReselectionPriority     OPTIONAL,   -- Need OP
        ncc-Permitted                       BIT STRING (SIZE (8)),
        q-RxLevMin                          INTEGER (0..45),
        p-MaxGERAN                          INTEGER (0..39)             OPTIONAL,   -- Need OP
        threshX-High                        ReselectionThreshold,
        threshX-Low                         ReselectionThreshold
    },
    ...
}
*/
type SystemInformationBlockType7 struct {
	TReselectionGERAN    TReselection
	TReselectionGERANSF  *SpeedStateScaleFactors
	CarrierFreqsInfoList []CarrierFreqsInfoGERAN
}

type CarrierFreqsInfoGERAN struct {
	CarrierFreqs            CarrierFreqsGERAN
	CellReselectionPriority *CellReselectionPriority
	NCCPermitted            uint8
	QRxLevMin               uint8
	PMaxGERAN               *uint8
	ThreshXHigh             ReselectionThreshold
	ThreshXLow              ReselectionThreshold
}

func (ie *CarrierFreqsInfoGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	if err := ie.CarrierFreqs.Pack(c); err != nil {
		return err
	}

	// commonInfo
	per.EncSequence(c, false, ie.CellReselectionPriority != nil, ie.PMaxGERAN != nil)
	if err := packOptional(c, ie.CellReselectionPriority != nil,
		ie.CellReselectionPriority); err != nil {
		return err
	}
	c.WriteBits(uint64(ie.NCCPermitted), 8)
	packInt(c, int(ie.QRxLevMin), 0, 45)
	if ie.PMaxGERAN != nil {
		packInt(c, int(*ie.PMaxGERAN), 0, 39)
	}
	if err := ie.ThreshXHigh.Pack(c); err != nil {
		return err
	}
	return ie.ThreshXLow.Pack(c)
}

func (ie *CarrierFreqsInfoGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CarrierFreqsInfoGERAN{}
	ext := per.DecSequence(c, true)
	if err := ie.CarrierFreqs.Unpack(c); err != nil {
		return err
	}
	var prio, pmax bool
	per.DecSequence(c, false, &prio, &pmax)
	var err error
	if ie.CellReselectionPriority, err =
		unpackOptional[CellReselectionPriority](c, prio); err != nil {
		return err
	}
	ie.NCCPermitted = uint8(c.ReadBits(8))
	ie.QRxLevMin = uint8(unpackInt(c, 0, 45))
	if pmax {
		v := uint8(unpackInt(c, 0, 39))
		ie.PMaxGERAN = &v
	}
	if err := ie.ThreshXHigh.Unpack(c); err != nil {
		return err
	}
	if err := ie.ThreshXLow.Unpack(c); err != nil {
		return err
	}
	return skipExtensions(c, ext, "CarrierFreqsInfoGERAN")
}

func (*SystemInformationBlockType7) SIBType() SIBType { return SIBType7 }

func (ie *SystemInformationBlockType7) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	freqs := len(ie.CarrierFreqsInfoList) != 0
	per.EncSequence(c, true, ie.TReselectionGERANSF != nil, freqs)
	if err := ie.TReselectionGERAN.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.TReselectionGERANSF != nil, ie.TReselectionGERANSF); err != nil {
		return err
	}
	if freqs {
		return packList(c, ie.CarrierFreqsInfoList, 1, maxGNFG)
	}
	return c.Err()
}

func (ie *SystemInformationBlockType7) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType7{}
	var sf, freqs bool
	ext := per.DecSequence(c, true, &sf, &freqs)
	if err := ie.TReselectionGERAN.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.TReselectionGERANSF, err = unpackOptional[SpeedStateScaleFactors](c, sf); err != nil {
		return err
	}
	if freqs {
		if ie.CarrierFreqsInfoList, err =
			unpackList[CarrierFreqsInfoGERAN](c, 1, maxGNFG); err != nil {
			return err
		}
	}
	return skipExtensions(c, ext, "SystemInformationBlockType7")
}

// 6.3.1 SystemInformationBlockType8
/*
SystemInformationBlockType8 ::=     SEQUENCE {
    systemTimeInfo                      SystemTimeInfoCDMA2000      OPTIONAL,   -- Need OR
    searchWindowSize                    INTEGER (0..15)             OPTIONAL,   -- Need OR
    parametersHRPD                      SEQUENCE {
        preRegistrationInfoHRPD             PreRegistrationInfoHRPD,
        cellReselectionParametersHRPD       CellReselectionParametersCDMA2000   OPTIONAL    -- Need OR
    }                                                               OPTIONAL,   -- Need OR
    parameters1XRTT                     SEQUENCE {
        csfb-RegistrationParam1XRTT         CSFB-RegistrationParam1XRTT         OPTIONAL,   -- Need OP
        longCodeState1XRTT                  BIT STRING (SIZE (42))              OPTIONAL,   -- Need OR
        cellReselectionParameters1XRTT      CellReselectionParametersCDMA2000   OPTIONAL    -- Need OR
    }                                                               OPTIONAL,   -- Need OR
    ...
}
*/
type SystemInformationBlockType8 struct {
	SystemTimeInfo   *SystemTimeInfoCDMA2000
	SearchWindowSize *uint8
	ParametersHRPD   *ParametersHRPD
	Parameters1XRTT  *Parameters1XRTT
}

type ParametersHRPD struct {
	PreRegistrationInfoHRPD       PreRegistrationInfoHRPD
	CellReselectionParametersHRPD *CellReselectionParametersCDMA2000
}

func (ie *ParametersHRPD) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.CellReselectionParametersHRPD != nil)
	if err := ie.PreRegistrationInfoHRPD.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.CellReselectionParametersHRPD != nil,
		ie.CellReselectionParametersHRPD)
}

func (ie *ParametersHRPD) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ParametersHRPD{}
	var resel bool
	per.DecSequence(c, false, &resel)
	if err := ie.PreRegistrationInfoHRPD.Unpack(c); err != nil {
		return err
	}
	var err error
	ie.CellReselectionParametersHRPD, err =
		unpackOptional[CellReselectionParametersCDMA2000](c, resel)
	return err
}

// Parameters1XRTT carries the 42 bit longCodeState1XRTT in the low bits of
// LongCodeState1XRTT.
type Parameters1XRTT struct {
	CSFBRegistrationParam1XRTT     *CSFBRegistrationParam1XRTT
	LongCodeState1XRTT             *uint64
	CellReselectionParameters1XRTT *CellReselectionParametersCDMA2000
}

func (ie *Parameters1XRTT) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.CSFBRegistrationParam1XRTT != nil,
		ie.LongCodeState1XRTT != nil, ie.CellReselectionParameters1XRTT != nil)
	if err := packOptional(c, ie.CSFBRegistrationParam1XRTT != nil,
		ie.CSFBRegistrationParam1XRTT); err != nil {
		return err
	}
	if ie.LongCodeState1XRTT != nil {
		c.WriteBits(*ie.LongCodeState1XRTT, 42)
	}
	return packOptional(c, ie.CellReselectionParameters1XRTT != nil,
		ie.CellReselectionParameters1XRTT)
}

func (ie *Parameters1XRTT) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = Parameters1XRTT{}
	var csfb, lcs, resel bool
	per.DecSequence(c, false, &csfb, &lcs, &resel)
	var err error
	if ie.CSFBRegistrationParam1XRTT, err =
		unpackOptional[CSFBRegistrationParam1XRTT](c, csfb); err != nil {
		return err
	}
	if lcs {
		v := c.ReadBits(42)
		ie.LongCodeState1XRTT = &v
	}
	ie.CellReselectionParameters1XRTT, err =
		unpackOptional[CellReselectionParametersCDMA2000](c, resel)
	return err
}

func (*SystemInformationBlockType8) SIBType() SIBType { return SIBType8 }

func (ie *SystemInformationBlockType8) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.SystemTimeInfo != nil, ie.SearchWindowSize != nil,
		ie.ParametersHRPD != nil, ie.Parameters1XRTT != nil)
	if err := packOptional(c, ie.SystemTimeInfo != nil, ie.SystemTimeInfo); err != nil {
		return err
	}
	if ie.SearchWindowSize != nil {
		packInt(c, int(*ie.SearchWindowSize), 0, 15)
	}
	if err := packOptional(c, ie.ParametersHRPD != nil, ie.ParametersHRPD); err != nil {
		return err
	}
	return packOptional(c, ie.Parameters1XRTT != nil, ie.Parameters1XRTT)
}

func (ie *SystemInformationBlockType8) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType8{}
	var sti, sws, hrpd, xrtt bool
	ext := per.DecSequence(c, true, &sti, &sws, &hrpd, &xrtt)
	var err error
	if ie.SystemTimeInfo, err = unpackOptional[SystemTimeInfoCDMA2000](c, sti); err != nil {
		return err
	}
	if sws {
		v := uint8(unpackInt(c, 0, 15))
		ie.SearchWindowSize = &v
	}
	if ie.ParametersHRPD, err = unpackOptional[ParametersHRPD](c, hrpd); err != nil {
		return err
	}
	if ie.Parameters1XRTT, err = unpackOptional[Parameters1XRTT](c, xrtt); err != nil {
		return err
	}
	return skipExtensions(c, ext, "SystemInformationBlockType8")
}
