// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// QRxLevMin is the Q-RxLevMin in dBm (-140..-44, even values). It is sent
// as INTEGER (-70..-22) of half the value, so -70 dBm goes on the wire as
// the raw pattern 35.
type QRxLevMin int

func (ie *QRxLevMin) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie)/2, -70, -22)
	return c.Err()
}

func (ie *QRxLevMin) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = QRxLevMin(2*unpackInt(c, -70, -22))
	return c.Err()
}

// QQualMin ::= INTEGER (-34..-3)
// in dB, raw = v + 34.
type QQualMin int

func (ie *QQualMin) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), -34, -3)
	return c.Err()
}

func (ie *QQualMin) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = QQualMin(unpackInt(c, -34, -3))
	return c.Err()
}

// qOffsetRangeDB lists the dB value of each Q-OffsetRange enumeration.
var qOffsetRangeDB = [...]int{
	-24, -22, -20, -18, -16, -14, -12, -10, -8, -6, -5, -4, -3, -2, -1, 0,
	1, 2, 3, 4, 5, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24,
}

// QOffsetDB0 is the Q-OffsetRange value dB0, the DEFAULT of offsetFreq and
// q-OffsetFreq.
const QOffsetDB0 QOffsetRange = 15

// DB returns the offset in dB.
func (ie QOffsetRange) DB() int {
	if int(ie) >= len(qOffsetRangeDB) {
		return 0
	}
	return qOffsetRangeDB[ie]
}

// QOffsetRangeFromDB returns the enumeration for a dB value listed in
// 6.3.4 Q-OffsetRange.
func QOffsetRangeFromDB(db int) (QOffsetRange, bool) {
	for i, v := range qOffsetRangeDB {
		if v == db {
			return QOffsetRange(i), true
		}
	}
	return 0, false
}

// QOffsetRange is ENUMERATED { dB-24, dB-22, ..., dB22, dB24 } with 31
// values; see DB.
type QOffsetRange uint8

func (ie *QOffsetRange) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 31, false)
	return c.Err()
}

func (ie *QOffsetRange) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[QOffsetRange](c, 31, false)
	return c.Err()
}

// QOffsetRangeInterRAT ::= INTEGER (-15..15)
type QOffsetRangeInterRAT int

func (ie *QOffsetRangeInterRAT) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), -15, 15)
	return c.Err()
}

func (ie *QOffsetRangeInterRAT) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = QOffsetRangeInterRAT(unpackInt(c, -15, 15))
	return c.Err()
}

// ReselectionThreshold is the threshold in dB (0..62, even values), sent as
// INTEGER (0..31) of half the value.
type ReselectionThreshold int

func (ie *ReselectionThreshold) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie)/2, 0, 31)
	return c.Err()
}

func (ie *ReselectionThreshold) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ReselectionThreshold(2*unpackInt(c, 0, 31))
	return c.Err()
}

// TReselection ::= INTEGER (0..7)
type TReselection uint8

func (ie *TReselection) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 7)
	return c.Err()
}

func (ie *TReselection) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = TReselection(unpackInt(c, 0, 7))
	return c.Err()
}

// CellReselectionPriority ::= INTEGER (0..7)
type CellReselectionPriority uint8

func (ie *CellReselectionPriority) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 7)
	return c.Err()
}

func (ie *CellReselectionPriority) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CellReselectionPriority(unpackInt(c, 0, 7))
	return c.Err()
}

// AdditionalSpectrumEmission ::= INTEGER (1..32)
type AdditionalSpectrumEmission uint8

func (ie *AdditionalSpectrumEmission) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 1, 32)
	return c.Err()
}

func (ie *AdditionalSpectrumEmission) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = AdditionalSpectrumEmission(unpackInt(c, 1, 32))
	return c.Err()
}

// PMax ::= INTEGER (-30..33)
// in dBm, raw = v + 30.
type PMax int

func (ie *PMax) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), -30, 33)
	return c.Err()
}

func (ie *PMax) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PMax(unpackInt(c, -30, 33))
	return c.Err()
}

// RSRPRange ::= INTEGER (0..97)
type RSRPRange uint8

func (ie *RSRPRange) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 97)
	return c.Err()
}

func (ie *RSRPRange) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RSRPRange(unpackInt(c, 0, 97))
	return c.Err()
}

// RSRQRange ::= INTEGER (0..34)
type RSRQRange uint8

func (ie *RSRQRange) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 34)
	return c.Err()
}

func (ie *RSRQRange) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RSRQRange(unpackInt(c, 0, 34))
	return c.Err()
}

// Hysteresis ::= INTEGER (0..30)
// in 0.5 dB steps.
type Hysteresis uint8

func (ie *Hysteresis) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 30)
	return c.Err()
}

func (ie *Hysteresis) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = Hysteresis(unpackInt(c, 0, 30))
	return c.Err()
}

// TimeToTrigger is ENUMERATED { ms0, ms40, ms64, ms80, ms100, ms128, ms160,
// ms256, ms320, ms480, ms512, ms640, ms1024, ms1280, ms2560, ms5120 }.
type TimeToTrigger uint8

func (ie *TimeToTrigger) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 16, false)
	return c.Err()
}

func (ie *TimeToTrigger) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[TimeToTrigger](c, 16, false)
	return c.Err()
}

// ReportInterval is ENUMERATED { ms120, ms240, ms480, ms640, ms1024, ms2048,
// ms5120, ms10240, min1, min6, min12, min30, min60, spare3, spare2, spare1 }.
type ReportInterval uint8

func (ie *ReportInterval) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 16, false)
	return c.Err()
}

func (ie *ReportInterval) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[ReportInterval](c, 16, false)
	return c.Err()
}

// AllowedMeasBandwidth ::= ENUMERATED {mbw6, mbw15, mbw25, mbw50, mbw75, mbw100}
type AllowedMeasBandwidth uint8

const (
	AllowedMeasBandwidthMBW6 AllowedMeasBandwidth = iota
	AllowedMeasBandwidthMBW15
	AllowedMeasBandwidthMBW25
	AllowedMeasBandwidthMBW50
	AllowedMeasBandwidthMBW75
	AllowedMeasBandwidthMBW100
)

func (ie *AllowedMeasBandwidth) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 6, false)
	return c.Err()
}

func (ie *AllowedMeasBandwidth) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[AllowedMeasBandwidth](c, 6, false)
	return c.Err()
}

// FilterCoefficient values used as DEFAULT.
const (
	FilterCoefficientFC2 FilterCoefficient = 2
	FilterCoefficientFC4 FilterCoefficient = 4
)

// FilterCoefficient is ENUMERATED { fc0, fc1, fc2, fc3, fc4, fc5, fc6, fc7,
// fc8, fc9, fc11, fc13, fc15, fc17, fc19, spare1, ... }.
type FilterCoefficient uint8

func (ie *FilterCoefficient) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 16, true)
	return c.Err()
}

func (ie *FilterCoefficient) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[FilterCoefficient](c, 16, true)
	return c.Err()
}

// MeasID ::= INTEGER (1..maxMeasId)
type MeasID uint8

func (ie *MeasID) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 1, maxMeasID)
	return c.Err()
}

func (ie *MeasID) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasID(unpackInt(c, 1, maxMeasID))
	return c.Err()
}

// MeasObjectID ::= INTEGER (1..maxObjectId)
type MeasObjectID uint8

func (ie *MeasObjectID) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 1, maxObjectID)
	return c.Err()
}

func (ie *MeasObjectID) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasObjectID(unpackInt(c, 1, maxObjectID))
	return c.Err()
}

// ReportConfigID ::= INTEGER (1..maxReportConfigId)
type ReportConfigID uint8

func (ie *ReportConfigID) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 1, maxReportConfigID)
	return c.Err()
}

func (ie *ReportConfigID) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ReportConfigID(unpackInt(c, 1, maxReportConfigID))
	return c.Err()
}

// CellIndex ::= INTEGER (1..maxCellMeas)
type CellIndex uint8

func (ie *CellIndex) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 1, maxCellMeas)
	return c.Err()
}

func (ie *CellIndex) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CellIndex(unpackInt(c, 1, maxCellMeas))
	return c.Err()
}

// DRBIdentity ::= INTEGER (1..32)
type DRBIdentity uint8

func (ie *DRBIdentity) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 1, 32)
	return c.Err()
}

func (ie *DRBIdentity) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = DRBIdentity(unpackInt(c, 1, 32))
	return c.Err()
}

// TimeAlignmentTimer is ENUMERATED { sf500, sf750, sf1280, sf1920, sf2560,
// sf5120, sf10240, infinity }.
type TimeAlignmentTimer uint8

func (ie *TimeAlignmentTimer) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 8, false)
	return c.Err()
}

func (ie *TimeAlignmentTimer) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[TimeAlignmentTimer](c, 8, false)
	return c.Err()
}

// RATType ::= ENUMERATED {eutra, utra, geran-cs, geran-ps, cdma2000-1XRTT,
// spare3, spare2, spare1, ...}
type RATType uint8

const (
	RATTypeEUTRA RATType = iota
	RATTypeUTRA
	RATTypeGERANCS
	RATTypeGERANPS
	RATTypeCDMA20001XRTT
)

func (ie *RATType) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 8, true)
	return c.Err()
}

func (ie *RATType) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[RATType](c, 8, true)
	return c.Err()
}

// CDMA2000Type ::= ENUMERATED {type1XRTT, typeHRPD}
type CDMA2000Type uint8

const (
	CDMA2000Type1XRTT CDMA2000Type = iota
	CDMA2000TypeHRPD
)

func (ie *CDMA2000Type) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 2, false)
	return c.Err()
}

func (ie *CDMA2000Type) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[CDMA2000Type](c, 2, false)
	return c.Err()
}

// SpeedStateScaleFactor is ENUMERATED {oDot25, oDot5, oDot75, lDot0}.
type SpeedStateScaleFactor uint8

const (
	SpeedStateScaleFactorODot25 SpeedStateScaleFactor = iota
	SpeedStateScaleFactorODot5
	SpeedStateScaleFactorODot75
	SpeedStateScaleFactorLDot0
)

func (ie *SpeedStateScaleFactor) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, *ie, 4, false)
	return c.Err()
}

func (ie *SpeedStateScaleFactor) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = unpackEnum[SpeedStateScaleFactor](c, 4, false)
	return c.Err()
}

// 6.3.4 SpeedStateScaleFactors
/*
SpeedStateScaleFactors ::=          SEQUENCE {
    sf-Medium                           ENUMERATED {oDot25, oDot5, oDot75, lDot0},
    sf-High                             ENUMERATED {oDot25, oDot5, oDot75, lDot0}
}
*/
type SpeedStateScaleFactors struct {
	SFMedium SpeedStateScaleFactor
	SFHigh   SpeedStateScaleFactor
}

func (ie *SpeedStateScaleFactors) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.SFMedium, 4, false)
	packEnum(c, ie.SFHigh, 4, false)
	return c.Err()
}

func (ie *SpeedStateScaleFactors) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.SFMedium = unpackEnum[SpeedStateScaleFactor](c, 4, false)
	ie.SFHigh = unpackEnum[SpeedStateScaleFactor](c, 4, false)
	return c.Err()
}

// 6.3.4 MobilityStateParameters
/*
MobilityStateParameters ::=         SEQUENCE {
    t-Evaluation                        ENUMERATED {
                                            s30, s60, s120, s180, s240, spare3, spare2, spare1},
    t-HystNormal                        ENUMERATED {
                                            s30, s60, s120, s180, s240, spare3, spare2, spare1},
    n-CellChangeMedium                  INTEGER (1..16),
    n-CellChangeHigh                    INTEGER (1..16)
}
*/
type MobilityStateParameters struct {
	TEvaluation       uint8
	THystNormal       uint8
	NCellChangeMedium uint8
	NCellChangeHigh   uint8
}

func (ie *MobilityStateParameters) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.TEvaluation, 8, false)
	packEnum(c, ie.THystNormal, 8, false)
	packInt(c, int(ie.NCellChangeMedium), 1, 16)
	packInt(c, int(ie.NCellChangeHigh), 1, 16)
	return c.Err()
}

func (ie *MobilityStateParameters) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.TEvaluation = unpackEnum[uint8](c, 8, false)
	ie.THystNormal = unpackEnum[uint8](c, 8, false)
	ie.NCellChangeMedium = uint8(unpackInt(c, 1, 16))
	ie.NCellChangeHigh = uint8(unpackInt(c, 1, 16))
	return c.Err()
}

// 6.3.3 SecurityAlgorithmConfig
/*
SecurityAlgorithmConfig ::=         SEQUENCE {
    cipheringAlgorithm                  ENUMERATED {
                                            eea0, eea1, eea2, spare5, spare4, spare3,
                                            spare2, spare1, ...},
    integrityProtAlgorithm              ENUMERATED {
                                            eia0-v920, eia1, eia2, spare5, spare4, spare3,
                                            spare2, spare1, ...}
}
*/
type SecurityAlgorithmConfig struct {
	CipheringAlgorithm     uint8
	IntegrityProtAlgorithm uint8
}

func (ie *SecurityAlgorithmConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.CipheringAlgorithm, 8, true)
	packEnum(c, ie.IntegrityProtAlgorithm, 8, true)
	return c.Err()
}

func (ie *SecurityAlgorithmConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.CipheringAlgorithm = unpackEnum[uint8](c, 8, true)
	ie.IntegrityProtAlgorithm = unpackEnum[uint8](c, 8, true)
	return c.Err()
}
