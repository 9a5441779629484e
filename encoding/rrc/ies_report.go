// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// ReportConfigType selects the reportConfig alternative.
type ReportConfigType uint8

const (
	ReportConfigTypeEUTRA ReportConfigType = iota
	ReportConfigTypeInterRAT
)

// 6.3.5 ReportConfigToAddModList
/*
ReportConfigToAddMod ::=    SEQUENCE {
    reportConfigId              ReportConfigId,
    reportConfig                CHOICE {
        reportConfigEUTRA           ReportConfigEUTRA,
        reportConfigInterRAT        ReportConfigInterRAT
    }
}
*/
type ReportConfigToAddMod struct {
	ReportConfigID ReportConfigID
	Type           ReportConfigType
	EUTRA          ReportConfigEUTRA
	InterRAT       ReportConfigInterRAT
}

func (ie *ReportConfigToAddMod) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.ReportConfigID.Pack(c); err != nil {
		return err
	}
	switch ie.Type {
	case ReportConfigTypeEUTRA:
		per.EncChoice(c, 0, 2, false)
		return ie.EUTRA.Pack(c)
	case ReportConfigTypeInterRAT:
		per.EncChoice(c, 1, 2, false)
		return ie.InterRAT.Pack(c)
	}
	return unsupported(c, "reportConfig", int(ie.Type))
}

func (ie *ReportConfigToAddMod) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ReportConfigToAddMod{}
	if err := ie.ReportConfigID.Unpack(c); err != nil {
		return err
	}
	idx, _ := per.DecChoice(c, 2, false)
	ie.Type = ReportConfigType(idx)
	if ie.Type == ReportConfigTypeEUTRA {
		return ie.EUTRA.Unpack(c)
	}
	return ie.InterRAT.Unpack(c)
}

// TriggerType selects between event and periodical reporting.
type TriggerType uint8

const (
	TriggerTypeEvent TriggerType = iota
	TriggerTypePeriodical
)

// ThresholdType selects the ThresholdEUTRA alternative.
type ThresholdType uint8

const (
	ThresholdTypeRSRP ThresholdType = iota
	ThresholdTypeRSRQ
)

// ThresholdEUTRA ::= CHOICE { threshold-RSRP RSRP-Range, threshold-RSRQ
// RSRQ-Range }
type ThresholdEUTRA struct {
	Type  ThresholdType
	Value uint8
}

func (ie *ThresholdEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	switch ie.Type {
	case ThresholdTypeRSRP:
		per.EncChoice(c, 0, 2, false)
		packInt(c, int(ie.Value), 0, 97)
	case ThresholdTypeRSRQ:
		per.EncChoice(c, 1, 2, false)
		packInt(c, int(ie.Value), 0, 34)
	default:
		return unsupported(c, "ThresholdEUTRA", int(ie.Type))
	}
	return c.Err()
}

func (ie *ThresholdEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	idx, _ := per.DecChoice(c, 2, false)
	ie.Type = ThresholdType(idx)
	if ie.Type == ThresholdTypeRSRP {
		ie.Value = uint8(unpackInt(c, 0, 97))
	} else {
		ie.Value = uint8(unpackInt(c, 0, 34))
	}
	return c.Err()
}

// EventIDEUTRA selects the eventId alternative of ReportConfigEUTRA.
type EventIDEUTRA uint8

const (
	EventA1 EventIDEUTRA = iota
	EventA2
	EventA3
	EventA4
	EventA5
)

// 6.3.5 ReportConfigEUTRA
/*
ReportConfigEUTRA ::=               SEQUENCE {
    triggerType                         CHOICE {
        event                               SEQUENCE {
            eventId                             CHOICE {
                eventA1                             SEQUENCE {
                    a1-Threshold                        ThresholdEUTRA
                },
                eventA2                             SEQUENCE {
                    a2-Threshold                        ThresholdEUTRA
                },
                eventA3                             SEQUENCE {
                    a3-Offset                           INTEGER (-30..30),
                    reportOnLeave                       BOOLEAN
                },
                eventA4                             SEQUENCE {
                    a4-Threshold                        ThresholdEUTRA
                },
                eventA5                             SEQUENCE {
                    a5-Threshold1                       ThresholdEUTRA,
                    a5-Threshold2                       ThresholdEUTRA
                },
                ...
            },
            hysteresis                          Hysteresis,
            timeToTrigger                       TimeToTrigger
        },
        periodical                          SEQUENCE {
            purpose                             ENUMERATED {
                                                    reportStrongestCells, reportCGI}
        }
    },
    triggerQuantity                     ENUMERATED {rsrp, rsrq},
    reportQuantity                      ENUMERATED {sameAsTriggerQuantity, both},
    maxReportCells                      INTEGER (1..maxCellReport),
    reportInterval                      ReportInterval,
    reportAmount                        ENUMERATED {r1, r2, r4, r8, r16, r32, r64, infinity},
    ...
}
*/
type ReportConfigEUTRA struct {
	TriggerType     TriggerType
	Event           EventEUTRA
	Purpose         uint8
	TriggerQuantity uint8
	ReportQuantity  uint8
	MaxReportCells  uint8
	ReportInterval  ReportInterval
	ReportAmount    uint8
}

// EventEUTRA holds the event trigger. Threshold1 is the a1, a2, a4 and a5-1
// threshold, Threshold2 only applies to A5. A3Offset is in 0.5 dB steps.
type EventEUTRA struct {
	ID            EventIDEUTRA
	Threshold1    ThresholdEUTRA
	Threshold2    ThresholdEUTRA
	A3Offset      int
	ReportOnLeave bool
	Hysteresis    Hysteresis
	TimeToTrigger TimeToTrigger
}

func (ie *EventEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if ie.ID > EventA5 {
		return unsupported(c, "eventId", int(ie.ID))
	}
	per.EncChoice(c, int(ie.ID), 5, true)
	var err error
	switch ie.ID {
	case EventA1, EventA2, EventA4:
		err = ie.Threshold1.Pack(c)
	case EventA3:
		packInt(c, ie.A3Offset, -30, 30)
		c.WriteBool(ie.ReportOnLeave)
	case EventA5:
		if err = ie.Threshold1.Pack(c); err == nil {
			err = ie.Threshold2.Pack(c)
		}
	}
	if err != nil {
		return err
	}
	if err := ie.Hysteresis.Pack(c); err != nil {
		return err
	}
	return ie.TimeToTrigger.Pack(c)
}

func (ie *EventEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = EventEUTRA{}
	idx, ext := per.DecChoice(c, 5, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext || idx > int(EventA5) {
		if ext {
			idx += 5
		}
		return unsupported(c, "eventId", idx)
	}
	ie.ID = EventIDEUTRA(idx)
	var err error
	switch ie.ID {
	case EventA1, EventA2, EventA4:
		err = ie.Threshold1.Unpack(c)
	case EventA3:
		ie.A3Offset = unpackInt(c, -30, 30)
		ie.ReportOnLeave = c.ReadBool()
	case EventA5:
		if err = ie.Threshold1.Unpack(c); err == nil {
			err = ie.Threshold2.Unpack(c)
		}
	}
	if err != nil {
		return err
	}
	if err := ie.Hysteresis.Unpack(c); err != nil {
		return err
	}
	return ie.TimeToTrigger.Unpack(c)
}

func (ie *ReportConfigEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	switch ie.TriggerType {
	case TriggerTypeEvent:
		per.EncChoice(c, 0, 2, false)
		if err := ie.Event.Pack(c); err != nil {
			return err
		}
	case TriggerTypePeriodical:
		per.EncChoice(c, 1, 2, false)
		packEnum(c, ie.Purpose, 2, false)
	default:
		return unsupported(c, "triggerType", int(ie.TriggerType))
	}
	packEnum(c, ie.TriggerQuantity, 2, false)
	packEnum(c, ie.ReportQuantity, 2, false)
	packInt(c, int(ie.MaxReportCells), 1, maxCellReport)
	if err := ie.ReportInterval.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.ReportAmount, 8, false)
	return c.Err()
}

func (ie *ReportConfigEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ReportConfigEUTRA{}
	ext := per.DecSequence(c, true)
	idx, _ := per.DecChoice(c, 2, false)
	ie.TriggerType = TriggerType(idx)
	if ie.TriggerType == TriggerTypeEvent {
		if err := ie.Event.Unpack(c); err != nil {
			return err
		}
	} else {
		ie.Purpose = unpackEnum[uint8](c, 2, false)
	}
	ie.TriggerQuantity = unpackEnum[uint8](c, 2, false)
	ie.ReportQuantity = unpackEnum[uint8](c, 2, false)
	ie.MaxReportCells = uint8(unpackInt(c, 1, maxCellReport))
	if err := ie.ReportInterval.Unpack(c); err != nil {
		return err
	}
	ie.ReportAmount = unpackEnum[uint8](c, 8, false)
	return skipExtensions(c, ext, "ReportConfigEUTRA")
}

// ThresholdUTRAType selects the ThresholdUTRA alternative.
type ThresholdUTRAType uint8

const (
	ThresholdUTRARSCP ThresholdUTRAType = iota
	ThresholdUTRAEcN0
)

// ThresholdRAT selects the inter-RAT threshold alternative of eventB1 and
// eventB2.
type ThresholdRAT uint8

const (
	ThresholdRATUTRA ThresholdRAT = iota
	ThresholdRATGERAN
	ThresholdRATCDMA2000
)

/*
ThresholdUTRA ::=                   CHOICE {
    utra-RSCP                           INTEGER (-5..91),
    utra-EcN0                           INTEGER (0..49)
}

ThresholdGERAN ::=                  INTEGER (0..63)

ThresholdCDMA2000 ::=               INTEGER (0..63)
*/
// ThresholdInterRAT is the b1-Threshold and b2-Threshold2 CHOICE. Value is
// the UTRA RSCP (-5..91), UTRA Ec/N0, GERAN or CDMA2000 threshold.
type ThresholdInterRAT struct {
	RAT      ThresholdRAT
	UTRAType ThresholdUTRAType
	Value    int
}

func (ie *ThresholdInterRAT) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if ie.RAT > ThresholdRATCDMA2000 {
		return unsupported(c, "ThresholdInterRAT", int(ie.RAT))
	}
	per.EncChoice(c, int(ie.RAT), 3, false)
	if ie.RAT != ThresholdRATUTRA {
		packInt(c, ie.Value, 0, 63)
		return c.Err()
	}
	switch ie.UTRAType {
	case ThresholdUTRARSCP:
		per.EncChoice(c, 0, 2, false)
		packInt(c, ie.Value, -5, 91)
	case ThresholdUTRAEcN0:
		per.EncChoice(c, 1, 2, false)
		packInt(c, ie.Value, 0, 49)
	default:
		return unsupported(c, "ThresholdUTRA", int(ie.UTRAType))
	}
	return c.Err()
}

func (ie *ThresholdInterRAT) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ThresholdInterRAT{}
	idx, _ := per.DecChoice(c, 3, false)
	if err := c.Err(); err != nil {
		return err
	}
	if idx > int(ThresholdRATCDMA2000) {
		return unsupported(c, "ThresholdInterRAT", idx)
	}
	ie.RAT = ThresholdRAT(idx)
	if ie.RAT != ThresholdRATUTRA {
		ie.Value = unpackInt(c, 0, 63)
		return c.Err()
	}
	utra, _ := per.DecChoice(c, 2, false)
	ie.UTRAType = ThresholdUTRAType(utra)
	if ie.UTRAType == ThresholdUTRARSCP {
		ie.Value = unpackInt(c, -5, 91)
	} else {
		ie.Value = unpackInt(c, 0, 49)
	}
	return c.Err()
}

// EventIDInterRAT selects the eventId alternative of ReportConfigInterRAT.
type EventIDInterRAT uint8

const (
	EventB1 EventIDInterRAT = iota
	EventB2
)

// 6.3.5 ReportConfigInterRAT
/*
ReportConfigInterRAT ::=            SEQUENCE {
    triggerType                         CHOICE {
        event                               SEQUENCE {
            eventId                             CHOICE {
                eventB1                             SEQUENCE {
                    b1-Threshold                        CHOICE {
                        b1-ThresholdUTRA                    ThresholdUTRA,
                        b1-ThresholdGERAN                   ThresholdGERAN,
                        b1-ThresholdCDMA2000                ThresholdCDMA2000
                    }
                },
                eventB2                             SEQUENCE {
                    b2-Threshold1                       ThresholdEUTRA,
                    b2-Threshold2                       CHOICE {
                        b2-Threshold2UTRA                   ThresholdUTRA,
                        b2-Threshold2GERAN                  ThresholdGERAN,
                        b2-Threshold2CDMA2000               ThresholdCDMA2000
                    }
                },
                ...
            },
            hysteresis                          Hysteresis,
            timeToTrigger                       TimeToTrigger
        },
        periodical                          SEQUENCE {
            purpose                             ENUMERATED {
                                                    reportStrongestCells,
                                                    reportStrongestCellsForSON,
                                                    reportCGI}
        }
    },
    maxReportCells                      INTEGER (1..maxCellReport),
    reportInterval                      ReportInterval,
    reportAmount                        ENUMERATED {r1, r2, r4, r8, r16, r32, r64, infinity},
    ...
}
*/
type ReportConfigInterRAT struct {
	TriggerType    TriggerType
	Event          EventInterRAT
	Purpose        uint8
	MaxReportCells uint8
	ReportInterval ReportInterval
	ReportAmount   uint8
}

// EventInterRAT holds an eventB1 or eventB2 trigger; ThresholdEUTRA only
// applies to B2.
type EventInterRAT struct {
	ID             EventIDInterRAT
	ThresholdEUTRA ThresholdEUTRA
	Threshold      ThresholdInterRAT
	Hysteresis     Hysteresis
	TimeToTrigger  TimeToTrigger
}

func (ie *EventInterRAT) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	switch ie.ID {
	case EventB1:
		per.EncChoice(c, 0, 2, true)
	case EventB2:
		per.EncChoice(c, 1, 2, true)
		if err := ie.ThresholdEUTRA.Pack(c); err != nil {
			return err
		}
	default:
		return unsupported(c, "eventId", int(ie.ID))
	}
	if err := ie.Threshold.Pack(c); err != nil {
		return err
	}
	if err := ie.Hysteresis.Pack(c); err != nil {
		return err
	}
	return ie.TimeToTrigger.Pack(c)
}

func (ie *EventInterRAT) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = EventInterRAT{}
	idx, ext := per.DecChoice(c, 2, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext {
		return unsupported(c, "eventId", 2+idx)
	}
	ie.ID = EventIDInterRAT(idx)
	if ie.ID == EventB2 {
		if err := ie.ThresholdEUTRA.Unpack(c); err != nil {
			return err
		}
	}
	if err := ie.Threshold.Unpack(c); err != nil {
		return err
	}
	if err := ie.Hysteresis.Unpack(c); err != nil {
		return err
	}
	return ie.TimeToTrigger.Unpack(c)
}

func (ie *ReportConfigInterRAT) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	switch ie.TriggerType {
	case TriggerTypeEvent:
		per.EncChoice(c, 0, 2, false)
		if err := ie.Event.Pack(c); err != nil {
			return err
		}
	case TriggerTypePeriodical:
		per.EncChoice(c, 1, 2, false)
		packEnum(c, ie.Purpose, 3, false)
	default:
		return unsupported(c, "triggerType", int(ie.TriggerType))
	}
	packInt(c, int(ie.MaxReportCells), 1, maxCellReport)
	if err := ie.ReportInterval.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.ReportAmount, 8, false)
	return c.Err()
}

func (ie *ReportConfigInterRAT) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ReportConfigInterRAT{}
	ext := per.DecSequence(c, true)
	idx, _ := per.DecChoice(c, 2, false)
	ie.TriggerType = TriggerType(idx)
	if ie.TriggerType == TriggerTypeEvent {
		if err := ie.Event.Unpack(c); err != nil {
			return err
		}
	} else {
		ie.Purpose = unpackEnum[uint8](c, 3, false)
	}
	ie.MaxReportCells = uint8(unpackInt(c, 1, maxCellReport))
	if err := ie.ReportInterval.Unpack(c); err != nil {
		return err
	}
	ie.ReportAmount = unpackEnum[uint8](c, 8, false)
	return skipExtensions(c, ext, "ReportConfigInterRAT")
}

// 6.3.5 MeasResults
/*
MeasResults ::=                     SEQUENCE {
    measId                              MeasId,
    measResultServCell                  SEQUENCE {
        rsrpResult                          RSRP-Range,
        rsrqResult                          RSRQ-Range
    },
    measResultNeighCells                CHOICE {
        measResultListEUTRA                 MeasResultListEUTRA,
        measResultListUTRA                  MeasResultListUTRA,
        measResultListGERAN                 MeasResultListGERAN,
        measResultsCDMA2000                 MeasResultsCDMA2000,
        ...
    }                                                               OPTIONAL,
    ...
}

MeasResultListEUTRA ::=             SEQUENCE (SIZE (1..maxCellReport)) OF MeasResultEUTRA
MeasResultListUTRA ::=              SEQUENCE (SIZE (1..maxCellReport)) OF MeasResultUTRA
MeasResultListGERAN ::=             SEQUENCE (SIZE (1..maxCellReport)) OF MeasResultGERAN
*/
type MeasResults struct {
	MeasID               MeasID
	RSRPResult           RSRPRange
	RSRQResult           RSRQRange
	MeasResultNeighCells *MeasResultNeighCells
}

// MeasResultNeighCells reuses MeasObjectType for its alternatives, which
// follow the same order.
type MeasResultNeighCells struct {
	Type     MeasObjectType
	EUTRA    []MeasResultEUTRA
	UTRA     []MeasResultUTRA
	GERAN    []MeasResultGERAN
	CDMA2000 MeasResultsCDMA2000
}

func (ie *MeasResultNeighCells) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if ie.Type > MeasObjectTypeCDMA2000 {
		return unsupported(c, "measResultNeighCells", int(ie.Type))
	}
	per.EncChoice(c, int(ie.Type), 4, true)
	switch ie.Type {
	case MeasObjectTypeEUTRA:
		return packList(c, ie.EUTRA, 1, maxCellReport)
	case MeasObjectTypeUTRA:
		return packList(c, ie.UTRA, 1, maxCellReport)
	case MeasObjectTypeGERAN:
		return packList(c, ie.GERAN, 1, maxCellReport)
	}
	return ie.CDMA2000.Pack(c)
}

func (ie *MeasResultNeighCells) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasResultNeighCells{}
	idx, ext := per.DecChoice(c, 4, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext {
		return unsupported(c, "measResultNeighCells", 4+idx)
	}
	ie.Type = MeasObjectType(idx)
	var err error
	switch ie.Type {
	case MeasObjectTypeEUTRA:
		ie.EUTRA, err = unpackList[MeasResultEUTRA](c, 1, maxCellReport)
	case MeasObjectTypeUTRA:
		ie.UTRA, err = unpackList[MeasResultUTRA](c, 1, maxCellReport)
	case MeasObjectTypeGERAN:
		ie.GERAN, err = unpackList[MeasResultGERAN](c, 1, maxCellReport)
	default:
		err = ie.CDMA2000.Unpack(c)
	}
	return err
}

func (ie *MeasResults) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.MeasResultNeighCells != nil)
	if err := ie.MeasID.Pack(c); err != nil {
		return err
	}
	if err := ie.RSRPResult.Pack(c); err != nil {
		return err
	}
	if err := ie.RSRQResult.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.MeasResultNeighCells != nil, ie.MeasResultNeighCells)
}

func (ie *MeasResults) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasResults{}
	var neigh bool
	ext := per.DecSequence(c, true, &neigh)
	if err := ie.MeasID.Unpack(c); err != nil {
		return err
	}
	if err := ie.RSRPResult.Unpack(c); err != nil {
		return err
	}
	if err := ie.RSRQResult.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.MeasResultNeighCells, err =
		unpackOptional[MeasResultNeighCells](c, neigh); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MeasResults")
}

// packPLMNIdentityList2 writes PLMN-IdentityList2 ::= SEQUENCE (SIZE (1..5))
// OF PLMN-Identity.
func packPLMNIdentityList2(c *per.Cursor, list []PLMNIdentity) error {
	return packList(c, list, 1, 5)
}

func unpackPLMNIdentityList2(c *per.Cursor) ([]PLMNIdentity, error) {
	return unpackList[PLMNIdentity](c, 1, 5)
}

// 6.3.5 MeasResultEUTRA
/*
MeasResultEUTRA ::= SEQUENCE {
    physCellId                          PhysCellId,
    cgi-Info                            SEQUENCE {
        cellGlobalId                        CellGlobalIdEUTRA,
        trackingAreaCode                    TrackingAreaCode,
        plmn-IdentityList                   PLMN-IdentityList2          OPTIONAL
    }                                                                   OPTIONAL,
    measResult                          SEQUENCE {
        rsrpResult                          RSRP-Range                  OPTIONAL,
        rsrqResult                          RSRQ-Range                  OPTIONAL,
        ...
    }
}
*/
type MeasResultEUTRA struct {
	PhysCellID PhysCellID
	CGIInfo    *CGIInfoEUTRA
	RSRPResult *RSRPRange
	RSRQResult *RSRQRange
}

type CGIInfoEUTRA struct {
	CellGlobalID     CellGlobalIDEUTRA
	TrackingAreaCode TrackingAreaCode
	PLMNIdentityList []PLMNIdentity
}

func (ie *CGIInfoEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, len(ie.PLMNIdentityList) != 0)
	if err := ie.CellGlobalID.Pack(c); err != nil {
		return err
	}
	if err := ie.TrackingAreaCode.Pack(c); err != nil {
		return err
	}
	if len(ie.PLMNIdentityList) != 0 {
		return packPLMNIdentityList2(c, ie.PLMNIdentityList)
	}
	return c.Err()
}

func (ie *CGIInfoEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CGIInfoEUTRA{}
	var list bool
	per.DecSequence(c, false, &list)
	if err := ie.CellGlobalID.Unpack(c); err != nil {
		return err
	}
	if err := ie.TrackingAreaCode.Unpack(c); err != nil {
		return err
	}
	if list {
		var err error
		ie.PLMNIdentityList, err = unpackPLMNIdentityList2(c)
		return err
	}
	return c.Err()
}

func (ie *MeasResultEUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.CGIInfo != nil)
	if err := ie.PhysCellID.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.CGIInfo != nil, ie.CGIInfo); err != nil {
		return err
	}
	per.EncSequence(c, true, ie.RSRPResult != nil, ie.RSRQResult != nil)
	if err := packOptional(c, ie.RSRPResult != nil, ie.RSRPResult); err != nil {
		return err
	}
	return packOptional(c, ie.RSRQResult != nil, ie.RSRQResult)
}

func (ie *MeasResultEUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasResultEUTRA{}
	var cgi, rsrp, rsrq bool
	per.DecSequence(c, false, &cgi)
	if err := ie.PhysCellID.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.CGIInfo, err = unpackOptional[CGIInfoEUTRA](c, cgi); err != nil {
		return err
	}
	ext := per.DecSequence(c, true, &rsrp, &rsrq)
	if ie.RSRPResult, err = unpackOptional[RSRPRange](c, rsrp); err != nil {
		return err
	}
	if ie.RSRQResult, err = unpackOptional[RSRQRange](c, rsrq); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MeasResultEUTRA measResult")
}

// 6.3.5 MeasResultUTRA
/*
MeasResultUTRA ::= SEQUENCE {
    physCellId                          CHOICE {
        fdd                                 PhysCellIdUTRA-FDD,
        tdd                                 PhysCellIdUTRA-TDD
    },
    cgi-Info                            SEQUENCE {
        cellGlobalId                        CellGlobalIdUTRA,
        locationAreaCode                    BIT STRING (SIZE (16))      OPTIONAL,
        routingAreaCode                     BIT STRING (SIZE (8))       OPTIONAL,
        plmn-IdentityList                   PLMN-IdentityList2          OPTIONAL
    }                                                                   OPTIONAL,
    measResult                          SEQUENCE {
        utra-RSCP                           INTEGER (-5..91)            OPTIONAL,
        utra-EcN0                           INTEGER (0..49)             OPTIONAL,
        ...
    }
}
*/
type MeasResultUTRA struct {
	PhysCellID PhysCellIDUTRA
	CGIInfo    *CGIInfoUTRA
	UTRARSCP   *int
	UTRAEcN0   *uint8
}

type CGIInfoUTRA struct {
	CellGlobalID     CellGlobalIDUTRA
	LocationAreaCode *uint16
	RoutingAreaCode  *uint8
	PLMNIdentityList []PLMNIdentity
}

func (ie *CGIInfoUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.LocationAreaCode != nil, ie.RoutingAreaCode != nil,
		len(ie.PLMNIdentityList) != 0)
	if err := ie.CellGlobalID.Pack(c); err != nil {
		return err
	}
	if ie.LocationAreaCode != nil {
		c.WriteBits(uint64(*ie.LocationAreaCode), 16)
	}
	if ie.RoutingAreaCode != nil {
		c.WriteBits(uint64(*ie.RoutingAreaCode), 8)
	}
	if len(ie.PLMNIdentityList) != 0 {
		return packPLMNIdentityList2(c, ie.PLMNIdentityList)
	}
	return c.Err()
}

func (ie *CGIInfoUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CGIInfoUTRA{}
	var lac, rac, list bool
	per.DecSequence(c, false, &lac, &rac, &list)
	if err := ie.CellGlobalID.Unpack(c); err != nil {
		return err
	}
	if lac {
		v := uint16(c.ReadBits(16))
		ie.LocationAreaCode = &v
	}
	if rac {
		v := uint8(c.ReadBits(8))
		ie.RoutingAreaCode = &v
	}
	if list {
		var err error
		ie.PLMNIdentityList, err = unpackPLMNIdentityList2(c)
		return err
	}
	return c.Err()
}

func (ie *MeasResultUTRA) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.CGIInfo != nil)
	if err := ie.PhysCellID.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.CGIInfo != nil, ie.CGIInfo); err != nil {
		return err
	}
	per.EncSequence(c, true, ie.UTRARSCP != nil, ie.UTRAEcN0 != nil)
	if ie.UTRARSCP != nil {
		packInt(c, *ie.UTRARSCP, -5, 91)
	}
	if ie.UTRAEcN0 != nil {
		packInt(c, int(*ie.UTRAEcN0), 0, 49)
	}
	return c.Err()
}

func (ie *MeasResultUTRA) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasResultUTRA{}
	var cgi, rscp, ecn0 bool
	per.DecSequence(c, false, &cgi)
	if err := ie.PhysCellID.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.CGIInfo, err = unpackOptional[CGIInfoUTRA](c, cgi); err != nil {
		return err
	}
	ext := per.DecSequence(c, true, &rscp, &ecn0)
	if rscp {
		v := unpackInt(c, -5, 91)
		ie.UTRARSCP = &v
	}
	if ecn0 {
		v := uint8(unpackInt(c, 0, 49))
		ie.UTRAEcN0 = &v
	}
	return skipExtensions(c, ext, "MeasResultUTRA measResult")
}

// 6.3.5 MeasResultGERAN
/*
MeasResultGERAN ::= SEQUENCE {
    carrierFreq                         CarrierFreqGERAN,
    physCellId                          PhysCellIdGERAN,
    cgi-Info                            SEQUENCE {
        cellGlobalId                        CellGlobalIdGERAN,
        routingAreaCode                     BIT STRING (SIZE (8))       OPTIONAL
    }                                                                   OPTIONAL,
    measResult                          SEQUENCE {
        rssi                                INTEGER (0..63),
        ...
    }
}
*/
type MeasResultGERAN struct {
	CarrierFreq CarrierFreqGERAN
	PhysCellID  PhysCellIDGERAN
	CGIInfo     *CGIInfoGERAN
	RSSI        uint8
}

type CGIInfoGERAN struct {
	CellGlobalID    CellGlobalIDGERAN
	RoutingAreaCode *uint8
}

func (ie *CGIInfoGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.RoutingAreaCode != nil)
	if err := ie.CellGlobalID.Pack(c); err != nil {
		return err
	}
	if ie.RoutingAreaCode != nil {
		c.WriteBits(uint64(*ie.RoutingAreaCode), 8)
	}
	return c.Err()
}

func (ie *CGIInfoGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = CGIInfoGERAN{}
	var rac bool
	per.DecSequence(c, false, &rac)
	if err := ie.CellGlobalID.Unpack(c); err != nil {
		return err
	}
	if rac {
		v := uint8(c.ReadBits(8))
		ie.RoutingAreaCode = &v
	}
	return c.Err()
}

func (ie *MeasResultGERAN) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.CGIInfo != nil)
	if err := ie.CarrierFreq.Pack(c); err != nil {
		return err
	}
	if err := ie.PhysCellID.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.CGIInfo != nil, ie.CGIInfo); err != nil {
		return err
	}
	per.EncSequence(c, true)
	packInt(c, int(ie.RSSI), 0, 63)
	return c.Err()
}

func (ie *MeasResultGERAN) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasResultGERAN{}
	var cgi bool
	per.DecSequence(c, false, &cgi)
	if err := ie.CarrierFreq.Unpack(c); err != nil {
		return err
	}
	if err := ie.PhysCellID.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.CGIInfo, err = unpackOptional[CGIInfoGERAN](c, cgi); err != nil {
		return err
	}
	ext := per.DecSequence(c, true)
	ie.RSSI = uint8(unpackInt(c, 0, 63))
	return skipExtensions(c, ext, "MeasResultGERAN measResult")
}

// 6.3.5 MeasResultsCDMA2000
/*
MeasResultsCDMA2000 ::=             SEQUENCE {
    preRegistrationStatusHRPD           BOOLEAN,
    measResultListCDMA2000              MeasResultListCDMA2000
}

MeasResultListCDMA2000 ::=          SEQUENCE (SIZE (1..maxCellReport)) OF MeasResultCDMA2000

MeasResultCDMA2000 ::=          SEQUENCE {
    physCellId                          PhysCellIdCDMA2000,
    cgi-Info                            CellGlobalIdCDMA2000            OPTIONAL,
    measResult                          SEQUENCE {
        pilotPnPhase                        INTEGER (0..32767)          OPTIONAL,
        pilotStrength                       INTEGER (0..63),
        ...
    }
}
*/
type MeasResultsCDMA2000 struct {
	PreRegistrationStatusHRPD bool
	MeasResultList            []MeasResultCDMA2000
}

func (ie *MeasResultsCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	c.WriteBool(ie.PreRegistrationStatusHRPD)
	return packList(c, ie.MeasResultList, 1, maxCellReport)
}

func (ie *MeasResultsCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.PreRegistrationStatusHRPD = c.ReadBool()
	var err error
	ie.MeasResultList, err = unpackList[MeasResultCDMA2000](c, 1, maxCellReport)
	return err
}

type MeasResultCDMA2000 struct {
	PhysCellID    PhysCellIDCDMA2000
	CGIInfo       *CellGlobalIDCDMA2000
	PilotPnPhase  *uint16
	PilotStrength uint8
}

func (ie *MeasResultCDMA2000) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.CGIInfo != nil)
	if err := ie.PhysCellID.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.CGIInfo != nil, ie.CGIInfo); err != nil {
		return err
	}
	per.EncSequence(c, true, ie.PilotPnPhase != nil)
	if ie.PilotPnPhase != nil {
		packInt(c, int(*ie.PilotPnPhase), 0, 32767)
	}
	packInt(c, int(ie.PilotStrength), 0, 63)
	return c.Err()
}

func (ie *MeasResultCDMA2000) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MeasResultCDMA2000{}
	var cgi, phase bool
	per.DecSequence(c, false, &cgi)
	if err := ie.PhysCellID.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.CGIInfo, err = unpackOptional[CellGlobalIDCDMA2000](c, cgi); err != nil {
		return err
	}
	ext := per.DecSequence(c, true, &phase)
	if phase {
		v := uint16(unpackInt(c, 0, 32767))
		ie.PilotPnPhase = &v
	}
	ie.PilotStrength = uint8(unpackInt(c, 0, 63))
	return skipExtensions(c, ext, "MeasResultCDMA2000 measResult")
}
