// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.3.1 SystemInformationBlockType9
/*
SystemInformationBlockType9 ::=     SEQUENCE {
    hnb-Name                            OCTET STRING (SIZE(1..48))      OPTIONAL,   -- Need OR
    ...
}
*/
type SystemInformationBlockType9 struct {
	HNBName []byte
}

const maxHNBNameLen = 48

func (*SystemInformationBlockType9) SIBType() SIBType { return SIBType9 }

func (ie *SystemInformationBlockType9) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.HNBName != nil)
	if ie.HNBName != nil {
		per.EncBoundedOctetString(c, ie.HNBName, 1, maxHNBNameLen)
	}
	return c.Err()
}

func (ie *SystemInformationBlockType9) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType9{}
	var name bool
	ext := per.DecSequence(c, true, &name)
	if name {
		ie.HNBName = per.DecBoundedOctetString(c, 1, maxHNBNameLen)
	}
	return skipExtensions(c, ext, "SystemInformationBlockType9")
}

// 6.3.1 SystemInformationBlockType10
/*
SystemInformationBlockType10 ::=    SEQUENCE {
    messageIdentifier                   BIT STRING (SIZE (16)),
    serialNumber                        BIT STRING (SIZE (16)),
    warningType                         OCTET STRING (SIZE (2)),
    warningSecurityInfo                 OCTET STRING (SIZE (50))    OPTIONAL,   -- Need OP
    ...
}
*/
type SystemInformationBlockType10 struct {
	MessageIdentifier   uint16
	SerialNumber        uint16
	WarningType         [2]byte
	WarningSecurityInfo []byte
}

const warningSecurityInfoLen = 50

func (*SystemInformationBlockType10) SIBType() SIBType { return SIBType10 }

func (ie *SystemInformationBlockType10) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.WarningSecurityInfo != nil)
	c.WriteBits(uint64(ie.MessageIdentifier), 16)
	c.WriteBits(uint64(ie.SerialNumber), 16)
	c.WriteBytes(ie.WarningType[:])
	if ie.WarningSecurityInfo != nil {
		per.EncFixedOctetString(c, ie.WarningSecurityInfo, warningSecurityInfoLen)
	}
	return c.Err()
}

func (ie *SystemInformationBlockType10) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType10{}
	var sec bool
	ext := per.DecSequence(c, true, &sec)
	ie.MessageIdentifier = uint16(c.ReadBits(16))
	ie.SerialNumber = uint16(c.ReadBits(16))
	copy(ie.WarningType[:], c.ReadBytes(2))
	if sec {
		ie.WarningSecurityInfo = per.DecFixedOctetString(c, warningSecurityInfoLen)
	}
	return skipExtensions(c, ext, "SystemInformationBlockType10")
}

// WarningMessageSegment is the segmented warning notification shared by
// SystemInformationBlockType11 (ETWS secondary) and
// SystemInformationBlockType12 (CMAS). DataCodingScheme is present in the
// first segment only.
type WarningMessageSegment struct {
	MessageIdentifier uint16
	SerialNumber      uint16
	LastSegment       bool
	SegmentNumber     uint8
	Segment           []byte
	DataCodingScheme  *uint8
}

func (ie *WarningMessageSegment) pack(c *per.Cursor) {
	c.WriteBits(uint64(ie.MessageIdentifier), 16)
	c.WriteBits(uint64(ie.SerialNumber), 16)
	c.WriteBool(ie.LastSegment)
	packInt(c, int(ie.SegmentNumber), 0, 63)
	per.EncOctetString(c, ie.Segment)
	if ie.DataCodingScheme != nil {
		c.WriteBits(uint64(*ie.DataCodingScheme), 8)
	}
}

func (ie *WarningMessageSegment) unpack(c *per.Cursor, dcs bool) {
	ie.MessageIdentifier = uint16(c.ReadBits(16))
	ie.SerialNumber = uint16(c.ReadBits(16))
	ie.LastSegment = c.ReadBool()
	ie.SegmentNumber = uint8(unpackInt(c, 0, 63))
	ie.Segment = per.DecOctetString(c)
	if dcs {
		v := uint8(c.ReadBits(8))
		ie.DataCodingScheme = &v
	}
}

// 6.3.1 SystemInformationBlockType11
/*
SystemInformationBlockType11 ::=    SEQUENCE {
    messageIdentifier                   BIT STRING (SIZE (16)),
    serialNumber                        BIT STRING (SIZE (16)),
    warningMessageSegmentType           ENUMERATED {notLastSegment, lastSegment},
    warningMessageSegmentNumber         INTEGER (0..63),
    warningMessageSegment               OCTET STRING,
    dataCodingScheme                    OCTET STRING (SIZE (1))     OPTIONAL,   -- Cond Segment1
    ...
}
*/
type SystemInformationBlockType11 struct {
	WarningMessageSegment
}

func (*SystemInformationBlockType11) SIBType() SIBType { return SIBType11 }

func (ie *SystemInformationBlockType11) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.DataCodingScheme != nil)
	ie.WarningMessageSegment.pack(c)
	return c.Err()
}

func (ie *SystemInformationBlockType11) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType11{}
	var dcs bool
	ext := per.DecSequence(c, true, &dcs)
	ie.WarningMessageSegment.unpack(c, dcs)
	return skipExtensions(c, ext, "SystemInformationBlockType11")
}

// 6.3.1 SystemInformationBlockType12
/*
SystemInformationBlockType12-r9 ::= SEQUENCE {
    messageIdentifier-r9                BIT STRING (SIZE (16)),
    serialNumber-r9                     BIT STRING (SIZE (16)),
    warningMessageSegmentType-r9        ENUMERATED {notLastSegment, lastSegment},
    warningMessageSegmentNumber-r9      INTEGER (0..63),
    warningMessageSegment-r9            OCTET STRING,
    dataCodingScheme-r9                 OCTET STRING (SIZE (1))     OPTIONAL,   -- Cond Segment1
    lateNonCriticalExtension            OCTET STRING                OPTIONAL,
    ...
}
*/
type SystemInformationBlockType12 struct {
	WarningMessageSegment
	LateNonCriticalExtension []byte
}

func (*SystemInformationBlockType12) SIBType() SIBType { return SIBType12 }

func (ie *SystemInformationBlockType12) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.DataCodingScheme != nil, ie.LateNonCriticalExtension != nil)
	ie.WarningMessageSegment.pack(c)
	if ie.LateNonCriticalExtension != nil {
		per.EncOctetString(c, ie.LateNonCriticalExtension)
	}
	return c.Err()
}

func (ie *SystemInformationBlockType12) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType12{}
	var dcs, late bool
	ext := per.DecSequence(c, true, &dcs, &late)
	ie.WarningMessageSegment.unpack(c, dcs)
	if late {
		ie.LateNonCriticalExtension = per.DecOctetString(c)
	}
	return skipExtensions(c, ext, "SystemInformationBlockType12")
}

// 6.3.1 SystemInformationBlockType13
/*
SystemInformationBlockType13-r9 ::= SEQUENCE {
    mbsfn-AreaInfoList-r9               MBSFN-AreaInfoList-r9,
    notificationConfig-r9               MBSFN-NotificationConfig-r9,
    lateNonCriticalExtension            OCTET STRING                OPTIONAL,
    ...
}

MBSFN-AreaInfoList-r9 ::=           SEQUENCE (SIZE(1..maxMBSFN-Area)) OF MBSFN-AreaInfo-r9
*/
type SystemInformationBlockType13 struct {
	MBSFNAreaInfoList        []MBSFNAreaInfo
	NotificationConfig       MBSFNNotificationConfig
	LateNonCriticalExtension []byte
}

// 6.3.7 MBSFN-AreaInfoList
/*
MBSFN-AreaInfo-r9 ::=               SEQUENCE {
    mbsfn-AreaId-r9                     INTEGER (0..255),
    non-MBSFNregionLength               ENUMERATED {s1, s2},
    notificationIndicator-r9            INTEGER (0..7),
    mcch-Config-r9                      SEQUENCE {
        mcch-RepetitionPeriod-r9            ENUMERATED {rf32, rf64, rf128, rf256},
        mcch-Offset-r9                      INTEGER (0..10),
        mcch-ModificationPeriod-r9          ENUMERATED {rf512, rf1024},
        sf-AllocInfo-r9                     BIT STRING (SIZE(6)),
        signallingMCS-r9                    ENUMERATED {n2, n7, n13, n19}
    },
    ...
}
*/
type MBSFNAreaInfo struct {
	MBSFNAreaID            uint8
	NonMBSFNRegionLength   uint8
	NotificationIndicator  uint8
	MCCHRepetitionPeriod   uint8
	MCCHOffset             uint8
	MCCHModificationPeriod uint8
	SFAllocInfo            uint8
	SignallingMCS          uint8
}

func (ie *MBSFNAreaInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	packInt(c, int(ie.MBSFNAreaID), 0, 255)
	packEnum(c, ie.NonMBSFNRegionLength, 2, false)
	packInt(c, int(ie.NotificationIndicator), 0, 7)
	packEnum(c, ie.MCCHRepetitionPeriod, 4, false)
	packInt(c, int(ie.MCCHOffset), 0, 10)
	packEnum(c, ie.MCCHModificationPeriod, 2, false)
	c.WriteBits(uint64(ie.SFAllocInfo), 6)
	packEnum(c, ie.SignallingMCS, 4, false)
	return c.Err()
}

func (ie *MBSFNAreaInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ext := per.DecSequence(c, true)
	ie.MBSFNAreaID = uint8(unpackInt(c, 0, 255))
	ie.NonMBSFNRegionLength = unpackEnum[uint8](c, 2, false)
	ie.NotificationIndicator = uint8(unpackInt(c, 0, 7))
	ie.MCCHRepetitionPeriod = unpackEnum[uint8](c, 4, false)
	ie.MCCHOffset = uint8(unpackInt(c, 0, 10))
	ie.MCCHModificationPeriod = unpackEnum[uint8](c, 2, false)
	ie.SFAllocInfo = uint8(c.ReadBits(6))
	ie.SignallingMCS = unpackEnum[uint8](c, 4, false)
	return skipExtensions(c, ext, "MBSFN-AreaInfo")
}

// 6.3.7 MBSFN-NotificationConfig
/*
MBSFN-NotificationConfig-r9 ::=     SEQUENCE {
    notificationRepetitionCoeff-r9      ENUMERATED {n2, n4},
    notificationOffset-r9               INTEGER (0..10),
    notificationSF-Index-r9             INTEGER (1..6)
}
*/
type MBSFNNotificationConfig struct {
	NotificationRepetitionCoeff uint8
	NotificationOffset          uint8
	NotificationSFIndex         uint8
}

func (ie *MBSFNNotificationConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.NotificationRepetitionCoeff, 2, false)
	packInt(c, int(ie.NotificationOffset), 0, 10)
	packInt(c, int(ie.NotificationSFIndex), 1, 6)
	return c.Err()
}

func (ie *MBSFNNotificationConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.NotificationRepetitionCoeff = unpackEnum[uint8](c, 2, false)
	ie.NotificationOffset = uint8(unpackInt(c, 0, 10))
	ie.NotificationSFIndex = uint8(unpackInt(c, 1, 6))
	return c.Err()
}

func (*SystemInformationBlockType13) SIBType() SIBType { return SIBType13 }

func (ie *SystemInformationBlockType13) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.LateNonCriticalExtension != nil)
	if err := packList(c, ie.MBSFNAreaInfoList, 1, maxMBSFNArea); err != nil {
		return err
	}
	if err := ie.NotificationConfig.Pack(c); err != nil {
		return err
	}
	if ie.LateNonCriticalExtension != nil {
		per.EncOctetString(c, ie.LateNonCriticalExtension)
	}
	return c.Err()
}

func (ie *SystemInformationBlockType13) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SystemInformationBlockType13{}
	var late bool
	ext := per.DecSequence(c, true, &late)
	var err error
	if ie.MBSFNAreaInfoList, err = unpackList[MBSFNAreaInfo](c, 1, maxMBSFNArea); err != nil {
		return err
	}
	if err := ie.NotificationConfig.Unpack(c); err != nil {
		return err
	}
	if late {
		ie.LateNonCriticalExtension = per.DecOctetString(c)
	}
	return skipExtensions(c, ext, "SystemInformationBlockType13")
}
