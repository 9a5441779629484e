// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// packExplicitDefault writes CHOICE { explicitValue T, defaultValue NULL }.
// explicit false selects defaultValue.
func packExplicitDefault(c *per.Cursor, explicit bool, v Packer) error {
	if !explicit {
		per.EncChoice(c, 1, 2, false)
		return c.Err()
	}
	per.EncChoice(c, 0, 2, false)
	return v.Pack(c)
}

// unpackExplicitDefault returns the explicit value, or nil and true for
// defaultValue.
func unpackExplicitDefault[T any, P packerPtr[T]](c *per.Cursor) (*T, bool, error) {
	idx, _ := per.DecChoice(c, 2, false)
	if err := c.Err(); err != nil {
		return nil, false, err
	}
	if idx == 1 {
		return nil, true, nil
	}
	v, err := unpackOptional[T, P](c, true)
	return v, false, err
}

// 6.3.2 RadioResourceConfigDedicated
/*
RadioResourceConfigDedicated ::=    SEQUENCE {
    srb-ToAddModList                    SRB-ToAddModList            OPTIONAL,   -- Cond HO-Conn
    drb-ToAddModList                    DRB-ToAddModList            OPTIONAL,   -- Cond HO-toEUTRA
    drb-ToReleaseList                   DRB-ToReleaseList           OPTIONAL,   -- Need ON
    mac-MainConfig                      CHOICE {
        explicitValue                       MAC-MainConfig,
        defaultValue                        NULL
    }       OPTIONAL,           -- Cond HO-toEUTRA2
    sps-Config                          SPS-Config                  OPTIONAL,   -- Need ON
    physicalConfigDedicated             PhysicalConfigDedicated     OPTIONAL,   -- Need ON
    ...
}

SRB-ToAddModList ::=                SEQUENCE (SIZE (1..2)) OF SRB-ToAddMod
DRB-ToAddModList ::=                SEQUENCE (SIZE (1..maxDRB)) OF DRB-ToAddMod
DRB-ToReleaseList ::=               SEQUENCE (SIZE (1..maxDRB)) OF DRB-Identity
*/
type RadioResourceConfigDedicated struct {
	SRBToAddModList         []SRBToAddMod
	DRBToAddModList         []DRBToAddMod
	DRBToReleaseList        []DRBIdentity
	MACMainConfig           *MACMainConfig
	MACMainConfigDefault    bool
	SPSConfig               *SPSConfig
	PhysicalConfigDedicated *PhysicalConfigDedicated
}

func (ie *RadioResourceConfigDedicated) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	mac := ie.MACMainConfig != nil || ie.MACMainConfigDefault
	per.EncSequence(c, true,
		len(ie.SRBToAddModList) != 0,
		len(ie.DRBToAddModList) != 0,
		len(ie.DRBToReleaseList) != 0,
		mac,
		ie.SPSConfig != nil,
		ie.PhysicalConfigDedicated != nil)

	if len(ie.SRBToAddModList) != 0 {
		if err := packList(c, ie.SRBToAddModList, 1, 2); err != nil {
			return err
		}
	}
	if len(ie.DRBToAddModList) != 0 {
		if err := packList(c, ie.DRBToAddModList, 1, maxDRB); err != nil {
			return err
		}
	}
	if len(ie.DRBToReleaseList) != 0 {
		if err := packList(c, ie.DRBToReleaseList, 1, maxDRB); err != nil {
			return err
		}
	}
	if mac {
		if err := packExplicitDefault(c, ie.MACMainConfig != nil,
			ie.MACMainConfig); err != nil {
			return err
		}
	}
	if err := packOptional(c, ie.SPSConfig != nil, ie.SPSConfig); err != nil {
		return err
	}
	return packOptional(c, ie.PhysicalConfigDedicated != nil,
		ie.PhysicalConfigDedicated)
}

func (ie *RadioResourceConfigDedicated) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RadioResourceConfigDedicated{}
	var srb, drb, drbRel, mac, sps, phy bool
	ext := per.DecSequence(c, true, &srb, &drb, &drbRel, &mac, &sps, &phy)

	var err error
	if srb {
		if ie.SRBToAddModList, err = unpackList[SRBToAddMod](c, 1, 2); err != nil {
			return err
		}
	}
	if drb {
		if ie.DRBToAddModList, err = unpackList[DRBToAddMod](c, 1, maxDRB); err != nil {
			return err
		}
	}
	if drbRel {
		if ie.DRBToReleaseList, err = unpackList[DRBIdentity](c, 1, maxDRB); err != nil {
			return err
		}
	}
	if mac {
		ie.MACMainConfig, ie.MACMainConfigDefault, err =
			unpackExplicitDefault[MACMainConfig](c)
		if err != nil {
			return err
		}
	}
	if ie.SPSConfig, err = unpackOptional[SPSConfig](c, sps); err != nil {
		return err
	}
	if ie.PhysicalConfigDedicated, err =
		unpackOptional[PhysicalConfigDedicated](c, phy); err != nil {
		return err
	}
	return skipExtensions(c, ext, "RadioResourceConfigDedicated")
}

// 6.3.2 SRB-ToAddMod
/*
SRB-ToAddMod ::=    SEQUENCE {
    srb-Identity            INTEGER (1..2),
    rlc-Config              CHOICE {
        explicitValue           RLC-Config,
        defaultValue            NULL
    }       OPTIONAL,       -- Cond Setup
    logicalChannelConfig    CHOICE {
        explicitValue           LogicalChannelConfig,
        defaultValue            NULL
    }       OPTIONAL,       -- Cond Setup
    ...
}
*/
type SRBToAddMod struct {
	SRBIdentity                 uint8
	RLCConfig                   *RLCConfig
	RLCConfigDefault            bool
	LogicalChannelConfig        *LogicalChannelConfig
	LogicalChannelConfigDefault bool
}

func (ie *SRBToAddMod) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	rlc := ie.RLCConfig != nil || ie.RLCConfigDefault
	lch := ie.LogicalChannelConfig != nil || ie.LogicalChannelConfigDefault
	per.EncSequence(c, true, rlc, lch)
	packInt(c, int(ie.SRBIdentity), 1, 2)
	if rlc {
		if err := packExplicitDefault(c, ie.RLCConfig != nil,
			ie.RLCConfig); err != nil {
			return err
		}
	}
	if lch {
		if err := packExplicitDefault(c, ie.LogicalChannelConfig != nil,
			ie.LogicalChannelConfig); err != nil {
			return err
		}
	}
	return c.Err()
}

func (ie *SRBToAddMod) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SRBToAddMod{}
	var rlc, lch bool
	ext := per.DecSequence(c, true, &rlc, &lch)
	ie.SRBIdentity = uint8(unpackInt(c, 1, 2))
	var err error
	if rlc {
		ie.RLCConfig, ie.RLCConfigDefault, err = unpackExplicitDefault[RLCConfig](c)
		if err != nil {
			return err
		}
	}
	if lch {
		ie.LogicalChannelConfig, ie.LogicalChannelConfigDefault, err =
			unpackExplicitDefault[LogicalChannelConfig](c)
		if err != nil {
			return err
		}
	}
	return skipExtensions(c, ext, "SRB-ToAddMod")
}

// 6.3.2 DRB-ToAddMod
/*
DRB-ToAddMod ::=    SEQUENCE {
    eps-BearerIdentity          INTEGER (0..15)         OPTIONAL,       -- Cond DRB-Setup
    drb-Identity                DRB-Identity,
    pdcp-Config                 PDCP-Config             OPTIONAL,       -- Cond PDCP
    rlc-Config                  RLC-Config              OPTIONAL,       -- Cond Setup
    logicalChannelIdentity      INTEGER (3..10)         OPTIONAL,       -- Cond DRB-Setup
    logicalChannelConfig        LogicalChannelConfig    OPTIONAL,       -- Cond Setup
    ...
}
*/
type DRBToAddMod struct {
	EPSBearerIdentity      *uint8
	DRBIdentity            DRBIdentity
	PDCPConfig             *PDCPConfig
	RLCConfig              *RLCConfig
	LogicalChannelIdentity *uint8
	LogicalChannelConfig   *LogicalChannelConfig
}

func (ie *DRBToAddMod) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		ie.EPSBearerIdentity != nil,
		ie.PDCPConfig != nil,
		ie.RLCConfig != nil,
		ie.LogicalChannelIdentity != nil,
		ie.LogicalChannelConfig != nil)
	if ie.EPSBearerIdentity != nil {
		packInt(c, int(*ie.EPSBearerIdentity), 0, 15)
	}
	if err := ie.DRBIdentity.Pack(c); err != nil {
		return err
	}
	if err := packOptional(c, ie.PDCPConfig != nil, ie.PDCPConfig); err != nil {
		return err
	}
	if err := packOptional(c, ie.RLCConfig != nil, ie.RLCConfig); err != nil {
		return err
	}
	if ie.LogicalChannelIdentity != nil {
		packInt(c, int(*ie.LogicalChannelIdentity), 3, 10)
	}
	return packOptional(c, ie.LogicalChannelConfig != nil, ie.LogicalChannelConfig)
}

func (ie *DRBToAddMod) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = DRBToAddMod{}
	var eps, pdcp, rlc, lcid, lch bool
	ext := per.DecSequence(c, true, &eps, &pdcp, &rlc, &lcid, &lch)
	if eps {
		v := uint8(unpackInt(c, 0, 15))
		ie.EPSBearerIdentity = &v
	}
	if err := ie.DRBIdentity.Unpack(c); err != nil {
		return err
	}
	var err error
	if ie.PDCPConfig, err = unpackOptional[PDCPConfig](c, pdcp); err != nil {
		return err
	}
	if ie.RLCConfig, err = unpackOptional[RLCConfig](c, rlc); err != nil {
		return err
	}
	if lcid {
		v := uint8(unpackInt(c, 3, 10))
		ie.LogicalChannelIdentity = &v
	}
	if ie.LogicalChannelConfig, err =
		unpackOptional[LogicalChannelConfig](c, lch); err != nil {
		return err
	}
	return skipExtensions(c, ext, "DRB-ToAddMod")
}

// RLCMode selects the RLC-Config alternative.
type RLCMode uint8

const (
	RLCModeAM RLCMode = iota
	RLCModeUMBiDirectional
	RLCModeUMUniDirectionalUL
	RLCModeUMUniDirectionalDL
)

// 6.3.2 RLC-Config
/*
RLC-Config ::=                      CHOICE {
    am                                  SEQUENCE {
        ul-AM-RLC                           UL-AM-RLC,
        dl-AM-RLC                           DL-AM-RLC
    },
    um-Bi-Directional                   SEQUENCE {
        ul-UM-RLC                           UL-UM-RLC,
        dl-UM-RLC                           DL-UM-RLC
    },
    um-Uni-Directional-UL               SEQUENCE {
        ul-UM-RLC                           UL-UM-RLC
    },
    um-Uni-Directional-DL               SEQUENCE {
        dl-UM-RLC                           DL-UM-RLC
    },
    ...
}

UL-AM-RLC ::=                       SEQUENCE {
    t-PollRetransmit                    T-PollRetransmit,
    pollPDU                             PollPDU,
    pollByte                            PollByte,
    maxRetxThreshold                    ENUMERATED {
                                            t1, t2, t3, t4, t6, t8, t16, t32}
}

DL-AM-RLC ::=                       SEQUENCE {
    t-Reordering                        T-Reordering,
    t-StatusProhibit                    T-StatusProhibit
}

UL-UM-RLC ::=                       SEQUENCE {
    sn-FieldLength                      SN-FieldLength
}

DL-UM-RLC ::=                       SEQUENCE {
    sn-FieldLength                      SN-FieldLength,
    t-Reordering                        T-Reordering
}
*/
type RLCConfig struct {
	Mode    RLCMode
	ULAMRLC ULAMRLC
	DLAMRLC DLAMRLC
	ULUMRLC ULUMRLC
	DLUMRLC DLUMRLC
}

type ULAMRLC struct {
	TPollRetransmit  uint8
	PollPDU          uint8
	PollByte         uint8
	MaxRetxThreshold uint8
}

type DLAMRLC struct {
	TReordering     uint8
	TStatusProhibit uint8
}

// SN-FieldLength is ENUMERATED {size5, size10}.
type ULUMRLC struct {
	SNFieldLength uint8
}

type DLUMRLC struct {
	SNFieldLength uint8
	TReordering   uint8
}

func (ie *ULAMRLC) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.TPollRetransmit, 64, false)
	packEnum(c, ie.PollPDU, 8, false)
	packEnum(c, ie.PollByte, 16, false)
	packEnum(c, ie.MaxRetxThreshold, 8, false)
	return c.Err()
}

func (ie *ULAMRLC) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.TPollRetransmit = unpackEnum[uint8](c, 64, false)
	ie.PollPDU = unpackEnum[uint8](c, 8, false)
	ie.PollByte = unpackEnum[uint8](c, 16, false)
	ie.MaxRetxThreshold = unpackEnum[uint8](c, 8, false)
	return c.Err()
}

func (ie *DLAMRLC) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.TReordering, 32, false)
	packEnum(c, ie.TStatusProhibit, 64, false)
	return c.Err()
}

func (ie *DLAMRLC) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.TReordering = unpackEnum[uint8](c, 32, false)
	ie.TStatusProhibit = unpackEnum[uint8](c, 64, false)
	return c.Err()
}

func (ie *ULUMRLC) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.SNFieldLength, 2, false)
	return c.Err()
}

func (ie *ULUMRLC) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.SNFieldLength = unpackEnum[uint8](c, 2, false)
	return c.Err()
}

func (ie *DLUMRLC) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.SNFieldLength, 2, false)
	packEnum(c, ie.TReordering, 32, false)
	return c.Err()
}

func (ie *DLUMRLC) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.SNFieldLength = unpackEnum[uint8](c, 2, false)
	ie.TReordering = unpackEnum[uint8](c, 32, false)
	return c.Err()
}

func (ie *RLCConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var parts []Packer
	switch ie.Mode {
	case RLCModeAM:
		parts = []Packer{&ie.ULAMRLC, &ie.DLAMRLC}
	case RLCModeUMBiDirectional:
		parts = []Packer{&ie.ULUMRLC, &ie.DLUMRLC}
	case RLCModeUMUniDirectionalUL:
		parts = []Packer{&ie.ULUMRLC}
	case RLCModeUMUniDirectionalDL:
		parts = []Packer{&ie.DLUMRLC}
	default:
		return unsupported(c, "RLC-Config", int(ie.Mode))
	}
	per.EncChoice(c, int(ie.Mode), 4, true)
	for _, p := range parts {
		if err := p.Pack(c); err != nil {
			return err
		}
	}
	return c.Err()
}

func (ie *RLCConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RLCConfig{}
	idx, ext := per.DecChoice(c, 4, true)
	if err := c.Err(); err != nil {
		return err
	}
	if ext {
		return unsupported(c, "RLC-Config", 4+idx)
	}
	ie.Mode = RLCMode(idx)
	var parts []Packer
	switch ie.Mode {
	case RLCModeAM:
		parts = []Packer{&ie.ULAMRLC, &ie.DLAMRLC}
	case RLCModeUMBiDirectional:
		parts = []Packer{&ie.ULUMRLC, &ie.DLUMRLC}
	case RLCModeUMUniDirectionalUL:
		parts = []Packer{&ie.ULUMRLC}
	default:
		parts = []Packer{&ie.DLUMRLC}
	}
	for _, p := range parts {
		if err := p.Unpack(c); err != nil {
			return err
		}
	}
	return c.Err()
}

// 6.3.2 PDCP-Config
/*
PDCP-Config ::=                     SEQUENCE {
    discardTimer                        ENUMERATED {
                                            ms50, ms100, ms150, ms300, ms500,
                                            ms750, ms1500, infinity
                                        }                                   OPTIONAL,   -- Cond Setup
    rlc-AM                              SEQUENCE {
        statusReportRequired                BOOLEAN
    }                                                                       OPTIONAL,   -- Cond Rlc-AM
    rlc-UM                              SEQUENCE {
        pdcp-SN-Size                        ENUMERATED {len7bits, len12bits}
    }                                                                       OPTIONAL,   -- Cond Rlc-UM
    headerCompression                   CHOICE {
        notUsed                             NULL,
        rohc                                SEQUENCE {
            maxCID                              INTEGER (1..16383)              DEFAULT 15,
            profiles                            SEQUENCE {
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
            ...
        }
    },
    ...
}
*/
type PDCPConfig struct {
	DiscardTimer         *uint8
	StatusReportRequired *bool
	PDCPSNSize           *uint8
	ROHC                 *ROHC
}

// ROHC is the rohc alternative of headerCompression. Profiles holds
// profile0x0001 first. A zero MaxCID is sent as the DEFAULT.
type ROHC struct {
	MaxCID   uint16
	Profiles [9]bool
}

const defaultMaxCID = 15

func (ie *ROHC) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	maxCID := ie.MaxCID
	if maxCID == 0 {
		maxCID = defaultMaxCID
	}
	per.EncSequence(c, true, maxCID != defaultMaxCID)
	if maxCID != defaultMaxCID {
		packInt(c, int(maxCID), 1, 16383)
	}
	for _, p := range ie.Profiles {
		c.WriteBool(p)
	}
	return c.Err()
}

func (ie *ROHC) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ROHC{MaxCID: defaultMaxCID}
	var maxCIDPresent bool
	ext := per.DecSequence(c, true, &maxCIDPresent)
	if maxCIDPresent {
		ie.MaxCID = uint16(unpackInt(c, 1, 16383))
	}
	for i := range ie.Profiles {
		ie.Profiles[i] = c.ReadBool()
	}
	return skipExtensions(c, ext, "rohc")
}

func (ie *PDCPConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		ie.DiscardTimer != nil,
		ie.StatusReportRequired != nil,
		ie.PDCPSNSize != nil)
	if ie.DiscardTimer != nil {
		packEnum(c, *ie.DiscardTimer, 8, false)
	}
	if ie.StatusReportRequired != nil {
		c.WriteBool(*ie.StatusReportRequired)
	}
	if ie.PDCPSNSize != nil {
		packEnum(c, *ie.PDCPSNSize, 2, false)
	}
	if ie.ROHC == nil {
		per.EncChoice(c, 0, 2, false)
		return c.Err()
	}
	per.EncChoice(c, 1, 2, false)
	return ie.ROHC.Pack(c)
}

func (ie *PDCPConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PDCPConfig{}
	var discard, am, um bool
	ext := per.DecSequence(c, true, &discard, &am, &um)
	if discard {
		v := unpackEnum[uint8](c, 8, false)
		ie.DiscardTimer = &v
	}
	if am {
		v := c.ReadBool()
		ie.StatusReportRequired = &v
	}
	if um {
		v := unpackEnum[uint8](c, 2, false)
		ie.PDCPSNSize = &v
	}
	idx, _ := per.DecChoice(c, 2, false)
	var err error
	if ie.ROHC, err = unpackOptional[ROHC](c, idx == 1); err != nil {
		return err
	}
	return skipExtensions(c, ext, "PDCP-Config")
}

// 6.3.2 LogicalChannelConfig
/*
LogicalChannelConfig ::=            SEQUENCE {
    ul-SpecificParameters               SEQUENCE {
        priority                            INTEGER (1..16),
        prioritisedBitRate                  ENUMERATED {
                                                kBps0, kBps8, kBps16, kBps32, kBps64, kBps128,
                                                kBps256, infinity, spare8, spare7, spare6,
                                                spare5, spare4, spare3, spare2, spare1},
        bucketSizeDuration                  ENUMERATED {
                                                ms50, ms100, ms150, ms300, ms500, ms1000, spare2,
                                                spare1},
        logicalChannelGroup                 INTEGER (0..3)          OPTIONAL        -- Need OR
    }       OPTIONAL,                                                               -- Cond UL
    ...
}
*/
type LogicalChannelConfig struct {
	ULSpecificParameters *ULSpecificParameters
}

type ULSpecificParameters struct {
	Priority            uint8
	PrioritisedBitRate  uint8
	BucketSizeDuration  uint8
	LogicalChannelGroup *uint8
}

func (ie *ULSpecificParameters) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.LogicalChannelGroup != nil)
	packInt(c, int(ie.Priority), 1, 16)
	packEnum(c, ie.PrioritisedBitRate, 16, false)
	packEnum(c, ie.BucketSizeDuration, 8, false)
	if ie.LogicalChannelGroup != nil {
		packInt(c, int(*ie.LogicalChannelGroup), 0, 3)
	}
	return c.Err()
}

func (ie *ULSpecificParameters) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ULSpecificParameters{}
	var lcg bool
	per.DecSequence(c, false, &lcg)
	ie.Priority = uint8(unpackInt(c, 1, 16))
	ie.PrioritisedBitRate = unpackEnum[uint8](c, 16, false)
	ie.BucketSizeDuration = unpackEnum[uint8](c, 8, false)
	if lcg {
		v := uint8(unpackInt(c, 0, 3))
		ie.LogicalChannelGroup = &v
	}
	return c.Err()
}

func (ie *LogicalChannelConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.ULSpecificParameters != nil)
	return packOptional(c, ie.ULSpecificParameters != nil, ie.ULSpecificParameters)
}

func (ie *LogicalChannelConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = LogicalChannelConfig{}
	var ul bool
	ext := per.DecSequence(c, true, &ul)
	var err error
	if ie.ULSpecificParameters, err =
		unpackOptional[ULSpecificParameters](c, ul); err != nil {
		return err
	}
	return skipExtensions(c, ext, "LogicalChannelConfig")
}

// 6.3.2 MAC-MainConfig
/*
MAC-MainConfig ::=                  SEQUENCE {
    ul-SCH-Config                       SEQUENCE {
        maxHARQ-Tx                          ENUMERATED {
                                                n1, n2, n3, n4, n5, n6, n7, n8,
                                                n10, n12, n16, n20, n24, n28,
                                                spare2, spare1}     OPTIONAL,   -- Need ON
        periodicBSR-Timer                   ENUMERATED {
                                                sf5, sf10, sf16, sf20, sf32, sf40, sf64, sf80,
                                                sf128, sf160, sf320, sf640, sf1280, sf2560,
                                                infinity, spare1}   OPTIONAL,   -- Need ON
        retxBSR-Timer                       ENUMERATED {
                                                sf320, sf640, sf1280, sf2560, sf5120,
                                                sf10240, spare2, spare1},
        ttiBundling                         BOOLEAN
    }                                                               OPTIONAL,   -- Need ON
    drx-Config                          DRX-Config                  OPTIONAL,   -- Need ON
    timeAlignmentTimerDedicated         TimeAlignmentTimer,
    phr-Config                          CHOICE {
        release                             NULL,
        setup                               SEQUENCE {
            periodicPHR-Timer                   ENUMERATED {sf10, sf20, sf50, sf100, sf200,
                                                            sf500, sf1000, infinity},
            prohibitPHR-Timer                   ENUMERATED {sf0, sf10, sf20, sf50, sf100,
                                                            sf200, sf500, sf1000},
            dl-PathlossChange                   ENUMERATED {dB1, dB3, dB6, infinity}
        }
    }                                                               OPTIONAL,   -- Need ON
    ...
}
*/
type MACMainConfig struct {
	ULSCHConfig                 *ULSCHConfig
	DRXConfig                   *DRXConfig
	TimeAlignmentTimerDedicated TimeAlignmentTimer
	PHRConfig                   *PHRConfig
}

type ULSCHConfig struct {
	MaxHARQTx        *uint8
	PeriodicBSRTimer *uint8
	RetxBSRTimer     uint8
	TTIBundling      bool
}

func (ie *ULSCHConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false, ie.MaxHARQTx != nil, ie.PeriodicBSRTimer != nil)
	if ie.MaxHARQTx != nil {
		packEnum(c, *ie.MaxHARQTx, 16, false)
	}
	if ie.PeriodicBSRTimer != nil {
		packEnum(c, *ie.PeriodicBSRTimer, 16, false)
	}
	packEnum(c, ie.RetxBSRTimer, 8, false)
	c.WriteBool(ie.TTIBundling)
	return c.Err()
}

func (ie *ULSCHConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = ULSCHConfig{}
	var harq, bsr bool
	per.DecSequence(c, false, &harq, &bsr)
	if harq {
		v := unpackEnum[uint8](c, 16, false)
		ie.MaxHARQTx = &v
	}
	if bsr {
		v := unpackEnum[uint8](c, 16, false)
		ie.PeriodicBSRTimer = &v
	}
	ie.RetxBSRTimer = unpackEnum[uint8](c, 8, false)
	ie.TTIBundling = c.ReadBool()
	return c.Err()
}

// PHRConfig is the phr-Config CHOICE. A nil Setup is release.
type PHRConfig struct {
	Setup *PHRConfigSetup
}

type PHRConfigSetup struct {
	PeriodicPHRTimer uint8
	ProhibitPHRTimer uint8
	DLPathlossChange uint8
}

func (ie *PHRConfigSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packEnum(c, ie.PeriodicPHRTimer, 8, false)
	packEnum(c, ie.ProhibitPHRTimer, 8, false)
	packEnum(c, ie.DLPathlossChange, 4, false)
	return c.Err()
}

func (ie *PHRConfigSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	ie.PeriodicPHRTimer = unpackEnum[uint8](c, 8, false)
	ie.ProhibitPHRTimer = unpackEnum[uint8](c, 8, false)
	ie.DLPathlossChange = unpackEnum[uint8](c, 4, false)
	return c.Err()
}

func (ie *PHRConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *PHRConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[PHRConfigSetup](c)
	return err
}

func (ie *MACMainConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true,
		ie.ULSCHConfig != nil,
		ie.DRXConfig != nil,
		ie.PHRConfig != nil)
	if err := packOptional(c, ie.ULSCHConfig != nil, ie.ULSCHConfig); err != nil {
		return err
	}
	if err := packOptional(c, ie.DRXConfig != nil, ie.DRXConfig); err != nil {
		return err
	}
	if err := ie.TimeAlignmentTimerDedicated.Pack(c); err != nil {
		return err
	}
	return packOptional(c, ie.PHRConfig != nil, ie.PHRConfig)
}

func (ie *MACMainConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = MACMainConfig{}
	var ulsch, drx, phr bool
	ext := per.DecSequence(c, true, &ulsch, &drx, &phr)
	var err error
	if ie.ULSCHConfig, err = unpackOptional[ULSCHConfig](c, ulsch); err != nil {
		return err
	}
	if ie.DRXConfig, err = unpackOptional[DRXConfig](c, drx); err != nil {
		return err
	}
	if err = ie.TimeAlignmentTimerDedicated.Unpack(c); err != nil {
		return err
	}
	if ie.PHRConfig, err = unpackOptional[PHRConfig](c, phr); err != nil {
		return err
	}
	return skipExtensions(c, ext, "MAC-MainConfig")
}

// longDRXCycles lists the period in subframes of each
// longDRX-CycleStartOffset alternative. The offset ranges over
// 0..period-1.
var longDRXCycles = [...]int{
	10, 20, 32, 40, 64, 80, 128, 160, 256, 320, 512, 640, 1024, 1280, 2048, 2560,
}

// 6.3.2 DRX-Config
/*
DRX-Config ::=                      CHOICE {
    release                             NULL,
    setup                               SEQUENCE {
        onDurationTimer                     ENUMERATED {
                                                psf1, psf2, psf3, psf4, psf5, psf6,
                                                psf8, psf10, psf20, psf30, psf40,
                                                psf50, psf60, psf80, psf100,
                                                psf200},
        drx-InactivityTimer                 ENUMERATED {
                                                psf1, psf2, psf3, psf4, psf5, psf6,
                                                psf8, psf10, psf20, psf30, psf40,
                                                psf50, psf60, psf80, psf100,
                                                psf200, psf300, psf500, psf750,
                                                psf1280, psf1920, psf2560, spare10,
                                                spare9, spare8, spare7, spare6,
                                                spare5, spare4, spare3, spare2,
                                                spare1},
        drx-RetransmissionTimer             ENUMERATED {
                                                psf1, psf2, psf4, psf6, psf8, psf16,
                                                psf24, psf33},
        longDRX-CycleStartOffset        CHOICE {
            sf10                            INTEGER(0..9),
            sf20                            INTEGER(0..19),
            ...
            sf2560                          INTEGER(0..2559)
        },
        shortDRX                            SEQUENCE {
            shortDRX-Cycle                      ENUMERATED  {
                                                    sf2, sf5, sf8, sf10, sf16, sf20,
                                                    sf32, sf40, sf64, sf80, sf128, sf160,
                                                    sf256, sf320, sf512, sf640},
            drxShortCycleTimer                  INTEGER (1..16)
        }   OPTIONAL                                                -- Need OR
    }
}
*/
// A nil Setup is release.
type DRXConfig struct {
	Setup *DRXConfigSetup
}

type DRXConfigSetup struct {
	OnDurationTimer        uint8
	DRXInactivityTimer     uint8
	DRXRetransmissionTimer uint8
	// LongDRXCycle indexes sf10..sf2560.
	LongDRXCycle       uint8
	LongDRXStartOffset uint16
	ShortDRX           *ShortDRX
}

type ShortDRX struct {
	ShortDRXCycle      uint8
	DRXShortCycleTimer uint8
}

func (ie *DRXConfigSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if int(ie.LongDRXCycle) >= len(longDRXCycles) {
		return unsupported(c, "longDRX-CycleStartOffset", int(ie.LongDRXCycle))
	}
	per.EncSequence(c, false, ie.ShortDRX != nil)
	packEnum(c, ie.OnDurationTimer, 16, false)
	packEnum(c, ie.DRXInactivityTimer, 32, false)
	packEnum(c, ie.DRXRetransmissionTimer, 8, false)
	per.EncChoice(c, int(ie.LongDRXCycle), len(longDRXCycles), false)
	packInt(c, int(ie.LongDRXStartOffset), 0, longDRXCycles[ie.LongDRXCycle]-1)
	if ie.ShortDRX != nil {
		packEnum(c, ie.ShortDRX.ShortDRXCycle, 16, false)
		packInt(c, int(ie.ShortDRX.DRXShortCycleTimer), 1, 16)
	}
	return c.Err()
}

func (ie *DRXConfigSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = DRXConfigSetup{}
	var short bool
	per.DecSequence(c, false, &short)
	ie.OnDurationTimer = unpackEnum[uint8](c, 16, false)
	ie.DRXInactivityTimer = unpackEnum[uint8](c, 32, false)
	ie.DRXRetransmissionTimer = unpackEnum[uint8](c, 8, false)
	idx, _ := per.DecChoice(c, len(longDRXCycles), false)
	if err := c.Err(); err != nil {
		return err
	}
	ie.LongDRXCycle = uint8(idx)
	ie.LongDRXStartOffset = uint16(unpackInt(c, 0, longDRXCycles[idx]-1))
	if short {
		ie.ShortDRX = &ShortDRX{
			ShortDRXCycle:      unpackEnum[uint8](c, 16, false),
			DRXShortCycleTimer: uint8(unpackInt(c, 1, 16)),
		}
	}
	return c.Err()
}

func (ie *DRXConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *DRXConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[DRXConfigSetup](c)
	return err
}

// 6.3.2 SPS-Config
/*
SPS-Config ::=                      SEQUENCE {
    semiPersistSchedC-RNTI              C-RNTI                      OPTIONAL,   -- Need OR
    sps-ConfigDL                        SPS-ConfigDL                OPTIONAL,   -- Need ON
    sps-ConfigUL                        SPS-ConfigUL                OPTIONAL    -- Need ON
}

SPS-ConfigDL ::=                    CHOICE{
    release                             NULL,
    setup                               SEQUENCE {
        semiPersistSchedIntervalDL          ENUMERATED {
                                                sf10, sf20, sf32, sf40, sf64, sf80,
                                                sf128, sf160, sf320, sf640, spare6,
                                                spare5, spare4, spare3, spare2,
                                                spare1},
        numberOfConfSPS-Processes           INTEGER (1..8),
        n1-PUCCH-AN-PersistentList          N1-PUCCH-AN-PersistentList,
        ...
    }
}

SPS-ConfigUL ::=                    CHOICE {
    release                             NULL,
    setup                               SEQUENCE {
        semiPersistSchedIntervalUL          ENUMERATED {
                                                sf10, sf20, sf32, sf40, sf64, sf80,
                                                sf128, sf160, sf320, sf640, spare6,
                                                spare5, spare4, spare3, spare2,
                                                spare1},
        implicitReleaseAfter                ENUMERATED {e2, e3, e4, e8},
        p0-Persistent                       SEQUENCE {
            p0-NominalPUSCH-Persistent          INTEGER (-126..24),
            p0-UE-PUSCH-Persistent              INTEGER (-8..7)
        }                                                           OPTIONAL,   -- Need OP
        twoIntervalsConfig                  ENUMERATED {true}       OPTIONAL,   -- Cond TDD
        ...
    }
}

N1-PUCCH-AN-PersistentList ::=      SEQUENCE (SIZE (1..4)) OF INTEGER (0..2047)
*/
type SPSConfig struct {
	SemiPersistSchedCRNTI *CRNTI
	SPSConfigDL           *SPSConfigDL
	SPSConfigUL           *SPSConfigUL
}

// A nil Setup is release.
type SPSConfigDL struct {
	Setup *SPSConfigDLSetup
}

type SPSConfigDLSetup struct {
	SemiPersistSchedIntervalDL uint8
	NumberOfConfSPSProcesses   uint8
	N1PUCCHANPersistentList    []uint16
}

type SPSConfigUL struct {
	Setup *SPSConfigULSetup
}

type SPSConfigULSetup struct {
	SemiPersistSchedIntervalUL uint8
	ImplicitReleaseAfter       uint8
	P0Persistent               *P0Persistent
	TwoIntervalsConfig         bool
}

type P0Persistent struct {
	P0NominalPUSCHPersistent int
	P0UEPUSCHPersistent      int
}

func (ie *SPSConfigDLSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	packEnum(c, ie.SemiPersistSchedIntervalDL, 16, false)
	packInt(c, int(ie.NumberOfConfSPSProcesses), 1, 8)
	per.EncSequenceOf(c, len(ie.N1PUCCHANPersistentList), 1, 4)
	for _, v := range ie.N1PUCCHANPersistentList {
		packInt(c, int(v), 0, 2047)
	}
	return c.Err()
}

func (ie *SPSConfigDLSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SPSConfigDLSetup{}
	ext := per.DecSequence(c, true)
	ie.SemiPersistSchedIntervalDL = unpackEnum[uint8](c, 16, false)
	ie.NumberOfConfSPSProcesses = uint8(unpackInt(c, 1, 8))
	n := per.DecSequenceOf(c, 1, 4)
	if err := c.Err(); err != nil {
		return err
	}
	ie.N1PUCCHANPersistentList = make([]uint16, n)
	for i := range ie.N1PUCCHANPersistentList {
		ie.N1PUCCHANPersistentList[i] = uint16(unpackInt(c, 0, 2047))
	}
	return skipExtensions(c, ext, "SPS-ConfigDL")
}

func (ie *SPSConfigULSetup) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true, ie.P0Persistent != nil, ie.TwoIntervalsConfig)
	packEnum(c, ie.SemiPersistSchedIntervalUL, 16, false)
	packEnum(c, ie.ImplicitReleaseAfter, 4, false)
	if ie.P0Persistent != nil {
		packInt(c, ie.P0Persistent.P0NominalPUSCHPersistent, -126, 24)
		packInt(c, ie.P0Persistent.P0UEPUSCHPersistent, -8, 7)
	}
	return c.Err()
}

func (ie *SPSConfigULSetup) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SPSConfigULSetup{}
	var p0 bool
	ext := per.DecSequence(c, true, &p0, &ie.TwoIntervalsConfig)
	ie.SemiPersistSchedIntervalUL = unpackEnum[uint8](c, 16, false)
	ie.ImplicitReleaseAfter = unpackEnum[uint8](c, 4, false)
	if p0 {
		ie.P0Persistent = &P0Persistent{
			P0NominalPUSCHPersistent: unpackInt(c, -126, 24),
			P0UEPUSCHPersistent:      unpackInt(c, -8, 7),
		}
	}
	return skipExtensions(c, ext, "SPS-ConfigUL")
}

func (ie *SPSConfigDL) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *SPSConfigDL) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[SPSConfigDLSetup](c)
	return err
}

func (ie *SPSConfigUL) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	return packSetupRelease(c, ie.Setup != nil, ie.Setup)
}

func (ie *SPSConfigUL) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	var err error
	ie.Setup, err = unpackSetupRelease[SPSConfigULSetup](c)
	return err
}

func (ie *SPSConfig) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, false,
		ie.SemiPersistSchedCRNTI != nil,
		ie.SPSConfigDL != nil,
		ie.SPSConfigUL != nil)
	if err := packOptional(c, ie.SemiPersistSchedCRNTI != nil,
		ie.SemiPersistSchedCRNTI); err != nil {
		return err
	}
	if err := packOptional(c, ie.SPSConfigDL != nil, ie.SPSConfigDL); err != nil {
		return err
	}
	return packOptional(c, ie.SPSConfigUL != nil, ie.SPSConfigUL)
}

func (ie *SPSConfig) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = SPSConfig{}
	var rnti, dl, ul bool
	per.DecSequence(c, false, &rnti, &dl, &ul)
	var err error
	if ie.SemiPersistSchedCRNTI, err = unpackOptional[CRNTI](c, rnti); err != nil {
		return err
	}
	if ie.SPSConfigDL, err = unpackOptional[SPSConfigDL](c, dl); err != nil {
		return err
	}
	ie.SPSConfigUL, err = unpackOptional[SPSConfigUL](c, ul)
	return err
}
