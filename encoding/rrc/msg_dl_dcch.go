// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.2.2 RRCConnectionReconfiguration
/*
RRCConnectionReconfiguration ::=    SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE{
            rrcConnectionReconfiguration-r8     RRCConnectionReconfiguration-r8-IEs,
            spare7 NULL,
            spare6 NULL, spare5 NULL, spare4 NULL,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionReconfiguration-r8-IEs ::= SEQUENCE {
    measConfig                          MeasConfig                          OPTIONAL,   -- Need ON
    mobilityControlInfo                 MobilityControlInfo                 OPTIONAL,   -- Cond HO
    dedicatedInfoNASList                SEQUENCE (SIZE(1..maxDRB)) OF
                                            DedicatedInfoNAS                OPTIONAL,   -- Cond nonHO
    radioResourceConfigDedicated        RadioResourceConfigDedicated        OPTIONAL,   -- Cond HO-toEUTRA
    securityConfigHO                    SecurityConfigHO                    OPTIONAL,   -- Cond HO
    nonCriticalExtension                RRCConnectionReconfiguration-v890-IEs   OPTIONAL    -- Need OP
}
*/
type RRCConnectionReconfiguration struct {
	RRCTransactionIdentifier     RRCTransactionIdentifier
	MeasConfig                   *MeasConfig
	MobilityControlInfo          *MobilityControlInfo
	DedicatedInfoNASList         [][]byte
	RadioResourceConfigDedicated *RadioResourceConfigDedicated
	SecurityConfigHO             *SecurityConfigHO
	NonCriticalExtension         bool
}

func (*RRCConnectionReconfiguration) Name() string { return "RRCConnectionReconfiguration" }

func (msg *RRCConnectionReconfiguration) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 3)
	nas := len(msg.DedicatedInfoNASList) != 0
	per.EncSequence(c, false, msg.MeasConfig != nil, msg.MobilityControlInfo != nil, nas,
		msg.RadioResourceConfigDedicated != nil, msg.SecurityConfigHO != nil, false)
	if err := packOptional(c, msg.MeasConfig != nil, msg.MeasConfig); err != nil {
		return err
	}
	if err := packOptional(c, msg.MobilityControlInfo != nil, msg.MobilityControlInfo); err != nil {
		return err
	}
	if nas {
		per.EncSequenceOf(c, len(msg.DedicatedInfoNASList), 1, maxDRB)
		for _, pdu := range msg.DedicatedInfoNASList {
			per.EncOctetString(c, pdu)
		}
		if err := c.Err(); err != nil {
			return err
		}
	}
	if err := packOptional(c, msg.RadioResourceConfigDedicated != nil,
		msg.RadioResourceConfigDedicated); err != nil {
		return err
	}
	return packOptional(c, msg.SecurityConfigHO != nil, msg.SecurityConfigHO)
}

func (msg *RRCConnectionReconfiguration) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionReconfiguration{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 3, "RRCConnectionReconfiguration"); err != nil {
		return err
	}
	var meas, mob, nas, rrcd, sec, nce bool
	per.DecSequence(c, false, &meas, &mob, &nas, &rrcd, &sec, &nce)
	var err error
	if msg.MeasConfig, err = unpackOptional[MeasConfig](c, meas); err != nil {
		return err
	}
	if msg.MobilityControlInfo, err = unpackOptional[MobilityControlInfo](c, mob); err != nil {
		return err
	}
	if nas {
		n := per.DecSequenceOf(c, 1, maxDRB)
		if err := c.Err(); err != nil {
			return err
		}
		msg.DedicatedInfoNASList = make([][]byte, n)
		for i := range msg.DedicatedInfoNASList {
			msg.DedicatedInfoNASList[i] = per.DecOctetString(c)
		}
		if err := c.Err(); err != nil {
			return err
		}
	}
	if msg.RadioResourceConfigDedicated, err =
		unpackOptional[RadioResourceConfigDedicated](c, rrcd); err != nil {
		return err
	}
	if msg.SecurityConfigHO, err = unpackOptional[SecurityConfigHO](c, sec); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"RRCConnectionReconfiguration")
	return c.Err()
}

// ReleaseCause ::= ENUMERATED {loadBalancingTAUrequired, other,
//     cs-FallbackHighPriority-v1020, spare1}
type ReleaseCause uint8

const (
	ReleaseCauseLoadBalancingTAURequired ReleaseCause = iota
	ReleaseCauseOther
	ReleaseCauseCSFallbackHighPriority
)

// 6.2.2 RRCConnectionRelease
/*
RRCConnectionRelease ::=            SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            rrcConnectionRelease-r8             RRCConnectionRelease-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionRelease-r8-IEs ::=     SEQUENCE {
    releaseCause                        ReleaseCause,
    redirectedCarrierInfo               RedirectedCarrierInfo               OPTIONAL,   -- Need ON
    idleModeMobilityControlInfo         IdleModeMobilityControlInfo         OPTIONAL,   -- Need OP
    nonCriticalExtension                RRCConnectionRelease-v890-IEs       OPTIONAL    -- Need OP
}
*/
type RRCConnectionRelease struct {
	RRCTransactionIdentifier    RRCTransactionIdentifier
	ReleaseCause                ReleaseCause
	RedirectedCarrierInfo       *RedirectedCarrierInfo
	IdleModeMobilityControlInfo *IdleModeMobilityControlInfo
	NonCriticalExtension        bool
}

func (*RRCConnectionRelease) Name() string { return "RRCConnectionRelease" }

func (msg *RRCConnectionRelease) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, msg.RedirectedCarrierInfo != nil,
		msg.IdleModeMobilityControlInfo != nil, false)
	packEnum(c, msg.ReleaseCause, 4, false)
	if err := packOptional(c, msg.RedirectedCarrierInfo != nil,
		msg.RedirectedCarrierInfo); err != nil {
		return err
	}
	return packOptional(c, msg.IdleModeMobilityControlInfo != nil,
		msg.IdleModeMobilityControlInfo)
}

func (msg *RRCConnectionRelease) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionRelease{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "RRCConnectionRelease"); err != nil {
		return err
	}
	var redirect, idle, nce bool
	per.DecSequence(c, false, &redirect, &idle, &nce)
	msg.ReleaseCause = unpackEnum[ReleaseCause](c, 4, false)
	var err error
	if msg.RedirectedCarrierInfo, err =
		unpackOptional[RedirectedCarrierInfo](c, redirect); err != nil {
		return err
	}
	if msg.IdleModeMobilityControlInfo, err =
		unpackOptional[IdleModeMobilityControlInfo](c, idle); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "RRCConnectionRelease")
	return c.Err()
}

// 6.2.2 SecurityModeCommand
/*
SecurityModeCommand ::=             SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE{
            securityModeCommand-r8              SecurityModeCommand-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

SecurityModeCommand-r8-IEs ::=      SEQUENCE {
    securityConfigSMC                   SecurityConfigSMC,
    nonCriticalExtension                SecurityModeCommand-v8a0-IEs    OPTIONAL
}
*/
type SecurityModeCommand struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	SecurityConfigSMC        SecurityConfigSMC
	NonCriticalExtension     bool
}

func (*SecurityModeCommand) Name() string { return "SecurityModeCommand" }

func (msg *SecurityModeCommand) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	return msg.SecurityConfigSMC.Pack(c)
}

func (msg *SecurityModeCommand) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = SecurityModeCommand{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "SecurityModeCommand"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	if err := msg.SecurityConfigSMC.Unpack(c); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "SecurityModeCommand")
	return c.Err()
}

// 6.2.2 UECapabilityEnquiry
/*
UECapabilityEnquiry ::=             SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            ueCapabilityEnquiry-r8              UECapabilityEnquiry-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

UECapabilityEnquiry-r8-IEs ::=      SEQUENCE {
    ue-CapabilityRequest                UE-CapabilityRequest,
    nonCriticalExtension                UECapabilityEnquiry-v8a0-IEs    OPTIONAL
}

UE-CapabilityRequest ::=            SEQUENCE (SIZE (1..maxRAT-Capabilities)) OF RAT-Type
*/
type UECapabilityEnquiry struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	UECapabilityRequest      []RATType
	NonCriticalExtension     bool
}

func (*UECapabilityEnquiry) Name() string { return "UECapabilityEnquiry" }

func (msg *UECapabilityEnquiry) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	return packList(c, msg.UECapabilityRequest, 1, maxRATCapabilities)
}

func (msg *UECapabilityEnquiry) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = UECapabilityEnquiry{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "UECapabilityEnquiry"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	var err error
	if msg.UECapabilityRequest, err = unpackList[RATType](c, 1, maxRATCapabilities); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "UECapabilityEnquiry")
	return c.Err()
}

// 6.2.2 DLInformationTransfer
/*
DLInformationTransfer ::=           SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            dlInformationTransfer-r8            DLInformationTransfer-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

DLInformationTransfer-r8-IEs ::=    SEQUENCE {
    dedicatedInfoType                   CHOICE {...},
    nonCriticalExtension                DLInformationTransfer-v8a0-IEs  OPTIONAL    -- Need OP
}
*/
type DLInformationTransfer struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	DedicatedInfoType        DedicatedInfoType
	NonCriticalExtension     bool
}

func (*DLInformationTransfer) Name() string { return "DLInformationTransfer" }

func (msg *DLInformationTransfer) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	return msg.DedicatedInfoType.Pack(c)
}

func (msg *DLInformationTransfer) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = DLInformationTransfer{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "DLInformationTransfer"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	if err := msg.DedicatedInfoType.Unpack(c); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "DLInformationTransfer")
	return c.Err()
}

// 6.2.2 CSFBParametersResponseCDMA2000
/*
CSFBParametersResponseCDMA2000 ::=  SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        csfbParametersResponseCDMA2000-r8   CSFBParametersResponseCDMA2000-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

CSFBParametersResponseCDMA2000-r8-IEs ::= SEQUENCE {
    rand                                RAND-CDMA2000,
    mobilityParameters                  MobilityParametersCDMA2000,
    nonCriticalExtension                CSFBParametersResponseCDMA2000-v8a0-IEs OPTIONAL
}

RAND-CDMA2000 ::=                   BIT STRING (SIZE (32))
MobilityParametersCDMA2000 ::=      OCTET STRING
*/
type CSFBParametersResponseCDMA2000 struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	RAND                     uint32
	MobilityParameters       []byte
	NonCriticalExtension     bool
}

func (*CSFBParametersResponseCDMA2000) Name() string { return "CSFBParametersResponseCDMA2000" }

func (msg *CSFBParametersResponseCDMA2000) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packCriticalExtensions(c)
	per.EncSequence(c, false, false)
	c.WriteBits(uint64(msg.RAND), 32)
	per.EncOctetString(c, msg.MobilityParameters)
	return c.Err()
}

func (msg *CSFBParametersResponseCDMA2000) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = CSFBParametersResponseCDMA2000{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackCriticalExtensions(c, "CSFBParametersResponseCDMA2000"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.RAND = uint32(c.ReadBits(32))
	msg.MobilityParameters = per.DecOctetString(c)
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"CSFBParametersResponseCDMA2000")
	return c.Err()
}

// 6.2.2 HandoverFromEUTRAPreparationRequest
/*
HandoverFromEUTRAPreparationRequest ::= SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE{
            handoverFromEUTRAPreparationRequest-r8  HandoverFromEUTRAPreparationRequest-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

HandoverFromEUTRAPreparationRequest-r8-IEs ::= SEQUENCE {
    cdma2000-Type                       CDMA2000-Type,
    rand                                RAND-CDMA2000                   OPTIONAL,   -- Cond cdma2000-Type
    mobilityParameters                  MobilityParametersCDMA2000      OPTIONAL,   -- Cond cdma2000-Type
    nonCriticalExtension                HandoverFromEUTRAPreparationRequest-v890-IEs    OPTIONAL
}
*/
type HandoverFromEUTRAPreparationRequest struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	CDMA2000Type             CDMA2000Type
	RAND                     *uint32
	MobilityParameters       []byte
	NonCriticalExtension     bool
}

func (*HandoverFromEUTRAPreparationRequest) Name() string {
	return "HandoverFromEUTRAPreparationRequest"
}

func (msg *HandoverFromEUTRAPreparationRequest) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, msg.RAND != nil, msg.MobilityParameters != nil, false)
	if err := msg.CDMA2000Type.Pack(c); err != nil {
		return err
	}
	if msg.RAND != nil {
		c.WriteBits(uint64(*msg.RAND), 32)
	}
	if msg.MobilityParameters != nil {
		per.EncOctetString(c, msg.MobilityParameters)
	}
	return c.Err()
}

func (msg *HandoverFromEUTRAPreparationRequest) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = HandoverFromEUTRAPreparationRequest{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "HandoverFromEUTRAPreparationRequest"); err != nil {
		return err
	}
	var rand, mob, nce bool
	per.DecSequence(c, false, &rand, &mob, &nce)
	if err := msg.CDMA2000Type.Unpack(c); err != nil {
		return err
	}
	if rand {
		v := uint32(c.ReadBits(32))
		msg.RAND = &v
	}
	if mob {
		msg.MobilityParameters = per.DecOctetString(c)
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"HandoverFromEUTRAPreparationRequest")
	return c.Err()
}

// MobilityPurpose selects the purpose alternative of MobilityFromEUTRACommand.
type MobilityPurpose uint8

const (
	MobilityPurposeHandover MobilityPurpose = iota
	MobilityPurposeCellChangeOrder
)

// 6.2.2 MobilityFromEUTRACommand
/*
MobilityFromEUTRACommand ::=        SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE{
            mobilityFromEUTRACommand-r8         MobilityFromEUTRACommand-r8-IEs,
            mobilityFromEUTRACommand-r9         MobilityFromEUTRACommand-r9-IEs,
            spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

MobilityFromEUTRACommand-r8-IEs ::= SEQUENCE {
    cs-FallbackIndicator                BOOLEAN,
    purpose                             CHOICE{
        handover                            Handover,
        cellChangeOrder                     CellChangeOrder
    },
    nonCriticalExtension                MobilityFromEUTRACommand-v8a0-IEs   OPTIONAL
}
*/
// Only the r8 body is handled; the r9 alternative decodes as unsupported.
type MobilityFromEUTRACommand struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	CSFallbackIndicator      bool
	Purpose                  MobilityPurpose
	Handover                 Handover
	CellChangeOrder          CellChangeOrder
	NonCriticalExtension     bool
}

func (*MobilityFromEUTRACommand) Name() string { return "MobilityFromEUTRACommand" }

func (msg *MobilityFromEUTRACommand) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	c.WriteBool(msg.CSFallbackIndicator)
	switch msg.Purpose {
	case MobilityPurposeHandover:
		per.EncChoice(c, 0, 2, false)
		return msg.Handover.Pack(c)
	case MobilityPurposeCellChangeOrder:
		per.EncChoice(c, 1, 2, false)
		return msg.CellChangeOrder.Pack(c)
	}
	return unsupported(c, "MobilityFromEUTRACommand purpose", int(msg.Purpose))
}

func (msg *MobilityFromEUTRACommand) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = MobilityFromEUTRACommand{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "MobilityFromEUTRACommand"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.CSFallbackIndicator = c.ReadBool()
	idx, _ := per.DecChoice(c, 2, false)
	msg.Purpose = MobilityPurpose(idx)
	var err error
	if msg.Purpose == MobilityPurposeHandover {
		err = msg.Handover.Unpack(c)
	} else {
		err = msg.CellChangeOrder.Unpack(c)
	}
	if err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "MobilityFromEUTRACommand")
	return c.Err()
}

// 6.2.2 CounterCheck
/*
CounterCheck ::=                    SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            counterCheck-r8                     CounterCheck-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

CounterCheck-r8-IEs ::=             SEQUENCE {
    drb-CountMSB-InfoList               DRB-CountMSB-InfoList,
    nonCriticalExtension                CounterCheck-v8a0-IEs       OPTIONAL
}

DRB-CountMSB-InfoList ::=           SEQUENCE (SIZE (1..maxDRB)) OF DRB-CountMSB-Info

DRB-CountMSB-Info ::=               SEQUENCE {
    drb-Identity                        DRB-Identity,
    countMSB-Uplink                     INTEGER(0..33554431),
    countMSB-Downlink                   INTEGER(0..33554431)
}
*/
type CounterCheck struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	DRBCountMSBInfoList      []DRBCountMSBInfo
	NonCriticalExtension     bool
}

// maxCountMSB is the upper bound of the 25 most significant COUNT bits.
const maxCountMSB = 1<<25 - 1

type DRBCountMSBInfo struct {
	DRBIdentity      DRBIdentity
	CountMSBUplink   uint32
	CountMSBDownlink uint32
}

func (ie *DRBCountMSBInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.DRBIdentity.Pack(c); err != nil {
		return err
	}
	packInt(c, int(ie.CountMSBUplink), 0, maxCountMSB)
	packInt(c, int(ie.CountMSBDownlink), 0, maxCountMSB)
	return c.Err()
}

func (ie *DRBCountMSBInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.DRBIdentity.Unpack(c); err != nil {
		return err
	}
	ie.CountMSBUplink = uint32(unpackInt(c, 0, maxCountMSB))
	ie.CountMSBDownlink = uint32(unpackInt(c, 0, maxCountMSB))
	return c.Err()
}

func (*CounterCheck) Name() string { return "CounterCheck" }

func (msg *CounterCheck) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	return packList(c, msg.DRBCountMSBInfoList, 1, maxDRB)
}

func (msg *CounterCheck) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = CounterCheck{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "CounterCheck"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	var err error
	if msg.DRBCountMSBInfoList, err = unpackList[DRBCountMSBInfo](c, 1, maxDRB); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "CounterCheck")
	return c.Err()
}

// 6.2.2 UEInformationRequest
/*
UEInformationRequest-r9 ::=         SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            ueInformationRequest-r9             UEInformationRequest-r9-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

UEInformationRequest-r9-IEs ::=     SEQUENCE {
    rach-ReportReq-r9                   BOOLEAN,
    rlf-ReportReq-r9                    BOOLEAN,
    nonCriticalExtension                UEInformationRequest-v930-IEs   OPTIONAL
}
*/
type UEInformationRequest struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	RACHReportReq            bool
	RLFReportReq             bool
	NonCriticalExtension     bool
}

func (*UEInformationRequest) Name() string { return "UEInformationRequest-r9" }

func (msg *UEInformationRequest) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	c.WriteBool(msg.RACHReportReq)
	c.WriteBool(msg.RLFReportReq)
	return c.Err()
}

func (msg *UEInformationRequest) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = UEInformationRequest{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "UEInformationRequest-r9"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.RACHReportReq = c.ReadBool()
	msg.RLFReportReq = c.ReadBool()
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "UEInformationRequest-r9")
	return c.Err()
}
