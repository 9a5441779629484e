// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.2.2 RRCConnectionSetupComplete
/*
RRCConnectionSetupComplete ::=      SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE{
            rrcConnectionSetupComplete-r8       RRCConnectionSetupComplete-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionSetupComplete-r8-IEs ::= SEQUENCE {
    selectedPLMN-Identity               INTEGER (1..6),
    registeredMME                       RegisteredMME                   OPTIONAL,
    dedicatedInfoNAS                    DedicatedInfoNAS,
    nonCriticalExtension                RRCConnectionSetupComplete-v8a0-IEs OPTIONAL
}
*/
type RRCConnectionSetupComplete struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	SelectedPLMNIdentity     uint8
	RegisteredMME            *RegisteredMME
	DedicatedInfoNAS         []byte
	NonCriticalExtension     bool
}

func (*RRCConnectionSetupComplete) Name() string { return "RRCConnectionSetupComplete" }

func (msg *RRCConnectionSetupComplete) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 2)
	per.EncSequence(c, false, msg.RegisteredMME != nil, false)
	packInt(c, int(msg.SelectedPLMNIdentity), 1, maxPLMNIdentities)
	if err := packOptional(c, msg.RegisteredMME != nil, msg.RegisteredMME); err != nil {
		return err
	}
	per.EncOctetString(c, msg.DedicatedInfoNAS)
	return c.Err()
}

func (msg *RRCConnectionSetupComplete) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionSetupComplete{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 2, "RRCConnectionSetupComplete"); err != nil {
		return err
	}
	var mme, nce bool
	per.DecSequence(c, false, &mme, &nce)
	msg.SelectedPLMNIdentity = uint8(unpackInt(c, 1, maxPLMNIdentities))
	var err error
	if msg.RegisteredMME, err = unpackOptional[RegisteredMME](c, mme); err != nil {
		return err
	}
	msg.DedicatedInfoNAS = per.DecOctetString(c)
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "RRCConnectionSetupComplete")
	return c.Err()
}

// simpleCompletion is the body shared by the completion messages that
// carry only a transaction identifier and an empty r8 container:
/*
<Message> ::=                       SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        <message>-r8                        <Message>-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

<Message>-r8-IEs ::=                SEQUENCE {
    nonCriticalExtension                <Message>-v8a0-IEs          OPTIONAL
}
*/
type simpleCompletion struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	NonCriticalExtension     bool
}

func (msg *simpleCompletion) pack(c *per.Cursor) error {
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packCriticalExtensions(c)
	per.EncSequence(c, false, false)
	return c.Err()
}

func (msg *simpleCompletion) unpack(c *per.Cursor, name string) error {
	*msg = simpleCompletion{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackCriticalExtensions(c, name); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, name)
	return c.Err()
}

// 6.2.2 RRCConnectionReestablishmentComplete
type RRCConnectionReestablishmentComplete struct {
	simpleCompletion
}

func (*RRCConnectionReestablishmentComplete) Name() string {
	return "RRCConnectionReestablishmentComplete"
}

func (msg *RRCConnectionReestablishmentComplete) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.pack(c)
}

func (msg *RRCConnectionReestablishmentComplete) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.unpack(c, msg.Name())
}

// 6.2.2 RRCConnectionReconfigurationComplete
type RRCConnectionReconfigurationComplete struct {
	simpleCompletion
}

func (*RRCConnectionReconfigurationComplete) Name() string {
	return "RRCConnectionReconfigurationComplete"
}

func (msg *RRCConnectionReconfigurationComplete) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.pack(c)
}

func (msg *RRCConnectionReconfigurationComplete) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.unpack(c, msg.Name())
}

// 6.2.2 SecurityModeComplete
type SecurityModeComplete struct {
	simpleCompletion
}

func (*SecurityModeComplete) Name() string { return "SecurityModeComplete" }

func (msg *SecurityModeComplete) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.pack(c)
}

func (msg *SecurityModeComplete) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.unpack(c, msg.Name())
}

// 6.2.2 SecurityModeFailure
type SecurityModeFailure struct {
	simpleCompletion
}

func (*SecurityModeFailure) Name() string { return "SecurityModeFailure" }

func (msg *SecurityModeFailure) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.pack(c)
}

func (msg *SecurityModeFailure) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	return msg.unpack(c, msg.Name())
}

// 6.2.2 UECapabilityInformation
/*
UECapabilityInformation ::=         SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE{
            ueCapabilityInformation-r8          UECapabilityInformation-r8-IEs,
            spare7 NULL,
            spare6 NULL, spare5 NULL, spare4 NULL,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

UECapabilityInformation-r8-IEs ::=  SEQUENCE {
    ue-CapabilityRAT-ContainerList      UE-CapabilityRAT-ContainerList,
    nonCriticalExtension                UECapabilityInformation-v8a0-IEs    OPTIONAL
}

UE-CapabilityRAT-ContainerList ::=  SEQUENCE (SIZE (0..maxRAT-Capabilities)) OF UE-CapabilityRAT-Container
*/
type UECapabilityInformation struct {
	RRCTransactionIdentifier  RRCTransactionIdentifier
	UECapabilityRATContainers []UECapabilityRATContainer
	NonCriticalExtension      bool
}

func (*UECapabilityInformation) Name() string { return "UECapabilityInformation" }

func (msg *UECapabilityInformation) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 3)
	per.EncSequence(c, false, false)
	return packList(c, msg.UECapabilityRATContainers, 0, maxRATCapabilities)
}

func (msg *UECapabilityInformation) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = UECapabilityInformation{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 3, "UECapabilityInformation"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	var err error
	if msg.UECapabilityRATContainers, err =
		unpackList[UECapabilityRATContainer](c, 0, maxRATCapabilities); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "UECapabilityInformation")
	return c.Err()
}

// 6.2.2 ULInformationTransfer
/*
ULInformationTransfer ::=           SEQUENCE {
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            ulInformationTransfer-r8            ULInformationTransfer-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

ULInformationTransfer-r8-IEs ::=    SEQUENCE {
    dedicatedInfoType                   CHOICE {...},
    nonCriticalExtension                ULInformationTransfer-v8a0-IEs  OPTIONAL
}
*/
type ULInformationTransfer struct {
	DedicatedInfoType    DedicatedInfoType
	NonCriticalExtension bool
}

func (*ULInformationTransfer) Name() string { return "ULInformationTransfer" }

func (msg *ULInformationTransfer) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	return msg.DedicatedInfoType.Pack(c)
}

func (msg *ULInformationTransfer) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = ULInformationTransfer{}
	if err := unpackC1(c, 2, "ULInformationTransfer"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	if err := msg.DedicatedInfoType.Unpack(c); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "ULInformationTransfer")
	return c.Err()
}

// 6.2.2 CSFBParametersRequestCDMA2000
/*
CSFBParametersRequestCDMA2000 ::=   SEQUENCE {
    criticalExtensions                  CHOICE {
        csfbParametersRequestCDMA2000-r8    CSFBParametersRequestCDMA2000-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

CSFBParametersRequestCDMA2000-r8-IEs ::= SEQUENCE {
    nonCriticalExtension                CSFBParametersRequestCDMA2000-v8a0-IEs  OPTIONAL
}
*/
type CSFBParametersRequestCDMA2000 struct {
	NonCriticalExtension bool
}

func (*CSFBParametersRequestCDMA2000) Name() string { return "CSFBParametersRequestCDMA2000" }

func (msg *CSFBParametersRequestCDMA2000) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packCriticalExtensions(c)
	per.EncSequence(c, false, false)
	return c.Err()
}

func (msg *CSFBParametersRequestCDMA2000) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = CSFBParametersRequestCDMA2000{}
	if err := unpackCriticalExtensions(c, "CSFBParametersRequestCDMA2000"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"CSFBParametersRequestCDMA2000")
	return c.Err()
}

// 6.2.2 ULHandoverPreparationTransfer
/*
ULHandoverPreparationTransfer ::=   SEQUENCE {
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            ulHandoverPreparationTransfer-r8    ULHandoverPreparationTransfer-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

ULHandoverPreparationTransfer-r8-IEs ::= SEQUENCE {
    cdma2000-Type                       CDMA2000-Type,
    meid                                BIT STRING (SIZE (56))          OPTIONAL,
    dedicatedInfo                       DedicatedInfoCDMA2000,
    nonCriticalExtension                ULHandoverPreparationTransfer-v8a0-IEs  OPTIONAL
}
*/
type ULHandoverPreparationTransfer struct {
	CDMA2000Type         CDMA2000Type
	MEID                 *uint64
	DedicatedInfo        []byte
	NonCriticalExtension bool
}

func (*ULHandoverPreparationTransfer) Name() string { return "ULHandoverPreparationTransfer" }

func (msg *ULHandoverPreparationTransfer) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packC1(c, 2)
	per.EncSequence(c, false, msg.MEID != nil, false)
	if err := msg.CDMA2000Type.Pack(c); err != nil {
		return err
	}
	if msg.MEID != nil {
		c.WriteBits(*msg.MEID, 56)
	}
	per.EncOctetString(c, msg.DedicatedInfo)
	return c.Err()
}

func (msg *ULHandoverPreparationTransfer) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = ULHandoverPreparationTransfer{}
	if err := unpackC1(c, 2, "ULHandoverPreparationTransfer"); err != nil {
		return err
	}
	var meid, nce bool
	per.DecSequence(c, false, &meid, &nce)
	if err := msg.CDMA2000Type.Unpack(c); err != nil {
		return err
	}
	if meid {
		v := c.ReadBits(56)
		msg.MEID = &v
	}
	msg.DedicatedInfo = per.DecOctetString(c)
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"ULHandoverPreparationTransfer")
	return c.Err()
}

// 6.2.2 CounterCheckResponse
/*
CounterCheckResponse ::=            SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        counterCheckResponse-r8             CounterCheckResponse-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

CounterCheckResponse-r8-IEs ::=     SEQUENCE {
    drb-CountInfoList                   DRB-CountInfoList,
    nonCriticalExtension                CounterCheckResponse-v8a0-IEs   OPTIONAL
}

DRB-CountInfoList ::=               SEQUENCE (SIZE (0..maxDRB)) OF DRB-CountInfo

DRB-CountInfo ::=                   SEQUENCE {
    drb-Identity                        DRB-Identity,
    count-Uplink                        INTEGER(0..4294967295),
    count-Downlink                      INTEGER(0..4294967295)
}
*/
type CounterCheckResponse struct {
	RRCTransactionIdentifier RRCTransactionIdentifier
	DRBCountInfoList         []DRBCountInfo
	NonCriticalExtension     bool
}

type DRBCountInfo struct {
	DRBIdentity   DRBIdentity
	CountUplink   uint32
	CountDownlink uint32
}

func (ie *DRBCountInfo) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.DRBIdentity.Pack(c); err != nil {
		return err
	}
	c.WriteBits(uint64(ie.CountUplink), 32)
	c.WriteBits(uint64(ie.CountDownlink), 32)
	return c.Err()
}

func (ie *DRBCountInfo) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := ie.DRBIdentity.Unpack(c); err != nil {
		return err
	}
	ie.CountUplink = uint32(c.ReadBits(32))
	ie.CountDownlink = uint32(c.ReadBits(32))
	return c.Err()
}

func (*CounterCheckResponse) Name() string { return "CounterCheckResponse" }

func (msg *CounterCheckResponse) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packCriticalExtensions(c)
	per.EncSequence(c, false, false)
	return packList(c, msg.DRBCountInfoList, 0, maxDRB)
}

func (msg *CounterCheckResponse) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = CounterCheckResponse{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackCriticalExtensions(c, "CounterCheckResponse"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	var err error
	if msg.DRBCountInfoList, err = unpackList[DRBCountInfo](c, 0, maxDRB); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "CounterCheckResponse")
	return c.Err()
}

// ProximityType is ENUMERATED {entering, leaving}.
type ProximityType uint8

const (
	ProximityEntering ProximityType = iota
	ProximityLeaving
)

// 6.2.2 ProximityIndication
/*
ProximityIndication-r9 ::=          SEQUENCE {
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            proximityIndication-r9              ProximityIndication-r9-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

ProximityIndication-r9-IEs ::=      SEQUENCE {
    type-r9                             ENUMERATED {entering, leaving},
    carrierFreq-r9                      CHOICE {
        eutra-r9                            ARFCN-ValueEUTRA,
        utra-r9                             ARFCN-ValueUTRA,
        ...
    },
    nonCriticalExtension                ProximityIndication-v930-IEs    OPTIONAL
}
*/
// UTRA selects the utra-r9 carrier; CarrierFreq then holds an
// ARFCN-ValueUTRA.
type ProximityIndication struct {
	Type                 ProximityType
	UTRA                 bool
	CarrierFreq          uint16
	NonCriticalExtension bool
}

func (*ProximityIndication) Name() string { return "ProximityIndication-r9" }

func (msg *ProximityIndication) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	packEnum(c, msg.Type, 2, false)
	if msg.UTRA {
		per.EncChoice(c, 1, 2, true)
		arfcn := ARFCNValueUTRA(msg.CarrierFreq)
		return arfcn.Pack(c)
	}
	per.EncChoice(c, 0, 2, true)
	arfcn := ARFCNValueEUTRA(msg.CarrierFreq)
	return arfcn.Pack(c)
}

func (msg *ProximityIndication) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = ProximityIndication{}
	if err := unpackC1(c, 2, "ProximityIndication-r9"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.Type = unpackEnum[ProximityType](c, 2, false)
	idx, ext := per.DecChoice(c, 2, true)
	if ext {
		return unsupported(c, "ProximityIndication carrierFreq", 2+idx)
	}
	msg.UTRA = idx == 1
	if msg.UTRA {
		var arfcn ARFCNValueUTRA
		if err := arfcn.Unpack(c); err != nil {
			return err
		}
		msg.CarrierFreq = uint16(arfcn)
	} else {
		var arfcn ARFCNValueEUTRA
		if err := arfcn.Unpack(c); err != nil {
			return err
		}
		msg.CarrierFreq = uint16(arfcn)
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "ProximityIndication-r9")
	return c.Err()
}

// 6.2.2 MeasurementReport
/*
MeasurementReport ::=               SEQUENCE {
    criticalExtensions                  CHOICE {
        c1                                  CHOICE{
            measurementReport-r8                MeasurementReport-r8-IEs,
            spare7 NULL,
            spare6 NULL, spare5 NULL, spare4 NULL,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

MeasurementReport-r8-IEs ::=        SEQUENCE {
    measResults                         MeasResults,
    nonCriticalExtension                MeasurementReport-v8a0-IEs      OPTIONAL
}
*/
type MeasurementReport struct {
	MeasResults          MeasResults
	NonCriticalExtension bool
}

func (*MeasurementReport) Name() string { return "MeasurementReport" }

func (msg *MeasurementReport) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packC1(c, 3)
	per.EncSequence(c, false, false)
	return msg.MeasResults.Pack(c)
}

func (msg *MeasurementReport) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = MeasurementReport{}
	if err := unpackC1(c, 3, "MeasurementReport"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	if err := msg.MeasResults.Unpack(c); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "MeasurementReport")
	return c.Err()
}
