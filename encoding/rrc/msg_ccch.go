// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// EstablishmentCause ::= ENUMERATED {
//     emergency, highPriorityAccess, mt-Access, mo-Signalling, mo-Data,
//     delayTolerantAccess-v1020, spare2, spare1}
type EstablishmentCause uint8

const (
	EstablishmentCauseEmergency EstablishmentCause = iota
	EstablishmentCauseHighPriorityAccess
	EstablishmentCauseMTAccess
	EstablishmentCauseMOSignalling
	EstablishmentCauseMOData
	EstablishmentCauseDelayTolerantAccess
)

// 6.2.2 RRCConnectionRequest
/*
RRCConnectionRequest ::=            SEQUENCE {
    criticalExtensions                  CHOICE {
        rrcConnectionRequest-r8             RRCConnectionRequest-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionRequest-r8-IEs ::=     SEQUENCE {
    ue-Identity                         InitialUE-Identity,
    establishmentCause                  EstablishmentCause,
    spare                               BIT STRING (SIZE (1))
}
*/
type RRCConnectionRequest struct {
	UEIdentity         InitialUEIdentity
	EstablishmentCause EstablishmentCause
}

func (*RRCConnectionRequest) Name() string { return "RRCConnectionRequest" }

func (msg *RRCConnectionRequest) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packCriticalExtensions(c)
	if err := msg.UEIdentity.Pack(c); err != nil {
		return err
	}
	packEnum(c, msg.EstablishmentCause, 8, false)
	c.WriteBits(0, 1)
	return c.Err()
}

func (msg *RRCConnectionRequest) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionRequest{}
	if err := unpackCriticalExtensions(c, "RRCConnectionRequest"); err != nil {
		return err
	}
	if err := msg.UEIdentity.Unpack(c); err != nil {
		return err
	}
	msg.EstablishmentCause = unpackEnum[EstablishmentCause](c, 8, false)
	c.Skip(1)
	return c.Err()
}

// ReestablishmentCause ::= ENUMERATED {
//     reconfigurationFailure, handoverFailure, otherFailure, spare1}
type ReestablishmentCause uint8

const (
	ReestablishmentCauseReconfigurationFailure ReestablishmentCause = iota
	ReestablishmentCauseHandoverFailure
	ReestablishmentCauseOtherFailure
)

// 6.2.2 RRCConnectionReestablishmentRequest
/*
RRCConnectionReestablishmentRequest ::= SEQUENCE {
    criticalExtensions                  CHOICE {
        rrcConnectionReestablishmentRequest-r8  RRCConnectionReestablishmentRequest-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionReestablishmentRequest-r8-IEs ::= SEQUENCE {
    ue-Identity                         ReestabUE-Identity,
    reestablishmentCause                ReestablishmentCause,
    spare                               BIT STRING (SIZE (2))
}

ReestabUE-Identity ::=              SEQUENCE {
    c-RNTI                              C-RNTI,
    physCellId                          PhysCellId,
    shortMAC-I                          ShortMAC-I
}
*/
type RRCConnectionReestablishmentRequest struct {
	CRNTI                CRNTI
	PhysCellID           PhysCellID
	ShortMACI            ShortMACI
	ReestablishmentCause ReestablishmentCause
}

func (*RRCConnectionReestablishmentRequest) Name() string {
	return "RRCConnectionReestablishmentRequest"
}

func (msg *RRCConnectionReestablishmentRequest) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packCriticalExtensions(c)
	if err := msg.CRNTI.Pack(c); err != nil {
		return err
	}
	if err := msg.PhysCellID.Pack(c); err != nil {
		return err
	}
	if err := msg.ShortMACI.Pack(c); err != nil {
		return err
	}
	packEnum(c, msg.ReestablishmentCause, 4, false)
	c.WriteBits(0, 2)
	return c.Err()
}

func (msg *RRCConnectionReestablishmentRequest) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionReestablishmentRequest{}
	if err := unpackCriticalExtensions(c, "RRCConnectionReestablishmentRequest"); err != nil {
		return err
	}
	if err := msg.CRNTI.Unpack(c); err != nil {
		return err
	}
	if err := msg.PhysCellID.Unpack(c); err != nil {
		return err
	}
	if err := msg.ShortMACI.Unpack(c); err != nil {
		return err
	}
	msg.ReestablishmentCause = unpackEnum[ReestablishmentCause](c, 4, false)
	c.Skip(2)
	return c.Err()
}

// 6.2.2 RRCConnectionSetup
/*
RRCConnectionSetup ::=              SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            rrcConnectionSetup-r8               RRCConnectionSetup-r8-IEs,
            spare7 NULL,
            spare6 NULL, spare5 NULL, spare4 NULL,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionSetup-r8-IEs ::=       SEQUENCE {
    radioResourceConfigDedicated        RadioResourceConfigDedicated,
    nonCriticalExtension                RRCConnectionSetup-v8a0-IEs     OPTIONAL
}
*/
type RRCConnectionSetup struct {
	RRCTransactionIdentifier     RRCTransactionIdentifier
	RadioResourceConfigDedicated RadioResourceConfigDedicated
	NonCriticalExtension         bool
}

func (*RRCConnectionSetup) Name() string { return "RRCConnectionSetup" }

func (msg *RRCConnectionSetup) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 3)
	per.EncSequence(c, false, false)
	return msg.RadioResourceConfigDedicated.Pack(c)
}

func (msg *RRCConnectionSetup) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionSetup{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 3, "RRCConnectionSetup"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	if err := msg.RadioResourceConfigDedicated.Unpack(c); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "RRCConnectionSetup")
	return c.Err()
}

// 6.2.2 RRCConnectionReject
/*
RRCConnectionReject ::=             SEQUENCE {
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            rrcConnectionReject-r8              RRCConnectionReject-r8-IEs,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionReject-r8-IEs ::=      SEQUENCE {
    waitTime                            INTEGER (1..16),
    nonCriticalExtension                RRCConnectionReject-v8a0-IEs    OPTIONAL
}
*/
// WaitTime is in seconds.
type RRCConnectionReject struct {
	WaitTime             uint8
	NonCriticalExtension bool
}

func (*RRCConnectionReject) Name() string { return "RRCConnectionReject" }

func (msg *RRCConnectionReject) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packC1(c, 2)
	per.EncSequence(c, false, false)
	packInt(c, int(msg.WaitTime), 1, 16)
	return c.Err()
}

func (msg *RRCConnectionReject) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionReject{}
	if err := unpackC1(c, 2, "RRCConnectionReject"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.WaitTime = uint8(unpackInt(c, 1, 16))
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "RRCConnectionReject")
	return c.Err()
}

// 6.2.2 RRCConnectionReestablishment
/*
RRCConnectionReestablishment ::=    SEQUENCE {
    rrc-TransactionIdentifier           RRC-TransactionIdentifier,
    criticalExtensions                  CHOICE {
        c1                                  CHOICE {
            rrcConnectionReestablishment-r8     RRCConnectionReestablishment-r8-IEs,
            spare7 NULL,
            spare6 NULL, spare5 NULL, spare4 NULL,
            spare3 NULL, spare2 NULL, spare1 NULL
        },
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionReestablishment-r8-IEs ::= SEQUENCE {
    radioResourceConfigDedicated        RadioResourceConfigDedicated,
    nextHopChainingCount                NextHopChainingCount,
    nonCriticalExtension                RRCConnectionReestablishment-v8a0-IEs   OPTIONAL
}
*/
type RRCConnectionReestablishment struct {
	RRCTransactionIdentifier     RRCTransactionIdentifier
	RadioResourceConfigDedicated RadioResourceConfigDedicated
	NextHopChainingCount         NextHopChainingCount
	NonCriticalExtension         bool
}

func (*RRCConnectionReestablishment) Name() string { return "RRCConnectionReestablishment" }

func (msg *RRCConnectionReestablishment) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	if err := msg.RRCTransactionIdentifier.Pack(c); err != nil {
		return err
	}
	packC1(c, 3)
	per.EncSequence(c, false, false)
	if err := msg.RadioResourceConfigDedicated.Pack(c); err != nil {
		return err
	}
	return msg.NextHopChainingCount.Pack(c)
}

func (msg *RRCConnectionReestablishment) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionReestablishment{}
	if err := msg.RRCTransactionIdentifier.Unpack(c); err != nil {
		return err
	}
	if err := unpackC1(c, 3, "RRCConnectionReestablishment"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	if err := msg.RadioResourceConfigDedicated.Unpack(c); err != nil {
		return err
	}
	if err := msg.NextHopChainingCount.Unpack(c); err != nil {
		return err
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"RRCConnectionReestablishment")
	return c.Err()
}

// 6.2.2 RRCConnectionReestablishmentReject
/*
RRCConnectionReestablishmentReject ::= SEQUENCE {
    criticalExtensions                  CHOICE {
        rrcConnectionReestablishmentReject-r8   RRCConnectionReestablishmentReject-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

RRCConnectionReestablishmentReject-r8-IEs ::= SEQUENCE {
    nonCriticalExtension                RRCConnectionReestablishmentReject-v8a0-IEs OPTIONAL
}
*/
type RRCConnectionReestablishmentReject struct {
	NonCriticalExtension bool
}

func (*RRCConnectionReestablishmentReject) Name() string {
	return "RRCConnectionReestablishmentReject"
}

func (msg *RRCConnectionReestablishmentReject) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packCriticalExtensions(c)
	per.EncSequence(c, false, false)
	return c.Err()
}

func (msg *RRCConnectionReestablishmentReject) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = RRCConnectionReestablishmentReject{}
	if err := unpackCriticalExtensions(c, "RRCConnectionReestablishmentReject"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce,
		"RRCConnectionReestablishmentReject")
	return c.Err()
}
