// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// Message is implemented by every message body that a channel can carry.
// Name returns the ASN.1 name of the message.
type Message interface {
	Packer
	Name() string
}

// RRCTransactionIdentifier ::= INTEGER (0..3)
type RRCTransactionIdentifier uint8

func (ie *RRCTransactionIdentifier) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	packInt(c, int(*ie), 0, 3)
	return c.Err()
}

func (ie *RRCTransactionIdentifier) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = RRCTransactionIdentifier(unpackInt(c, 0, 3))
	return c.Err()
}

// DedicatedInfoKind selects the dedicatedInfoType alternative of the
// information transfer messages.
type DedicatedInfoKind uint8

const (
	DedicatedInfoNAS DedicatedInfoKind = iota
	DedicatedInfoCDMA20001XRTT
	DedicatedInfoCDMA2000HRPD
)

/*
dedicatedInfoType                   CHOICE {
    dedicatedInfoNAS                    DedicatedInfoNAS,
    dedicatedInfoCDMA2000-1XRTT         DedicatedInfoCDMA2000,
    dedicatedInfoCDMA2000-HRPD          DedicatedInfoCDMA2000
}

DedicatedInfoNAS ::=                OCTET STRING
DedicatedInfoCDMA2000 ::=           OCTET STRING
*/
type DedicatedInfoType struct {
	Kind DedicatedInfoKind
	Info []byte
}

func (ie *DedicatedInfoType) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	if ie.Kind > DedicatedInfoCDMA2000HRPD {
		return unsupported(c, "dedicatedInfoType", int(ie.Kind))
	}
	per.EncChoice(c, int(ie.Kind), 3, false)
	per.EncOctetString(c, ie.Info)
	return c.Err()
}

func (ie *DedicatedInfoType) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = DedicatedInfoType{}
	idx, _ := per.DecChoice(c, 3, false)
	if err := c.Err(); err != nil {
		return err
	}
	if idx > int(DedicatedInfoCDMA2000HRPD) {
		return unsupported(c, "dedicatedInfoType", idx)
	}
	ie.Kind = DedicatedInfoKind(idx)
	ie.Info = per.DecOctetString(c)
	return c.Err()
}
