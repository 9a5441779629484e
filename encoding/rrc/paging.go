// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// CNDomain is ENUMERATED {ps, cs}.
type CNDomain uint8

const (
	CNDomainPS CNDomain = iota
	CNDomainCS
)

// 6.2.2 Paging
/*
Paging ::=                          SEQUENCE {
    pagingRecordList                    PagingRecordList            OPTIONAL,   -- Need ON
    systemInfoModification              ENUMERATED {true}           OPTIONAL,   -- Need ON
    etws-Indication                     ENUMERATED {true}           OPTIONAL,   -- Need ON
    nonCriticalExtension                Paging-v890-IEs             OPTIONAL    -- Need OP
}

PagingRecordList ::=                SEQUENCE (SIZE (1..maxPageRec)) OF PagingRecord

PagingRecord ::=                    SEQUENCE {
    ue-Identity                         PagingUE-Identity,
    cn-Domain                           ENUMERATED {ps, cs},
    ...
}
*/
type Paging struct {
	PagingRecordList       []PagingRecord
	SystemInfoModification bool
	ETWSIndication         bool
	NonCriticalExtension   bool
}

type PagingRecord struct {
	UEIdentity PagingUEIdentity
	CNDomain   CNDomain
}

func (ie *PagingRecord) Pack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	per.EncSequence(c, true)
	if err := ie.UEIdentity.Pack(c); err != nil {
		return err
	}
	packEnum(c, ie.CNDomain, 2, false)
	return c.Err()
}

func (ie *PagingRecord) Unpack(c *per.Cursor) error {
	if ie == nil || c == nil {
		return ErrInvalidInputs
	}
	*ie = PagingRecord{}
	ext := per.DecSequence(c, true)
	if err := ie.UEIdentity.Unpack(c); err != nil {
		return err
	}
	ie.CNDomain = unpackEnum[CNDomain](c, 2, false)
	return skipExtensions(c, ext, "PagingRecord")
}

func (*Paging) Name() string { return "Paging" }

func (msg *Paging) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	records := len(msg.PagingRecordList) != 0
	per.EncSequence(c, false, records, msg.SystemInfoModification, msg.ETWSIndication, false)
	if records {
		if err := packList(c, msg.PagingRecordList, 1, maxPageRec); err != nil {
			return err
		}
	}
	// ENUMERATED {true} has a single value and takes no bits.
	return c.Err()
}

func (msg *Paging) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = Paging{}
	var records, nce bool
	per.DecSequence(c, false, &records, &msg.SystemInfoModification, &msg.ETWSIndication, &nce)
	if records {
		var err error
		if msg.PagingRecordList, err = unpackList[PagingRecord](c, 1, maxPageRec); err != nil {
			return err
		}
	}
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "Paging")
	return c.Err()
}
