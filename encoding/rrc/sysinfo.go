// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"github.com/hhorai/lterrc/encoding/per"
)

// 6.2.2 SystemInformation
/*
SystemInformation ::=               SEQUENCE {
    criticalExtensions                  CHOICE {
        systemInformation-r8                SystemInformation-r8-IEs,
        criticalExtensionsFuture            SEQUENCE {}
    }
}

SystemInformation-r8-IEs ::=        SEQUENCE {
    sib-TypeAndInfo                     SEQUENCE (SIZE (1..maxSIB)) OF CHOICE {
        sib2                                SystemInformationBlockType2,
        sib3                                SystemInformationBlockType3,
        sib4                                SystemInformationBlockType4,
        sib5                                SystemInformationBlockType5,
        sib6                                SystemInformationBlockType6,
        sib7                                SystemInformationBlockType7,
        sib8                                SystemInformationBlockType8,
        sib9                                SystemInformationBlockType9,
        sib10                               SystemInformationBlockType10,
        sib11                               SystemInformationBlockType11,
        ...,
        sib12-v920                          SystemInformationBlockType12-r9,
        sib13-v920                          SystemInformationBlockType13-r9
    },
    nonCriticalExtension                SystemInformation-v8a0-IEs  OPTIONAL
}
*/
// SystemInformation carries the blocks in transmission order. SIB2 to SIB11
// are encoded inline, SIB12 and SIB13 as extension alternatives wrapped in an
// open type.
type SystemInformation struct {
	SIBs                 []SystemInformationBlock
	NonCriticalExtension bool
}

func (*SystemInformation) Name() string { return "SystemInformation" }

func (msg *SystemInformation) Pack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	packCriticalExtensions(c)
	per.EncSequence(c, false, false)
	per.EncSequenceOf(c, len(msg.SIBs), 1, maxSIB)
	if err := c.Err(); err != nil {
		return err
	}
	for _, sib := range msg.SIBs {
		if sib == nil {
			return ErrInvalidInputs
		}
		if err := packSIB(c, sib); err != nil {
			return err
		}
	}
	return c.Err()
}

func packSIB(c *per.Cursor, sib SystemInformationBlock) error {
	t := sib.SIBType()
	switch {
	case t < sibRootTypes:
		per.EncChoice(c, int(t), sibRootTypes, true)
		return sib.Pack(c)
	case t <= SIBType13:
		per.EncChoiceExtension(c, int(t-sibRootTypes))
		inner := per.NewWriter(c.Remaining())
		if err := sib.Pack(inner); err != nil {
			return err
		}
		per.EncOpenType(c, inner)
		return c.Err()
	}
	return unsupported(c, "sib-TypeAndInfo", int(t))
}

func (msg *SystemInformation) Unpack(c *per.Cursor) error {
	if msg == nil || c == nil {
		return ErrInvalidInputs
	}
	*msg = SystemInformation{}
	if err := unpackCriticalExtensions(c, "SystemInformation"); err != nil {
		return err
	}
	var nce bool
	per.DecSequence(c, false, &nce)
	n := per.DecSequenceOf(c, 1, maxSIB)
	if err := c.Err(); err != nil {
		return err
	}
	sibs := make([]SystemInformationBlock, 0, n)
	for i := 0; i < n; i++ {
		sib, err := unpackSIB(c)
		if err != nil {
			return err
		}
		sibs = append(sibs, sib)
	}
	msg.SIBs = sibs
	msg.NonCriticalExtension = unpackNonCriticalExtension(nce, "SystemInformation")
	return c.Err()
}

func unpackSIB(c *per.Cursor) (SystemInformationBlock, error) {
	idx, ext := per.DecChoice(c, sibRootTypes, true)
	if err := c.Err(); err != nil {
		return nil, err
	}
	if !ext {
		sib := newSIB(SIBType(idx))
		if idx < 0 || idx >= sibRootTypes || sib == nil {
			return nil, unsupported(c, "sib-TypeAndInfo", idx)
		}
		return sib, sib.Unpack(c)
	}

	if idx < 0 || idx > int(SIBType13-SIBType12) {
		return nil, unsupported(c, "sib-TypeAndInfo", sibRootTypes+idx)
	}
	sib := newSIB(SIBType12 + SIBType(idx))
	if sib == nil {
		return nil, unsupported(c, "sib-TypeAndInfo", sibRootTypes+idx)
	}
	inner, err := per.DecOpenType(c)
	if err != nil {
		return nil, err
	}
	return sib, sib.Unpack(inner)
}

func (*MasterInformationBlock) Name() string { return "MasterInformationBlock" }

func (*SystemInformationBlockType1) Name() string { return "SystemInformationBlockType1" }
