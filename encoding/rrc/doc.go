// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package rrc is implementation for Radio Resource Control (RRC) protocol
// messages of E-UTRA, encoded with the unaligned variant of PER.
// document version: 3GPP TS 36.331 v9.x (Rel-8 structures with the Rel-9
// messages and SIBs carried by srsLTE-class eNBs).
//
// Every information element and message is a Go type with Pack and Unpack
// methods working on a per.Cursor. OPTIONAL components are pointers (nil is
// absent), SEQUENCE OF components are slices bounded by the maxX constants
// of 6.4, and CHOICE types carry a Choice discriminant with one field per
// alternative.
//
// Extension additions of extensible types are never written. On decode they
// are skipped and reported to the registered logger, so the decoded values
// only hold the root components.
//
// The logical channel types (BCCHDLSCHMessage, DLDCCHMessage, ...) form the
// entry points; Encode and Decode wrap them for byte slices.
package rrc
