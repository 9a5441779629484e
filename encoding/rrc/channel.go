// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package rrc

import (
	"errors"
	"fmt"

	"github.com/hhorai/lterrc/encoding/per"
)

// ErrWrongChannel is returned when a message is packed into a channel that
// does not carry it.
var ErrWrongChannel = errors.New("rrc: message not carried by this channel")

// ChannelMessage is the outermost PDU of a logical channel.
type ChannelMessage interface {
	Packer
	Channel() string
	Body() Message
}

// alternative is one message of a channel c1 CHOICE. alloc is nil for the
// alternatives that have no codec.
type alternative struct {
	name  string
	alloc func() Message
}

// 6.2.1 <Channel>-MessageType
/*
<Channel>-MessageType ::=           CHOICE {
    c1                                  CHOICE { ... },
    messageClassExtension               SEQUENCE {}
}
*/
type channel struct {
	name  string
	width int
	alts  []alternative
}

func (ch *channel) pack(c *per.Cursor, msg Message) error {
	if c == nil || msg == nil {
		return ErrInvalidInputs
	}
	idx := -1
	for i, alt := range ch.alts {
		if alt.alloc != nil && alt.name == msg.Name() {
			idx = i
			break
		}
	}
	if idx < 0 {
		err := fmt.Errorf("%s on %s: %w", msg.Name(), ch.name, ErrWrongChannel)
		c.Fail(err)
		return err
	}
	c.WriteBits(0, 1)
	c.WriteBits(uint64(idx), ch.width)

	// the body is staged on its own cursor and appended
	scratch := per.NewWriter(c.Remaining())
	if err := msg.Pack(scratch); err != nil {
		return err
	}
	c.Append(scratch)
	return c.Err()
}

func (ch *channel) unpack(c *per.Cursor) (Message, error) {
	if c == nil {
		return nil, ErrInvalidInputs
	}
	if c.ReadBool() {
		return nil, unsupported(c, ch.name+" messageClassExtension", 1)
	}
	idx := int(c.ReadBits(ch.width))
	if err := c.Err(); err != nil {
		return nil, err
	}
	if idx >= len(ch.alts) || ch.alts[idx].alloc == nil {
		return nil, unsupported(c, ch.name+" message", idx)
	}
	msg := ch.alts[idx].alloc()
	return msg, msg.Unpack(c)
}

func (ch *channel) names() []string {
	var names []string
	for _, alt := range ch.alts {
		if alt.alloc != nil {
			names = append(names, alt.name)
		}
	}
	return names
}

var bcchDLSCH = &channel{name: "BCCH-DL-SCH", width: 1, alts: []alternative{
	{"SystemInformation", func() Message { return new(SystemInformation) }},
	{"SystemInformationBlockType1", func() Message { return new(SystemInformationBlockType1) }},
}}

var pcch = &channel{name: "PCCH", width: 0, alts: []alternative{
	{"Paging", func() Message { return new(Paging) }},
}}

var dlCCCH = &channel{name: "DL-CCCH", width: 2, alts: []alternative{
	{"RRCConnectionReestablishment", func() Message { return new(RRCConnectionReestablishment) }},
	{"RRCConnectionReestablishmentReject", func() Message { return new(RRCConnectionReestablishmentReject) }},
	{"RRCConnectionReject", func() Message { return new(RRCConnectionReject) }},
	{"RRCConnectionSetup", func() Message { return new(RRCConnectionSetup) }},
}}

var ulCCCH = &channel{name: "UL-CCCH", width: 1, alts: []alternative{
	{"RRCConnectionReestablishmentRequest", func() Message { return new(RRCConnectionReestablishmentRequest) }},
	{"RRCConnectionRequest", func() Message { return new(RRCConnectionRequest) }},
}}

var dlDCCH = &channel{name: "DL-DCCH", width: 4, alts: []alternative{
	{"CSFBParametersResponseCDMA2000", func() Message { return new(CSFBParametersResponseCDMA2000) }},
	{"DLInformationTransfer", func() Message { return new(DLInformationTransfer) }},
	{"HandoverFromEUTRAPreparationRequest", func() Message { return new(HandoverFromEUTRAPreparationRequest) }},
	{"MobilityFromEUTRACommand", func() Message { return new(MobilityFromEUTRACommand) }},
	{"RRCConnectionReconfiguration", func() Message { return new(RRCConnectionReconfiguration) }},
	{"RRCConnectionRelease", func() Message { return new(RRCConnectionRelease) }},
	{"SecurityModeCommand", func() Message { return new(SecurityModeCommand) }},
	{"UECapabilityEnquiry", func() Message { return new(UECapabilityEnquiry) }},
	{"CounterCheck", func() Message { return new(CounterCheck) }},
	{"UEInformationRequest-r9", func() Message { return new(UEInformationRequest) }},
	{"LoggedMeasurementConfiguration-r10", nil},
	{"RNReconfiguration-r10", nil},
	{"spare4", nil},
	{"spare3", nil},
	{"spare2", nil},
	{"spare1", nil},
}}

var ulDCCH = &channel{name: "UL-DCCH", width: 4, alts: []alternative{
	{"CSFBParametersRequestCDMA2000", func() Message { return new(CSFBParametersRequestCDMA2000) }},
	{"MeasurementReport", func() Message { return new(MeasurementReport) }},
	{"RRCConnectionReconfigurationComplete", func() Message { return new(RRCConnectionReconfigurationComplete) }},
	{"RRCConnectionReestablishmentComplete", func() Message { return new(RRCConnectionReestablishmentComplete) }},
	{"RRCConnectionSetupComplete", func() Message { return new(RRCConnectionSetupComplete) }},
	{"SecurityModeComplete", func() Message { return new(SecurityModeComplete) }},
	{"SecurityModeFailure", func() Message { return new(SecurityModeFailure) }},
	{"UECapabilityInformation", func() Message { return new(UECapabilityInformation) }},
	{"ULHandoverPreparationTransfer", func() Message { return new(ULHandoverPreparationTransfer) }},
	{"ULInformationTransfer", func() Message { return new(ULInformationTransfer) }},
	{"CounterCheckResponse", func() Message { return new(CounterCheckResponse) }},
	{"UEInformationResponse-r9", nil},
	{"ProximityIndication-r9", func() Message { return new(ProximityIndication) }},
	{"RNReconfigurationComplete-r10", nil},
	{"MBMSCountingResponse-r10", nil},
	{"InterFreqRSTDMeasurementIndication-r10", nil},
}}

// 6.2.1 BCCH-BCH-Message
/*
BCCH-BCH-Message ::=                SEQUENCE {
    message                             BCCH-BCH-MessageType
}

BCCH-BCH-MessageType ::=            MasterInformationBlock
*/
type BCCHBCHMessage struct {
	Message *MasterInformationBlock
}

func (*BCCHBCHMessage) Channel() string { return "BCCH-BCH" }

func (m *BCCHBCHMessage) Body() Message {
	if m.Message == nil {
		return nil
	}
	return m.Message
}

func (m *BCCHBCHMessage) Pack(c *per.Cursor) error {
	if m == nil || c == nil || m.Message == nil {
		return ErrInvalidInputs
	}
	return m.Message.Pack(c)
}

func (m *BCCHBCHMessage) Unpack(c *per.Cursor) error {
	if m == nil || c == nil {
		return ErrInvalidInputs
	}
	m.Message = new(MasterInformationBlock)
	return m.Message.Unpack(c)
}

// 6.2.1 BCCH-DL-SCH-Message
/*
BCCH-DL-SCH-MessageType ::=         CHOICE {
    c1                                  CHOICE {
        systemInformation                   SystemInformation,
        systemInformationBlockType1         SystemInformationBlockType1
    },
    messageClassExtension               SEQUENCE {}
}
*/
type BCCHDLSCHMessage struct {
	Message Message
}

func (*BCCHDLSCHMessage) Channel() string { return bcchDLSCH.name }
func (m *BCCHDLSCHMessage) Body() Message { return m.Message }

func (m *BCCHDLSCHMessage) Pack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	return bcchDLSCH.pack(c, m.Message)
}

func (m *BCCHDLSCHMessage) Unpack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	var err error
	m.Message, err = bcchDLSCH.unpack(c)
	return err
}

// 6.2.1 PCCH-Message
/*
PCCH-MessageType ::=                CHOICE {
    c1                                  CHOICE {
        paging                              Paging
    },
    messageClassExtension               SEQUENCE {}
}
*/
type PCCHMessage struct {
	Message Message
}

func (*PCCHMessage) Channel() string { return pcch.name }
func (m *PCCHMessage) Body() Message { return m.Message }

func (m *PCCHMessage) Pack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	return pcch.pack(c, m.Message)
}

func (m *PCCHMessage) Unpack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	var err error
	m.Message, err = pcch.unpack(c)
	return err
}

// 6.2.1 DL-CCCH-Message
/*
DL-CCCH-MessageType ::=             CHOICE {
    c1                                  CHOICE {
        rrcConnectionReestablishment        RRCConnectionReestablishment,
        rrcConnectionReestablishmentReject  RRCConnectionReestablishmentReject,
        rrcConnectionReject                 RRCConnectionReject,
        rrcConnectionSetup                  RRCConnectionSetup
    },
    messageClassExtension               SEQUENCE {}
}
*/
type DLCCCHMessage struct {
	Message Message
}

func (*DLCCCHMessage) Channel() string { return dlCCCH.name }
func (m *DLCCCHMessage) Body() Message { return m.Message }

func (m *DLCCCHMessage) Pack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	return dlCCCH.pack(c, m.Message)
}

func (m *DLCCCHMessage) Unpack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	var err error
	m.Message, err = dlCCCH.unpack(c)
	return err
}

// 6.2.1 UL-CCCH-Message
/*
UL-CCCH-MessageType ::=             CHOICE {
    c1                                  CHOICE {
        rrcConnectionReestablishmentRequest RRCConnectionReestablishmentRequest,
        rrcConnectionRequest                RRCConnectionRequest
    },
    messageClassExtension               SEQUENCE {}
}
*/
type ULCCCHMessage struct {
	Message Message
}

func (*ULCCCHMessage) Channel() string { return ulCCCH.name }
func (m *ULCCCHMessage) Body() Message { return m.Message }

func (m *ULCCCHMessage) Pack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	return ulCCCH.pack(c, m.Message)
}

func (m *ULCCCHMessage) Unpack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	var err error
	m.Message, err = ulCCCH.unpack(c)
	return err
}

// 6.2.1 DL-DCCH-Message
type DLDCCHMessage struct {
	Message Message
}

func (*DLDCCHMessage) Channel() string { return dlDCCH.name }
func (m *DLDCCHMessage) Body() Message { return m.Message }

func (m *DLDCCHMessage) Pack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	return dlDCCH.pack(c, m.Message)
}

func (m *DLDCCHMessage) Unpack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	var err error
	m.Message, err = dlDCCH.unpack(c)
	return err
}

// 6.2.1 UL-DCCH-Message
type ULDCCHMessage struct {
	Message Message
}

func (*ULDCCHMessage) Channel() string { return ulDCCH.name }
func (m *ULDCCHMessage) Body() Message { return m.Message }

func (m *ULDCCHMessage) Pack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	return ulDCCH.pack(c, m.Message)
}

func (m *ULDCCHMessage) Unpack(c *per.Cursor) error {
	if m == nil {
		return ErrInvalidInputs
	}
	var err error
	m.Message, err = ulDCCH.unpack(c)
	return err
}

// NewChannelMessage returns an empty message for a channel name such as
// "UL-CCCH" or "BCCH-DL-SCH", ready to be passed to Decode.
func NewChannelMessage(name string) (ChannelMessage, error) {
	switch name {
	case "BCCH-BCH":
		return new(BCCHBCHMessage), nil
	case bcchDLSCH.name:
		return new(BCCHDLSCHMessage), nil
	case pcch.name:
		return new(PCCHMessage), nil
	case dlCCCH.name:
		return new(DLCCCHMessage), nil
	case ulCCCH.name:
		return new(ULCCCHMessage), nil
	case dlDCCH.name:
		return new(DLDCCHMessage), nil
	case ulDCCH.name:
		return new(ULDCCHMessage), nil
	}
	return nil, fmt.Errorf("rrc: unknown channel %q", name)
}

// Channels lists the channel names accepted by NewChannelMessage.
func Channels() []string {
	return []string{"BCCH-BCH", bcchDLSCH.name, pcch.name,
		dlCCCH.name, ulCCCH.name, dlDCCH.name, ulDCCH.name}
}

// Messages lists the message names with a codec on the named channel.
func Messages(channelName string) []string {
	switch channelName {
	case "BCCH-BCH":
		return []string{"MasterInformationBlock"}
	case bcchDLSCH.name:
		return bcchDLSCH.names()
	case pcch.name:
		return pcch.names()
	case dlCCCH.name:
		return dlCCCH.names()
	case ulCCCH.name:
		return ulCCCH.names()
	case dlDCCH.name:
		return dlDCCH.names()
	case ulDCCH.name:
		return ulDCCH.names()
	}
	return nil
}

// Encode packs m into a new buffer of at most per.MaxMessageBits. It returns
// the zero padded octets and the number of significant bits.
func Encode(m ChannelMessage) ([]byte, int, error) {
	return EncodeLimit(m, per.MaxMessageBits)
}

// EncodeLimit is Encode with an explicit upper bound in bits.
func EncodeLimit(m ChannelMessage, maxBits int) ([]byte, int, error) {
	if m == nil {
		return nil, 0, ErrInvalidInputs
	}
	obs := currentObserver()
	c := per.NewWriter(maxBits)
	if err := m.Pack(c); err != nil {
		obs.Failed(m.Channel(), "encode", err)
		return nil, 0, fmt.Errorf("rrc: %s: %w", m.Channel(), err)
	}
	obs.Encoded(m.Channel(), bodyName(m), c.Len())
	return c.Bytes(), c.Len(), nil
}

// Decode unpacks data into m. The reader options select the decoding
// policy, see per.Strict.
func Decode(data []byte, m ChannelMessage, opts ...per.ReaderOption) error {
	if m == nil {
		return ErrInvalidInputs
	}
	obs := currentObserver()
	c := per.NewReader(data, opts...)
	if err := m.Unpack(c); err != nil {
		obs.Failed(m.Channel(), "decode", err)
		return fmt.Errorf("rrc: %s: %w", m.Channel(), err)
	}
	obs.Decoded(m.Channel(), bodyName(m), c.Len())
	return nil
}

func bodyName(m ChannelMessage) string {
	if b := m.Body(); b != nil {
		return b.Name()
	}
	return ""
}
