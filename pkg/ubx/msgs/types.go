package msgs

import (
	"fmt"
	"sort"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

// TypeID identifies a message type as class<<8 | id.
type TypeID uint16

// TypeIDOf builds a TypeID.
func TypeIDOf(class, id byte) TypeID {
	return TypeID(uint16(class)<<8 | uint16(id))
}

// Class gets the message class.
func (t TypeID) Class() byte { return byte(t >> 8) }

// ID gets the message id.
func (t TypeID) ID() byte { return byte(t) }

// String returns the registered name, or the hex form for unknown types.
func (t TypeID) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x-0x%02x", t.Class(), t.ID())
}

// Message classes.
const (
	ClassNAV byte = 0x01
	ClassACK byte = 0x05
	ClassCFG byte = 0x06
	ClassMON byte = 0x0a
)

// Known message types.
var (
	AckNakTypeID     = TypeIDOf(ClassACK, 0x00)
	AckAckTypeID     = TypeIDOf(ClassACK, 0x01)
	CfgRateTypeID    = TypeIDOf(ClassCFG, 0x08)
	CfgTP5TypeID     = TypeIDOf(ClassCFG, 0x31)
	MonVerTypeID     = TypeIDOf(ClassMON, 0x04)
	NavTimeUTCTypeID = TypeIDOf(ClassNAV, 0x21)
)

var typeNames = map[TypeID]string{
	AckNakTypeID:     "ACK-NAK",
	AckAckTypeID:     "ACK-ACK",
	CfgRateTypeID:    "CFG-RATE",
	CfgTP5TypeID:     "CFG-TP5",
	MonVerTypeID:     "MON-VER",
	NavTimeUTCTypeID: "NAV-TIMEUTC",
}

// Message is a typed UBX payload.
type Message interface {
	TypeID() TypeID
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
	MarshalPayload() []byte
	UnmarshalPayload([]byte) error
}

// MessageTypes maps type IDs to registered messages.
var MessageTypes = map[TypeID]Message{
	AckNakTypeID:     (*AckNak)(nil),
	AckAckTypeID:     (*AckAck)(nil),
	CfgRateTypeID:    (*CfgRate)(nil),
	CfgTP5TypeID:     (*CfgTP5)(nil),
	MonVerTypeID:     (*MonVer)(nil),
	NavTimeUTCTypeID: (*NavTimeUTC)(nil),
}

// Register adds a message type under a display name.
func Register(name string, msg Message) {
	MessageTypes[msg.TypeID()] = msg
	typeNames[msg.TypeID()] = name
}

// LookupName finds a registered type by its name.
func LookupName(name string) (TypeID, bool) {
	for id, n := range typeNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// RegisteredTypes lists registered types in ascending order.
func RegisteredTypes() []TypeID {
	ids := make([]TypeID, 0, len(MessageTypes))
	for id := range MessageTypes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Decode decodes the frame payload into a registered message.
func Decode(f ubx.Frame) (Message, error) {
	typeID := TypeIDOf(f.Class, f.ID)
	msgType, ok := MessageTypes[typeID]
	if !ok {
		return nil, &ErrUnknownType{TypeID: typeID}
	}
	msg := msgType.NewMessage()
	if err := msg.UnmarshalPayload(f.Payload); err != nil {
		return nil, err
	}
	return msg, nil
}

// Encode builds the frame of a message.
func Encode(msg Message) ubx.Frame {
	typeID := msg.TypeID()
	return ubx.Frame{Class: typeID.Class(), ID: typeID.ID(), Payload: msg.MarshalPayload()}
}

// Poll builds a poll request, which is the message type with empty payload.
func Poll(typeID TypeID) ubx.Frame {
	return ubx.Frame{Class: typeID.Class(), ID: typeID.ID()}
}
