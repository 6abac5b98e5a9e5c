package msgs

import (
	"bytes"
	"encoding/binary"
	"time"
)

var le = binary.LittleEndian

// AckAck acknowledges a CFG message.
type AckAck struct {
	ClsID byte
	MsgID byte
}

// NewMessage implements Message.
func (m *AckAck) NewMessage() Message { return &AckAck{} }

// TypeID implements Message.
func (m *AckAck) TypeID() TypeID { return AckAckTypeID }

// MarshalPayload implements Message.
func (m *AckAck) MarshalPayload() []byte { return []byte{m.ClsID, m.MsgID} }

// UnmarshalPayload implements Message.
func (m *AckAck) UnmarshalPayload(p []byte) error {
	if err := checkLen(AckAckTypeID, p, 2); err != nil {
		return err
	}
	m.ClsID, m.MsgID = p[0], p[1]
	return nil
}

// Acked gets the type of the acknowledged message.
func (m *AckAck) Acked() TypeID { return TypeIDOf(m.ClsID, m.MsgID) }

// AckNak rejects a CFG message.
type AckNak struct {
	ClsID byte
	MsgID byte
}

// NewMessage implements Message.
func (m *AckNak) NewMessage() Message { return &AckNak{} }

// TypeID implements Message.
func (m *AckNak) TypeID() TypeID { return AckNakTypeID }

// MarshalPayload implements Message.
func (m *AckNak) MarshalPayload() []byte { return []byte{m.ClsID, m.MsgID} }

// UnmarshalPayload implements Message.
func (m *AckNak) UnmarshalPayload(p []byte) error {
	if err := checkLen(AckNakTypeID, p, 2); err != nil {
		return err
	}
	m.ClsID, m.MsgID = p[0], p[1]
	return nil
}

// Rejected gets the type of the rejected message.
func (m *AckNak) Rejected() TypeID { return TypeIDOf(m.ClsID, m.MsgID) }

// CfgRate configures navigation/measurement rate.
type CfgRate struct {
	MeasRate uint16 // ms
	NavRate  uint16 // cycles
	TimeRef  uint16
}

// NewMessage implements Message.
func (m *CfgRate) NewMessage() Message { return &CfgRate{} }

// TypeID implements Message.
func (m *CfgRate) TypeID() TypeID { return CfgRateTypeID }

// MarshalPayload implements Message.
func (m *CfgRate) MarshalPayload() []byte {
	p := make([]byte, 6)
	le.PutUint16(p[0:], m.MeasRate)
	le.PutUint16(p[2:], m.NavRate)
	le.PutUint16(p[4:], m.TimeRef)
	return p
}

// UnmarshalPayload implements Message.
func (m *CfgRate) UnmarshalPayload(p []byte) error {
	if err := checkLen(CfgRateTypeID, p, 6); err != nil {
		return err
	}
	m.MeasRate = le.Uint16(p[0:])
	m.NavRate = le.Uint16(p[2:])
	m.TimeRef = le.Uint16(p[4:])
	return nil
}

// CfgTP5 configures a time pulse output.
type CfgTP5 struct {
	TPIdx             byte
	Version           byte
	AntCableDelay     int16 // ns
	RFGroupDelay      int16 // ns
	FreqPeriod        uint32
	FreqPeriodLock    uint32
	PulseLenRatio     uint32
	PulseLenRatioLock uint32
	UserConfigDelay   int32 // ns
	Flags             uint32
}

// CfgTP5 flags.
const (
	TP5FlagActive         uint32 = 0x01
	TP5FlagLockGNSSFreq   uint32 = 0x02
	TP5FlagLockedOtherSet uint32 = 0x04
	TP5FlagIsFreq         uint32 = 0x08
	TP5FlagIsLength       uint32 = 0x10
	TP5FlagAlignToTow     uint32 = 0x20
	TP5FlagPolarity       uint32 = 0x40
)

const cfgTP5Size = 32

// NewMessage implements Message.
func (m *CfgTP5) NewMessage() Message { return &CfgTP5{} }

// TypeID implements Message.
func (m *CfgTP5) TypeID() TypeID { return CfgTP5TypeID }

// MarshalPayload implements Message.
func (m *CfgTP5) MarshalPayload() []byte {
	p := make([]byte, cfgTP5Size)
	p[0], p[1] = m.TPIdx, m.Version
	le.PutUint16(p[4:], uint16(m.AntCableDelay))
	le.PutUint16(p[6:], uint16(m.RFGroupDelay))
	le.PutUint32(p[8:], m.FreqPeriod)
	le.PutUint32(p[12:], m.FreqPeriodLock)
	le.PutUint32(p[16:], m.PulseLenRatio)
	le.PutUint32(p[20:], m.PulseLenRatioLock)
	le.PutUint32(p[24:], uint32(m.UserConfigDelay))
	le.PutUint32(p[28:], m.Flags)
	return p
}

// UnmarshalPayload implements Message.
func (m *CfgTP5) UnmarshalPayload(p []byte) error {
	if err := checkLen(CfgTP5TypeID, p, cfgTP5Size); err != nil {
		return err
	}
	m.TPIdx, m.Version = p[0], p[1]
	m.AntCableDelay = int16(le.Uint16(p[4:]))
	m.RFGroupDelay = int16(le.Uint16(p[6:]))
	m.FreqPeriod = le.Uint32(p[8:])
	m.FreqPeriodLock = le.Uint32(p[12:])
	m.PulseLenRatio = le.Uint32(p[16:])
	m.PulseLenRatioLock = le.Uint32(p[20:])
	m.UserConfigDelay = int32(le.Uint32(p[24:]))
	m.Flags = le.Uint32(p[28:])
	return nil
}

// MonVer reports receiver software/hardware versions.
type MonVer struct {
	SWVersion  string
	HWVersion  string
	Extensions []string
}

const (
	monVerSWLen  = 30
	monVerHWLen  = 10
	monVerExtLen = 30
)

// NewMessage implements Message.
func (m *MonVer) NewMessage() Message { return &MonVer{} }

// TypeID implements Message.
func (m *MonVer) TypeID() TypeID { return MonVerTypeID }

// MarshalPayload implements Message.
func (m *MonVer) MarshalPayload() []byte {
	p := make([]byte, monVerSWLen+monVerHWLen+monVerExtLen*len(m.Extensions))
	putString(p[:monVerSWLen], m.SWVersion)
	putString(p[monVerSWLen:monVerSWLen+monVerHWLen], m.HWVersion)
	off := monVerSWLen + monVerHWLen
	for _, ext := range m.Extensions {
		putString(p[off:off+monVerExtLen], ext)
		off += monVerExtLen
	}
	return p
}

// UnmarshalPayload implements Message.
func (m *MonVer) UnmarshalPayload(p []byte) error {
	if err := checkLen(MonVerTypeID, p, monVerSWLen+monVerHWLen); err != nil {
		return err
	}
	m.SWVersion = getString(p[:monVerSWLen])
	m.HWVersion = getString(p[monVerSWLen : monVerSWLen+monVerHWLen])
	m.Extensions = nil
	for off := monVerSWLen + monVerHWLen; off+monVerExtLen <= len(p); off += monVerExtLen {
		m.Extensions = append(m.Extensions, getString(p[off:off+monVerExtLen]))
	}
	return nil
}

// NavTimeUTC reports UTC time solution.
type NavTimeUTC struct {
	ITOW  uint32 // ms
	TAcc  uint32 // ns
	Nano  int32  // ns
	Year  uint16
	Month byte
	Day   byte
	Hour  byte
	Min   byte
	Sec   byte
	Valid byte
}

// NavTimeUTC validity flags.
const (
	TimeUTCValidTOW byte = 0x01
	TimeUTCValidWKN byte = 0x02
	TimeUTCValidUTC byte = 0x04
)

const navTimeUTCSize = 20

// NewMessage implements Message.
func (m *NavTimeUTC) NewMessage() Message { return &NavTimeUTC{} }

// TypeID implements Message.
func (m *NavTimeUTC) TypeID() TypeID { return NavTimeUTCTypeID }

// MarshalPayload implements Message.
func (m *NavTimeUTC) MarshalPayload() []byte {
	p := make([]byte, navTimeUTCSize)
	le.PutUint32(p[0:], m.ITOW)
	le.PutUint32(p[4:], m.TAcc)
	le.PutUint32(p[8:], uint32(m.Nano))
	le.PutUint16(p[12:], m.Year)
	p[14], p[15], p[16], p[17], p[18], p[19] = m.Month, m.Day, m.Hour, m.Min, m.Sec, m.Valid
	return p
}

// UnmarshalPayload implements Message.
func (m *NavTimeUTC) UnmarshalPayload(p []byte) error {
	if err := checkLen(NavTimeUTCTypeID, p, navTimeUTCSize); err != nil {
		return err
	}
	m.ITOW = le.Uint32(p[0:])
	m.TAcc = le.Uint32(p[4:])
	m.Nano = int32(le.Uint32(p[8:]))
	m.Year = le.Uint16(p[12:])
	m.Month, m.Day, m.Hour, m.Min, m.Sec, m.Valid = p[14], p[15], p[16], p[17], p[18], p[19]
	return nil
}

// Time converts the solution to time.Time. ok is false unless UTC is valid.
func (m *NavTimeUTC) Time() (t time.Time, ok bool) {
	if m.Valid&TimeUTCValidUTC == 0 {
		return
	}
	t = time.Date(int(m.Year), time.Month(m.Month), int(m.Day),
		int(m.Hour), int(m.Min), int(m.Sec), 0, time.UTC)
	return t.Add(time.Duration(m.Nano)), true
}

func putString(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func getString(p []byte) string {
	if n := bytes.IndexByte(p, 0); n >= 0 {
		p = p[:n]
	}
	return string(p)
}
