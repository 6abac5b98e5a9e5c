package ubx

import "fmt"

// Frame is an owned copy of a frame's content, for handing a parsed
// frame to code that outlives the next Deserialize call.
type Frame struct {
	Class   byte
	ID      byte
	Payload []byte
}

// TypeID combines class and id as class<<8 | id.
func (f Frame) TypeID() uint16 {
	return uint16(f.Class)<<8 | uint16(f.ID)
}

// Size is the wire size of the frame.
func (f Frame) Size() int {
	return len(f.Payload) + OverheadSize
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	return fmt.Sprintf("0x%02x-0x%02x [%d]", f.Class, f.ID, len(f.Payload))
}

// Frame copies out the current frame content. Only payload bytes held
// by the buffer are copied.
func (m *Message) Frame() Frame {
	f := Frame{Class: m.class, ID: m.id}
	if p := m.Payload(); len(p) > 0 {
		f.Payload = make([]byte, len(p))
		copy(f.Payload, p)
	}
	return f
}

// SetFrame initializes the message with sync bytes and the content of f,
// and updates the checksum. It returns false and leaves the message empty
// if the payload doesn't fit the buffer or the length field.
func (m *Message) SetFrame(f Frame) bool {
	m.Init(true)
	if len(f.Payload) > m.Capacity() || len(f.Payload) > 0xffff {
		m.Update()
		return false
	}
	m.class, m.id = f.Class, f.ID
	m.SetLength(uint16(len(f.Payload)))
	copy(m.payload, f.Payload)
	m.Update()
	return true
}

// EncodeFrame returns the wire bytes of f.
func EncodeFrame(f Frame) []byte {
	m := NewMessage(make([]byte, len(f.Payload)))
	m.SetFrame(f)
	out := make([]byte, m.Size())
	m.Serialize(out)
	return out
}

// DecodeFrames scans data and returns every complete frame whose checksum
// is valid, plus the number of completed frames that failed the check.
func DecodeFrames(data []byte, maxPayload int) (frames []Frame, invalid int) {
	m := NewMessage(make([]byte, maxPayload))
	for _, b := range data {
		if !m.Deserialize(b) {
			continue
		}
		if m.Valid() {
			frames = append(frames, m.Frame())
		} else {
			invalid++
		}
	}
	return
}
