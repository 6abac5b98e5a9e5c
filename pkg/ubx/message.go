package ubx

// Sync bytes starting every frame.
const (
	Sync1 byte = 0xb5
	Sync2 byte = 0x62
)

// OverheadSize is the number of non-payload bytes in a frame.
const OverheadSize = 8

// Message holds one UBX frame and parses/emits it byte by byte.
//
// The payload buffer is borrowed from the caller and never resized.
// A Message without a buffer is valid: payload bytes are dropped while
// parsing and emitted as zeros by Serialize.
//
// A Message is not safe for concurrent use. Deserialize and SerializeNext
// share the same field cursor and must not be interleaved.
type Message struct {
	sync1   byte
	sync2   byte
	class   byte
	id      byte
	length0 byte
	length1 byte
	chkA    byte
	chkB    byte

	payload []byte
	counter uint16
	null    byte
	state   State
}

// NewMessage creates a Message backed by buf. buf may be nil.
func NewMessage(buf []byte) *Message {
	m := &Message{}
	if len(buf) > 0 {
		m.payload = buf
	}
	return m
}

// Init zeros all fields and the payload buffer and rewinds the parser.
// With setHeaders the sync bytes are primed for building an outbound frame.
func (m *Message) Init(setHeaders bool) {
	if setHeaders {
		m.sync1, m.sync2 = Sync1, Sync2
	} else {
		m.sync1, m.sync2 = 0, 0
	}
	m.class, m.id = 0, 0
	m.length0, m.length1 = 0, 0
	m.chkA, m.chkB = 0, 0
	for i := range m.payload {
		m.payload[i] = 0
	}
	m.state.Reset()
	m.counter = 0
}

// Class gets the message class.
func (m *Message) Class() byte { return m.class }

// SetClass sets the message class.
func (m *Message) SetClass(c byte) { m.class = c }

// ID gets the message id.
func (m *Message) ID() byte { return m.id }

// SetID sets the message id.
func (m *Message) SetID(id byte) { m.id = id }

// Length gets the declared payload length.
func (m *Message) Length() uint16 {
	return uint16(m.length0) | uint16(m.length1)<<8
}

// SetLength sets the declared payload length.
func (m *Message) SetLength(l uint16) {
	m.length0 = byte(l)
	m.length1 = byte(l >> 8)
}

// Sync gets the stored sync bytes.
func (m *Message) Sync() (byte, byte) { return m.sync1, m.sync2 }

// SetSync overrides the stored sync bytes.
func (m *Message) SetSync(s1, s2 byte) { m.sync1, m.sync2 = s1, s2 }

// ChecksumBytes gets the stored checksum bytes.
func (m *Message) ChecksumBytes() (a, b byte) { return m.chkA, m.chkB }

// SetChecksumBytes overrides the stored checksum bytes.
func (m *Message) SetChecksumBytes(a, b byte) { m.chkA, m.chkB = a, b }

// Capacity is the size of the payload buffer, 0 if there is none.
func (m *Message) Capacity() int { return len(m.payload) }

// Size is the wire size of the frame as declared by its length.
func (m *Message) Size() int { return int(m.Length()) + OverheadSize }

// Field returns where the parser currently is.
func (m *Message) Field() Field { return m.state.Current() }

// Buffer returns the whole borrowed payload buffer.
func (m *Message) Buffer() []byte { return m.payload }

// Payload returns the payload bytes held in the buffer, at most Length().
func (m *Message) Payload() []byte {
	if m.payload == nil {
		return nil
	}
	return m.payload[:m.heldLength()]
}

// At gives indexed access to the payload buffer.
// Indices past the buffer are clamped to its last byte. Without a buffer
// a dummy byte is returned; writes to it do not affect the frame.
func (m *Message) At(index uint16) *byte {
	if m.payload == nil {
		return &m.null
	}
	if int(index) < len(m.payload) {
		return &m.payload[index]
	}
	return &m.payload[len(m.payload)-1]
}

// Update stores the freshly computed checksum.
// It must be called after any change to class, id, length or payload.
func (m *Message) Update() {
	m.chkA, m.chkB = m.checksum()
}

// Checksum computes the checksum, with CK_A in the low byte.
func (m *Message) Checksum() uint16 {
	a, b := m.checksum()
	return uint16(b)<<8 | uint16(a)
}

// Valid reports whether the stored checksum matches the frame content.
func (m *Message) Valid() bool {
	a, b := m.checksum()
	return a == m.chkA && b == m.chkB
}

// checksum covers class, id, length and the payload bytes the buffer can
// hold. Bytes of an oversized declared length that never fit the buffer
// are not part of it.
func (m *Message) checksum() (a, b byte) {
	for _, v := range [...]byte{m.class, m.id, m.length0, m.length1} {
		a += v
		b += a
	}
	for _, v := range m.Payload() {
		a += v
		b += a
	}
	return
}

func (m *Message) heldLength() int {
	if l := int(m.Length()); l < len(m.payload) {
		return l
	}
	return len(m.payload)
}

// payloadPending reports whether the payload step can consume or produce
// one more byte.
func (m *Message) payloadPending() bool {
	return m.payload != nil &&
		m.counter < m.Length() &&
		int(m.counter) < len(m.payload)
}

// Deserialize consumes one byte. It returns true on the byte completing a
// frame. Use Valid to check the frame before using it.
func (m *Message) Deserialize(b byte) bool {
	switch m.state.Current() {
	case FieldSync1:
		if b == Sync1 {
			m.sync1 = b
			m.state.Advance()
		}
	case FieldSync2:
		if b == Sync2 {
			m.sync2 = b
			m.state.Advance()
		} else {
			m.state.Reset()
		}
	case FieldClass:
		m.class = b
		m.state.Advance()
	case FieldID:
		m.id = b
		m.state.Advance()
	case FieldLength0:
		m.length0 = b
		m.state.Advance()
	case FieldLength1:
		m.length1 = b
		m.counter = 0
		m.state.Advance()
	case FieldPayload:
		if m.payloadPending() {
			m.payload[m.counter] = b
			m.counter++
			return false
		}
		// payload is exhausted, this byte is CK_A.
		m.state.Advance()
		m.deserializeChecksumA(b)
	case FieldChecksumA:
		m.deserializeChecksumA(b)
	case FieldChecksumB:
		m.chkB = b
		m.state.Reset()
		return true
	}
	return false
}

func (m *Message) deserializeChecksumA(b byte) {
	m.chkA = b
	m.state.Advance()
}

// SerializeNext emits the next byte of the frame. more is false when the
// returned byte is the last one; that byte must still be sent.
func (m *Message) SerializeNext() (b byte, more bool) {
	switch m.state.Current() {
	case FieldSync1:
		b = m.sync1
	case FieldSync2:
		b = m.sync2
	case FieldClass:
		b = m.class
	case FieldID:
		b = m.id
	case FieldLength0:
		b = m.length0
	case FieldLength1:
		b = m.length1
		m.counter = 0
	case FieldPayload:
		if m.payloadPending() {
			b = m.payload[m.counter]
			m.counter++
			return b, true
		}
		// payload is exhausted, emit CK_A instead.
		m.state.Advance()
		return m.serializeChecksumA(), true
	case FieldChecksumA:
		return m.serializeChecksumA(), true
	case FieldChecksumB:
		m.state.Reset()
		return m.chkB, false
	}
	m.state.Advance()
	return b, true
}

func (m *Message) serializeChecksumA() byte {
	m.state.Advance()
	return m.chkA
}

// Serialize writes the whole frame into dst and returns the number of
// bytes written. If dst is shorter than Size(), nothing is written and 0
// is returned. Payload bytes not held by the buffer are written as zeros.
func (m *Message) Serialize(dst []byte) int {
	size := m.Size()
	if len(dst) < size {
		return 0
	}
	dst[0], dst[1] = m.sync1, m.sync2
	dst[2], dst[3] = m.class, m.id
	dst[4], dst[5] = m.length0, m.length1
	payload := dst[6 : size-2]
	n := copy(payload, m.Payload())
	for i := n; i < len(payload); i++ {
		payload[i] = 0
	}
	dst[size-2], dst[size-1] = m.chkA, m.chkB
	return size
}
