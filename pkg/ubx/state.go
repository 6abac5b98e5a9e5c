package ubx

// Field identifies a field in a UBX frame, in wire order.
type Field int

const (
	// FieldSync1 is the first sync byte (0xB5).
	FieldSync1 Field = iota
	// FieldSync2 is the second sync byte (0x62).
	FieldSync2
	// FieldClass is the message class.
	FieldClass
	// FieldID is the message id.
	FieldID
	// FieldLength0 is the low byte of payload length.
	FieldLength0
	// FieldLength1 is the high byte of payload length.
	FieldLength1
	// FieldPayload covers all payload bytes.
	FieldPayload
	// FieldChecksumA is the first checksum byte.
	FieldChecksumA
	// FieldChecksumB is the last checksum byte.
	FieldChecksumB
)

// FirstField and LastField bound the field sequence.
const (
	FirstField = FieldSync1
	LastField  = FieldChecksumB
)

var nextField = [...]Field{
	FieldSync1:     FieldSync2,
	FieldSync2:     FieldClass,
	FieldClass:     FieldID,
	FieldID:        FieldLength0,
	FieldLength0:   FieldLength1,
	FieldLength1:   FieldPayload,
	FieldPayload:   FieldChecksumA,
	FieldChecksumA: FieldChecksumB,
	FieldChecksumB: FieldSync1,
}

var fieldNames = [...]string{
	FieldSync1:     "sync1",
	FieldSync2:     "sync2",
	FieldClass:     "class",
	FieldID:        "id",
	FieldLength0:   "length0",
	FieldLength1:   "length1",
	FieldPayload:   "payload",
	FieldChecksumA: "ck_a",
	FieldChecksumB: "ck_b",
}

// String implements fmt.Stringer.
func (f Field) String() string {
	if f < FirstField || f > LastField {
		return "invalid"
	}
	return fieldNames[f]
}

// State is the cursor over frame fields. The zero value is at FirstField.
type State struct {
	field Field
}

// Current returns the active field.
func (s *State) Current() Field {
	return s.field
}

// Advance moves to the next field, wrapping from LastField to FirstField.
func (s *State) Advance() {
	s.field = nextField[s.field]
}

// Reset moves the cursor back to FirstField.
func (s *State) Reset() {
	s.field = FirstField
}
