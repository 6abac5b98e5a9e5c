package msgs

import "fmt"

// ErrUnknownType indicates no message is registered for the type.
type ErrUnknownType struct {
	TypeID TypeID
}

// Error implements error.
func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %s", e.TypeID)
}

// ErrShortPayload indicates the payload is shorter than the message requires.
type ErrShortPayload struct {
	TypeID TypeID
	Expect int
	Actual int
}

// Error implements error.
func (e *ErrShortPayload) Error() string {
	return fmt.Sprintf("%s: payload too short: %d < %d", e.TypeID, e.Actual, e.Expect)
}

func checkLen(typeID TypeID, payload []byte, expect int) error {
	if len(payload) < expect {
		return &ErrShortPayload{TypeID: typeID, Expect: expect, Actual: len(payload)}
	}
	return nil
}
