package sh

import (
	"fmt"
	"reflect"

	"github.com/robotalks/ubx.go/pkg/ubx"
	"github.com/robotalks/ubx.go/pkg/ubx/msgs"
)

// FrameInfo describes a frame for display.
type FrameInfo struct {
	Type    string       `json:"type"`
	Class   byte         `json:"class"`
	ID      byte         `json:"id"`
	Payload string       `json:"payload"`
	Message msgs.Message `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Describe decodes a frame using registered message types.
func Describe(f ubx.Frame) FrameInfo {
	typeID := msgs.TypeIDOf(f.Class, f.ID)
	info := FrameInfo{
		Type:    typeID.String(),
		Class:   f.Class,
		ID:      f.ID,
		Payload: FormatHex(f.Payload),
	}
	msg, err := msgs.Decode(f)
	switch err.(type) {
	case nil:
		info.Message = msg
	case *msgs.ErrUnknownType:
	default:
		info.Error = err.Error()
	}
	return info
}

// String implements fmt.Stringer.
func (i FrameInfo) String() string {
	s := fmt.Sprintf("%s [%s]", i.Type, i.Payload)
	if i.Message != nil {
		s += fmt.Sprintf(" %s%+v", reflect.Indirect(reflect.ValueOf(i.Message)).Type().Name(),
			reflect.Indirect(reflect.ValueOf(i.Message)).Interface())
	}
	if i.Error != "" {
		s += " error: " + i.Error
	}
	return s
}
