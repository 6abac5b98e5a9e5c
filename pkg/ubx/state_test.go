package ubx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	var s State
	require.Equal(t, FieldSync1, s.Current())
	expected := []Field{
		FieldSync2, FieldClass, FieldID, FieldLength0, FieldLength1,
		FieldPayload, FieldChecksumA, FieldChecksumB, FieldSync1, FieldSync2,
	}
	for n, f := range expected {
		s.Advance()
		require.Equalf(t, f, s.Current(), "advance[%d]", n)
	}
	s.Reset()
	require.Equal(t, FirstField, s.Current())
	s.Reset()
	require.Equal(t, FirstField, s.Current())
}

func TestStateWrap(t *testing.T) {
	var s State
	for s.Current() != LastField {
		s.Advance()
	}
	s.Advance()
	require.Equal(t, FirstField, s.Current())
}

func TestFieldString(t *testing.T) {
	require.Equal(t, "sync1", FieldSync1.String())
	require.Equal(t, "payload", FieldPayload.String())
	require.Equal(t, "ck_b", FieldChecksumB.String())
	require.Equal(t, "invalid", Field(-1).String())
	require.Equal(t, "invalid", (LastField + 1).String())
}
