package ubx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetFrame(t *testing.T) {
	m := NewMessage(make([]byte, 4))
	require.True(t, m.SetFrame(Frame{Class: 0x06, ID: 0x08, Payload: []byte{0xe8, 0x03, 0x01, 0x00}}))
	require.True(t, m.Valid())
	require.Equal(t, uint16(4), m.Length())
	require.Equal(t, uint16(0x0608), Frame{Class: 0x06, ID: 0x08}.TypeID())

	require.False(t, m.SetFrame(Frame{Class: 0x06, ID: 0x08, Payload: make([]byte, 5)}))
	require.Equal(t, uint16(0), m.Length())
	require.Equal(t, byte(0), m.Class())
	require.True(t, m.Valid())
}

func TestEncodeDecodeFrames(t *testing.T) {
	f1 := Frame{Class: 0x05, ID: 0x01, Payload: []byte{0x06, 0x08}}
	f2 := Frame{Class: 0x0a, ID: 0x04}
	bad := EncodeFrame(Frame{Class: 0x01, ID: 0x07, Payload: []byte{1}})
	bad[len(bad)-1]++

	var stream []byte
	stream = append(stream, 0x00, Sync1, 0x13)
	stream = append(stream, EncodeFrame(f1)...)
	stream = append(stream, bad...)
	stream = append(stream, EncodeFrame(f2)...)

	frames, invalid := DecodeFrames(stream, 16)
	require.Equal(t, []Frame{f1, f2}, frames)
	require.Equal(t, 1, invalid)
	require.Equal(t, 10, f1.Size())
	require.Equal(t, "0x05-0x01 [2]", f1.String())
}
