package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

func TestChecksum(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		a, b byte
	}{
		{"mon-ver poll", []byte{0x0a, 0x04, 0x00, 0x00}, 0x0e, 0x34},
		{"with payload", []byte{0x01, 0x02, 0x02, 0x00, 0xaa, 0xbb}, 0x6a, 0x27},
		{"extra bytes ignored", []byte{0x01, 0x02, 0x02, 0x00, 0xaa, 0xbb, 0xcc}, 0x6a, 0x27},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Checksum(tc.data)
			require.NoError(t, err)
			require.Equal(t, tc.a, res.A)
			require.Equal(t, tc.b, res.B)
			require.Equal(t, uint16(tc.b)<<8|uint16(tc.a), res.Value)
		})
	}
	_, err := Checksum([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestDecode(t *testing.T) {
	ack := ubx.EncodeFrame(ubx.Frame{Class: 0x05, ID: 0x01, Payload: []byte{0x06, 0x08}})
	bad := ubx.EncodeFrame(ubx.Frame{Class: 0x0a, ID: 0x04})
	bad[7]++
	data := append(append([]byte{0x00, 0xff}, bad...), ack...)

	res := Decode(data, 16)
	require.Equal(t, 1, res.Invalid)
	require.Len(t, res.Frames, 1)
	require.Equal(t, "ACK-ACK", res.Frames[0].Type)

	res = Decode(nil, 16)
	require.Equal(t, 0, res.Invalid)
	require.NotNil(t, res.Frames)
	require.Empty(t, res.Frames)
}
