package sh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/ubx.go/pkg/ubx"
	"github.com/robotalks/ubx.go/pkg/ubx/msgs"
)

func TestParseHex(t *testing.T) {
	testCases := []struct {
		args []string
		data []byte
		fail bool
	}{
		{nil, nil, false},
		{[]string{"b562"}, []byte{0xb5, 0x62}, false},
		{[]string{"0xB5", "62", "0a:04"}, []byte{0xb5, 0x62, 0x0a, 0x04}, false},
		{[]string{"b5 62"}, []byte{0xb5, 0x62}, false},
		{[]string{"b"}, nil, true},
		{[]string{"zz"}, nil, true},
	}
	for _, tc := range testCases {
		data, err := ParseHex(tc.args)
		if tc.fail {
			require.Error(t, err, "%v", tc.args)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.data, data)
	}
}

func TestParseFrame(t *testing.T) {
	f, err := ParseFrame([]string{"mon-ver"})
	require.NoError(t, err)
	require.Equal(t, ubx.Frame{Class: 0x0a, ID: 0x04}, f)

	f, err = ParseFrame([]string{"0x06", "08", "e803", "0100", "0100"})
	require.NoError(t, err)
	require.Equal(t, ubx.Frame{Class: 0x06, ID: 0x08, Payload: []byte{0xe8, 0x03, 1, 0, 1, 0}}, f)

	typeID, rest, err := ParseType([]string{"NAV-TIMEUTC", "x"})
	require.NoError(t, err)
	require.Equal(t, msgs.NavTimeUTCTypeID, typeID)
	require.Equal(t, []string{"x"}, rest)

	for _, args := range [][]string{nil, {"FOO"}, {"100", "01"}, {"01", "g1"}, {"01", "02", "x"}} {
		_, err = ParseFrame(args)
		require.Error(t, err, "%v", args)
	}
}

func TestFormatHex(t *testing.T) {
	require.Equal(t, "", FormatHex(nil))
	require.Equal(t, "B5 62 0A 04 00 00 0E 34", FormatHex(ubx.EncodeFrame(ubx.Frame{Class: 0x0a, ID: 0x04})))
}
