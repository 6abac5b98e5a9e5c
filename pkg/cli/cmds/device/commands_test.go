package device

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/ubx.go/pkg/ubx"
	"github.com/robotalks/ubx.go/pkg/ubx/msgs"
)

func TestMatchAck(t *testing.T) {
	rate := msgs.Encode(&msgs.CfgRate{MeasRate: 1000, NavRate: 1, TimeRef: 1})
	require.True(t, IsCfg(rate))
	require.False(t, IsCfg(msgs.Poll(msgs.CfgRateTypeID)))
	require.False(t, IsCfg(msgs.Poll(msgs.MonVerTypeID)))

	match := MatchAck(rate)
	testCases := []struct {
		name  string
		frame ubx.Frame
		match bool
	}{
		{"ack", msgs.Encode(&msgs.AckAck{ClsID: 0x06, MsgID: 0x08}), true},
		{"nak", msgs.Encode(&msgs.AckNak{ClsID: 0x06, MsgID: 0x08}), true},
		{"other ack", msgs.Encode(&msgs.AckAck{ClsID: 0x06, MsgID: 0x31}), false},
		{"short", ubx.Frame{Class: 0x05, ID: 0x01, Payload: []byte{0x06}}, false},
		{"not ack", ubx.Frame{Class: 0x06, ID: 0x08, Payload: []byte{0x06, 0x08}}, false},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.match, match(tc.frame), tc.name)
	}
}
