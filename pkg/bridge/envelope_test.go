package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/robotalks/ubx.go/pkg/proto/ubx/v1"
	"github.com/robotalks/ubx.go/pkg/ubx"
)

func TestEnvelope(t *testing.T) {
	f := ubx.Frame{Class: 0x01, ID: 0x21, Payload: []byte{1, 2, 3}}
	ts := time.Unix(1700000000, 42)
	data, err := Marshal(f, "rx1", ts)
	require.NoError(t, err)

	env, decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, f, decoded)
	require.Equal(t, "rx1", env.GetDevice())
	require.Equal(t, ts.UnixNano(), env.GetReceivedAt())

	require.Equal(t, int64(0), ToProto(f, "", time.Time{}).ReceivedAt)
}

func TestFromProtoInvalid(t *testing.T) {
	_, err := FromProto(&pb.Frame{Class: 0x100})
	require.Error(t, err)
	_, err = FromProto(&pb.Frame{Id: 0x1ff})
	require.Error(t, err)
	_, _, err = Unmarshal([]byte{0xff})
	require.Error(t, err)
}
