package mqtt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/ubx.go/pkg/bridge"
	"github.com/robotalks/ubx.go/pkg/ubx"
)

type recordSender struct {
	frames []ubx.Frame
	err    error
}

func (s *recordSender) Send(f ubx.Frame) error {
	s.frames = append(s.frames, f)
	return s.err
}

func TestBridgeHandleFrame(t *testing.T) {
	client := &fakeClient{}
	b := newBridge(&Queue{Client: client, TopicPrefix: "gnss/"}, Meta{Device: "rx1", MaxPayload: 512}, nil)
	ts := time.Unix(1600000000, 0)
	b.now = func() time.Time { return ts }

	f := ubx.Frame{Class: 0x01, ID: 0x21, Payload: []byte{1, 2, 3}}
	b.HandleFrame(context.Background(), f)
	require.Len(t, client.pubs, 1)
	require.Equal(t, "gnss/rx1/ubx/01/21", client.pubs[0].topic)
	require.False(t, client.pubs[0].retained)

	env, decoded, err := bridge.Unmarshal(client.pubs[0].payload)
	require.NoError(t, err)
	require.Equal(t, f, decoded)
	require.Equal(t, "rx1", env.GetDevice())
	require.Equal(t, ts.UnixNano(), env.GetReceivedAt())

	b.publishMeta()
	require.Len(t, client.pubs, 2)
	require.Equal(t, "gnss/rx1/meta", client.pubs[1].topic)
	require.True(t, client.pubs[1].retained)
	require.JSONEq(t, `{"device":"rx1","max-payload":512}`, string(client.pubs[1].payload))
}

func TestBridgeHandleSend(t *testing.T) {
	sender := &recordSender{}
	b := newBridge(&Queue{Client: &fakeClient{}}, Meta{Device: "rx1"}, sender)

	poll := ubx.Frame{Class: 0x0a, ID: 0x04}
	data, err := bridge.Marshal(poll, "cli", time.Time{})
	require.NoError(t, err)
	b.handleSend(SendTopic("rx1"), data)
	b.handleSend(SendTopic("rx1"), []byte{0xff, 0xff})
	sender.err = errors.New("port closed")
	b.handleSend(SendTopic("rx1"), data)
	require.Len(t, sender.frames, 2)
	require.Equal(t, poll.Class, sender.frames[0].Class)
	require.Equal(t, poll.ID, sender.frames[0].ID)
	require.Empty(t, sender.frames[0].Payload)
}
