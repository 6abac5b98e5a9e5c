package link

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

type packetQueue struct {
	in     [][]byte
	out    [][]byte
	err    error
	closed bool
}

func (q *packetQueue) ReadPacket() ([]byte, error) {
	if len(q.in) == 0 {
		return nil, io.EOF
	}
	pkt := q.in[0]
	q.in = q.in[1:]
	return pkt, nil
}

func (q *packetQueue) WritePacket(pkt []byte) error {
	if q.err != nil {
		return q.err
	}
	q.out = append(q.out, append([]byte{}, pkt...))
	return nil
}

func (q *packetQueue) Close() error {
	q.closed = true
	return nil
}

func TestPipeSend(t *testing.T) {
	q := &packetQueue{}
	p := NewPipe(q, 4)
	f1 := ubx.Frame{Class: 0x06, ID: 0x08, Payload: []byte{0xe8, 0x03, 1, 0}}
	f2 := ubx.Frame{Class: 0x0a, ID: 0x04}
	require.NoError(t, p.Send(f1))
	require.NoError(t, p.Send(f2))
	require.Equal(t, [][]byte{ubx.EncodeFrame(f1), ubx.EncodeFrame(f2)}, q.out)
	require.Equal(t, ErrPayloadTooLarge, p.Send(ubx.Frame{Payload: make([]byte, 5)}))

	q.err = errors.New("closed")
	require.Equal(t, q.err, p.Send(f2))
	require.Equal(t, uint64(2), p.Stats().Sent)

	require.NoError(t, p.Close())
	require.True(t, q.closed)
}

func TestPipeRun(t *testing.T) {
	f1 := ubx.Frame{Class: 0x05, ID: 0x01, Payload: []byte{0x06, 0x08}}
	f2 := ubx.Frame{Class: 0x01, ID: 0x21, Payload: []byte{9}}
	wire1, wire2 := ubx.EncodeFrame(f1), ubx.EncodeFrame(f2)
	bad := ubx.EncodeFrame(f2)
	bad[6] = 0

	q := &packetQueue{in: [][]byte{
		wire1[:3],
		append(append([]byte{}, wire1[3:]...), bad...),
		wire2,
	}}
	p := NewPipe(q, 0)
	var frames []ubx.Frame
	p.Handler = HandleFrameFunc(func(ctx context.Context, f ubx.Frame) {
		frames = append(frames, f)
	})
	require.Equal(t, io.EOF, p.Run(context.Background()))
	require.Equal(t, []ubx.Frame{f1, f2}, frames)
	require.Equal(t, Stats{Frames: 2, Invalid: 1}, p.Stats())
}
