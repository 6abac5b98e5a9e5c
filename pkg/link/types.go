package link

import (
	"context"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

// FrameHandler is called when a valid frame is received.
type FrameHandler interface {
	HandleFrame(context.Context, ubx.Frame)
}

// HandleFrameFunc is func type of FrameHandler.
type HandleFrameFunc func(context.Context, ubx.Frame)

// HandleFrame implements FrameHandler.
func (f HandleFrameFunc) HandleFrame(ctx context.Context, frame ubx.Frame) {
	f(ctx, frame)
}

// FrameSender sends frames.
type FrameSender interface {
	Send(ubx.Frame) error
}

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}
