package link

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

// Pipe exchanges frames over a PacketReadWriter.
// Each written packet carries exactly one frame. Received packets are
// parsed as a continuous byte stream, so a frame may span packets.
type Pipe struct {
	stats Stats

	ReadWriter PacketReadWriter
	Handler    FrameHandler

	rx       *ubx.Message
	tx       *ubx.Message
	buf      []byte
	sendLock sync.Mutex
}

// NewPipe creates a Pipe accepting payloads up to maxPayload bytes.
func NewPipe(rw PacketReadWriter, maxPayload int) *Pipe {
	if maxPayload <= 0 {
		maxPayload = DefaultMaxPayload
	}
	return &Pipe{
		ReadWriter: rw,
		rx:         ubx.NewMessage(make([]byte, maxPayload)),
		tx:         ubx.NewMessage(make([]byte, maxPayload)),
		buf:        make([]byte, maxPayload+ubx.OverheadSize),
	}
}

// Stats gets a snapshot of the counters.
func (p *Pipe) Stats() Stats {
	return p.stats.snapshot()
}

// Send writes a frame as one packet.
func (p *Pipe) Send(f ubx.Frame) error {
	p.sendLock.Lock()
	defer p.sendLock.Unlock()
	if !p.tx.SetFrame(f) {
		return ErrPayloadTooLarge
	}
	n := p.tx.Serialize(p.buf)
	if err := p.ReadWriter.WritePacket(p.buf[:n]); err != nil {
		return err
	}
	atomic.AddUint64(&p.stats.Sent, 1)
	glog.V(2).Infof("SND %s", f)
	return nil
}

// Run receives frames until reading fails.
func (p *Pipe) Run(ctx context.Context) error {
	for {
		pkt, err := p.ReadWriter.ReadPacket()
		if err != nil {
			return err
		}
		parseFrames(ctx, p.rx, &p.stats, p.Handler, pkt)
	}
}

// Close implements io.Closer, closing ReadWriter if possible.
func (p *Pipe) Close() error {
	if closer, ok := p.ReadWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
