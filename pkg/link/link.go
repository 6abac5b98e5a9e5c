package link

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

// Defaults of a Link.
const (
	DefaultMaxPayload     = 1024
	DefaultWriteChunk     = 64
	DefaultReadBufferSize = 256
)

// Stats counts link traffic.
type Stats struct {
	Frames  uint64 // valid frames received
	Invalid uint64 // frames dropped by checksum
	Sent    uint64 // frames sent
	Resets  uint64 // partial frames discarded on timeout
}

// Link receives and sends UBX frames over a byte stream.
type Link struct {
	stats Stats

	ReadWriter io.ReadWriter
	Handler    FrameHandler
	// WriteChunk is the max number of bytes passed to one Write.
	WriteChunk int
	// ReadBufferSize is the max number of bytes requested by one Read.
	ReadBufferSize int
	// ReadTimeout is set when ReadWriter returns (0, io.EOF) on an idle
	// read timeout instead of blocking.
	ReadTimeout bool
	// FrameTimeout discards a partially received frame when no byte
	// arrives within it. 0 disables.
	FrameTimeout time.Duration

	rx       *ubx.Message
	tx       *ubx.Message
	scratch  []byte
	sendLock sync.Mutex
}

// NewLink creates a Link accepting payloads up to maxPayload bytes.
func NewLink(rw io.ReadWriter, maxPayload int) *Link {
	if maxPayload <= 0 {
		maxPayload = DefaultMaxPayload
	}
	return &Link{
		ReadWriter:     rw,
		WriteChunk:     DefaultWriteChunk,
		ReadBufferSize: DefaultReadBufferSize,
		rx:             ubx.NewMessage(make([]byte, maxPayload)),
		tx:             ubx.NewMessage(make([]byte, maxPayload)),
	}
}

// MaxPayload is the largest payload the link can receive or send.
func (l *Link) MaxPayload() int {
	return l.rx.Capacity()
}

// Stats gets a snapshot of the counters.
func (l *Link) Stats() Stats {
	return l.stats.snapshot()
}

func (s *Stats) snapshot() Stats {
	return Stats{
		Frames:  atomic.LoadUint64(&s.Frames),
		Invalid: atomic.LoadUint64(&s.Invalid),
		Sent:    atomic.LoadUint64(&s.Sent),
		Resets:  atomic.LoadUint64(&s.Resets),
	}
}

// Send writes a frame. Concurrent calls are serialized.
func (l *Link) Send(f ubx.Frame) error {
	l.sendLock.Lock()
	defer l.sendLock.Unlock()
	if !l.tx.SetFrame(f) {
		return ErrPayloadTooLarge
	}
	chunk := l.WriteChunk
	if chunk <= 0 {
		chunk = DefaultWriteChunk
	}
	if len(l.scratch) != chunk {
		l.scratch = make([]byte, chunk)
	}
	n := 0
	for more := true; more; {
		l.scratch[n], more = l.tx.SerializeNext()
		if n++; n == chunk || !more {
			if err := l.write(l.scratch[:n]); err != nil {
				return err
			}
			n = 0
		}
	}
	atomic.AddUint64(&l.stats.Sent, 1)
	glog.V(2).Infof("SND %s", f)
	return nil
}

func (l *Link) write(p []byte) error {
	n, err := l.ReadWriter.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

// Run receives frames until the context is canceled or reading fails.
func (l *Link) Run(ctx context.Context) error {
	chunkCh, errCh := make(chan []byte), make(chan error, 1)
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go l.readLoop(subCtx, chunkCh, errCh)
	var frameTimer <-chan time.Time
	for {
		select {
		case chunk := <-chunkCh:
			l.parse(ctx, chunk)
			frameTimer = nil
			if l.FrameTimeout > 0 && l.rx.Field() != ubx.FieldSync1 {
				frameTimer = time.After(l.FrameTimeout)
			}
		case <-frameTimer:
			frameTimer = nil
			atomic.AddUint64(&l.stats.Resets, 1)
			glog.V(2).Infof("RESET at %s", l.rx.Field())
			l.rx.Init(false)
		case err := <-errCh:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Link) readLoop(ctx context.Context, chunkCh chan []byte, errCh chan error) {
	size := l.ReadBufferSize
	if size <= 0 {
		size = DefaultReadBufferSize
	}
	buf := make([]byte, size)
	for {
		n, err := l.ReadWriter.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case chunkCh <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if err == io.EOF && n == 0 && l.ReadTimeout {
			// idle port, keep the parser where it is.
			select {
			case <-ctx.Done():
				return
			default:
				continue
			}
		}
		if err != nil {
			errCh <- err
			return
		}
	}
}

func (l *Link) parse(ctx context.Context, chunk []byte) {
	parseFrames(ctx, l.rx, &l.stats, l.Handler, chunk)
}

// parseFrames feeds chunk into m and dispatches every valid frame.
func parseFrames(ctx context.Context, m *ubx.Message, stats *Stats, h FrameHandler, chunk []byte) {
	for _, b := range chunk {
		if !m.Deserialize(b) {
			continue
		}
		if !m.Valid() {
			atomic.AddUint64(&stats.Invalid, 1)
			glog.V(2).Infof("DROP 0x%02x-0x%02x: bad checksum %04x", m.Class(), m.ID(), m.Checksum())
			continue
		}
		atomic.AddUint64(&stats.Frames, 1)
		f := m.Frame()
		glog.V(2).Infof("RCV %s", f)
		if h != nil {
			h.HandleFrame(ctx, f)
		}
	}
}
