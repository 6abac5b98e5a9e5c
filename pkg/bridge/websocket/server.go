// Package websocket bridges a UBX link to WebSocket clients.
//
// Every valid frame received by the link is written to each client as one
// binary message holding the raw frame. Bytes sent by a client are parsed
// as a UBX stream and valid frames are forwarded to the link.
package websocket

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/ubx.go/pkg/framework"
	"github.com/robotalks/ubx.go/pkg/link"
	"github.com/robotalks/ubx.go/pkg/ubx"
)

// DefaultPath is where the handler is mounted by Run.
const DefaultPath = "/ubx"

// DefaultQueueSize is the number of frames buffered per client.
const DefaultQueueSize = 64

// Server serves WebSocket clients.
type Server struct {
	Addr   string
	Mux    *link.HandlerMux
	Sender link.FrameSender
	// MaxPayload limits frames in both directions.
	MaxPayload int
	QueueSize  int
}

// Handler creates the websocket.Handler serving one client per connection.
func (s *Server) Handler() websocket.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		defer conn.Close()
		glog.Infof("websocket client %s connected", conn.Request().RemoteAddr)
		err := s.Serve(conn.Request().Context(), New(conn))
		glog.Infof("websocket client %s disconnected: %v", conn.Request().RemoteAddr, err)
	})
}

// Serve runs a session over rw until reading fails or ctx is done.
func (s *Server) Serve(ctx context.Context, rw link.PacketReadWriter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pipe := link.NewPipe(rw, s.MaxPayload)
	pipe.Handler = link.HandleFrameFunc(s.forward)

	queueSize := s.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	frameCh := make(chan ubx.Frame, queueSize)
	sub := s.Mux.Add(link.HandleFrameFunc(func(ctx context.Context, f ubx.Frame) {
		select {
		case frameCh <- f:
		default:
			glog.Warningf("websocket client too slow, dropped %s", f)
		}
	}))
	defer sub.Close()

	writeErrCh := make(chan error, 1)
	go func() {
		writeErrCh <- writeLoop(ctx, pipe, frameCh)
		cancel()
	}()

	readErrCh := make(chan error, 1)
	go func() {
		readErrCh <- pipe.Run(ctx)
	}()

	select {
	case err := <-readErrCh:
		cancel()
		<-writeErrCh
		return err
	case <-ctx.Done():
		err := <-writeErrCh
		if err == nil {
			err = ctx.Err()
		}
		return err
	}
}

func (s *Server) forward(ctx context.Context, f ubx.Frame) {
	glog.V(2).Infof("WS RCV %s", f)
	if s.Sender == nil {
		return
	}
	if err := s.Sender.Send(f); err != nil {
		glog.Errorf("send %s error: %v", f, err)
	}
}

func writeLoop(ctx context.Context, pipe *link.Pipe, frameCh <-chan ubx.Frame) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-frameCh:
			err := pipe.Send(f)
			if err == link.ErrPayloadTooLarge {
				glog.Warningf("websocket: frame too large %s", f)
				continue
			}
			if err != nil {
				return err
			}
		}
	}
}

// Run implements Runnable, listening on Addr.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle(DefaultPath, s.Handler())
	server := &http.Server{Handler: mux}
	glog.Infof("websocket listening on %s%s", ln.Addr(), DefaultPath)
	return fx.RunWithContextCloser(ctx, server, func() error {
		return server.Serve(ln)
	})
}
