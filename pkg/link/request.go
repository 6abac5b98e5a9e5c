package link

import (
	"context"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

// Request sends f and waits for the first received frame accepted by match.
func Request(ctx context.Context, s FrameSender, mux *HandlerMux, f ubx.Frame, match func(ubx.Frame) bool) (ubx.Frame, error) {
	w := mux.Wait(match)
	defer w.Close()
	if err := s.Send(f); err != nil {
		return ubx.Frame{}, err
	}
	return w.Result(ctx)
}
