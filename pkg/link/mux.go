package link

import (
	"container/list"
	"context"
	"sync"

	"github.com/robotalks/ubx.go/pkg/ubx"
)

// HandlerMux dispatches frames to all subscribed handlers.
// The zero value is ready for use.
type HandlerMux struct {
	subs list.List
	lock sync.RWMutex
}

// Subscription is a handler added to HandlerMux.
type Subscription struct {
	mux     *HandlerMux
	elm     *list.Element
	handler FrameHandler
}

// Add subscribes a handler.
func (m *HandlerMux) Add(h FrameHandler) *Subscription {
	sub := &Subscription{mux: m, handler: h}
	m.lock.Lock()
	sub.elm = m.subs.PushBack(sub)
	m.lock.Unlock()
	return sub
}

// Len is the number of subscriptions.
func (m *HandlerMux) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.subs.Len()
}

// HandleFrame implements FrameHandler.
func (m *HandlerMux) HandleFrame(ctx context.Context, f ubx.Frame) {
	m.lock.RLock()
	handlers := make([]FrameHandler, 0, m.subs.Len())
	for elm := m.subs.Front(); elm != nil; elm = elm.Next() {
		handlers = append(handlers, elm.Value.(*Subscription).handler)
	}
	m.lock.RUnlock()
	for _, h := range handlers {
		h.HandleFrame(ctx, f)
	}
}

// Close unsubscribes the handler.
func (s *Subscription) Close() error {
	s.mux.lock.Lock()
	if s.elm != nil {
		s.mux.subs.Remove(s.elm)
		s.elm = nil
	}
	s.mux.lock.Unlock()
	return nil
}

// Waiter waits for a frame matching a condition.
type Waiter struct {
	sub    *Subscription
	match  func(ubx.Frame) bool
	result chan ubx.Frame
}

// Wait subscribes for the first frame accepted by match.
// Call it before sending the request, and Close the Waiter when done.
func (m *HandlerMux) Wait(match func(ubx.Frame) bool) *Waiter {
	w := &Waiter{match: match, result: make(chan ubx.Frame, 1)}
	w.sub = m.Add(w)
	return w
}

// HandleFrame implements FrameHandler.
func (w *Waiter) HandleFrame(ctx context.Context, f ubx.Frame) {
	if !w.match(f) {
		return
	}
	select {
	case w.result <- f:
	default:
	}
}

// ResultChan returns the chan to retrieve the matched frame.
func (w *Waiter) ResultChan() <-chan ubx.Frame {
	return w.result
}

// Result waits for the matched frame or the context.
func (w *Waiter) Result(ctx context.Context) (ubx.Frame, error) {
	select {
	case f := <-w.result:
		return f, nil
	case <-ctx.Done():
		return ubx.Frame{}, ctx.Err()
	}
}

// Close implements io.Closer.
func (w *Waiter) Close() error {
	return w.sub.Close()
}

// MatchType matches frames of class and id.
func MatchType(class, id byte) func(ubx.Frame) bool {
	return func(f ubx.Frame) bool {
		return f.Class == class && f.ID == id
	}
}
