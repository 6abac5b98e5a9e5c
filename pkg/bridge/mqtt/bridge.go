package mqtt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/ubx.go/pkg/bridge"
	"github.com/robotalks/ubx.go/pkg/link"
	"github.com/robotalks/ubx.go/pkg/ubx"
)

// Meta is published retained to the meta topic while the bridge is up.
type Meta struct {
	Device     string `json:"device"`
	Port       string `json:"port,omitempty"`
	Baud       int    `json:"baud,omitempty"`
	MaxPayload int    `json:"max-payload"`
}

// Bridge publishes received frames to MQTT and sends frames
// published to the send topic.
type Bridge struct {
	Queue  *Queue
	Meta   Meta
	Sender link.FrameSender

	metaJSON []byte
	now      func() time.Time
}

// NewBridge creates a Bridge connected to brokerURL.
func NewBridge(brokerURL string, meta Meta, sender link.FrameSender) (*Bridge, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+MetaTopic(meta.Device), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("ubx:" + meta.Device)
	}
	b := newBridge(NewQueue(opts, topicPrefix), meta, sender)
	b.Queue.OnConnect = func(*Queue) { b.publishMeta() }
	return b, nil
}

func newBridge(q *Queue, meta Meta, sender link.FrameSender) *Bridge {
	metaJSON, err := json.Marshal(&meta)
	if err != nil {
		panic(err)
	}
	return &Bridge{
		Queue:    q,
		Meta:     meta,
		Sender:   sender,
		metaJSON: metaJSON,
		now:      time.Now,
	}
}

// HandleFrame implements link.FrameHandler.
func (b *Bridge) HandleFrame(ctx context.Context, f ubx.Frame) {
	data, err := bridge.Marshal(f, b.Meta.Device, b.now())
	if err != nil {
		glog.Errorf("encode %s error: %v", f, err)
		return
	}
	b.Queue.Pub(FrameTopic(b.Meta.Device, f.Class, f.ID), data)
}

// Run implements Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	sub := b.Queue.Sub(SendTopic(b.Meta.Device), b.handleSend)
	defer sub.Close()
	token := b.Queue.Connect()
	if token.Wait(); token.Error() != nil {
		return token.Error()
	}
	<-ctx.Done()
	b.Queue.PubWith(MetaTopic(b.Meta.Device), nil, 1, true).WaitTimeout(time.Second)
	b.Queue.Close()
	return ctx.Err()
}

func (b *Bridge) publishMeta() {
	b.Queue.PubWith(MetaTopic(b.Meta.Device), b.metaJSON, 1, true)
}

func (b *Bridge) handleSend(topic string, payload []byte) {
	_, f, err := bridge.Unmarshal(payload)
	if err != nil {
		glog.Errorf("%s: invalid frame: %v", topic, err)
		return
	}
	if b.Sender == nil {
		glog.Warningf("%s: no sender, dropped %s", topic, f)
		return
	}
	if err := b.Sender.Send(f); err != nil {
		glog.Errorf("send %s error: %v", f, err)
	}
}
