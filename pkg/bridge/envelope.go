// Package bridge carries UBX frames between a link and remote consumers.
package bridge

import (
	"fmt"
	"time"

	"github.com/golang/protobuf/proto"

	pb "github.com/robotalks/ubx.go/pkg/proto/ubx/v1"
	"github.com/robotalks/ubx.go/pkg/ubx"
)

// ToProto wraps a frame into the envelope.
func ToProto(f ubx.Frame, device string, receivedAt time.Time) *pb.Frame {
	env := &pb.Frame{
		Class:   uint32(f.Class),
		Id:      uint32(f.ID),
		Payload: f.Payload,
		Device:  device,
	}
	if !receivedAt.IsZero() {
		env.ReceivedAt = receivedAt.UnixNano()
	}
	return env
}

// FromProto extracts the frame from the envelope.
func FromProto(env *pb.Frame) (ubx.Frame, error) {
	if env.GetClass() > 0xff || env.GetId() > 0xff {
		return ubx.Frame{}, fmt.Errorf("invalid class/id: %x/%x", env.GetClass(), env.GetId())
	}
	if len(env.GetPayload()) > 0xffff {
		return ubx.Frame{}, fmt.Errorf("payload too large: %d", len(env.GetPayload()))
	}
	return ubx.Frame{
		Class:   byte(env.GetClass()),
		ID:      byte(env.GetId()),
		Payload: env.GetPayload(),
	}, nil
}

// Marshal encodes a frame as envelope bytes.
func Marshal(f ubx.Frame, device string, receivedAt time.Time) ([]byte, error) {
	return proto.Marshal(ToProto(f, device, receivedAt))
}

// Unmarshal decodes envelope bytes.
func Unmarshal(data []byte) (*pb.Frame, ubx.Frame, error) {
	var env pb.Frame
	if err := proto.Unmarshal(data, &env); err != nil {
		return nil, ubx.Frame{}, err
	}
	f, err := FromProto(&env)
	return &env, f, err
}
