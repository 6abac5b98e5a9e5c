package mqtt

import (
	"fmt"
	"strconv"
	"strings"
)

// Topic conventions, relative to the queue prefix:
//
//   <device>/meta              retained JSON Meta
//   <device>/ubx/<class>/<id>  received frames, class and id in 2-digit hex
//   <device>/ubx/send          frames to send to the receiver
const (
	MetaSuffix = "meta"
	UBXSegment = "ubx"
	SendSuffix = "send"
)

// MetaTopic is the topic of retained device meta.
func MetaTopic(device string) string {
	return device + "/" + MetaSuffix
}

// SendTopic is the topic accepting frames to send.
func SendTopic(device string) string {
	return device + "/" + UBXSegment + "/" + SendSuffix
}

// FrameTopic is the topic a received frame is published to.
func FrameTopic(device string, class, id byte) string {
	return fmt.Sprintf("%s/%s/%02x/%02x", device, UBXSegment, class, id)
}

// FramesFilter matches all received frames of a device, or of
// all devices if device is "+".
func FramesFilter(device string) string {
	return device + "/" + UBXSegment + "/+/+"
}

// ParseFrameTopic extracts device, class and id from a frame topic.
func ParseFrameTopic(topic string) (device string, class, id byte, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 4 || items[0] == "" || items[1] != UBXSegment {
		return
	}
	c, err := strconv.ParseUint(items[2], 16, 8)
	if err != nil {
		return
	}
	i, err := strconv.ParseUint(items[3], 16, 8)
	if err != nil {
		return
	}
	return items[0], byte(c), byte(i), true
}
