// Package mqtt bridges a UBX link to an MQTT broker.
//
// Each valid received frame is published as a protobuf ubx.v1.Frame to
// <prefix><device>/ubx/<class>/<id>. Frames published to
// <prefix><device>/ubx/send are written to the receiver.
package mqtt
