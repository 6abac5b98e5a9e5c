// Package link runs the UBX codec over a byte stream.
//
// A Link owns two codecs: one fed by the receive loop and one used to
// emit outbound frames, so both directions can run concurrently without
// sharing a field cursor. Only frames passing the checksum reach the
// handler; the rest are counted and dropped.
//
// A Pipe carries frames over message-oriented transports instead, one
// frame per written packet.
package link
