// Package ubx provides the UBX frame codec.
//
// UBX frames are exchanged between a GNSS receiver and its host over a
// byte-oriented link (usually a serial port):
//
//   0xB5 0x62 CLASS ID LEN_LO LEN_HI PAYLOAD... CK_A CK_B
//
// Message parses a stream one byte at a time and can emit a frame either
// in bulk or one byte at a time. It never allocates and never touches
// memory beyond the payload buffer supplied on construction.
//
// Integrity is checked by an 8-bit Fletcher checksum over class, id,
// length and payload. Parsing does not check it; call Valid after
// Deserialize reports a complete frame.
package ubx
