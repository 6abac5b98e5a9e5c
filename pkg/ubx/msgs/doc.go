// Package msgs maps UBX class/id pairs to typed payloads.
package msgs

// Frames are produced and consumed by package ubx. This package
// interprets payloads of a few commonly used types and lets callers
// register more. Multi-byte payload fields are little-endian.
