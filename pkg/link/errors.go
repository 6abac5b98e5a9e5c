package link

import "errors"

// ErrPayloadTooLarge indicates the frame doesn't fit the transmit buffer.
var ErrPayloadTooLarge = errors.New("payload too large")
