package sh

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/robotalks/ubx.go/pkg/ubx"
	"github.com/robotalks/ubx.go/pkg/ubx/msgs"
)

// ParseHex parses bytes from args, each arg is a hex string optionally
// prefixed with 0x, spaces and colons are ignored.
func ParseHex(args []string) ([]byte, error) {
	var out []byte
	for _, arg := range args {
		s := strings.TrimPrefix(strings.ToLower(arg), "0x")
		s = strings.NewReplacer(" ", "", ":", "").Replace(s)
		data, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %v", arg, err)
		}
		out = append(out, data...)
	}
	return out, nil
}

// ParseByte parses a single byte in hex, e.g. 06 or 0x06.
func ParseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q", s)
	}
	return byte(v), nil
}

// ParseType parses the message type from args, either a registered name
// like MON-VER or CLASS ID in hex. It returns the remaining args.
func ParseType(args []string) (msgs.TypeID, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("TYPE or CLASS ID required")
	}
	if typeID, ok := msgs.LookupName(strings.ToUpper(args[0])); ok {
		return typeID, args[1:], nil
	}
	if len(args) < 2 {
		return 0, nil, fmt.Errorf("unknown type %q", args[0])
	}
	class, err := ParseByte(args[0])
	if err != nil {
		return 0, nil, err
	}
	id, err := ParseByte(args[1])
	if err != nil {
		return 0, nil, err
	}
	return msgs.TypeIDOf(class, id), args[2:], nil
}

// ParseFrame parses TYPE [PAYLOAD...] or CLASS ID [PAYLOAD...].
func ParseFrame(args []string) (ubx.Frame, error) {
	typeID, rest, err := ParseType(args)
	if err != nil {
		return ubx.Frame{}, err
	}
	payload, err := ParseHex(rest)
	if err != nil {
		return ubx.Frame{}, err
	}
	f := msgs.Poll(typeID)
	if len(payload) > 0 {
		f.Payload = payload
	}
	return f, nil
}

// FormatHex formats bytes as space separated hex.
func FormatHex(data []byte) string {
	var sb strings.Builder
	for n, b := range data {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
