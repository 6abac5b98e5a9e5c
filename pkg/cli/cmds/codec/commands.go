package codec

import (
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/ubx.go/pkg/cli/sh"
	"github.com/robotalks/ubx.go/pkg/ubx"
	"github.com/robotalks/ubx.go/pkg/ubx/msgs"
)

// ChecksumResult is the output of checksum command.
type ChecksumResult struct {
	A     byte   `json:"ck_a"`
	B     byte   `json:"ck_b"`
	Value uint16 `json:"value"`
}

// DecodeResult is the output of decode command.
type DecodeResult struct {
	Frames  []sh.FrameInfo `json:"frames"`
	Invalid int            `json:"invalid"`
}

// Checksum computes the checksum of CLASS ID LEN_LO LEN_HI PAYLOAD.
// Payload beyond the declared length is ignored.
func Checksum(data []byte) (ChecksumResult, error) {
	if len(data) < 4 {
		return ChecksumResult{}, fmt.Errorf("at least CLASS ID LEN_LO LEN_HI required")
	}
	msg := ubx.NewMessage(data[4:])
	msg.SetClass(data[0])
	msg.SetID(data[1])
	msg.SetLength(uint16(data[2]) | uint16(data[3])<<8)
	v := msg.Checksum()
	return ChecksumResult{A: byte(v), B: byte(v >> 8), Value: v}, nil
}

// Decode extracts all frames from wire bytes.
func Decode(data []byte, maxPayload int) DecodeResult {
	frames, invalid := ubx.DecodeFrames(data, maxPayload)
	res := DecodeResult{Frames: make([]sh.FrameInfo, 0, len(frames)), Invalid: invalid}
	for _, f := range frames {
		res.Frames = append(res.Frames, sh.Describe(f))
	}
	return res
}

var (
	// EncodeCmd prints the wire bytes of a frame.
	EncodeCmd = ishell.Cmd{
		Name:    "encode",
		Aliases: []string{"enc"},
		Help:    "TYPE|CLASS ID [PAYLOAD-HEX...]",
		Func: func(c *ishell.Context) {
			f, err := sh.ParseFrame(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			out := sh.FormatHex(ubx.EncodeFrame(f))
			sh.Print(c, map[string]string{"wire": out}, out)
		},
	}

	// DecodeCmd parses frames from wire bytes.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"dec"},
		Help:    "HEX...",
		Func: func(c *ishell.Context) {
			data, err := sh.ParseHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			res := Decode(data, sh.ShellFrom(c).Config.MaxPayload)
			lines := make([]string, 0, len(res.Frames)+1)
			for _, info := range res.Frames {
				lines = append(lines, info.String())
			}
			if res.Invalid > 0 {
				lines = append(lines, fmt.Sprintf("%d invalid frame(s)", res.Invalid))
			}
			if len(lines) == 0 {
				lines = append(lines, "No frames")
			}
			sh.Print(c, res, strings.Join(lines, "\n"))
		},
	}

	// ChecksumCmd computes the checksum.
	ChecksumCmd = ishell.Cmd{
		Name:    "checksum",
		Aliases: []string{"ck"},
		Help:    "CLASS ID LEN_LO LEN_HI [PAYLOAD...] (hex)",
		Func: func(c *ishell.Context) {
			data, err := sh.ParseHex(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			res, err := Checksum(data)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, res, fmt.Sprintf("CK_A=%02X CK_B=%02X", res.A, res.B))
		},
	}

	// TypesCmd lists registered message types.
	TypesCmd = ishell.Cmd{
		Name: "types",
		Help: "",
		Func: func(c *ishell.Context) {
			ids := msgs.RegisteredTypes()
			names := make([]string, 0, len(ids))
			for _, id := range ids {
				names = append(names, fmt.Sprintf("%s\t0x%02x 0x%02x", id, id.Class(), id.ID()))
			}
			sh.Print(c, ids, strings.Join(names, "\n"))
		},
	}
)

func init() {
	sh.AddCmds(
		&EncodeCmd,
		&DecodeCmd,
		&ChecksumCmd,
		&TypesCmd,
	)
}
