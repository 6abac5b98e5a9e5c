package device

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/ubx.go/pkg/cli/sh"
	"github.com/robotalks/ubx.go/pkg/link"
	"github.com/robotalks/ubx.go/pkg/ubx"
	"github.com/robotalks/ubx.go/pkg/ubx/msgs"
)

// DefaultTimeout is the time to wait for a response.
const DefaultTimeout = time.Second

// IsCfg tells whether the receiver acknowledges the frame with ACK-ACK/NAK.
func IsCfg(f ubx.Frame) bool {
	return f.Class == msgs.ClassCFG && len(f.Payload) > 0
}

// MatchAck matches ACK-ACK or ACK-NAK of the frame.
func MatchAck(f ubx.Frame) func(ubx.Frame) bool {
	return func(res ubx.Frame) bool {
		return res.Class == msgs.ClassACK &&
			(res.ID == msgs.AckAckTypeID.ID() || res.ID == msgs.AckNakTypeID.ID()) &&
			len(res.Payload) >= 2 && res.Payload[0] == f.Class && res.Payload[1] == f.ID
	}
}

func request(c *ishell.Context, f ubx.Frame, match func(ubx.Frame) bool) {
	conn := sh.ShellFrom(c).Conn
	ctx, cancel := context.WithTimeout(conn.Ctx, DefaultTimeout)
	defer cancel()
	res, err := link.Request(ctx, conn.Link, conn.Mux, f, match)
	if err != nil {
		c.Err(err)
		return
	}
	info := sh.Describe(res)
	sh.Print(c, info, info.String())
}

var (
	// SendCmd sends a frame, and waits for ACK when sending CFG.
	SendCmd = ishell.Cmd{
		Name:    "send",
		Aliases: []string{"s"},
		Help:    "TYPE|CLASS ID [PAYLOAD-HEX...]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			f, err := sh.ParseFrame(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			if IsCfg(f) {
				request(c, f, MatchAck(f))
				return
			}
			if err := sh.ShellFrom(c).Conn.Link.Send(f); err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, map[string]bool{"ok": true}, "OK")
		}),
	}

	// PollCmd polls a message and prints the response.
	PollCmd = ishell.Cmd{
		Name:    "poll",
		Aliases: []string{"p"},
		Help:    "TYPE|CLASS ID",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			typeID, _, err := sh.ParseType(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			request(c, msgs.Poll(typeID), link.MatchType(typeID.Class(), typeID.ID()))
		}),
	}

	// ListenCmd prints received frames for a while.
	ListenCmd = ishell.Cmd{
		Name:    "listen",
		Aliases: []string{"l"},
		Help:    "[SECONDS]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			dur := 5 * time.Second
			if len(c.Args) > 0 {
				secs, err := strconv.ParseFloat(c.Args[0], 64)
				if err != nil || secs <= 0 {
					c.Err(fmt.Errorf("invalid SECONDS: %s", c.Args[0]))
					return
				}
				dur = time.Duration(secs * float64(time.Second))
			}
			conn := sh.ShellFrom(c).Conn
			frameCh := make(chan ubx.Frame, 16)
			sub := conn.Mux.Add(link.HandleFrameFunc(func(ctx context.Context, f ubx.Frame) {
				select {
				case frameCh <- f:
				default:
				}
			}))
			defer sub.Close()
			timeout := time.After(dur)
			for {
				select {
				case f := <-frameCh:
					info := sh.Describe(f)
					sh.Print(c, info, info.String())
				case <-timeout:
					return
				case <-conn.Ctx.Done():
					return
				}
			}
		}),
	}

	// StatsCmd prints link counters.
	StatsCmd = ishell.Cmd{
		Name: "stats",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			stats := sh.ShellFrom(c).Conn.Link.Stats()
			sh.Print(c, stats, fmt.Sprintf("frames=%d invalid=%d sent=%d",
				stats.Frames, stats.Invalid, stats.Sent))
		}),
	}
)

func init() {
	sh.AddCmds(
		&SendCmd,
		&PollCmd,
		&ListenCmd,
		&StatsCmd,
	)
	sh.RequirePort(&SendCmd, &PollCmd, &ListenCmd, &StatsCmd)
}
