package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/ubx.go/pkg/env"
	"github.com/robotalks/ubx.go/pkg/link"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoOpen    bool

	Shell  *ishell.Shell
	Config *env.Config
	Conn   *Conn
}

// Conn is an opened receiver with a running link.
type Conn struct {
	Ctx    context.Context
	Cancel func()
	Port   io.ReadWriteCloser
	Link   *link.Link
	Mux    *link.HandlerMux
	Name   string
}

const (
	shellKey     = "$shell"
	closedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command func requires an opened receiver.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Conn == nil {
			c.Err(fmt.Errorf("receiver not opened"))
			return
		}
		fn(c)
	}
}

// Print prints v as JSON when OutputJSON is set, otherwise the text.
func Print(c *ishell.Context, v interface{}, text string) {
	if !ShellFrom(c).OutputJSON {
		c.Println(text)
		return
	}
	out, err := json.Marshal(v)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(string(out))
}

// WithAutoOpen sets AutoOpen.
func (s *Shell) WithAutoOpen(en bool) *Shell {
	s.AutoOpen = en
	return s
}

// Open opens the serial port and starts the link.
func (s *Shell) Open(port string) error {
	conf := *s.Config
	if port != "" {
		conf.Port = port
	}
	rw, err := conf.OpenPort()
	if err != nil {
		return err
	}
	conn := &Conn{
		Port: rw,
		Link: conf.NewLink(rw),
		Mux:  &link.HandlerMux{},
		Name: conf.Port,
	}
	conn.Link.Handler = conn.Mux
	conn.Ctx, conn.Cancel = context.WithCancel(context.Background())
	s.Close()
	s.Conn = conn
	go func() {
		err := conn.Link.Run(conn.Ctx)
		if err != nil && err != context.Canceled {
			log.Printf("%s: link stopped: %v", conn.Name, err)
		}
	}()
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", conn.Name))
	return nil
}

// Close stops the link and closes the port.
func (s *Shell) Close() {
	if s.Conn != nil {
		s.Conn.Cancel()
		s.Conn.Port.Close()
		s.Conn = nil
		s.Shell.SetPrompt(closedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoOpen && s.Config.Port != "" && len(args) > 0 && needsPort(args[0]) {
		if err := s.Open(""); err != nil {
			log.Fatalf("open %q failed: %v", s.Config.Port, err)
		}
	}
	defer s.Close()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var portCommands = map[string]bool{}

// RequirePort marks commands which open the port automatically in
// evaluation mode.
func RequirePort(cmds ...*ishell.Cmd) {
	for _, cmd := range cmds {
		portCommands[cmd.Name] = true
		for _, alias := range cmd.Aliases {
			portCommands[alias] = true
		}
	}
}

func needsPort(name string) bool {
	return portCommands[name]
}

var (
	// OpenCmd opens the receiver.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[PORT]",
		Func: func(c *ishell.Context) {
			var port string
			if len(c.Args) > 0 {
				port = c.Args[0]
			}
			if err := ShellFrom(c).Open(port); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes the receiver.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).WithAutoOpen(true).Run(flag.Args()...)
}
