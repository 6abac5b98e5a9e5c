package env

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/tarm/serial"

	"github.com/robotalks/ubx.go/pkg/link"
)

// Config provides common options to run a UBX link.
type Config struct {
	// Port is the serial device, e.g. /dev/ttyACM0.
	Port string
	Baud int
	// ReadTimeout of the serial port, 0 blocks.
	ReadTimeout time.Duration

	// MaxPayload limits the payload size of received/sent frames.
	MaxPayload int
	// WriteChunk is the max bytes written to the port at once.
	WriteChunk int
	// FrameTimeout discards partial frames after the port stays idle.
	FrameTimeout time.Duration

	// DeviceID identifies the receiver in bridged topics.
	DeviceID string
	// MQTTBrokerURL specifies the MQTT broker to bridge frames,
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// WebsocketAddr is the listen address of WebSocket bridge.
	WebsocketAddr string
}

var defaultConfig = Config{
	Port:       "/dev/ttyACM0",
	Baud:       9600,
	MaxPayload: link.DefaultMaxPayload,
	WriteChunk: link.DefaultWriteChunk,

	FrameTimeout: 500 * time.Millisecond,
}

func init() {
	if val := os.Getenv("UBX_PORT"); val != "" {
		defaultConfig.Port = val
	}
	if val := os.Getenv("UBX_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
	if val := os.Getenv("UBX_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	if val := os.Getenv("UBX_WS_ADDR"); val != "" {
		defaultConfig.WebsocketAddr = val
	}
	if val := os.Getenv("UBX_DEVICE_ID"); val != "" {
		defaultConfig.DeviceID = val
	} else if id, err := machineid.ProtectedID("ubx"); err == nil {
		defaultConfig.DeviceID = id[:12]
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial port of the receiver.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate.")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Serial read timeout, 0 blocks.")
	flag.IntVar(&defaultConfig.MaxPayload, "max-payload", defaultConfig.MaxPayload, "Max payload size in bytes.")
	flag.IntVar(&defaultConfig.WriteChunk, "write-chunk", defaultConfig.WriteChunk, "Max bytes per serial write.")
	flag.DurationVar(&defaultConfig.FrameTimeout, "frame-timeout", defaultConfig.FrameTimeout, "Discard partial frames after idle, 0 disables.")
	flag.StringVar(&defaultConfig.DeviceID, "id", defaultConfig.DeviceID, "Device ID.")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL.")
	flag.StringVar(&defaultConfig.WebsocketAddr, "ws", defaultConfig.WebsocketAddr, "WebSocket listen address.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("serial port must be specified")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate: %d", c.Baud)
	}
	if c.MaxPayload <= 0 || c.MaxPayload > 0xffff {
		return fmt.Errorf("invalid max payload: %d", c.MaxPayload)
	}
	if c.DeviceID == "" && c.MQTTBrokerURL != "" {
		return fmt.Errorf("device id is required for MQTT bridge")
	}
	return nil
}

// OpenPort opens the serial port.
func (c *Config) OpenPort() (io.ReadWriteCloser, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        c.Port,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s error: %v", c.Port, err)
	}
	return port, nil
}

// NewLink creates a Link over rw using this config.
func (c *Config) NewLink(rw io.ReadWriter) *link.Link {
	l := link.NewLink(rw, c.MaxPayload)
	if c.WriteChunk > 0 {
		l.WriteChunk = c.WriteChunk
	}
	l.FrameTimeout = c.FrameTimeout
	l.ReadTimeout = c.ReadTimeout > 0
	return l
}

// MustOpenPort opens the serial port and fails on error.
func (c *Config) MustOpenPort() io.ReadWriteCloser {
	port, err := c.OpenPort()
	if err != nil {
		log.Fatalln(err)
	}
	return port
}
