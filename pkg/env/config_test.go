package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"no port", func(c *Config) { c.Port = "" }, false},
		{"bad baud", func(c *Config) { c.Baud = 0 }, false},
		{"payload too large", func(c *Config) { c.MaxPayload = 0x10000 }, false},
		{"no payload", func(c *Config) { c.MaxPayload = 0 }, false},
		{"mqtt without id", func(c *Config) { c.DeviceID, c.MQTTBrokerURL = "", "mqtt://localhost:1883/" }, false},
		{"mqtt with id", func(c *Config) { c.DeviceID, c.MQTTBrokerURL = "rx1", "mqtt://localhost:1883/" }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := NewConfig()
			conf.Port, conf.Baud = "/dev/null", 9600
			tc.modify(conf)
			if tc.valid {
				require.NoError(t, conf.Validate())
			} else {
				require.Error(t, conf.Validate())
			}
		})
	}
}

func TestNewConfigCopies(t *testing.T) {
	conf := NewConfig()
	conf.Port = "/dev/ttyUSB9"
	require.NotEqual(t, conf.Port, Default().Port)
}

func TestNewLink(t *testing.T) {
	conf := NewConfig()
	conf.MaxPayload, conf.WriteChunk, conf.FrameTimeout = 100, 16, time.Second
	l := conf.NewLink(nil)
	require.Equal(t, 100, l.MaxPayload())
	require.Equal(t, 16, l.WriteChunk)
	require.Equal(t, time.Second, l.FrameTimeout)
	require.False(t, l.ReadTimeout)

	conf.ReadTimeout = 100 * time.Millisecond
	require.True(t, conf.NewLink(nil).ReadTimeout)
}
