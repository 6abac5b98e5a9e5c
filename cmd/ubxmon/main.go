package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/robotalks/ubx.go/pkg/bridge"
	"github.com/robotalks/ubx.go/pkg/bridge/mqtt"
	"github.com/robotalks/ubx.go/pkg/cli/sh"
)

var (
	mqttURL = "mqtt://localhost:1883/gnss/"
	device  = "+"
)

func init() {
	if val := os.Getenv("UBX_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&device, "id", device, "Device ID to monitor, + for all.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}

	q.Sub(mqtt.MetaTopic(device), mqtt.Handler(func(topic string, payload []byte) {
		log.Printf("%s: %s", topic, string(payload))
	}))
	q.Sub(mqtt.FramesFilter(device), mqtt.Handler(func(topic string, payload []byte) {
		if _, _, _, ok := mqtt.ParseFrameTopic(topic); !ok {
			return
		}
		env, f, err := bridge.Unmarshal(payload)
		if err != nil {
			log.Printf("%s: bad frame: %v", topic, err)
			return
		}
		var latency string
		if ts := env.GetReceivedAt(); ts > 0 {
			latency = " +" + time.Since(time.Unix(0, ts)).Round(time.Millisecond).String()
		}
		log.Printf("%s%s: %s", topic, latency, sh.Describe(f))
	}))

	token := q.Connect()
	if token.Wait(); token.Error() != nil {
		log.Fatalln(token.Error())
	}
	<-(chan struct{})(nil)
}
