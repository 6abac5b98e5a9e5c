package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"log"

	"github.com/golang/glog"

	"github.com/robotalks/ubx.go/pkg/bridge/mqtt"
	"github.com/robotalks/ubx.go/pkg/bridge/websocket"
	"github.com/robotalks/ubx.go/pkg/env"
	fx "github.com/robotalks/ubx.go/pkg/framework"
	"github.com/robotalks/ubx.go/pkg/link"
	"github.com/robotalks/ubx.go/pkg/ubx"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := env.NewConfig()
	if err := conf.Validate(); err != nil {
		log.Fatalln(err)
	}
	port := conf.MustOpenPort()
	l := conf.NewLink(port)
	mux := &link.HandlerMux{}
	l.Handler = mux

	runner := fx.NewRunner().HandleSignals()
	runner.Go(fx.NamedRun("link", fx.RunFunc(func(ctx context.Context) error {
		return fx.RunWithContextCloser(ctx, port, func() error {
			return l.Run(ctx)
		})
	})))

	if conf.MQTTBrokerURL != "" {
		b, err := mqtt.NewBridge(conf.MQTTBrokerURL, mqtt.Meta{
			Device:     conf.DeviceID,
			Port:       conf.Port,
			Baud:       conf.Baud,
			MaxPayload: l.MaxPayload(),
		}, l)
		if err != nil {
			log.Fatalln(err)
		}
		mux.Add(b)
		runner.Go(fx.NamedRun("mqtt", b))
	}

	if conf.WebsocketAddr != "" {
		runner.Go(fx.NamedRun("websocket", &websocket.Server{
			Addr:       conf.WebsocketAddr,
			Mux:        mux,
			Sender:     l,
			MaxPayload: l.MaxPayload(),
		}))
	}

	if glog.V(1) {
		mux.Add(link.HandleFrameFunc(func(ctx context.Context, f ubx.Frame) {
			glog.Infof("RCV %s", f)
		}))
	}

	glog.Infof("ubxd %s on %s", conf.DeviceID, conf.Port)
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
