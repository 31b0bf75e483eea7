package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledseq/animation"
	"github.com/matt-g-everett/ledseq/api"
	"github.com/matt-g-everett/ledseq/stream"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	topic := a.Config.Mqtt.Topics.Control
	if topic == "" {
		return
	}
	if err := a.Streamer.Subscribe(client, topic); err != nil {
		log.WithError(err).Error("Failed to subscribe to control topic")
	}
}

func (a *app) buildStreamer() error {
	r := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	layers, err := stream.BuildLayers(a.Config.Effects, r)
	if err != nil {
		return errors.Wrap(err, "build layers")
	}

	modifier, err := animation.ModifierByName(a.Config.Transition.Easing)
	if err != nil {
		return errors.Wrap(err, "transition easing")
	}
	controller, err := stream.NewController(layers, a.Config.TransitionTime(), modifier)
	if err != nil {
		return err
	}

	publisher := stream.NewMqttPublisher(a.Client, a.Config.Mqtt.QoS, time.Second)
	a.Streamer = stream.NewStreamer(publisher, controller, a.Config.Mqtt.Topics.Stream,
		a.Config.FrameInterval(), a.Config.CycleInterval())
	return nil
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "connect")
	}
	defer a.Client.Disconnect(250)

	return a.Streamer.Run(ctx)
}

func main() {
	mqtt.ERROR = log.StandardLogger()

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to read config")
	}
	a.Config = config

	level, err := log.ParseLevel(a.Config.Log.Level)
	if err != nil {
		log.WithError(err).Fatal("Bad log level")
	}
	log.SetLevel(level)
	log.Debugf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	if err := a.buildStreamer(); err != nil {
		log.WithError(err).Fatal("Failed to build animations")
	}

	go func() {
		if err := api.NewApi(a.Config.Api.Addr, a.Streamer).Serve(); err != nil {
			log.WithError(err).Error("API server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.WithError(err).Fatal("Streamer failed")
	}
}
