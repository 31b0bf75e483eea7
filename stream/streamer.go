package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Command is a control instruction received from a remote.
type Command string

const (
	// CommandNext cross-fades to the next layer.
	CommandNext Command = "next"
	// CommandPause freezes the display.
	CommandPause Command = "pause"
	// CommandResume continues after a pause.
	CommandResume Command = "resume"
)

// ControlMessage is the JSON payload on the control topic.
type ControlMessage struct {
	Type string `json:"type"`
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	publisher     Publisher
	controller    *Controller
	clock         Clock
	topic         string
	frameInterval time.Duration
	cycleInterval time.Duration
	commands      chan Command
	log           *logrus.Entry

	mu        sync.Mutex
	status    Status
	published uint64
}

// NewStreamer creates an instance of a Streamer. A cycleInterval of zero
// disables timed cycling.
func NewStreamer(publisher Publisher, controller *Controller, topic string,
	frameInterval time.Duration, cycleInterval time.Duration) *Streamer {

	s := new(Streamer)
	s.publisher = publisher
	s.controller = controller
	s.clock = realClock{}
	s.topic = topic
	s.frameInterval = frameInterval
	s.cycleInterval = cycleInterval
	s.commands = make(chan Command, 16)
	s.log = logrus.WithField("component", "streamer")
	s.status = controller.Status()

	return s
}

// SetClock replaces the clock used to measure frame deltas.
func (s *Streamer) SetClock(c Clock) {
	s.clock = c
}

// Step advances the animations by delta and sends the resulting frame.
func (s *Streamer) Step(delta time.Duration) error {
	s.controller.Update(delta)
	return s.SendFrame()
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame() error {
	f := s.controller.CalculateFrame()
	b, err := f.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "marshal frame")
	}

	err = s.publisher.Publish(s.topic, b)

	s.mu.Lock()
	if err == nil {
		s.published++
	}
	s.status = s.controller.Status()
	s.status.Published = s.published
	s.mu.Unlock()

	return err
}

// Status returns the status as of the last frame. Safe for concurrent use.
func (s *Streamer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Control queues a JSON control message for the frame loop.
func (s *Streamer) Control(payload []byte) error {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return errors.Wrap(err, "decode control message")
	}

	cmd := Command(message.Type)
	switch cmd {
	case CommandNext, CommandPause, CommandResume:
	default:
		return errors.Errorf("unknown control command %q", message.Type)
	}

	select {
	case s.commands <- cmd:
		return nil
	default:
		return errors.Errorf("control queue full, dropped %q", cmd)
	}
}

func (s *Streamer) handleControl(client mqtt.Client, msg mqtt.Message) {
	s.log.Debugf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())
	if err := s.Control(msg.Payload()); err != nil {
		s.log.WithError(err).Warn("Ignoring control message")
	}
}

// Subscribe listens for control messages on topic.
func (s *Streamer) Subscribe(client mqtt.Client, topic string) error {
	token := client.Subscribe(topic, 0, s.handleControl)
	token.Wait()
	return errors.Wrapf(token.Error(), "subscribe to %s", topic)
}

func (s *Streamer) apply(cmd Command) {
	s.log.WithField("command", cmd).Info("Applying control command")
	switch cmd {
	case CommandNext:
		s.controller.Cycle()
	case CommandPause:
		s.controller.Pause()
	case CommandResume:
		s.controller.Resume()
	}
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	s.controller.Start()
	defer s.controller.Stop()

	frameTimer := time.NewTicker(s.frameInterval)
	defer frameTimer.Stop()

	var cycle <-chan time.Time
	if s.cycleInterval > 0 {
		cycleTimer := time.NewTicker(s.cycleInterval)
		defer cycleTimer.Stop()
		cycle = cycleTimer.C
	}

	last := s.clock.Now()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("Stopping")
			return nil
		case <-frameTimer.C:
			now := s.clock.Now()
			delta := now.Sub(last)
			last = now
			if err := s.Step(delta); err != nil {
				s.log.WithError(err).Warn("Failed to send frame")
			}
		case <-cycle:
			s.controller.Cycle()
		case cmd := <-s.commands:
			s.apply(cmd)
		}
	}
}
