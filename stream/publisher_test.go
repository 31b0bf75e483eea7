package stream

import (
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type fakeToken struct {
	mqtt.Token
	complete bool
	err      error
}

func (t *fakeToken) Wait() bool                     { return t.complete }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.complete }
func (t *fakeToken) Error() error                   { return t.err }

type fakeClient struct {
	mqtt.Client
	token    *fakeToken
	topic    string
	qos      byte
	retained bool
	payload  interface{}
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topic = topic
	c.qos = qos
	c.retained = retained
	c.payload = payload
	return c.token
}

func TestMqttPublisher(t *testing.T) {
	client := &fakeClient{token: &fakeToken{complete: true}}
	p := NewMqttPublisher(client, 2, time.Second)
	if err := p.Publish("home/stream", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if client.topic != "home/stream" || client.qos != 2 || client.retained {
		t.Errorf("published to %s qos %d retained %v", client.topic, client.qos, client.retained)
	}
	if b, ok := client.payload.([]byte); !ok || len(b) != 3 {
		t.Errorf("payload = %v", client.payload)
	}
}

func TestMqttPublisherErrors(t *testing.T) {
	broker := errors.New("not authorised")
	tests := []struct {
		name  string
		token *fakeToken
		is    error
	}{
		{"timeout", &fakeToken{complete: false}, nil},
		{"broker error", &fakeToken{complete: true, err: broker}, broker},
	}
	for _, tt := range tests {
		p := NewMqttPublisher(&fakeClient{token: tt.token}, 0, time.Millisecond)
		err := p.Publish("t", nil)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if tt.is != nil && !errors.Is(err, tt.is) {
			t.Errorf("%s: error %v does not wrap %v", tt.name, err, tt.is)
		}
	}
}
