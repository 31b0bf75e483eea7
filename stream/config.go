package stream

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of the service.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientID"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	FrameRate    float64 `yaml:"frameRate"`
	CycleSeconds float64 `yaml:"cycleSeconds"`
	Transition   struct {
		Seconds float64 `yaml:"seconds"`
		Easing  string  `yaml:"easing"`
	} `yaml:"transition"`
	Api struct {
		Addr string `yaml:"addr"`
	} `yaml:"api"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Effects []EffectConfig `yaml:"effects"`
}

// EffectConfig describes one layer of the playlist.
type EffectConfig struct {
	Name        string        `yaml:"name"`
	Type        string        `yaml:"type"`
	Repeat      string        `yaml:"repeat"`
	Seconds     float64       `yaml:"seconds"`
	Easing      string        `yaml:"easing"`
	Reverse     bool          `yaml:"reverse"`
	Colours     []string      `yaml:"colours"`
	Particles   int           `yaml:"particles"`
	TrailLength int           `yaml:"trailLength"`
	Length      int           `yaml:"length"`
	Gradient    GradientTable `yaml:"gradient"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(configPath string) (Config, error) {
	f, err := os.Open(configPath)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes YAML, applies defaults and validates the result.
func ParseConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledseq"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.FrameRate == 0 {
		c.FrameRate = 30
	}
	if c.Transition.Seconds == 0 {
		c.Transition.Seconds = 5
	}
	if c.Transition.Easing == "" {
		c.Transition.Easing = "inOutQuad"
	}
	if c.Api.Addr == "" {
		c.Api.Addr = ":3000"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the values that defaults cannot fix.
func (c *Config) Validate() error {
	if c.Mqtt.URL == "" {
		return errors.New("mqtt.url is required")
	}
	if c.Mqtt.QoS > 2 {
		return errors.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.Mqtt.QoS)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("frameRate must be positive, got %v", c.FrameRate)
	}
	if c.CycleSeconds < 0 {
		return errors.Errorf("cycleSeconds must not be negative, got %v", c.CycleSeconds)
	}
	if c.Transition.Seconds < 0 {
		return errors.Errorf("transition.seconds must be positive, got %v", c.Transition.Seconds)
	}
	if len(c.Effects) == 0 {
		return errors.New("at least one effect is required")
	}
	return nil
}

// FrameInterval is the time between frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// CycleInterval is the time between automatic layer changes, zero if
// disabled.
func (c *Config) CycleInterval() time.Duration {
	return seconds(c.CycleSeconds)
}

// TransitionTime is the length of a cross-fade.
func (c *Config) TransitionTime() time.Duration {
	return seconds(c.Transition.Seconds)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
