package stream

import (
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledseq/animation"
	"github.com/matt-g-everett/ledseq/util"
	"github.com/pkg/errors"
)

const twinkleLutLength = 48

// BuildLayers creates one stopped layer per effect config.
func BuildLayers(effects []EffectConfig, r *rand.Rand) ([]*Layer, error) {
	layers := make([]*Layer, 0, len(effects))
	for i, cfg := range effects {
		if cfg.Name == "" {
			cfg.Name = cfg.Type
		}

		l, err := buildLayer(cfg, r)
		if err != nil {
			return nil, errors.Wrapf(err, "effect %d", i)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

func buildLayer(cfg EffectConfig, r *rand.Rand) (*Layer, error) {
	mode, err := parseRepeatMode(cfg.Repeat)
	if err != nil {
		return nil, err
	}

	modifier, err := animation.ModifierByName(cfg.Easing)
	if err != nil {
		return nil, err
	}
	if cfg.Reverse {
		modifier = animation.Reversed(modifier)
	}

	effect, err := buildEffect(cfg, r)
	if err != nil {
		return nil, err
	}

	return NewLayer(cfg.Name, effect, mode, seconds(cfg.Seconds), modifier)
}

func parseRepeatMode(s string) (animation.RepeatMode, error) {
	switch strings.ToLower(s) {
	case "", "infinite":
		return animation.RepeatInfinite, nil
	case "once":
		return animation.RunOnce, nil
	default:
		return 0, errors.Errorf("unknown repeat mode %q", s)
	}
}

func parseColours(hex []string, defaults ...string) ([]colorful.Color, error) {
	if len(hex) == 0 {
		hex = defaults
	}
	colours := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Wrapf(err, "colour %d", i)
		}
		colours[i] = c
	}
	return colours, nil
}

func buildEffect(cfg EffectConfig, r *rand.Rand) (Effect, error) {
	switch cfg.Type {
	case "fade":
		colours, err := parseColours(cfg.Colours)
		if err != nil {
			return nil, err
		}
		if len(colours) != 2 {
			return nil, errors.Errorf("fade needs 2 colours, got %d", len(colours))
		}
		return NewFade(colours[0], colours[1]), nil

	case "gradientTrail":
		gradient := cfg.Gradient
		if gradient == nil {
			gradient = Rainbow
		}
		if len(gradient) < 2 {
			return nil, errors.New("gradient needs at least 2 stops")
		}
		trailLength := cfg.TrailLength
		if trailLength == 0 {
			trailLength = 180
		}
		if trailLength < 0 {
			return nil, errors.Errorf("trailLength must be positive, got %d", trailLength)
		}
		return NewGradientTrail(gradient, trailLength), nil

	case "twinkle":
		colours, err := parseColours(cfg.Colours, "#808080", "#000005")
		if err != nil {
			return nil, err
		}
		if len(colours) != 2 {
			return nil, errors.Errorf("twinkle needs 2 colours, got %d", len(colours))
		}
		particles := cfg.Particles
		if particles == 0 {
			particles = 400
		}
		lut := util.GenerateLut(twinkleLutLength, animation.InOutQuad)
		return NewTwinkle(r, particles, colours[0], colours[1], lut), nil

	case "streak":
		colours, err := parseColours(cfg.Colours, "#ff4080", "#000005")
		if err != nil {
			return nil, err
		}
		if len(colours) != 2 {
			return nil, errors.Errorf("streak needs 2 colours, got %d", len(colours))
		}
		length := cfg.Length
		if length == 0 {
			length = 10
		}
		if length < 0 {
			return nil, errors.Errorf("length must be positive, got %d", length)
		}
		return NewStreak(colours[0], colours[1], length), nil

	default:
		return nil, errors.Errorf("unknown effect type %q", cfg.Type)
	}
}
