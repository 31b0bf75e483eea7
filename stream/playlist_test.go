package stream

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/matt-g-everett/ledseq/animation"
)

func TestBuildLayers(t *testing.T) {
	c, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	layers, err := BuildLayers(c.Effects, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildLayers: %v", err)
	}
	if len(layers) != 3 {
		t.Fatalf("layers = %d, want 3", len(layers))
	}

	tests := []struct {
		name     string
		mode     animation.RepeatMode
		duration time.Duration
	}{
		{"sparkle", animation.RepeatInfinite, 2 * time.Second},
		{"rainbow", animation.RepeatInfinite, 4 * time.Second},
		{"sunset", animation.RunOnce, 10 * time.Second},
	}
	for i, tt := range tests {
		l := layers[i]
		if l.Name != tt.name || l.Animation.Mode() != tt.mode || l.Animation.Duration() != tt.duration {
			t.Errorf("layer %d = %s %v %v, want %s %v %v", i, l.Name, l.Animation.Mode(), l.Animation.Duration(), tt.name, tt.mode, tt.duration)
		}
	}
	if _, ok := layers[0].Effect.(*Twinkle); !ok {
		t.Errorf("sparkle effect is %T", layers[0].Effect)
	}
	if g, ok := layers[1].Effect.(*GradientTrail); !ok || g.trailLength != 200 {
		t.Errorf("rainbow effect is %T", layers[1].Effect)
	}

	// The reversed fade starts at its target colour.
	fade, ok := layers[2].Effect.(*Fade)
	if !ok {
		t.Fatalf("sunset effect is %T", layers[2].Effect)
	}
	layers[2].Animation.Start()
	if !fade.current.AlmostEqualRgb(fade.to) {
		t.Errorf("reversed fade starts at %v, want %v", fade.current, fade.to)
	}
}

func TestBuildLayersDefaultsName(t *testing.T) {
	layers, err := BuildLayers([]EffectConfig{{Type: "gradientTrail", Seconds: 1}}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if layers[0].Name != "gradientTrail" {
		t.Errorf("name = %q", layers[0].Name)
	}
}

func TestBuildLayersInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  EffectConfig
	}{
		{"unknown type", EffectConfig{Type: "strobe", Seconds: 1}},
		{"unknown repeat", EffectConfig{Type: "gradientTrail", Repeat: "twice", Seconds: 1}},
		{"unknown easing", EffectConfig{Type: "gradientTrail", Easing: "wobble", Seconds: 1}},
		{"zero duration", EffectConfig{Type: "gradientTrail"}},
		{"fade needs colours", EffectConfig{Type: "fade", Seconds: 1}},
		{"bad colour", EffectConfig{Type: "fade", Seconds: 1, Colours: []string{"#zzzzzz", "#000000"}}},
		{"short gradient", EffectConfig{Type: "gradientTrail", Seconds: 1, Gradient: GradientTable{{0, 0}}}},
		{"negative trail", EffectConfig{Type: "gradientTrail", Seconds: 1, TrailLength: -4}},
		{"twinkle colours", EffectConfig{Type: "twinkle", Seconds: 1, Colours: []string{"#ffffff"}}},
	}
	for _, tt := range tests {
		if _, err := BuildLayers([]EffectConfig{tt.cfg}, rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestBuildLayersKeepsInvalidArgument(t *testing.T) {
	_, err := BuildLayers([]EffectConfig{{Type: "fade", Colours: []string{"#000000", "#ffffff"}}}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, animation.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestBuildStreak(t *testing.T) {
	layers, err := BuildLayers([]EffectConfig{{Name: "comet", Type: "streak", Seconds: 3, Length: 25}}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	s, ok := layers[0].Effect.(*Streak)
	if !ok || s.length != 25 {
		t.Errorf("effect = %T %+v", layers[0].Effect, layers[0].Effect)
	}
}
