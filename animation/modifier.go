package animation

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Easing curves from github.com/fogleman/ease.
var (
	Linear       TimeModifier = ease.Linear
	InQuad       TimeModifier = ease.InQuad
	OutQuad      TimeModifier = ease.OutQuad
	InOutQuad    TimeModifier = ease.InOutQuad
	InCubic      TimeModifier = ease.InCubic
	OutCubic     TimeModifier = ease.OutCubic
	InOutCubic   TimeModifier = ease.InOutCubic
	InQuart      TimeModifier = ease.InQuart
	OutQuart     TimeModifier = ease.OutQuart
	InOutQuart   TimeModifier = ease.InOutQuart
	InQuint      TimeModifier = ease.InQuint
	OutQuint     TimeModifier = ease.OutQuint
	InOutQuint   TimeModifier = ease.InOutQuint
	InSine       TimeModifier = ease.InSine
	OutSine      TimeModifier = ease.OutSine
	InOutSine    TimeModifier = ease.InOutSine
	InExpo       TimeModifier = ease.InExpo
	OutExpo      TimeModifier = ease.OutExpo
	InOutExpo    TimeModifier = ease.InOutExpo
	InCirc       TimeModifier = ease.InCirc
	OutCirc      TimeModifier = ease.OutCirc
	InOutCirc    TimeModifier = ease.InOutCirc
	InElastic    TimeModifier = ease.InElastic
	OutElastic   TimeModifier = ease.OutElastic
	InOutElastic TimeModifier = ease.InOutElastic
	InBack       TimeModifier = ease.InBack
	OutBack      TimeModifier = ease.OutBack
	InOutBack    TimeModifier = ease.InOutBack
	InBounce     TimeModifier = ease.InBounce
	OutBounce    TimeModifier = ease.OutBounce
	InOutBounce  TimeModifier = ease.InOutBounce
)

// Keys are lower case.
var modifiers = map[string]TimeModifier{
	"linear":       Linear,
	"inquad":       InQuad,
	"outquad":      OutQuad,
	"inoutquad":    InOutQuad,
	"incubic":      InCubic,
	"outcubic":     OutCubic,
	"inoutcubic":   InOutCubic,
	"inquart":      InQuart,
	"outquart":     OutQuart,
	"inoutquart":   InOutQuart,
	"inquint":      InQuint,
	"outquint":     OutQuint,
	"inoutquint":   InOutQuint,
	"insine":       InSine,
	"outsine":      OutSine,
	"inoutsine":    InOutSine,
	"inexpo":       InExpo,
	"outexpo":      OutExpo,
	"inoutexpo":    InOutExpo,
	"incirc":       InCirc,
	"outcirc":      OutCirc,
	"inoutcirc":    InOutCirc,
	"inelastic":    InElastic,
	"outelastic":   OutElastic,
	"inoutelastic": InOutElastic,
	"inback":       InBack,
	"outback":      OutBack,
	"inoutback":    InOutBack,
	"inbounce":     InBounce,
	"outbounce":    OutBounce,
	"inoutbounce":  InOutBounce,
}

// ModifierByName looks up an easing curve by name, ignoring case, so
// "inOutQuad" and "InOutQuad" both work. An empty name means Linear.
func ModifierByName(name string) (TimeModifier, error) {
	if name == "" {
		return Linear, nil
	}
	m, ok := modifiers[strings.ToLower(name)]
	if !ok {
		return nil, &ArgumentError{Op: "animation.ModifierByName", Arg: "name", Reason: fmt.Sprintf("unknown easing %q", name)}
	}
	return m, nil
}

// Reversed plays m backwards.
func Reversed(m TimeModifier) TimeModifier {
	return func(t float64) float64 {
		return m(1 - t)
	}
}
