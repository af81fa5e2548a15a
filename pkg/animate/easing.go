package animate

import (
	"fmt"
	"strings"
)

// Easing reshapes a linear local fraction. Every easing maps 0 to 0 and 1 to 1.
type Easing int

const (
	Linear Easing = iota
	// EaseOut is a cubic ease-out: fast start, gentle settle.
	EaseOut
)

// Easings lists the accepted easing names.
var Easings = map[string]Easing{
	"linear":   Linear,
	"ease-out": EaseOut,
}

func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case EaseOut:
		return "ease-out"
	}
	return "unknown"
}

// ParseEasing resolves an easing name. The empty string selects [Linear].
func ParseEasing(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Linear, nil
	}
	e, ok := Easings[name]
	if !ok {
		return Linear, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}

// Apply maps t in [0,1] through the easing curve.
func (e Easing) Apply(t float64) float64 {
	t = clamp01(t)
	switch e {
	case EaseOut:
		if t == 1 {
			return 1
		}
		u := 1 - t
		return 1 - u*u*u
	}
	return t
}
