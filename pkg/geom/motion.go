package geom

// Effect names the way a shape enters during an animated render.
type Effect int

const (
	// EffectNone shapes are drawn at their target geometry from the first frame.
	EffectNone Effect = iota
	// EffectGrowY scales the shape vertically toward Motion.Baseline (a y coordinate).
	EffectGrowY
	// EffectGrowX scales the shape horizontally toward Motion.Baseline (an x coordinate).
	EffectGrowX
	// EffectFade multiplies the shape's opacity.
	EffectFade
	// EffectScale shrinks the shape around its center.
	EffectScale
)

var effectNames = [...]string{"none", "grow-y", "grow-x", "fade", "scale"}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[e]
}

// Motion describes a shape's entrance: the effect, the stagger slot and,
// for growth effects, the axis baseline the shape grows out of.
type Motion struct {
	Effect   Effect
	Index    int
	Baseline float64
}

// Still is the motion of shapes that never animate.
var Still = Motion{}
