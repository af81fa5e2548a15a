package geom

import (
	"strconv"
	"strings"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Op is a path drawing operation. The values are the SVG command letters.
type Op byte

const (
	OpMove  Op = 'M'
	OpLine  Op = 'L'
	OpQuad  Op = 'Q'
	OpClose Op = 'Z'
)

// Command is one drawing step. X and Y are the end point; CX and CY are the
// control point and only meaningful for OpQuad.
type Command struct {
	Op     Op
	X, Y   float64
	CX, CY float64
}

// MoveTo, LineTo, QuadTo and ClosePath build single commands.
func MoveTo(x, y float64) Command { return Command{Op: OpMove, X: x, Y: y} }
func LineTo(x, y float64) Command { return Command{Op: OpLine, X: x, Y: y} }
func QuadTo(cx, cy, x, y float64) Command {
	return Command{Op: OpQuad, X: x, Y: y, CX: cx, CY: cy}
}
func ClosePath() Command { return Command{Op: OpClose} }

// Commands is an ordered path.
type Commands []Command

// String renders the path as SVG path data. Numbers use the shortest
// representation that parses back to the same float64.
func (cs Commands) String() string {
	if len(cs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(c.Op))
		switch c.Op {
		case OpMove, OpLine:
			writeCoord(&b, c.X, c.Y)
		case OpQuad:
			writeCoord(&b, c.CX, c.CY)
			writeCoord(&b, c.X, c.Y)
		}
	}
	return b.String()
}

func writeCoord(b *strings.Builder, x, y float64) {
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(y, 'f', -1, 64))
}

// At evaluates command i at parameter t in [0,1], starting from the end
// point of the previous command. Move and close commands evaluate to their
// end point.
func (cs Commands) At(i int, t float64) Point {
	c := cs[i]
	var from Point
	if i > 0 {
		from = cs.end(i - 1)
	}
	switch c.Op {
	case OpLine:
		return Point{X: from.X + (c.X-from.X)*t, Y: from.Y + (c.Y-from.Y)*t}
	case OpQuad:
		u := 1 - t
		return Point{
			X: u*u*from.X + 2*u*t*c.CX + t*t*c.X,
			Y: u*u*from.Y + 2*u*t*c.CY + t*t*c.Y,
		}
	case OpClose:
		return cs.start(i)
	}
	return Point{X: c.X, Y: c.Y}
}

// end returns the pen position after command i.
func (cs Commands) end(i int) Point {
	if cs[i].Op == OpClose {
		return cs.start(i)
	}
	return Point{X: cs[i].X, Y: cs[i].Y}
}

// start returns the most recent move-to at or before command i.
func (cs Commands) start(i int) Point {
	for j := i; j >= 0; j-- {
		if cs[j].Op == OpMove {
			return Point{X: cs[j].X, Y: cs[j].Y}
		}
	}
	return Point{}
}
