package chart

import (
	"testing"

	"github.com/matzehuels/chartgeom/pkg/geom"
)

func TestLineMidpoint(t *testing.T) {
	pts := []SeriesPoint{{X: Num(0), Y: 0}, {X: Num(1), Y: 10}, {X: Num(2), Y: 0}}
	l := Line(pts, DefaultConfig(KindLine))

	lines := paths(l, geom.RoleLine)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	cmds := lines[0].Commands
	zeroY, tenY := l.Plot.Bottom(), l.Plot.Y

	mid := cmds.At(1, 0.5)
	// Screen y grows downward: above value 0 means smaller than zeroY.
	if !(mid.Y < zeroY && mid.Y > tenY) {
		t.Errorf("midpoint y = %v, want strictly between %v and %v", mid.Y, tenY, zeroY)
	}
	// The control point sits at the previous point's height (value 0).
	if cmds[1].CY != zeroY {
		t.Errorf("control y = %v, want %v", cmds[1].CY, zeroY)
	}
	if got, want := lines[0].D(), "M 20 180 Q 85 180 150 20 Q 215 20 280 180"; got != want {
		t.Errorf("D() = %q, want %q", got, want)
	}
}

func TestLinePassesThroughMarkers(t *testing.T) {
	pts := []SeriesPoint{{X: Str("mon"), Y: 3}, {X: Str("tue"), Y: 8}, {X: Str("wed"), Y: 5}, {X: Str("thu"), Y: 9}}
	l := Line(pts, DefaultConfig(KindLine))
	cmds := paths(l, geom.RoleLine)[0].Commands
	markers := rects(l, geom.RoleMarker)
	if len(markers) != len(pts) {
		t.Fatalf("got %d markers, want %d", len(markers), len(pts))
	}
	for i, m := range markers {
		end := cmds.At(i, 1)
		if !near(end.X, m.X+markerRadius) || !near(end.Y, m.Y+markerRadius) {
			t.Errorf("segment %d ends at %v, marker centered at (%v, %v)", i, end, m.X+markerRadius, m.Y+markerRadius)
		}
		if m.Enter.Effect != geom.EffectScale || m.Enter.Index != i {
			t.Errorf("marker %d motion = %+v", i, m.Enter)
		}
	}
	axis := labels(l, geom.RoleAxisLabel)
	if axis[len(axis)-1].Text != "thu" {
		t.Errorf("last category label = %q, want thu", axis[len(axis)-1].Text)
	}
}

func TestLineDegenerate(t *testing.T) {
	single := Line([]SeriesPoint{{X: Num(1), Y: 4}}, DefaultConfig(KindLine))
	if got := paths(single, geom.RoleLine)[0].D(); got != "M 20 180" {
		t.Errorf("single point D() = %q, want lone move", got)
	}

	flat := Line([]SeriesPoint{{Y: 5}, {Y: 5}, {Y: 5}}, DefaultConfig(KindLine))
	for _, m := range rects(flat, geom.RoleMarker) {
		if m.Y+markerRadius != flat.Plot.Bottom() {
			t.Errorf("flat line marker at y=%v, want baseline", m.Y+markerRadius)
		}
	}
}

func TestLineLabelThinning(t *testing.T) {
	pts := make([]SeriesPoint, 100)
	for i := range pts {
		pts[i] = SeriesPoint{X: Num(float64(i)), Y: float64(i % 7)}
	}
	cfg := DefaultConfig(KindLine)
	cfg.ShowGrid = false
	l := Line(pts, cfg)
	if n := len(labels(l, geom.RoleAxisLabel)); n >= 100 || n == 0 {
		t.Errorf("got %d category labels for 100 points", n)
	}
}
