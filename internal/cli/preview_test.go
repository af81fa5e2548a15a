package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/geom"
)

func barLayout(t *testing.T) chart.Layout {
	t.Helper()
	cfg := chart.DefaultConfig(chart.KindBar)
	cfg.Width, cfg.Height, cfg.Padding = 100, 100, 0
	cfg.ShowGrid, cfg.ShowLabels = false, false
	l, err := chart.Build(chart.KindBar, chart.Data{Categories: []chart.CategoricalPoint{{Label: "a", Value: 1}}}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestRasterizeBar(t *testing.T) {
	l := barLayout(t)

	cv := rasterize(l.Frame(1), l.Width, l.Height, 10)
	if cv.cols != 10 || cv.rows != 5 {
		t.Fatalf("canvas = %dx%d, want 10x5", cv.cols, cv.rows)
	}
	// The bar spans x in [10, 90): cell centers 15..85.
	if got := cv.filled(); got != 40 {
		t.Errorf("filled = %d, want 40", got)
	}
	if cv.set[0] || !cv.set[1] || !cv.set[8] || cv.set[9] {
		t.Errorf("first row = %v", cv.set[:10])
	}

	if got := rasterize(l.Frame(0), l.Width, l.Height, 10).filled(); got != 0 {
		t.Errorf("first frame filled = %d, want 0", got)
	}
}

func TestRasterizePaths(t *testing.T) {
	red := geom.RGB(255, 0, 0)
	square := geom.Commands{
		geom.MoveTo(0, 0), geom.LineTo(100, 0), geom.LineTo(100, 100), geom.LineTo(0, 100), geom.ClosePath(),
	}
	filled := rasterize([]geom.Shape{geom.Path{Commands: square, Fill: &red, Opacity: 1}}, 100, 100, 10)
	if got := filled.filled(); got != 50 {
		t.Errorf("filled square = %d cells, want 50", got)
	}

	diagonal := geom.Commands{geom.MoveTo(0, 0), geom.LineTo(99, 99)}
	stroked := rasterize([]geom.Shape{geom.Path{Commands: diagonal, Stroke: &red, Opacity: 1}}, 100, 100, 10)
	if got := stroked.filled(); got < 5 || got > 12 {
		t.Errorf("stroked diagonal = %d cells, want a thin line", got)
	}

	grid := rasterize([]geom.Shape{geom.Path{Commands: square, Fill: &red, Opacity: 1, Role: geom.RoleGrid}}, 100, 100, 10)
	if grid.filled() != 0 {
		t.Error("grid lines should be skipped")
	}
}

func TestFlatten(t *testing.T) {
	cmds := geom.Commands{
		geom.MoveTo(0, 0), geom.QuadTo(5, 10, 10, 0),
		geom.MoveTo(20, 0), geom.LineTo(30, 0), geom.ClosePath(),
	}
	polys := flatten(cmds)
	if len(polys) != 2 {
		t.Fatalf("subpaths = %d, want 2", len(polys))
	}
	if len(polys[0]) != 1+pathSamples {
		t.Errorf("curve points = %d, want %d", len(polys[0]), 1+pathSamples)
	}
	if last := polys[0][len(polys[0])-1]; last != (geom.Point{X: 10, Y: 0}) {
		t.Errorf("curve ends at %v", last)
	}
	if last := polys[1][len(polys[1])-1]; last != polys[1][0] {
		t.Error("close should return to the subpath start")
	}
}

func TestPreviewModelPlaysToEnd(t *testing.T) {
	l := barLayout(t)
	start := time.Unix(1000, 0)
	m := newPreviewModel("Signups", l, start)
	if m.progress != 0 {
		t.Fatalf("initial progress = %v, want 0", m.progress)
	}

	next, cmd := m.Update(frameMsg(start.Add(l.Timing.Duration / 2)))
	m = next.(previewModel)
	if m.progress != 0.5 || m.done || cmd == nil {
		t.Errorf("halfway: progress=%v done=%v cmd=%v", m.progress, m.done, cmd != nil)
	}

	next, cmd = m.Update(frameMsg(start.Add(l.Timing.Duration)))
	m = next.(previewModel)
	if m.progress != 1 || !m.done || cmd != nil {
		t.Errorf("end: progress=%v done=%v cmd=%v", m.progress, m.done, cmd != nil)
	}

	view := m.View()
	if !strings.Contains(view, "Signups") || !strings.Contains(view, "100%") {
		t.Errorf("view missing title or progress:\n%s", view)
	}
}

func TestPreviewModelKeys(t *testing.T) {
	m := newPreviewModel("x", barLayout(t), time.Now())
	m.done = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if next.(previewModel).done || cmd == nil {
		t.Error("replay should restart ticking")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should send QuitMsg")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	if next.(previewModel).cols != 48 {
		t.Errorf("cols = %d, want 48", next.(previewModel).cols)
	}
}

func TestPreviewCommandFrames(t *testing.T) {
	path := writeDoc(t, "bar.yaml", barDoc)
	out, err := execute(t, "preview", path, "--frames", "3", "--cols", "20")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if strings.Count(out, "frame ") != 3 || !strings.Contains(out, "Signups") {
		t.Errorf("unexpected preview output:\n%s", out)
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0.5, 26); !strings.Contains(got, "50%") {
		t.Errorf("progressBar(0.5) = %q", got)
	}
}
