package chart

import (
	"math"
	"testing"

	"github.com/matzehuels/chartgeom/pkg/geom"
)

func TestTreemapTiles(t *testing.T) {
	cfg := DefaultConfig(KindTreemap)
	cfg.Width, cfg.Height, cfg.Padding = 100, 100, 0
	nodes := []TreeNode{{Label: "a", Value: 50}, {Label: "b", Value: 30}, {Label: "c", Value: 20}}
	l := Treemap(nodes, cfg)

	tiles := rects(l, geom.RoleTile)
	if len(tiles) != 3 {
		t.Fatalf("got %d tiles, want 3", len(tiles))
	}
	// Each tile is its packed cell shrunk by half the gap on every side.
	want := []geom.Bounds{
		{X: 0.5, Y: 0.5, W: 49, H: 99},
		{X: 50.5, Y: 0.5, W: 49, H: 59},
		{X: 50.5, Y: 60.5, W: 49, H: 39},
	}
	for i, tile := range tiles {
		b := tile.Bounds()
		if math.Abs(b.X-want[i].X) > 1e-6 || math.Abs(b.Y-want[i].Y) > 1e-6 ||
			math.Abs(b.W-want[i].W) > 1e-6 || math.Abs(b.H-want[i].H) > 1e-6 {
			t.Errorf("tile %d = %+v, want %+v", i, b, want[i])
		}
		if tile.Enter.Effect != geom.EffectFade || tile.Enter.Index != i {
			t.Errorf("tile %d motion = %+v", i, tile.Enter)
		}
	}
}

func TestTreemapLabelsAndColors(t *testing.T) {
	own := geom.MustParseColor("#222222")
	nodes := []TreeNode{
		{Label: "Engineering", Value: 900, Color: &own},
		{Label: "Ops", Value: 100},
	}
	l := Treemap(nodes, DefaultConfig(KindTreemap))
	tiles := rects(l, geom.RoleTile)
	if tiles[0].Fill != own {
		t.Errorf("tile color = %v, want own color", tiles[0].Fill)
	}
	var texts []string
	for _, lb := range labels(l, geom.RoleValueLabel) {
		texts = append(texts, lb.Text)
		if lb.Color != geom.White && lb.Color != geom.Black {
			t.Errorf("label color %v is not a contrast color", lb.Color)
		}
	}
	if len(texts) < 2 || texts[0] != "Engineering" || texts[1] != "900" {
		t.Errorf("labels = %v", texts)
	}
}

func TestTreemapZeroTotal(t *testing.T) {
	cfg := DefaultConfig(KindTreemap)
	cfg.Padding = 0
	l := Treemap([]TreeNode{{Value: 0}, {Value: 0}}, cfg)
	tiles := rects(l, geom.RoleTile)
	if len(tiles) != 2 || math.Abs(tiles[0].Bounds().Area()-tiles[1].Bounds().Area()) > 1e-6 {
		t.Errorf("zero total should split equally: %+v", tiles)
	}
}
