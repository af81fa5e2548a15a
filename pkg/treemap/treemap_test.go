package treemap

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/chartgeom/pkg/geom"
)

const eps = 1e-6

func totalArea(rs []geom.Bounds) float64 {
	s := 0.0
	for _, r := range rs {
		s += r.Area()
	}
	return s
}

func checkTiling(t *testing.T, values []float64, region geom.Bounds, rs []geom.Bounds) {
	t.Helper()
	if len(rs) != len(values) {
		t.Fatalf("got %d rects for %d values", len(rs), len(values))
	}
	if got, want := totalArea(rs), region.Area(); math.Abs(got-want) > eps*math.Max(1, want) {
		t.Fatalf("total area = %v, want %v (values %v)", got, want, values)
	}
	for i, r := range rs {
		if r.W < -eps || r.H < -eps {
			t.Fatalf("rect %d has negative size: %+v", i, r)
		}
		if r.X < region.X-eps || r.Y < region.Y-eps ||
			r.Right() > region.Right()+eps || r.Bottom() > region.Bottom()+eps {
			t.Fatalf("rect %d %+v escapes region %+v", i, r, region)
		}
		for j := i + 1; j < len(rs); j++ {
			if ov := r.Overlap(rs[j]); ov > eps {
				t.Fatalf("rects %d and %d overlap by %v: %+v %+v", i, j, ov, r, rs[j])
			}
		}
	}
}

func TestSquarifyExample(t *testing.T) {
	region := geom.Bounds{W: 100, H: 100}
	values := []float64{50, 30, 20}
	rs := Squarify(values, region)
	checkTiling(t, values, region, rs)

	want := []geom.Bounds{
		{X: 0, Y: 0, W: 50, H: 100},
		{X: 50, Y: 0, W: 50, H: 60},
		{X: 50, Y: 60, W: 50, H: 40},
	}
	for i := range want {
		if math.Abs(rs[i].X-want[i].X) > eps || math.Abs(rs[i].Y-want[i].Y) > eps ||
			math.Abs(rs[i].W-want[i].W) > eps || math.Abs(rs[i].H-want[i].H) > eps {
			t.Errorf("rect %d = %+v, want %+v", i, rs[i], want[i])
		}
	}
	if got := rs[0].Area(); math.Abs(got-5000) > eps {
		t.Errorf("largest item area = %v, want 5000", got)
	}
}

func TestSquarifyEmpty(t *testing.T) {
	if got := Squarify(nil, geom.Bounds{W: 10, H: 10}); got != nil {
		t.Errorf("Squarify(nil) = %v, want nil", got)
	}
}

func TestSquarifyZeroTotalSplitsEqually(t *testing.T) {
	region := geom.Bounds{X: 10, Y: 20, W: 90, H: 60}
	values := []float64{0, 0, 0}
	rs := Squarify(values, region)
	checkTiling(t, values, region, rs)
	for i, r := range rs {
		if math.Abs(r.Area()-region.Area()/3) > eps {
			t.Errorf("rect %d area = %v, want %v", i, r.Area(), region.Area()/3)
		}
	}
}

func TestSquarifyHugeValues(t *testing.T) {
	region := geom.Bounds{W: 100, H: 100}
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{"two maximal", []float64{math.MaxFloat64, math.MaxFloat64}, []float64{5000, 5000}},
		{"three quarters", []float64{math.MaxFloat64, math.MaxFloat64 / 3}, []float64{7500, 2500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := Squarify(tt.values, region)
			checkTiling(t, tt.values, region, rs)
			for i, r := range rs {
				if math.Abs(r.Area()-tt.want[i]) > eps*tt.want[i] {
					t.Errorf("rect %d area = %v, want %v", i, r.Area(), tt.want[i])
				}
			}
		})
	}
}

func TestSquarifyIgnoresBadValues(t *testing.T) {
	region := geom.Bounds{W: 100, H: 100}
	values := []float64{10, -5, math.NaN(), 10, math.Inf(1)}
	rs := Squarify(values, region)
	checkTiling(t, values, region, rs)
	for _, i := range []int{1, 2, 4} {
		if rs[i].Area() > eps {
			t.Errorf("rect %d area = %v, want 0", i, rs[i].Area())
		}
	}
	if math.Abs(rs[0].Area()-5000) > eps || math.Abs(rs[3].Area()-5000) > eps {
		t.Errorf("valid items = %v, %v, want 5000 each", rs[0].Area(), rs[3].Area())
	}
}

func TestSquarifyInputOrder(t *testing.T) {
	region := geom.Bounds{W: 120, H: 80}
	a := Squarify([]float64{6, 1, 3}, region)
	b := Squarify([]float64{1, 3, 6}, region)
	if a[0] == b[2] && a[1] == b[0] && a[2] == b[1] {
		t.Errorf("reordered input produced the same packing")
	}
	// Area follows the item regardless of order.
	if math.Abs(a[0].Area()-b[2].Area()) > eps {
		t.Errorf("item area depends on order: %v vs %v", a[0].Area(), b[2].Area())
	}
}

func TestSquarifyProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for range 300 {
		n := 1 + rng.IntN(25)
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.Float64() * 100
			if rng.IntN(10) == 0 {
				values[i] = 0
			}
		}
		region := geom.Bounds{
			X: rng.Float64() * 50,
			Y: rng.Float64() * 50,
			W: 1 + rng.Float64()*400,
			H: 1 + rng.Float64()*400,
		}
		rs := Squarify(values, region)
		checkTiling(t, values, region, rs)

		total := 0.0
		for _, v := range values {
			total += v
		}
		if total == 0 {
			continue
		}
		for i, v := range values {
			want := v / total * region.Area()
			if math.Abs(rs[i].Area()-want) > 1e-6*region.Area() {
				t.Fatalf("rect %d area = %v, want %v", i, rs[i].Area(), want)
			}
		}
	}
}

func TestWorst(t *testing.T) {
	if got := worst([]float64{5000}, 100); got != 2 {
		t.Errorf("worst(single) = %v, want 2", got)
	}
	if got := worst([]float64{10, 0}, 100); !math.IsInf(got, 1) {
		t.Errorf("worst with zero item = %v, want +Inf", got)
	}
}
