package stack

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestAccumulate(t *testing.T) {
	tests := []struct {
		name   string
		points [][]float64
		series int
		want   [][]float64
	}{
		{
			name:   "two categories",
			points: [][]float64{{3, 7}, {5, 5}},
			series: 2,
			want:   [][]float64{{3, 10}, {5, 10}},
		},
		{
			name:   "ragged pads with zeros",
			points: [][]float64{{1}, {1, 2, 3}},
			series: 3,
			want:   [][]float64{{1, 1, 1}, {1, 3, 6}},
		},
		{
			name:   "extra values ignored",
			points: [][]float64{{1, 2, 3}},
			series: 2,
			want:   [][]float64{{1, 3}},
		},
		{
			name:   "empty",
			points: nil,
			series: 2,
			want:   [][]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Accumulate(tt.points, tt.series)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Accumulate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccumulateDoesNotMutate(t *testing.T) {
	in := [][]float64{{1, 2}, {3, 4}}
	Accumulate(in, 2)
	if !reflect.DeepEqual(in, [][]float64{{1, 2}, {3, 4}}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestAccumulateMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		n := 1 + rng.IntN(6)
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.Float64() * 100
		}
		cum := Accumulate([][]float64{values}, n)[0]
		for i := 1; i < len(cum); i++ {
			if cum[i] < cum[i-1] {
				t.Fatalf("cumulative not monotonic for %v: %v", values, cum)
			}
		}
	}
}

func TestMax(t *testing.T) {
	cum := Accumulate([][]float64{{3, 7}, {5, 5}}, 2)
	if got := Max(cum); got != 10 {
		t.Errorf("Max() = %v, want 10", got)
	}
	if got := Max(nil); got != 0 {
		t.Errorf("Max(nil) = %v, want 0", got)
	}
	if got := Max([][]float64{{1, 4}, {2, 9}, {}}); got != 9 {
		t.Errorf("Max() = %v, want 9", got)
	}
}

func TestSegment(t *testing.T) {
	cum := []float64{3, 10, 12}
	tests := []struct {
		i      int
		lo, hi float64
	}{
		{0, 0, 3},
		{1, 3, 10},
		{2, 10, 12},
		{5, 12, 12},
		{-1, 0, 0},
	}
	for _, tt := range tests {
		lo, hi := Segment(cum, tt.i)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("Segment(%d) = [%v, %v], want [%v, %v]", tt.i, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestSeriesCount(t *testing.T) {
	if got := SeriesCount([][]float64{{1}, {1, 2, 3}, {}}); got != 3 {
		t.Errorf("SeriesCount() = %d, want 3", got)
	}
}
