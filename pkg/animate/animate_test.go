package animate

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func TestSample(t *testing.T) {
	const total = time.Second
	tests := []struct {
		name     string
		progress float64
		index    int
		stagger  time.Duration
		want     float64
	}{
		{"start", 0, 0, 0, 0},
		{"half no stagger", 0.5, 0, 0, 50},
		{"done", 1, 3, 100 * time.Millisecond, 100},
		{"delayed not started", 0.2, 3, 100 * time.Millisecond, 0},
		// (600 - 300) / (1000 - 300) = 3/7
		{"delayed midway", 0.6, 3, 100 * time.Millisecond, 100 * 3.0 / 7.0},
		{"clamped below", -1, 0, 0, 0},
		{"clamped above", 2, 0, 0, 100},
		{"no time left", 0.99, 20, 100 * time.Millisecond, 0},
		{"no time left settles", 1, 20, 100 * time.Millisecond, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(tt.progress, tt.index, 100, tt.stagger, total)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sample() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleSettlesExactly(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	for range 500 {
		target := (rng.Float64() - 0.5) * 1e6
		index := rng.IntN(1000)
		stagger := time.Duration(rng.IntN(200)) * time.Millisecond
		total := time.Duration(rng.IntN(2000)) * time.Millisecond
		if got := Sample(1, index, target, stagger, total); got != target {
			t.Fatalf("Sample(1, %d, %v) = %v", index, target, got)
		}
	}
}

func TestSampleMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		got := Sample(float64(i)/100, 4, 10, 50*time.Millisecond, time.Second)
		if got < prev {
			t.Fatalf("Sample decreased at progress %v: %v < %v", float64(i)/100, got, prev)
		}
		prev = got
	}
}

func TestEasing(t *testing.T) {
	for _, e := range []Easing{Linear, EaseOut} {
		if got := e.Apply(0); got != 0 {
			t.Errorf("%v.Apply(0) = %v", e, got)
		}
		if got := e.Apply(1); got != 1 {
			t.Errorf("%v.Apply(1) = %v", e, got)
		}
	}
	if got := EaseOut.Apply(0.5); got != 0.875 {
		t.Errorf("EaseOut.Apply(0.5) = %v, want 0.875", got)
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		in      string
		want    Easing
		wantErr bool
	}{
		{"", Linear, false},
		{"linear", Linear, false},
		{" Ease-Out ", EaseOut, false},
		{"bounce", Linear, true},
	}
	for _, tt := range tests {
		got, err := ParseEasing(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEasing(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEasing(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
