package layout

import (
	"math"
	"testing"
)

func TestFitScale(t *testing.T) {
	tests := []struct {
		name               string
		contentW, contentH float64
		vpW, vpH           float64
		padding            float64
		want               float64
	}{
		{
			name:     "width limited",
			contentW: 100, contentH: 50,
			vpW: 100, vpH: 100,
			padding: 0,
			want:    1.0,
		},
		{
			name:     "height limited",
			contentW: 50, contentH: 100,
			vpW: 100, vpH: 100,
			padding: 0,
			want:    1.0,
		},
		{
			name:     "padding shrinks effective viewport",
			contentW: 100, contentH: 100,
			vpW: 100, vpH: 100,
			padding: 0.1,
			want:    0.9,
		},
		{
			name:     "clamped to max",
			contentW: 1, contentH: 1,
			vpW: 1000, vpH: 1000,
			padding: 0,
			want:    2.0,
		},
		{
			name:     "clamped to min",
			contentW: 100000, contentH: 100000,
			vpW: 100, vpH: 100,
			padding: 0,
			want:    0.1,
		},
		{
			name:     "zero content width returns max",
			contentW: 0, contentH: 100,
			vpW: 100, vpH: 100,
			padding: 0,
			want:    2.0,
		},
		{
			name:     "NaN content returns max",
			contentW: math.NaN(), contentH: 100,
			vpW: 100, vpH: 100,
			padding: 0,
			want:    2.0,
		},
		{
			name:     "padding above half is clamped",
			contentW: 100, contentH: 100,
			vpW: 100, vpH: 100,
			padding: 0.9,
			want:    0.5,
		},
		{
			name:     "negative padding is clamped to zero",
			contentW: 100, contentH: 100,
			vpW: 100, vpH: 100,
			padding: -0.2,
			want:    1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitScale(tt.contentW, tt.contentH, tt.vpW, tt.vpH, tt.padding, 0.1, 2.0)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("FitScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitScaleInBand(t *testing.T) {
	// Whatever the inputs, the result stays inside the clamp band.
	inputs := []struct{ cw, ch, vw, vh, pad float64 }{
		{1e-12, 1e-12, 1000, 1000, 0},
		{1e12, 1e12, 10, 10, 0.5},
		{0, 0, 100, 100, 0.25},
		{math.Inf(1), 50, 100, 100, 0},
		{50, 50, 0, 0, 0},
	}

	for _, in := range inputs {
		got := FitScale(in.cw, in.ch, in.vw, in.vh, in.pad, 0.1, 2.0)
		if got < 0.1 || got > 2.0 {
			t.Errorf("FitScale(%v, %v, %v, %v, %v) = %v, outside [0.1, 2.0]",
				in.cw, in.ch, in.vw, in.vh, in.pad, got)
		}
	}
}

func TestFitScaleMonotone(t *testing.T) {
	// Growing the content never grows the scale.
	prev := math.Inf(1)
	for _, size := range []float64{10, 50, 100, 500, 1000, 5000} {
		got := FitScale(size, size, 400, 300, 0.1, 0.1, 2.0)
		if got > prev {
			t.Errorf("FitScale at content %v = %v, larger than previous %v", size, got, prev)
		}
		prev = got
	}
}

func TestFitScaleIdempotent(t *testing.T) {
	first := FitScale(123.4, 567.8, 400, 300, 0.15, 0.1, 2.0)
	for i := 0; i < 5; i++ {
		if got := FitScale(123.4, 567.8, 400, 300, 0.15, 0.1, 2.0); got != first {
			t.Fatalf("call %d = %v, first call = %v", i, got, first)
		}
	}
}

func TestConfigFit(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.Fit(100, 100, 100, 100)
	want := 1 - cfg.Padding
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Fit() = %v, want %v", got, want)
	}
}
