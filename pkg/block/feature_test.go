package block

import (
	"math"
	"testing"

	"github.com/scanmaster/blockdraw/pkg/errors"
)

func testGeometry(t *testing.T) Geometry {
	t.Helper()
	g, err := NewGeometry(300, ptr(200), 50, 60)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}
	return g
}

func TestNewFeatureSetSorts(t *testing.T) {
	geo := testGeometry(t)

	features := []Feature{
		feat("FBH-3", 55),
		feat("FBH-1", 5),
		feat("FBH-2", 30),
	}

	sorted, err := NewFeatureSet(geo, features)
	if err != nil {
		t.Fatalf("NewFeatureSet() error = %v", err)
	}

	wantOrder := []string{"FBH-1", "FBH-2", "FBH-3"}
	for i, want := range wantOrder {
		if sorted[i].Label != want {
			t.Errorf("sorted[%d].Label = %q, want %q", i, sorted[i].Label, want)
		}
	}

	// The caller's slice must be untouched.
	if features[0].Label != "FBH-3" {
		t.Errorf("input slice was reordered, features[0] = %q", features[0].Label)
	}
}

func TestNewFeatureSetStableForEqualAngles(t *testing.T) {
	geo := testGeometry(t)

	features := []Feature{
		feat("first", 30),
		feat("second", 30),
	}

	sorted, err := NewFeatureSet(geo, features)
	if err != nil {
		t.Fatalf("NewFeatureSet() error = %v", err)
	}
	if sorted[0].Label != "first" || sorted[1].Label != "second" {
		t.Errorf("equal angles reordered: got [%s, %s]", sorted[0].Label, sorted[1].Label)
	}
}

func TestNewFeatureSetValidation(t *testing.T) {
	geo := testGeometry(t)

	tests := []struct {
		name    string
		mutate  func(*Feature)
		wantErr bool
	}{
		{"valid", func(f *Feature) {}, false},
		{"angle below span", func(f *Feature) { f.Angle = -1 }, true},
		{"angle above span", func(f *Feature) { f.Angle = 61 }, true},
		{"angle at span edge", func(f *Feature) { f.Angle = 60 }, false},
		{"NaN angle", func(f *Feature) { f.Angle = math.NaN() }, true},
		{"axial below zero", func(f *Feature) { f.Axial = -1 }, true},
		{"axial above width", func(f *Feature) { f.Axial = 51 }, true},
		{"zero depth", func(f *Feature) { f.Depth = 0 }, true},
		{"negative diameter", func(f *Feature) { f.Diameter = -3 }, true},
		{"infinite diameter", func(f *Feature) { f.Diameter = math.Inf(1) }, true},
		{"unknown kind", func(f *Feature) { f.Kind = "notch" }, true},
		{"sdh kind", func(f *Feature) { f.Kind = SDH }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := feat("FBH-1", 5)
			tt.mutate(&f)

			_, err := NewFeatureSet(geo, []Feature{f})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFeatureSet() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewFeatureSetEmpty(t *testing.T) {
	geo := testGeometry(t)

	sorted, err := NewFeatureSet(geo, nil)
	if err != nil {
		t.Fatalf("NewFeatureSet(nil) error = %v", err)
	}
	if len(sorted) != 0 {
		t.Errorf("len = %d, want 0", len(sorted))
	}
}

func TestParseReflectorKind(t *testing.T) {
	tests := []struct {
		input   string
		want    ReflectorKind
		wantErr bool
	}{
		{"", FBH, false},
		{"fbh", FBH, false},
		{"sdh", SDH, false},
		{"notch", "", true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseReflectorKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReflectorKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseReflectorKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFeature) {
				t.Errorf("error code = %v, want INVALID_FEATURE", errors.GetCode(err))
			}
		})
	}
}
