package block

import (
	"math"
	"testing"

	"github.com/scanmaster/blockdraw/pkg/errors"
)

func ptr(v float64) *float64 { return &v }

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		name    string
		outer   float64
		inner   *float64
		width   float64
		angle   float64
		wantErr bool
	}{
		{"valid ring segment", 300, ptr(200), 50, 60, false},
		{"valid solid", 150, nil, 40, 90, false},
		{"valid full circle", 300, ptr(250), 50, 360, false},

		{"zero outer", 0, nil, 50, 60, true},
		{"negative outer", -300, nil, 50, 60, true},
		{"NaN outer", math.NaN(), nil, 50, 60, true},
		{"infinite outer", math.Inf(1), nil, 50, 60, true},
		{"zero inner", 300, ptr(0), 50, 60, true},
		{"inner equals outer", 300, ptr(300), 50, 60, true},
		{"inner exceeds outer", 300, ptr(400), 50, 60, true},
		{"zero width", 300, ptr(200), 0, 60, true},
		{"NaN width", 300, ptr(200), math.NaN(), 60, true},
		{"zero angle", 300, ptr(200), 50, 0, true},
		{"negative angle", 300, ptr(200), 50, -30, true},
		{"angle above 360", 300, ptr(200), 50, 361, true},
		{"NaN angle", 300, ptr(200), 50, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeometry(tt.outer, tt.inner, tt.width, tt.angle)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewGeometry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Errorf("error code = %v, want INVALID_GEOMETRY", errors.GetCode(err))
			}
		})
	}
}

func TestGeometryImmutable(t *testing.T) {
	inner := 200.0
	g, err := NewGeometry(300, &inner, 50, 60)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	// Mutating the caller's value must not reach the constructed geometry.
	inner = 999
	if g.Inner() != 200 {
		t.Errorf("Inner() = %v after caller mutation, want 200", g.Inner())
	}
}

func TestGeometryDerived(t *testing.T) {
	g, err := NewGeometry(300, ptr(200), 50, 60)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	if got := g.Wall(); got != 100 {
		t.Errorf("Wall() = %v, want 100", got)
	}
	if got := g.OuterDiameter(); got != 600 {
		t.Errorf("OuterDiameter() = %v, want 600", got)
	}
	if got := g.StartAngle(); got != -30 {
		t.Errorf("StartAngle() = %v, want -30", got)
	}
	if got := g.EndAngle(); got != 30 {
		t.Errorf("EndAngle() = %v, want 30", got)
	}
	if g.IsSolid() {
		t.Error("IsSolid() = true for ring segment")
	}
	if g.IsFullCircle() {
		t.Error("IsFullCircle() = true for 60 degree segment")
	}
}

func TestGeometrySolid(t *testing.T) {
	g, err := NewGeometry(150, nil, 40, 360)
	if err != nil {
		t.Fatalf("NewGeometry() error = %v", err)
	}

	if !g.IsSolid() {
		t.Error("IsSolid() = false, want true")
	}
	if got := g.Wall(); got != 150 {
		t.Errorf("Wall() = %v, want full outer radius 150", got)
	}
	if !g.IsFullCircle() {
		t.Error("IsFullCircle() = false for 360 degree span")
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Profile
		wantErr bool
	}{
		{"empty defaults to segment", "", ProfileSegment, false},
		{"segment", "segment", ProfileSegment, false},
		{"full ring", "full-ring", ProfileFullRing, false},
		{"tube", "tube", ProfileTube, false},
		{"solid bar", "solid-bar", ProfileSolidBar, false},
		{"unknown", "hexagon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProfile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProfile(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
