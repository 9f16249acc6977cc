package block

import (
	"github.com/scanmaster/blockdraw/pkg/errors"
)

// Profile identifies the cross-section family of a part. The view drawers
// branch on this tag instead of carrying one drawing routine per shape.
type Profile string

// Supported part profiles.
const (
	ProfileSegment  Profile = "segment"   // annular segment (partial ring)
	ProfileFullRing Profile = "full-ring" // closed ring, 360° span
	ProfileTube     Profile = "tube"      // full ring drawn with axial emphasis
	ProfileSolidBar Profile = "solid-bar" // no inner radius
)

var validProfiles = map[Profile]bool{
	ProfileSegment:  true,
	ProfileFullRing: true,
	ProfileTube:     true,
	ProfileSolidBar: true,
}

// ParseProfile converts a string to a Profile, defaulting empty input to
// ProfileSegment.
func ParseProfile(s string) (Profile, error) {
	if s == "" {
		return ProfileSegment, nil
	}
	p := Profile(s)
	if !validProfiles[p] {
		return "", errors.New(errors.ErrCodeInvalidSpec, "unknown profile %q", s)
	}
	return p, nil
}

// Geometry describes the overall dimensions of a calibration block.
// All lengths are millimetres, angles degrees. A Geometry is validated at
// construction and never mutated afterwards.
type Geometry struct {
	OuterRadius  float64  // outer wall radius, > 0
	InnerRadius  *float64 // inner wall radius, nil for solid shapes
	AxialWidth   float64  // extent along the part axis, > 0
	SegmentAngle float64  // angular span in (0, 360]
}

// NewGeometry validates the given dimensions and returns an immutable
// Geometry. It fails fast with an INVALID_GEOMETRY error on non-finite or
// non-positive values, outer ≤ inner, or a span outside (0, 360].
func NewGeometry(outer float64, inner *float64, axialWidth, segmentAngle float64) (Geometry, error) {
	if err := errors.ValidatePositive("outer radius", outer); err != nil {
		return Geometry{}, err
	}
	if inner != nil {
		if err := errors.ValidatePositive("inner radius", *inner); err != nil {
			return Geometry{}, err
		}
		if *inner >= outer {
			return Geometry{}, errors.New(errors.ErrCodeInvalidGeometry,
				"outer radius (%v) must exceed inner radius (%v)", outer, *inner)
		}
	}
	if err := errors.ValidatePositive("axial width", axialWidth); err != nil {
		return Geometry{}, err
	}
	if err := errors.ValidateFinite("segment angle", segmentAngle); err != nil {
		return Geometry{}, err
	}
	if segmentAngle <= 0 || segmentAngle > 360 {
		return Geometry{}, errors.New(errors.ErrCodeInvalidGeometry,
			"segment angle must be in (0, 360], got %v", segmentAngle)
	}

	g := Geometry{
		OuterRadius:  outer,
		AxialWidth:   axialWidth,
		SegmentAngle: segmentAngle,
	}
	if inner != nil {
		v := *inner
		g.InnerRadius = &v
	}
	return g, nil
}

// IsSolid reports whether the part has no inner bore.
func (g Geometry) IsSolid() bool { return g.InnerRadius == nil }

// Inner returns the inner radius, or 0 for solid shapes.
func (g Geometry) Inner() float64 {
	if g.InnerRadius == nil {
		return 0
	}
	return *g.InnerRadius
}

// Wall returns the radial wall thickness. For solid shapes this is the full
// outer radius.
func (g Geometry) Wall() float64 {
	return g.OuterRadius - g.Inner()
}

// OuterDiameter returns the overall part diameter, the value the layout
// size-class switch keys on.
func (g Geometry) OuterDiameter() float64 {
	return 2 * g.OuterRadius
}

// StartAngle returns the angular position of the segment start in the
// centered frame: −SegmentAngle/2.
func (g Geometry) StartAngle() float64 { return -g.SegmentAngle / 2 }

// EndAngle returns the angular position of the segment end in the centered
// frame: +SegmentAngle/2.
func (g Geometry) EndAngle() float64 { return g.SegmentAngle / 2 }

// IsFullCircle reports whether the segment closes into a complete ring.
func (g Geometry) IsFullCircle() bool { return g.SegmentAngle == 360 }
