package block

import (
	"sort"

	"github.com/scanmaster/blockdraw/pkg/errors"
)

// ReflectorKind distinguishes the two machined reflector families.
type ReflectorKind string

// Reflector kinds.
const (
	// FBH is a flat-bottom hole drilled along the part axis.
	FBH ReflectorKind = "fbh"
	// SDH is a side-drilled hole bored radially into the wall.
	SDH ReflectorKind = "sdh"
)

// ParseReflectorKind converts a string to a ReflectorKind, defaulting empty
// input to FBH.
func ParseReflectorKind(s string) (ReflectorKind, error) {
	switch s {
	case "", string(FBH):
		return FBH, nil
	case string(SDH):
		return SDH, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFeature, "unknown reflector kind %q", s)
}

// Feature is one reference reflector machined into the block. The engine
// only reads features; ownership stays with the caller.
type Feature struct {
	Label    string        // display label, e.g. "FBH-1"
	Angle    float64       // angular offset from segment start, degrees
	Axial    float64       // axial position along the part width, mm
	Depth    float64       // drilled depth, mm
	Diameter float64       // hole diameter, mm
	Kind     ReflectorKind // fbh or sdh
}

// NewFeatureSet validates every feature against the part geometry and
// returns them sorted ascending by angle. Downstream section-angle and
// drawing logic assumes this order. The input slice is not modified.
//
// Validation per feature: finite angle within [0, SegmentAngle], finite
// axial position within [0, AxialWidth], positive depth and diameter, and a
// known reflector kind.
func NewFeatureSet(geo Geometry, features []Feature) ([]Feature, error) {
	out := make([]Feature, len(features))
	copy(out, features)

	for _, f := range out {
		label := f.Label
		if label == "" {
			label = "feature"
		}
		if err := errors.ValidateFinite(label+" angle", f.Angle); err != nil {
			return nil, err
		}
		if f.Angle < 0 || f.Angle > geo.SegmentAngle {
			return nil, errors.New(errors.ErrCodeInvalidFeature,
				"%s angle %v outside segment span [0, %v]", label, f.Angle, geo.SegmentAngle)
		}
		if err := errors.ValidateFinite(label+" axial position", f.Axial); err != nil {
			return nil, err
		}
		if f.Axial < 0 || f.Axial > geo.AxialWidth {
			return nil, errors.New(errors.ErrCodeInvalidFeature,
				"%s axial position %v outside part width [0, %v]", label, f.Axial, geo.AxialWidth)
		}
		if err := errors.ValidatePositive(label+" depth", f.Depth); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFeature, err, "feature %s", label)
		}
		if err := errors.ValidatePositive(label+" diameter", f.Diameter); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFeature, err, "feature %s", label)
		}
		if f.Kind != FBH && f.Kind != SDH {
			return nil, errors.New(errors.ErrCodeInvalidFeature,
				"%s has unknown reflector kind %q", label, f.Kind)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Angle < out[j].Angle })
	return out, nil
}
