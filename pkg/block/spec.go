package block

import (
	"encoding/json"
	"io"
	"os"

	"github.com/scanmaster/blockdraw/pkg/errors"
)

// Spec is a fully validated part description: everything a render pass
// needs to draw one calibration block. Construct it with NewSpec or decode
// it from JSON with ReadSpec; either way the contained geometry and
// features have passed validation.
type Spec struct {
	ID       string
	Profile  Profile
	Geometry Geometry
	Features []Feature // sorted ascending by angle
}

// NewSpec validates the given parts and assembles a Spec. Features are
// copied and sorted; the caller's slice is untouched.
func NewSpec(id string, profile Profile, geo Geometry, features []Feature) (*Spec, error) {
	if err := errors.ValidatePartID(id); err != nil {
		return nil, err
	}
	if !validProfiles[profile] {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "unknown profile %q", profile)
	}
	if profile == ProfileSolidBar && geo.InnerRadius != nil {
		return nil, errors.New(errors.ErrCodeInvalidSpec,
			"solid-bar profile cannot have an inner radius")
	}
	if (profile == ProfileFullRing || profile == ProfileTube) && !geo.IsFullCircle() {
		return nil, errors.New(errors.ErrCodeInvalidSpec,
			"%s profile requires a 360 degree segment, got %v", profile, geo.SegmentAngle)
	}

	sorted, err := NewFeatureSet(geo, features)
	if err != nil {
		return nil, err
	}
	return &Spec{ID: id, Profile: profile, Geometry: geo, Features: sorted}, nil
}

// SectionAngles derives the section cut-plane angles for this part.
func (s *Spec) SectionAngles() SectionAngles {
	return ResolveSectionAngles(s.Geometry.SegmentAngle, s.Features)
}

// specJSON is the wire form of a Spec. Field names match the JSON emitted
// by the report-generation frontend.
type specJSON struct {
	ID       string        `json:"id"`
	Profile  string        `json:"profile,omitempty"`
	Geometry geometryJSON  `json:"geometry"`
	Features []featureJSON `json:"features,omitempty"`
}

type geometryJSON struct {
	OuterRadius  float64  `json:"outer_radius"`
	InnerRadius  *float64 `json:"inner_radius,omitempty"`
	AxialWidth   float64  `json:"axial_width"`
	SegmentAngle float64  `json:"segment_angle"`
}

type featureJSON struct {
	Label    string  `json:"label"`
	Angle    float64 `json:"angle"`
	Axial    float64 `json:"axial"`
	Depth    float64 `json:"depth"`
	Diameter float64 `json:"diameter"`
	Kind     string  `json:"kind,omitempty"`
}

// ReadSpec decodes and validates a JSON part spec from r.
//
// The input must be a JSON object of the form:
//
//	{
//	  "id": "CAL-BLOCK-001",
//	  "profile": "segment",
//	  "geometry": {
//	    "outer_radius": 300,
//	    "inner_radius": 200,
//	    "axial_width": 50,
//	    "segment_angle": 60
//	  },
//	  "features": [
//	    {"label": "FBH-1", "angle": 5, "axial": 25, "depth": 10, "diameter": 3, "kind": "fbh"}
//	  ]
//	}
//
// "profile" defaults to "segment" and feature "kind" defaults to "fbh".
// ReadSpec returns the same validation errors as NewGeometry, NewFeatureSet
// and NewSpec for out-of-range values; malformed JSON is wrapped with an
// INVALID_SPEC code. ReadSpec does not close r.
func ReadSpec(r io.Reader) (*Spec, error) {
	var data specJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode spec")
	}

	profile, err := ParseProfile(data.Profile)
	if err != nil {
		return nil, err
	}

	geo, err := NewGeometry(data.Geometry.OuterRadius, data.Geometry.InnerRadius,
		data.Geometry.AxialWidth, data.Geometry.SegmentAngle)
	if err != nil {
		return nil, err
	}

	features := make([]Feature, 0, len(data.Features))
	for _, f := range data.Features {
		kind, err := ParseReflectorKind(f.Kind)
		if err != nil {
			return nil, err
		}
		features = append(features, Feature{
			Label:    f.Label,
			Angle:    f.Angle,
			Axial:    f.Axial,
			Depth:    f.Depth,
			Diameter: f.Diameter,
			Kind:     kind,
		})
	}

	return NewSpec(data.ID, profile, geo, features)
}

// LoadSpec reads a JSON spec file at path.
//
// LoadSpec opens the file, decodes it using [ReadSpec], and closes the
// file. A missing file is reported with a FILE_NOT_FOUND code; decode and
// validation failures carry the same codes as ReadSpec.
func LoadSpec(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadSpec(f)
}

// WriteSpec encodes s as indented JSON to w, the inverse of ReadSpec.
func WriteSpec(s *Spec, w io.Writer) error {
	data := specJSON{
		ID:      s.ID,
		Profile: string(s.Profile),
		Geometry: geometryJSON{
			OuterRadius:  s.Geometry.OuterRadius,
			InnerRadius:  s.Geometry.InnerRadius,
			AxialWidth:   s.Geometry.AxialWidth,
			SegmentAngle: s.Geometry.SegmentAngle,
		},
	}
	for _, f := range s.Features {
		data.Features = append(data.Features, featureJSON{
			Label:    f.Label,
			Angle:    f.Angle,
			Axial:    f.Axial,
			Depth:    f.Depth,
			Diameter: f.Diameter,
			Kind:     string(f.Kind),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "encode spec")
	}
	return nil
}
