package block

// Section cut-plane fallback fractions, used when the part carries fewer
// than two features. The 20%/80% split keeps the A and C planes clear of
// both the segment edges and the B midplane.
const (
	sectionFallbackFirst = 0.20
	sectionFallbackLast  = 0.80
)

// SectionAngles holds the angular positions of the three section cut-planes
// in the centered frame, derived once per render pass and read-only
// afterwards.
type SectionAngles struct {
	A float64 // cut through the first feature
	B float64 // cut through the segment midpoint
	C float64 // cut through the last feature
}

// ResolveSectionAngles derives the cut-plane angles for a segment from its
// feature list. It is a pure function of its inputs.
//
// B is always the angular midpoint of the segment (0° in the centered
// frame). A and C are the angular positions of the first and last feature;
// features must be sorted ascending by angle, which NewFeatureSet
// guarantees.
//
// With no features, A and C fall back to 20% and 80% of the segment span.
// With a single feature (or several at one distinct angle), A is that
// feature and C keeps the 80% fallback so the two planes never collide.
func ResolveSectionAngles(segmentAngle float64, features []Feature) SectionAngles {
	start := -segmentAngle / 2

	angles := SectionAngles{
		A: start + sectionFallbackFirst*segmentAngle,
		B: start + segmentAngle/2,
		C: start + sectionFallbackLast*segmentAngle,
	}
	if len(features) == 0 {
		return angles
	}

	first := features[0].Angle
	last := features[len(features)-1].Angle

	angles.A = start + first
	if last != first {
		angles.C = start + last
	}
	return angles
}
