// Package block defines the domain model for calibration-block drawings:
// the validated part geometry, its machined reference reflectors, and the
// section cut-plane angles derived from them.
//
// # Model
//
// A calibration block is an annular segment (possibly a full ring, or a
// solid bar when no inner radius exists) carrying a set of reference
// reflectors: flat-bottom holes (FBH) drilled axially, and side-drilled
// holes (SDH) drilled radially into the wall. Reflector positions are
// dimensioned as angular offsets from the segment start plus an axial
// position along the part width.
//
// # Validation
//
// All construction goes through NewGeometry and NewFeatureSet, which reject
// non-finite or non-positive dimensions before any layout work begins.
// Values are immutable afterwards: one validated Spec describes a part for
// the lifetime of a render pass.
//
// # Angle Frame
//
// The segment is centered on 0°, so it spans [−SegmentAngle/2, +SegmentAngle/2]
// in the drawing's polar frame. Feature angles in a Spec are offsets from
// the segment start; ResolveSectionAngles converts them into the centered
// frame when deriving cut planes.
package block
