package label

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scanmaster/blockdraw/pkg/geom"
)

// Jitter steps for the conventional candidate ladders. The angular step is
// small enough that a relocated label still reads as belonging to its
// feature; the radial step pushes labels outward, never into the part.
const (
	angularStepDeg = 5.0
	radialStep     = 9.0
	verticalStep   = 14.0
)

// RadialCandidates builds the ranked anchor ladder for a label attached to
// a feature at the given polar position: the nominal anchor first, then
// alternating ± angular jitter of increasing magnitude, then outward radial
// bumps at the nominal angle. rounds controls how many jitter magnitudes
// are generated; rounds <= 0 yields just the nominal anchor.
//
// The ladder is deterministic: identical inputs produce identical
// candidate sequences, which Place's greedy scan turns into deterministic
// layouts.
func RadialCandidates(center r2.Vec, radius, angleDeg float64, rounds int) []r2.Vec {
	out := make([]r2.Vec, 0, 1+3*max(rounds, 0))
	out = append(out, geom.PolarToCartesian(center, radius, angleDeg))
	for i := 1; i <= rounds; i++ {
		d := float64(i) * angularStepDeg
		out = append(out,
			geom.PolarToCartesian(center, radius, angleDeg+d),
			geom.PolarToCartesian(center, radius, angleDeg-d),
		)
	}
	for i := 1; i <= rounds; i++ {
		out = append(out, geom.PolarToCartesian(center, radius+float64(i)*radialStep, angleDeg))
	}
	return out
}

// StackCandidates builds the ranked ladder for a label in a rectangular
// view: the nominal anchor first, then alternating positions below and
// above at increasing vertical offsets. rounds <= 0 yields just the
// nominal anchor.
func StackCandidates(nominal r2.Vec, rounds int) []r2.Vec {
	out := make([]r2.Vec, 0, 1+2*max(rounds, 0))
	out = append(out, nominal)
	for i := 1; i <= rounds; i++ {
		dy := float64(i) * verticalStep
		out = append(out,
			r2.Vec{X: nominal.X, Y: nominal.Y + dy},
			r2.Vec{X: nominal.X, Y: nominal.Y - dy},
		)
	}
	return out
}
