package label_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scanmaster/blockdraw/pkg/label"
)

func ExampleSession_Place() {
	// One session per render pass.
	s := label.NewSession()

	size := label.Size{W: 40, H: 12}
	spot := []r2.Vec{{X: 100, Y: 100}}

	first := s.Place("FBH-1", size, spot, 2, 2)
	second := s.Place("FBH-2", size, spot, 2, 2)

	fmt.Println("first fallback:", first.Fallback)
	fmt.Println("second fallback:", second.Fallback)

	// Output:
	// first fallback: false
	// second fallback: true
}

func ExampleRadialCandidates() {
	center := r2.Vec{X: 0, Y: 0}

	// Nominal anchor, then alternating angular jitter, then radial bumps.
	candidates := label.RadialCandidates(center, 120, 30, 2)
	fmt.Println("candidates:", len(candidates))

	// Output:
	// candidates: 7
}
