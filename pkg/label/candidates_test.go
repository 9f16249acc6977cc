package label

import (
	"testing"

	"github.com/scanmaster/blockdraw/pkg/geom"
)

func TestRadialCandidates(t *testing.T) {
	center := pt(0, 0)

	got := RadialCandidates(center, 100, 45, 2)

	// nominal + 2 angular pairs + 2 radial bumps
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}

	if got[0] != geom.PolarToCartesian(center, 100, 45) {
		t.Errorf("got[0] = %v, want the nominal anchor", got[0])
	}
	if got[1] != geom.PolarToCartesian(center, 100, 50) {
		t.Errorf("got[1] = %v, want +5 degree jitter", got[1])
	}
	if got[2] != geom.PolarToCartesian(center, 100, 40) {
		t.Errorf("got[2] = %v, want -5 degree jitter", got[2])
	}
	if got[5] != geom.PolarToCartesian(center, 109, 45) {
		t.Errorf("got[5] = %v, want first radial bump", got[5])
	}
}

func TestRadialCandidatesZeroRounds(t *testing.T) {
	got := RadialCandidates(pt(0, 0), 100, 0, 0)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (nominal only)", len(got))
	}
}

func TestRadialCandidatesDeterministic(t *testing.T) {
	a := RadialCandidates(pt(10, 20), 80, 30, 3)
	b := RadialCandidates(pt(10, 20), 80, 30, 3)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("candidate %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestStackCandidates(t *testing.T) {
	got := StackCandidates(pt(100, 100), 2)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0] != pt(100, 100) {
		t.Errorf("got[0] = %v, want nominal", got[0])
	}
	if got[1] != pt(100, 114) {
		t.Errorf("got[1] = %v, want first step below", got[1])
	}
	if got[2] != pt(100, 86) {
		t.Errorf("got[2] = %v, want first step above", got[2])
	}
}
