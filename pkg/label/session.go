// Package label places text labels and dimension leaders so they avoid
// previously placed labels.
//
// # Placement Session
//
// All occupancy state lives in a caller-owned Session. A render pass
// creates one Session, threads it through every view drawer, and discards
// it when the pass ends; the next pass starts from a fresh (or Reset)
// Session. Keeping the accepted-box list out of package state removes the
// classic "forgot to reset between renders" failure, where stale boxes
// accumulate and every later placement falsely reports overlap.
//
// # Algorithm
//
// Place is greedy and order-dependent: it walks the caller-supplied
// candidate anchors in priority order and accepts the first whose padded
// bounding box intersects no previously accepted box. Callers therefore
// order candidates from most to least preferred, typically the nominal
// offset followed by alternating angular and radial jitter of increasing
// magnitude (see Candidates helpers). When every candidate overlaps, the
// last one is accepted anyway and flagged: a label drawn over another label
// is a degraded drawing, a label silently dropped is a wrong one.
package label

import (
	"context"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/scanmaster/blockdraw/pkg/geom"
	"github.com/scanmaster/blockdraw/pkg/observability"
)

// Size is the rendered extent of a label before padding.
type Size struct {
	W, H float64
}

// Placement is the outcome of one Place call.
type Placement struct {
	Anchor   r2.Vec    // the accepted candidate anchor
	Bounds   geom.Rect // padded box recorded for future overlap tests
	Fallback bool      // true when every candidate overlapped
	Index    int       // index of the accepted candidate
}

// Session holds the labels accepted so far in one render pass. It is not
// safe for concurrent use; a render pass is single-threaded by design.
type Session struct {
	ctx      context.Context
	accepted []geom.Rect
}

// Option configures a Session.
type Option func(*Session)

// WithContext attaches a context used when emitting quality diagnostics.
func WithContext(ctx context.Context) Option {
	return func(s *Session) { s.ctx = ctx }
}

// NewSession creates an empty placement session for one render pass.
func NewSession(opts ...Option) *Session {
	s := &Session{ctx: context.Background()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset clears the accepted-box list, returning the session to its initial
// state. Equivalent to creating a fresh session; call it when reusing one
// session object across independent render passes.
func (s *Session) Reset() {
	s.accepted = s.accepted[:0]
}

// Occupied returns a copy of the accepted boxes, in acceptance order.
func (s *Session) Occupied() []geom.Rect {
	out := make([]geom.Rect, len(s.accepted))
	copy(out, s.accepted)
	return out
}

// Len returns the number of labels accepted so far.
func (s *Session) Len() int { return len(s.accepted) }

// Place picks an anchor for a label of the given size from the ranked
// candidate list. Each candidate's box is the label size centered on the
// anchor, grown by padX and padY; the first box that intersects no
// previously accepted box wins. If every candidate overlaps, the last one
// is accepted with Fallback set and a quality diagnostic is emitted —
// placement never fails the render.
//
// The accepted box is recorded in the session so later calls see it. An
// empty candidate list returns a zero Placement with Fallback set and
// records nothing.
func (s *Session) Place(name string, size Size, candidates []r2.Vec, padX, padY float64) Placement {
	if len(candidates) == 0 {
		observability.Quality().OnLabelFallback(s.ctx, name, 0)
		return Placement{Fallback: true, Index: -1}
	}

	for i, anchor := range candidates {
		box := geom.RectAround(anchor, size.W, size.H).Pad(padX, padY)
		if !s.overlapsAny(box) {
			s.accepted = append(s.accepted, box)
			return Placement{Anchor: anchor, Bounds: box, Index: i}
		}
	}

	// Exhausted: take the last candidate and accept the overlap.
	last := len(candidates) - 1
	anchor := candidates[last]
	box := geom.RectAround(anchor, size.W, size.H).Pad(padX, padY)
	s.accepted = append(s.accepted, box)
	observability.Quality().OnLabelFallback(s.ctx, name, len(candidates))
	return Placement{Anchor: anchor, Bounds: box, Fallback: true, Index: last}
}

func (s *Session) overlapsAny(box geom.Rect) bool {
	for _, a := range s.accepted {
		if box.Intersects(a) {
			return true
		}
	}
	return false
}
