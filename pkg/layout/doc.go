// Package layout partitions the drawing canvas into per-view regions and
// computes the scale factor each view renders at.
//
// # Page Layout
//
// The canvas (minus a margin) is split into three columns:
//
//	┌────────────┬──────────────────────────┬──────────────┐
//	│ SECTION A-A│                          │   ISOMETRIC  │
//	├────────────┤         TOP VIEW         ├──────────────┤
//	│ SECTION B-B│                          │  SECTION C-C │
//	└────────────┴──────────────────────────┴──────────────┘
//
// Column widths come from a per-size-class fraction table, not from a
// geometric optimization: matching the reference drawing standard's layout
// is the requirement, so the fractions are policy. The "large" class (outer
// diameter at or above a threshold) uses tighter margins and smaller fonts,
// and drops tertiary reference arcs to keep visual density in check.
//
// # Scales
//
// Top and isometric views use FitScale on the part's bounding box. Section
// views fit the cross-section instead: wall thickness by axial width. All
// scales are clamped to the configured [MinScale, MaxScale] band, so a
// pathological part yields a visibly wrong but finite drawing rather than
// an aborted render.
package layout
