package draw

// Line conventions for technical drawings. Visible edges are thick
// continuous, hidden edges thin dashed, center and cut-plane lines thin
// chain, dimensions and leaders thin continuous.
var (
	StyleVisible   = Style{Stroke: "black", Width: 2.0}
	StyleHidden    = Style{Stroke: "black", Width: 1.0, Dash: "6,3"}
	StyleCenter    = Style{Stroke: "black", Width: 0.8, Dash: "12,3,2,3"}
	StyleDimension = Style{Stroke: "black", Width: 0.8}
	StyleGuide     = Style{Stroke: "#888888", Width: 0.6, Dash: "4,3"}
	StyleHatch     = Style{Stroke: "black", Width: 0.6}
	StyleCutPlane  = Style{Stroke: "black", Width: 1.2, Dash: "14,4,3,4"}
	StyleFrame     = Style{Stroke: "black", Width: 1.2}
)

// charWidthFactor approximates the advance of one character of a
// sans-serif face as a fraction of the font size.
const charWidthFactor = 0.6

// TextWidth estimates the rendered width of s at the given font size.
// The estimate tracks average sans-serif metrics closely enough for
// label collision boxes.
func TextWidth(s string, fontSize float64) float64 {
	return float64(len(s)) * fontSize * charWidthFactor
}

// labelHeightFactor pads the font size to the label box height.
const labelHeightFactor = 1.3

// LabelHeight returns the collision-box height for a single text line.
func LabelHeight(fontSize float64) float64 {
	return fontSize * labelHeightFactor
}
