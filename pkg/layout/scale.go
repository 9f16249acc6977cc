package layout

import "math"

// FitScale returns the uniform scale that fits a content box into a
// viewport with the given padding fraction on every side. The effective
// viewport is vpW×(1−padding) by vpH×(1−padding); the result is the smaller
// of the two axis ratios, clamped to [minScale, maxScale].
//
// The function is stateless and idempotent: identical inputs always yield
// the identical output, which keeps re-renders on window resize
// deterministic. A non-positive or non-finite content dimension would
// divide to infinity; that degenerate case returns maxScale, trading a
// visibly wrong scale for a render that still completes.
func FitScale(contentW, contentH, vpW, vpH, padding, minScale, maxScale float64) float64 {
	if padding < 0 {
		padding = 0
	}
	if padding > 0.5 {
		padding = 0.5
	}

	if !isFinitePositive(contentW) || !isFinitePositive(contentH) {
		return maxScale
	}

	effW := vpW * (1 - padding)
	effH := vpH * (1 - padding)

	scale := math.Min(effW/contentW, effH/contentH)
	return clamp(scale, minScale, maxScale)
}

// Fit applies FitScale with the config's padding and clamp band.
func (c Config) Fit(contentW, contentH, vpW, vpH float64) float64 {
	return FitScale(contentW, contentH, vpW, vpH, c.Padding, c.MinScale, c.MaxScale)
}

// fitRaw is FitScale before the clamp band is applied. Compute compares
// it against the clamped value to report clamping. Degenerate content
// still maps to maxScale so the comparison stays quiet for that case.
func (c Config) fitRaw(contentW, contentH, vpW, vpH float64) float64 {
	padding := c.Padding
	if padding < 0 {
		padding = 0
	}
	if padding > 0.5 {
		padding = 0.5
	}
	if !isFinitePositive(contentW) || !isFinitePositive(contentH) {
		return c.MaxScale
	}
	return math.Min(vpW*(1-padding)/contentW, vpH*(1-padding)/contentH)
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
