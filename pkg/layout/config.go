package layout

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/scanmaster/blockdraw/pkg/errors"
)

// SizeClass is the coarse part-size bucket that selects a layout policy.
type SizeClass string

// Size classes.
const (
	SizeSmall SizeClass = "small"
	SizeLarge SizeClass = "large"
)

// ClassPolicy is the fraction table for one size class. Widths are
// fractions of the usable canvas width; row splits are fractions of the
// usable canvas height. The values are layout policy chosen for parity with
// the reference drawing standard, not derived quantities.
type ClassPolicy struct {
	LeftColumn float64 `toml:"left_column"` // width fraction of the section column
	TopView    float64 `toml:"top_view"`    // width fraction of the central top view
	SectionRow float64 `toml:"section_row"` // height fraction of section A-A in the left column
	IsoRow     float64 `toml:"iso_row"`     // height fraction of the isometric view in the right column
	LabelFont  float64 `toml:"label_font"`  // label font size, drawing units
	TitleFont  float64 `toml:"title_font"`  // view title font size, drawing units
	OmitGuides bool    `toml:"omit_guides"` // drop tertiary reference arcs (declutter rule)
}

// Config holds the tunable layout parameters. Zero values are filled from
// DefaultConfig; use Load to override from a TOML file.
type Config struct {
	MinScale      float64     `toml:"min_scale"`      // lower scale clamp
	MaxScale      float64     `toml:"max_scale"`      // upper scale clamp
	Padding       float64     `toml:"padding"`        // viewport padding fraction, clamped to [0, 0.5]
	Margin        float64     `toml:"margin"`         // canvas margin, drawing units
	LargeDiameter float64     `toml:"large_diameter"` // outer diameter at which the large class kicks in
	LargeMargin   float64     `toml:"large_margin"`   // reduced margin for the large class
	Small         ClassPolicy `toml:"small"`
	Large         ClassPolicy `toml:"large"`
}

// DefaultConfig returns the compiled-in layout policy.
func DefaultConfig() Config {
	return Config{
		MinScale:      0.1,
		MaxScale:      2.0,
		Padding:       0.1,
		Margin:        24,
		LargeDiameter: 600,
		LargeMargin:   14,
		Small: ClassPolicy{
			LeftColumn: 0.25,
			TopView:    0.50,
			SectionRow: 0.5,
			IsoRow:     0.55,
			LabelFont:  13,
			TitleFont:  15,
			OmitGuides: false,
		},
		Large: ClassPolicy{
			LeftColumn: 0.22,
			TopView:    0.58,
			SectionRow: 0.5,
			IsoRow:     0.55,
			LabelFont:  11,
			TitleFont:  13,
			OmitGuides: true,
		},
	}
}

// Load reads a TOML config file and merges it over the defaults. Missing
// keys keep their default values; out-of-band values are normalized or
// rejected by Validate.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes the config in place and rejects unusable values.
// The padding fraction is clamped to [0, 0.5] here, at the configuration
// boundary, so the scale math never sees a viewport inverted by padding.
func (c *Config) Validate() error {
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.Padding > 0.5 {
		c.Padding = 0.5
	}
	if c.MinScale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min_scale must be positive, got %v", c.MinScale)
	}
	if c.MaxScale < c.MinScale {
		return errors.New(errors.ErrCodeInvalidConfig,
			"max_scale (%v) must not be below min_scale (%v)", c.MaxScale, c.MinScale)
	}
	if c.Margin < 0 || c.LargeMargin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margins must not be negative")
	}
	if c.LargeDiameter <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"large_diameter must be positive, got %v", c.LargeDiameter)
	}
	for _, p := range []ClassPolicy{c.Small, c.Large} {
		if p.LeftColumn <= 0 || p.TopView <= 0 || p.LeftColumn+p.TopView >= 1 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"column fractions must be positive and sum below 1, got left=%v top=%v",
				p.LeftColumn, p.TopView)
		}
		if p.SectionRow <= 0 || p.SectionRow >= 1 || p.IsoRow <= 0 || p.IsoRow >= 1 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"row fractions must be in (0, 1), got section=%v iso=%v", p.SectionRow, p.IsoRow)
		}
	}
	return nil
}

// Classify buckets a part by outer diameter.
func (c Config) Classify(outerDiameter float64) SizeClass {
	if outerDiameter >= c.LargeDiameter {
		return SizeLarge
	}
	return SizeSmall
}

// Policy returns the fraction table for a size class.
func (c Config) Policy(class SizeClass) ClassPolicy {
	if class == SizeLarge {
		return c.Large
	}
	return c.Small
}

// MarginFor returns the canvas margin for a size class. The large class
// trades margin for drawing area.
func (c Config) MarginFor(class SizeClass) float64 {
	if class == SizeLarge {
		return c.LargeMargin
	}
	return c.Margin
}
