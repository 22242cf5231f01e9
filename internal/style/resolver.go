// Package style combines a template's base metrics with user overrides into
// the effective render configuration consumed by the assembler and exporter.
package style

import "resumeforge/internal/resume"

// Effective is the fully resolved render configuration.
type Effective struct {
	HeadingSizePx float64
	BodySizePx    float64
	Margins       resume.Margins
	HeadingStyle  resume.HeadingStyle
	Colors        resume.Palette
	Fonts         resume.FontPair
}

// Resolve computes the effective style for a template under the given
// settings. Pixel sizes are the template base sizes scaled by FontScale; the
// UI clamps the scale to a sane range but any positive multiplier is
// honored here. A zero or negative scale is treated as 1.
//
// Custom color and font overrides substitute into the palette when set
// (empty string means "keep the template value").
func Resolve(t resume.Template, ui resume.UISettings) Effective {
	scale := ui.FontScale
	if scale <= 0 {
		scale = 1
	}

	eff := Effective{
		HeadingSizePx: float64(t.FontSize.Heading) * scale,
		BodySizePx:    float64(t.FontSize.Body) * scale,
		Margins:       t.Margins,
		HeadingStyle:  t.HeadingStyle,
		Colors:        t.Colors,
		Fonts:         t.Fonts,
	}

	if c := ui.CustomColors.Primary; c != "" {
		eff.Colors.Primary = c
	}
	if c := ui.CustomColors.Secondary; c != "" {
		eff.Colors.Secondary = c
	}
	if c := ui.CustomColors.Accent; c != "" {
		eff.Colors.Accent = c
	}
	if f := ui.CustomFonts.Heading; f != "" {
		eff.Fonts.Heading = f
	}
	if f := ui.CustomFonts.Body; f != "" {
		eff.Fonts.Body = f
	}

	return eff
}
