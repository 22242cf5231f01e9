package resume

// DefaultPersonal returns the zero-value personal info block.
func DefaultPersonal() PersonalInfo {
	return PersonalInfo{}
}

// DefaultUISettings returns the settings a fresh installation starts with.
func DefaultUISettings() UISettings {
	return UISettings{
		ThemeMode:        "light",
		FontScale:        1,
		SelectedTemplate: "minimalist",
	}
}

// DefaultTemplates returns the three seed templates. Callers receive a fresh
// slice each time so in-place template edits never leak into the seeds.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:           "minimalist",
			Name:         "Minimalist",
			Margins:      Margins{Top: 20, Bottom: 20, Left: 20, Right: 20},
			FontSize:     FontSize{Heading: 24, Body: 14},
			HeadingStyle: HeadingStyle{Weight: 600, Color: "#333333"},
			Colors: Palette{
				Primary:    "#333333",
				Secondary:  "#666666",
				Accent:     "#A3D5FF",
				Text:       "#333333",
				Background: "#ffffff",
			},
			Fonts: FontPair{Heading: "Inter", Body: "Inter"},
		},
		{
			ID:           "modern",
			Name:         "Modern",
			Margins:      Margins{Top: 30, Bottom: 30, Left: 30, Right: 30},
			FontSize:     FontSize{Heading: 28, Body: 16},
			HeadingStyle: HeadingStyle{Weight: 700, Color: "#A3D5FF"},
			Colors: Palette{
				Primary:    "#A3D5FF",
				Secondary:  "#B2F2BB",
				Accent:     "#333333",
				Text:       "#333333",
				Background: "#ffffff",
			},
			Fonts: FontPair{Heading: "Merriweather", Body: "Inter"},
		},
		{
			ID:           "classic",
			Name:         "Classic",
			Margins:      Margins{Top: 25, Bottom: 25, Left: 25, Right: 25},
			FontSize:     FontSize{Heading: 22, Body: 12},
			HeadingStyle: HeadingStyle{Weight: 400, Color: "#333333"},
			Colors: Palette{
				Primary:    "#333333",
				Secondary:  "#666666",
				Accent:     "#8B4513",
				Text:       "#333333",
				Background: "#ffffff",
			},
			Fonts: FontPair{Heading: "Merriweather", Body: "Merriweather"},
		},
	}
}

// SkillPalette is the fixed color rotation used when skill colors have to be
// synthesized (fallback parse of plain-text skill lists, new skills).
var SkillPalette = []string{
	"#A3D5FF",
	"#B2F2BB",
	"#FFB3BA",
	"#FFFFBA",
	"#BAE1FF",
	"#FFDFBA",
	"#6366f1",
	"#8b5cf6",
	"#10b981",
}
