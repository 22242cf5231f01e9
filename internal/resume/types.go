package resume

// PersonalInfo holds the identity block shown at the top of the document.
// All fields are plain strings; the UI trims and validates, the model does not.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Website   string `json:"website"`
	Address   string `json:"address"`
	// PhotoURI is a self-contained data URI (image/jpeg or image/png).
	PhotoURI string `json:"photoURI"`
}

// SectionType is the closed set of section kinds.
type SectionType string

const (
	SectionEducation  SectionType = "Education"
	SectionExperience SectionType = "Experience"
	SectionSkills     SectionType = "Skills"
	SectionProjects   SectionType = "Projects"
	SectionCustom     SectionType = "Custom"
)

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	switch t {
	case SectionEducation, SectionExperience, SectionSkills, SectionProjects, SectionCustom:
		return true
	}
	return false
}

// DefaultTitle returns the title a freshly added section gets.
func (t SectionType) DefaultTitle() string {
	if t == SectionExperience {
		return "Work Experience"
	}
	return string(t)
}

// Section is one entry in the ordered section list.
//
// Content is a derived, regenerable view of Data for the structured types
// (Education, Experience, Projects); for Custom sections Data["content"] is
// the source of truth and is copied verbatim into Content. Skills sections
// keep a JSON-encoded ordered skill list in Content instead.
type Section struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Data    map[string]any `json:"data,omitempty"`
}

// Margins are page margins in pixels.
type Margins struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// FontSize carries the template base sizes in pixels.
type FontSize struct {
	Heading int `json:"heading"`
	Body    int `json:"body"`
}

// HeadingStyle describes how section headings are drawn.
type HeadingStyle struct {
	Weight int    `json:"weight"`
	Color  string `json:"color"`
}

// Palette is a template color palette.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
	Background string `json:"background"`
}

// FontPair names the heading and body font families.
type FontPair struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Template is one of the predefined visual templates. Templates are seed
// data: users may edit them in place but never create or delete them.
type Template struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Margins      Margins      `json:"margins"`
	FontSize     FontSize     `json:"fontSize"`
	HeadingStyle HeadingStyle `json:"headingStyle"`
	Colors       Palette      `json:"colors"`
	Fonts        FontPair     `json:"fonts"`
}

// CustomColors are user overrides for the template palette. Empty string
// means "no override"; the style resolver substitutes only non-empty values.
type CustomColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// CustomFonts are user overrides for the template font pair, with the same
// empty-means-unset convention as CustomColors.
type CustomFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// UISettings holds presentation settings that live outside any template.
type UISettings struct {
	ThemeMode        string       `json:"themeMode"`
	FontScale        float64      `json:"fontScale"`
	SelectedTemplate string       `json:"selectedTemplate"`
	CustomColors     CustomColors `json:"customColors"`
	CustomFonts      CustomFonts  `json:"customFonts"`
}

// Skill is one entry of a Skills section's ordered list.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
