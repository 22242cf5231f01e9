package resume

import "strings"

// Role says where the assembler places a section.
type Role int

const (
	RoleMain Role = iota
	RoleAbout
	RoleSkills
	RoleLanguage
)

// Classify maps a section to its layout role.
//
// The about/language rules match on free-text titles, which is fragile but
// is the compatibility contract with existing documents. Keeping the
// matching here in one place lets a future explicit role field replace it
// without touching the assembler. Rules apply in fixed priority order:
// about before skills before language.
func Classify(s Section) Role {
	title := strings.ToLower(s.Title)
	switch {
	case s.Type == SectionCustom && strings.Contains(title, "about"):
		return RoleAbout
	case s.Type == SectionSkills:
		return RoleSkills
	case strings.Contains(title, "language"):
		return RoleLanguage
	default:
		return RoleMain
	}
}
