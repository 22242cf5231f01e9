// Package assemble builds the single logical page-content structure that the
// preview and export surfaces render. It partitions the ordered section list
// into a sidebar (about, contact, skills, languages) and a main column
// (education and experience timelines plus a catch-all group per remaining
// section), using resume.Classify as the only classification point.
package assemble

import (
	"strings"

	"resumeforge/internal/resume"
	"resumeforge/internal/style"
)

// GroupKind tags a main-column group.
type GroupKind string

const (
	GroupEducation  GroupKind = "education"
	GroupExperience GroupKind = "experience"
	GroupGeneric    GroupKind = "generic"
)

// Entry is one opaque rich-content block inside a group.
type Entry struct {
	SectionID string
	Content   string
}

// Group is a titled run of entries in the main column.
type Group struct {
	Kind    GroupKind
	Title   string
	Entries []Entry
}

// Sidebar is the left column of the document.
type Sidebar struct {
	About     string
	Skills    []string
	Languages []string
}

// Document is the assembled renderable tree.
type Document struct {
	Personal resume.PersonalInfo
	Style    style.Effective
	Sidebar  Sidebar
	Main     []Group
}

// Assemble partitions sections into the two-column document.
//
// Sidebar placement wins over stored order: the first about-classified
// section supplies the About block, the first Skills section supplies the
// skill bullets (names only; colors belong to the live editor), and the
// first language-classified section is split into one bullet per non-empty
// line. Every sidebar-classified section is excluded from the main column,
// including duplicates beyond the first of each kind.
//
// Main groups keep store order by filtering, never re-sorting. Groups with
// no entries are omitted entirely.
func Assemble(personal resume.PersonalInfo, sections []resume.Section, eff style.Effective) Document {
	doc := Document{Personal: personal, Style: eff}

	var education, experience []Entry
	var generic []Group

	for _, s := range sections {
		switch resume.Classify(s) {
		case resume.RoleAbout:
			if doc.Sidebar.About == "" {
				doc.Sidebar.About = s.Content
			}
		case resume.RoleSkills:
			if doc.Sidebar.Skills == nil {
				doc.Sidebar.Skills = skillNames(s.Content)
			}
		case resume.RoleLanguage:
			if doc.Sidebar.Languages == nil {
				doc.Sidebar.Languages = splitLines(s.Content)
			}
		case resume.RoleMain:
			entry := Entry{SectionID: s.ID, Content: s.Content}
			switch s.Type {
			case resume.SectionEducation:
				education = append(education, entry)
			case resume.SectionExperience:
				experience = append(experience, entry)
			default:
				generic = append(generic, Group{
					Kind:    GroupGeneric,
					Title:   s.Title,
					Entries: []Entry{entry},
				})
			}
		}
	}

	if len(education) > 0 {
		doc.Main = append(doc.Main, Group{Kind: GroupEducation, Title: "Education", Entries: education})
	}
	if len(experience) > 0 {
		doc.Main = append(doc.Main, Group{Kind: GroupExperience, Title: "Experience", Entries: experience})
	}
	doc.Main = append(doc.Main, generic...)

	return doc
}

func skillNames(content string) []string {
	skills := resume.ParseSkills(content)
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func splitLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
