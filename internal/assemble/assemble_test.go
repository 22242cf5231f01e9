package assemble

import (
	"testing"

	"resumeforge/internal/resume"
	"resumeforge/internal/style"
)

func testEffective() style.Effective {
	return style.Resolve(resume.DefaultTemplates()[0], resume.DefaultUISettings())
}

func TestAssemblePartition(t *testing.T) {
	sections := []resume.Section{
		{ID: "1", Type: resume.SectionCustom, Title: "About Me", Content: "<p>Hi there</p>"},
		{ID: "2", Type: resume.SectionSkills, Title: "Skills", Content: `[{"id":"a","name":"Go","color":"#ef4444"}]`},
		{ID: "3", Type: resume.SectionCustom, Title: "Languages", Content: "English\nFrench\n"},
		{ID: "4", Type: resume.SectionExperience, Title: "Work Experience", Content: "<div>job</div>"},
		{ID: "5", Type: resume.SectionEducation, Title: "Education", Content: "<div>school</div>"},
		{ID: "6", Type: resume.SectionProjects, Title: "Projects", Content: "<div>proj</div>"},
	}

	doc := Assemble(resume.DefaultPersonal(), sections, testEffective())

	if doc.Sidebar.About != "<p>Hi there</p>" {
		t.Errorf("about not placed: %q", doc.Sidebar.About)
	}
	if len(doc.Sidebar.Skills) != 1 || doc.Sidebar.Skills[0] != "Go" {
		t.Errorf("skills not placed: %+v", doc.Sidebar.Skills)
	}
	if len(doc.Sidebar.Languages) != 2 || doc.Sidebar.Languages[1] != "French" {
		t.Errorf("languages not split per line: %+v", doc.Sidebar.Languages)
	}

	// Main column: education group first, then experience, then generic.
	if len(doc.Main) != 3 {
		t.Fatalf("expected 3 main groups, got %d", len(doc.Main))
	}
	if doc.Main[0].Kind != GroupEducation || doc.Main[0].Title != "Education" {
		t.Errorf("group 0 = %+v", doc.Main[0])
	}
	if doc.Main[1].Kind != GroupExperience || doc.Main[1].Title != "Experience" {
		t.Errorf("group 1 = %+v", doc.Main[1])
	}
	if doc.Main[2].Kind != GroupGeneric || doc.Main[2].Title != "Projects" {
		t.Errorf("group 2 = %+v", doc.Main[2])
	}
}

func TestAssembleSidebarSectionsExcludedFromMain(t *testing.T) {
	sections := []resume.Section{
		{ID: "1", Type: resume.SectionCustom, Title: "About", Content: "first"},
		{ID: "2", Type: resume.SectionCustom, Title: "About again", Content: "second"},
	}

	doc := Assemble(resume.DefaultPersonal(), sections, testEffective())

	if doc.Sidebar.About != "first" {
		t.Errorf("first about must win: %q", doc.Sidebar.About)
	}
	// The duplicate is sidebar-classified too and never reaches the main
	// column.
	if len(doc.Main) != 0 {
		t.Errorf("sidebar sections leaked into main: %+v", doc.Main)
	}
}

func TestAssembleEmptyGroupsOmitted(t *testing.T) {
	doc := Assemble(resume.DefaultPersonal(), nil, testEffective())
	if len(doc.Main) != 0 {
		t.Errorf("expected no groups for no sections, got %+v", doc.Main)
	}
	if doc.Sidebar.About != "" || doc.Sidebar.Skills != nil || doc.Sidebar.Languages != nil {
		t.Errorf("sidebar not empty: %+v", doc.Sidebar)
	}
}

func TestAssembleKeepsEntryOrderWithinGroups(t *testing.T) {
	sections := []resume.Section{
		{ID: "1", Type: resume.SectionExperience, Title: "Work Experience", Content: "first"},
		{ID: "2", Type: resume.SectionEducation, Title: "Education", Content: "between"},
		{ID: "3", Type: resume.SectionExperience, Title: "Work Experience", Content: "second"},
	}

	doc := Assemble(resume.DefaultPersonal(), sections, testEffective())

	var experience *Group
	for i := range doc.Main {
		if doc.Main[i].Kind == GroupExperience {
			experience = &doc.Main[i]
		}
	}
	if experience == nil {
		t.Fatal("experience group missing")
	}
	if len(experience.Entries) != 2 {
		t.Fatalf("expected 2 experience entries, got %d", len(experience.Entries))
	}
	if experience.Entries[0].Content != "first" || experience.Entries[1].Content != "second" {
		t.Errorf("entry order not preserved: %+v", experience.Entries)
	}
}

func TestAssembleSkillsCommaFallback(t *testing.T) {
	sections := []resume.Section{
		{ID: "1", Type: resume.SectionSkills, Title: "Skills", Content: "Go, Rust, "},
	}

	doc := Assemble(resume.DefaultPersonal(), sections, testEffective())
	if len(doc.Sidebar.Skills) != 2 {
		t.Fatalf("expected 2 skills from fallback, got %+v", doc.Sidebar.Skills)
	}
}
