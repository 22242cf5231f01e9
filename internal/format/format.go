// Package format turns structured section form submissions into the
// canonical rich-content fragment stored on a section. One formatter per
// section type; this package is the single dispatch point for that mapping.
package format

import (
	"fmt"
	"strings"

	"resumeforge/internal/resume"
)

// EducationData is an education form submission.
type EducationData struct {
	School             string `json:"school"`
	Degree             string `json:"degree"`
	FieldOfStudy       string `json:"fieldOfStudy"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	Location           string `json:"location"`
	GPA                string `json:"gpa"`
	Description        string `json:"description"`
	IsCurrentlyStudying bool  `json:"isCurrentlyStudying"`
}

// ExperienceData is an experience form submission.
type ExperienceData struct {
	Position           string `json:"position"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	EmploymentType     string `json:"employmentType"`
	Description        string `json:"description"`
	IsCurrentlyWorking bool   `json:"isCurrentlyWorking"`
}

// EmploymentTypes is the fixed set offered by experience forms.
var EmploymentTypes = []string{
	"Full-time",
	"Part-time",
	"Contract",
	"Freelance",
	"Internship",
	"Volunteer",
}

// ProjectData is a project form submission.
type ProjectData struct {
	Name         string   `json:"name"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Technologies []string `json:"technologies"`
	ProjectURL   string   `json:"projectUrl"`
	GithubURL    string   `json:"githubUrl"`
	Description  string   `json:"description"`
	IsOngoing    bool     `json:"isOngoing"`
}

// CustomData is a custom section form submission. Content is the verbatim
// rich-text body and Title replaces the section title.
type CustomData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Education renders an education entry. Optional fields (location, GPA,
// description) emit no markup when absent; an ongoing entry ends with
// "Present" instead of an end date.
func Education(d EducationData) string {
	var b strings.Builder
	b.WriteString(`<div class="education-entry">` + "\n")
	fmt.Fprintf(&b, `  <div class="education-header"><strong>%s in %s</strong></div>`+"\n", d.Degree, d.FieldOfStudy)
	fmt.Fprintf(&b, `  <div class="education-school">%s</div>`+"\n", joinComma(d.School, d.Location))
	fmt.Fprintf(&b, `  <div class="education-dates">%s</div>`+"\n", dateRange(d.StartDate, d.EndDate, d.IsCurrentlyStudying, "Present"))
	if d.GPA != "" {
		fmt.Fprintf(&b, `  <div class="education-gpa">GPA: %s</div>`+"\n", d.GPA)
	}
	if d.Description != "" {
		fmt.Fprintf(&b, `  <div class="education-description">%s</div>`+"\n", d.Description)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Experience renders an experience entry with the employment-type suffix on
// the date line.
func Experience(d ExperienceData) string {
	var b strings.Builder
	b.WriteString(`<div class="experience-entry">` + "\n")
	fmt.Fprintf(&b, `  <div class="experience-header"><strong>%s</strong></div>`+"\n", d.Position)
	fmt.Fprintf(&b, `  <div class="experience-company">%s</div>`+"\n", joinComma(d.Company, d.Location))
	fmt.Fprintf(&b, `  <div class="experience-dates">%s &bull; %s</div>`+"\n", dateRange(d.StartDate, d.EndDate, d.IsCurrentlyWorking, "Present"), d.EmploymentType)
	if d.Description != "" {
		fmt.Fprintf(&b, `  <div class="experience-description">%s</div>`+"\n", d.Description)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Project renders a project entry. Open-ended projects use the "Ongoing"
// sentinel; technologies are comma-joined; absent links emit nothing.
func Project(d ProjectData) string {
	var b strings.Builder
	b.WriteString(`<div class="project-entry">` + "\n")
	fmt.Fprintf(&b, `  <div class="project-header"><strong>%s</strong></div>`+"\n", d.Name)
	fmt.Fprintf(&b, `  <div class="project-dates">%s</div>`+"\n", dateRange(d.StartDate, d.EndDate, d.IsOngoing, "Ongoing"))
	if len(d.Technologies) > 0 {
		fmt.Fprintf(&b, `  <div class="project-technologies">Technologies: %s</div>`+"\n", strings.Join(d.Technologies, ", "))
	}
	if d.ProjectURL != "" {
		fmt.Fprintf(&b, `  <div class="project-url">Project URL: <a href="%s">%s</a></div>`+"\n", d.ProjectURL, d.ProjectURL)
	}
	if d.GithubURL != "" {
		fmt.Fprintf(&b, `  <div class="project-github">GitHub: <a href="%s">%s</a></div>`+"\n", d.GithubURL, d.GithubURL)
	}
	if d.Description != "" {
		fmt.Fprintf(&b, `  <div class="project-description">%s</div>`+"\n", d.Description)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Custom passes the rich-text body through verbatim.
func Custom(d CustomData) string {
	return d.Content
}

// Section dispatches a decoded form payload to the formatter for the given
// section type and returns the canonical content string. Skills sections are
// not formatted here: their content is maintained directly by the skills
// editing surface (see resume.ParseSkills).
func Section(t resume.SectionType, data map[string]any) (string, error) {
	switch t {
	case resume.SectionEducation:
		var d EducationData
		if err := decode(data, &d); err != nil {
			return "", err
		}
		return Education(d), nil
	case resume.SectionExperience:
		var d ExperienceData
		if err := decode(data, &d); err != nil {
			return "", err
		}
		return Experience(d), nil
	case resume.SectionProjects:
		var d ProjectData
		if err := decode(data, &d); err != nil {
			return "", err
		}
		return Project(d), nil
	case resume.SectionCustom:
		var d CustomData
		if err := decode(data, &d); err != nil {
			return "", err
		}
		return Custom(d), nil
	default:
		return "", fmt.Errorf("no formatter for section type %q", t)
	}
}

func dateRange(start, end string, open bool, sentinel string) string {
	if open {
		return start + " - " + sentinel
	}
	return start + " - " + end
}

func joinComma(first, second string) string {
	if second == "" {
		return first
	}
	return first + ", " + second
}
