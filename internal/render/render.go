// Package render turns an assembled document into the self-contained HTML
// page that both the live preview endpoint and the PDF export pipeline use.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resumeforge/internal/assemble"
	"resumeforge/internal/resume"
	"resumeforge/internal/style"
)

// PageWidthPx is the fixed document width, A4 at 96 DPI.
const PageWidthPx = 794

// PageHeightPx is one A4 page height at 96 DPI.
const PageHeightPx = 1123

var pageTemplate = template.Must(
	template.New("document").Funcs(template.FuncMap{
		// Section content is produced by our own formatter or typed by the
		// owner of the data; render it verbatim instead of escaping it.
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"safeCSS":  func(s string) template.CSS { return template.CSS(s) },
		"safeURL":  func(s string) template.URL { return template.URL(s) },
	}).Parse(documentTemplate),
)

// view is the template root. It wraps the document with a few derived
// values that are awkward to compute inside the template.
type view struct {
	Personal     resume.PersonalInfo
	Style        style.Effective
	Sidebar      assemble.Sidebar
	Main         []mainGroup
	HeaderSizePx float64
	HasContact   bool
}

type mainGroup struct {
	Title    string
	Timeline bool
	Entries  []assemble.Entry
}

// Render produces the full HTML page for a document.
func Render(doc assemble.Document) (string, error) {
	v := view{
		Personal:     doc.Personal,
		Style:        doc.Style,
		Sidebar:      doc.Sidebar,
		HeaderSizePx: doc.Style.HeadingSizePx * 1.75,
		HasContact: doc.Personal.Phone != "" || doc.Personal.Email != "" ||
			doc.Personal.Address != "" || doc.Personal.Website != "",
	}
	for _, g := range doc.Main {
		v.Main = append(v.Main, mainGroup{
			Title:    g.Title,
			Timeline: g.Kind == assemble.GroupEducation || g.Kind == assemble.GroupExperience,
			Entries:  g.Entries,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}
