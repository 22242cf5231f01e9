package render

import (
	"resumeforge/internal/assemble"
	"resumeforge/internal/resume"
	"resumeforge/internal/store"
	"resumeforge/internal/style"
)

// FromState resolves the selected template, assembles the document and
// renders it. This is the single path shared by the live preview endpoint
// and the export worker, so both always produce the same page.
func FromState(state store.State) (string, error) {
	tpl := selectedTemplate(state)
	eff := style.Resolve(tpl, state.UISettings)
	doc := assemble.Assemble(state.Personal, state.Sections, eff)
	return Render(doc)
}

// selectedTemplate looks up the active template, falling back to the first
// catalog entry. DecodeState guards against dangling selections, so the
// fallbacks only matter for hand-built states.
func selectedTemplate(state store.State) resume.Template {
	for _, t := range state.Templates {
		if t.ID == state.UISettings.SelectedTemplate {
			return t
		}
	}
	if len(state.Templates) > 0 {
		return state.Templates[0]
	}
	return resume.DefaultTemplates()[0]
}
