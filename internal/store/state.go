package store

import (
	"encoding/json"
	"fmt"

	"resumeforge/internal/resume"
)

// StorageKey is the key the whole state tree is persisted under.
const StorageKey = "resume-forge-storage"

// State is the full persisted state tree: one resume, the template catalog
// and the UI settings.
type State struct {
	Personal   resume.PersonalInfo `json:"personal"`
	Sections   []resume.Section    `json:"sections"`
	Templates  []resume.Template   `json:"templates"`
	UISettings resume.UISettings   `json:"uiSettings"`
}

// DefaultState returns the hardcoded defaults a fresh installation or a
// reset starts from.
func DefaultState() State {
	return State{
		Personal:   resume.DefaultPersonal(),
		Sections:   []resume.Section{},
		Templates:  resume.DefaultTemplates(),
		UISettings: resume.DefaultUISettings(),
	}
}

// Clone deep-copies the state so snapshots never alias live data.
func (s State) Clone() State {
	out := s
	out.Sections = make([]resume.Section, len(s.Sections))
	for i, sec := range s.Sections {
		out.Sections[i] = sec
		if sec.Data != nil {
			data := make(map[string]any, len(sec.Data))
			for k, v := range sec.Data {
				data[k] = v
			}
			out.Sections[i].Data = data
		}
	}
	out.Templates = append([]resume.Template(nil), s.Templates...)
	return out
}

// ExportDocument is the user-facing export/import JSON shape. The template
// catalog is deliberately excluded: templates are seed data, and template
// customizations revert to defaults on import unless the payload happens to
// carry a templates field.
type ExportDocument struct {
	Personal   resume.PersonalInfo `json:"personal"`
	Sections   []resume.Section    `json:"sections"`
	UISettings resume.UISettings   `json:"uiSettings"`
}

// DecodeState parses a persisted or imported state blob, falling back
// per-field to defaults for anything missing. Unknown top-level fields are
// ignored. Only a malformed document is an error; a well-formed but partial
// one decodes into defaults plus whatever was present.
func DecodeState(blob []byte) (State, error) {
	var raw struct {
		Personal   json.RawMessage `json:"personal"`
		Sections   json.RawMessage `json:"sections"`
		Templates  json.RawMessage `json:"templates"`
		UISettings json.RawMessage `json:"uiSettings"`
	}
	if err := json.Unmarshal(blob, &raw); err != nil {
		return State{}, fmt.Errorf("parse state document: %w", err)
	}

	state := DefaultState()

	// Unmarshalling over the pre-populated defaults keeps every field the
	// payload does not mention.
	if len(raw.Personal) > 0 {
		if err := json.Unmarshal(raw.Personal, &state.Personal); err != nil {
			return State{}, fmt.Errorf("parse personal info: %w", err)
		}
	}
	if len(raw.UISettings) > 0 {
		if err := json.Unmarshal(raw.UISettings, &state.UISettings); err != nil {
			return State{}, fmt.Errorf("parse ui settings: %w", err)
		}
	}
	if len(raw.Templates) > 0 {
		var templates []resume.Template
		if err := json.Unmarshal(raw.Templates, &templates); err != nil {
			return State{}, fmt.Errorf("parse templates: %w", err)
		}
		if len(templates) > 0 {
			state.Templates = templates
		}
	}
	if len(raw.Sections) > 0 {
		var sections []resume.Section
		if err := json.Unmarshal(raw.Sections, &sections); err != nil {
			return State{}, fmt.Errorf("parse sections: %w", err)
		}
		state.Sections = sanitizeSections(sections)
	}

	state.UISettings = guardSettings(state.UISettings, state.Templates)

	return state, nil
}

// sanitizeSections drops entries an import cannot represent: unknown type
// tags or empty ids.
func sanitizeSections(sections []resume.Section) []resume.Section {
	out := make([]resume.Section, 0, len(sections))
	for _, s := range sections {
		if s.ID == "" || !s.Type.Valid() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// guardSettings repairs settings that reference state which no longer
// exists. A dangling selected-template id falls back to the default
// selection rather than leaving the resolver without a template.
func guardSettings(ui resume.UISettings, templates []resume.Template) resume.UISettings {
	if ui.FontScale <= 0 {
		ui.FontScale = resume.DefaultUISettings().FontScale
	}
	for _, t := range templates {
		if t.ID == ui.SelectedTemplate {
			return ui
		}
	}
	ui.SelectedTemplate = resume.DefaultUISettings().SelectedTemplate
	for _, t := range templates {
		if t.ID == ui.SelectedTemplate {
			return ui
		}
	}
	if len(templates) > 0 {
		ui.SelectedTemplate = templates[0].ID
	}
	return ui
}
