package store

import (
	"encoding/json"
	"testing"

	"resumeforge/internal/resume"
)

func TestDecodeStateEmptyObject(t *testing.T) {
	state, err := DecodeState([]byte(`{}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	def := DefaultState()
	if state.Personal != def.Personal {
		t.Errorf("personal not defaulted: %+v", state.Personal)
	}
	if len(state.Templates) != len(def.Templates) {
		t.Errorf("templates not defaulted: %d", len(state.Templates))
	}
	if state.UISettings.SelectedTemplate != "minimalist" {
		t.Errorf("selection not defaulted: %q", state.UISettings.SelectedTemplate)
	}
}

func TestDecodeStatePartialPersonal(t *testing.T) {
	state, err := DecodeState([]byte(`{"personal":{"firstName":"Ada"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Personal.FirstName != "Ada" {
		t.Errorf("expected Ada, got %q", state.Personal.FirstName)
	}
	// Fields the payload does not mention keep their defaults.
	if state.Personal.LastName != DefaultState().Personal.LastName {
		t.Errorf("lastName lost its default: %q", state.Personal.LastName)
	}
}

func TestDecodeStateDropsInvalidSections(t *testing.T) {
	blob := []byte(`{"sections":[
		{"id":"1","type":"Education","title":"Education","content":""},
		{"id":"","type":"Skills","title":"Skills","content":""},
		{"id":"3","type":"Hobby","title":"Hobby","content":""}
	]}`)
	state, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(state.Sections) != 1 {
		t.Fatalf("expected 1 surviving section, got %d", len(state.Sections))
	}
	if state.Sections[0].ID != "1" {
		t.Errorf("wrong survivor: %q", state.Sections[0].ID)
	}
}

func TestDecodeStateGuardsDanglingSelection(t *testing.T) {
	blob := []byte(`{"uiSettings":{"themeMode":"light","fontScale":1,"selectedTemplate":"vaporwave"}}`)
	state, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.UISettings.SelectedTemplate != "minimalist" {
		t.Errorf("dangling selection not repaired: %q", state.UISettings.SelectedTemplate)
	}
}

func TestDecodeStateGuardsSelectionAgainstImportedCatalog(t *testing.T) {
	blob := []byte(`{
		"templates":[{"id":"corporate","name":"Corporate"}],
		"uiSettings":{"themeMode":"light","fontScale":1,"selectedTemplate":"vaporwave"}
	}`)
	state, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The default fallback id is absent from the imported catalog, so the
	// first imported template wins.
	if state.UISettings.SelectedTemplate != "corporate" {
		t.Errorf("expected corporate, got %q", state.UISettings.SelectedTemplate)
	}
}

func TestDecodeStateRepairsFontScale(t *testing.T) {
	blob := []byte(`{"uiSettings":{"themeMode":"light","fontScale":-2,"selectedTemplate":"minimalist"}}`)
	state, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.UISettings.FontScale != 1 {
		t.Errorf("font scale not repaired: %v", state.UISettings.FontScale)
	}
}

func TestDecodeStateMalformed(t *testing.T) {
	if _, err := DecodeState([]byte(`{broken`)); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := DecodeState([]byte(`{"sections":"not-an-array"}`)); err == nil {
		t.Fatal("expected sections type error")
	}
}

func TestCloneIsDeep(t *testing.T) {
	state := DefaultState()
	state.Sections = append(state.Sections, resume.Section{
		ID:    "1",
		Type:  resume.SectionEducation,
		Title: "Education",
		Data:  map[string]any{"school": "MIT"},
	})

	clone := state.Clone()
	clone.Sections[0].Title = "mutated"
	clone.Sections[0].Data["school"] = "mutated"

	if state.Sections[0].Title == "mutated" {
		t.Error("clone shares the sections slice")
	}
	if state.Sections[0].Data["school"] == "mutated" {
		t.Error("clone shares section data maps")
	}
}

func TestStateRoundTrip(t *testing.T) {
	state := DefaultState()
	state.Personal.FirstName = "Ada"

	blob, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := DecodeState(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Personal.FirstName != "Ada" {
		t.Errorf("round trip lost data: %q", back.Personal.FirstName)
	}
}
