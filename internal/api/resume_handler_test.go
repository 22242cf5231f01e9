package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/resume"
	"resumeforge/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(nil, nil)
}

func performJSON(t *testing.T, method, body string, params gin.Params, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	handler(c)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestSetPersonalFieldAppliesDespiteValidation(t *testing.T) {
	st := newTestStore(t)
	h := NewResumeHandler(st)

	params := gin.Params{{Key: "field", Value: "email"}}
	w := performJSON(t, http.MethodPut, `{"value":"not-an-email"}`, params, h.SetPersonalField)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if got := st.Snapshot().Personal.Email; got != "not-an-email" {
		t.Errorf("email = %q, update should apply even when flagged", got)
	}
	resp := decodeJSON(t, w)
	validation, ok := resp["validation"].(map[string]any)
	if !ok {
		t.Fatalf("expected validation block, got %v", resp)
	}
	if _, ok := validation["email"]; !ok {
		t.Error("expected a message for the email field")
	}
}

func TestSetPersonalFieldValidValueHasNoValidation(t *testing.T) {
	h := NewResumeHandler(newTestStore(t))

	params := gin.Params{{Key: "field", Value: "email"}}
	w := performJSON(t, http.MethodPut, `{"value":"ada@example.com"}`, params, h.SetPersonalField)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if _, ok := decodeJSON(t, w)["validation"]; ok {
		t.Error("valid value should not carry a validation block")
	}
}

func TestSetPersonalFieldUnknownField(t *testing.T) {
	h := NewResumeHandler(newTestStore(t))

	params := gin.Params{{Key: "field", Value: "nickname"}}
	w := performJSON(t, http.MethodPut, `{"value":"ada"}`, params, h.SetPersonalField)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAddSection(t *testing.T) {
	st := newTestStore(t)
	h := NewResumeHandler(st)

	w := performJSON(t, http.MethodPost, `{"type":"Experience"}`, nil, h.AddSection)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var section resume.Section
	if err := json.Unmarshal(w.Body.Bytes(), &section); err != nil {
		t.Fatalf("decode section: %v", err)
	}
	if section.ID == "" {
		t.Error("section id missing")
	}
	if section.Title != "Work Experience" {
		t.Errorf("title = %q", section.Title)
	}
}

func TestAddSectionUnknownType(t *testing.T) {
	h := NewResumeHandler(newTestStore(t))

	w := performJSON(t, http.MethodPost, `{"type":"Hobbies"}`, nil, h.AddSection)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestMoveSectionReturnsNewOrder(t *testing.T) {
	st := newTestStore(t)
	h := NewResumeHandler(st)
	for _, typ := range []resume.SectionType{resume.SectionEducation, resume.SectionExperience, resume.SectionProjects} {
		if _, err := st.AddSection(context.Background(), typ); err != nil {
			t.Fatalf("add section: %v", err)
		}
	}
	first := st.Snapshot().Sections[0].ID

	w := performJSON(t, http.MethodPost, `{"from":0,"to":2}`, nil, h.MoveSection)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	sections := st.Snapshot().Sections
	if sections[2].ID != first {
		t.Errorf("section %s not moved to index 2", first)
	}
}

func TestUpdateSectionRegeneratesContent(t *testing.T) {
	st := newTestStore(t)
	h := NewResumeHandler(st)

	section, err := st.AddSection(context.Background(), resume.SectionEducation)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	body := `{"data":{"degree":"BSc","fieldOfStudy":"Computer Science","school":"MIT","startDate":"2020-09","endDate":"2024-06"}}`
	params := gin.Params{{Key: "id", Value: section.ID}}
	w := performJSON(t, http.MethodPatch, body, params, h.UpdateSection)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var updated resume.Section
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode section: %v", err)
	}
	if !strings.Contains(updated.Content, "MIT") {
		t.Errorf("content not regenerated from data: %q", updated.Content)
	}
}

func TestUpdateSectionCustomTitleFromData(t *testing.T) {
	st := newTestStore(t)
	h := NewResumeHandler(st)

	section, err := st.AddSection(context.Background(), resume.SectionCustom)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}

	body := `{"data":{"title":"Volunteering","content":"<p>Soup kitchen</p>"}}`
	params := gin.Params{{Key: "id", Value: section.ID}}
	w := performJSON(t, http.MethodPatch, body, params, h.UpdateSection)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var updated resume.Section
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode section: %v", err)
	}
	if updated.Title != "Volunteering" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Content != "<p>Soup kitchen</p>" {
		t.Errorf("content = %q", updated.Content)
	}
}

func TestUpdateSectionDataForMissingSection(t *testing.T) {
	h := NewResumeHandler(newTestStore(t))

	params := gin.Params{{Key: "id", Value: "999"}}
	w := performJSON(t, http.MethodPatch, `{"data":{"school":"MIT"}}`, params, h.UpdateSection)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestSelectTemplateUnknownID(t *testing.T) {
	st := newTestStore(t)
	h := NewResumeHandler(st)
	before := st.Snapshot().UISettings.SelectedTemplate

	w := performJSON(t, http.MethodPut, `{"id":"vaporwave"}`, nil, h.SelectTemplate)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if got := st.Snapshot().UISettings.SelectedTemplate; got != before {
		t.Errorf("selection changed to %q", got)
	}
}

func TestUpdateCustomColors(t *testing.T) {
	st := newTestStore(t)
	h := NewResumeHandler(st)

	w := performJSON(t, http.MethodPatch, `{"primary":"#ff0000"}`, nil, h.UpdateCustomColors)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if got := st.Snapshot().UISettings.CustomColors.Primary; got != "#ff0000" {
		t.Errorf("primary = %q", got)
	}
}

func TestUpdateTemplateUnknownID(t *testing.T) {
	h := NewResumeHandler(newTestStore(t))

	params := gin.Params{{Key: "id", Value: "vaporwave"}}
	w := performJSON(t, http.MethodPatch, `{"colors":{"primary":"#111111","secondary":"#222222","accent":"#333333"}}`, params, h.UpdateTemplate)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", w.Code, w.Body.String())
	}
}

