package store

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"testing"

	"resumeforge/internal/resume"
)

type fakePersister struct {
	mu    sync.Mutex
	saves [][]byte
	fail  error
}

func (p *fakePersister) Save(_ context.Context, blob []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	p.saves = append(p.saves, cp)
	return nil
}

func (p *fakePersister) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.saves)
}

func newTestStore(t *testing.T) (*Store, *fakePersister) {
	t.Helper()
	p := &fakePersister{}
	return New(nil, p), p
}

func TestAddSection(t *testing.T) {
	s, p := newTestStore(t)
	ctx := context.Background()

	before := len(s.Snapshot().Sections)
	sec, err := s.AddSection(ctx, resume.SectionExperience)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	if sec.Title != "Work Experience" {
		t.Errorf("expected default title %q, got %q", "Work Experience", sec.Title)
	}
	if got := len(s.Snapshot().Sections); got != before+1 {
		t.Errorf("expected %d sections, got %d", before+1, got)
	}
	if p.count() != 1 {
		t.Errorf("expected 1 persisted save, got %d", p.count())
	}
}

func TestAddSectionInvalidType(t *testing.T) {
	s, p := newTestStore(t)

	if _, err := s.AddSection(context.Background(), resume.SectionType("Hobby")); err == nil {
		t.Fatal("expected error for invalid section type")
	}
	if p.count() != 0 {
		t.Errorf("failed mutation must not persist, got %d saves", p.count())
	}
}

func TestSectionIDsUnique(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		sec, err := s.AddSection(ctx, resume.SectionCustom)
		if err != nil {
			t.Fatalf("add section %d: %v", i, err)
		}
		if seen[sec.ID] {
			t.Fatalf("duplicate section id %q", sec.ID)
		}
		seen[sec.ID] = true
	}
}

func TestRemoveSectionMissingIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Snapshot().Sections)

	if err := s.RemoveSection(context.Background(), "does-not-exist"); err != nil {
		t.Fatalf("remove missing section: %v", err)
	}
	if got := len(s.Snapshot().Sections); got != before {
		t.Errorf("expected %d sections, got %d", before, got)
	}
}

func TestMoveSection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var ids []string
	for _, typ := range []resume.SectionType{resume.SectionEducation, resume.SectionExperience, resume.SectionSkills} {
		sec, err := s.AddSection(ctx, typ)
		if err != nil {
			t.Fatalf("add section: %v", err)
		}
		ids = append(ids, sec.ID)
	}

	if err := s.MoveSection(ctx, 0, 2); err != nil {
		t.Fatalf("move section: %v", err)
	}
	got := s.Snapshot().Sections
	if got[2].ID != ids[0] {
		t.Errorf("expected moved section at index 2, got %q", got[2].ID)
	}

	// Moving back restores the original order.
	if err := s.MoveSection(ctx, 2, 0); err != nil {
		t.Fatalf("move back: %v", err)
	}
	got = s.Snapshot().Sections
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("index %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
}

func TestMoveSectionClampsOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, _ := s.AddSection(ctx, resume.SectionEducation)
	s.AddSection(ctx, resume.SectionExperience)

	if err := s.MoveSection(ctx, -5, 99); err != nil {
		t.Fatalf("move with out-of-range indices: %v", err)
	}
	got := s.Snapshot().Sections
	if got[len(got)-1].ID != first.ID {
		t.Errorf("expected first section clamped to the end, got %q", got[len(got)-1].ID)
	}
}

func TestUpdateSection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sec, _ := s.AddSection(ctx, resume.SectionCustom)
	title := "About Me"
	content := "<p>hello</p>"
	if err := s.UpdateSection(ctx, sec.ID, SectionUpdate{Title: &title, Content: &content}); err != nil {
		t.Fatalf("update section: %v", err)
	}

	got := s.Snapshot().Sections
	found := false
	for _, g := range got {
		if g.ID == sec.ID {
			found = true
			if g.Title != title || g.Content != content {
				t.Errorf("update not applied: %+v", g)
			}
		}
	}
	if !found {
		t.Fatal("updated section missing from snapshot")
	}
}

func TestSelectTemplateUnknown(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.SelectTemplate(context.Background(), "no-such-template"); err == nil {
		t.Fatal("expected error for unknown template id")
	}
	if got := s.Snapshot().UISettings.SelectedTemplate; got != "minimalist" {
		t.Errorf("selection changed on failed select: %q", got)
	}
}

func TestSetFontScale(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.SetFontScale(ctx, 1.25); err != nil {
		t.Fatalf("set font scale: %v", err)
	}
	if got := s.Snapshot().UISettings.FontScale; got != 1.25 {
		t.Errorf("expected scale 1.25, got %v", got)
	}
	if err := s.SetFontScale(ctx, 0); err == nil {
		t.Fatal("expected error for non-positive scale")
	}
}

func TestExportExcludesTemplates(t *testing.T) {
	s, _ := newTestStore(t)

	data, err := s.ExportData()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if _, ok := doc["templates"]; ok {
		t.Error("export document must not contain the template catalog")
	}
	for _, key := range []string{"personal", "sections", "uiSettings"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("export document missing %q", key)
		}
	}
}

func TestImportRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetPersonalField(ctx, "firstName", "Ada")
	s.AddSection(ctx, resume.SectionSkills)
	s.SetFontScale(ctx, 1.1)

	data, err := s.ExportData()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	fresh, _ := newTestStore(t)
	if err := fresh.ImportData(ctx, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	got := fresh.Snapshot()
	if got.Personal.FirstName != "Ada" {
		t.Errorf("personal not restored: %q", got.Personal.FirstName)
	}
	if got.UISettings.FontScale != 1.1 {
		t.Errorf("settings not restored: %v", got.UISettings.FontScale)
	}
	if len(got.Sections) != len(s.Snapshot().Sections) {
		t.Errorf("sections not restored: %d", len(got.Sections))
	}
	// Templates are not part of the export; the catalog reverts to defaults.
	if len(got.Templates) != 3 {
		t.Errorf("expected default template catalog, got %d entries", len(got.Templates))
	}
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetPersonalField(ctx, "firstName", "Ada")
	before := s.Snapshot()

	if err := s.ImportData(ctx, "{not json"); err == nil {
		t.Fatal("expected parse error")
	}

	after := s.Snapshot()
	if after.Personal.FirstName != before.Personal.FirstName {
		t.Error("state changed after failed import")
	}
	if len(after.Sections) != len(before.Sections) {
		t.Error("sections changed after failed import")
	}
}

func TestImportSeedsIDCounter(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	doc := `{"personal":{},"sections":[{"id":"99999999999999","type":"Custom","title":"X","content":""}],"uiSettings":{"themeMode":"light","fontScale":1,"selectedTemplate":"minimalist"}}`
	if err := s.ImportData(ctx, doc); err != nil {
		t.Fatalf("import: %v", err)
	}

	sec, err := s.AddSection(ctx, resume.SectionCustom)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	id, err := strconv.ParseInt(sec.ID, 10, 64)
	if err != nil {
		t.Fatalf("parse new id: %v", err)
	}
	if id <= 99999999999999 {
		t.Errorf("new id %d does not advance past imported ids", id)
	}
}

func TestResetAll(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetPersonalField(ctx, "firstName", "Ada")
	s.AddSection(ctx, resume.SectionProjects)
	if err := s.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got := s.Snapshot()
	def := DefaultState()
	if got.Personal != def.Personal {
		t.Errorf("personal not reset: %+v", got.Personal)
	}
	if len(got.Sections) != len(def.Sections) {
		t.Errorf("sections not reset: %d", len(got.Sections))
	}
}

func TestSubscriberNotified(t *testing.T) {
	s, _ := newTestStore(t)

	var mu sync.Mutex
	var snapshots []State
	cancel := s.Subscribe(func(st State) {
		mu.Lock()
		snapshots = append(snapshots, st)
		mu.Unlock()
	})

	s.SetPersonalField(context.Background(), "firstName", "Ada")

	mu.Lock()
	n := len(snapshots)
	mu.Unlock()
	if n != 1 {
		t.Fatalf("expected 1 notification, got %d", n)
	}

	cancel()
	s.SetPersonalField(context.Background(), "lastName", "Lovelace")

	mu.Lock()
	n = len(snapshots)
	mu.Unlock()
	if n != 1 {
		t.Errorf("cancelled subscriber still notified, got %d", n)
	}
}

func TestUnknownPersonalField(t *testing.T) {
	s, p := newTestStore(t)

	err := s.SetPersonalField(context.Background(), "nickname", "lovelace")
	if err == nil || !strings.Contains(err.Error(), "unknown personal field") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if p.count() != 0 {
		t.Errorf("failed mutation persisted, got %d saves", p.count())
	}
}
