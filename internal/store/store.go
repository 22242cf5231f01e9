// Package store is the process-wide resume state container. It exposes pure,
// synchronous state transitions, persists the whole tree on every mutation
// and notifies subscribers after each commit.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"resumeforge/internal/resume"
)

// Persister writes the serialized state tree. Implementations live in the
// storage package; the store only needs the save side.
type Persister interface {
	Save(ctx context.Context, blob []byte) error
}

// Subscriber receives a snapshot after every committed mutation.
type Subscriber func(State)

// Store holds the live state. All transitions run under one mutex: each
// mutation completes, persists and snapshots before the next one starts.
type Store struct {
	mu     sync.Mutex
	state  State
	lastID int64

	persister Persister
	logger    *slog.Logger

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// New creates a store seeded with defaults. persister may be nil (tests,
// the admin CLI working on raw files).
func New(logger *slog.Logger, persister Persister) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:     DefaultState(),
		persister: persister,
		logger:    logger,
		subs:      map[int]Subscriber{},
	}
}

// Restore replaces the state with a decoded persisted blob. A corrupt blob
// leaves the defaults in place and is reported so the caller can log it.
func (s *Store) Restore(blob []byte) error {
	state, err := DecodeState(blob)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state = state
	s.seedIDCounterLocked()
	s.mu.Unlock()
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to run after every committed mutation. The returned
// cancel func removes the subscription.
func (s *Store) Subscribe(fn Subscriber) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// SetPersonalField replaces one personal-info field. Any string is accepted,
// including empty; validation is a UI concern. Unknown field names are a
// caller contract violation and rejected.
func (s *Store) SetPersonalField(ctx context.Context, field, value string) error {
	return s.mutate(ctx, func(st *State) error {
		switch field {
		case "firstName":
			st.Personal.FirstName = value
		case "lastName":
			st.Personal.LastName = value
		case "title":
			st.Personal.Title = value
		case "email":
			st.Personal.Email = value
		case "phone":
			st.Personal.Phone = value
		case "website":
			st.Personal.Website = value
		case "address":
			st.Personal.Address = value
		case "photoURI":
			st.Personal.PhotoURI = value
		default:
			return fmt.Errorf("unknown personal field %q", field)
		}
		return nil
	})
}

// AddSection appends a new empty section of the given type and returns it.
func (s *Store) AddSection(ctx context.Context, t resume.SectionType) (resume.Section, error) {
	var created resume.Section
	err := s.mutate(ctx, func(st *State) error {
		if !t.Valid() {
			return fmt.Errorf("invalid section type %q", t)
		}
		created = resume.Section{
			ID:    s.nextSectionIDLocked(),
			Type:  t,
			Title: t.DefaultTitle(),
		}
		st.Sections = append(st.Sections, created)
		return nil
	})
	return created, err
}

// RemoveSection deletes the section with the given id. A missing id is a
// no-op, not an error.
func (s *Store) RemoveSection(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) error {
		for i, sec := range st.Sections {
			if sec.ID == id {
				st.Sections = append(st.Sections[:i], st.Sections[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// MoveSection relocates the element at from to position to. Out-of-range
// indices are clamped to the current list bounds so a racing caller can
// never corrupt the list.
func (s *Store) MoveSection(ctx context.Context, from, to int) error {
	return s.mutate(ctx, func(st *State) error {
		n := len(st.Sections)
		if n == 0 {
			return nil
		}
		from = clamp(from, 0, n-1)
		to = clamp(to, 0, n-1)
		if from == to {
			return nil
		}
		moved := st.Sections[from]
		st.Sections = append(st.Sections[:from], st.Sections[from+1:]...)
		st.Sections = append(st.Sections[:to], append([]resume.Section{moved}, st.Sections[to:]...)...)
		return nil
	})
}

// SectionUpdate is a partial section mutation; nil fields are left alone.
type SectionUpdate struct {
	Title   *string
	Content *string
	Data    map[string]any
}

// UpdateSection merges the given fields into the section matching id.
// A missing id is a no-op.
func (s *Store) UpdateSection(ctx context.Context, id string, upd SectionUpdate) error {
	return s.mutate(ctx, func(st *State) error {
		for i := range st.Sections {
			if st.Sections[i].ID != id {
				continue
			}
			if upd.Title != nil {
				st.Sections[i].Title = *upd.Title
			}
			if upd.Content != nil {
				st.Sections[i].Content = *upd.Content
			}
			if upd.Data != nil {
				st.Sections[i].Data = upd.Data
			}
			return nil
		}
		return nil
	})
}

// SelectTemplate switches the active template. The id must reference a
// template in the catalog; anything else would leave the settings dangling.
func (s *Store) SelectTemplate(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *State) error {
		for _, t := range st.Templates {
			if t.ID == id {
				st.UISettings.SelectedTemplate = id
				return nil
			}
		}
		return fmt.Errorf("unknown template %q", id)
	})
}

// SetFontScale sets the font multiplier. Any positive value is accepted;
// clamping to a comfortable range is the UI's business.
func (s *Store) SetFontScale(ctx context.Context, scale float64) error {
	return s.mutate(ctx, func(st *State) error {
		if scale <= 0 {
			return fmt.Errorf("font scale must be positive, got %v", scale)
		}
		st.UISettings.FontScale = scale
		return nil
	})
}

// ColorsUpdate is a partial custom-color override; nil fields are left alone.
type ColorsUpdate struct {
	Primary   *string
	Secondary *string
	Accent    *string
}

// UpdateCustomColors merges color overrides into the UI settings. Setting a
// color to the empty string clears the override.
func (s *Store) UpdateCustomColors(ctx context.Context, upd ColorsUpdate) error {
	return s.mutate(ctx, func(st *State) error {
		if upd.Primary != nil {
			st.UISettings.CustomColors.Primary = *upd.Primary
		}
		if upd.Secondary != nil {
			st.UISettings.CustomColors.Secondary = *upd.Secondary
		}
		if upd.Accent != nil {
			st.UISettings.CustomColors.Accent = *upd.Accent
		}
		return nil
	})
}

// FontsUpdate is a partial custom-font override; nil fields are left alone.
type FontsUpdate struct {
	Heading *string
	Body    *string
}

// UpdateCustomFonts merges font overrides into the UI settings.
func (s *Store) UpdateCustomFonts(ctx context.Context, upd FontsUpdate) error {
	return s.mutate(ctx, func(st *State) error {
		if upd.Heading != nil {
			st.UISettings.CustomFonts.Heading = *upd.Heading
		}
		if upd.Body != nil {
			st.UISettings.CustomFonts.Body = *upd.Body
		}
		return nil
	})
}

// TemplateUpdate is a partial in-place template edit.
type TemplateUpdate struct {
	Margins      *resume.Margins
	FontSize     *resume.FontSize
	HeadingStyle *resume.HeadingStyle
	Colors       *resume.Palette
	Fonts        *resume.FontPair
}

// UpdateTemplate merges the given fields into the template matching id.
// A missing id is a no-op; templates are never created or deleted here.
func (s *Store) UpdateTemplate(ctx context.Context, id string, upd TemplateUpdate) error {
	return s.mutate(ctx, func(st *State) error {
		for i := range st.Templates {
			if st.Templates[i].ID != id {
				continue
			}
			if upd.Margins != nil {
				st.Templates[i].Margins = *upd.Margins
			}
			if upd.FontSize != nil {
				st.Templates[i].FontSize = *upd.FontSize
			}
			if upd.HeadingStyle != nil {
				st.Templates[i].HeadingStyle = *upd.HeadingStyle
			}
			if upd.Colors != nil {
				st.Templates[i].Colors = *upd.Colors
			}
			if upd.Fonts != nil {
				st.Templates[i].Fonts = *upd.Fonts
			}
			return nil
		}
		return nil
	})
}

// ExportData serializes personal info, sections and UI settings to the
// user-facing export document. The template catalog stays out of it.
func (s *Store) ExportData() (string, error) {
	s.mu.Lock()
	doc := ExportDocument{
		Personal:   s.state.Personal,
		Sections:   s.state.Clone().Sections,
		UISettings: s.state.UISettings,
	}
	s.mu.Unlock()

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal export document: %w", err)
	}
	return string(data), nil
}

// ImportData replaces the state with a previously exported document. It
// fails soft: a malformed payload leaves the current state untouched and
// returns the parse error for the caller to surface.
func (s *Store) ImportData(ctx context.Context, data string) error {
	state, err := DecodeState([]byte(data))
	if err != nil {
		return err
	}
	return s.mutate(ctx, func(st *State) error {
		*st = state
		s.seedIDCounterLocked()
		return nil
	})
}

// ResetAll discards all user data and restores the hardcoded defaults.
// Irreversible; obtaining confirmation is the caller's responsibility.
func (s *Store) ResetAll(ctx context.Context) error {
	return s.mutate(ctx, func(st *State) error {
		*st = DefaultState()
		return nil
	})
}

// mutate runs fn under the lock, persists the committed state and notifies
// subscribers. fn returning an error aborts the transition with the state
// untouched (fn must not partially modify on error paths that matter; all
// ops here validate before writing).
func (s *Store) mutate(ctx context.Context, fn func(*State) error) error {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify(snapshot)
	return nil
}

// persist writes the whole state tree. Failures are logged and swallowed:
// losing one autosave must never fail the mutation that triggered it.
func (s *Store) persist(ctx context.Context, snapshot State) {
	if s.persister == nil {
		return
	}
	blob, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("marshal state for persistence", slog.Any("error", err))
		return
	}
	if err := s.persister.Save(ctx, blob); err != nil {
		s.logger.Error("persist state", slog.Any("error", err))
	}
}

func (s *Store) notify(snapshot State) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// nextSectionIDLocked returns a fresh id from a monotonic source. Ids are
// millisecond timestamps bumped past the last issued value, so two adds in
// the same millisecond still get distinct ids by construction.
func (s *Store) nextSectionIDLocked() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// seedIDCounterLocked advances the id counter past any numeric section id
// already in the state, so restored documents cannot collide with new adds.
func (s *Store) seedIDCounterLocked() {
	for _, sec := range s.state.Sections {
		if v, err := strconv.ParseInt(sec.ID, 10, 64); err == nil && v > s.lastID {
			s.lastID = v
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
