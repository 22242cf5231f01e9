package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeforge/internal/format"
	"resumeforge/internal/resume"
	"resumeforge/internal/store"
)

// ResumeHandler serves the editing surface: personal info, the ordered
// section list, presentation settings and template edits.
type ResumeHandler struct {
	store *store.Store
}

// NewResumeHandler constructs a ResumeHandler.
func NewResumeHandler(st *store.Store) *ResumeHandler {
	return &ResumeHandler{store: st}
}

// GetState returns the full state tree.
func (h *ResumeHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

type setFieldRequest struct {
	Value string `json:"value"`
}

// SetPersonalField replaces one personal-info field. Validation is advisory:
// the update is applied either way and the response carries the problem text
// for the UI to surface.
func (h *ResumeHandler) SetPersonalField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	field := c.Param("field")
	if err := h.store.SetPersonalField(c.Request.Context(), field, req.Value); err != nil {
		BadRequest(c, err.Error())
		return
	}

	resp := gin.H{"personal": h.store.Snapshot().Personal}
	if msg := resume.ValidatePersonalField(field, req.Value); msg != "" {
		resp["validation"] = gin.H{field: msg}
	}
	c.JSON(http.StatusOK, resp)
}

type addSectionRequest struct {
	Type resume.SectionType `json:"type" binding:"required"`
}

// AddSection appends a new section of the requested type.
func (h *ResumeHandler) AddSection(c *gin.Context) {
	var req addSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	section, err := h.store.AddSection(c.Request.Context(), req.Type)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, section)
}

// RemoveSection deletes a section. Deleting an id that is already gone
// succeeds; the end state is the same.
func (h *ResumeHandler) RemoveSection(c *gin.Context) {
	if err := h.store.RemoveSection(c.Request.Context(), c.Param("id")); err != nil {
		Internal(c, "failed to remove section")
		return
	}
	c.Status(http.StatusNoContent)
}

type moveSectionRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// MoveSection relocates a section and returns the new order.
func (h *ResumeHandler) MoveSection(c *gin.Context) {
	var req moveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.store.MoveSection(c.Request.Context(), req.From, req.To); err != nil {
		Internal(c, "failed to move section")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": h.store.Snapshot().Sections})
}

type updateSectionRequest struct {
	Title   *string        `json:"title"`
	Content *string        `json:"content"`
	Data    map[string]any `json:"data"`
}

// UpdateSection merges a partial section edit. A structured data payload is
// run through the content formatter so the stored content always matches the
// form fields; Custom sections take their body and title from the payload.
func (h *ResumeHandler) UpdateSection(c *gin.Context) {
	var req updateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	id := c.Param("id")
	upd := store.SectionUpdate{Title: req.Title, Content: req.Content, Data: req.Data}

	if req.Data != nil {
		section, ok := h.findSection(id)
		if !ok {
			NotFound(c, "section not found")
			return
		}
		if section.Type != resume.SectionSkills {
			content, err := format.Section(section.Type, req.Data)
			if err != nil {
				BadRequest(c, err.Error())
				return
			}
			upd.Content = &content
			if section.Type == resume.SectionCustom && upd.Title == nil {
				if title, ok := req.Data["title"].(string); ok && title != "" {
					upd.Title = &title
				}
			}
		}
	}

	if err := h.store.UpdateSection(c.Request.Context(), id, upd); err != nil {
		Internal(c, "failed to update section")
		return
	}

	if section, ok := h.findSection(id); ok {
		c.JSON(http.StatusOK, section)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) findSection(id string) (resume.Section, bool) {
	for _, s := range h.store.Snapshot().Sections {
		if s.ID == id {
			return s, true
		}
	}
	return resume.Section{}, false
}

type selectTemplateRequest struct {
	ID string `json:"id" binding:"required"`
}

// SelectTemplate switches the active template.
func (h *ResumeHandler) SelectTemplate(c *gin.Context) {
	var req selectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.store.SelectTemplate(c.Request.Context(), req.ID); err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"uiSettings": h.store.Snapshot().UISettings})
}

type fontScaleRequest struct {
	Scale float64 `json:"scale" binding:"required"`
}

// SetFontScale sets the global font multiplier.
func (h *ResumeHandler) SetFontScale(c *gin.Context) {
	var req fontScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.store.SetFontScale(c.Request.Context(), req.Scale); err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"uiSettings": h.store.Snapshot().UISettings})
}

type colorsRequest struct {
	Primary   *string `json:"primary"`
	Secondary *string `json:"secondary"`
	Accent    *string `json:"accent"`
}

// UpdateCustomColors merges color overrides; empty string clears one.
func (h *ResumeHandler) UpdateCustomColors(c *gin.Context) {
	var req colorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	upd := store.ColorsUpdate{Primary: req.Primary, Secondary: req.Secondary, Accent: req.Accent}
	if err := h.store.UpdateCustomColors(c.Request.Context(), upd); err != nil {
		Internal(c, "failed to update colors")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uiSettings": h.store.Snapshot().UISettings})
}

type fontsRequest struct {
	Heading *string `json:"heading"`
	Body    *string `json:"body"`
}

// UpdateCustomFonts merges font overrides; empty string clears one.
func (h *ResumeHandler) UpdateCustomFonts(c *gin.Context) {
	var req fontsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	upd := store.FontsUpdate{Heading: req.Heading, Body: req.Body}
	if err := h.store.UpdateCustomFonts(c.Request.Context(), upd); err != nil {
		Internal(c, "failed to update fonts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uiSettings": h.store.Snapshot().UISettings})
}

type updateTemplateRequest struct {
	Margins      *resume.Margins      `json:"margins"`
	FontSize     *resume.FontSize     `json:"fontSize"`
	HeadingStyle *resume.HeadingStyle `json:"headingStyle"`
	Colors       *resume.Palette      `json:"colors"`
	Fonts        *resume.FontPair     `json:"fonts"`
}

// UpdateTemplate edits a template in place. Templates are seed data; they
// can be tuned but never created or deleted through the API.
func (h *ResumeHandler) UpdateTemplate(c *gin.Context) {
	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	id := c.Param("id")
	upd := store.TemplateUpdate{
		Margins:      req.Margins,
		FontSize:     req.FontSize,
		HeadingStyle: req.HeadingStyle,
		Colors:       req.Colors,
		Fonts:        req.Fonts,
	}
	if err := h.store.UpdateTemplate(c.Request.Context(), id, upd); err != nil {
		Internal(c, "failed to update template")
		return
	}

	for _, t := range h.store.Snapshot().Templates {
		if t.ID == id {
			c.JSON(http.StatusOK, t)
			return
		}
	}
	NotFound(c, "template not found")
}
