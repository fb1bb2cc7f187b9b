// Package editor holds the form state of the resume editor and pushes it to
// the API. The store is optimistic: edits apply locally first and are never
// rolled back when a save fails.
package editor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumeapi/internal/model"
	"resumeapi/internal/render"
)

// Section names, also used as the active-section values.
const (
	SectionPersonalInfo   = "personal-info"
	SectionExperiences    = "experiences"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionSocialLinks    = "social-links"
	SectionCustomSections = "custom-sections"
)

// Notification levels.
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// ClientIDPrefix marks ids assigned locally before the first save.
const ClientIDPrefix = "tmp-"

var (
	ErrUnknownEntry    = errors.New("no entry with that id")
	ErrUnknownClientID = errors.New("no entry with that client id")
)

type Notification struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Store is the single mutable editor state. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	resume   model.Resume
	template string
	theme    string
	active   string
	dirty    bool
	notes    []Notification
	// backend ids removed locally and not yet deleted remotely, per section
	deleted map[string][]string

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		template: render.DefaultTemplate,
		theme:    "light",
		active:   SectionPersonalInfo,
		deleted:  map[string][]string{},
		now:      time.Now,
	}
}

// NewClientID returns a temporary id for an unsaved entry.
func NewClientID() string { return ClientIDPrefix + uuid.NewString() }

// Load replaces the whole resume, typically with what the server returned.
// It clears the dirty flag and pending deletions.
func (s *Store) Load(r model.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = cloneResume(r)
	s.deleted = map[string][]string{}
	s.dirty = false
}

// Resume returns a copy of the current resume.
func (s *Store) Resume() model.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneResume(s.resume)
}

func (s *Store) SetPersonalInfo(info model.PersonalInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume.PersonalInfo = &info
	s.dirty = true
}

func (s *Store) SetTemplate(id string) error {
	if !render.Known(id) {
		return fmt.Errorf("%w: %q", render.ErrUnknownTemplate, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = id
	return nil
}

func (s *Store) Template() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.template
}

func (s *Store) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) SetActiveSection(section string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = section
}

func (s *Store) ActiveSection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Dirty reports unsaved local edits.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func (s *Store) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

func (s *Store) Notify(level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, Notification{Level: level, Message: message, At: s.now()})
}

func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification(nil), s.notes...)
}

func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = nil
}

// Validate checks the required fields of every entry.
func (s *Store) Validate() error {
	r := s.Resume()
	return model.Validate(&r)
}

// Reconcile records the backend id of the entry created under clientID.
func (s *Store) Reconcile(clientID, backendID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := reconcile(s.resume.Experiences, clientID, backendID, experienceKeys) ||
		reconcile(s.resume.Education, clientID, backendID, educationKeys) ||
		reconcile(s.resume.Skills, clientID, backendID, skillKeys) ||
		reconcile(s.resume.Certifications, clientID, backendID, certificationKeys) ||
		reconcile(s.resume.SocialLinks, clientID, backendID, socialLinkKeys) ||
		reconcile(s.resume.CustomSections, clientID, backendID, customSectionKeys)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownClientID, clientID)
	}
	return nil
}

// PendingDeletes lists backend ids removed from section since the last sync.
func (s *Store) PendingDeletes(section string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.deleted[section]...)
}

func (s *Store) clearDeleted(section, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.deleted[section]
	for i, d := range ids {
		if d == id {
			s.deleted[section] = append(ids[:i:i], ids[i+1:]...)
			return
		}
	}
}

func cloneResume(r model.Resume) model.Resume {
	out := model.Resume{
		Experiences:    append([]model.WorkExperience{}, r.Experiences...),
		Education:      append([]model.Education{}, r.Education...),
		Skills:         append([]model.Skill{}, r.Skills...),
		Certifications: append([]model.Certification{}, r.Certifications...),
		SocialLinks:    append([]model.SocialLink{}, r.SocialLinks...),
		CustomSections: append([]model.CustomSection{}, r.CustomSections...),
	}
	if r.PersonalInfo != nil {
		info := *r.PersonalInfo
		out.PersonalInfo = &info
	}
	for i := range out.Experiences {
		out.Experiences[i].Achievements = append([]string(nil), out.Experiences[i].Achievements...)
	}
	for i := range out.CustomSections {
		out.CustomSections[i].Items = append([]model.CustomItem(nil), out.CustomSections[i].Items...)
	}
	return out
}
