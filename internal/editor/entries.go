package editor

import (
	"fmt"

	"resumeapi/internal/model"
)

// keys exposes the backend id and client id of a section entry.
type keys[T any] func(*T) (id, clientID *string)

func experienceKeys(e *model.WorkExperience) (*string, *string) { return &e.ID, &e.ClientID }
func educationKeys(e *model.Education) (*string, *string)       { return &e.ID, &e.ClientID }
func skillKeys(e *model.Skill) (*string, *string)               { return &e.ID, &e.ClientID }
func certificationKeys(e *model.Certification) (*string, *string) {
	return &e.ID, &e.ClientID
}
func socialLinkKeys(e *model.SocialLink) (*string, *string) { return &e.ID, &e.ClientID }
func customSectionKeys(e *model.CustomSection) (*string, *string) {
	return &e.ID, &e.ClientID
}

func add[T any](s *Store, list *[]T, item T, k keys[T]) string {
	id, cid := k(&item)
	*id = ""
	*cid = NewClientID()

	s.mu.Lock()
	defer s.mu.Unlock()
	*list = append(*list, item)
	s.dirty = true
	return *cid
}

func find[T any](list []T, key string, k keys[T]) int {
	for i := range list {
		id, cid := k(&list[i])
		if key != "" && (*id == key || *cid == key) {
			return i
		}
	}
	return -1
}

// update replaces the entry matching key, keeping its ids.
func update[T any](s *Store, list *[]T, key string, item T, k keys[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := find(*list, key, k)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, key)
	}
	oldID, oldCID := k(&(*list)[i])
	id, cid := k(&item)
	*id, *cid = *oldID, *oldCID
	(*list)[i] = item
	s.dirty = true
	return nil
}

// remove drops the entry matching key and queues its backend id for deletion.
func remove[T any](s *Store, section string, list *[]T, key string, k keys[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := find(*list, key, k)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, key)
	}
	if id, _ := k(&(*list)[i]); *id != "" {
		s.deleted[section] = append(s.deleted[section], *id)
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	s.dirty = true
	return nil
}

func reconcile[T any](list []T, clientID, backendID string, k keys[T]) bool {
	for i := range list {
		id, cid := k(&list[i])
		if *cid == clientID {
			*id = backendID
			return true
		}
	}
	return false
}

// AddExperience appends e and returns its client id.
func (s *Store) AddExperience(e model.WorkExperience) string {
	return add(s, &s.resume.Experiences, e, experienceKeys)
}

// UpdateExperience replaces the entry whose backend or client id is key.
func (s *Store) UpdateExperience(key string, e model.WorkExperience) error {
	return update(s, &s.resume.Experiences, key, e, experienceKeys)
}

func (s *Store) RemoveExperience(key string) error {
	return remove(s, SectionExperiences, &s.resume.Experiences, key, experienceKeys)
}

func (s *Store) AddEducation(e model.Education) string {
	return add(s, &s.resume.Education, e, educationKeys)
}

func (s *Store) UpdateEducation(key string, e model.Education) error {
	return update(s, &s.resume.Education, key, e, educationKeys)
}

func (s *Store) RemoveEducation(key string) error {
	return remove(s, SectionEducation, &s.resume.Education, key, educationKeys)
}

func (s *Store) AddSkill(sk model.Skill) string {
	return add(s, &s.resume.Skills, sk, skillKeys)
}

func (s *Store) UpdateSkill(key string, sk model.Skill) error {
	return update(s, &s.resume.Skills, key, sk, skillKeys)
}

func (s *Store) RemoveSkill(key string) error {
	return remove(s, SectionSkills, &s.resume.Skills, key, skillKeys)
}

func (s *Store) AddCertification(c model.Certification) string {
	return add(s, &s.resume.Certifications, c, certificationKeys)
}

func (s *Store) UpdateCertification(key string, c model.Certification) error {
	return update(s, &s.resume.Certifications, key, c, certificationKeys)
}

func (s *Store) RemoveCertification(key string) error {
	return remove(s, SectionCertifications, &s.resume.Certifications, key, certificationKeys)
}

func (s *Store) AddSocialLink(l model.SocialLink) string {
	return add(s, &s.resume.SocialLinks, l, socialLinkKeys)
}

func (s *Store) UpdateSocialLink(key string, l model.SocialLink) error {
	return update(s, &s.resume.SocialLinks, key, l, socialLinkKeys)
}

func (s *Store) RemoveSocialLink(key string) error {
	return remove(s, SectionSocialLinks, &s.resume.SocialLinks, key, socialLinkKeys)
}

func (s *Store) AddCustomSection(c model.CustomSection) string {
	return add(s, &s.resume.CustomSections, c, customSectionKeys)
}

func (s *Store) UpdateCustomSection(key string, c model.CustomSection) error {
	return update(s, &s.resume.CustomSections, key, c, customSectionKeys)
}

func (s *Store) RemoveCustomSection(key string) error {
	return remove(s, SectionCustomSections, &s.resume.CustomSections, key, customSectionKeys)
}
