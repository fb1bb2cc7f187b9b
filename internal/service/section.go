package service

import (
	"context"
	"fmt"
	"strconv"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// SectionService is the CRUD contract shared by every list section of a
// resume, and by cover letters.
type SectionService[T any] interface {
	List(ctx context.Context, owner string) ([]T, error)
	Get(ctx context.Context, owner, id string) (*T, error)
	// Add validates and stores a new record. The stored record carries its
	// backend id and echoes the caller's client id.
	Add(ctx context.Context, owner string, item T) (*T, error)
	// UpdateBatch validates every record first and writes none if any fails.
	UpdateBatch(ctx context.Context, owner string, items []T) error
	Delete(ctx context.Context, owner, id string) error
}

type (
	EducationService     = SectionService[model.Education]
	SkillService         = SectionService[model.Skill]
	CertificationService = SectionService[model.Certification]
	SocialLinkService    = SectionService[model.SocialLink]
	CustomSectionService = SectionService[model.CustomSection]
)

// ids reads and writes the id fields of a section record.
type ids[T any] struct {
	get func(*T) (id, clientID string)
	set func(t *T, id, clientID string)
	// prepare runs after validation, before the record is written.
	prepare func(*T)
}

type sectionService[T any] struct {
	repo repository.Collection[T]
	ids  ids[T]
}

func newSectionService[T any](repo repository.Collection[T], ids ids[T]) *sectionService[T] {
	return &sectionService[T]{repo: repo, ids: ids}
}

func NewEducationService(repo repository.EducationRepository) EducationService {
	return newSectionService(repo, ids[model.Education]{
		get: func(e *model.Education) (string, string) { return e.ID, e.ClientID },
		set: func(e *model.Education, id, cid string) { e.ID, e.ClientID = id, cid },
	})
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return newSectionService(repo, ids[model.Skill]{
		get: func(s *model.Skill) (string, string) { return s.ID, s.ClientID },
		set: func(s *model.Skill, id, cid string) { s.ID, s.ClientID = id, cid },
	})
}

func NewCertificationService(repo repository.CertificationRepository) CertificationService {
	return newSectionService(repo, ids[model.Certification]{
		get: func(c *model.Certification) (string, string) { return c.ID, c.ClientID },
		set: func(c *model.Certification, id, cid string) { c.ID, c.ClientID = id, cid },
	})
}

func NewSocialLinkService(repo repository.SocialLinkRepository) SocialLinkService {
	return newSectionService(repo, ids[model.SocialLink]{
		get: func(l *model.SocialLink) (string, string) { return l.ID, l.ClientID },
		set: func(l *model.SocialLink, id, cid string) { l.ID, l.ClientID = id, cid },
	})
}

func NewCustomSectionService(repo repository.CustomSectionRepository) CustomSectionService {
	return newSectionService(repo, ids[model.CustomSection]{
		get: func(c *model.CustomSection) (string, string) { return c.ID, c.ClientID },
		set: func(c *model.CustomSection, id, cid string) { c.ID, c.ClientID = id, cid },
		prepare: func(c *model.CustomSection) {
			if c.Items == nil {
				c.Items = []model.CustomItem{}
			}
		},
	})
}

func parseID(id string) (int64, error) {
	if id == "" {
		return 0, ErrIDRequired
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidID
	}
	return n, nil
}

func (s *sectionService[T]) List(ctx context.Context, owner string) ([]T, error) {
	return s.repo.List(ctx, owner)
}

func (s *sectionService[T]) Get(ctx context.Context, owner, id string) (*T, error) {
	n, err := parseID(id)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.Get(ctx, owner, n)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (s *sectionService[T]) Add(ctx context.Context, owner string, item T) (*T, error) {
	if err := model.Validate(&item); err != nil {
		return nil, invalid(err)
	}
	_, clientID := s.ids.get(&item)
	s.ids.set(&item, "", clientID)
	if s.ids.prepare != nil {
		s.ids.prepare(&item)
	}

	stored, err := s.repo.Create(ctx, owner, &item)
	if err != nil {
		return nil, err
	}
	id, _ := s.ids.get(stored)
	s.ids.set(stored, id, clientID)
	return stored, nil
}

func (s *sectionService[T]) UpdateBatch(ctx context.Context, owner string, items []T) error {
	for i := range items {
		id, _ := s.ids.get(&items[i])
		if _, err := parseID(id); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if err := model.Validate(&items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, invalid(err))
		}
		if s.ids.prepare != nil {
			s.ids.prepare(&items[i])
		}
	}
	if len(items) == 0 {
		return nil
	}
	return notFound(s.repo.UpdateBatch(ctx, owner, items))
}

func (s *sectionService[T]) Delete(ctx context.Context, owner, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, owner, n))
}
