// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and contain no business logic.
// Every lookup is scoped by owner; a row owned by someone else is reported as
// sql.ErrNoRows.
package repository

import (
	"context"
	"errors"

	"resumeapi/internal/model"
)

// ErrConflict reports a unique constraint violation, such as a link path
// taken between the availability check and the insert.
var ErrConflict = errors.New("record conflicts with an existing one")

// Collection is the persistence contract of a per-owner list section.
type Collection[T any] interface {
	// Get returns one record or sql.ErrNoRows.
	Get(ctx context.Context, owner string, id int64) (*T, error)

	// List returns every record of the owner in insertion order.
	List(ctx context.Context, owner string) ([]T, error)

	// Create inserts a record and returns it with its assigned ID.
	Create(ctx context.Context, owner string, item *T) (*T, error)

	// UpdateBatch updates all records in one transaction. If any record does not
	// exist for the owner nothing is written and sql.ErrNoRows is returned.
	UpdateBatch(ctx context.Context, owner string, items []T) error

	// Delete removes one record or returns sql.ErrNoRows.
	Delete(ctx context.Context, owner string, id int64) error

	// ReplaceAll deletes every record of the owner and inserts items in one
	// transaction, returning the stored records.
	ReplaceAll(ctx context.Context, owner string, items []T) ([]T, error)
}

type (
	ExperienceRepository    = Collection[model.WorkExperience]
	EducationRepository     = Collection[model.Education]
	SkillRepository         = Collection[model.Skill]
	CertificationRepository = Collection[model.Certification]
	SocialLinkRepository    = Collection[model.SocialLink]
	CustomSectionRepository = Collection[model.CustomSection]
	CoverLetterRepository   = Collection[model.CoverLetter]
)

// PersonalInfoRepository stores the single personal info record per owner.
type PersonalInfoRepository interface {
	Get(ctx context.Context, owner string) (*model.PersonalInfo, error)
	Upsert(ctx context.Context, owner string, info *model.PersonalInfo) (*model.PersonalInfo, error)
	Delete(ctx context.Context, owner string) error
}

// PrivacyRepository stores privacy settings. Get returns sql.ErrNoRows when the
// owner never saved any.
type PrivacyRepository interface {
	Get(ctx context.Context, owner string) (*model.PrivacySettings, error)
	Upsert(ctx context.Context, owner string, s *model.PrivacySettings) (*model.PrivacySettings, error)
}

// LinkRepository stores shareable resume links. Paths are unique across owners.
type LinkRepository interface {
	Create(ctx context.Context, owner string, link *model.ResumeLink) (*model.ResumeLink, error)
	List(ctx context.Context, owner string) ([]model.ResumeLink, error)
	Delete(ctx context.Context, owner string, id int64) error

	// FindByPath is the public lookup used when a link is visited. The owner is
	// returned alongside the link.
	FindByPath(ctx context.Context, path string) (*model.ResumeLink, string, error)
	PathExists(ctx context.Context, path string) (bool, error)
	IncrementViews(ctx context.Context, id int64) error
}

// History is an append-only log of reports, listed newest first.
type History[T any] interface {
	Create(ctx context.Context, owner string, item *T) (*T, error)
	List(ctx context.Context, owner string) ([]T, error)
}

type (
	ATSReportRepository   = History[model.ATSReport]
	ScoreReportRepository = History[model.ScoreReport]
	AssessmentRepository  = History[model.AssessmentResult]
)
