package service

import (
	"context"
	"database/sql"
	"errors"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// PersonalInfoService reads and saves the single personal info record.
type PersonalInfoService interface {
	// Get returns ErrNotFound until the owner saves personal info.
	Get(ctx context.Context, owner string) (*model.PersonalInfo, error)
	Save(ctx context.Context, owner string, info model.PersonalInfo) (*model.PersonalInfo, error)
}

type personalInfoService struct {
	repo repository.PersonalInfoRepository
}

func NewPersonalInfoService(repo repository.PersonalInfoRepository) PersonalInfoService {
	return &personalInfoService{repo: repo}
}

func (s *personalInfoService) Get(ctx context.Context, owner string) (*model.PersonalInfo, error) {
	info, err := s.repo.Get(ctx, owner)
	if err != nil {
		return nil, notFound(err)
	}
	return info, nil
}

func (s *personalInfoService) Save(ctx context.Context, owner string, info model.PersonalInfo) (*model.PersonalInfo, error) {
	if err := model.Validate(&info); err != nil {
		return nil, invalid(err)
	}
	return s.repo.Upsert(ctx, owner, &info)
}

// PrivacyService reads and updates privacy settings.
type PrivacyService interface {
	// Get returns the defaults for owners who never saved settings.
	Get(ctx context.Context, owner string) (*model.PrivacySettings, error)
	Update(ctx context.Context, owner string, settings model.PrivacySettings) (*model.PrivacySettings, error)
}

type privacyService struct {
	repo repository.PrivacyRepository
}

func NewPrivacyService(repo repository.PrivacyRepository) PrivacyService {
	return &privacyService{repo: repo}
}

func (s *privacyService) Get(ctx context.Context, owner string) (*model.PrivacySettings, error) {
	settings, err := s.repo.Get(ctx, owner)
	if errors.Is(err, sql.ErrNoRows) {
		d := model.DefaultPrivacySettings()
		return &d, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *privacyService) Update(ctx context.Context, owner string, settings model.PrivacySettings) (*model.PrivacySettings, error) {
	if err := model.Validate(&settings); err != nil {
		return nil, invalid(err)
	}
	return s.repo.Upsert(ctx, owner, &settings)
}
