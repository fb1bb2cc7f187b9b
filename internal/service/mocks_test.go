package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeapi/internal/model"
)

// In-package doubles for ResumeReader and PrivacyService.

type mockResumes struct {
	mock.Mock
}

func (m *mockResumes) Get(ctx context.Context, owner string) (*model.Resume, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

type mockPrivacy struct {
	mock.Mock
}

func (m *mockPrivacy) Get(ctx context.Context, owner string) (*model.PrivacySettings, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrivacySettings), args.Error(1)
}

func (m *mockPrivacy) Update(ctx context.Context, owner string, s model.PrivacySettings) (*model.PrivacySettings, error) {
	args := m.Called(ctx, owner, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrivacySettings), args.Error(1)
}
