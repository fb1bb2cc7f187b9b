package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeapi/internal/model"
)

// MockCollection mocks repository.Collection for any section type.
type MockCollection[T any] struct {
	mock.Mock
}

func (m *MockCollection[T]) Get(ctx context.Context, owner string, id int64) (*T, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCollection[T]) List(ctx context.Context, owner string) ([]T, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCollection[T]) Create(ctx context.Context, owner string, item *T) (*T, error) {
	args := m.Called(ctx, owner, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCollection[T]) UpdateBatch(ctx context.Context, owner string, items []T) error {
	args := m.Called(ctx, owner, items)
	return args.Error(0)
}

func (m *MockCollection[T]) Delete(ctx context.Context, owner string, id int64) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func (m *MockCollection[T]) ReplaceAll(ctx context.Context, owner string, items []T) ([]T, error) {
	args := m.Called(ctx, owner, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// MockHistory mocks repository.History.
type MockHistory[T any] struct {
	mock.Mock
}

func (m *MockHistory[T]) Create(ctx context.Context, owner string, item *T) (*T, error) {
	args := m.Called(ctx, owner, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockHistory[T]) List(ctx context.Context, owner string) ([]T, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

type MockPersonalInfoRepository struct {
	mock.Mock
}

func (m *MockPersonalInfoRepository) Get(ctx context.Context, owner string) (*model.PersonalInfo, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoRepository) Upsert(ctx context.Context, owner string, info *model.PersonalInfo) (*model.PersonalInfo, error) {
	args := m.Called(ctx, owner, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoRepository) Delete(ctx context.Context, owner string) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

type MockPrivacyRepository struct {
	mock.Mock
}

func (m *MockPrivacyRepository) Get(ctx context.Context, owner string) (*model.PrivacySettings, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrivacySettings), args.Error(1)
}

func (m *MockPrivacyRepository) Upsert(ctx context.Context, owner string, s *model.PrivacySettings) (*model.PrivacySettings, error) {
	args := m.Called(ctx, owner, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrivacySettings), args.Error(1)
}

type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) Create(ctx context.Context, owner string, link *model.ResumeLink) (*model.ResumeLink, error) {
	args := m.Called(ctx, owner, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResumeLink), args.Error(1)
}

func (m *MockLinkRepository) List(ctx context.Context, owner string) ([]model.ResumeLink, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResumeLink), args.Error(1)
}

func (m *MockLinkRepository) Delete(ctx context.Context, owner string, id int64) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

func (m *MockLinkRepository) FindByPath(ctx context.Context, path string) (*model.ResumeLink, string, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.ResumeLink), args.String(1), args.Error(2)
}

func (m *MockLinkRepository) PathExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockLinkRepository) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
