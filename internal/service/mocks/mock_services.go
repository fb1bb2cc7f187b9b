package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeapi/internal/assessment"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
)

// MockSection mocks service.SectionService for any section type.
type MockSection[T any] struct {
	mock.Mock
}

func (m *MockSection[T]) List(ctx context.Context, owner string) ([]T, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockSection[T]) Get(ctx context.Context, owner, id string) (*T, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSection[T]) Add(ctx context.Context, owner string, item T) (*T, error) {
	args := m.Called(ctx, owner, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSection[T]) UpdateBatch(ctx context.Context, owner string, items []T) error {
	return m.Called(ctx, owner, items).Error(0)
}

func (m *MockSection[T]) Delete(ctx context.Context, owner, id string) error {
	return m.Called(ctx, owner, id).Error(0)
}

type MockExperienceService struct {
	MockSection[model.WorkExperience]
}

var _ service.ExperienceService = (*MockExperienceService)(nil)

func (m *MockExperienceService) GenerateDescription(ctx context.Context, req model.GenerateDescriptionRequest) (*model.GeneratedText, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneratedText), args.Error(1)
}

type MockCoverLetterService struct {
	MockSection[model.CoverLetter]
}

var _ service.CoverLetterService = (*MockCoverLetterService)(nil)

func (m *MockCoverLetterService) Generate(ctx context.Context, owner string, in model.CoverLetterBuilder) (*model.GeneratedText, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneratedText), args.Error(1)
}

type MockPersonalInfoService struct {
	mock.Mock
}

func (m *MockPersonalInfoService) Get(ctx context.Context, owner string) (*model.PersonalInfo, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoService) Save(ctx context.Context, owner string, info model.PersonalInfo) (*model.PersonalInfo, error) {
	args := m.Called(ctx, owner, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonalInfo), args.Error(1)
}

type MockPrivacyService struct {
	mock.Mock
}

func (m *MockPrivacyService) Get(ctx context.Context, owner string) (*model.PrivacySettings, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrivacySettings), args.Error(1)
}

func (m *MockPrivacyService) Update(ctx context.Context, owner string, s model.PrivacySettings) (*model.PrivacySettings, error) {
	args := m.Called(ctx, owner, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrivacySettings), args.Error(1)
}

type MockResumeService struct {
	mock.Mock
}

var _ service.ResumeService = (*MockResumeService)(nil)

func (m *MockResumeService) Get(ctx context.Context, owner string) (*model.Resume, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) Export(ctx context.Context, owner, templateID string) (*model.Document, error) {
	args := m.Called(ctx, owner, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockResumeService) Import(ctx context.Context, owner string, raw []byte) (*model.Resume, error) {
	args := m.Called(ctx, owner, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) Render(ctx context.Context, owner, templateID string) ([]byte, error) {
	args := m.Called(ctx, owner, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockResumeService) ExportPDF(ctx context.Context, owner, templateID string) (*service.PDFExport, error) {
	args := m.Called(ctx, owner, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PDFExport), args.Error(1)
}

type MockLinkService struct {
	mock.Mock
}

var _ service.LinkService = (*MockLinkService)(nil)

func (m *MockLinkService) CheckAvailability(ctx context.Context, path string) (*model.PathAvailability, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PathAvailability), args.Error(1)
}

func (m *MockLinkService) Create(ctx context.Context, owner string, req model.CreateLinkRequest) (*model.ResumeLink, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResumeLink), args.Error(1)
}

func (m *MockLinkService) List(ctx context.Context, owner string) ([]model.ResumeLink, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResumeLink), args.Error(1)
}

func (m *MockLinkService) Delete(ctx context.Context, owner, id string) error {
	return m.Called(ctx, owner, id).Error(0)
}

func (m *MockLinkService) Resolve(ctx context.Context, path, password string) (*model.SharedResume, error) {
	args := m.Called(ctx, path, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SharedResume), args.Error(1)
}

func (m *MockLinkService) RenderShared(ctx context.Context, path, password, templateID string) ([]byte, error) {
	args := m.Called(ctx, path, password, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockLinkService) Suggest(ctx context.Context, seed string) (string, error) {
	args := m.Called(ctx, seed)
	return args.String(0), args.Error(1)
}

type MockScoringService struct {
	mock.Mock
}

var _ service.ScoringService = (*MockScoringService)(nil)

func (m *MockScoringService) AnalyzeATS(ctx context.Context, owner string, req model.AnalyzeRequest) (*model.ATSReport, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ATSReport), args.Error(1)
}

func (m *MockScoringService) ScoreResume(ctx context.Context, owner string) (*model.ScoreReport, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScoreReport), args.Error(1)
}

func (m *MockScoringService) ATSReports(ctx context.Context, owner string) ([]model.ATSReport, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ATSReport), args.Error(1)
}

func (m *MockScoringService) ScoreReports(ctx context.Context, owner string) ([]model.ScoreReport, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScoreReport), args.Error(1)
}

type MockAssessmentService struct {
	mock.Mock
}

var _ service.AssessmentService = (*MockAssessmentService)(nil)

func (m *MockAssessmentService) Categories() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockAssessmentService) Questions(category string) ([]assessment.Question, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]assessment.Question), args.Error(1)
}

func (m *MockAssessmentService) Submit(ctx context.Context, owner, category string, req model.SubmitAnswersRequest) (*model.AssessmentResult, error) {
	args := m.Called(ctx, owner, category, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssessmentResult), args.Error(1)
}

func (m *MockAssessmentService) Results(ctx context.Context, owner string) ([]model.AssessmentResult, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AssessmentResult), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Dashboard(ctx context.Context, owner string) (*model.Dashboard, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}
