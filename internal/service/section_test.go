package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/ai"
	"resumeapi/internal/model"
	repoMocks "resumeapi/internal/repository/mocks"
)

func TestSkillService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		item       model.Skill
		setupMocks func(m *repoMocks.MockCollection[model.Skill])
		wantErr    error
		check      func(t *testing.T, got *model.Skill)
	}{
		{
			name: "stores and echoes client id",
			item: model.Skill{ID: "99", ClientID: "tmp-1", Name: "Go", Level: model.LevelExpert},
			setupMocks: func(m *repoMocks.MockCollection[model.Skill]) {
				m.On("Create", ctx, "owner-1", mock.MatchedBy(func(s *model.Skill) bool {
					return s.ID == "" && s.Name == "Go"
				})).Return(&model.Skill{ID: "7", Name: "Go", Level: model.LevelExpert}, nil)
			},
			check: func(t *testing.T, got *model.Skill) {
				assert.Equal(t, "7", got.ID)
				assert.Equal(t, "tmp-1", got.ClientID)
			},
		},
		{
			name:       "missing level",
			item:       model.Skill{Name: "Go"},
			setupMocks: func(m *repoMocks.MockCollection[model.Skill]) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "unknown level",
			item:       model.Skill{Name: "Go", Level: "guru"},
			setupMocks: func(m *repoMocks.MockCollection[model.Skill]) {},
			wantErr:    ErrValidation,
		},
		{
			name: "repository error",
			item: model.Skill{Name: "Go", Level: model.LevelBeginner},
			setupMocks: func(m *repoMocks.MockCollection[model.Skill]) {
				m.On("Create", ctx, "owner-1", mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockCollection[model.Skill])
			tt.setupMocks(repo)
			svc := NewSkillService(repo)

			got, err := svc.Add(ctx, "owner-1", tt.item)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrValidation) {
					assert.ErrorIs(t, err, ErrValidation)
					var verr *model.ValidationError
					assert.True(t, errors.As(err, &verr))
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
			} else {
				require.NoError(t, err)
				tt.check(t, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestSocialLinkService_AddRejectsRelativeURL(t *testing.T) {
	repo := new(repoMocks.MockCollection[model.SocialLink])
	svc := NewSocialLinkService(repo)

	_, err := svc.Add(context.Background(), "owner-1", model.SocialLink{Platform: "GitHub", URL: "github.com/ada"})

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "url", verr.Errors[0].Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestEducationService_UpdateBatch(t *testing.T) {
	ctx := context.Background()
	valid := model.Education{ID: "1", Institution: "MIT", Degree: "BSc"}

	tests := []struct {
		name       string
		items      []model.Education
		setupMocks func(m *repoMocks.MockCollection[model.Education])
		wantErr    error
	}{
		{
			name:  "happy path",
			items: []model.Education{valid, {ID: "2", Institution: "ETH", Degree: "MSc"}},
			setupMocks: func(m *repoMocks.MockCollection[model.Education]) {
				m.On("UpdateBatch", ctx, "owner-1", mock.Anything).Return(nil)
			},
		},
		{
			name:       "one invalid record rejects the batch",
			items:      []model.Education{valid, {ID: "2", Institution: "ETH"}},
			setupMocks: func(m *repoMocks.MockCollection[model.Education]) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "missing id",
			items:      []model.Education{{Institution: "ETH", Degree: "MSc"}},
			setupMocks: func(m *repoMocks.MockCollection[model.Education]) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:       "non numeric id",
			items:      []model.Education{{ID: "tmp-1", Institution: "ETH", Degree: "MSc"}},
			setupMocks: func(m *repoMocks.MockCollection[model.Education]) {},
			wantErr:    ErrInvalidID,
		},
		{
			name:  "record of another owner",
			items: []model.Education{valid},
			setupMocks: func(m *repoMocks.MockCollection[model.Education]) {
				m.On("UpdateBatch", ctx, "owner-1", mock.Anything).Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "empty batch is a no-op",
			items:      nil,
			setupMocks: func(m *repoMocks.MockCollection[model.Education]) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockCollection[model.Education])
			tt.setupMocks(repo)
			svc := NewEducationService(repo)

			err := svc.UpdateBatch(ctx, "owner-1", tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCertificationService_GetAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		repo := new(repoMocks.MockCollection[model.Certification])
		repo.On("Get", ctx, "owner-1", int64(3)).Return(&model.Certification{ID: "3", Name: "CKA"}, nil)
		got, err := NewCertificationService(repo).Get(ctx, "owner-1", "3")
		require.NoError(t, err)
		assert.Equal(t, "CKA", got.Name)
	})

	t.Run("get missing", func(t *testing.T) {
		repo := new(repoMocks.MockCollection[model.Certification])
		repo.On("Get", ctx, "owner-1", int64(4)).Return(nil, sql.ErrNoRows)
		_, err := NewCertificationService(repo).Get(ctx, "owner-1", "4")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get without id", func(t *testing.T) {
		repo := new(repoMocks.MockCollection[model.Certification])
		_, err := NewCertificationService(repo).Get(ctx, "owner-1", "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})

	t.Run("delete", func(t *testing.T) {
		repo := new(repoMocks.MockCollection[model.Certification])
		repo.On("Delete", ctx, "owner-1", int64(3)).Return(nil)
		assert.NoError(t, NewCertificationService(repo).Delete(ctx, "owner-1", "3"))
	})

	t.Run("delete missing", func(t *testing.T) {
		repo := new(repoMocks.MockCollection[model.Certification])
		repo.On("Delete", ctx, "owner-1", int64(3)).Return(sql.ErrNoRows)
		assert.ErrorIs(t, NewCertificationService(repo).Delete(ctx, "owner-1", "3"), ErrNotFound)
	})

	t.Run("delete zero id", func(t *testing.T) {
		repo := new(repoMocks.MockCollection[model.Certification])
		assert.ErrorIs(t, NewCertificationService(repo).Delete(ctx, "owner-1", "0"), ErrInvalidID)
	})
}

func TestCustomSectionService_AddDefaultsItems(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCollection[model.CustomSection])
	repo.On("Create", ctx, "owner-1", mock.MatchedBy(func(c *model.CustomSection) bool {
		return c.Items != nil && len(c.Items) == 0
	})).Return(&model.CustomSection{ID: "1", Title: "Projects", Items: []model.CustomItem{}}, nil)

	got, err := NewCustomSectionService(repo).Add(ctx, "owner-1", model.CustomSection{Title: "Projects"})
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
	repo.AssertExpectations(t)
}

func TestExperienceService(t *testing.T) {
	ctx := context.Background()

	t.Run("current role drops end date", func(t *testing.T) {
		repo := new(repoMocks.MockCollection[model.WorkExperience])
		repo.On("Create", ctx, "owner-1", mock.MatchedBy(func(e *model.WorkExperience) bool {
			return e.EndDate == "" && e.Achievements != nil
		})).Return(&model.WorkExperience{ID: "1"}, nil)

		svc := NewExperienceService(repo, ai.NewWriter(nil))
		_, err := svc.Add(ctx, "owner-1", model.WorkExperience{
			Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "2022-01", Current: true,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("generate description without provider", func(t *testing.T) {
		svc := NewExperienceService(new(repoMocks.MockCollection[model.WorkExperience]), ai.NewWriter(nil))
		got, err := svc.GenerateDescription(ctx, model.GenerateDescriptionRequest{
			Position: "Engineer", Company: "Acme", Keywords: []string{"Go"},
		})
		require.NoError(t, err)
		assert.Contains(t, got.Text, "Engineer")
		assert.Contains(t, got.Text, "Acme")
	})

	t.Run("generate description requires company", func(t *testing.T) {
		svc := NewExperienceService(new(repoMocks.MockCollection[model.WorkExperience]), ai.NewWriter(nil))
		_, err := svc.GenerateDescription(ctx, model.GenerateDescriptionRequest{Position: "Engineer"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
