package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"resumeapi/internal/events"
	"resumeapi/internal/metrics"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	repoMocks "resumeapi/internal/repository/mocks"
)

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) {
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Close() error { return nil }

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"abc", true},
		{"Ada2024", true},
		{strings.Repeat("a", 100), true},
		{"ab", false},
		{strings.Repeat("a", 101), false},
		{"ada-lovelace", false},
		{"ada lovelace", false},
		{"adé123", false},
		{"", false},
	}
	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if tt.ok {
			assert.NoError(t, err, tt.path)
		} else {
			assert.ErrorIs(t, err, ErrInvalidPath, tt.path)
		}
	}
}

func newLinkFixture() (*repoMocks.MockLinkRepository, *mockPrivacy, *mockResumes, *recordingPublisher) {
	return new(repoMocks.MockLinkRepository), new(mockPrivacy), new(mockResumes), &recordingPublisher{}
}

func TestLinkService_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	repo, privacy, resumes, pub := newLinkFixture()
	svc := NewLinkService(repo, privacy, resumes, LinkOptions{Events: pub})

	repo.On("PathExists", ctx, "taken").Return(true, nil)
	repo.On("PathExists", ctx, "free1").Return(false, nil)

	got, err := svc.CheckAvailability(ctx, "x")
	require.NoError(t, err)
	assert.False(t, got.Valid)
	assert.False(t, got.Available)

	got, err = svc.CheckAvailability(ctx, "taken")
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.False(t, got.Available)
	assert.Equal(t, ErrPathTaken.Error(), got.Reason)

	got, err = svc.CheckAvailability(ctx, "free1")
	require.NoError(t, err)
	assert.True(t, got.Available)
	repo.AssertNotCalled(t, "PathExists", ctx, "x")
}

func TestLinkService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		req        model.CreateLinkRequest
		setupMocks func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy)
		wantErr    error
		check      func(t *testing.T, got *model.ResumeLink, pub *recordingPublisher)
	}{
		{
			name: "expiry defaults from privacy settings",
			req:  model.CreateLinkRequest{Path: "ada2024"},
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy) {
				repo.On("PathExists", ctx, "ada2024").Return(false, nil)
				privacy.On("Get", ctx, "owner-1").Return(&model.PrivacySettings{DefaultLinkExpiryDays: 7}, nil)
				repo.On("Create", ctx, "owner-1", mock.MatchedBy(func(l *model.ResumeLink) bool {
					return l.Template == "modern" && l.Active && l.ExpiresAt != nil &&
						l.ExpiresAt.Equal(fixedNow.AddDate(0, 0, 7)) && l.PasswordHash == ""
				})).Return(&model.ResumeLink{ID: "1", Path: "ada2024", Template: "modern", Active: true}, nil)
			},
			check: func(t *testing.T, got *model.ResumeLink, pub *recordingPublisher) {
				assert.Equal(t, "https://cv.example.com/r/ada2024", got.URL)
				require.Len(t, pub.events, 1)
				assert.Equal(t, events.LinkCreated, pub.events[0].Type)
			},
		},
		{
			name: "explicit expiry and password",
			req:  model.CreateLinkRequest{Path: "ada2024", Template: "minimal", Password: "s3cret", ExpiresInDays: 2},
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy) {
				repo.On("PathExists", ctx, "ada2024").Return(false, nil)
				repo.On("Create", ctx, "owner-1", mock.MatchedBy(func(l *model.ResumeLink) bool {
					return l.Template == "minimal" && l.ExpiresAt.Equal(fixedNow.AddDate(0, 0, 2)) &&
						bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte("s3cret")) == nil
				})).Return(&model.ResumeLink{ID: "1", Path: "ada2024", PasswordProtected: true}, nil)
			},
			check: func(t *testing.T, got *model.ResumeLink, _ *recordingPublisher) {
				assert.True(t, got.PasswordProtected)
			},
		},
		{
			name:       "invalid path",
			req:        model.CreateLinkRequest{Path: "a-b"},
			setupMocks: func(*repoMocks.MockLinkRepository, *mockPrivacy) {},
			wantErr:    ErrInvalidPath,
		},
		{
			name:       "unknown template",
			req:        model.CreateLinkRequest{Path: "ada2024", Template: "fancy"},
			setupMocks: func(*repoMocks.MockLinkRepository, *mockPrivacy) {},
			wantErr:    ErrValidation,
		},
		{
			name: "path taken",
			req:  model.CreateLinkRequest{Path: "ada2024"},
			setupMocks: func(repo *repoMocks.MockLinkRepository, _ *mockPrivacy) {
				repo.On("PathExists", ctx, "ada2024").Return(true, nil)
			},
			wantErr: ErrPathTaken,
		},
		{
			name: "path taken concurrently",
			req:  model.CreateLinkRequest{Path: "ada2024", ExpiresInDays: 1},
			setupMocks: func(repo *repoMocks.MockLinkRepository, _ *mockPrivacy) {
				repo.On("PathExists", ctx, "ada2024").Return(false, nil)
				repo.On("Create", ctx, "owner-1", mock.Anything).Return(nil, repository.ErrConflict)
			},
			wantErr: ErrPathTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, privacy, resumes, pub := newLinkFixture()
			tt.setupMocks(repo, privacy)
			svc := NewLinkService(repo, privacy, resumes, LinkOptions{
				PublicBaseURL: "https://cv.example.com/",
				BcryptCost:    bcrypt.MinCost,
				Events:        pub,
				Now:           func() time.Time { return fixedNow },
			})

			got, err := svc.Create(ctx, "owner-1", tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				tt.check(t, got, pub)
			}
			repo.AssertExpectations(t)
			privacy.AssertExpectations(t)
		})
	}
}

func TestLinkService_Resolve(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	past := fixedNow.Add(-time.Hour)
	resume := &model.Resume{PersonalInfo: &model.PersonalInfo{FullName: "Ada", Email: "ada@example.com", Phone: "123"}}
	allOn := model.DefaultPrivacySettings()

	tests := []struct {
		name       string
		password   string
		setupMocks func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, resumes *mockResumes)
		wantErr    error
		check      func(t *testing.T, got *model.SharedResume, m *metrics.Metrics, pub *recordingPublisher)
	}{
		{
			name: "counts a view",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, resumes *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Path: "ada2024", Template: "modern", Active: true, Views: 2}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&allOn, nil)
				resumes.On("Get", ctx, "owner-1").Return(resume, nil)
				repo.On("IncrementViews", ctx, int64(5)).Return(nil)
			},
			check: func(t *testing.T, got *model.SharedResume, m *metrics.Metrics, pub *recordingPublisher) {
				assert.Equal(t, "ada@example.com", got.Resume.PersonalInfo.Email)
				assert.Equal(t, "modern", got.Template)
				require.Len(t, pub.events, 1)
				assert.Equal(t, events.LinkViewed, pub.events[0].Type)
				assert.Equal(t, int64(3), pub.events[0].Data["views"])
			},
		},
		{
			name: "hides contact and skips analytics",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, resumes *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Path: "ada2024", Active: true}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&model.PrivacySettings{PublicProfile: true}, nil)
				resumes.On("Get", ctx, "owner-1").Return(resume, nil)
			},
			check: func(t *testing.T, got *model.SharedResume, _ *metrics.Metrics, pub *recordingPublisher) {
				assert.Empty(t, got.Resume.PersonalInfo.Email)
				assert.Empty(t, got.Resume.PersonalInfo.Phone)
				assert.Equal(t, "Ada", got.Resume.PersonalInfo.FullName)
				assert.Equal(t, "ada@example.com", resume.PersonalInfo.Email)
				assert.Empty(t, pub.events)
			},
		},
		{
			name: "unknown path",
			setupMocks: func(repo *repoMocks.MockLinkRepository, _ *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(nil, "", sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "inactive",
			setupMocks: func(repo *repoMocks.MockLinkRepository, _ *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5"}, "owner-1", nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "expired",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Active: true, ExpiresAt: &past}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&allOn, nil)
			},
			wantErr: ErrLinkExpired,
		},
		{
			name: "password required",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Active: true, PasswordHash: string(hash)}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&allOn, nil)
			},
			wantErr: ErrPasswordRequired,
		},
		{
			name:     "wrong password",
			password: "nope",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Active: true, PasswordHash: string(hash)}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&allOn, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:     "private profile",
			password: "s3cret",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Active: true, PasswordHash: string(hash)}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&model.PrivacySettings{}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "private profile hides an expired link",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Active: true, ExpiresAt: &past}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&model.PrivacySettings{}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "private profile hides a protected link without password",
			setupMocks: func(repo *repoMocks.MockLinkRepository, privacy *mockPrivacy, _ *mockResumes) {
				repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Active: true, PasswordHash: string(hash)}, "owner-1", nil)
				privacy.On("Get", ctx, "owner-1").Return(&model.PrivacySettings{}, nil)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, privacy, resumes, pub := newLinkFixture()
			tt.setupMocks(repo, privacy, resumes)
			m, err := metrics.New(prometheus.NewRegistry())
			require.NoError(t, err)
			svc := NewLinkService(repo, privacy, resumes, LinkOptions{
				Events:  pub,
				Metrics: m,
				Now:     func() time.Time { return fixedNow },
			})

			got, err := svc.Resolve(ctx, "ada2024", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				tt.check(t, got, m, pub)
			}
			repo.AssertExpectations(t)
			privacy.AssertExpectations(t)
			resumes.AssertExpectations(t)
		})
	}
}

func TestLinkService_ResolveLeavesReaderResumeIntact(t *testing.T) {
	ctx := context.Background()
	repo, privacy, resumes, pub := newLinkFixture()

	owned := &model.Resume{PersonalInfo: &model.PersonalInfo{FullName: "Ada", Email: "ada@example.com", Phone: "555-0100"}}
	repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Path: "ada2024", Active: true}, "owner-1", nil)
	privacy.On("Get", ctx, "owner-1").Return(&model.PrivacySettings{PublicProfile: true}, nil)
	resumes.On("Get", ctx, "owner-1").Return(owned, nil)

	svc := NewLinkService(repo, privacy, resumes, LinkOptions{Events: pub})
	got, err := svc.Resolve(ctx, "ada2024", "")
	require.NoError(t, err)

	assert.Empty(t, got.Resume.PersonalInfo.Email)
	assert.Equal(t, "ada@example.com", owned.PersonalInfo.Email)
	assert.Equal(t, "555-0100", owned.PersonalInfo.Phone)
	assert.NotSame(t, owned.PersonalInfo, got.Resume.PersonalInfo)
}

func TestLinkService_ResolveCountsViewMetric(t *testing.T) {
	ctx := context.Background()
	repo, privacy, resumes, pub := newLinkFixture()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	settings := model.DefaultPrivacySettings()
	repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Path: "ada2024", Template: "minimal", Active: true}, "owner-1", nil)
	privacy.On("Get", ctx, "owner-1").Return(&settings, nil)
	resumes.On("Get", ctx, "owner-1").Return(&model.Resume{}, nil)
	repo.On("IncrementViews", ctx, int64(5)).Return(nil)

	svc := NewLinkService(repo, privacy, resumes, LinkOptions{Events: pub, Metrics: m})
	_, err = svc.Resolve(ctx, "ada2024", "")
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "resume_link_views_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLinkService_RenderShared(t *testing.T) {
	ctx := context.Background()
	repo, privacy, resumes, pub := newLinkFixture()
	settings := model.PrivacySettings{PublicProfile: true, ShowContact: true}
	repo.On("FindByPath", ctx, "ada2024").Return(&model.ResumeLink{ID: "5", Path: "ada2024", Template: "professional", Active: true}, "owner-1", nil)
	privacy.On("Get", ctx, "owner-1").Return(&settings, nil)
	resumes.On("Get", ctx, "owner-1").Return(&model.Resume{PersonalInfo: &model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"}}, nil)

	svc := NewLinkService(repo, privacy, resumes, LinkOptions{Events: pub})

	html, err := svc.RenderShared(ctx, "ada2024", "", "")
	require.NoError(t, err)
	assert.Contains(t, string(html), "Ada Lovelace")

	_, err = svc.RenderShared(ctx, "ada2024", "", "fancy")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestLinkService_Suggest(t *testing.T) {
	ctx := context.Background()

	t.Run("seed is free", func(t *testing.T) {
		repo, privacy, resumes, _ := newLinkFixture()
		repo.On("PathExists", ctx, "adalovelace").Return(false, nil)
		got, err := NewLinkService(repo, privacy, resumes, LinkOptions{}).Suggest(ctx, "Ada Lovelace!")
		require.NoError(t, err)
		assert.Equal(t, "adalovelace", got)
	})

	t.Run("short seed is padded and suffixed when taken", func(t *testing.T) {
		repo, privacy, resumes, _ := newLinkFixture()
		repo.On("PathExists", ctx, "aresume").Return(true, nil).Once()
		repo.On("PathExists", ctx, mock.Anything).Return(false, nil).Once()
		got, err := NewLinkService(repo, privacy, resumes, LinkOptions{}).Suggest(ctx, "a")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "aresume"))
		assert.Len(t, got, len("aresume")+6)
		assert.NoError(t, ValidatePath(got))
	})

	t.Run("gives up", func(t *testing.T) {
		repo, privacy, resumes, _ := newLinkFixture()
		repo.On("PathExists", ctx, mock.Anything).Return(true, nil)
		_, err := NewLinkService(repo, privacy, resumes, LinkOptions{}).Suggest(ctx, "ada")
		assert.ErrorIs(t, err, ErrPathTaken)
	})
}

func TestLinkService_ListAddsURL(t *testing.T) {
	ctx := context.Background()
	repo, privacy, resumes, _ := newLinkFixture()
	repo.On("List", ctx, "owner-1").Return([]model.ResumeLink{{ID: "1", Path: "ada2024"}}, nil)

	got, err := NewLinkService(repo, privacy, resumes, LinkOptions{PublicBaseURL: "http://localhost:8080"}).List(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/r/ada2024", got[0].URL)
}
