package editor

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/model"
	"resumeapi/internal/render"
)

func TestAddAssignsClientIDs(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Dirty())

	a := s.AddSkill(model.Skill{ID: "99", Name: "Go", Level: model.LevelExpert})
	b := s.AddSkill(model.Skill{Name: "SQL", Level: model.LevelAdvanced})

	assert.True(t, strings.HasPrefix(a, ClientIDPrefix))
	assert.NotEqual(t, a, b)
	assert.True(t, s.Dirty())

	skills := s.Resume().Skills
	require.Len(t, skills, 2)
	assert.Empty(t, skills[0].ID, "a new entry never keeps a backend id")
	assert.Equal(t, a, skills[0].ClientID)
}

func TestUpdateAndRemove(t *testing.T) {
	s := NewStore()
	s.Load(model.Resume{Education: []model.Education{{ID: "4", Institution: "MIT", Degree: "BSc"}}})
	cid := s.AddEducation(model.Education{Institution: "ETH", Degree: "MSc"})

	require.NoError(t, s.UpdateEducation("4", model.Education{Institution: "MIT", Degree: "BSc (Hons)"}))
	require.NoError(t, s.UpdateEducation(cid, model.Education{Institution: "ETH Zurich", Degree: "MSc"}))

	edu := s.Resume().Education
	assert.Equal(t, "4", edu[0].ID)
	assert.Equal(t, "BSc (Hons)", edu[0].Degree)
	assert.Equal(t, cid, edu[1].ClientID)
	assert.Equal(t, "ETH Zurich", edu[1].Institution)

	require.NoError(t, s.RemoveEducation("4"))
	require.NoError(t, s.RemoveEducation(cid))
	assert.Empty(t, s.Resume().Education)
	assert.Equal(t, []string{"4"}, s.PendingDeletes(SectionEducation), "only stored entries need a remote delete")

	assert.ErrorIs(t, s.RemoveEducation("nope"), ErrUnknownEntry)
	assert.ErrorIs(t, s.UpdateEducation("", model.Education{}), ErrUnknownEntry)
}

func TestReconcile(t *testing.T) {
	s := NewStore()
	cid := s.AddCertification(model.Certification{Name: "CKA", Issuer: "CNCF"})

	require.NoError(t, s.Reconcile(cid, "17"))
	assert.Equal(t, "17", s.Resume().Certifications[0].ID)
	assert.ErrorIs(t, s.Reconcile("tmp-unknown", "18"), ErrUnknownClientID)
}

func TestValidate(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Validate())

	s.AddSocialLink(model.SocialLink{Platform: "GitHub", URL: "github.com/ada"})
	s.AddExperience(model.WorkExperience{Company: "Acme"})

	err := s.Validate()
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := map[string]bool{}
	for _, fe := range verr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["socialLinks[0].url"])
	assert.True(t, fields["experiences[0].position"])
	assert.True(t, fields["experiences[0].startDate"])
}

func TestUIState(t *testing.T) {
	s := NewStore()
	assert.Equal(t, render.DefaultTemplate, s.Template())
	assert.Equal(t, SectionPersonalInfo, s.ActiveSection())

	require.NoError(t, s.SetTemplate(render.Minimal))
	assert.ErrorIs(t, s.SetTemplate("fancy"), render.ErrUnknownTemplate)
	assert.Equal(t, render.Minimal, s.Template())

	s.SetTheme("dark")
	s.SetActiveSection(SectionSkills)
	assert.Equal(t, "dark", s.Theme())
	assert.Equal(t, SectionSkills, s.ActiveSection())
	assert.False(t, s.Dirty(), "UI state is not resume data")
}

func TestNotifications(t *testing.T) {
	s := NewStore()
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	s.Notify(LevelInfo, "Saved")
	s.Notify(LevelError, "Failed")
	assert.Equal(t, []Notification{
		{Level: LevelInfo, Message: "Saved", At: at},
		{Level: LevelError, Message: "Failed", At: at},
	}, s.Notifications())

	s.ClearNotifications()
	assert.Empty(t, s.Notifications())
}

func TestResumeIsACopy(t *testing.T) {
	s := NewStore()
	s.SetPersonalInfo(model.PersonalInfo{FullName: "Ada", Email: "ada@example.com"})
	s.AddExperience(model.WorkExperience{Company: "Acme", Position: "Engineer", StartDate: "2020-01", Achievements: []string{"a"}})

	r := s.Resume()
	r.PersonalInfo.FullName = "Grace"
	r.Experiences[0].Achievements[0] = "b"

	again := s.Resume()
	assert.Equal(t, "Ada", again.PersonalInfo.FullName)
	assert.Equal(t, "a", again.Experiences[0].Achievements[0])
}

func TestConcurrentEdits(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddSkill(model.Skill{Name: "Go", Level: model.LevelExpert})
			_ = s.Resume()
		}()
	}
	wg.Wait()
	assert.Len(t, s.Resume().Skills, 20)
}
