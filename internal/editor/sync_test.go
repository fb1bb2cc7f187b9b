package editor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/client"
	"resumeapi/internal/model"
)

// fakeAPI assigns increasing ids to added records and records every call.
type fakeAPI struct {
	mu     sync.Mutex
	calls  []string
	nextID int
	fail   string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := r.Method + " " + r.URL.Path
	f.calls = append(f.calls, call)

	if call == f.fail {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"err":{"code":"VALIDATION_ERROR","message":"name is required"}}`))
		return
	}

	body, _ := io.ReadAll(r.Body)
	switch r.Method {
	case http.MethodPost:
		var rec map[string]any
		_ = json.Unmarshal(body, &rec)
		f.nextID++
		rec["id"] = strconv.Itoa(f.nextID)
		out, _ := json.Marshal(map[string]any{"ok": rec})
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(out)
	case http.MethodPut:
		if r.URL.Path == "/api/v1/personal-info" {
			_, _ = w.Write([]byte(`{"ok":` + string(body) + `}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	case http.MethodDelete:
		_, _ = w.Write([]byte(`{"ok":true}`))
	}
}

func newSyncFixture(t *testing.T) (*fakeAPI, *client.Client) {
	t.Helper()
	api := &fakeAPI{nextID: 100}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return api, client.New(srv.URL, "tok")
}

func TestSyncReconcilesNewEntries(t *testing.T) {
	api, c := newSyncFixture(t)

	s := NewStore()
	s.Load(model.Resume{Skills: []model.Skill{{ID: "7", Name: "Go", Level: model.LevelExpert}}})
	s.SetPersonalInfo(model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"})
	first := s.AddSkill(model.Skill{Name: "SQL", Level: model.LevelAdvanced})
	second := s.AddSkill(model.Skill{Name: "Rust", Level: model.LevelBeginner})

	require.NoError(t, Sync(context.Background(), s, c))

	skills := s.Resume().Skills
	require.Len(t, skills, 3)
	assert.Equal(t, "7", skills[0].ID)
	assert.Equal(t, first, skills[1].ClientID)
	assert.Equal(t, "101", skills[1].ID)
	assert.Equal(t, second, skills[2].ClientID)
	assert.Equal(t, "102", skills[2].ID)

	assert.Equal(t, []string{
		"PUT /api/v1/personal-info",
		"PUT /api/v1/skills",
		"POST /api/v1/skills",
		"POST /api/v1/skills",
	}, api.calls)
	assert.False(t, s.Dirty())
	notes := s.Notifications()
	require.NotEmpty(t, notes)
	assert.Equal(t, LevelInfo, notes[len(notes)-1].Level)
}

func TestSyncPushesDeletes(t *testing.T) {
	api, c := newSyncFixture(t)

	s := NewStore()
	s.Load(model.Resume{SocialLinks: []model.SocialLink{{ID: "3", Platform: "GitHub", URL: "https://github.com/ada"}}})
	require.NoError(t, s.RemoveSocialLink("3"))

	require.NoError(t, Sync(context.Background(), s, c))
	assert.Equal(t, []string{"DELETE /api/v1/social-links/3"}, api.calls)
	assert.Empty(t, s.PendingDeletes(SectionSocialLinks))
}

func TestSyncFailureKeepsLocalState(t *testing.T) {
	api, c := newSyncFixture(t)
	api.fail = "POST /api/v1/education"

	s := NewStore()
	cid := s.AddEducation(model.Education{Institution: "MIT", Degree: "BSc"})

	err := Sync(context.Background(), s, c)
	var remote *client.RemoteError
	require.ErrorAs(t, err, &remote)

	edu := s.Resume().Education
	require.Len(t, edu, 1)
	assert.Equal(t, cid, edu[0].ClientID)
	assert.Empty(t, edu[0].ID)
	assert.True(t, s.Dirty())

	notes := s.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, LevelError, notes[0].Level)
	assert.Equal(t, "Failed to save education: name is required", notes[0].Message)
}

func TestSyncRefusesInvalidState(t *testing.T) {
	api, c := newSyncFixture(t)

	s := NewStore()
	s.AddSkill(model.Skill{Name: "Go"})

	err := Sync(context.Background(), s, c)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, api.calls)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "path is taken", Message(&client.RemoteError{Code: "PATH_TAKEN", Message: "path is taken"}))
	assert.Equal(t, "could not reach the server, please try again", Message(client.ErrRemote))
	assert.Equal(t, "context canceled", Message(context.Canceled))
}
