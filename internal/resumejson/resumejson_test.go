package resumejson

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/model"
)

func sampleResume() model.Resume {
	return model.Resume{
		PersonalInfo: &model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Experiences: []model.WorkExperience{{
			ID: "4", Company: "Acme", Position: "Engineer", StartDate: "2020-01",
			Achievements: []string{"Shipped v2"},
		}},
		Education:      []model.Education{{Institution: "MIT", Degree: "BSc"}},
		Skills:         []model.Skill{{ID: "9", ClientID: "tmp-1", Name: "Go", Level: model.LevelExpert}},
		Certifications: []model.Certification{{Name: "CKA", Issuer: "CNCF"}},
		SocialLinks:    []model.SocialLink{{Platform: "GitHub", URL: "https://github.com/ada"}},
		CustomSections: []model.CustomSection{{Title: "Projects", Items: []model.CustomItem{{Title: "Engine"}}}},
	}
}

func TestRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	raw, err := Encode(sampleResume(), "modern", now)
	require.NoError(t, err)

	doc, err := Decode(raw)
	require.NoError(t, err)

	want := sampleResume()
	StripIDs(&want)
	assert.Equal(t, want, doc.Resume)
	assert.Equal(t, model.DocumentVersion, doc.Version)
	assert.Equal(t, "modern", doc.Template)
	assert.True(t, now.Equal(doc.ExportedAt))
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{name: "missing version", raw: `{"resume":{}}`, field: "version"},
		{name: "future version", raw: `{"version":2,"resume":{}}`, field: "version"},
		{name: "unknown template", raw: `{"version":1,"template":"fancy","resume":{}}`, field: "template"},
		{name: "skill without level", raw: `{"version":1,"resume":{"skills":[{"name":"Go"}]}}`, field: "resume.skills.0.level"},
		{name: "bad level", raw: `{"version":1,"resume":{"skills":[{"name":"Go","level":"guru"}]}}`, field: "resume.skills.0.level"},
		{name: "bad social url", raw: `{"version":1,"resume":{"socialLinks":[{"platform":"X","url":"not a url"}]}}`, field: "socialLinks[0].url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)

			fields := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"version":`))
	require.Error(t, err)
	var verr *model.ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestDecodeMinimalDocument(t *testing.T) {
	doc, err := Decode([]byte(`{"version":1,"resume":{}}`))
	require.NoError(t, err)
	assert.Nil(t, doc.Resume.PersonalInfo)
	assert.Empty(t, doc.Resume.Skills)
}
