package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/model"
)

func sample() model.Resume {
	return model.Resume{
		PersonalInfo: &model.PersonalInfo{
			FullName: "Ada Lovelace",
			Title:    "Analyst",
			Email:    "ada@example.com",
			Summary:  "First programmer <script>alert(1)</script>",
		},
		Experiences: []model.WorkExperience{{
			Company: "Analytical Engines", Position: "Engineer", StartDate: "2020-03",
			Current: true, Achievements: []string{"Published notes on the engine"},
		}},
		Education:   []model.Education{{Institution: "Home", Degree: "Tutoring", Field: "Mathematics"}},
		Skills:      []model.Skill{{Name: "Mathematics", Level: model.LevelExpert}},
		SocialLinks: []model.SocialLink{{Platform: "GitHub", URL: "https://github.com/ada"}},
		CustomSections: []model.CustomSection{{
			Title: "Publications",
			Items: []model.CustomItem{{Title: "Sketch of the Analytical Engine", Date: "1843-09"}},
		}},
	}
}

func TestTemplates(t *testing.T) {
	assert.Equal(t, []string{Minimal, Modern, Professional}, Templates())
	assert.True(t, Known(DefaultTemplate))
	assert.False(t, Known("fancy"))
}

func TestRenderEveryTemplate(t *testing.T) {
	for _, id := range Templates() {
		t.Run(id, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, id, sample()))
			out := buf.String()

			assert.Contains(t, out, "template-"+id)
			assert.Contains(t, out, "Ada Lovelace")
			assert.Contains(t, out, "Mar 2020 - Present")
			assert.Contains(t, out, "Sep 1843")
			assert.Contains(t, out, "https://github.com/ada")
			assert.NotContains(t, out, "<script>alert(1)</script>")
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a, err := HTML(Modern, sample())
	require.NoError(t, err)
	b, err := HTML(Modern, sample())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderEmptyResume(t *testing.T) {
	out, err := HTML(Minimal, model.Resume{})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "<title>Resume</title>"))
}

func TestRenderUnknownTemplate(t *testing.T) {
	err := Render(&bytes.Buffer{}, "fancy", sample())
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 2021", FormatDate("2021-01"))
	assert.Equal(t, "Feb 2021", FormatDate("2021-02-15"))
	assert.Equal(t, "2019", FormatDate("2019"))
	assert.Equal(t, "", FormatDate(""))
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "Jan 2020 - Present", Period("2020-01", "2021-01", true))
	assert.Equal(t, "Jan 2020 - Jan 2021", Period("2020-01", "2021-01", false))
	assert.Equal(t, "Jan 2020", Period("2020-01", "", false))
	assert.Equal(t, "", Period("", "", false))
}

func TestRenderError(t *testing.T) {
	err := &RenderError{Message: "boom", Cause: ErrUnknownTemplate}
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Equal(t, "render error: boom: unknown template", err.Error())
}
