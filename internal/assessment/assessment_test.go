package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{1, 200, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.correct, tt.total), "%d/%d", tt.correct, tt.total)
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "Expert", Level(80))
	assert.Equal(t, "Advanced", Level(79))
	assert.Equal(t, "Advanced", Level(60))
	assert.Equal(t, "Intermediate", Level(40))
	assert.Equal(t, "Beginner", Level(39))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"communication", "go", "javascript", "project-management", "sql"}, Categories())
}

func TestBanksAreWellFormed(t *testing.T) {
	ids := map[string]bool{}
	for cat, qs := range banks {
		require.NotEmpty(t, qs, cat)
		for _, q := range qs {
			assert.False(t, ids[q.ID], "duplicate id %s", q.ID)
			ids[q.ID] = true
			assert.True(t, q.Answer >= 0 && q.Answer < len(q.Options), "answer out of range for %s", q.ID)
		}
	}
}

func TestGrade(t *testing.T) {
	qs, err := Questions("go")
	require.NoError(t, err)

	all := map[string]int{}
	for _, q := range qs {
		all[q.ID] = q.Answer
	}
	res, err := Grade("go", all)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Correct)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, "Expert", res.Label)

	partial := map[string]int{qs[0].ID: qs[0].Answer, qs[1].ID: qs[1].Answer, qs[2].ID: (qs[2].Answer + 1) % len(qs[2].Options)}
	res, err = Grade("go", partial)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Correct)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 40, res.Score)
	assert.Equal(t, "Intermediate", res.Label)

	res, err = Grade("go", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
}

func TestGradeUnknownCategory(t *testing.T) {
	_, err := Grade("cobol", map[string]int{})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = Questions("cobol")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
