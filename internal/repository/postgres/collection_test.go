package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/model"
)

var skillColumns = []string{"id", "name", "level", "category"}

func TestSkillPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSkillPostgres(db)

	mock.ExpectQuery("INSERT INTO resumes_skills").
		WithArgs("owner-1", "Go", model.LevelExpert, "Backend").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	got, err := repo.Create(context.Background(), "owner-1", &model.Skill{
		ClientID: "tmp-1", Name: "Go", Level: model.LevelExpert, Category: "Backend",
	})

	require.NoError(t, err)
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "tmp-1", got.ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillPostgres_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSkillPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM resumes_skills WHERE owner = (.+) AND id = (.+)").
			WithArgs("owner-1", int64(3)).
			WillReturnRows(sqlmock.NewRows(skillColumns).AddRow(int64(3), "SQL", "advanced", ""))

		s, err := repo.Get(ctx, "owner-1", 3)
		require.NoError(t, err)
		assert.Equal(t, "3", s.ID)
		assert.Equal(t, "SQL", s.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM resumes_skills").
			WithArgs("owner-1", int64(9)).
			WillReturnError(sql.ErrNoRows)

		s, err := repo.Get(ctx, "owner-1", 9)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, s)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSkillPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM resumes_skills WHERE owner = (.+) ORDER BY id").
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(skillColumns).
			AddRow(int64(1), "Go", "expert", "").
			AddRow(int64(2), "SQL", "advanced", "Data"))

	items, err := repo.List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "Data", items[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillPostgres_UpdateBatch(t *testing.T) {
	ctx := context.Background()
	batch := []model.Skill{
		{ID: "1", Name: "Go", Level: "expert"},
		{ID: "2", Name: "SQL", Level: "advanced"},
	}

	t.Run("commits when every row exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE resumes_skills SET").
			WithArgs("owner-1", int64(1), "Go", "expert", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE resumes_skills SET").
			WithArgs("owner-1", int64(2), "SQL", "advanced", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, NewSkillPostgres(db).UpdateBatch(ctx, "owner-1", batch))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a row is missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE resumes_skills SET").
			WithArgs("owner-1", int64(1), "Go", "expert", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE resumes_skills SET").
			WithArgs("owner-1", int64(2), "SQL", "advanced", "").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = NewSkillPostgres(db).UpdateBatch(ctx, "owner-1", batch)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unparsable id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = NewSkillPostgres(db).UpdateBatch(ctx, "owner-1", []model.Skill{{ID: "tmp-3", Name: "Go", Level: "expert"}})
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSkillPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSkillPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM resumes_skills WHERE owner = (.+) AND id = (.+)").
		WithArgs("owner-1", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(ctx, "owner-1", 4))

	mock.ExpectExec("DELETE FROM resumes_skills").
		WithArgs("owner-2", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, "owner-2", 4), sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillPostgres_ReplaceAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM resumes_skills WHERE owner = (.+)").
		WithArgs("owner-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("INSERT INTO resumes_skills").
		WithArgs("owner-1", "Go", "expert", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectCommit()

	got, err := NewSkillPostgres(db).ReplaceAll(context.Background(), "owner-1", []model.Skill{{ID: "1", Name: "Go", Level: "expert"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "10", got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillPostgres_ReplaceAllRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM resumes_skills").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO resumes_skills").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err = NewSkillPostgres(db).ReplaceAll(context.Background(), "owner-1", []model.Skill{{Name: "Go", Level: "expert"}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExperiencePostgres_JSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "company", "position", "location", "start_date", "end_date",
		"is_current", "description", "achievements"}
	mock.ExpectQuery("SELECT (.+) FROM resumes_experiences").
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), "Acme", "Engineer", "", "2020-01", "", true, "", []byte(`["Shipped v2"]`)).
			AddRow(int64(2), "Initech", "Intern", "", "2019-01", "2019-06", false, "", []byte(`[]`)))

	items, err := NewExperiencePostgres(db).List(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"Shipped v2"}, items[0].Achievements)
	assert.True(t, items[0].Current)
	assert.Equal(t, []string{}, items[1].Achievements)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomSectionPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO resumes_custom_sections").
		WithArgs("owner-1", "Projects", []byte(`[{"title":"Engine","subtitle":"","date":"","description":""}]`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	got, err := NewCustomSectionPostgres(db).Create(context.Background(), "owner-1", &model.CustomSection{
		Title: "Projects",
		Items: []model.CustomItem{{Title: "Engine"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
