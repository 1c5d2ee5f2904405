package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starhub/internal/server/adapters/postgres"
	"starhub/internal/server/domain/entities"
)

func TestPeopleRepository_FindByID(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful lookup", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "name", "height", "mass", "hair_color", "skin_color", "eye_color", "birth_year", "gender"}).
			AddRow(int64(3), "Luke Skywalker", 172, 77, "blond", "fair", "blue", "19BBY", "male")

		mock.ExpectQuery("SELECT id, name, height, mass").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		repo := postgres.NewPeopleRepository(mock)

		person, err := repo.FindByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), person.ID)
		assert.Equal(t, "Luke Skywalker", person.Name)
		assert.Equal(t, 172, person.Height)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id maps to domain error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, height, mass").
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewPeopleRepository(mock)

		person, err := repo.FindByID(ctx, 999)

		require.ErrorIs(t, err, entities.ErrPeopleNotFound)
		assert.Nil(t, person)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPeopleRepository_List(t *testing.T) {
	ctx := testContext(t)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "name", "height", "mass", "hair_color", "skin_color", "eye_color", "birth_year", "gender"}).
		AddRow(int64(3), "Luke Skywalker", 172, 77, "blond", "fair", "blue", "19BBY", "male").
		AddRow(int64(4), "Darth Vader", 202, 136, "none", "white", "yellow", "41.9BBY", "male")

	mock.ExpectQuery("SELECT id, name, height, mass").
		WillReturnRows(rows)

	repo := postgres.NewPeopleRepository(mock)

	people, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Darth Vader", people[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPeopleRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful deletion", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM people").
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewPeopleRepository(mock)

		require.NoError(t, repo.Delete(ctx, 3))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting absent person maps to domain error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM people").
			WithArgs(int64(999)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewPeopleRepository(mock)

		err = repo.Delete(ctx, 999)

		require.ErrorIs(t, err, entities.ErrPeopleNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM people").
			WithArgs(int64(3)).
			WillReturnError(ErrDatabaseConnection)

		repo := postgres.NewPeopleRepository(mock)

		err = repo.Delete(ctx, 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error deleting people")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
