package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starhub/internal/server/adapters/postgres"
	"starhub/internal/server/domain/entities"
	"starhub/internal/server/ports/repositories"
	"starhub/pkg/logger"
)

var ErrDatabaseConnection = errors.New("database connection error")

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestFavoriteRepository_Add(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful insert", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO user_favorite_planets").
			WithArgs(int64(1), int64(5)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Add(ctx, repositories.FavoritePlanets, 1, 5)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate insert is a no-op", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		// ON CONFLICT DO NOTHING: нулевое число затронутых строк - успех.
		mock.ExpectExec("INSERT INTO user_favorite_planets").
			WithArgs(int64(1), int64(5)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Add(ctx, repositories.FavoritePlanets, 1, 5)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("people relation uses its own join table", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO user_favorite_people").
			WithArgs(int64(1), int64(3)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Add(ctx, repositories.FavoritePeople, 1, 3)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user foreign key violation maps to user not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO user_favorite_planets").
			WithArgs(int64(99), int64(5)).
			WillReturnError(&pgconn.PgError{
				Code:           "23503",
				ConstraintName: "user_favorite_planets_user_id_fkey",
			})

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Add(ctx, repositories.FavoritePlanets, 99, 5)

		require.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("target foreign key violation maps to planet not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO user_favorite_planets").
			WithArgs(int64(1), int64(999)).
			WillReturnError(&pgconn.PgError{
				Code:           "23503",
				ConstraintName: "user_favorite_planets_planet_id_fkey",
			})

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Add(ctx, repositories.FavoritePlanets, 1, 999)

		require.ErrorIs(t, err, entities.ErrPlanetNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO user_favorite_planets").
			WithArgs(int64(1), int64(5)).
			WillReturnError(ErrDatabaseConnection)

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Add(ctx, repositories.FavoritePlanets, 1, 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error adding favorite")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFavoriteRepository_Remove(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful removal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM user_favorite_planets").
			WithArgs(int64(1), int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Remove(ctx, repositories.FavoritePlanets, 1, 5)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("removing absent membership is a no-op", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM user_favorite_planets").
			WithArgs(int64(1), int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Remove(ctx, repositories.FavoritePlanets, 1, 5)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM user_favorite_people").
			WithArgs(int64(1), int64(3)).
			WillReturnError(ErrDatabaseConnection)

		repo := postgres.NewFavoriteRepository(mock)

		err = repo.Remove(ctx, repositories.FavoritePeople, 1, 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "error removing favorite")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFavoriteRepository_ListPlanets(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful listing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "name", "climate", "terrain", "population", "diameter"}).
			AddRow(int64(5), "Tatooine", "arid", "desert", int64(200000), int64(10465))

		mock.ExpectQuery("SELECT p.id, p.name, p.climate, p.terrain, p.population, p.diameter").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		repo := postgres.NewFavoriteRepository(mock)

		planets, err := repo.ListPlanets(ctx, 1)

		require.NoError(t, err)
		require.Len(t, planets, 1)
		assert.Equal(t, int64(5), planets[0].ID)
		assert.Equal(t, "Tatooine", planets[0].Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty set", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "name", "climate", "terrain", "population", "diameter"})

		mock.ExpectQuery("SELECT p.id, p.name, p.climate, p.terrain, p.population, p.diameter").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		repo := postgres.NewFavoriteRepository(mock)

		planets, err := repo.ListPlanets(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, planets)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFavoriteRepository_ListPeople(t *testing.T) {
	ctx := testContext(t)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "name", "height", "mass", "hair_color", "skin_color", "eye_color", "birth_year", "gender"}).
		AddRow(int64(3), "Luke Skywalker", 172, 77, "blond", "fair", "blue", "19BBY", "male")

	mock.ExpectQuery("SELECT p.id, p.name, p.height, p.mass").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	repo := postgres.NewFavoriteRepository(mock)

	people, err := repo.ListPeople(ctx, 1)

	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Luke Skywalker", people[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
