package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"starhub/internal/server/domain/entities"
	"starhub/internal/server/ports/repositories"
	"starhub/pkg/logger"
)

// pgForeignKeyViolation - код ошибки PostgreSQL для нарушения внешнего ключа.
const pgForeignKeyViolation = "23503"

// kindSpec описывает таблицу соединения для вида избранного.
type kindSpec struct {
	table        string
	targetColumn string
	targetErr    error
}

// Оба отношения обслуживаются одним репозиторием; различие только в таблице.
var kindSpecs = map[repositories.FavoriteKind]kindSpec{
	repositories.FavoritePlanets: {
		table:        "user_favorite_planets",
		targetColumn: "planet_id",
		targetErr:    entities.ErrPlanetNotFound,
	},
	repositories.FavoritePeople: {
		table:        "user_favorite_people",
		targetColumn: "people_id",
		targetErr:    entities.ErrPeopleNotFound,
	},
}

// ErrUnknownFavoriteKind возвращается при неизвестном виде избранного.
var ErrUnknownFavoriteKind = errors.New("unknown favorite kind")

// FavoriteRepository реализует интерфейс repositories.FavoriteRepository для работы с Postgres.
type FavoriteRepository struct {
	pool PgxPoolInterface
}

// NewFavoriteRepository создает новый экземпляр репозитория избранного.
func NewFavoriteRepository(pool PgxPoolInterface) repositories.FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// Add добавляет целевую сущность в избранное пользователя.
// ON CONFLICT DO NOTHING сохраняет множественную семантику отношения
// при параллельных повторных добавлениях; уникальность обеспечивает
// составной первичный ключ таблицы соединения.
func (r *FavoriteRepository) Add(ctx context.Context, kind repositories.FavoriteKind, userID, targetID int64) error {
	log := logger.Log(ctx).With(
		zap.String("repository", "favorite"),
		zap.String("method", "Add"),
		zap.String("kind", string(kind)),
		zap.Int64("userID", userID),
		zap.Int64("targetID", targetID),
	)

	spec, ok := kindSpecs[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFavoriteKind, kind)
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (user_id, %s)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, spec.table, spec.targetColumn)

	if _, err := r.pool.Exec(ctx, query, userID, targetID); err != nil {
		if mapped := mapForeignKeyError(err, spec); mapped != nil {
			log.Debug(ctx, "referenced row is missing", zap.Error(err))
			return mapped
		}
		log.Error(ctx, "error adding favorite", zap.Error(err))
		return fmt.Errorf("error adding favorite: %w", err)
	}

	return nil
}

// Remove снимает целевую сущность с избранного пользователя.
// Снятие отсутствующей записи считается успешным no-op.
func (r *FavoriteRepository) Remove(ctx context.Context, kind repositories.FavoriteKind, userID, targetID int64) error {
	log := logger.Log(ctx).With(
		zap.String("repository", "favorite"),
		zap.String("method", "Remove"),
		zap.String("kind", string(kind)),
		zap.Int64("userID", userID),
		zap.Int64("targetID", targetID),
	)

	spec, ok := kindSpecs[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFavoriteKind, kind)
	}

	query := fmt.Sprintf(`
        DELETE FROM %s
        WHERE user_id = $1 AND %s = $2
    `, spec.table, spec.targetColumn)

	result, err := r.pool.Exec(ctx, query, userID, targetID)
	if err != nil {
		log.Error(ctx, "error removing favorite", zap.Error(err))
		return fmt.Errorf("error removing favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "favorite was not present, nothing removed")
	}

	return nil
}

// ListPlanets возвращает избранные планеты пользователя.
func (r *FavoriteRepository) ListPlanets(ctx context.Context, userID int64) ([]*entities.Planet, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "favorite"),
		zap.String("method", "ListPlanets"),
		zap.Int64("userID", userID),
	)

	query := `
        SELECT p.id, p.name, p.climate, p.terrain, p.population, p.diameter
        FROM planets p
        JOIN user_favorite_planets f ON f.planet_id = p.id
        WHERE f.user_id = $1
        ORDER BY p.id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing favorite planets", zap.Error(err))
		return nil, fmt.Errorf("error querying favorite planets: %w", err)
	}
	defer rows.Close()

	return scanPlanets(rows)
}

// ListPeople возвращает избранных персонажей пользователя.
func (r *FavoriteRepository) ListPeople(ctx context.Context, userID int64) ([]*entities.People, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "favorite"),
		zap.String("method", "ListPeople"),
		zap.Int64("userID", userID),
	)

	query := `
        SELECT p.id, p.name, p.height, p.mass, p.hair_color, p.skin_color, p.eye_color, p.birth_year, p.gender
        FROM people p
        JOIN user_favorite_people f ON f.people_id = p.id
        WHERE f.user_id = $1
        ORDER BY p.id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error listing favorite people", zap.Error(err))
		return nil, fmt.Errorf("error querying favorite people: %w", err)
	}
	defer rows.Close()

	return scanPeople(rows)
}

// mapForeignKeyError переводит нарушение внешнего ключа в доменную ошибку.
// Пользователь или цель могли быть удалены между проверкой и вставкой.
func mapForeignKeyError(err error, spec kindSpec) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return nil
	}
	if pgErr.ConstraintName == spec.table+"_user_id_fkey" {
		return entities.ErrUserNotFound
	}
	return spec.targetErr
}
