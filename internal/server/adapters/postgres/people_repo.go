package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"starhub/internal/server/domain/entities"
	"starhub/internal/server/ports/repositories"
	"starhub/pkg/logger"
)

// PeopleRepository реализует интерфейс repositories.PeopleRepository для работы с Postgres.
type PeopleRepository struct {
	pool PgxPoolInterface
}

// NewPeopleRepository создает новый экземпляр репозитория персонажей.
func NewPeopleRepository(pool PgxPoolInterface) repositories.PeopleRepository {
	return &PeopleRepository{pool: pool}
}

// FindByID находит персонажа по ID.
func (r *PeopleRepository) FindByID(ctx context.Context, id int64) (*entities.People, error) {
	log := logger.Log(ctx).With(zap.String("repository", "people"), zap.String("method", "FindByID"))

	query := `
        SELECT id, name, height, mass, hair_color, skin_color, eye_color, birth_year, gender
        FROM people
        WHERE id = $1
    `

	var people entities.People
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&people.ID,
		&people.Name,
		&people.Height,
		&people.Mass,
		&people.HairColor,
		&people.SkinColor,
		&people.EyeColor,
		&people.BirthYear,
		&people.Gender,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "people not found", zap.Int64("id", id))
			return nil, entities.ErrPeopleNotFound
		}
		log.Error(ctx, "error finding people by id", zap.Error(err))
		return nil, fmt.Errorf("error querying people by id: %w", err)
	}

	return &people, nil
}

// List возвращает всех персонажей в порядке хранения.
func (r *PeopleRepository) List(ctx context.Context) ([]*entities.People, error) {
	log := logger.Log(ctx).With(zap.String("repository", "people"), zap.String("method", "List"))

	query := `
        SELECT id, name, height, mass, hair_color, skin_color, eye_color, birth_year, gender
        FROM people
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing people", zap.Error(err))
		return nil, fmt.Errorf("error querying people: %w", err)
	}
	defer rows.Close()

	return scanPeople(rows)
}

// Delete удаляет персонажа по ID.
// Записи user_favorite_people снимаются каскадно на уровне схемы.
func (r *PeopleRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "people"), zap.String("method", "Delete"))

	query := `
        DELETE FROM people
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting people", zap.Error(err))
		return fmt.Errorf("error deleting people: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "people not found for deletion", zap.Int64("id", id))
		return entities.ErrPeopleNotFound
	}

	return nil
}

// scanPeople вычитывает строки персонажей из результата запроса.
func scanPeople(rows pgx.Rows) ([]*entities.People, error) {
	people := make([]*entities.People, 0)
	for rows.Next() {
		var person entities.People
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Height,
			&person.Mass,
			&person.HairColor,
			&person.SkinColor,
			&person.EyeColor,
			&person.BirthYear,
			&person.Gender,
		); err != nil {
			return nil, fmt.Errorf("error scanning people row: %w", err)
		}
		people = append(people, &person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people rows: %w", err)
	}

	return people, nil
}
