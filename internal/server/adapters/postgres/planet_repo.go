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

// PlanetRepository реализует интерфейс repositories.PlanetRepository для работы с Postgres.
type PlanetRepository struct {
	pool PgxPoolInterface
}

// NewPlanetRepository создает новый экземпляр репозитория планет.
func NewPlanetRepository(pool PgxPoolInterface) repositories.PlanetRepository {
	return &PlanetRepository{pool: pool}
}

// FindByID находит планету по ID.
func (r *PlanetRepository) FindByID(ctx context.Context, id int64) (*entities.Planet, error) {
	log := logger.Log(ctx).With(zap.String("repository", "planet"), zap.String("method", "FindByID"))

	query := `
        SELECT id, name, climate, terrain, population, diameter
        FROM planets
        WHERE id = $1
    `

	var planet entities.Planet
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&planet.ID,
		&planet.Name,
		&planet.Climate,
		&planet.Terrain,
		&planet.Population,
		&planet.Diameter,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "planet not found", zap.Int64("id", id))
			return nil, entities.ErrPlanetNotFound
		}
		log.Error(ctx, "error finding planet by id", zap.Error(err))
		return nil, fmt.Errorf("error querying planet by id: %w", err)
	}

	return &planet, nil
}

// List возвращает все планеты в порядке хранения.
func (r *PlanetRepository) List(ctx context.Context) ([]*entities.Planet, error) {
	log := logger.Log(ctx).With(zap.String("repository", "planet"), zap.String("method", "List"))

	query := `
        SELECT id, name, climate, terrain, population, diameter
        FROM planets
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing planets", zap.Error(err))
		return nil, fmt.Errorf("error querying planets: %w", err)
	}
	defer rows.Close()

	return scanPlanets(rows)
}

// scanPlanets вычитывает строки планет из результата запроса.
func scanPlanets(rows pgx.Rows) ([]*entities.Planet, error) {
	planets := make([]*entities.Planet, 0)
	for rows.Next() {
		var planet entities.Planet
		if err := rows.Scan(
			&planet.ID,
			&planet.Name,
			&planet.Climate,
			&planet.Terrain,
			&planet.Population,
			&planet.Diameter,
		); err != nil {
			return nil, fmt.Errorf("error scanning planet row: %w", err)
		}
		planets = append(planets, &planet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating planet rows: %w", err)
	}

	return planets, nil
}
