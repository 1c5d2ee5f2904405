package repositories

import (
	"context"

	"starhub/internal/server/domain/entities"
)

// FavoriteKind определяет вид целевой сущности отношения избранного.
// Оба отношения (планеты и персонажи) обслуживаются одним механизмом,
// что гарантирует идентичную семантику идемпотентности и ошибок.
type FavoriteKind string

// Поддерживаемые виды избранного.
const (
	FavoritePlanets FavoriteKind = "planets"
	FavoritePeople  FavoriteKind = "people"
)

// FavoriteRepository определяет интерфейс для отношений избранного.
// Add и Remove идемпотентны: повторное добавление и снятие отсутствующей
// записи завершаются успехом без изменения состояния.
type FavoriteRepository interface {
	Add(ctx context.Context, kind FavoriteKind, userID, targetID int64) error

	Remove(ctx context.Context, kind FavoriteKind, userID, targetID int64) error

	ListPlanets(ctx context.Context, userID int64) ([]*entities.Planet, error)

	ListPeople(ctx context.Context, userID int64) ([]*entities.People, error)
}
