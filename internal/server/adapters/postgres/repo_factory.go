package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"starhub/internal/server/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo     repositories.UserRepository
	planetRepo   repositories.PlanetRepository
	peopleRepo   repositories.PeopleRepository
	favoriteRepo repositories.FavoriteRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:     NewUserRepository(pool),
		planetRepo:   NewPlanetRepository(pool),
		peopleRepo:   NewPeopleRepository(pool),
		favoriteRepo: NewFavoriteRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// PlanetRepository возвращает репозиторий планет.
func (f *RepositoryFactory) PlanetRepository() repositories.PlanetRepository {
	return f.planetRepo
}

// PeopleRepository возвращает репозиторий персонажей.
func (f *RepositoryFactory) PeopleRepository() repositories.PeopleRepository {
	return f.peopleRepo
}

// FavoriteRepository возвращает репозиторий избранного.
func (f *RepositoryFactory) FavoriteRepository() repositories.FavoriteRepository {
	return f.favoriteRepo
}
