// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "starhub/internal/server/domain/entities"

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ с выданным токеном доступа.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse представляет ответ с одним текстовым сообщением.
// Используется и для успешных подтверждений, и для ошибок.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse представляет сериализацию пользователя.
// Парольный хэш в ответы не попадает.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CurrentUserResponse оборачивает профиль текущего пользователя.
type CurrentUserResponse struct {
	CurrentUser UserResponse `json:"current_user"`
}

// PlanetResponse представляет сериализацию планеты.
type PlanetResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
	Population int64  `json:"population"`
	Diameter   int64  `json:"diameter"`
}

// PeopleResponse представляет сериализацию персонажа.
type PeopleResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Height    int    `json:"height"`
	Mass      int    `json:"mass"`
	HairColor string `json:"hair_color"`
	SkinColor string `json:"skin_color"`
	EyeColor  string `json:"eye_color"`
	BirthYear string `json:"birth_year"`
	Gender    string `json:"gender"`
}

// FavoritesResponse представляет оба множества избранного пользователя.
type FavoritesResponse struct {
	FavoritePlanets []PlanetResponse `json:"favorite_planets"`
	FavoritePeople  []PeopleResponse `json:"favorite_people"`
}

// NewUserResponse строит UserResponse из доменной сущности.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email}
}

// NewUserResponses строит список UserResponse.
func NewUserResponses(users []*entities.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, NewUserResponse(user))
	}
	return result
}

// NewPlanetResponse строит PlanetResponse из доменной сущности.
func NewPlanetResponse(planet *entities.Planet) PlanetResponse {
	return PlanetResponse{
		ID:         planet.ID,
		Name:       planet.Name,
		Climate:    planet.Climate,
		Terrain:    planet.Terrain,
		Population: planet.Population,
		Diameter:   planet.Diameter,
	}
}

// NewPlanetResponses строит список PlanetResponse.
func NewPlanetResponses(planets []*entities.Planet) []PlanetResponse {
	result := make([]PlanetResponse, 0, len(planets))
	for _, planet := range planets {
		result = append(result, NewPlanetResponse(planet))
	}
	return result
}

// NewPeopleResponse строит PeopleResponse из доменной сущности.
func NewPeopleResponse(person *entities.People) PeopleResponse {
	return PeopleResponse{
		ID:        person.ID,
		Name:      person.Name,
		Height:    person.Height,
		Mass:      person.Mass,
		HairColor: person.HairColor,
		SkinColor: person.SkinColor,
		EyeColor:  person.EyeColor,
		BirthYear: person.BirthYear,
		Gender:    person.Gender,
	}
}

// NewPeopleResponses строит список PeopleResponse.
func NewPeopleResponses(people []*entities.People) []PeopleResponse {
	result := make([]PeopleResponse, 0, len(people))
	for _, person := range people {
		result = append(result, NewPeopleResponse(person))
	}
	return result
}
