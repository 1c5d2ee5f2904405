package entities

import "errors"

// ErrPlanetNotFound возвращается при отсутствии планеты с указанным ID.
var ErrPlanetNotFound = errors.New("planet not found")

// Planet представляет планету каталога. Неизменяемая с точки зрения API.
type Planet struct {
	ID         int64
	Name       string
	Climate    string
	Terrain    string
	Population int64
	Diameter   int64
}
