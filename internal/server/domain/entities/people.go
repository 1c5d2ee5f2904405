package entities

import "errors"

// ErrPeopleNotFound возвращается при отсутствии персонажа с указанным ID.
var ErrPeopleNotFound = errors.New("people not found")

// People представляет персонажа каталога.
type People struct {
	ID        int64
	Name      string
	Height    int
	Mass      int
	HairColor string
	SkinColor string
	EyeColor  string
	BirthYear string
	Gender    string
}
