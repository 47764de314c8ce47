package raincity

import "github.com/juliangorge/fmriel-api/internal/platform/crud"

func NewService(repo crud.Storer[RainCity]) *crud.Service[RainCity] {
	return crud.NewService[RainCity](repo)
}
