package pharmacy

import "github.com/juliangorge/fmriel-api/internal/platform/crud"

func NewService(repo crud.Storer[Pharmacy]) *crud.Service[Pharmacy] {
	return crud.NewService[Pharmacy](repo)
}
