package postsection

import "github.com/juliangorge/fmriel-api/internal/platform/crud"

func NewService(repo crud.Storer[PostSection]) *crud.Service[PostSection] {
	return crud.NewService[PostSection](repo)
}
