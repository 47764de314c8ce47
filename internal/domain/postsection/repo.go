package postsection

import (
	"github.com/juliangorge/fmriel-api/internal/platform/crud"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

func NewRepository(base *store.Client) *crud.Repository[PostSection] {
	return crud.NewRepository[PostSection](base, "post_sections", "name")
}
