package pharmacy

import (
	"github.com/juliangorge/fmriel-api/internal/platform/crud"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

func NewRepository(base *store.Client) *crud.Repository[Pharmacy] {
	return crud.NewRepository[Pharmacy](base, "pharmacies", "name", "address")
}
