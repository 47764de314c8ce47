package raincity

import (
	"github.com/juliangorge/fmriel-api/internal/platform/crud"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

func NewRepository(base *store.Client) *crud.Repository[RainCity] {
	return crud.NewRepository[RainCity](base, "rain_cities", "name")
}
