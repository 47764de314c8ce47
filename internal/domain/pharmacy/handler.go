package pharmacy

import (
	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

type Handler struct {
	*crud.Handler[Pharmacy, CreatePharmacyDto, UpdatePharmacyDto]
}

func NewHandler(svc crud.Servicer[Pharmacy]) *Handler {
	return &Handler{
		Handler: crud.NewHandler[Pharmacy, CreatePharmacyDto, UpdatePharmacyDto](svc),
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	h.Register(api.Group("/pharmacies"))
}
