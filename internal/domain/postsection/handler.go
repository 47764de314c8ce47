package postsection

import (
	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

type Handler struct {
	*crud.Handler[PostSection, CreatePostSectionDto, UpdatePostSectionDto]
}

func NewHandler(svc crud.Servicer[PostSection]) *Handler {
	return &Handler{
		Handler: crud.NewHandler[PostSection, CreatePostSectionDto, UpdatePostSectionDto](svc),
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	h.Register(api.Group("/post_sections"))
}
