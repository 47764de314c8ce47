package post

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

type Handler struct {
	*crud.Handler[Post, CreatePostDto, UpdatePostDto]
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		Handler: crud.NewHandler[Post, CreatePostDto, UpdatePostDto](svc),
		svc:     svc,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/posts")
	g.GET("/highlights", h.GetHighlights)
	h.Register(g)
}

// GetHighlights handles GET /posts/highlights.
func (h *Handler) GetHighlights(c echo.Context) error {
	posts, err := h.svc.GetHighlights(c.Request().Context())
	if err != nil {
		return crud.HTTPError(err)
	}
	if posts == nil {
		posts = []Post{}
	}
	return c.JSON(http.StatusOK, posts)
}
