package crud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/apperr"
	"github.com/juliangorge/fmriel-api/internal/platform/validate"
	"github.com/juliangorge/fmriel-api/pkg/pagination"
)

// Servicer is the service surface a Handler needs. *Service[T] satisfies it.
type Servicer[T Identifiable] interface {
	GetAll(ctx context.Context, limit, offset int, sortBy string, ascending bool) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, data any) (*T, error)
	Update(ctx context.Context, id int, data any) (*T, error)
	Delete(ctx context.Context, id int) (*T, error)
}

// Handler exposes the uniform CRUD surface over HTTP for records of type T.
// C and U are the create and update body shapes; U's fields are all
// optional. Resource handlers embed a Handler, register extra routes, and
// may override individual methods.
type Handler[T Identifiable, C, U any] struct {
	svc Servicer[T]
}

func NewHandler[T Identifiable, C, U any](svc Servicer[T]) *Handler[T, C, U] {
	return &Handler[T, C, U]{svc: svc}
}

// Register mounts the uniform routes on the group. Call it after any
// resource-specific static routes so those take precedence over "/:id".
func (h *Handler[T, C, U]) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET / with page, limit, sortBy and desc query parameters.
func (h *Handler[T, C, U]) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.GetAll(c.Request().Context(), pg.Limit, pg.Offset(), pg.SortBy, pg.Ascending)
	if err != nil {
		return HTTPError(err)
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /:id.
func (h *Handler[T, C, U]) Get(c echo.Context) error {
	id, err := ParseID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return HTTPError(err)
	}
	if item == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Resource with ID %d not found", id))
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /. The body is validated against C before the service
// is called.
func (h *Handler[T, C, U]) Create(c echo.Context) error {
	var body C
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return HTTPError(err)
	}
	item, err := h.svc.Create(c.Request().Context(), body)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /:id with a partial body validated against U.
func (h *Handler[T, C, U]) Update(c echo.Context) error {
	id, err := ParseID(c)
	if err != nil {
		return err
	}
	var body U
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return HTTPError(err)
	}
	item, err := h.svc.Update(c.Request().Context(), id, body)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /:id and returns the deleted row.
func (h *Handler[T, C, U]) Delete(c echo.Context) error {
	id, err := ParseID(c)
	if err != nil {
		return err
	}
	item, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return HTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// ParseID extracts the numeric :id path parameter.
func ParseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "The provided ID must be a valid number.")
	}
	return id, nil
}

// HTTPError maps layer errors to HTTP responses. Handlers are the only
// place this mapping happens.
func HTTPError(err error) error {
	var nfe *apperr.NotFoundError
	if errors.As(err, &nfe) {
		return echo.NewHTTPError(http.StatusNotFound, nfe.Error())
	}
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	var dae *apperr.DataAccessError
	if errors.As(err, &dae) {
		return echo.NewHTTPError(http.StatusBadRequest, dae.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
