package raincity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
	"github.com/juliangorge/fmriel-api/internal/platform/validate"
)

type Handler struct {
	*crud.Handler[RainCity, CreateRainCityDto, UpdateRainCityDto]
	svc crud.Servicer[RainCity]
}

func NewHandler(svc crud.Servicer[RainCity]) *Handler {
	return &Handler{
		Handler: crud.NewHandler[RainCity, CreateRainCityDto, UpdateRainCityDto](svc),
		svc:     svc,
	}
}

// RegisterRoutes mounts the uniform routes with a custom create that applies
// the is_active default.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/rainCities")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create handles POST /rainCities; a missing is_active defaults to true.
func (h *Handler) Create(c echo.Context) error {
	var body CreateRainCityDto
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(&body); err != nil {
		return crud.HTTPError(err)
	}
	if body.IsActive == nil {
		active := true
		body.IsActive = &active
	}
	city, err := h.svc.Create(c.Request().Context(), body)
	if err != nil {
		return crud.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, city)
}
