package deathreport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

type Handler struct {
	*crud.Handler[DeathReport, CreateDeathReportDto, UpdateDeathReportDto]
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		Handler: crud.NewHandler[DeathReport, CreateDeathReportDto, UpdateDeathReportDto](svc),
		svc:     svc,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/death_reports")
	g.GET("/search", h.Search)
	h.Register(g)
}

// Search handles GET /death_reports/search?query=.
func (h *Handler) Search(c echo.Context) error {
	reports, err := h.svc.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return crud.HTTPError(err)
	}
	if reports == nil {
		reports = []DeathReport{}
	}
	return c.JSON(http.StatusOK, reports)
}
