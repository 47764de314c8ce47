package pharmacyschedule

import (
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Handler struct {
	*crud.Handler[PharmacySchedule, CreatePharmacyScheduleDto, UpdatePharmacyScheduleDto]
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		Handler: crud.NewHandler[PharmacySchedule, CreatePharmacyScheduleDto, UpdatePharmacyScheduleDto](svc),
		svc:     svc,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/pharmacy_schedules")
	g.GET("/date", h.GetByDate)
	h.Register(g)
}

// GetByDate handles GET /pharmacy_schedules/date?date=YYYY-MM-DD.
func (h *Handler) GetByDate(c echo.Context) error {
	dateStr := c.QueryParam("date")
	if !dateFormat.MatchString(dateStr) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD.")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid date provided.")
	}

	schedule, err := h.svc.GetByDate(c.Request().Context(), date)
	if err != nil {
		return crud.HTTPError(err)
	}
	if schedule == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No schedule found for the provided date.")
	}
	return c.JSON(http.StatusOK, schedule)
}
