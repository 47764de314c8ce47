package pharmacyschedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/juliangorge/fmriel-api/internal/platform/apperr"
	"github.com/juliangorge/fmriel-api/internal/platform/crud"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

type Repository struct {
	*crud.Repository[PharmacySchedule]
}

func NewRepository(base *store.Client) *Repository {
	return &Repository{
		Repository: crud.NewRepository[PharmacySchedule](base, "pharmacy_schedules", "pharmacy_id", "start_date", "end_date"),
	}
}

// GetByDate returns the schedule whose range falls within the UTC calendar
// day of the given date, from 00:00:00Z through 23:59:59Z inclusive. Returns
// nil when no schedule matches.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*ScheduleForDate, error) {
	day := date.UTC().Format("2006-01-02")

	data, err := r.Client(ctx).From(r.Table()).
		Select("id, pharmacy_id").
		Gte("start_date", day+"T00:00:00Z").
		Lte("end_date", day+"T23:59:59Z").
		MaybeSingle().
		Get(ctx)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var s ScheduleForDate
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	return &s, nil
}
