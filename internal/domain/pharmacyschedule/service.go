package pharmacyschedule

import (
	"context"
	"time"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

type Service struct {
	*crud.Service[PharmacySchedule]
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{
		Service: crud.NewService[PharmacySchedule](repo),
		repo:    repo,
	}
}

func (s *Service) GetByDate(ctx context.Context, date time.Time) (*ScheduleForDate, error) {
	return s.repo.GetByDate(ctx, date)
}
