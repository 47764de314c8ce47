package deathreport

import (
	"context"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

type Service struct {
	*crud.Service[DeathReport]
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{
		Service: crud.NewService[DeathReport](repo),
		repo:    repo,
	}
}

func (s *Service) Search(ctx context.Context, query string) ([]DeathReport, error) {
	return s.repo.Search(ctx, query)
}
