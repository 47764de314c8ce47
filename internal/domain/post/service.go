package post

import (
	"context"

	"github.com/juliangorge/fmriel-api/internal/platform/crud"
)

// Service layers the highlights query over the generic CRUD service. The
// existence checks in Update/Delete go through the joined GetByID.
type Service struct {
	*crud.Service[Post]
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{
		Service: crud.NewService[Post](repo),
		repo:    repo,
	}
}

func (s *Service) GetHighlights(ctx context.Context) ([]Post, error) {
	return s.repo.GetHighlights(ctx)
}
