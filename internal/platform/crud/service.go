package crud

import (
	"context"

	"github.com/juliangorge/fmriel-api/internal/platform/apperr"
)

// Storer is the repository surface a Service needs. *Repository[T]
// satisfies it; tests substitute mocks.
type Storer[T Identifiable] interface {
	GetAll(ctx context.Context, limit, offset int, sortBy string, ascending bool) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, data any) (*T, error)
	Update(ctx context.Context, id int, data any) (*T, error)
	Delete(ctx context.Context, id int) (*T, error)
}

// Service adds existence-checked mutation semantics on top of a repository.
// Reads and creates delegate unchanged.
type Service[T Identifiable] struct {
	repo Storer[T]
}

func NewService[T Identifiable](repo Storer[T]) *Service[T] {
	return &Service[T]{repo: repo}
}

// Repo exposes the underlying repository to resource services that add
// bespoke queries.
func (s *Service[T]) Repo() Storer[T] { return s.repo }

func (s *Service[T]) GetAll(ctx context.Context, limit, offset int, sortBy string, ascending bool) ([]T, error) {
	return s.repo.GetAll(ctx, limit, offset, sortBy, ascending)
}

func (s *Service[T]) GetByID(ctx context.Context, id int) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service[T]) Create(ctx context.Context, data any) (*T, error) {
	return s.repo.Create(ctx, data)
}

// Update verifies the row exists before mutating; a missing row yields
// NotFoundError and the repository update is never issued.
func (s *Service[T]) Update(ctx context.Context, id int, data any) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &apperr.NotFoundError{ID: id}
	}
	return s.repo.Update(ctx, id, data)
}

// Delete follows the same existence-check pattern as Update.
func (s *Service[T]) Delete(ctx context.Context, id int) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &apperr.NotFoundError{ID: id}
	}
	return s.repo.Delete(ctx, id)
}
