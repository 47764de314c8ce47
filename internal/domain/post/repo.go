package post

import (
	"context"
	"encoding/json"

	"github.com/juliangorge/fmriel-api/internal/platform/apperr"
	"github.com/juliangorge/fmriel-api/internal/platform/crud"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

// sectionJoin embeds the owning section's name on every read.
const sectionJoin = "*, post_sections(name)"

// Repository extends the generic posts repository with joined reads.
type Repository struct {
	*crud.Repository[Post]
}

func NewRepository(base *store.Client) *Repository {
	return &Repository{
		Repository: crud.NewRepository[Post](base, "posts", "title", "section_id", "created_at"),
	}
}

// GetByID fetches one post with its section name embedded. Returns nil when
// no row matches.
func (r *Repository) GetByID(ctx context.Context, id int) (*Post, error) {
	data, err := r.Client(ctx).From(r.Table()).
		Select(sectionJoin).
		Eq("id", id).
		MaybeSingle().
		Get(ctx)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var p Post
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	return &p, nil
}

// GetHighlights returns all posts with their section names, newest first.
func (r *Repository) GetHighlights(ctx context.Context) ([]Post, error) {
	data, err := r.Client(ctx).From(r.Table()).
		Select(sectionJoin).
		Order("created_at", false).
		Get(ctx)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	return posts, nil
}
