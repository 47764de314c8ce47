package deathreport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/juliangorge/fmriel-api/internal/platform/apperr"
	"github.com/juliangorge/fmriel-api/internal/platform/crud"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

type Repository struct {
	*crud.Repository[DeathReport]
}

func NewRepository(base *store.Client) *Repository {
	return &Repository{
		Repository: crud.NewRepository[DeathReport](base, "death_reports", "name", "surname", "date_of_death"),
	}
}

// Search returns reports whose name or surname contains the query,
// case-insensitively.
func (r *Repository) Search(ctx context.Context, query string) ([]DeathReport, error) {
	pattern := "*" + sanitizePattern(query) + "*"

	data, err := r.Client(ctx).From(r.Table()).
		Or(fmt.Sprintf("name.ilike.%s,surname.ilike.%s", pattern, pattern)).
		Get(ctx)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	var reports []DeathReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	return reports, nil
}

// sanitizePattern strips the characters that delimit the store's logic-tree
// filter syntax so user input cannot terminate the expression early.
func sanitizePattern(q string) string {
	return strings.NewReplacer(",", " ", "(", " ", ")", " ").Replace(q)
}
