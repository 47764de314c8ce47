// Package crud implements the generic repository/service/handler layer that
// every resource context composes. Repositories talk to the remote data
// store through the request-scoped client; services add existence-checked
// mutation semantics; handlers expose the uniform HTTP surface.
package crud

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/juliangorge/fmriel-api/internal/platform/apperr"
	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

// Identifiable is the only capability a record type must provide: a unique
// integer identifier.
type Identifiable interface {
	EntityID() int
}

// Repository provides single-table CRUD against the data store for records
// of type T.
type Repository[T Identifiable] struct {
	base     *store.Client
	table    string
	sortable map[string]bool
}

// NewRepository creates a repository for the given table. sortColumns is the
// allow-list of columns accepted by GetAll's sortBy parameter; "id" is
// always permitted.
func NewRepository[T Identifiable](base *store.Client, table string, sortColumns ...string) *Repository[T] {
	sortable := map[string]bool{"id": true}
	for _, col := range sortColumns {
		sortable[col] = true
	}
	return &Repository[T]{base: base, table: table, sortable: sortable}
}

// Table returns the name of the wrapped table.
func (r *Repository[T]) Table() string { return r.table }

// Client resolves the data-store client for this call: the request-scoped
// client when inside a request, the anonymous base client otherwise.
func (r *Repository[T]) Client(ctx context.Context) *store.Client {
	if c := store.FromContext(ctx); c != nil {
		return c
	}
	return r.base
}

// GetAll returns one page of rows ordered by sortBy. The store range is
// inclusive on both ends, so the page spans [offset, offset+limit-1].
func (r *Repository[T]) GetAll(ctx context.Context, limit, offset int, sortBy string, ascending bool) ([]T, error) {
	if !r.sortable[sortBy] {
		return nil, &apperr.ValidationError{
			Messages: []string{fmt.Sprintf("sortBy must be a sortable column, got %q", sortBy)},
		}
	}

	data, err := r.Client(ctx).From(r.table).
		Order(sortBy, ascending).
		Range(offset, offset+limit-1).
		Get(ctx)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	return items, nil
}

// GetByID returns the row with the given id, or nil when no row matches.
func (r *Repository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	data, err := r.Client(ctx).From(r.table).
		Eq("id", id).
		MaybeSingle().
		Get(ctx)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpFetch, Err: err}
	}
	return decodeRow[T](data, apperr.OpFetch)
}

// Create inserts a new row and returns the stored representation.
func (r *Repository[T]) Create(ctx context.Context, data any) (*T, error) {
	body, err := r.Client(ctx).From(r.table).Insert(ctx, data)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpCreate, Err: err}
	}
	return decodeRows[T](body, apperr.OpCreate)
}

// Update modifies the row with the given id and returns the stored
// representation. It does not verify the row exists; see Service.Update.
func (r *Repository[T]) Update(ctx context.Context, id int, data any) (*T, error) {
	body, err := r.Client(ctx).From(r.table).Eq("id", id).Update(ctx, data)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpUpdate, Err: err}
	}
	return decodeRows[T](body, apperr.OpUpdate)
}

// Delete removes the row with the given id and returns it.
func (r *Repository[T]) Delete(ctx context.Context, id int) (*T, error) {
	body, err := r.Client(ctx).From(r.table).Eq("id", id).Delete(ctx)
	if err != nil {
		return nil, &apperr.DataAccessError{Op: apperr.OpDelete, Err: err}
	}
	return decodeRows[T](body, apperr.OpDelete)
}

// decodeRow unmarshals a single-object body; a nil/empty body (no match)
// yields nil without an error.
func decodeRow[T Identifiable](data []byte, op string) (*T, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, &apperr.DataAccessError{Op: op, Err: err}
	}
	return &item, nil
}

// decodeRows unmarshals a representation body. The store returns an array
// even for single-row mutations; the first element is the affected row.
func decodeRows[T Identifiable](data []byte, op string) (*T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Some operations are shaped as a single object.
		return decodeRow[T](data, op)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
