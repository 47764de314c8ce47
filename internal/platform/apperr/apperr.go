// Package apperr defines the error taxonomy shared by the repository,
// service and handler layers. Handlers are the only place these are mapped
// to HTTP responses.
package apperr

import (
	"fmt"
	"strings"
)

// Operation names used in DataAccessError messages.
const (
	OpFetch  = "fetching"
	OpCreate = "creating"
	OpUpdate = "updating"
	OpDelete = "deleting"
)

// NotFoundError reports that a resource with the given ID does not exist.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Resource with ID %d not found", e.ID)
}

// DataAccessError wraps an error reported by the data store.
type DataAccessError struct {
	Op  string // one of the Op* constants
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("Error %s data: %s", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// ValidationError aggregates every violated constraint of a request body.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
