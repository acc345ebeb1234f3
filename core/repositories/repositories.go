// Package repositories holds the contract shared by every resource repository.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/jrazmi/crudkit/sdk/logger"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrInvalidID     = errors.New("invalid id")
)

// RecordError ties a repository error to the record it concerns.
type RecordError struct {
	Resource string
	ID       int
	Err      error
}

func NewRecordError(resource string, id int, err error) *RecordError {
	return &RecordError{Resource: resource, ID: id, Err: err}
}

func (e *RecordError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidID):
		return fmt.Sprintf("ID %d is not allowed", e.ID)
	case errors.Is(e.Err, ErrAlreadyExists):
		return fmt.Sprintf("%s with ID %d already exists", e.Resource, e.ID)
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
	default:
		return fmt.Sprintf("%s %d: %v", e.Resource, e.ID, e.Err)
	}
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Storer is the storage contract every backing implements for a resource.
// T is the record, C the create payload, U the partial update and F the filter.
type Storer[T any, C any, U any, F any] interface {
	List(ctx context.Context, filter F, page fop.Page) ([]T, error)
	Count(ctx context.Context, filter F) (int, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, payload C) (T, error)
	Update(ctx context.Context, id int, payload U) (T, error)
	Delete(ctx context.Context, id int) error
}

// Repository implements the common operations over a Storer. Resource
// repositories embed it and add their own methods.
type Repository[T any, C any, U any, F any] struct {
	log      *logger.Logger
	storer   Storer[T, C, U, F]
	resource string
}

func NewRepository[T any, C any, U any, F any](log *logger.Logger, resource string, storer Storer[T, C, U, F]) Repository[T, C, U, F] {
	return Repository[T, C, U, F]{
		log:      log,
		storer:   storer,
		resource: resource,
	}
}

// Resource returns the display name of the record type.
func (r *Repository[T, C, U, F]) Resource() string {
	return r.resource
}

func (r *Repository[T, C, U, F]) List(ctx context.Context, filter F, page fop.Page) ([]T, error) {
	records, err := r.storer.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("%s repository list: %w", r.resource, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (r *Repository[T, C, U, F]) Count(ctx context.Context, filter F) (int, error) {
	n, err := r.storer.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s repository count: %w", r.resource, err)
	}
	return n, nil
}

func (r *Repository[T, C, U, F]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	if id <= 0 {
		return zero, NewRecordError(r.resource, id, ErrNotFound)
	}

	record, err := r.storer.Get(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("%s repository get: %w", r.resource, r.wrap(id, err))
	}
	return record, nil
}

func (r *Repository[T, C, U, F]) Create(ctx context.Context, payload C) (T, error) {
	var zero T
	record, err := r.storer.Create(ctx, payload)
	if err != nil {
		return zero, fmt.Errorf("%s repository create: %w", r.resource, err)
	}
	r.log.InfoContext(ctx, "record created", "resource", r.resource)
	return record, nil
}

func (r *Repository[T, C, U, F]) Update(ctx context.Context, id int, payload U) (T, error) {
	var zero T
	if id <= 0 {
		return zero, NewRecordError(r.resource, id, ErrNotFound)
	}

	record, err := r.storer.Update(ctx, id, payload)
	if err != nil {
		return zero, fmt.Errorf("%s repository update: %w", r.resource, r.wrap(id, err))
	}
	r.log.InfoContext(ctx, "record updated", "resource", r.resource, "id", id)
	return record, nil
}

func (r *Repository[T, C, U, F]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return NewRecordError(r.resource, id, ErrNotFound)
	}

	if err := r.storer.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s repository delete: %w", r.resource, r.wrap(id, err))
	}
	r.log.InfoContext(ctx, "record deleted", "resource", r.resource, "id", id)
	return nil
}

// wrap attaches the record identity to sentinel errors returned by a store.
func (r *Repository[T, C, U, F]) wrap(id int, err error) error {
	var re *RecordError
	if errors.As(err, &re) {
		return err
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyExists) {
		return NewRecordError(r.resource, id, err)
	}
	return err
}
