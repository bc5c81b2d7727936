package service

import (
	"errors"
	"fmt"
)

// Resource names carried by NotFoundError and ConflictError.
const (
	ResourceAdministrator = "administrator"
	ResourceClient        = "client"
	ResourceSalesEmployee = "sales_employee"
	ResourceStoreManager  = "store_manager"
	ResourceOrder         = "order"
	ResourceUserType      = "user_type"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// NotFoundError reports a missing entity, or a missing referenced entity.
// It matches ErrNotFound.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports a unique-constraint violation. It matches ErrConflict.
type ConflictError struct {
	Resource string
	Err      error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflicts with an existing record: %v", e.Resource, e.Err)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func (e *ConflictError) Unwrap() error { return e.Err }
