package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrInvalidUserRole   = errors.New("invalid user role")
	ErrInvalidTaskInput  = errors.New("invalid task input")
	ErrInvalidUserInput  = errors.New("invalid user input")
)

// StoreError is the single failure kind returned by the data access layer.
// Op names the failed operation, e.g. "tasks.update".
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op + ": store error"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err came out of the data access layer.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
