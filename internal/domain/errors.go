package domain

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError rejects a generation request before any persistence
// attempt. Missing lists the field names the operator left blank.
type ValidationError struct {
	Missing []string
}

func (e ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "missing required fields"
	}
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

var ErrValidation = ValidationError{}

// ConflictError surfaces a uniqueness violation that survived retries.
type ConflictError struct {
	Resource string
}

func (e ConflictError) Error() string {
	if e.Resource == "" {
		return "conflict"
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if ok {
		return true
	}
	_, ok = target.(*ConflictError)
	return ok
}

var ErrConflict = ConflictError{}

// ErrDuplicateNumber is returned by the certificate repository when an
// insert hits the unique constraint on certificate_no. The assembly engine
// retries with a fresh number on this error only.
var ErrDuplicateNumber = errors.New("duplicate certificate number")

// ErrBusy rejects a generation request while another one from the same
// session is still in flight.
var ErrBusy = errors.New("a generation request is already in flight")
