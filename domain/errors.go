package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the acting user does not own the resource
	ErrForbidden = errors.New("you are not allowed to modify this resource")
	// ErrCacheMiss will throw if the requested item is not in cache
	ErrCacheMiss = errors.New("item is not cached")
)

// ValidationKind classifies why an entity payload was rejected.
type ValidationKind int

const (
	MissingField ValidationKind = iota
	TypeMismatch
)

func (k ValidationKind) String() string {
	switch k {
	case MissingField:
		return "MISSING_FIELD"
	case TypeMismatch:
		return "TYPE_MISMATCH"
	default:
		return "UNKNOWN"
	}
}

// ValidationError is returned by entity constructors on malformed payloads.
// It matches ErrBadParamInput under errors.Is so REST can map it to 400.
type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrBadParamInput
}

func errMissing(field string) error {
	return &ValidationError{Field: field, Kind: MissingField}
}

func errType(field string) error {
	return &ValidationError{Field: field, Kind: TypeMismatch}
}
