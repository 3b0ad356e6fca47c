package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("sign in required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidAddress  = errors.New("invalid shipping address")
	ErrPersistence     = errors.New("order could not be saved")
	ErrNotFound        = errors.New("not found")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrInvalidRole     = errors.New("role must be consumer or farmer")
)

// AddressError carries one message per offending shipping field.
type AddressError struct {
	Fields map[string]string
}

func (e *AddressError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return ErrInvalidAddress.Error() + ": " + strings.Join(keys, ", ")
}

func (e *AddressError) Is(target error) bool { return target == ErrInvalidAddress }
