package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidKeyKind is returned by any operation that requires a specific
// Key variant (Align and Rate require Time, for example) when given an
// event keyed by some other variant.
type ErrInvalidKeyKind struct {
	Op   string
	Want KeyKind
	Got  KeyKind
}

func (e *ErrInvalidKeyKind) Error() string {
	return fmt.Sprintf("%s: requires a %s key, got %s", e.Op, e.Want, e.Got)
}

// NewInvalidKeyKind builds an ErrInvalidKeyKind for op, which wanted want but
// received got, wrapped with a stack trace the way package-boundary errors
// are wrapped throughout this module.
func NewInvalidKeyKind(op string, want, got KeyKind) error {
	return errors.WithStack(&ErrInvalidKeyKind{Op: op, Want: want, Got: got})
}
