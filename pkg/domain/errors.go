package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every input validation failure.
var ErrInvalidInput = errors.New("invalid input")

// ErrSearchLimit is returned when a search visits more compounds than allowed.
var ErrSearchLimit = errors.New("search limit exceeded")

// ErrCacheMiss is returned by a PathCache when the key is not present.
var ErrCacheMiss = errors.New("cache miss")

// Side tells which end of a query an input belongs to.
type Side string

const (
	SideStart  Side = "start"
	SideTarget Side = "target"
)

// ValidationError describes a rejected query input.
type ValidationError struct {
	Side   Side            // start or target; empty when not yet known
	Field  string          // "group" or "carbons"
	Group  FunctionalGroup // group the carbon count was checked against
	Min    int             // violated minimum, zero if not a range failure
	Value  string          // offending raw value
	Reason string          // overrides the default message when set
}

func (e *ValidationError) Error() string {
	var msg string
	switch {
	case e.Reason != "":
		msg = fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
	case e.Min > 0:
		msg = fmt.Sprintf("%s requires at least %d carbon(s), got %s", e.Group, e.Min, e.Value)
	default:
		msg = fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	if e.Side != "" {
		return string(e.Side) + ": " + msg
	}
	return msg
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WithSide returns err annotated with side when it is a *ValidationError
// that has no side yet. Other errors are returned unchanged.
func WithSide(err error, side Side) error {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Side == "" {
		cp := *ve
		cp.Side = side
		return &cp
	}
	return err
}
