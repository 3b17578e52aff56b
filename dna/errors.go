// genocrab: a tool for assembling short DNA reads.
// Copyright (c) 2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/jllpons/genocrab/blob/master/LICENSE.txt>.

package dna

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the assembly packages
// wraps exactly one of them, so callers can tell malformed input
// apart from input that does not fit an algorithm's assumptions.
var (
	// ErrInvalidInput is reported for empty batches, sequences that
	// are too short, invalid characters and out-of-range k values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncomplete is reported when well-formed input does not have
	// the structure an algorithm relies on, for example a De Bruijn
	// graph without an Eulerian circuit.
	ErrIncomplete = errors.New("input cannot be assembled")

	// ErrInternal is reported when an internal consistency check fails.
	ErrInternal = errors.New("internal error")
)

// Error is a categorized failure. Error() returns Msg verbatim.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

// InvalidInputf formats an ErrInvalidInput error.
func InvalidInputf(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Incompletef formats an ErrIncomplete error.
func Incompletef(format string, args ...interface{}) error {
	return &Error{Kind: ErrIncomplete, Msg: fmt.Sprintf(format, args...)}
}

// Internalf formats an ErrInternal error.
func Internalf(format string, args ...interface{}) error {
	return &Error{Kind: ErrInternal, Msg: fmt.Sprintf(format, args...)}
}

// Category returns the category an error belongs to,
// or nil if it was not produced by this package.
func Category(err error) error {
	for _, kind := range []error{ErrInvalidInput, ErrIncomplete, ErrInternal} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
