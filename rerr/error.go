// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rerr defines the typed error values returned across the core's
// package boundaries (spec §7): OutOfDomain, NotFound, IllegalState and
// Geometry. Nothing in this core panics to signal a domain failure; a
// panic here means a programming bug, not a bad input.
package rerr

import "fmt"

// Kind classifies a failure so callers can branch on it without parsing
// the message string.
type Kind int

const (
	// OutOfDomain: a UnivariateFunction was evaluated outside its
	// (possibly fuzzy-extended) domain.
	OutOfDomain Kind = iota
	// NotFound: an identifier lookup against the road-space model failed.
	NotFound
	// IllegalState: a constructor invariant was violated.
	IllegalState
	// Geometry: sampling, restriction or ring-construction failed.
	Geometry
)

func (k Kind) String() string {
	switch k {
	case OutOfDomain:
		return "OutOfDomain"
	case NotFound:
		return "NotFound"
	case IllegalState:
		return "IllegalState"
	case Geometry:
		return "Geometry"
	}
	return "Unknown"
}

// Error is the value every fallible operation in this core returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

// New builds an *Error the way gosl/chk.Err formats a message, tagged
// with a Kind so a caller can errors.As it and switch.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
